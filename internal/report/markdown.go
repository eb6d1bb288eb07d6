package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/dsfrkit/internal/deck"
)

// MarkdownVersion is printed in the report footer.
const MarkdownVersion = "1.0"

// WriteMarkdown writes a shareable Markdown report of the analysis.
func WriteMarkdown(w io.Writer, a *deck.Analysis) error {
	var b strings.Builder
	sum := a.Summary

	fmt.Fprintf(&b, "# Rapport d'analyse : %s\n\n", a.Filename)

	b.WriteString("## Synthèse\n\n")
	b.WriteString("| Indicateur | Valeur |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| **Statut** | %s |\n", Status(sum))
	fmt.Fprintf(&b, "| **Slides** | %d |\n", a.TotalSlides)
	fmt.Fprintf(&b, "| **Problèmes** | %d (%d critiques, %d moyens, %d mineurs) |\n",
		sum.TotalIssues, sum.HighSeverityIssues, sum.MediumIssues, sum.LowIssues)
	fmt.Fprintf(&b, "| **Mots par slide** | %.1f |\n", sum.AvgWordsPerSlide)
	fmt.Fprintf(&b, "| **Puces par slide** | %.1f |\n", sum.AvgBulletsPerSlide)
	fmt.Fprintf(&b, "| **Visuels** | %d images, %d graphiques, %d tableaux |\n",
		sum.SlidesWithImages, sum.SlidesWithCharts, sum.SlidesWithTables)
	b.WriteString("\n")

	if len(a.GlobalIssues) > 0 {
		b.WriteString("## Problèmes globaux\n\n")
		for _, issue := range sortedIssues(a.GlobalIssues) {
			fmt.Fprintf(&b, "- **%s** %s\n", SeverityLabel(issue.Severity), issue.Message)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Slides\n\n")
	b.WriteString("| # | Titre | Mots | Puces | Problèmes |\n")
	b.WriteString("|---:|---|---:|---:|---|\n")
	for _, s := range a.Slides {
		types := make([]string, 0, len(s.Issues))
		for _, issue := range sortedIssues(s.Issues) {
			types = append(types, "`"+issue.Type+"`")
		}
		fmt.Fprintf(&b, "| %d | %s | %d | %d | %s |\n",
			s.Index, escapeCell(s.Title), s.WordCount, s.BulletCount, strings.Join(types, ", "))
	}
	b.WriteString("\n")

	var detailed bool
	for _, s := range a.Slides {
		if len(s.Issues) == 0 {
			continue
		}
		if !detailed {
			b.WriteString("## Détail des problèmes\n\n")
			detailed = true
		}
		title := s.Title
		if title == "" {
			title = "(sans titre)"
		}
		fmt.Fprintf(&b, "### Slide %d : %s\n\n", s.Index, title)
		for _, issue := range sortedIssues(s.Issues) {
			fmt.Fprintf(&b, "- **%s** %s\n", SeverityLabel(issue.Severity), issue.Message)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "*Généré par dsfrkit v%s*\n", MarkdownVersion)

	_, err := io.WriteString(w, b.String())
	return err
}

// Status is the overall badge: red with any high issue, yellow with any
// medium issue, green otherwise.
func Status(sum deck.Summary) string {
	switch {
	case sum.HighSeverityIssues > 0:
		return "🔴 À revoir"
	case sum.MediumIssues > 0:
		return "🟡 À améliorer"
	default:
		return "🟢 Prêt"
	}
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
