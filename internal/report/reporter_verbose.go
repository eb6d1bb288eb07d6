package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/dsfrkit/internal/contrast"
	"github.com/yacobolo/dsfrkit/internal/deck"
	"github.com/yacobolo/dsfrkit/internal/framework"
)

// VerboseReporter handles statistics, per-slide details and the output of
// the detect and contrast commands.
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

func (r *VerboseReporter) header(title string) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, title, r.useColors))
	fmt.Fprintln(r.w, strings.Repeat("-", len([]rune(title))+2))
}

// PrintStatistics outputs the deck statistics
func (r *VerboseReporter) PrintStatistics(a *deck.Analysis) {
	sum := a.Summary
	r.header("Statistiques : " + a.Filename)

	fmt.Fprintf(r.w, "Slides:                  %d\n", a.TotalSlides)
	fmt.Fprintf(r.w, "Mots par slide:          %.1f\n", sum.AvgWordsPerSlide)
	fmt.Fprintf(r.w, "Puces par slide:         %.1f\n", sum.AvgBulletsPerSlide)
	fmt.Fprintf(r.w, "Slides avec images:      %d\n", sum.SlidesWithImages)
	fmt.Fprintf(r.w, "Slides avec graphiques:  %d\n", sum.SlidesWithCharts)
	fmt.Fprintf(r.w, "Slides avec tableaux:    %d\n", sum.SlidesWithTables)
	fmt.Fprintf(r.w, "Problèmes:               %d (%s, %d moyens, %d mineurs)\n",
		sum.TotalIssues,
		RenderStyle(StyleRed, fmt.Sprintf("%d critiques", sum.HighSeverityIssues), r.useColors && sum.HighSeverityIssues > 0),
		sum.MediumIssues, sum.LowIssues)
}

// PrintSlides outputs one row per slide.
func (r *VerboseReporter) PrintSlides(a *deck.Analysis) {
	r.header("Slides")

	fmt.Fprintf(r.w, "%4s  %-32s %6s %6s %6s  %s\n", "#", "Titre", "Mots", "Puces", "Tailles", "Problèmes")
	for _, s := range a.Slides {
		title := s.Title
		if title == "" {
			title = "(sans titre)"
		}
		fmt.Fprintf(r.w, "%4d  %-32s %6d %6d %6d  %s\n",
			s.Index, truncate(title, 32), s.WordCount, s.BulletCount, s.DistinctFontSizes(), r.issueCounts(s.Issues))
	}
}

func (r *VerboseReporter) issueCounts(issues []deck.Issue) string {
	if len(issues) == 0 {
		return RenderStyle(StyleGreen, "ok", r.useColors)
	}
	parts := make([]string, 0, len(issues))
	for _, issue := range sortedIssues(issues) {
		parts = append(parts, RenderStyle(SeverityStyle(issue.Severity), issue.Type, r.useColors))
	}
	return strings.Join(parts, ", ")
}

// PrintGlobalIssues lists the deck-wide issues.
func (r *VerboseReporter) PrintGlobalIssues(a *deck.Analysis) {
	if len(a.GlobalIssues) == 0 {
		return
	}
	r.header("Problèmes globaux")
	for _, issue := range sortedIssues(a.GlobalIssues) {
		fmt.Fprintf(r.w, "• %s %s\n",
			RenderStyle(SeverityStyle(issue.Severity), SeverityLabel(issue.Severity), r.useColors),
			issue.Message)
	}
}

// PrintDetection outputs the framework scores and the per-slide progression.
func (r *VerboseReporter) PrintDetection(filename string, d framework.Detection) {
	r.header("Détection de framework : " + filename)

	detected := d.Detected
	if d.Found {
		detected = RenderStyle(StyleGreen, detected, r.useColors)
	}
	fmt.Fprintf(r.w, "Framework détecté: %s\n", detected)
	fmt.Fprintf(r.w, "Confiance:         %.0f%%\n", d.Confidence*100)

	if len(d.Scores) > 0 {
		fmt.Fprintln(r.w, "\nScores:")
		for _, s := range d.Scores {
			fmt.Fprintf(r.w, "  %-22s %s %5.1f%%\n", s.Name, bar(s.Score), s.Score*100)
		}
	}

	if len(d.Progression) > 0 {
		fmt.Fprintln(r.w, "\nProgression:")
		for _, step := range d.Progression {
			fmt.Fprintf(r.w, "  Slide %2d: %-15s (confiance: %.0f%%)\n", step.Slide, step.Stage, step.Confidence*100)
		}
	}
}

// PrintSuggestion outputs a framework recommendation.
func (r *VerboseReporter) PrintSuggestion(s framework.Suggestion) {
	r.header("Suggestion de framework (" + s.Category + ")")

	fmt.Fprintf(r.w, "Framework recommandé: %s\n", RenderStyle(StyleGreen, s.Primary, r.useColors))
	fmt.Fprintf(r.w, "Raison: %s\n\n", s.Reason)
	fmt.Fprintln(r.w, "Structure recommandée:")
	for _, step := range s.Structure {
		fmt.Fprintf(r.w, "  • %s\n", step)
	}
	fmt.Fprintf(r.w, "\nAlternatives: %s\n", strings.Join(s.Alternatives, ", "))
}

// ContrastResult groups what the contrast command prints.
type ContrastResult struct {
	Foreground contrast.Color
	Background contrast.Color
	Compliance contrast.Compliance
	Suggestion *contrast.Suggestion
	DSFR       bool // show palette names
}

// PrintContrast outputs a contrast check and, when present, the suggestions.
func (r *VerboseReporter) PrintContrast(res ContrastResult) {
	r.header("Contraste WCAG")

	fmt.Fprintf(r.w, "Texte:    %s%s\n", res.Foreground.Hex(), r.paletteName(res.Foreground, res.DSFR))
	fmt.Fprintf(r.w, "Fond:     %s%s\n", res.Background.Hex(), r.paletteName(res.Background, res.DSFR))
	fmt.Fprintf(r.w, "Ratio:    %.2f:1\n", res.Compliance.Ratio)
	kind := "normal"
	if res.Compliance.LargeText {
		kind = "grand"
	}
	fmt.Fprintf(r.w, "Texte %s: AA %s (%.1f:1 requis), AAA %s (%.1f:1 requis)\n", kind,
		r.verdict(res.Compliance.AA), res.Compliance.RequiredAA,
		r.verdict(res.Compliance.AAA), res.Compliance.RequiredAAA)

	if res.Suggestion == nil {
		return
	}
	sug := res.Suggestion
	fmt.Fprintln(r.w, "")
	if sug.Nearest != nil {
		fmt.Fprintf(r.w, "Couleur proche conforme: %s (%.2f:1)\n", sug.Nearest.Hex, sug.Nearest.Ratio)
	}
	if len(sug.Palette) > 0 {
		fmt.Fprintln(r.w, "Alternatives DSFR:")
		for i, c := range sug.Palette {
			fmt.Fprintf(r.w, "  %d. %s %s (%.2f:1)\n", i+1, c.Name, c.Hex, c.Ratio)
		}
	}
}

func (r *VerboseReporter) verdict(ok bool) string {
	if ok {
		return RenderStyle(StyleGreen, "conforme", r.useColors)
	}
	return RenderStyle(StyleRed, "non conforme", r.useColors)
}

func (r *VerboseReporter) paletteName(c contrast.Color, show bool) string {
	if !show {
		return ""
	}
	if p, ok := contrast.LookupPalette(c); ok {
		return " (" + p.Name + ")"
	}
	return ""
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
