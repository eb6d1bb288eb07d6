// Package report renders analysis results for the terminal and as Markdown.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/yacobolo/dsfrkit/internal/deck"
)

// Options configures the console reporters.
type Options struct {
	UseColors bool // force colors on
	PrintType bool // append the issue type to each line
}

// Reporter prints issues one per line, golangci-lint style.
type Reporter struct {
	w         io.Writer
	useColors bool
	printType bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:         w,
		useColors: ShouldUseColors(opts.UseColors),
		printType: opts.PrintType,
	}
}

// ShouldUseColors determines if colors should be enabled.
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// FORCE_COLOR is set by GitHub Actions and most CI runners
	if os.Getenv("FORCE_COLOR") != "" || os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintIssues writes every slide issue in slide order, most severe first
// within a slide, then the deck-wide issues.
func (r *Reporter) PrintIssues(a *deck.Analysis) {
	for _, s := range a.Slides {
		for _, issue := range sortedIssues(s.Issues) {
			r.printIssue(fmt.Sprintf("%s:%d:", a.Filename, s.Index), issue)
		}
	}
	for _, issue := range sortedIssues(a.GlobalIssues) {
		r.printIssue(a.Filename+":", issue)
	}
}

func (r *Reporter) printIssue(location string, issue deck.Issue) {
	suffix := ""
	if r.printType {
		suffix = fmt.Sprintf(" (%s)", issue.Type)
	}

	fmt.Fprintf(r.w, "%s %s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		RenderStyle(SeverityStyle(issue.Severity), SeverityLabel(issue.Severity), r.useColors),
		issue.Message,
		RenderStyle(StyleGray, suffix, r.useColors))
}

// PrintSummary writes the issue count with its severity breakdown and a
// per-type count.
func (r *Reporter) PrintSummary(a *deck.Analysis) {
	sum := a.Summary

	fmt.Fprintln(r.w, "")
	if sum.TotalIssues == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "0 issues.", r.useColors))
		return
	}

	fmt.Fprintf(r.w, "%s (%d high, %d medium, %d low):\n",
		pluralizeCount(sum.TotalIssues, "issue", "issues"),
		sum.HighSeverityIssues, sum.MediumIssues, sum.LowIssues)

	counts := make(map[string]int)
	for _, issue := range a.AllIssues() {
		counts[issue.Type]++
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(r.w, "* %s: %d\n", t, counts[t])
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see statistics and per-slide details", r.useColors))
}

// SeverityLabel is the French label used on console lines and annotations.
func SeverityLabel(s deck.Severity) string {
	switch s {
	case deck.SeverityHigh:
		return "CRITIQUE"
	case deck.SeverityMedium:
		return "ATTENTION"
	default:
		return "SUGGESTION"
	}
}

func sortedIssues(issues []deck.Issue) []deck.Issue {
	out := append([]deck.Issue(nil), issues...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Rank() < out[j].Severity.Rank()
	})
	return out
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// bar draws a 20-cell gauge for a value in [0, 1].
func bar(value float64) string {
	n := int(value * 20)
	if n < 0 {
		n = 0
	}
	if n > 20 {
		n = 20
	}
	return strings.Repeat("█", n) + strings.Repeat("░", 20-n)
}
