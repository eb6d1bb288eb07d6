package dsfrkit

import (
	"fmt"
	"io"

	"github.com/yacobolo/dsfrkit/internal/report"
)

// OutputFormat represents the analysis output format
type OutputFormat string

const (
	// OutputIssues shows only issues, one per line (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and per-slide details only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + per-slide details
	OutputFull OutputFormat = "full"
	// OutputJSON exports the analysis report
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)

// OutputOptions configures the console formats.
type OutputOptions struct {
	UseColors bool // force colors even without a terminal
	PrintType bool // append the issue type to each issue line
}

// DetermineOutputFormat selects the output format from the flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit -quiet flag wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}

	return DetermineDefaultOutputFormat()
}

// DetermineDefaultOutputFormat returns the default output format: issues only,
// the same everywhere.
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputIssues
}

// WriteOutput writes the analysis in the given format
func WriteOutput(w io.Writer, a *Analysis, format OutputFormat, opts OutputOptions) error {
	reporterOpts := report.Options{UseColors: opts.UseColors, PrintType: opts.PrintType}

	switch format {
	case OutputIssues:
		reporter := report.NewReporter(w, reporterOpts)
		reporter.PrintIssues(a)
		reporter.PrintSummary(a)

	case OutputSummary:
		verbose := report.NewVerboseReporter(w, report.ShouldUseColors(opts.UseColors))
		verbose.PrintStatistics(a)
		verbose.PrintSlides(a)
		verbose.PrintGlobalIssues(a)

	case OutputFull:
		reporter := report.NewReporter(w, reporterOpts)
		reporter.PrintIssues(a)
		reporter.PrintSummary(a)

		verbose := report.NewVerboseReporter(w, reporter.UseColors())
		verbose.PrintStatistics(a)
		verbose.PrintSlides(a)
		verbose.PrintGlobalIssues(a)

	case OutputJSON:
		if err := WriteJSON(w, a); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	case OutputMarkdown:
		if err := report.WriteMarkdown(w, a); err != nil {
			return fmt.Errorf("writing Markdown: %w", err)
		}

	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	return nil
}
