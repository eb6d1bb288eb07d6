package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/dsfrkit"
	"github.com/yacobolo/dsfrkit/internal/config"
	"github.com/yacobolo/dsfrkit/internal/history"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file|dir|glob>...",
	Short: "Analyze PowerPoint decks",
	Long: `Measure every slide (words, bullets, fonts, visuals) and report the issues
found against the configured thresholds.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringP("output", "o", "", "Write the JSON report to this file (single deck)")
	f.String("output-dir", "", "Write one JSON report per deck to this directory")
	f.BoolP("quiet", "q", false, "Suppress all output (exit code only)")
	f.StringP("config", "c", "", "Thresholds file (YAML or JSON)")
	f.StringP("preset", "p", "", "Thresholds preset: "+strings.Join(config.PresetNames(), "|"))
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Bool("strict", false, "Exit 1 when any high severity issue is found (CI mode)")
	f.String("history", "", "Record runs in this SQLite database and print the change")
	f.Bool("print-type", true, "Show the issue type after each issue")

	_ = analyzeCmd.RegisterFlagCompletionFunc("preset", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return config.PresetNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	decks, stats, err := dsfrkit.FindDecks(args)
	if err != nil {
		return err
	}
	logger.Debug("decks found",
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("scanned", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))
	if len(decks) == 0 {
		return fmt.Errorf("no .pptx file matches %s", strings.Join(args, " "))
	}

	output := getStringWithFallback("output", "analyze.output", "")
	outputDir := getStringWithFallback("output-dir", "analyze.output-dir", "")
	if output != "" && len(decks) > 1 {
		return fmt.Errorf("--output takes a single deck, got %d (use --output-dir)", len(decks))
	}

	cfg, err := resolveAnalyzerConfig("analyze")
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", "analyze.quiet", false)
	format := dsfrkit.DetermineOutputFormat(getStringWithFallback("output-format", "analyze.output-format", ""), quiet)
	opts := dsfrkit.OutputOptions{
		UseColors: getBoolWithFallback("color", "color", false),
		PrintType: getBoolWithFallback("print-type", "analyze.print-type", true),
	}

	var store *history.Store
	if path := getStringWithFallback("history", "analyze.history", ""); path != "" {
		store, err = history.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	high := 0
	for _, path := range decks {
		a, err := dsfrkit.Analyze(path, cfg, dsfrkit.AnalyzeOptions{Logger: logger})
		if err != nil {
			return err
		}
		high += a.Summary.HighSeverityIssues

		if !quiet {
			if err := dsfrkit.WriteOutput(out, a, format, opts); err != nil {
				return err
			}
		}

		if dest := reportPath(path, output, outputDir); dest != "" {
			if err := writeReport(dest, a); err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "Rapport JSON sauvegardé: %s\n", dest)
			}
		}

		if store != nil {
			if err := recordRun(cmd.Context(), store, a, out, quiet || format == dsfrkit.OutputJSON); err != nil {
				return err
			}
		}
	}

	if getBoolWithFallback("strict", "analyze.strict", false) && high > 0 {
		return fmt.Errorf("strict mode: %d high severity issues", high)
	}
	return nil
}

// reportPath returns where the JSON report of deck goes, or "" for nowhere.
func reportPath(deck, output, outputDir string) string {
	if output != "" {
		return output
	}
	if outputDir == "" {
		return ""
	}
	base := strings.TrimSuffix(filepath.Base(deck), filepath.Ext(deck))
	return filepath.Join(outputDir, base+".json")
}

func writeReport(path string, a *dsfrkit.Analysis) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	return dsfrkit.WriteJSONFile(path, a)
}

// recordRun stores the run and prints how it compares with the previous run
// of the same file.
func recordRun(ctx context.Context, store *history.Store, a *dsfrkit.Analysis, w io.Writer, silent bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	prev, err := store.Previous(ctx, a.Filename)
	if err != nil {
		return err
	}
	cur, err := store.Record(ctx, history.FromAnalysis(a, time.Now()))
	if err != nil {
		return err
	}
	logger.Debug("run recorded", zap.String("db", store.Path()), zap.Int64("id", cur.ID))

	if !silent {
		printHistory(w, prev, cur)
	}
	return nil
}

func printHistory(w io.Writer, prev *history.Run, cur history.Run) {
	if prev == nil {
		fmt.Fprintf(w, "Historique: première analyse enregistrée pour %s\n", cur.Filename)
		return
	}
	d := history.Compare(*prev, cur)
	fmt.Fprintf(w, "Historique: %d → %d problèmes (%s) depuis l'analyse du %s\n",
		prev.TotalIssues, cur.TotalIssues, signed(d.Issues), prev.AnalyzedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "  critiques %s, moyens %s, mineurs %s, mots/slide %+.1f\n",
		signed(d.High), signed(d.Medium), signed(d.Low), d.AvgWords)
}

func signed(n int) string {
	return fmt.Sprintf("%+d", n)
}

