package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/dsfrkit"
	"github.com/yacobolo/dsfrkit/internal/framework"
	"github.com/yacobolo/dsfrkit/internal/report"
)

var detectCmd = &cobra.Command{
	Use:   "detect <file>",
	Short: "Detect the storytelling framework of a deck",
	Long: `Score the deck text against known storytelling frameworks (AIDA, PASS,
What/So What/Now What, SCQA) and structure patterns (Pyramide, MECE), and show
which slide plays which stage.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	f := detectCmd.Flags()
	f.String("suggest", "", "Also recommend a framework for: "+strings.Join(framework.Categories(), "|"))
	f.String("output-format", "text", "Output format: text|json")
	f.StringP("config", "c", "", "Thresholds file (YAML or JSON)")
	f.StringP("preset", "p", "", "Thresholds preset")

	_ = detectCmd.RegisterFlagCompletionFunc("suggest", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return framework.Categories(), cobra.ShellCompDirectiveNoFileComp
	})
}

// detectOutput is the JSON document of the detect command.
type detectOutput struct {
	Filename   string                `json:"filename"`
	Detection  framework.Detection   `json:"detection"`
	Suggestion *framework.Suggestion `json:"suggestion,omitempty"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	cfg, err := resolveAnalyzerConfig("detect")
	if err != nil {
		return err
	}

	d, err := dsfrkit.DetectFramework(args[0], cfg, dsfrkit.AnalyzeOptions{Logger: logger})
	if err != nil {
		return err
	}
	result := detectOutput{Filename: filepath.Base(args[0]), Detection: d}

	if category := getStringWithFallback("suggest", "detect.suggest", ""); category != "" {
		s, err := framework.Suggest(category)
		if err != nil {
			return err
		}
		result.Suggestion = &s
	}

	out := cmd.OutOrStdout()
	switch format := getStringWithFallback("output-format", "detect.output-format", "text"); format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "text":
		r := report.NewVerboseReporter(out, report.ShouldUseColors(getBoolWithFallback("color", "color", false)))
		r.PrintDetection(result.Filename, d)
		if result.Suggestion != nil {
			fmt.Fprintln(out, "")
			r.PrintSuggestion(*result.Suggestion)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (valid: text, json)", format)
	}
}
