package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/dsfrkit/internal/contrast"
	"github.com/yacobolo/dsfrkit/internal/report"
)

var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground>",
	Short: "Check the WCAG contrast of a text color",
	Long: `Compute the WCAG 2.1 contrast ratio between a text color and its background
and tell whether it passes AA and AAA for the given text size.`,
	Example: `  dsfrkit contrast "#000091"
  dsfrkit contrast 929292 --size 24 --dsfr`,
	Args: cobra.ExactArgs(1),
	RunE: runContrast,
}

func init() {
	f := contrastCmd.Flags()
	f.StringP("background", "b", "#FFFFFF", "Background color")
	f.Float64P("size", "s", 14, "Text size in points")
	f.Bool("bold", false, "Bold text")
	f.Bool("dsfr", false, "Show DSFR palette names and suggest palette colors on failure")
	f.Bool("suggest", false, "Suggest passing colors on failure")
	f.String("output-format", "text", "Output format: text|json")
}

// contrastOutput is the JSON document of the contrast command.
type contrastOutput struct {
	Foreground string               `json:"foreground"`
	Background string               `json:"background"`
	Level      string               `json:"level"`
	Compliance contrast.Compliance  `json:"compliance"`
	Suggestion *contrast.Suggestion `json:"suggestion,omitempty"`
}

func runContrast(cmd *cobra.Command, args []string) error {
	fg, err := contrast.ParseColor(args[0])
	if err != nil {
		return err
	}
	bg, err := contrast.ParseColor(getStringWithFallback("background", "contrast.background", "#FFFFFF"))
	if err != nil {
		return err
	}

	size := getFloat64WithFallback("size", "contrast.size", 14)
	bold := getBoolWithFallback("bold", "contrast.bold", false)
	dsfr := getBoolWithFallback("dsfr", "contrast.dsfr", false)
	suggest := getBoolWithFallback("suggest", "contrast.suggest", false)

	res := report.ContrastResult{
		Foreground: fg,
		Background: bg,
		Compliance: contrast.CheckWCAG(contrast.Ratio(fg, bg), size, bold),
		DSFR:       dsfr,
	}
	if !res.Compliance.AA && (suggest || dsfr) {
		s := contrast.Suggest(fg, bg, res.Compliance.RequiredAA)
		res.Suggestion = &s
	}

	out := cmd.OutOrStdout()
	switch format := getStringWithFallback("output-format", "contrast.output-format", "text"); format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(contrastOutput{
			Foreground: fg.Hex(),
			Background: bg.Hex(),
			Level:      res.Compliance.Level(),
			Compliance: res.Compliance,
			Suggestion: res.Suggestion,
		})
	case "text":
		report.NewVerboseReporter(out, report.ShouldUseColors(getBoolWithFallback("color", "color", false))).PrintContrast(res)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (valid: text, json)", format)
	}
}
