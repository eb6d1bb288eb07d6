package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/dsfrkit"
)

var reviewCmd = &cobra.Command{
	Use:   "review <file> <analysis.json> --output <file>",
	Short: "Write an annotated copy of a deck",
	Long: `Add a colored comment box for every issue of the analysis report on the
matching slide, and a summary slide after the title slide. The source deck
is left untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: runReview,
}

func init() {
	f := reviewCmd.Flags()
	f.StringP("output", "o", "", "Annotated deck to write")
	f.StringP("config", "c", "", "Thresholds file (annotation colors, summary slide)")
	f.StringP("preset", "p", "", "Thresholds preset")
	_ = reviewCmd.MarkFlagRequired("output")
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := resolveAnalyzerConfig("review")
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	res, err := dsfrkit.Review(args[0], args[1], output, cfg, dsfrkit.ReviewOptions{Logger: logger})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Présentation annotée: %s\n", output)
	fmt.Fprintf(cmd.OutOrStdout(), "  Slides annotées: %d\n", res.SlidesAnnotated)
	fmt.Fprintf(cmd.OutOrStdout(), "  Commentaires: %d\n", res.Comments)
	if res.SummaryAdded {
		fmt.Fprintf(cmd.OutOrStdout(), "  Slide de synthèse ajoutée en position 2\n")
	}
	return nil
}
