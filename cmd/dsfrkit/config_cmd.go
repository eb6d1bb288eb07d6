package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/dsfrkit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved analyzer thresholds",
	Long: `Merge the built-in thresholds, the optional preset and the optional
thresholds file, and print the result. The output can be saved and passed
back with --config.`,
	Example: `  dsfrkit config --preset executive
  dsfrkit config --preset dsfr-strict --format json --output seuils.json`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	f := configCmd.Flags()
	f.StringP("preset", "p", "", "Thresholds preset")
	f.StringP("config", "c", "", "Thresholds file to merge on top")
	f.String("format", "yaml", "Output format: yaml|json")
	f.StringP("output", "o", "", "Write to this file instead of stdout")
	f.Bool("list-presets", false, "List the preset names and exit")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if list, _ := cmd.Flags().GetBool("list-presets"); list {
		for _, name := range config.PresetNames() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	// Same thresholds as analyze, settings file included.
	cfg, err := resolveAnalyzerConfig("analyze")
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return config.Encode(out, cfg.Table, format)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	if err := config.Encode(f, cfg.Table, format); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Configuration sauvegardée: %s\n", output)
	return nil
}
