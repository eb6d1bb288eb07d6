package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultSettingsPath = ".dsfrkit.yaml"

// logger is replaced in PersistentPreRunE; commands run outside cobra keep the nop.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "dsfrkit",
	Short: "PowerPoint review and DSFR HTML generation",
	Long: `Review PowerPoint decks against presentation guidelines (text density,
structure, storytelling framework, WCAG contrast) and generate HTML that
follows the Système de Design de l'État.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		missing, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logger, err = newLogger(getBoolWithFallback("verbose", "verbose", false))
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		if missing != "" {
			logger.Warn("settings file not found, using defaults", zap.String("path", missing))
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("settings", defaultSettingsPath, "Settings file path")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds a console logger on stderr: warnings and errors only,
// everything with verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = !verbose
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg.Build()
}
