package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/yacobolo/dsfrkit/internal/config"
)

var k = koanf.New(".")

// loadConfig loads the CLI settings with precedence: flags > env > file > defaults.
// It returns the settings path when it was given explicitly but does not exist,
// so the caller can warn once a logger is available.
func loadConfig(cmd *cobra.Command) (string, error) {
	k = koanf.New(".")

	settingsPath, _ := cmd.Flags().GetString("settings")
	if settingsPath == "" {
		settingsPath = defaultSettingsPath
	}

	if err := loadConfigFromPath(settingsPath); err != nil {
		return "", err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	if err := loadFlags(cmd.Flags()); err != nil {
		return "", err
	}

	if _, err := os.Stat(settingsPath); err != nil && cmd.Flags().Changed("settings") {
		return settingsPath, nil
	}
	return "", nil
}

// loadConfigFromPath loads settings from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(settingsPath string) error {
	// 1. Settings file (lowest precedence among providers)
	if _, err := os.Stat(settingsPath); err == nil {
		if err := k.Load(file.Provider(settingsPath), yaml.Parser()); err != nil {
			return &config.ParseError{Path: settingsPath, Err: err}
		}
	}

	// 2. Environment variables (DSFRKIT_* prefix)
	if err := k.Load(env.Provider("DSFRKIT_", ".", func(s string) string {
		// DSFRKIT_ANALYZE_PRESET -> analyze.preset
		// DSFRKIT_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "DSFRKIT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// loadFlags merges the flags set on the command line. Defaults are left to
// the get*WithFallback helpers so the settings file still applies.
func loadFlags(fs *pflag.FlagSet) error {
	if err := k.Load(posflag.Provider(fs, ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}
	return nil
}

// resolveAnalyzerConfig builds the analyzer thresholds from the preset and
// the thresholds file of a command section.
func resolveAnalyzerConfig(section string) (*config.Config, error) {
	preset := getStringWithFallback("preset", section+".preset", "")
	path := getStringWithFallback("config", section+".config", "")

	cfg, err := config.Resolve(preset, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("analyzer settings resolved", zap.String("preset", preset), zap.String("thresholds", path))
	return cfg, nil
}

// getStringWithFallback checks the flag key first, then the settings file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the settings file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the settings file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
