package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/dsfrkit/internal/config"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".dsfrkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSettingsFileLoading(t *testing.T) {
	resetKoanf()

	path := writeSettings(t, `
verbose: true

analyze:
  preset: executive
  output-format: full
  strict: true
  history: runs.db

contrast:
  background: "#1E1E1E"
  size: 24
`)
	require.NoError(t, loadConfigFromPath(path))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "executive", k.String("analyze.preset"))
	assert.Equal(t, "full", k.String("analyze.output-format"))
	assert.True(t, k.Bool("analyze.strict"))
	assert.Equal(t, "runs.db", k.String("analyze.history"))
	assert.Equal(t, "#1E1E1E", k.String("contrast.background"))
	assert.InDelta(t, 24.0, k.Float64("contrast.size"), 0.01)
}

func TestSettingsFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent settings, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.dsfrkit.yaml"))

	assert.Equal(t, "issues", getStringWithFallback("output-format", "analyze.output-format", "issues"))
	assert.False(t, getBoolWithFallback("strict", "analyze.strict", false))
	assert.InDelta(t, 14.0, getFloat64WithFallback("size", "contrast.size", 14), 0.01)

	cfg, err := resolveAnalyzerConfig("analyze")
	require.NoError(t, err)
	assert.Equal(t, config.Default().Thresholds, cfg.Thresholds)
}

func TestSettingsFile_Malformed(t *testing.T) {
	resetKoanf()

	path := writeSettings(t, "analyze: [unclosed\n")
	err := loadConfigFromPath(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParse)
}

func TestEnvVarOverridesSettingsFile(t *testing.T) {
	resetKoanf()

	path := writeSettings(t, `
analyze:
  preset: technique
  strict: false
`)

	// Set env vars that should override the settings file
	t.Setenv("DSFRKIT_ANALYZE_PRESET", "executive")
	t.Setenv("DSFRKIT_ANALYZE_STRICT", "true")

	require.NoError(t, loadConfigFromPath(path))

	assert.Equal(t, "executive", k.String("analyze.preset"))
	assert.True(t, k.Bool("analyze.strict"))
}

func TestFlagsOverrideSettingsFile(t *testing.T) {
	resetKoanf()

	path := writeSettings(t, `
analyze:
  output-format: markdown
  strict: true
`)
	require.NoError(t, loadConfigFromPath(path))

	cmd := &cobra.Command{Use: "analyze"}
	cmd.Flags().String("output-format", "", "")
	cmd.Flags().Bool("strict", false, "")
	cmd.Flags().String("preset", "", "")
	require.NoError(t, cmd.ParseFlags([]string{"--preset", "commercial"}))
	require.NoError(t, loadFlags(cmd.Flags()))

	assert.Equal(t, "commercial", getStringWithFallback("preset", "analyze.preset", ""))
	// Flags left at their default do not hide the settings file.
	assert.Equal(t, "markdown", getStringWithFallback("output-format", "analyze.output-format", ""))
	assert.True(t, getBoolWithFallback("strict", "analyze.strict", false))

	require.NoError(t, cmd.ParseFlags([]string{"--strict=false"}))
	require.NoError(t, loadFlags(cmd.Flags()))
	assert.False(t, getBoolWithFallback("strict", "analyze.strict", true))
}

func TestResolveAnalyzerConfig_FromSettings(t *testing.T) {
	resetKoanf()

	path := writeSettings(t, "review:\n  preset: executive\n")
	require.NoError(t, loadConfigFromPath(path))

	cfg, err := resolveAnalyzerConfig("review")
	require.NoError(t, err)
	assert.Equal(t, "executive", cfg.Preset)
	assert.Equal(t, 30, cfg.Thresholds.MaxWordsPerSlide)

	resetKoanf()
	t.Setenv("DSFRKIT_REVIEW_PRESET", "inconnu")
	require.NoError(t, loadConfigFromPath(path))
	_, err = resolveAnalyzerConfig("review")
	assert.ErrorIs(t, err, config.ErrUnknownPreset)
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "section.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "section.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "section.key", true))
}

func TestGetFloat64WithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.InDelta(t, 3.14, getFloat64WithFallback("flag-key", "section.key", 3.14), 0.01)
}
