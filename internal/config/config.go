// Package config resolves the analyzer settings: built-in defaults, an optional
// named preset and an optional user file, merged key by key.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Thresholds drives the per-slide and deck-wide rules.
type Thresholds struct {
	MaxWordsPerSlide   int `koanf:"max_words_per_slide"`
	MinWordsPerSlide   int `koanf:"min_words_per_slide"`
	MaxBulletsPerSlide int `koanf:"max_bullets_per_slide"`
	MaxFontVariations  int `koanf:"max_font_variations"`
	MinFontSize        int `koanf:"min_font_size"`
	DenseSlideWords    int `koanf:"dense_slide_words"`
	MaxDenseSlides     int `koanf:"max_dense_slides"`
	MaxTotalFontSizes  int `koanf:"max_total_font_sizes"`
	FirstSlideMaxWords int `koanf:"first_slide_max_words"`
}

// Structure drives the deck-wide title/closing checks.
type Structure struct {
	CheckTitleSlide   bool     `koanf:"check_title_slide"`
	CheckClosingSlide bool     `koanf:"check_closing_slide"`
	ClosingMarkers    []string `koanf:"closing_markers"`
}

// Framework holds the narrative detection settings.
type Framework struct {
	MinConfidence float64 `koanf:"min_confidence"`
}

// Annotation holds the review writer settings.
type Annotation struct {
	AddSummarySlide bool              `koanf:"add_summary_slide"`
	Colors          map[string]string `koanf:"colors"`
}

// Config is the resolved, read-only configuration for one run.
type Config struct {
	Preset     string     `koanf:"-"`
	Table      Table      `koanf:"-"` // merged table, reported as config_used
	Thresholds Thresholds `koanf:"thresholds"`
	Structure  Structure  `koanf:"structure"`
	Framework  Framework  `koanf:"framework"`
	Annotation Annotation `koanf:"annotation"`
}

// Merge overlays onto base and returns a new table. Nested tables present on both
// sides merge recursively; any other overlay value replaces the base value.
// Neither argument is modified.
func Merge(base, overlay Table) Table {
	out := copyTable(base)
	for key, ov := range overlay {
		if ovTable, ok := ov.(Table); ok {
			if baseTable, ok := out[key].(Table); ok {
				out[key] = Merge(baseTable, ovTable)
				continue
			}
		}
		out[key] = copyValue(ov)
	}
	return out
}

func copyTable(t Table) Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case Table:
		return copyTable(val)
	case []any:
		return append([]any(nil), val...)
	case []string:
		return append([]string(nil), val...)
	default:
		return v
	}
}

// LoadFile parses a YAML or JSON settings file into a table.
// The parser is chosen from the extension; anything but .json is read as YAML.
func LoadFile(path string) (Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var parser koanf.Parser = yaml.Parser()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		parser = json.Parser()
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return k.Raw(), nil
}

// Resolve builds the configuration from defaults, the optional preset and the
// optional override file, in that order.
func Resolve(preset, overridePath string) (*Config, error) {
	table := Defaults()

	if preset != "" {
		overlay, err := Preset(preset)
		if err != nil {
			return nil, err
		}
		table = Merge(table, overlay)
	}

	if overridePath != "" {
		overlay, err := LoadFile(overridePath)
		if err != nil {
			return nil, err
		}
		table = Merge(table, overlay)
	}

	cfg, err := FromTable(table)
	if err != nil {
		return nil, err
	}
	cfg.Preset = preset
	return cfg, nil
}

// FromTable decodes a merged table into the typed configuration.
func FromTable(table Table) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(table, ""), nil); err != nil {
		return nil, fmt.Errorf("loading settings table: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, &ParseError{Path: "settings", Err: err}
	}
	cfg.Table = table
	return cfg, nil
}

// Default returns the configuration built from the defaults alone.
func Default() *Config {
	cfg, err := FromTable(Defaults())
	if err != nil {
		// The built-in table always decodes.
		panic(err)
	}
	return cfg
}

// SeverityColor returns the annotation fill for a severity, falling back to gray.
func (c *Config) SeverityColor(severity string) string {
	if color, ok := c.Annotation.Colors[severity]; ok && color != "" {
		return strings.TrimPrefix(color, "#")
	}
	return "666666"
}
