package config

import "sort"

// Table is a nested settings table. Nested sections are Tables themselves.
type Table = map[string]any

// Defaults returns a fresh copy of the built-in settings.
func Defaults() Table {
	return Table{
		"thresholds": Table{
			"max_words_per_slide":   50,
			"min_words_per_slide":   5,
			"max_bullets_per_slide": 7,
			"max_font_variations":   4,
			"min_font_size":         14,
			"dense_slide_words":     40,
			"max_dense_slides":      3,
			"max_total_font_sizes":  6,
			"first_slide_max_words": 10,
		},
		"structure": Table{
			"check_title_slide":   true,
			"check_closing_slide": true,
			"closing_markers": []any{
				"conclu", "merci", "questions", "synthèse",
				"thank", "prochaines étapes", "next steps", "résumé",
			},
		},
		"framework": Table{
			"min_confidence": 0.2,
		},
		"annotation": Table{
			"add_summary_slide": true,
			"colors": Table{
				"high":   "CE0500",
				"medium": "B34000",
				"low":    "0063CB",
			},
		},
	}
}

// presets holds overlays keyed by name. Use Presets() for a copy.
// conseil is the default table itself.
func presets() map[string]Table {
	return map[string]Table{
		"conseil": {},
		"executive": {
			"thresholds": Table{
				"max_words_per_slide":   30,
				"max_bullets_per_slide": 5,
			},
		},
		"technique": {
			"thresholds": Table{
				"max_words_per_slide":   70,
				"max_bullets_per_slide": 10,
				"min_font_size":         12,
				"dense_slide_words":     60,
			},
		},
		"commercial": {
			"thresholds": Table{
				"max_words_per_slide":   40,
				"max_bullets_per_slide": 6,
				"min_font_size":         16,
			},
			"structure": Table{
				"closing_markers": []any{
					"contact", "merci", "offre", "prochaines étapes", "questions",
				},
			},
		},
		"dsfr-strict": {
			"thresholds": Table{
				"min_font_size":         14,
				"max_total_font_sizes":  4,
				"first_slide_max_words": 8,
			},
		},
	}
}

// Presets returns the named preset overlays.
func Presets() map[string]Table {
	return presets()
}

// PresetNames returns the valid preset names in sorted order.
func PresetNames() []string {
	all := presets()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the overlay for name.
func Preset(name string) (Table, error) {
	p, ok := presets()[name]
	if !ok {
		return nil, &UnknownPresetError{Name: name, Valid: PresetNames()}
	}
	return p, nil
}
