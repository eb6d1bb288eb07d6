// Package deck holds the presentation analysis records shared by the extractor,
// the issue detector and the report writers.
package deck

// Severity ranks an issue. Only the three values below are valid.
type Severity string

// Severity levels
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank orders severities from most to least important (high=0).
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	return s.Rank() < 3
}

// Issue types emitted by the detector
const (
	IssueMissingTitle       = "missing_title"
	IssueTooManyWords       = "too_many_words"
	IssueTooManyBullets     = "too_many_bullets"
	IssueFontVariations     = "font_variations"
	IssueAlmostEmpty        = "almost_empty"
	IssueFontTooSmall       = "font_too_small"
	IssueTitleSlideTooLong  = "title_slide_too_long"
	IssueMissingConclusion  = "missing_conclusion"
	IssueTooManyDenseSlides = "too_many_dense_slides"
	IssueTooManyFontSizes   = "too_many_font_sizes"
)

// Issue is a single finding on a slide or on the whole deck.
type Issue struct {
	Type     string   `json:"type"`     // "too_many_words"
	Severity Severity `json:"severity"` // "medium"
	Message  string   `json:"message"`  // "72 mots (maximum 50)"
}

// Slide is the per-slide metric record.
type Slide struct {
	Index       int       `json:"index"` // 1-based position in the deck
	Title       string    `json:"title"`
	WordCount   int       `json:"word_count"`
	BulletCount int       `json:"bullet_count"`
	FontSizes   []float64 `json:"font_sizes"` // one entry per run with an explicit size
	HasImage    bool      `json:"has_image"`
	HasChart    bool      `json:"has_chart"`
	HasTable    bool      `json:"has_table"`
	Issues      []Issue   `json:"issues"`

	// Text is the slide's full text, used for framework detection only.
	Text string `json:"-"`
}

// DistinctFontSizes returns the number of different font sizes on the slide.
func (s Slide) DistinctFontSizes() int {
	seen := make(map[float64]bool, len(s.FontSizes))
	for _, size := range s.FontSizes {
		seen[size] = true
	}
	return len(seen)
}

// HasVisual reports whether the slide carries an image, chart or table.
func (s Slide) HasVisual() bool {
	return s.HasImage || s.HasChart || s.HasTable
}

// Summary aggregates the analysis.
type Summary struct {
	TotalIssues        int     `json:"total_issues"`
	HighSeverityIssues int     `json:"high_severity_issues"`
	MediumIssues       int     `json:"medium_severity_issues"`
	LowIssues          int     `json:"low_severity_issues"`
	AvgWordsPerSlide   float64 `json:"avg_words_per_slide"`
	AvgBulletsPerSlide float64 `json:"avg_bullets_per_slide"`
	SlidesWithImages   int     `json:"slides_with_images"`
	SlidesWithCharts   int     `json:"slides_with_charts"`
	SlidesWithTables   int     `json:"slides_with_tables"`
}

// Analysis is the full result for one deck. It is also the JSON report schema.
type Analysis struct {
	Version      string         `json:"version"`
	Filename     string         `json:"filename"`
	TotalSlides  int            `json:"total_slides"`
	ConfigUsed   map[string]any `json:"config_used"`
	Slides       []Slide        `json:"slides"`
	GlobalIssues []Issue        `json:"global_issues"`
	Summary      Summary        `json:"summary"`
}

// AllIssues returns slide issues followed by global issues.
func (a *Analysis) AllIssues() []Issue {
	var all []Issue
	for _, s := range a.Slides {
		all = append(all, s.Issues...)
	}
	return append(all, a.GlobalIssues...)
}
