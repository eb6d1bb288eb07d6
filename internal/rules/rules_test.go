package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/dsfrkit/internal/config"
	"github.com/yacobolo/dsfrkit/internal/deck"
)

func issueTypes(issues []deck.Issue) []string {
	types := make([]string, 0, len(issues))
	for _, i := range issues {
		types = append(types, i.Type)
	}
	return types
}

func TestDetect(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name  string
		slide deck.Slide
		want  []string
	}{
		{
			name:  "clean slide",
			slide: deck.Slide{Title: "Contexte", WordCount: 20, BulletCount: 3, FontSizes: []float64{28, 18}},
			want:  []string{},
		},
		{
			name:  "missing title",
			slide: deck.Slide{WordCount: 20},
			want:  []string{deck.IssueMissingTitle},
		},
		{
			name:  "too many words",
			slide: deck.Slide{Title: "T", WordCount: 51},
			want:  []string{deck.IssueTooManyWords},
		},
		{
			name:  "word count at the limit is fine",
			slide: deck.Slide{Title: "T", WordCount: 50},
			want:  []string{},
		},
		{
			name:  "too many bullets",
			slide: deck.Slide{Title: "T", WordCount: 20, BulletCount: 8},
			want:  []string{deck.IssueTooManyBullets},
		},
		{
			name:  "font variations",
			slide: deck.Slide{Title: "T", WordCount: 20, FontSizes: []float64{32, 24, 18, 16, 14, 14}},
			want:  []string{deck.IssueFontVariations},
		},
		{
			name:  "almost empty",
			slide: deck.Slide{Title: "T", WordCount: 2},
			want:  []string{deck.IssueAlmostEmpty},
		},
		{
			name:  "almost empty but has a chart",
			slide: deck.Slide{Title: "T", WordCount: 2, HasChart: true},
			want:  []string{},
		},
		{
			name:  "font too small",
			slide: deck.Slide{Title: "T", WordCount: 20, FontSizes: []float64{18, 10}},
			want:  []string{deck.IssueFontTooSmall},
		},
		{
			name:  "rules are independent",
			slide: deck.Slide{WordCount: 3, FontSizes: []float64{8, 9, 10, 11, 12}},
			want: []string{
				deck.IssueMissingTitle, deck.IssueFontVariations,
				deck.IssueAlmostEmpty, deck.IssueFontTooSmall,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, issueTypes(Detect(tt.slide, cfg)))
		})
	}
}

func TestDetect_SeverityLevels(t *testing.T) {
	cfg := config.Default()
	issues := Detect(deck.Slide{WordCount: 100, BulletCount: 10, FontSizes: []float64{8, 9, 10, 11, 12}}, cfg)

	got := map[string]deck.Severity{}
	for _, i := range issues {
		got[i.Type] = i.Severity
		assert.NotEmpty(t, i.Message)
	}
	assert.Equal(t, deck.SeverityHigh, got[deck.IssueMissingTitle])
	assert.Equal(t, deck.SeverityMedium, got[deck.IssueTooManyWords])
	assert.Equal(t, deck.SeverityMedium, got[deck.IssueTooManyBullets])
	assert.Equal(t, deck.SeverityLow, got[deck.IssueFontVariations])
	assert.Equal(t, deck.SeverityLow, got[deck.IssueFontTooSmall])
}

func TestDetect_NoTitleAlwaysHigh(t *testing.T) {
	cfg := config.Default()
	variants := []deck.Slide{
		{},
		{WordCount: 500, BulletCount: 40},
		{WordCount: 10, HasImage: true, HasChart: true, HasTable: true},
		{WordCount: 1, FontSizes: []float64{1, 2, 3, 4, 5, 6, 7}},
	}

	for _, s := range variants {
		found := false
		for _, i := range Detect(s, cfg) {
			if i.Severity == deck.SeverityHigh {
				found = true
			}
		}
		assert.True(t, found, "slide %+v must yield a high issue", s)
	}
}

func TestDetect_ImageNeverAlmostEmpty(t *testing.T) {
	for _, preset := range append(config.PresetNames(), "") {
		cfg, err := config.Resolve(preset, "")
		require.NoError(t, err)

		issues := Detect(deck.Slide{WordCount: 0, HasImage: true}, cfg)
		assert.NotContains(t, issueTypes(issues), deck.IssueAlmostEmpty, "preset %q", preset)
	}
}

func TestDetect_UsesPresetThresholds(t *testing.T) {
	cfg, err := config.Resolve("executive", "")
	require.NoError(t, err)

	issues := Detect(deck.Slide{Title: "T", WordCount: 35}, cfg)
	assert.Equal(t, []string{deck.IssueTooManyWords}, issueTypes(issues))
	assert.Contains(t, issues[0].Message, "35 mots")
	assert.Contains(t, issues[0].Message, "30 mots")
}

func TestDetectGlobal(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name   string
		slides []deck.Slide
		want   []string
	}{
		{
			name: "well structured deck",
			slides: []deck.Slide{
				{Title: "Titre", WordCount: 3},
				{Title: "Contenu", WordCount: 30},
				{Title: "Merci", WordCount: 1},
			},
			want: []string{},
		},
		{
			name: "title slide too long",
			slides: []deck.Slide{
				{Title: "Titre", WordCount: 10},
				{Title: "Conclusion", WordCount: 5},
			},
			want: []string{deck.IssueTitleSlideTooLong},
		},
		{
			name: "closing marker is accent and case insensitive",
			slides: []deck.Slide{
				{Title: "Titre", WordCount: 2},
				{Title: "SYNTHESE ET SUITE", WordCount: 5},
			},
			want: []string{},
		},
		{
			name: "closing marker matches any form of conclure",
			slides: []deck.Slide{
				{Title: "Titre", WordCount: 2},
				{Title: "Pour conclure", WordCount: 5},
			},
			want: []string{},
		},
		{
			name: "missing conclusion",
			slides: []deck.Slide{
				{Title: "Titre", WordCount: 2},
				{Title: "Annexes", WordCount: 5},
			},
			want: []string{deck.IssueMissingConclusion},
		},
		{
			name: "too many dense slides",
			slides: []deck.Slide{
				{Title: "Titre", WordCount: 2},
				{Title: "A", WordCount: 41},
				{Title: "B", WordCount: 45},
				{Title: "C", WordCount: 60},
				{Title: "D", WordCount: 41},
				{Title: "Questions", WordCount: 1},
			},
			want: []string{deck.IssueTooManyDenseSlides},
		},
		{
			name: "too many font sizes across the deck",
			slides: []deck.Slide{
				{Title: "Titre", WordCount: 2, FontSizes: []float64{40, 32}},
				{Title: "A", WordCount: 5, FontSizes: []float64{28, 24, 20}},
				{Title: "Merci", WordCount: 1, FontSizes: []float64{18, 16}},
			},
			want: []string{deck.IssueTooManyFontSizes},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := issueTypes(DetectGlobal(tt.slides, cfg))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectGlobal_Severities(t *testing.T) {
	slides := []deck.Slide{
		{Title: "Titre", WordCount: 20, FontSizes: []float64{40, 32}},
		{Title: "A", WordCount: 5, FontSizes: []float64{28, 24, 20}},
		{Title: "Annexes", WordCount: 1, FontSizes: []float64{18, 16}},
	}

	got := map[string]deck.Severity{}
	for _, i := range DetectGlobal(slides, config.Default()) {
		got[i.Type] = i.Severity
	}
	assert.Equal(t, map[string]deck.Severity{
		deck.IssueTitleSlideTooLong: deck.SeverityMedium,
		deck.IssueMissingConclusion: deck.SeverityLow,
		deck.IssueTooManyFontSizes:  deck.SeverityMedium,
	}, got)
}

func TestDetectGlobal_StructureChecksCanBeDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Structure.CheckTitleSlide = false
	cfg.Structure.CheckClosingSlide = false

	issues := DetectGlobal([]deck.Slide{{Title: "Long", WordCount: 80}, {Title: "Annexes"}}, cfg)
	assert.Empty(t, issues)
}

func TestDetectGlobal_Empty(t *testing.T) {
	assert.Empty(t, DetectGlobal(nil, config.Default()))
}

func TestApply(t *testing.T) {
	cfg := config.Default()
	in := []deck.Slide{
		{Index: 1, Title: "Titre", WordCount: 3, HasImage: true},
		{Index: 2, WordCount: 20},
	}

	slides, global := Apply(in, cfg)
	require.Len(t, slides, 2)

	assert.NotNil(t, slides[0].Issues)
	assert.Empty(t, slides[0].Issues)
	assert.Equal(t, []string{deck.IssueMissingTitle}, issueTypes(slides[1].Issues))
	assert.Equal(t, []string{deck.IssueMissingConclusion}, issueTypes(global))

	// inputs are left untouched
	assert.Nil(t, in[0].Issues)
	assert.Nil(t, in[1].Issues)
}
