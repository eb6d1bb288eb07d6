package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoreOf(t *testing.T, d Detection, name string) float64 {
	t.Helper()
	for _, s := range d.Scores {
		if s.Name == name {
			return s.Score
		}
	}
	t.Fatalf("no score for %s", name)
	return 0
}

func TestDetect_AIDA(t *testing.T) {
	texts := []string{
		"Attention : découvrez notre offre",
		"Pourquoi ? Les avantages et bénéfices",
		"La solution et le résultat",
		"Contactez-nous",
	}

	d := Detect(texts, DefaultMinConfidence)
	require.True(t, d.Found)
	assert.Equal(t, "AIDA", d.Detected)
	assert.Equal(t, 0.67, d.Confidence)

	assert.Equal(t, []Step{
		{Slide: 1, Stage: "attention", Confidence: 1},
		{Slide: 2, Stage: "intérêt", Confidence: 1},
		{Slide: 3, Stage: "désir", Confidence: 1},
		{Slide: 4, Stage: "action", Confidence: 0.5},
	}, d.Progression)

	assert.Len(t, d.Scores, len(Frameworks)+len(Patterns))
	assert.Equal(t, 0.25, scoreOf(t, d, "PASS"))
	for i := 1; i < len(d.Scores); i++ {
		assert.GreaterOrEqual(t, d.Scores[i-1].Score, d.Scores[i].Score)
	}
}

func TestDetect_NothingDetected(t *testing.T) {
	for _, texts := range [][]string{nil, {"Bonjour", "Au revoir"}} {
		d := Detect(texts, DefaultMinConfidence)
		assert.False(t, d.Found)
		assert.Equal(t, NoneDetected, d.Detected)
		assert.Zero(t, d.Confidence)
		assert.NotNil(t, d.Progression)
		assert.Empty(t, d.Progression)
	}
}

func TestDetect_ThresholdIsStrict(t *testing.T) {
	// one saturated PASS stage out of four scores exactly 0.25
	texts := []string{"Le défi, l'obstacle, l'enjeu"}

	d := Detect(texts, 0.25)
	assert.False(t, d.Found)
	assert.Equal(t, NoneDetected, d.Detected)
	assert.Equal(t, 0.25, d.Confidence)

	d = Detect(texts, 0.2)
	assert.True(t, d.Found)
	assert.Equal(t, "PASS", d.Detected)
}

func TestDetect_TiesGoToCatalogOrder(t *testing.T) {
	d := Detect([]string{"imaginez la perte"}, 0)
	require.True(t, d.Found)
	assert.Equal(t, "AIDA", d.Detected)
	assert.Equal(t, "AIDA", d.Scores[0].Name)
	assert.Equal(t, "PASS", d.Scores[1].Name)
	assert.Equal(t, d.Scores[0].Score, d.Scores[1].Score)
}

func TestDetect_Pattern(t *testing.T) {
	d := Detect([]string{"Synthèse", "synthese", "Recommandation", "Raison", "Preuve"}, DefaultMinConfidence)
	require.True(t, d.Found)
	assert.Equal(t, "Pyramide", d.Detected)
	assert.Equal(t, 1.0, d.Confidence)
	assert.Empty(t, d.Progression, "patterns have no stages")
}

func TestDetect_ProgressionTieGoesToEarliestStage(t *testing.T) {
	d := Detect([]string{
		"Découvrez et contactez",
		"Pourquoi ces avantages",
		"La solution",
		"Rien ici",
	}, DefaultMinConfidence)

	require.Equal(t, "AIDA", d.Detected)
	assert.Equal(t, []Step{
		{Slide: 1, Stage: "attention", Confidence: 0.5},
		{Slide: 2, Stage: "intérêt", Confidence: 1},
		{Slide: 3, Stage: "désir", Confidence: 0.5},
	}, d.Progression)
}

func TestDetect_AccentInsensitive(t *testing.T) {
	a := Detect([]string{"PROBLEME", "probleme", "Problème"}, 0)
	b := Detect([]string{"problème", "problème", "problème"}, 0)
	assert.Equal(t, a.Scores, b.Scores)
	assert.Equal(t, 0.25, scoreOf(t, a, "PASS"))
}

func TestDetect_DoublingKeepsArgmax(t *testing.T) {
	inputs := [][]string{
		{"découvrez", "pourquoi", "solution"},
		{"le contexte", "cependant", "une proposition"},
		{"un impact", "une méthode"},
		{"la catégorie", "le segment"},
		{"maintenant", "quoi de neuf"},
	}

	for _, texts := range inputs {
		once := Detect(texts, 0)
		twice := Detect(append(append([]string{}, texts...), texts...), 0)

		assert.Equal(t, once.Detected, twice.Detected, "texts %q", texts)
		for _, s := range once.Scores {
			assert.InDelta(t, 2*s.Score, scoreOf(t, twice, s.Name), 0.011, "%s on %q", s.Name, texts)
		}
	}
}

func TestStageAndPatternScores(t *testing.T) {
	assert.Equal(t, 0.0, StageScore(0))
	assert.InDelta(t, 1.0/3, StageScore(1), 1e-9)
	assert.Equal(t, 1.0, StageScore(3))
	assert.Equal(t, 1.0, StageScore(10))

	assert.Equal(t, 0.4, PatternScore(2))
	assert.Equal(t, 1.0, PatternScore(5))
	assert.Equal(t, 1.0, PatternScore(6))
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		category string
		want     string
		primary  string
	}{
		{"commercial", "commercial", "AIDA"},
		{"PROBLEME", "problème", "PASS"},
		{"strategie", "stratégie", "SCQA"},
		{"compte-rendu", "compte-rendu", "What/So What/Now What"},
		{"Conseil", "conseil", "Pyramide"},
		{"", "general", "SCQA"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s, err := Suggest(tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Category)
			assert.Equal(t, tt.primary, s.Primary)
			assert.NotEmpty(t, s.Reason)
			assert.NotEmpty(t, s.Structure)
			assert.NotEmpty(t, s.Alternatives)
		})
	}
}

func TestSuggest_UnknownCategory(t *testing.T) {
	_, err := Suggest("marketing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)

	var catErr *UnknownCategoryError
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, Categories(), catErr.Valid)
	assert.Contains(t, err.Error(), "stratégie")
}

func TestSuggest_ReturnsCopies(t *testing.T) {
	s, err := Suggest("conseil")
	require.NoError(t, err)
	s.Alternatives[0] = "changed"

	again, err := Suggest("conseil")
	require.NoError(t, err)
	assert.Equal(t, "MECE", again.Alternatives[0])
}
