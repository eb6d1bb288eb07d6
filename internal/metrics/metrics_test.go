package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/dsfrkit/internal/pptx"
	"github.com/yacobolo/dsfrkit/internal/pptx/pptxtest"
)

func readDeck(t *testing.T, slides ...string) *pptx.Presentation {
	t.Helper()
	pres, err := pptx.Read(pptxtest.Deck{Slides: slides}.MustBuild(t))
	require.NoError(t, err)
	return pres
}

func TestExtract(t *testing.T) {
	pres := readDeck(t,
		pptxtest.Slide(
			pptxtest.SizedTitle("Notre   proposition", 32),
			pptxtest.Body(
				pptxtest.Para{Text: "Un point clé", Size: 18},
				pptxtest.Para{Text: "Détail", Level: 1, Size: 14},
				pptxtest.Para{Text: "• Puce tapée", Size: 14},
				pptxtest.Para{Text: "- Tiret"},
				pptxtest.Para{Text: "* Étoile"},
				pptxtest.Para{Text: "Phrase normale"},
			),
		),
		pptxtest.Slide(pptxtest.Picture()),
		pptxtest.Slide(
			pptxtest.Title("Chiffres"),
			pptxtest.Chart(),
			pptxtest.Table([]string{"beaucoup de mots dans ce tableau"}),
		),
	)

	slides := Extract(pres)
	require.Len(t, slides, 3)

	first := slides[0]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, "Notre proposition", first.Title)
	// title 2 + 3 + 1 + 3 + 2 + 2 + 2
	assert.Equal(t, 15, first.WordCount)
	assert.Equal(t, 4, first.BulletCount)
	assert.ElementsMatch(t, []float64{32, 18, 14, 14}, first.FontSizes)
	assert.Equal(t, 3, first.DistinctFontSizes())
	assert.False(t, first.HasVisual())

	second := slides[1]
	assert.Equal(t, 2, second.Index)
	assert.Empty(t, second.Title)
	assert.Equal(t, 0, second.WordCount)
	assert.True(t, second.HasImage)

	third := slides[2]
	assert.Equal(t, "Chiffres", third.Title)
	assert.True(t, third.HasChart)
	assert.True(t, third.HasTable)
	assert.Equal(t, 1, third.WordCount, "table cell text is not counted")
}

func TestExtract_GroupedShapes(t *testing.T) {
	pres := readDeck(t, pptxtest.Slide(
		pptxtest.Title("Groupe"),
		pptxtest.Group(
			pptxtest.TextBox(pptxtest.Para{Text: "texte groupé ici", Size: 12}),
			pptxtest.Group(pptxtest.Picture()),
		),
	))

	s := Extract(pres)[0]
	assert.Equal(t, 4, s.WordCount)
	assert.True(t, s.HasImage)
	assert.Equal(t, []float64{12}, s.FontSizes)
}

func TestExtract_LineBreakSeparatesWords(t *testing.T) {
	body := `<p:sp><p:nvSpPr><p:cNvPr id="30" name="Texte"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr/><p:txBody><a:bodyPr/>` +
		`<a:p><a:r><a:rPr lang="fr-FR" sz="1800" b="true"/><a:t>Bonjour</a:t></a:r><a:br/><a:r><a:t>Monde</a:t></a:r></a:p>` +
		`</p:txBody></p:sp>`
	pres := readDeck(t, pptxtest.Slide(body))

	s := Extract(pres)[0]
	assert.Equal(t, 2, s.WordCount)
	assert.Equal(t, []float64{18}, s.FontSizes)
	assert.Equal(t, 0, s.BulletCount)
}

func TestExtract_EmptyDeckSlide(t *testing.T) {
	pres := readDeck(t, pptxtest.Slide())

	s := Extract(pres)[0]
	assert.Equal(t, 0, s.WordCount)
	assert.Equal(t, 0, s.BulletCount)
	assert.Empty(t, s.FontSizes)
	assert.Empty(t, s.Title)
}

func TestSlideText(t *testing.T) {
	pres := readDeck(t,
		pptxtest.Slide(pptxtest.Title("Situation"), pptxtest.Body(pptxtest.P("Le contexte actuel"))),
		pptxtest.Slide(pptxtest.Title("Réponse")),
	)

	texts := Texts(Extract(pres))
	assert.Equal(t, []string{"Situation\nLe contexte actuel", "Réponse"}, texts)
}

func TestIsBullet(t *testing.T) {
	tests := []struct {
		level int
		text  string
		want  bool
	}{
		{0, "Texte", false},
		{1, "Texte", true},
		{0, "• Puce", true},
		{0, "  - Tiret indenté", true},
		{0, "*", true},
		{0, "", false},
		{0, "Non - pas une puce", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isBullet(tt.level, tt.text), "level=%d text=%q", tt.level, tt.text)
	}
}
