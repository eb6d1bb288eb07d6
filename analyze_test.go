package dsfrkit

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/dsfrkit/internal/config"
	"github.com/yacobolo/dsfrkit/internal/pptx/pptxtest"
)

func sampleDeck() pptxtest.Deck {
	return pptxtest.Deck{Slides: []string{
		pptxtest.Slide(pptxtest.CenterTitle("Présentation"), pptxtest.Body(pptxtest.P("Sous-titre du projet"))),
		pptxtest.Slide(pptxtest.Body(pptxtest.P(strings.TrimSpace(strings.Repeat("mot ", 60))))),
		pptxtest.Slide(pptxtest.Title("Merci"), pptxtest.Picture()),
	}}
}

func issueTypes(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Type)
	}
	return out
}

func TestAnalyze(t *testing.T) {
	path := sampleDeck().Write(t, t.TempDir(), "deck.pptx")

	a, err := Analyze(path, config.Default(), AnalyzeOptions{})
	require.NoError(t, err)

	assert.Equal(t, ReportVersion, a.Version)
	assert.Equal(t, "deck.pptx", a.Filename)
	assert.Equal(t, 3, a.TotalSlides)
	require.Len(t, a.Slides, 3)

	assert.Equal(t, "Présentation", a.Slides[0].Title)
	assert.Equal(t, 60, a.Slides[1].WordCount)
	assert.Equal(t, []string{"missing_title", "too_many_words"}, issueTypes(a.Slides[1].Issues))
	assert.Empty(t, a.Slides[2].Issues, "a picture keeps the closing slide from being almost empty")
	assert.Empty(t, a.GlobalIssues)

	assert.Equal(t, 1, a.Summary.HighSeverityIssues)
	assert.Equal(t, 1, a.Summary.SlidesWithImages)
	assert.NotEmpty(t, a.ConfigUsed)
}

func TestAnalyze_Preset(t *testing.T) {
	deck := pptxtest.Deck{Slides: []string{
		pptxtest.Slide(pptxtest.Title("Titre")),
		pptxtest.Slide(pptxtest.Title("Contenu"), pptxtest.Body(pptxtest.P(strings.TrimSpace(strings.Repeat("mot ", 35))))),
		pptxtest.Slide(pptxtest.Title("Conclusion"), pptxtest.Chart()),
	}}
	path := deck.Write(t, t.TempDir(), "exec.pptx")

	def, err := Analyze(path, config.Default(), AnalyzeOptions{})
	require.NoError(t, err)
	assert.Empty(t, def.Slides[1].Issues)

	cfg, err := config.Resolve("executive", "")
	require.NoError(t, err)
	exec, err := Analyze(path, cfg, AnalyzeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"too_many_words"}, issueTypes(exec.Slides[1].Issues))
}

func TestAnalyze_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Analyze(filepath.Join(dir, "absent.pptx"), config.Default(), AnalyzeOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)

	notDeck := filepath.Join(dir, "notes.pptx")
	require.NoError(t, os.WriteFile(notDeck, []byte("pas un zip"), 0644))
	_, err = Analyze(notDeck, config.Default(), AnalyzeOptions{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFileNotFound)
}

func TestDetectFramework(t *testing.T) {
	deck := pptxtest.Deck{Slides: []string{
		pptxtest.Slide(pptxtest.Title("Contexte"), pptxtest.Body(pptxtest.P("La situation actuelle, aujourd'hui"))),
		pptxtest.Slide(pptxtest.Title("Le problème"), pptxtest.Body(pptxtest.P("Cependant un défi, mais un obstacle"))),
		pptxtest.Slide(pptxtest.Title("Question"), pptxtest.Body(pptxtest.P("Comment faire ?"))),
		pptxtest.Slide(pptxtest.Title("Notre réponse"), pptxtest.Body(pptxtest.P("Une solution et une recommandation"))),
	}}
	path := deck.Write(t, t.TempDir(), "scqa.pptx")

	d, err := DetectFramework(path, config.Default(), AnalyzeOptions{})
	require.NoError(t, err)
	assert.True(t, d.Found)
	assert.Equal(t, "SCQA", d.Detected)
	require.NotEmpty(t, d.Progression)
	assert.Equal(t, "situation", d.Progression[0].Stage)

	_, err = DetectFramework(filepath.Join(t.TempDir(), "absent.pptx"), config.Default(), AnalyzeOptions{})
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestJSONRoundTrip(t *testing.T) {
	path := sampleDeck().Write(t, t.TempDir(), "deck.pptx")
	a, err := Analyze(path, config.Default(), AnalyzeOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, a))
	assert.Contains(t, buf.String(), `"version": "1.0"`)
	assert.Contains(t, buf.String(), `"medium_severity_issues"`)

	back, err := ReadJSON(&buf)
	require.NoError(t, err)

	for i := range a.Slides {
		a.Slides[i].Text = ""
	}
	if diff := cmp.Diff(a.Slides, back.Slides); diff != "" {
		t.Errorf("slides mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, a.Summary, back.Summary)
	assert.Equal(t, 50.0, back.ConfigUsed["thresholds"].(map[string]any)["max_words_per_slide"])
}

func TestReadJSON_Malformed(t *testing.T) {
	_, err := ReadJSON(strings.NewReader("{pas du json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("[1, 2"), 0644))
	_, err = ReadJSONFile(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), bad)

	_, err = ReadJSONFile(filepath.Join(dir, "absent.json"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}
