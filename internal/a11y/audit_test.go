package a11y

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/dsfrkit/internal/deck"
	"github.com/yacobolo/dsfrkit/internal/dsfr"
)

func page(body string) string {
	return `<!DOCTYPE html><html lang="fr"><head><title>t</title></head><body>` + body + `</body></html>`
}

func rules(findings []Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Rule)
	}
	return out
}

func TestAudit(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected []string
	}{
		{
			name:     "clean page",
			doc:      page(`<h1>Titre</h1><img src="a.png" alt=""><label for="nom">Nom</label><input id="nom">`),
			expected: []string{},
		},
		{
			name:     "missing lang",
			doc:      `<html><body><h1>Titre</h1></body></html>`,
			expected: []string{RuleLang},
		},
		{
			name:     "blank lang",
			doc:      `<html lang=" "><body><h1>Titre</h1></body></html>`,
			expected: []string{RuleLang},
		},
		{
			name:     "image without alt",
			doc:      page(`<h1>Titre</h1><img src="logo.png">`),
			expected: []string{RuleImageAlt},
		},
		{
			name:     "unlabelled controls",
			doc:      page(`<h1>Titre</h1><input id="a"><select name="b"></select><textarea></textarea>`),
			expected: []string{RuleControlLabel, RuleControlLabel, RuleControlLabel},
		},
		{
			name: "other ways to label a control",
			doc: page(`<h1>Titre</h1>
				<label>Ville <input name="ville"></label>
				<input aria-label="Recherche">
				<span id="l">Code</span><input aria-labelledby="l">
				<input title="Quantité">`),
			expected: []string{},
		},
		{
			name:     "controls that need no label",
			doc:      page(`<h1>Titre</h1><input type="hidden" name="csrf"><input type="submit" value="Envoyer"><input type="BUTTON" value="x">`),
			expected: []string{},
		},
		{
			name:     "dangling aria-describedby",
			doc:      page(`<h1>Titre</h1><p id="aide">Aide</p><button aria-describedby="aide absent">Ok</button>`),
			expected: []string{RuleDescribedBy},
		},
		{
			name:     "invalid field without message",
			doc:      page(`<h1>Titre</h1><label for="x">X</label><input id="x" aria-invalid="true">`),
			expected: []string{RuleInvalidDescription},
		},
		{
			name:     "no h1",
			doc:      page(`<h2>Sous-titre</h2>`),
			expected: []string{RuleSingleH1},
		},
		{
			name:     "two h1",
			doc:      page(`<h1>Un</h1><h1>Deux</h1>`),
			expected: []string{RuleSingleH1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings, err := Audit(strings.NewReader(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rules(findings))
		})
	}
}

func TestAudit_FindingDetails(t *testing.T) {
	findings, err := Audit(strings.NewReader(page(`<h1>a</h1><h1>b</h1><h1>c</h1><input name="q" aria-describedby="q-aide">`)))
	require.NoError(t, err)
	require.Len(t, findings, 3)

	assert.Equal(t, Finding{
		Rule:     RuleControlLabel,
		Severity: deck.SeverityHigh,
		Message:  "Champ de formulaire sans étiquette associée",
		Element:  `<input name="q">`,
	}, findings[0])
	assert.Equal(t, RuleDescribedBy, findings[1].Rule)
	assert.Contains(t, findings[1].Message, `"q-aide"`)
	assert.Equal(t, "La page a 3 titres de niveau 1, un seul est attendu", findings[2].Message)
	assert.Equal(t, deck.SeverityMedium, findings[2].Severity)
}

func TestAudit_GeneratedPages(t *testing.T) {
	configs := map[string]string{
		"form": `{"fields": [{"label": "Nom", "required": true}, {"label": "Courriel", "type": "email", "error": "Adresse invalide"}]}`,
	}

	for _, kind := range dsfr.PageKinds() {
		t.Run(kind, func(t *testing.T) {
			html, err := dsfr.GeneratePage(kind, []byte(configs[kind]))
			require.NoError(t, err)

			findings, err := Audit(strings.NewReader(html))
			require.NoError(t, err)
			assert.Empty(t, findings)
		})
	}
}

func TestAudit_GeneratedComponents(t *testing.T) {
	input, err := dsfr.GenerateComponent("input", []byte(`{"label": "Téléphone", "type": "tel", "error": "Numéro invalide"}`))
	require.NoError(t, err)

	findings, err := Audit(strings.NewReader(page("<h1>Formulaire</h1>" + input)))
	require.NoError(t, err)
	assert.Empty(t, findings)

	card, err := dsfr.GenerateComponent("card", []byte(`{"image": "/img/carte.png"}`))
	require.NoError(t, err)
	findings, err = Audit(strings.NewReader(page("<h1>Cartes</h1>" + card)))
	require.NoError(t, err)
	assert.Empty(t, findings, "card images are decorative by default")
}
