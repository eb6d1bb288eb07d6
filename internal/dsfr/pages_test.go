package dsfr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageKinds(t *testing.T) {
	assert.Equal(t, []string{"dashboard", "error", "form", "landing", "standard"}, PageKinds())
}

func TestGeneratePage_Layout(t *testing.T) {
	for _, kind := range PageKinds() {
		t.Run(kind, func(t *testing.T) {
			html, err := GeneratePage(kind, nil)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>\n<html lang=\"fr\">"))
			assert.Contains(t, html, `<main id="contenu" role="main">`)
			assert.Contains(t, html, `<div class="fr-skiplinks">`)
			assert.Contains(t, html, `<header role="banner" class="fr-header" id="header">`)
			assert.Contains(t, html, `<footer class="fr-footer"`)
			assert.Contains(t, html, DefaultAssets+"/dsfr.min.css")
			assert.Equal(t, 1, strings.Count(html, "<h1"), "a page has exactly one level-one heading")
			assert.True(t, strings.HasSuffix(strings.TrimSpace(html), "</html>"))

			unknown, err := AuditClasses(strings.NewReader(html), KnownClasses())
			require.NoError(t, err)
			assert.Empty(t, unknown)
		})
	}
}

func TestGeneratePage_Standard(t *testing.T) {
	html, err := GeneratePage("standard", []byte(`{
		"title": "Aides au logement",
		"heading": "Les aides au logement",
		"lead": "Tout savoir sur les aides.",
		"sections": [{"heading": "Qui peut en bénéficier ?", "text": "Les locataires."}],
		"dark": true,
		"header": {"theme_switcher": true, "nav": [
			{"label": "Accueil", "href": "/"},
			{"label": "Logement", "href": "/logement", "active": true}
		]},
		"breadcrumb": {"items": [{"label": "Accueil", "href": "/"}, {"label": "Logement"}]}
	}`))
	require.NoError(t, err)

	assert.Contains(t, html, `<html lang="fr" data-fr-scheme="dark">`)
	assert.Contains(t, html, "<title>Aides au logement</title>")
	assert.Contains(t, html, "<h1>Les aides au logement</h1>")
	assert.Contains(t, html, `<p class="fr-text--lead">Tout savoir sur les aides.</p>`)
	assert.Contains(t, html, "<h2>Qui peut en bénéficier ?</h2>")
	assert.Contains(t, html, `href="/logement" target="_self" aria-current="page">Logement</a>`)
	assert.Contains(t, html, `data-fr-theme="dark" aria-pressed="true"`, "the header follows the page scheme")
	assert.Contains(t, html, `<a class="fr-breadcrumb__link" aria-current="page">Logement</a>`)
	assert.NotContains(t, html, "Section principale")
}

func TestGeneratePage_WithoutHeaderAndFooter(t *testing.T) {
	html, err := GeneratePage("standard", []byte(`{"no_header": true, "no_footer": true}`))
	require.NoError(t, err)

	assert.NotContains(t, html, "<header")
	assert.NotContains(t, html, "<footer")
	assert.Contains(t, html, `href="#contenu"`)
	assert.NotContains(t, html, `href="#navigation"`, "skip links only target what the page renders")
	assert.NotContains(t, html, `href="#footer"`)
}

func TestGeneratePage_Form(t *testing.T) {
	html, err := GeneratePage("form", []byte(`{
		"heading": "Demande de rendez-vous",
		"fields": [
			{"label": "Nom", "required": true},
			{"label": "Courriel", "type": "email", "error": "Adresse invalide"}
		],
		"submit": "Valider"
	}`))
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Demande de rendez-vous</h1>")
	assert.Contains(t, html, `<form action="/submit" method="post">`)
	assert.Equal(t, 2, strings.Count(html, `<div class="fr-input-group`))
	assert.Contains(t, html, `aria-describedby="courriel-error"`)
	assert.Contains(t, html, `<div class="fr-messages-group" id="form-messages" aria-live="polite">`)
	assert.Contains(t, html, `<button type="submit" class="fr-btn">Valider</button>`)

	defaults, err := GeneratePage("form", nil)
	require.NoError(t, err)
	assert.Contains(t, defaults, `id="prenom"`)
	assert.Contains(t, defaults, `type="email" id="email"`)
}

func TestGeneratePage_FormValidation(t *testing.T) {
	_, err := GeneratePage("form", []byte(`{"fields": [{"label": "Nom"}, {"label": "nom"}]}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidComponent)
	assert.Contains(t, err.Error(), "duplicate input id")

	_, err = GeneratePage("form", []byte(`{"method": "put"}`))
	assert.ErrorIs(t, err, ErrInvalidComponent)
}

func TestGeneratePage_Error(t *testing.T) {
	html, err := GeneratePage("error", nil)
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Page non trouvée</h1>")
	assert.Contains(t, html, "Erreur 404")
	assert.Contains(t, html, `<a class="fr-btn" href="/">Page d'accueil</a>`)

	unavailable, err := GeneratePage("error", []byte(`{"code": 503}`))
	require.NoError(t, err)
	assert.Contains(t, unavailable, "<h1>Service indisponible</h1>")

	_, err = GeneratePage("error", []byte(`{"code": 418}`))
	assert.ErrorIs(t, err, ErrInvalidComponent)
}

func TestGeneratePage_LandingAndDashboard(t *testing.T) {
	landing, err := GeneratePage("landing", []byte(`{"tiles": [{"title": "Impôts", "href": "/impots"}]}`))
	require.NoError(t, err)
	assert.Contains(t, landing, `<a href="/impots">Impôts</a>`)
	assert.Contains(t, landing, `<h3 class="fr-callout__title">Information importante</h3>`)

	dashboard, err := GeneratePage("dashboard", nil)
	require.NoError(t, err)
	assert.Contains(t, dashboard, `<span class="fr-text--bold fr-text--lg">1 234</span>`)
	assert.Contains(t, dashboard, "<caption>Dernières activités</caption>")
}

func TestGeneratePage_Errors(t *testing.T) {
	_, err := GeneratePage("wiki", nil)
	assert.ErrorIs(t, err, ErrUnknownComponent)

	_, err = GeneratePage("standard", []byte(`{"lang": " "}`))
	assert.ErrorIs(t, err, ErrInvalidComponent)
}
