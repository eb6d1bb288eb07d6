package dsfr

import "html/template"

var templates = template.Must(template.New("dsfr").Parse(componentTemplates + pageTemplates))

const componentTemplates = `
{{define "button"}}
{{- if .Href -}}
<a class="{{.Classes}}" href="{{.Href}}"{{with .Title}} title="{{.}}"{{end}}>{{.Label}}</a>
{{- else -}}
<button type="{{.Type}}" class="{{.Classes}}"{{with .Title}} title="{{.}}"{{end}}{{if .Disabled}} disabled aria-disabled="true"{{end}}>{{.Label}}</button>
{{- end -}}
{{end}}

{{define "badge" -}}
<p class="{{.Classes}}">{{.Label}}</p>
{{- end}}

{{define "alert" -}}
<div class="{{.Classes}}" role="alert">
    {{- with .Title}}
    <h3 class="fr-alert__title">{{.}}</h3>
    {{- end}}
    <p>{{.Description}}</p>
    {{- if .Closable}}
    <button class="fr-btn--close fr-btn" title="Masquer le message" onclick="const alert = this.parentNode; alert.parentNode.removeChild(alert); return false;">Masquer le message</button>
    {{- end}}
</div>
{{- end}}

{{define "callout" -}}
<div class="{{.Classes}}">
    {{- with .Title}}
    <h3 class="fr-callout__title">{{.}}</h3>
    {{- end}}
    <p class="fr-callout__text">{{.Text}}</p>
    {{- with .Button}}
    {{template "button" .}}
    {{- end}}
</div>
{{- end}}

{{define "tag" -}}
{{if .Href}}<a class="{{.Classes}}" href="{{.Href}}">{{.Label}}</a>{{else}}<p class="{{.Classes}}">{{.Label}}</p>{{end}}
{{- end}}

{{define "card" -}}
<div class="{{.Classes}}">
    <div class="fr-card__body">
        <div class="fr-card__content">
            <h3 class="fr-card__title">
                <a href="{{.Href}}">{{.Title}}</a>
            </h3>
            <p class="fr-card__desc">{{.Description}}</p>
            {{- with .Detail}}
            <div class="fr-card__end">
                <p class="fr-card__detail">{{.}}</p>
            </div>
            {{- end}}
        </div>
    </div>
    {{- with .Image}}
    <div class="fr-card__header">
        <div class="fr-card__img">
            <img class="fr-responsive-img" src="{{.}}" alt="{{$.ImageAlt}}">
        </div>
    </div>
    {{- end}}
</div>
{{- end}}

{{define "input" -}}
<div class="{{.GroupClasses}}">
    <label class="fr-label" for="{{.ID}}">{{.Label}}
        {{- with .Hint}}
        <span class="fr-hint-text">{{.}}</span>
        {{- end}}
    </label>
    <input class="{{.InputClasses}}" type="{{.Type}}" id="{{.ID}}" name="{{.Name}}"
        {{- if .Required}} required aria-required="true"{{end}}
        {{- if .Error}} aria-invalid="true"{{end}}
        {{- with .MessageID}} aria-describedby="{{.}}"{{end}}>
    {{- if .Error}}
    <p id="{{.MessageID}}" class="fr-error-text">{{.Error}}</p>
    {{- else if .Valid}}
    <p id="{{.MessageID}}" class="fr-valid-text">{{.Valid}}</p>
    {{- end}}
</div>
{{- end}}

{{define "table" -}}
<div class="{{.Classes}}">
    <table>
        <caption>{{.Caption}}</caption>
        {{- if .Headers}}
        <thead>
            <tr>
                {{- range .Headers}}
                <th scope="col">{{.}}</th>
                {{- end}}
            </tr>
        </thead>
        {{- end}}
        <tbody>
            {{- range .Rows}}
            <tr>
                {{- range .}}
                <td>{{.}}</td>
                {{- end}}
            </tr>
            {{- end}}
        </tbody>
    </table>
</div>
{{- end}}

{{define "breadcrumb" -}}
<nav role="navigation" class="fr-breadcrumb" aria-label="vous êtes ici :">
    <button class="fr-breadcrumb__button" aria-expanded="false" aria-controls="{{.ID}}">Voir le fil d'Ariane</button>
    <div class="fr-collapse" id="{{.ID}}">
        <ol class="fr-breadcrumb__list">
            {{- range .Parents}}
            <li>
                <a class="fr-breadcrumb__link" href="{{.Href}}">{{.Label}}</a>
            </li>
            {{- end}}
            <li>
                <a class="fr-breadcrumb__link" aria-current="page">{{.Current.Label}}</a>
            </li>
        </ol>
    </div>
</nav>
{{- end}}

{{define "skiplinks" -}}
<div class="fr-skiplinks">
    <nav class="fr-container" role="navigation" aria-label="Accès rapide">
        <ul class="fr-skiplinks__list">
            {{- range .Links}}
            <li>
                <a class="fr-link" href="{{.Href}}">{{.Label}}</a>
            </li>
            {{- end}}
        </ul>
    </nav>
</div>
{{- end}}

{{define "accordion" -}}
<div class="fr-accordions-group">
    {{- range $i, $item := .Items}}
    <section class="fr-accordion">
        <h3 class="fr-accordion__title">
            <button class="fr-accordion__btn" aria-expanded="{{if $item.Expanded}}true{{else}}false{{end}}" aria-controls="{{$.IDPrefix}}-{{$i}}">{{$item.Title}}</button>
        </h3>
        <div class="fr-collapse" id="{{$.IDPrefix}}-{{$i}}">
            <p>{{$item.Content}}</p>
        </div>
    </section>
    {{- end}}
</div>
{{- end}}

{{define "modal" -}}
<dialog id="{{.ID}}" class="fr-modal" role="dialog" aria-labelledby="{{.TitleID}}">
    <div class="fr-container fr-container--fluid fr-container-md">
        <div class="fr-grid-row fr-grid-row--center">
            <div class="fr-col-12 fr-col-md-8 fr-col-lg-6">
                <div class="fr-modal__body">
                    <div class="fr-modal__header">
                        <button class="fr-btn--close fr-btn" title="Fermer" aria-controls="{{.ID}}">Fermer</button>
                    </div>
                    <div class="fr-modal__content">
                        <h1 id="{{.TitleID}}" class="fr-modal__title">{{.Title}}</h1>
                        <p>{{.Content}}</p>
                    </div>
                    <div class="fr-modal__footer">
                        <ul class="fr-btns-group fr-btns-group--right fr-btns-group--inline-lg">
                            <li><button class="fr-btn" type="button">{{.PrimaryAction}}</button></li>
                            <li><button class="fr-btn fr-btn--secondary" type="button" aria-controls="{{.ID}}">{{.SecondaryAction}}</button></li>
                        </ul>
                    </div>
                </div>
            </div>
        </div>
    </div>
</dialog>
{{- end}}

{{define "header" -}}
<header role="banner" class="fr-header" id="header">
    <div class="fr-header__body">
        <div class="fr-container">
            <div class="fr-header__body-row">
                <div class="fr-header__brand fr-enlarge-link">
                    <div class="fr-header__brand-top">
                        <div class="fr-header__logo">
                            <p class="fr-logo">République<br>Française</p>
                        </div>
                        <div class="fr-header__navbar">
                            <button class="fr-btn--menu fr-btn" data-fr-opened="false" aria-controls="modal-menu" aria-haspopup="menu" id="button-menu" title="Menu">Menu</button>
                        </div>
                    </div>
                    <div class="fr-header__service">
                        <a href="{{.HomeHref}}" title="Accueil - {{.ServiceTitle}}">
                            <p class="fr-header__service-title">{{.ServiceTitle}}</p>
                        </a>
                        <p class="fr-header__service-tagline">{{.Tagline}}</p>
                    </div>
                </div>
                {{- if .ThemeSwitcher}}
                <div class="fr-header__tools">
                    <div class="fr-header__tools-links">
                        <ul class="fr-btns-group">
                            <li><button class="fr-btn fr-btn--tertiary-no-outline fr-btn--icon-left fr-icon-sun-line" type="button" data-fr-theme="light" aria-pressed="{{if .Dark}}false{{else}}true{{end}}">Thème clair</button></li>
                            <li><button class="fr-btn fr-btn--tertiary-no-outline fr-btn--icon-left fr-icon-moon-line" type="button" data-fr-theme="dark" aria-pressed="{{if .Dark}}true{{else}}false{{end}}">Thème sombre</button></li>
                        </ul>
                    </div>
                </div>
                {{- end}}
            </div>
        </div>
    </div>
    <div class="fr-header__menu fr-modal" id="modal-menu" aria-labelledby="button-menu">
        <div class="fr-container">
            <button class="fr-btn--close fr-btn" aria-controls="modal-menu" title="Fermer">Fermer</button>
            <div class="fr-header__menu-links"></div>
            <nav class="fr-nav" id="navigation" role="navigation" aria-label="Menu principal">
                <ul class="fr-nav__list">
                    {{- range .Nav}}
                    <li class="fr-nav__item">
                        <a class="fr-nav__link" href="{{.Href}}" target="_self"{{if .Active}} aria-current="page"{{end}}>{{.Label}}</a>
                    </li>
                    {{- end}}
                </ul>
            </nav>
        </div>
    </div>
</header>
{{- end}}

{{define "footer" -}}
<footer class="fr-footer" role="contentinfo" id="footer">
    <div class="fr-container">
        <div class="fr-footer__body">
            <div class="fr-footer__brand fr-enlarge-link">
                <a href="/" title="Accueil">
                    <p class="fr-logo">République<br>Française</p>
                </a>
            </div>
            <div class="fr-footer__content">
                <p class="fr-footer__content-desc">{{.Description}}</p>
                <ul class="fr-footer__content-list">
                    {{- range .Links}}
                    <li class="fr-footer__content-item">
                        <a class="fr-footer__content-link" target="_blank" rel="noopener" href="{{.Href}}">{{.Label}}</a>
                    </li>
                    {{- end}}
                </ul>
            </div>
        </div>
        <div class="fr-footer__bottom">
            <ul class="fr-footer__bottom-list">
                <li class="fr-footer__bottom-item">
                    <a class="fr-footer__bottom-link" href="/accessibilite">Accessibilité : {{.Accessibility}}</a>
                </li>
                {{- range .BottomLinks}}
                <li class="fr-footer__bottom-item">
                    <a class="fr-footer__bottom-link" href="{{.Href}}">{{.Label}}</a>
                </li>
                {{- end}}
            </ul>
            <div class="fr-footer__bottom-copy">
                <p>Sauf mention contraire, tous les contenus de ce site sont sous <a href="https://github.com/etalab/licence-ouverte/blob/master/LO.md" target="_blank" rel="noopener">licence etalab-2.0</a></p>
            </div>
        </div>
    </div>
</footer>
{{- end}}
`

const pageTemplates = `
{{define "head" -}}
<!DOCTYPE html>
<html lang="{{.Lang}}"{{if .Dark}} data-fr-scheme="dark"{{end}}>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1, shrink-to-fit=no">
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="{{.Assets}}/dsfr.min.css">
    <link rel="stylesheet" href="{{.Assets}}/utility/icons/icons.min.css">
    <link rel="apple-touch-icon" href="{{.Assets}}/favicon/apple-touch-icon.png">
    <link rel="icon" href="{{.Assets}}/favicon/favicon.svg" type="image/svg+xml">
</head>
<body>
{{template "skiplinks" .Skiplinks}}
{{- with .Header}}
{{template "header" .}}
{{- end}}
<main id="contenu" role="main">
    <div class="fr-container">
        {{- with .Breadcrumb}}
        {{template "breadcrumb" .}}
        {{- end}}
{{- end}}

{{define "foot"}}
    </div>
</main>
{{- with .Footer}}
{{template "footer" .}}
{{- end}}
<script type="module" src="{{.Assets}}/dsfr.module.min.js"></script>
<script nomodule src="{{.Assets}}/dsfr.nomodule.min.js"></script>
</body>
</html>
{{end}}

{{define "standard" -}}
{{template "head" .}}
        <div class="fr-grid-row fr-grid-row--center fr-py-8w">
            <div class="fr-col-12 fr-col-md-10 fr-col-lg-8">
                <h1>{{.Heading}}</h1>
                {{- with .Lead}}
                <p class="fr-text--lead">{{.}}</p>
                {{- end}}
                {{- range .Sections}}
                <h2>{{.Heading}}</h2>
                {{- with .Text}}
                <p>{{.}}</p>
                {{- end}}
                {{- end}}
            </div>
        </div>
{{- template "foot" .}}
{{- end}}

{{define "form" -}}
{{template "head" .}}
        <div class="fr-grid-row fr-grid-row--center fr-py-8w">
            <div class="fr-col-12 fr-col-md-8 fr-col-lg-6">
                <h1>{{.Heading}}</h1>
                {{- with .Lead}}
                <p class="fr-text--lead">{{.}}</p>
                {{- end}}
                <form action="{{.Action}}" method="{{.Method}}">
                    <fieldset class="fr-fieldset">
                        <legend class="fr-fieldset__legend">{{.Legend}}</legend>
                        {{- range .Fields}}
                        <div class="fr-fieldset__element">
                        {{template "input" .}}
                        </div>
                        {{- end}}
                    </fieldset>
                    <div class="fr-messages-group" id="form-messages" aria-live="polite">
                        {{- with .Alert}}
                        {{template "alert" .}}
                        {{- end}}
                    </div>
                    <ul class="fr-btns-group fr-btns-group--inline-md">
                        <li>{{template "button" .SubmitButton}}</li>
                    </ul>
                </form>
            </div>
        </div>
{{- template "foot" .}}
{{- end}}

{{define "error" -}}
{{template "head" .}}
        <div class="fr-my-7w fr-mt-md-12w fr-mb-md-10w fr-grid-row fr-grid-row--gutters fr-grid-row--middle fr-grid-row--center">
            <div class="fr-py-0 fr-col-12 fr-col-md-6">
                <h1>{{.Heading}}</h1>
                <p class="fr-text--sm fr-mb-3w">Erreur {{.Code}}</p>
                <p class="fr-mt-3w fr-text--lead">{{.Lead}}</p>
                <ul class="fr-btns-group fr-btns-group--inline-md">
                    <li><a class="fr-btn" href="{{.HomeHref}}">Page d'accueil</a></li>
                </ul>
            </div>
        </div>
{{- template "foot" .}}
{{- end}}

{{define "landing" -}}
{{template "head" .}}
        <div class="fr-grid-row fr-grid-row--center fr-py-8w">
            <div class="fr-col-12 fr-col-md-10 fr-col-lg-8">
                <h1>{{.Heading}}</h1>
                <p class="fr-text--lead">{{.Lead}}</p>
                {{template "callout" .Callout}}
                <div class="fr-grid-row fr-grid-row--gutters fr-mt-6w">
                    {{- range .Tiles}}
                    <div class="fr-col-12 fr-col-md-4">
                        <div class="fr-tile fr-enlarge-link">
                            <div class="fr-tile__body">
                                <div class="fr-tile__content">
                                    <h2 class="fr-tile__title">
                                        <a href="{{.Href}}">{{.Title}}</a>
                                    </h2>
                                    {{- with .Description}}
                                    <p class="fr-tile__desc">{{.}}</p>
                                    {{- end}}
                                </div>
                            </div>
                        </div>
                    </div>
                    {{- end}}
                </div>
            </div>
        </div>
{{- template "foot" .}}
{{- end}}

{{define "dashboard" -}}
{{template "head" .}}
        <div class="fr-py-8w">
            <h1>{{.Heading}}</h1>
            <div class="fr-grid-row fr-grid-row--gutters">
                {{- range .Stats}}
                <div class="fr-col-12 fr-col-md-3">
                    <div class="fr-callout">
                        <p class="fr-callout__text">
                            <span class="fr-text--bold fr-text--lg">{{.Value}}</span><br>
                            {{.Label}}
                        </p>
                    </div>
                </div>
                {{- end}}
            </div>
            <div class="fr-mt-6w">
            {{template "table" .Table}}
            </div>
        </div>
{{- template "foot" .}}
{{- end}}
`
