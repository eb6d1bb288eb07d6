package dsfr

import (
	"fmt"
	"strconv"
)

// DSFRVersion is the DSFR release the default asset URLs point to.
const DSFRVersion = "1.11.2"

// DefaultAssets is the base URL of the DSFR stylesheets and scripts.
const DefaultAssets = "https://cdn.jsdelivr.net/npm/@gouvfr/dsfr@" + DSFRVersion + "/dist"

// Section is a titled block of the main content.
type Section struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

// Page is the standard page: skip links, header, main content and footer.
// The other page kinds embed it and replace the main content.
type Page struct {
	Title      string      `json:"title"`
	Lang       string      `json:"lang"`
	Dark       bool        `json:"dark"`
	Assets     string      `json:"assets"`
	Heading    string      `json:"heading"`
	Lead       string      `json:"lead"`
	Sections   []Section   `json:"sections"`
	Header     *Header     `json:"header"`
	Footer     *Footer     `json:"footer"`
	Breadcrumb *Breadcrumb `json:"breadcrumb"`
	NoHeader   bool        `json:"no_header"`
	NoFooter   bool        `json:"no_footer"`

	Skiplinks *Skiplinks `json:"-"`
}

func (p *Page) kind() string { return "standard" }

func (p *Page) setDefaults() {
	p.setLayoutDefaults("Titre de la page")
	if p.Lead == "" && len(p.Sections) == 0 {
		p.Lead = "Introduction ou résumé du contenu de la page."
		p.Sections = []Section{
			{Heading: "Section principale", Text: "Contenu de la section principale avec tous les détails nécessaires."},
			{Heading: "Sous-section", Text: "Détails supplémentaires organisés en sous-sections pour une meilleure lisibilité."},
		}
	}
}

// setLayoutDefaults fills what every page kind shares.
func (p *Page) setLayoutDefaults(heading string) {
	if p.Title == "" {
		p.Title = "Site officiel de l'État français"
	}
	if p.Lang == "" {
		p.Lang = "fr"
	}
	if p.Assets == "" {
		p.Assets = DefaultAssets
	}
	if p.Heading == "" {
		p.Heading = heading
	}

	p.Header = layoutPart(p.Header, p.NoHeader)
	if p.Header != nil {
		if p.Dark && p.Header.Theme == "" {
			p.Header.Theme = "dark"
		}
		p.Header.setDefaults()
	}
	p.Footer = layoutPart(p.Footer, p.NoFooter)
	if p.Footer != nil {
		p.Footer.setDefaults()
	}
	if p.Breadcrumb != nil {
		p.Breadcrumb.setDefaults()
	}

	links := []Link{{Label: "Contenu", Href: "#contenu"}}
	if p.Header != nil {
		links = append(links, Link{Label: "Menu", Href: "#navigation"})
	}
	if p.Footer != nil {
		links = append(links, Link{Label: "Pied de page", Href: "#footer"})
	}
	p.Skiplinks = &Skiplinks{Links: links}
}

func layoutPart[T any](part *T, disabled bool) *T {
	if disabled {
		return nil
	}
	if part == nil {
		return new(T)
	}
	return part
}

// Validate implements Component.
func (p Page) Validate() error {
	if err := required("page", "lang", p.Lang); err != nil {
		return err
	}
	if err := required("page", "heading", p.Heading); err != nil {
		return err
	}
	for i, s := range p.Sections {
		if err := required("page", fmt.Sprintf("sections[%d].heading", i), s.Heading); err != nil {
			return err
		}
	}
	if p.Header != nil {
		if err := p.Header.Validate(); err != nil {
			return err
		}
	}
	if p.Footer != nil {
		if err := p.Footer.Validate(); err != nil {
			return err
		}
	}
	if p.Breadcrumb != nil {
		return p.Breadcrumb.Validate()
	}
	return nil
}

// FormPage is a page holding one form of input groups, a submit button and
// a live region for messages.
type FormPage struct {
	Page
	Action string  `json:"action"`
	Method string  `json:"method"` // post (default), get
	Legend string  `json:"legend"`
	Fields []Input `json:"fields"`
	Submit string  `json:"submit"`
	Alert  *Alert  `json:"alert"`
}

func (p *FormPage) kind() string { return "form" }

func (p *FormPage) setDefaults() {
	p.setLayoutDefaults("Formulaire de contact")
	if p.Action == "" {
		p.Action = "/submit"
	}
	if p.Method == "" {
		p.Method = "post"
	}
	if p.Legend == "" {
		p.Legend = "Vos informations"
	}
	if p.Submit == "" {
		p.Submit = "Envoyer"
	}
	if len(p.Fields) == 0 {
		p.Fields = []Input{
			{Label: "Nom", ID: "nom", Hint: "Format : Nom de famille", Required: true},
			{Label: "Prénom", ID: "prenom", Required: true},
			{Label: "Adresse électronique", ID: "email", Type: "email", Hint: "Format : nom@domaine.fr", Required: true},
		}
	}
	for i := range p.Fields {
		p.Fields[i].setDefaults()
	}
	if p.Alert != nil {
		p.Alert.setDefaults()
	}
}

// Validate implements Component.
func (p FormPage) Validate() error {
	if err := p.Page.Validate(); err != nil {
		return err
	}
	if err := oneOf("form", "method", p.Method, "post", "get"); err != nil {
		return err
	}

	seen := make(map[string]bool, len(p.Fields))
	for _, f := range p.Fields {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("form: %w", err)
		}
		if seen[f.ID] {
			return &ValidationError{Component: "form", Field: "fields", Value: f.ID, Reason: "duplicate input id"}
		}
		seen[f.ID] = true
	}

	if p.Alert != nil {
		return p.Alert.Validate()
	}
	return nil
}

// SubmitButton is the button closing the form.
func (p FormPage) SubmitButton() *Button {
	return &Button{Label: p.Submit, Variant: "primary", Size: "md", Type: "submit"}
}

// errorMessages holds the lead text of the supported error pages.
var errorMessages = map[int]struct{ heading, lead string }{
	404: {"Page non trouvée", "La page que vous cherchez est introuvable. Excusez-nous pour la gêne occasionnée."},
	500: {"Erreur inattendue", "Désolé, le service rencontre un problème, nous travaillons pour le résoudre le plus rapidement possible."},
	503: {"Service indisponible", "Le service est momentanément indisponible. Merci de réessayer plus tard."},
}

// ErrorPage is an HTTP error page (404 by default).
type ErrorPage struct {
	Page
	Code     int    `json:"code"`
	HomeHref string `json:"home_href"`
}

func (p *ErrorPage) kind() string { return "error" }

func (p *ErrorPage) setDefaults() {
	if p.Code == 0 {
		p.Code = 404
	}
	msg := errorMessages[p.Code]
	if p.Lead == "" {
		p.Lead = msg.lead
	}
	p.setLayoutDefaults(msg.heading)
	if p.HomeHref == "" {
		p.HomeHref = "/"
	}
}

// Validate implements Component.
func (p ErrorPage) Validate() error {
	if _, ok := errorMessages[p.Code]; !ok {
		return oneOf("error", "code", strconv.Itoa(p.Code), "404", "500", "503")
	}
	return p.Page.Validate()
}

// Tile is an entry of the landing page grid.
type Tile struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Href        string `json:"href"`
}

// LandingPage is a home page with a lead, a callout and a grid of tiles.
type LandingPage struct {
	Page
	Callout *Callout `json:"callout"`
	Tiles   []Tile   `json:"tiles"`
}

func (p *LandingPage) kind() string { return "landing" }

func (p *LandingPage) setDefaults() {
	p.setLayoutDefaults("Bienvenue sur notre service")
	if p.Lead == "" {
		p.Lead = "Service numérique de l'État français pour simplifier vos démarches administratives."
	}
	if p.Callout == nil {
		p.Callout = &Callout{
			Title: "Information importante",
			Text:  "Ce service est en phase de test. Vos retours nous aident à l'améliorer.",
		}
	}
	p.Callout.setDefaults()
	if len(p.Tiles) == 0 {
		p.Tiles = []Tile{
			{Title: "Service 1", Description: "Description du premier service"},
			{Title: "Service 2", Description: "Description du deuxième service"},
			{Title: "Service 3", Description: "Description du troisième service"},
		}
	}
	for i := range p.Tiles {
		if p.Tiles[i].Href == "" {
			p.Tiles[i].Href = "#"
		}
	}
}

// Validate implements Component.
func (p LandingPage) Validate() error {
	if err := p.Page.Validate(); err != nil {
		return err
	}
	for i, t := range p.Tiles {
		if err := required("landing", fmt.Sprintf("tiles[%d].title", i), t.Title); err != nil {
			return err
		}
	}
	return p.Callout.Validate()
}

// Stat is a key figure of the dashboard.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DashboardPage shows key figures and a table of recent activity.
type DashboardPage struct {
	Page
	Stats []Stat `json:"stats"`
	Table *Table `json:"table"`
}

func (p *DashboardPage) kind() string { return "dashboard" }

func (p *DashboardPage) setDefaults() {
	p.setLayoutDefaults("Tableau de bord")
	if len(p.Stats) == 0 {
		p.Stats = []Stat{
			{Value: "1 234", Label: "Utilisateurs actifs"},
			{Value: "567", Label: "Nouveaux cette semaine"},
			{Value: "89%", Label: "Taux de satisfaction"},
			{Value: "12", Label: "Tickets en attente"},
		}
	}
	if p.Table == nil {
		p.Table = &Table{
			Caption: "Dernières activités",
			Headers: []string{"Date", "Utilisateur", "Action", "Statut"},
			Rows: [][]string{
				{"20/10/2025", "Jean Dupont", "Création de compte", "Succès"},
				{"20/10/2025", "Marie Martin", "Modification profil", "Succès"},
				{"19/10/2025", "Pierre Durand", "Tentative connexion", "Échec"},
			},
		}
	}
}

// Validate implements Component.
func (p DashboardPage) Validate() error {
	if err := p.Page.Validate(); err != nil {
		return err
	}
	return p.Table.Validate()
}
