package dsfr

import (
	"fmt"
	"strings"

	"github.com/yacobolo/dsfrkit/internal/textutil"
)

// Button is a fr-btn. With Href it renders as a link.
type Button struct {
	Label        string `json:"label"`
	Variant      string `json:"variant"`       // primary (default), secondary, tertiary, tertiary-no-outline
	Size         string `json:"size"`          // sm, md (default), lg
	Icon         string `json:"icon"`          // icon name without the fr-icon- prefix
	IconPosition string `json:"icon_position"` // left (default), right
	Disabled     bool   `json:"disabled"`
	Href         string `json:"href"`
	Type         string `json:"type"` // button (default), submit, reset
	Title        string `json:"title"`
}

func (b *Button) kind() string { return "button" }

func (b *Button) setDefaults() {
	if b.Label == "" {
		b.Label = "Libellé bouton"
	}
	if b.Variant == "" {
		b.Variant = "primary"
	}
	if b.Size == "" {
		b.Size = "md"
	}
	if b.Type == "" {
		b.Type = "button"
	}
	if b.Icon != "" && b.IconPosition == "" {
		b.IconPosition = "left"
	}
}

// Validate implements Component.
func (b Button) Validate() error {
	if err := oneOf("button", "variant", b.Variant, "primary", "secondary", "tertiary", "tertiary-no-outline"); err != nil {
		return err
	}
	if err := oneOf("button", "size", b.Size, "sm", "md", "lg"); err != nil {
		return err
	}
	if err := oneOf("button", "type", b.Type, "button", "submit", "reset"); err != nil {
		return err
	}
	if b.Icon != "" {
		if err := oneOf("button", "icon_position", b.IconPosition, "left", "right"); err != nil {
			return err
		}
	}
	if b.Href != "" && b.Disabled {
		return &ValidationError{Component: "button", Field: "disabled", Value: "true", Reason: "a link cannot be disabled"}
	}
	return required("button", "label", b.Label)
}

// Classes returns the class attribute: the primary variant and the md size
// carry no modifier.
func (b Button) Classes() string {
	var variant, size, iconPos, icon string
	if b.Variant != "primary" {
		variant = "fr-btn--" + b.Variant
	}
	if b.Size != "md" {
		size = "fr-btn--" + b.Size
	}
	if b.Icon != "" {
		iconPos = "fr-btn--icon-" + b.IconPosition
		icon = "fr-icon-" + b.Icon
	}
	return joinClasses("fr-btn", variant, size, iconPos, icon)
}

// Badge is a fr-badge.
type Badge struct {
	Label    string `json:"label"`
	Severity string `json:"severity"` // success, error, info, warning, new or empty
	Small    bool   `json:"small"`
	NoIcon   bool   `json:"no_icon"`
}

func (b *Badge) kind() string { return "badge" }

func (b *Badge) setDefaults() {
	if b.Label == "" {
		b.Label = "Libellé badge"
	}
}

// Validate implements Component.
func (b Badge) Validate() error {
	return oneOf("badge", "severity", b.Severity, "", "success", "error", "info", "warning", "new")
}

func (b Badge) Classes() string {
	var severity, size, noIcon string
	if b.Severity != "" {
		severity = "fr-badge--" + b.Severity
	}
	if b.Small {
		size = "fr-badge--sm"
	}
	if b.NoIcon {
		noIcon = "fr-badge--no-icon"
	}
	return joinClasses("fr-badge", severity, size, noIcon)
}

// Alert is a fr-alert. Small alerts show the description only.
type Alert struct {
	Type        string `json:"type"` // info (default), success, warning, error
	Title       string `json:"title"`
	Description string `json:"description"`
	Small       bool   `json:"small"`
	Closable    bool   `json:"closable"`
}

func (a *Alert) kind() string { return "alert" }

func (a *Alert) setDefaults() {
	if a.Type == "" {
		a.Type = "info"
	}
	if a.Title == "" && !a.Small {
		a.Title = "Titre de l'alerte"
	}
	if a.Description == "" {
		a.Description = "Description de l'alerte"
	}
}

// Validate implements Component.
func (a Alert) Validate() error {
	return oneOf("alert", "type", a.Type, "info", "success", "warning", "error")
}

func (a Alert) Classes() string {
	var size string
	if a.Small {
		size = "fr-alert--sm"
	}
	return joinClasses("fr-alert", "fr-alert--"+a.Type, size)
}

// Callout is a fr-callout ("mise en avant") with an optional button.
type Callout struct {
	Title  string  `json:"title"`
	Text   string  `json:"text"`
	Icon   string  `json:"icon"`
	Button *Button `json:"button"`
}

func (c *Callout) kind() string { return "callout" }

func (c *Callout) setDefaults() {
	if c.Text == "" {
		c.Text = "Texte de la mise en avant"
	}
	if c.Button != nil {
		c.Button.setDefaults()
	}
}

// Validate implements Component.
func (c Callout) Validate() error {
	if c.Button != nil {
		if err := c.Button.Validate(); err != nil {
			return fmt.Errorf("callout: %w", err)
		}
	}
	return nil
}

func (c Callout) Classes() string {
	var icon string
	if c.Icon != "" {
		icon = "fr-icon-" + c.Icon
	}
	return joinClasses("fr-callout", icon)
}

// Tag is a fr-tag, static or linked.
type Tag struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Small bool   `json:"small"`
	Icon  string `json:"icon"`
}

func (t *Tag) kind() string { return "tag" }

func (t *Tag) setDefaults() {
	if t.Label == "" {
		t.Label = "Libellé tag"
	}
}

// Validate implements Component.
func (t Tag) Validate() error {
	return required("tag", "label", t.Label)
}

func (t Tag) Classes() string {
	var size, iconPos, icon string
	if t.Small {
		size = "fr-tag--sm"
	}
	if t.Icon != "" {
		iconPos = "fr-tag--icon-left"
		icon = "fr-icon-" + t.Icon
	}
	return joinClasses("fr-tag", size, iconPos, icon)
}

// Card is a fr-card whose whole surface links to Href.
type Card struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
	Href        string `json:"href"`
	Image       string `json:"image"`
	ImageAlt    string `json:"image_alt"` // empty marks the image as decorative
	Horizontal  bool   `json:"horizontal"`
}

func (c *Card) kind() string { return "card" }

func (c *Card) setDefaults() {
	if c.Title == "" {
		c.Title = "Titre de la carte"
	}
	if c.Description == "" {
		c.Description = "Description de la carte"
	}
	if c.Href == "" {
		c.Href = "#"
	}
}

// Validate implements Component.
func (c Card) Validate() error {
	return required("card", "title", c.Title)
}

func (c Card) Classes() string {
	var layout string
	if c.Horizontal {
		layout = "fr-card--horizontal"
	}
	return joinClasses("fr-card", "fr-enlarge-link", layout)
}

// Input is a text field inside a fr-input-group, with its label, hint and
// error or success message.
type Input struct {
	Label    string `json:"label"`
	ID       string `json:"id"`   // derived from the label when empty
	Name     string `json:"name"` // defaults to ID
	Type     string `json:"type"` // text (default), email, tel, number, password, date, url, search
	Hint     string `json:"hint"`
	Required bool   `json:"required"`
	Error    string `json:"error"`
	Valid    string `json:"valid"`
}

func (in *Input) kind() string { return "input" }

func (in *Input) setDefaults() {
	if in.Label == "" {
		in.Label = "Label"
	}
	if in.ID == "" {
		in.ID = slug(in.Label)
	}
	if in.Name == "" {
		in.Name = in.ID
	}
	if in.Type == "" {
		in.Type = "text"
	}
}

// Validate implements Component.
func (in Input) Validate() error {
	if err := required("input", "label", in.Label); err != nil {
		return err
	}
	if in.ID == "" || strings.ContainsAny(in.ID, " \t\n") {
		return &ValidationError{Component: "input", Field: "id", Value: in.ID, Reason: "must be a non-empty token"}
	}
	if err := oneOf("input", "type", in.Type, "text", "email", "tel", "number", "password", "date", "url", "search"); err != nil {
		return err
	}
	if in.Error != "" && in.Valid != "" {
		return &ValidationError{Component: "input", Field: "valid", Value: in.Valid, Reason: "an input cannot be in error and valid at once"}
	}
	return nil
}

func (in Input) GroupClasses() string {
	switch {
	case in.Error != "":
		return "fr-input-group fr-input-group--error"
	case in.Valid != "":
		return "fr-input-group fr-input-group--valid"
	}
	return "fr-input-group"
}

func (in Input) InputClasses() string {
	switch {
	case in.Error != "":
		return "fr-input fr-input--error"
	case in.Valid != "":
		return "fr-input fr-input--valid"
	}
	return "fr-input"
}

// MessageID is the id of the error or success message, empty when there is none.
func (in Input) MessageID() string {
	switch {
	case in.Error != "":
		return in.ID + "-error"
	case in.Valid != "":
		return in.ID + "-valid"
	}
	return ""
}

// slug turns a label into an id: "Adresse électronique" gives
// "adresse-electronique".
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range textutil.Fold(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}

// Table is a fr-table with a mandatory caption.
type Table struct {
	Caption  string     `json:"caption"`
	Headers  []string   `json:"headers"`
	Rows     [][]string `json:"rows"`
	Bordered bool       `json:"bordered"`
}

func (t *Table) kind() string { return "table" }

func (t *Table) setDefaults() {}

// Validate implements Component.
func (t Table) Validate() error {
	if err := required("table", "caption", t.Caption); err != nil {
		return err
	}
	if len(t.Headers) == 0 {
		return nil
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return &ValidationError{
				Component: "table",
				Field:     fmt.Sprintf("rows[%d]", i),
				Value:     strings.Join(row, ", "),
				Reason:    fmt.Sprintf("has %d cells, want %d", len(row), len(t.Headers)),
			}
		}
	}
	return nil
}

func (t Table) Classes() string {
	var bordered string
	if t.Bordered {
		bordered = "fr-table--bordered"
	}
	return joinClasses("fr-table", bordered)
}

// Link is a label and a target.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Breadcrumb is a fr-breadcrumb. The last item is the current page.
type Breadcrumb struct {
	ID    string `json:"id"`
	Items []Link `json:"items"`
}

func (b *Breadcrumb) kind() string { return "breadcrumb" }

func (b *Breadcrumb) setDefaults() {
	if b.ID == "" {
		b.ID = "breadcrumb"
	}
	if len(b.Items) == 0 {
		b.Items = []Link{{Label: "Accueil", Href: "/"}, {Label: "Page courante"}}
	}
	for i := range b.Items[:len(b.Items)-1] {
		if b.Items[i].Href == "" {
			b.Items[i].Href = "#"
		}
	}
}

// Validate implements Component.
func (b Breadcrumb) Validate() error {
	for i, item := range b.Items {
		if err := required("breadcrumb", fmt.Sprintf("items[%d].label", i), item.Label); err != nil {
			return err
		}
	}
	return nil
}

// Parents returns every item but the current page.
func (b Breadcrumb) Parents() []Link {
	return b.Items[:len(b.Items)-1]
}

// Current returns the last item.
func (b Breadcrumb) Current() Link {
	return b.Items[len(b.Items)-1]
}

// Skiplinks is the fr-skiplinks block placed first in the body.
type Skiplinks struct {
	Links []Link `json:"links"`
}

func (s *Skiplinks) kind() string { return "skiplinks" }

func (s *Skiplinks) setDefaults() {
	if len(s.Links) == 0 {
		s.Links = []Link{
			{Label: "Contenu", Href: "#contenu"},
			{Label: "Menu", Href: "#navigation"},
			{Label: "Pied de page", Href: "#footer"},
		}
	}
}

// Validate implements Component.
func (s Skiplinks) Validate() error {
	for i, l := range s.Links {
		if !strings.HasPrefix(l.Href, "#") {
			return &ValidationError{Component: "skiplinks", Field: fmt.Sprintf("links[%d].href", i), Value: l.Href, Reason: "must target an anchor"}
		}
		if err := required("skiplinks", fmt.Sprintf("links[%d].label", i), l.Label); err != nil {
			return err
		}
	}
	return nil
}

// AccordionItem is one section of an Accordion.
type AccordionItem struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Expanded bool   `json:"expanded"`
}

// Accordion is a fr-accordions-group.
type Accordion struct {
	IDPrefix string          `json:"id_prefix"`
	Items    []AccordionItem `json:"items"`
}

func (a *Accordion) kind() string { return "accordion" }

func (a *Accordion) setDefaults() {
	if a.IDPrefix == "" {
		a.IDPrefix = "accordion"
	}
	if len(a.Items) == 0 {
		a.Items = []AccordionItem{{}}
	}
	for i := range a.Items {
		if a.Items[i].Title == "" {
			a.Items[i].Title = fmt.Sprintf("Titre %d", i+1)
		}
		if a.Items[i].Content == "" {
			a.Items[i].Content = "Contenu de l'accordéon"
		}
	}
}

// Validate implements Component.
func (a Accordion) Validate() error {
	if strings.ContainsAny(a.IDPrefix, " \t\n") {
		return &ValidationError{Component: "accordion", Field: "id_prefix", Value: a.IDPrefix, Reason: "must not contain spaces"}
	}
	return nil
}

// Modal is a fr-modal dialog with two actions.
type Modal struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	PrimaryAction   string `json:"primary_action"`
	SecondaryAction string `json:"secondary_action"`
}

func (m *Modal) kind() string { return "modal" }

func (m *Modal) setDefaults() {
	if m.ID == "" {
		m.ID = "fr-modal"
	}
	if m.Title == "" {
		m.Title = "Titre de la modale"
	}
	if m.Content == "" {
		m.Content = "Contenu de la modale"
	}
	if m.PrimaryAction == "" {
		m.PrimaryAction = "Action principale"
	}
	if m.SecondaryAction == "" {
		m.SecondaryAction = "Action secondaire"
	}
}

// Validate implements Component.
func (m Modal) Validate() error {
	if strings.ContainsAny(m.ID, " \t\n") {
		return &ValidationError{Component: "modal", Field: "id", Value: m.ID, Reason: "must not contain spaces"}
	}
	return nil
}

func (m Modal) TitleID() string {
	return m.ID + "-title"
}

// NavLink is an entry of the main navigation.
type NavLink struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// Header is the fr-header: brand, service name, theme switcher and main
// navigation.
type Header struct {
	ServiceTitle  string    `json:"service_title"`
	Tagline       string    `json:"tagline"`
	HomeHref      string    `json:"home_href"`
	Nav           []NavLink `json:"nav"`
	ThemeSwitcher bool      `json:"theme_switcher"`
	Theme         string    `json:"theme"` // light (default), dark
}

func (h *Header) kind() string { return "header" }

func (h *Header) setDefaults() {
	if h.ServiceTitle == "" {
		h.ServiceTitle = "Nom du service"
	}
	if h.Tagline == "" {
		h.Tagline = "Baseline - précisions sur l'organisation"
	}
	if h.HomeHref == "" {
		h.HomeHref = "/"
	}
	if h.Theme == "" {
		h.Theme = "light"
	}
	if len(h.Nav) == 0 {
		h.Nav = []NavLink{
			{Label: "Accueil", Href: "/", Active: true},
			{Label: "Services", Href: "/services"},
			{Label: "Documentation", Href: "/documentation"},
			{Label: "Contact", Href: "/contact"},
		}
	}
}

// Validate implements Component.
func (h Header) Validate() error {
	if err := oneOf("header", "theme", h.Theme, "light", "dark"); err != nil {
		return err
	}
	active := 0
	for i, l := range h.Nav {
		if err := required("header", fmt.Sprintf("nav[%d].label", i), l.Label); err != nil {
			return err
		}
		if l.Active {
			active++
		}
	}
	if active > 1 {
		return &ValidationError{Component: "header", Field: "nav", Value: fmt.Sprintf("%d active links", active), Reason: "at most one link can be the current page"}
	}
	return nil
}

// Dark reports whether the dark theme button is the pressed one.
func (h Header) Dark() bool {
	return h.Theme == "dark"
}

// Footer is the fr-footer. The accessibility link is always rendered.
type Footer struct {
	Description   string `json:"description"`
	Links         []Link `json:"links"`
	BottomLinks   []Link `json:"bottom_links"`
	Accessibility string `json:"accessibility"` // non conforme (default), partiellement conforme, totalement conforme
}

func (f *Footer) kind() string { return "footer" }

func (f *Footer) setDefaults() {
	if f.Description == "" {
		f.Description = "Description du service et de ses fonctionnalités"
	}
	if len(f.Links) == 0 {
		f.Links = []Link{
			{Label: "legifrance.gouv.fr", Href: "https://legifrance.gouv.fr"},
			{Label: "gouvernement.fr", Href: "https://gouvernement.fr"},
			{Label: "service-public.fr", Href: "https://service-public.fr"},
			{Label: "data.gouv.fr", Href: "https://data.gouv.fr"},
		}
	}
	if len(f.BottomLinks) == 0 {
		f.BottomLinks = []Link{
			{Label: "Plan du site", Href: "/plan-du-site"},
			{Label: "Mentions légales", Href: "/mentions-legales"},
			{Label: "Données personnelles", Href: "/donnees-personnelles"},
			{Label: "Gestion des cookies", Href: "/gestion-des-cookies"},
		}
	}
	if f.Accessibility == "" {
		f.Accessibility = "non conforme"
	}
}

// Validate implements Component.
func (f Footer) Validate() error {
	return oneOf("footer", "accessibility", f.Accessibility, "non conforme", "partiellement conforme", "totalement conforme")
}
