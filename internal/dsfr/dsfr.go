// Package dsfr renders HTML snippets and pages that follow the class
// conventions of the Système de Design de l'État (DSFR).
//
// Every component and page is a plain config struct. Zero fields take the
// documented defaults, Validate rejects values DSFR has no class for, and
// Render executes the matching html/template:
//
//	html, err := dsfr.Render(&dsfr.Button{Variant: "secondary", Size: "lg"})
//
// The CLI goes through GenerateComponent and GeneratePage, which decode a JSON
// document into the struct registered for a kind:
//
//	html, err := dsfr.GenerateComponent("alert", []byte(`{"type":"error","title":"Échec"}`))
//
// The class helpers check markup against a known class set, built in or loaded
// from a DSFR stylesheet:
//
//	known, _ := dsfr.LoadClassesFromCSS(f)
//	unknown, _ := dsfr.AuditClasses(page, known)
package dsfr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yacobolo/dsfrkit/internal/config"
)

// Sentinel errors for errors.Is checks
var (
	ErrUnknownComponent = errors.New("unknown component")
	ErrInvalidComponent = errors.New("invalid component")
)

// ValidationError reports a config field DSFR cannot render.
type ValidationError struct {
	Component string
	Field     string
	Value     string
	Allowed   []string // empty when the field is free text
	Reason    string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s %q", e.Component, e.Field, e.Value)
	if len(e.Allowed) > 0 {
		msg += fmt.Sprintf(" (valid: %s)", strings.Join(e.Allowed, ", "))
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is makes errors.Is(err, ErrInvalidComponent) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidComponent
}

// Component is a renderable config. Pages are components too.
type Component interface {
	// Validate reports the first field that cannot be rendered.
	Validate() error

	kind() string
	setDefaults()
}

// Render fills the defaults of c, validates it and renders its template.
func Render(c Component) (string, error) {
	c.setDefaults()
	if err := c.Validate(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, c.kind(), c); err != nil {
		return "", fmt.Errorf("rendering %s: %w", c.kind(), err)
	}
	return buf.String(), nil
}

var components = map[string]func() Component{
	"accordion":  func() Component { return &Accordion{} },
	"alert":      func() Component { return &Alert{} },
	"badge":      func() Component { return &Badge{} },
	"breadcrumb": func() Component { return &Breadcrumb{} },
	"button":     func() Component { return &Button{} },
	"callout":    func() Component { return &Callout{} },
	"card":       func() Component { return &Card{} },
	"footer":     func() Component { return &Footer{} },
	"header":     func() Component { return &Header{} },
	"input":      func() Component { return &Input{} },
	"modal":      func() Component { return &Modal{} },
	"skiplinks":  func() Component { return &Skiplinks{} },
	"table":      func() Component { return &Table{} },
	"tag":        func() Component { return &Tag{} },
}

var pages = map[string]func() Component{
	"dashboard": func() Component { return &DashboardPage{} },
	"error":     func() Component { return &ErrorPage{} },
	"form":      func() Component { return &FormPage{} },
	"landing":   func() Component { return &LandingPage{} },
	"standard":  func() Component { return &Page{} },
}

// ComponentKinds returns the component kinds GenerateComponent accepts, sorted.
func ComponentKinds() []string {
	return sortedKeys(components)
}

// PageKinds returns the page kinds GeneratePage accepts, sorted.
func PageKinds() []string {
	return sortedKeys(pages)
}

// GenerateComponent decodes data into the config of kind and renders it.
// Empty data renders the defaults.
func GenerateComponent(kind string, data []byte) (string, error) {
	return generate(components, "component", kind, data)
}

// GeneratePage decodes data into the page config of kind and renders it.
func GeneratePage(kind string, data []byte) (string, error) {
	return generate(pages, "page", kind, data)
}

func generate(registry map[string]func() Component, what, kind string, data []byte) (string, error) {
	newComponent, ok := registry[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s %q (valid: %s)", ErrUnknownComponent, what, kind, strings.Join(sortedKeys(registry), ", "))
	}

	c := newComponent()
	if err := decode(kind, data, c); err != nil {
		return "", err
	}
	return Render(c)
}

// decode rejects unknown fields so a typo in a key is not silently ignored.
func decode(kind string, data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &config.ParseError{Path: kind + " config", Err: err}
	}
	return nil
}

func sortedKeys(m map[string]func() Component) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func oneOf(component, field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValidationError{Component: component, Field: field, Value: value, Allowed: allowed}
}

func required(component, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Component: component, Field: field, Value: value, Reason: "must not be empty"}
	}
	return nil
}

func joinClasses(classes ...string) string {
	out := classes[:0]
	for _, c := range classes {
		if c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}
