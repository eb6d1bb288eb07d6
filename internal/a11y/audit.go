// Package a11y runs static RGAA checks over an HTML document: page language,
// text alternatives, form labels, ARIA references and heading structure.
package a11y

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/yacobolo/dsfrkit/internal/deck"
)

// Rule identifiers, used as Finding.Rule.
const (
	RuleLang               = "html_lang"
	RuleImageAlt           = "img_alt"
	RuleControlLabel       = "form_label"
	RuleDescribedBy        = "aria_describedby"
	RuleInvalidDescription = "aria_invalid_description"
	RuleSingleH1           = "single_h1"
)

// Finding is one failed check.
type Finding struct {
	Rule     string        `json:"rule"`
	Severity deck.Severity `json:"severity"`
	Message  string        `json:"message"`
	Element  string        `json:"element,omitempty"`
}

// unlabelledInputTypes are input types that carry their own name or none.
var unlabelledInputTypes = map[string]bool{
	"hidden": true,
	"submit": true,
	"reset":  true,
	"button": true,
	"image":  true,
}

type document struct {
	ids      map[string]bool
	labelFor map[string]bool
	elements []*html.Node
	htmlNode *html.Node
	h1Count  int
}

// Audit parses the document in r and returns the failed checks in document
// order, the heading check last.
func Audit(r io.Reader) ([]Finding, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	doc := &document{ids: make(map[string]bool), labelFor: make(map[string]bool)}
	doc.collect(root)

	findings := []Finding{}
	if doc.htmlNode == nil || strings.TrimSpace(attr(doc.htmlNode, "lang")) == "" {
		findings = append(findings, Finding{
			Rule:     RuleLang,
			Severity: deck.SeverityHigh,
			Message:  "La langue de la page n'est pas déclarée (attribut lang sur <html>)",
			Element:  "<html>",
		})
	}

	for _, n := range doc.elements {
		findings = append(findings, doc.check(n)...)
	}

	switch {
	case doc.h1Count == 0:
		findings = append(findings, Finding{
			Rule:     RuleSingleH1,
			Severity: deck.SeverityMedium,
			Message:  "La page n'a pas de titre de niveau 1",
		})
	case doc.h1Count > 1:
		findings = append(findings, Finding{
			Rule:     RuleSingleH1,
			Severity: deck.SeverityMedium,
			Message:  fmt.Sprintf("La page a %d titres de niveau 1, un seul est attendu", doc.h1Count),
		})
	}

	return findings, nil
}

func (d *document) collect(n *html.Node) {
	if n.Type == html.ElementNode {
		d.elements = append(d.elements, n)
		if id := attr(n, "id"); id != "" {
			d.ids[id] = true
		}
		switch n.Data {
		case "html":
			d.htmlNode = n
		case "label":
			if f := attr(n, "for"); f != "" {
				d.labelFor[f] = true
			}
		case "h1":
			d.h1Count++
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.collect(c)
	}
}

func (d *document) check(n *html.Node) []Finding {
	var findings []Finding

	switch n.Data {
	case "img":
		if !hasAttr(n, "alt") {
			findings = append(findings, Finding{
				Rule:     RuleImageAlt,
				Severity: deck.SeverityHigh,
				Message:  "Image sans attribut alt (alt=\"\" pour une image décorative)",
				Element:  describe(n),
			})
		}
	case "input", "select", "textarea":
		if isLabellable(n) && !d.labelled(n) {
			findings = append(findings, Finding{
				Rule:     RuleControlLabel,
				Severity: deck.SeverityHigh,
				Message:  "Champ de formulaire sans étiquette associée",
				Element:  describe(n),
			})
		}
	}

	describedBy := strings.Fields(attr(n, "aria-describedby"))
	for _, id := range describedBy {
		if !d.ids[id] {
			findings = append(findings, Finding{
				Rule:     RuleDescribedBy,
				Severity: deck.SeverityMedium,
				Message:  fmt.Sprintf("aria-describedby référence un id absent : %q", id),
				Element:  describe(n),
			})
		}
	}

	if attr(n, "aria-invalid") == "true" && len(describedBy) == 0 {
		findings = append(findings, Finding{
			Rule:     RuleInvalidDescription,
			Severity: deck.SeverityMedium,
			Message:  "Champ en erreur sans message d'erreur associé (aria-describedby)",
			Element:  describe(n),
		})
	}

	return findings
}

func isLabellable(n *html.Node) bool {
	if n.Data != "input" {
		return true
	}
	return !unlabelledInputTypes[strings.ToLower(attr(n, "type"))]
}

// labelled accepts a <label for>, an enclosing <label>, aria-label,
// aria-labelledby or title.
func (d *document) labelled(n *html.Node) bool {
	if id := attr(n, "id"); id != "" && d.labelFor[id] {
		return true
	}
	for _, key := range []string{"aria-label", "aria-labelledby", "title"} {
		if strings.TrimSpace(attr(n, key)) != "" {
			return true
		}
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == "label" {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// describe renders a short opening tag for a finding: <input id="nom">.
func describe(n *html.Node) string {
	var b strings.Builder
	b.WriteString("<" + n.Data)
	for _, key := range []string{"id", "name", "src"} {
		if v := attr(n, key); v != "" {
			fmt.Fprintf(&b, " %s=%q", key, v)
			break
		}
	}
	b.WriteString(">")
	return b.String()
}
