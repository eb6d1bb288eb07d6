// Package slides lays out the DSFR-styled accessibility reminder slides that
// can be inserted into a deck.
package slides

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yacobolo/dsfrkit/internal/contrast"
	"github.com/yacobolo/dsfrkit/internal/pptx"
)

// ErrUnknownSlide is returned for a slide kind that has no layout.
var ErrUnknownSlide = errors.New("unknown slide")

// Layouts are drawn on a 10 x 5.625 inch grid and scaled to the deck size.
const (
	gridWidth   = 10.0
	gridHeight  = 5.625
	textFont    = "Arial" // Marianne is rarely installed
	codeFont    = "Courier New"
	checkTitle  = "✅ 3 outils de vérification"
	columnWidth = 2.8
)

var (
	bleuFrance    = paletteHex("Bleu France")
	bleuInfo      = paletteHex("Bleu Info")
	rougeMarianne = paletteHex("Rouge Marianne")
	gris1000      = paletteHex("Gris 1000")
	blanc         = paletteHex("Blanc")
)

func paletteHex(name string) string {
	c, ok := contrast.LookupPaletteName(name)
	if !ok {
		panic("slides: no palette color " + name)
	}
	return c.Color.Hex()
}

var layouts = map[string]func(grid) []pptx.Box{
	"contrast": contrastSlide,
	"language": languageSlide,
}

// Kinds lists the slide kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(layouts))
	for k := range layouts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Build returns the boxes of the slide of this kind for a deck of the given
// size in EMUs.
func Build(kind string, width, height int) ([]pptx.Box, error) {
	layout, ok := layouts[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownSlide, kind, strings.Join(Kinds(), ", "))
	}
	return layout(grid{width: width, height: height}), nil
}

// grid converts inch positions to EMUs on the target slide.
type grid struct {
	width, height int
}

func (g grid) x(in float64) int {
	return int(in / gridWidth * float64(g.width))
}

func (g grid) y(in float64) int {
	return int(in / gridHeight * float64(g.height))
}

func (g grid) box(name string, x, y, w, h float64, paras ...pptx.BoxParagraph) pptx.Box {
	return pptx.Box{
		Name:       name,
		X:          g.x(x),
		Y:          g.y(y),
		Width:      g.x(w),
		Height:     g.y(h),
		Paragraphs: paras,
	}
}

func (g grid) rule(y float64) pptx.Box {
	return pptx.Box{Name: "Séparateur", X: g.x(0.5), Y: g.y(y), Width: g.x(9), Line: gris1000}
}

func (g grid) title(text string) pptx.Box {
	b := g.box("Titre", 0.5, 0.3, 9, 0.6, pptx.BoxParagraph{Text: text, Size: 28, Bold: true, Color: bleuFrance, Font: textFont})
	b.Title = true
	return b
}

func (g grid) banner(y float64, text string, size float64) pptx.Box {
	b := g.box("Message clé", 0.5, y, 9, 0.6,
		pptx.BoxParagraph{Text: text, Size: size, Bold: true, Color: blanc, Font: textFont, Center: true})
	b.Fill = bleuInfo
	b.Line = bleuInfo
	b.Middle = true
	return b
}

func text(s string, size float64) pptx.BoxParagraph {
	return pptx.BoxParagraph{Text: s, Size: size, Color: gris1000, Font: textFont}
}

func heading(s string, size float64) pptx.BoxParagraph {
	return pptx.BoxParagraph{Text: s, Size: size, Bold: true, Color: gris1000, Font: textFont}
}

func (g grid) tools(y, h float64, lines ...string) pptx.Box {
	paras := make([]pptx.BoxParagraph, 0, len(lines))
	for _, l := range lines {
		paras = append(paras, text("• "+l, 13))
	}
	return g.box("Outils", 0.5, y, 9, h, paras...)
}

func (g grid) ratioColumn(x float64, label, detail, ratio string) pptx.Box {
	center := func(p pptx.BoxParagraph) pptx.BoxParagraph {
		p.Center = true
		return p
	}
	b := g.box("Ratio "+label, x, 3.6, columnWidth, 0.9,
		center(text(label, 14)),
		center(text(detail, 11)),
		pptx.BoxParagraph{Text: ratio, Size: 32, Bold: true, Color: rougeMarianne, Font: textFont, Center: true},
	)
	b.Middle = true
	return b
}

func contrastSlide(g grid) []pptx.Box {
	return []pptx.Box{
		g.title("Appliquer des contrastes suffisamment élevés"),
		g.rule(1.0),
		g.box("Impact", 0.5, 1.2, 9, 0.8, text("L'utilisation de contrastes trop faibles diminue considérablement "+
			"la lisibilité des contenus. Dans ce cas, les personnes malvoyantes ne perçoivent pas certains textes, "+
			"composants d'interface ou éléments graphiques. Elles sont alors incapables de lire le contenu ou "+
			"d'interagir avec les éléments concernés.", 14)),
		g.rule(2.1),
		g.banner(2.3, "💡 Le contraste : pas de l'esthétique, de l'accessibilité", 20),
		g.rule(3.0),
		g.box("Ratios", 0.5, 3.2, 9, 0.3, heading("Ratios WCAG requis", 18)),
		g.ratioColumn(0.5, "Texte normal", "(< 18 pt ou < 14 pt gras)", "4,5:1"),
		g.ratioColumn(3.6, "Grand texte", "(≥ 18 pt ou ≥ 14 pt gras)", "3:1"),
		g.ratioColumn(6.7, "Icônes informatives", "(composants d'interface)", "3:1"),
		g.rule(4.6),
		g.box("Vérification", 0.5, 4.8, 9, 0.3, heading(checkTitle, 16)),
		g.tools(5.15, 0.4,
			"Color Contrast Analyzer (CCA) - TPGi",
			"Contrast Finder - Tanaguru",
			"Analyseur de contraste - Deque University",
		),
	}
}

func (g grid) codeColumn(x float64, label, code string) pptx.Box {
	return g.box(label, x, 3.5, 4.3, 0.8,
		heading(label, 14),
		pptx.BoxParagraph{Text: code, Size: 13, Color: rougeMarianne, Font: codeFont},
	)
}

func languageSlide(g grid) []pptx.Box {
	return []pptx.Box{
		g.title("Identifier la langue principale et les changements de langue"),
		g.rule(1.0),
		g.box("Impact", 0.5, 1.2, 9, 0.7, text("Les personnes aveugles ou malvoyantes qui utilisent un lecteur "+
			"d'écran peuvent rencontrer d'importantes difficultés à comprendre les textes lus dans une langue qui "+
			"n'est pas la bonne. Sans indication de langue, le lecteur d'écran utilisera sa langue par défaut, "+
			"rendant le contenu incompréhensible.", 13)),
		g.rule(2.0),
		g.banner(2.2, "Sans langue, ou avec une mauvaise indication de langue, pas de lecture accessible", 18),
		g.rule(2.9),
		g.box("Critères", 0.5, 3.1, 9, 0.3, heading("Critères RGAA : 8.3, 8.4, 8.7, 8.8, 8.10", 16)),
		g.codeColumn(0.5, "Langue principale :", `<html lang="fr">`),
		g.codeColumn(5.2, "Changement de langue :", `<span lang="en">Hello</span>`),
		g.rule(4.5),
		g.box("Vérification", 0.5, 4.7, 9, 0.3, heading(checkTitle, 16)),
		g.tools(5.0, 0.5,
			"Validateur HTML du W3C",
			"Console du navigateur (F12)",
			"Lecteurs d'écran (NVDA, JAWS, VoiceOver)",
		),
	}
}
