// Package pptx reads the shape tree of PowerPoint (Office Open XML) decks and
// writes annotations back into them.
package pptx

import (
	"encoding/xml"
	"fmt"
	"os"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ShapeKind classifies a shape on a slide.
type ShapeKind int

const (
	KindText ShapeKind = iota
	KindPicture
	KindTable
	KindChart
	KindGraphic // any other graphic frame (SmartArt, OLE objects)
)

func (k ShapeKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPicture:
		return "picture"
	case KindTable:
		return "table"
	case KindChart:
		return "chart"
	default:
		return "graphic"
	}
}

// LineBreak is the run text of an a:br element. It counts as whitespace.
const LineBreak = "\v"

// Run is a span of text with its explicit font size in points (0 when inherited).
type Run struct {
	Text     string
	FontSize float64
	Bold     bool
}

// Paragraph is one a:p element.
type Paragraph struct {
	Level      int
	BulletChar string
	Numbered   bool
	Runs       []Run
}

// Text joins the runs of the paragraph.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Shape is a drawable element of a slide. Groups are flattened.
type Shape struct {
	ID          int
	Name        string
	Kind        ShapeKind
	Placeholder string // ph type: title, ctrTitle, body, subTitle...
	Paragraphs  []Paragraph
	Grouped     bool
}

// IsTitle reports whether the shape is a title placeholder.
func (s Shape) IsTitle() bool {
	return s.Placeholder == "title" || s.Placeholder == "ctrTitle"
}

// Text joins the shape's paragraphs with newlines.
func (s Shape) Text() string {
	parts := make([]string, 0, len(s.Paragraphs))
	for _, p := range s.Paragraphs {
		parts = append(parts, p.Text())
	}
	return strings.Join(parts, "\n")
}

// Slide is one slide in presentation order.
type Slide struct {
	Number int    // 1-based position in the deck
	Part   string // e.g. ppt/slides/slide3.xml
	Shapes []Shape
}

// Presentation is a parsed deck. Slides reflect the package as it was read;
// annotations added afterwards only change the underlying parts.
type Presentation struct {
	Slides []*Slide
	Width  int // EMUs
	Height int

	pkg *Package
}

// Package gives access to the underlying parts.
func (p *Presentation) Package() *Package {
	return p.pkg
}

// Open reads the whole file into memory and parses it.
func Open(filename string) (*Presentation, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return Read(data)
}

// Read parses a deck from its zip bytes.
func Read(data []byte) (*Presentation, error) {
	pkg, err := ReadPackage(data)
	if err != nil {
		return nil, err
	}

	pres := &Presentation{pkg: pkg, Width: defaultSlideWidth, Height: defaultSlideHeight}

	raw, err := pkg.Part("ppt/presentation.xml")
	if err != nil {
		return nil, err
	}
	var presXML presentationXML
	if err := xml.Unmarshal(raw, &presXML); err != nil {
		return nil, fmt.Errorf("parsing presentation: %w", err)
	}
	if presXML.SlideSz != nil && presXML.SlideSz.Cx > 0 && presXML.SlideSz.Cy > 0 {
		pres.Width = presXML.SlideSz.Cx
		pres.Height = presXML.SlideSz.Cy
	}

	parts := slideOrder(pkg, &presXML)
	for i, part := range parts {
		slide, err := parseSlide(pkg, part)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", part, err)
		}
		slide.Number = i + 1
		pres.Slides = append(pres.Slides, slide)
	}

	return pres, nil
}

var slidePartPattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// slideNumber extracts N from ppt/slides/slideN.xml, or -1.
func slideNumber(name string) int {
	m := slidePartPattern.FindStringSubmatch(name)
	if m == nil {
		return -1
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// slideOrder follows sldIdLst through the presentation relationships. When the
// list cannot be resolved the slide parts are sorted by number.
func slideOrder(pkg *Package, presXML *presentationXML) []string {
	if presXML.SlideIDList != nil && len(presXML.SlideIDList.SlideID) > 0 {
		rels, err := readRels(pkg, "ppt/_rels/presentation.xml.rels")
		if err == nil {
			targets := make(map[string]string, len(rels.Relationship))
			for _, rel := range rels.Relationship {
				targets[rel.ID] = resolveTarget("ppt", rel.Target)
			}

			ordered := make([]string, 0, len(presXML.SlideIDList.SlideID))
			for _, id := range presXML.SlideIDList.SlideID {
				target, ok := targets[id.RID]
				if !ok || !pkg.Has(target) {
					ordered = nil
					break
				}
				ordered = append(ordered, target)
			}
			if ordered != nil {
				return ordered
			}
		}
	}

	var parts []string
	for _, name := range pkg.Names() {
		if slideNumber(name) >= 0 {
			parts = append(parts, name)
		}
	}
	sort.Slice(parts, func(i, j int) bool {
		return slideNumber(parts[i]) < slideNumber(parts[j])
	})
	return parts
}

// resolveTarget turns a relationship target into a part name.
func resolveTarget(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

// relsPath returns the relationships part of a part.
func relsPath(part string) string {
	return path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
}

func readRels(pkg *Package, name string) (*relationshipsXML, error) {
	data, err := pkg.Part(name)
	if err != nil {
		return nil, err
	}
	rels := &relationshipsXML{}
	if err := xml.Unmarshal(data, rels); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return rels, nil
}

func parseSlide(pkg *Package, part string) (*Slide, error) {
	data, err := pkg.Part(part)
	if err != nil {
		return nil, err
	}

	var sx slideXML
	if err := xml.Unmarshal(data, &sx); err != nil {
		return nil, err
	}

	slide := &Slide{Part: part}
	collectShapes(&sx.CSld.SpTree, false, slide)
	return slide, nil
}

// collectShapes walks a shape tree, recursing into groups.
func collectShapes(g *groupXML, grouped bool, slide *Slide) {
	for _, sp := range g.Sp {
		shape := Shape{
			ID:      sp.NvSpPr.CNvPr.ID,
			Name:    sp.NvSpPr.CNvPr.Name,
			Kind:    KindText,
			Grouped: grouped,
		}
		if sp.NvSpPr.NvPr.Ph != nil {
			shape.Placeholder = sp.NvSpPr.NvPr.Ph.Type
		}
		if sp.TxBody != nil {
			shape.Paragraphs = extractParagraphs(sp.TxBody)
		}
		slide.Shapes = append(slide.Shapes, shape)
	}

	for _, pic := range g.Pic {
		slide.Shapes = append(slide.Shapes, Shape{
			ID:      pic.NvPicPr.CNvPr.ID,
			Name:    pic.NvPicPr.CNvPr.Name,
			Kind:    KindPicture,
			Grouped: grouped,
		})
	}

	for _, gf := range g.GraphicFrame {
		data := gf.Graphic.GraphicData
		shape := Shape{
			ID:      gf.NvGraphicFramePr.CNvPr.ID,
			Name:    gf.NvGraphicFramePr.CNvPr.Name,
			Kind:    KindGraphic,
			Grouped: grouped,
		}
		switch {
		case data.Tbl != nil || data.URI == uriTable:
			shape.Kind = KindTable
			if data.Tbl != nil {
				shape.Paragraphs = tableParagraphs(data.Tbl)
			}
		case data.URI == uriChart:
			shape.Kind = KindChart
		}
		slide.Shapes = append(slide.Shapes, shape)
	}

	for i := range g.GrpSp {
		collectShapes(&g.GrpSp[i], true, slide)
	}
}

func extractParagraphs(body *txBodyXML) []Paragraph {
	paras := make([]Paragraph, 0, len(body.P))
	for _, p := range body.P {
		para := Paragraph{}
		if p.PPr != nil {
			para.Level = p.PPr.Lvl
			if p.PPr.BuNone == nil {
				if p.PPr.BuChar != nil {
					para.BulletChar = p.PPr.BuChar.Char
				}
				para.Numbered = p.PPr.BuAutoNum != nil
			}
		}
		for _, item := range p.Items {
			if item.Break {
				para.Runs = append(para.Runs, Run{Text: LineBreak})
				continue
			}
			para.Runs = append(para.Runs, makeRun(item.T, item.RPr))
		}
		paras = append(paras, para)
	}
	return paras
}

func makeRun(text string, rPr *rPrXML) Run {
	run := Run{Text: text}
	if rPr != nil {
		run.FontSize = float64(rPr.Sz) / 100
		run.Bold = rPr.bold()
	}
	return run
}

func tableParagraphs(tbl *tblXML) []Paragraph {
	var paras []Paragraph
	for _, tr := range tbl.Tr {
		for _, tc := range tr.Tc {
			if tc.TxBody != nil {
				paras = append(paras, extractParagraphs(tc.TxBody)...)
			}
		}
	}
	return paras
}
