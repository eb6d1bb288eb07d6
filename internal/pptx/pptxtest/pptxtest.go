// Package pptxtest builds minimal PowerPoint packages for tests.
package pptxtest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

const (
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Para describes one paragraph of a text shape.
type Para struct {
	Text  string
	Level int
	Size  float64 // points, 0 leaves the size inherited
}

// P is a shorthand for an unsized level-0 paragraph.
func P(text string) Para {
	return Para{Text: text}
}

// Deck describes a package to build. Order lists slide part numbers in
// presentation order; when empty the slides appear in declaration order.
type Deck struct {
	Slides []string // slide bodies, see Slide
	Order  []int
	Width  int
	Height int
	// NoSlideList omits sldIdLst from presentation.xml.
	NoSlideList bool
}

// Shape ids only need to be unique within a slide; a global counter is enough.
var shapeID atomic.Int64

func nextID() int {
	return int(shapeID.Add(1)) + 1
}

func paragraphs(paras []Para) string {
	var b strings.Builder
	for _, p := range paras {
		b.WriteString("<a:p>")
		if p.Level > 0 {
			fmt.Fprintf(&b, `<a:pPr lvl="%d"/>`, p.Level)
		}
		if p.Size > 0 {
			fmt.Fprintf(&b, `<a:r><a:rPr lang="fr-FR" sz="%d"/><a:t>%s</a:t></a:r>`, int(p.Size*100), html.EscapeString(p.Text))
		} else {
			fmt.Fprintf(&b, `<a:r><a:t>%s</a:t></a:r>`, html.EscapeString(p.Text))
		}
		b.WriteString("</a:p>")
	}
	return b.String()
}

func placeholder(phType string, paras []Para) string {
	id := nextID()
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Shape %d"/><p:cNvSpPr/><p:nvPr><p:ph type="%s"/></p:nvPr></p:nvSpPr><p:spPr/><p:txBody><a:bodyPr/>%s</p:txBody></p:sp>`,
		id, id, phType, paragraphs(paras))
}

// Title is a title placeholder.
func Title(text string) string {
	return placeholder("title", []Para{P(text)})
}

// CenterTitle is a centered title placeholder, as used on title slides.
func CenterTitle(text string) string {
	return placeholder("ctrTitle", []Para{P(text)})
}

// SizedTitle is a title placeholder with an explicit font size.
func SizedTitle(text string, size float64) string {
	return placeholder("title", []Para{{Text: text, Size: size}})
}

// Body is a body placeholder.
func Body(paras ...Para) string {
	return placeholder("body", paras)
}

// TextBox is a plain text box.
func TextBox(paras ...Para) string {
	id := nextID()
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr/><p:txBody><a:bodyPr/>%s</p:txBody></p:sp>`,
		id, id, paragraphs(paras))
}

// Picture is an image shape.
func Picture() string {
	id := nextID()
	return fmt.Sprintf(`<p:pic><p:nvPicPr><p:cNvPr id="%d" name="Picture %d"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr><p:blipFill><a:blip r:embed="rId9"/></p:blipFill><p:spPr/></p:pic>`, id, id)
}

// Chart is a graphic frame holding a chart.
func Chart() string {
	id := nextID()
	return fmt.Sprintf(`<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="Chart %d"/><p:cNvGraphicFramePr/><p:nvPr/></p:nvGraphicFramePr><p:xfrm/><a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/chart"><c:chart xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" r:id="rId8"/></a:graphicData></a:graphic></p:graphicFrame>`, id, id)
}

// Table is a graphic frame holding a table.
func Table(rows ...[]string) string {
	id := nextID()
	var b strings.Builder
	for _, row := range rows {
		b.WriteString("<a:tr h=\"370840\">")
		for _, cell := range row {
			fmt.Fprintf(&b, `<a:tc><a:txBody><a:bodyPr/><a:p><a:r><a:t>%s</a:t></a:r></a:p></a:txBody></a:tc>`, html.EscapeString(cell))
		}
		b.WriteString("</a:tr>")
	}
	return fmt.Sprintf(`<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="Table %d"/><p:cNvGraphicFramePr/><p:nvPr/></p:nvGraphicFramePr><p:xfrm/><a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table"><a:tbl>%s</a:tbl></a:graphicData></a:graphic></p:graphicFrame>`,
		id, id, b.String())
}

// Group wraps shapes in a group shape.
func Group(shapes ...string) string {
	id := nextID()
	return fmt.Sprintf(`<p:grpSp><p:nvGrpSpPr><p:cNvPr id="%d" name="Group %d"/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>%s</p:grpSp>`,
		id, id, strings.Join(shapes, ""))
}

// Slide renders a full slide part from its shapes.
func Slide(shapes ...string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"><p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>%s</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`,
		nsA, nsR, nsP, strings.Join(shapes, ""))
}

// Build returns the zip bytes of the deck.
func (d Deck) Build() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	order := d.Order
	if len(order) == 0 {
		for i := range d.Slides {
			order = append(order, i+1)
		}
	}
	width, height := d.Width, d.Height
	if width == 0 || height == 0 {
		width, height = 9144000, 6858000
	}

	var types, presRels, sldIDs strings.Builder
	for i := range d.Slides {
		fmt.Fprintf(&types, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1)
	}
	for i, n := range order {
		// rId1 is the slide master, slides start at rId2
		fmt.Fprintf(&presRels, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, i+2, n)
		fmt.Fprintf(&sldIDs, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+2)
	}
	sldIDList := "<p:sldIdLst>" + sldIDs.String() + "</p:sldIdLst>"
	if d.NoSlideList {
		sldIDList = ""
	}

	files := []struct{ name, content string }{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/><Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>` + types.String() + `</Types>`},
		{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/></Relationships>`},
		{"ppt/_rels/presentation.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>` + presRels.String() + `</Relationships>`},
		{"ppt/presentation.xml", fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">%s<p:sldSz cx="%d" cy="%d"/><p:notesSz cx="6858000" cy="9144000"/></p:presentation>`, nsA, nsR, nsP, sldIDList, width, height)},
		{"ppt/slideLayouts/slideLayout1.xml", fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"><p:cSld name="Titre et contenu"><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld></p:sldLayout>`, nsA, nsR, nsP)},
	}
	for i, body := range d.Slides {
		files = append(files,
			struct{ name, content string }{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), body},
			struct{ name, content string }{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/></Relationships>`},
		)
	}

	for _, f := range files {
		w, err := zw.Create(f.name)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", f.name, err)
		}
		if _, err := w.Write([]byte(f.content)); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MustBuild is Build for tests.
func (d Deck) MustBuild(t testing.TB) []byte {
	t.Helper()
	data, err := d.Build()
	if err != nil {
		t.Fatalf("building deck: %v", err)
	}
	return data
}

// Write builds the deck into dir/name and returns the path.
func (d Deck) Write(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, d.MustBuild(t), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
