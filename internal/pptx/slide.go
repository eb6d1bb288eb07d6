package pptx

import (
	"bytes"
	"fmt"
	"strings"
)

// Box is a shape drawn on a generated slide. A Box with zero height is drawn
// as a horizontal rule in its Line color.
type Box struct {
	Name       string
	X, Y       int // EMUs
	Width      int
	Height     int
	Title      bool   // title placeholder, so readers find the slide title
	Fill       string // RRGGBB, empty for none
	Line       string // RRGGBB, empty for none
	Middle     bool   // anchor the text in the vertical middle
	Paragraphs []BoxParagraph
}

// BoxParagraph is a single-run paragraph of a Box.
type BoxParagraph struct {
	Text   string
	Size   float64 // points, 0 inherits
	Bold   bool
	Color  string // RRGGBB
	Font   string // latin typeface, empty inherits
	Center bool
}

// InsertSlide adds a slide drawn from boxes at position (1-based). Positions
// below 1 or past the end append the slide. It returns the position used.
// Like InsertSummarySlide, no existing slide part is modified.
func (p *Presentation) InsertSlide(position int, boxes []Box) (int, error) {
	return p.insertSlidePart(position, boxSlideXML(boxes))
}

func boxSlideXML(boxes []Box) []byte {
	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	fmt.Fprintf(&b, `<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsDrawingML, nsRelationships, nsPresentationML)
	b.WriteString(`<p:cSld><p:bg><p:bgPr><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill><a:effectLst/></p:bgPr></p:bg><p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)

	for i, box := range boxes {
		id := i + 2
		if box.Height == 0 && len(box.Paragraphs) == 0 {
			writeRule(&b, id, box)
			continue
		}
		writeBox(&b, id, box)
	}

	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return b.Bytes()
}

func boxName(id int, box Box) string {
	if box.Name != "" {
		return box.Name
	}
	return fmt.Sprintf("Forme %d", id)
}

func writeRule(b *bytes.Buffer, id int, box Box) {
	fmt.Fprintf(b, `<p:cxnSp><p:nvCxnSpPr><p:cNvPr id="%d" name="%s"/><p:cNvCxnSpPr/><p:nvPr/></p:nvCxnSpPr>`,
		id, escape(boxName(id, box)))
	fmt.Fprintf(b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="0"/></a:xfrm><a:prstGeom prst="line"><a:avLst/></a:prstGeom>`,
		box.X, box.Y, box.Width)
	fmt.Fprintf(b, `<a:ln w="12700"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln></p:spPr></p:cxnSp>`,
		escape(hexValue(box.Line, "161616")))
}

func writeBox(b *bytes.Buffer, id int, box Box) {
	b.WriteString(`<p:sp><p:nvSpPr>`)
	fmt.Fprintf(b, `<p:cNvPr id="%d" name="%s"/>`, id, escape(boxName(id, box)))
	if box.Title {
		b.WriteString(`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph type="title"/></p:nvPr>`)
	} else {
		b.WriteString(`<p:cNvSpPr txBox="1"/><p:nvPr/>`)
	}
	b.WriteString(`</p:nvSpPr>`)

	fmt.Fprintf(b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`,
		box.X, box.Y, box.Width, box.Height)
	if box.Fill != "" {
		fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, escape(hexValue(box.Fill, "")))
	} else {
		b.WriteString(`<a:noFill/>`)
	}
	if box.Line != "" {
		fmt.Fprintf(b, `<a:ln><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln>`, escape(hexValue(box.Line, "")))
	}
	b.WriteString(`</p:spPr>`)

	anchor := "t"
	if box.Middle {
		anchor = "ctr"
	}
	fmt.Fprintf(b, `<p:txBody><a:bodyPr wrap="square" anchor="%s"><a:normAutofit/></a:bodyPr><a:lstStyle/>`, anchor)
	if len(box.Paragraphs) == 0 {
		b.WriteString(`<a:p><a:endParaRPr lang="fr-FR"/></a:p>`)
	}
	for _, para := range box.Paragraphs {
		writeBoxParagraph(b, para)
	}
	b.WriteString(`</p:txBody></p:sp>`)
}

func writeBoxParagraph(b *bytes.Buffer, para BoxParagraph) {
	b.WriteString(`<a:p>`)
	if para.Center {
		b.WriteString(`<a:pPr algn="ctr"><a:buNone/></a:pPr>`)
	} else {
		b.WriteString(`<a:pPr><a:buNone/></a:pPr>`)
	}

	b.WriteString(`<a:r><a:rPr lang="fr-FR"`)
	if para.Size > 0 {
		fmt.Fprintf(b, ` sz="%d"`, int(para.Size*100))
	}
	if para.Bold {
		b.WriteString(` b="1"`)
	}
	b.WriteString(`>`)
	if para.Color != "" {
		fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, escape(hexValue(para.Color, "")))
	}
	if para.Font != "" {
		fmt.Fprintf(b, `<a:latin typeface="%s"/>`, escape(para.Font))
	}
	fmt.Fprintf(b, `</a:rPr><a:t>%s</a:t></a:r></a:p>`, escape(para.Text))
}

// hexValue strips the leading # of a color, falling back to def when empty.
func hexValue(color, def string) string {
	color = strings.ToUpper(strings.TrimPrefix(color, "#"))
	if color == "" {
		return def
	}
	return color
}
