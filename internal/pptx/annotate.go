package pptx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Comment is a small colored text box overlaid on a slide.
type Comment struct {
	Label string // e.g. CRITIQUE
	Text  string
	Fill  string // RRGGBB
}

// Comment box geometry in EMUs.
const (
	commentWidth  = 3200000
	commentHeight = 420000
	commentMargin = 90000
	commentGap    = 60000
	commentFontSz = 1000
)

var (
	spTreeClose  = regexp.MustCompile(`</(\w+:)?spTree>`)
	relsClose    = []byte("</Relationships>")
	typesClose   = []byte("</Types>")
	ridPattern   = regexp.MustCompile(`Id="rId(\d+)"`)
	sldIDPattern = regexp.MustCompile(`(?s)<(\w+:)?sldId\b[^>]*?(/>|>.*?</(\w+:)?sldId>)`)
	attrPrefixRe = regexp.MustCompile(`\s(\w+):id="`)
)

// AddComments overlays one box per comment in the top-right corner of the slide,
// stacked downwards. Only the slide part is touched; existing markup is kept
// as is and the boxes are inserted before the closing spTree tag.
func (p *Presentation) AddComments(slideNumber int, comments []Comment) error {
	if len(comments) == 0 {
		return nil
	}
	if slideNumber < 1 || slideNumber > len(p.Slides) {
		return fmt.Errorf("slide %d out of range (1-%d)", slideNumber, len(p.Slides))
	}
	part := p.Slides[slideNumber-1].Part

	data, err := p.pkg.Part(part)
	if err != nil {
		return err
	}

	loc := lastMatch(spTreeClose, data)
	if loc == nil {
		return fmt.Errorf("%s: no shape tree", part)
	}
	prefix := ""
	if loc[2] >= 0 {
		prefix = string(data[loc[2]:loc[3]])
	}

	nextID, err := maxShapeID(data)
	if err != nil {
		return fmt.Errorf("%s: %w", part, err)
	}

	x := p.Width - commentWidth - commentMargin
	if x < 0 {
		x = 0
	}

	var boxes bytes.Buffer
	for i, c := range comments {
		nextID++
		y := commentMargin + i*(commentHeight+commentGap)
		writeCommentShape(&boxes, prefix, nextID, x, y, c)
	}

	out := make([]byte, 0, len(data)+boxes.Len())
	out = append(out, data[:loc[0]]...)
	out = append(out, boxes.Bytes()...)
	out = append(out, data[loc[0]:]...)
	p.pkg.SetPart(part, out)
	return nil
}

// lastMatch returns the submatch indexes of the last match of re in data.
func lastMatch(re *regexp.Regexp, data []byte) []int {
	all := re.FindAllSubmatchIndex(data, -1)
	if len(all) == 0 {
		return nil
	}
	return all[len(all)-1]
}

// maxShapeID returns the largest cNvPr id in a slide part.
func maxShapeID(data []byte) (int, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	maxID := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return maxID, nil
			}
			return 0, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "cNvPr" {
			continue
		}
		for _, attr := range start.Attr {
			if attr.Name.Local == "id" && attr.Name.Space == "" {
				if id, err := strconv.Atoi(attr.Value); err == nil && id > maxID {
					maxID = id
				}
			}
		}
	}
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func writeCommentShape(b *bytes.Buffer, p string, id, x, y int, c Comment) {
	fill := strings.TrimPrefix(c.Fill, "#")
	text := c.Text
	if c.Label != "" {
		text = c.Label + " : " + c.Text
	}

	fmt.Fprintf(b, `<%ssp xmlns:a="%s">`, p, nsDrawingML)
	fmt.Fprintf(b, `<%snvSpPr><%scNvPr id="%d" name="Commentaire %d"/><%scNvSpPr txBox="1"/><%snvPr/></%snvSpPr>`,
		p, p, id, id, p, p, p)
	fmt.Fprintf(b, `<%sspPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`,
		p, x, y, commentWidth, commentHeight)
	fmt.Fprintf(b, `<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:solidFill><a:srgbClr val="%s"/></a:solidFill></%sspPr>`,
		escape(fill), p)
	fmt.Fprintf(b, `<%stxBody><a:bodyPr wrap="square" lIns="72000" tIns="36000" rIns="72000" bIns="36000"><a:spAutoFit/></a:bodyPr><a:lstStyle/>`, p)
	fmt.Fprintf(b, `<a:p><a:r><a:rPr lang="fr-FR" sz="%d" b="1"><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill></a:rPr><a:t>%s</a:t></a:r></a:p>`,
		commentFontSz, escape(text))
	fmt.Fprintf(b, `</%stxBody></%ssp>`, p, p)
}

// SummarySlide is the content of the slide inserted after the first one.
type SummarySlide struct {
	Title string
	Lines []string
}

// InsertSummarySlide adds a new slide directly after the first slide. It
// creates the slide part and its relationships (reusing the first slide's
// layout), then registers it in [Content_Types].xml, the presentation
// relationships and sldIdLst. No existing slide part is modified.
func (p *Presentation) InsertSummarySlide(s SummarySlide) error {
	_, err := p.insertSlidePart(2, summarySlideXML(s, p.Width, p.Height))
	return err
}

// insertSlidePart registers body as a new slide at position (1-based, past
// the end appends) and returns the position it landed at.
func (p *Presentation) insertSlidePart(position int, body []byte) (int, error) {
	if len(p.Slides) == 0 {
		return 0, errors.New("presentation has no slides")
	}

	layout, err := p.layoutTarget(p.Slides[0].Part)
	if err != nil {
		return 0, err
	}

	num := 0
	for _, name := range p.pkg.Names() {
		if n := slideNumber(name); n > num {
			num = n
		}
	}
	num++
	part := fmt.Sprintf("ppt/slides/slide%d.xml", num)

	presRelsName := "ppt/_rels/presentation.xml.rels"
	presRels, err := p.pkg.Part(presRelsName)
	if err != nil {
		return 0, err
	}
	rid := fmt.Sprintf("rId%d", maxRelID(presRels)+1)

	presentation, err := p.pkg.Part("ppt/presentation.xml")
	if err != nil {
		return 0, err
	}
	updatedPres, position, err := insertSlideID(presentation, rid, position)
	if err != nil {
		return 0, err
	}

	contentTypes, err := p.pkg.Part("[Content_Types].xml")
	if err != nil {
		return 0, err
	}
	override := fmt.Sprintf(`<Override PartName="/%s" ContentType="%s"/>`, part, contentTypeSlide)
	updatedTypes, err := insertBefore(contentTypes, typesClose, override)
	if err != nil {
		return 0, fmt.Errorf("[Content_Types].xml: %w", err)
	}

	rel := fmt.Sprintf(`<Relationship Id="%s" Type="%s" Target="slides/slide%d.xml"/>`, rid, relTypeSlide, num)
	updatedRels, err := insertBefore(presRels, relsClose, rel)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", presRelsName, err)
	}

	p.pkg.SetPart(part, body)
	p.pkg.SetPart(relsPath(part), slideRelsXML(layout))
	p.pkg.SetPart("[Content_Types].xml", updatedTypes)
	p.pkg.SetPart(presRelsName, updatedRels)
	p.pkg.SetPart("ppt/presentation.xml", updatedPres)
	return position, nil
}

// layoutTarget returns the layout used by a slide, relative to ppt/slides.
// It falls back to the first layout in the package.
func (p *Presentation) layoutTarget(slidePart string) (string, error) {
	if rels, err := readRels(p.pkg, relsPath(slidePart)); err == nil {
		for _, rel := range rels.Relationship {
			if rel.Type == relTypeSlideLayout {
				return rel.Target, nil
			}
		}
	}

	for _, name := range p.pkg.Names() {
		if strings.HasPrefix(name, "ppt/slideLayouts/") && strings.HasSuffix(name, ".xml") {
			return "../slideLayouts/" + strings.TrimPrefix(name, "ppt/slideLayouts/"), nil
		}
	}
	return "", errors.New("no slide layout available for the summary slide")
}

func maxRelID(rels []byte) int {
	maxID := 0
	for _, m := range ridPattern.FindAllSubmatch(rels, -1) {
		if n, err := strconv.Atoi(string(m[1])); err == nil && n > maxID {
			maxID = n
		}
	}
	return maxID
}

// insertSlideID adds a sldId entry so that the slide lands at position
// (1-based). Positions below 1 or past the end append. It returns the
// position used.
func insertSlideID(presentation []byte, rid string, position int) ([]byte, int, error) {
	var presXML presentationXML
	if err := xml.Unmarshal(presentation, &presXML); err != nil {
		return nil, 0, fmt.Errorf("parsing presentation: %w", err)
	}
	maxID := 255
	if presXML.SlideIDList != nil {
		for _, s := range presXML.SlideIDList.SlideID {
			if s.ID > maxID {
				maxID = s.ID
			}
		}
	}

	entries := sldIDPattern.FindAllSubmatchIndex(presentation, -1)
	if len(entries) == 0 {
		return nil, 0, errors.New("presentation.xml: no sldId entry")
	}
	if position < 1 || position > len(entries) {
		position = len(entries) + 1
	}

	first := entries[0]
	elemPrefix := ""
	if first[2] >= 0 {
		elemPrefix = string(presentation[first[2]:first[3]])
	}
	relPrefix := "r"
	if m := attrPrefixRe.FindSubmatch(presentation[first[0]:first[1]]); m != nil {
		relPrefix = string(m[1])
	}

	at := entries[0][0]
	if position > 1 {
		at = entries[position-2][1]
	}

	entry := fmt.Sprintf(`<%ssldId id="%d" %s:id="%s"/>`, elemPrefix, maxID+1, relPrefix, rid)
	out := make([]byte, 0, len(presentation)+len(entry))
	out = append(out, presentation[:at]...)
	out = append(out, entry...)
	out = append(out, presentation[at:]...)
	return out, position, nil
}

func insertBefore(data, marker []byte, insert string) ([]byte, error) {
	i := bytes.LastIndex(data, marker)
	if i < 0 {
		return nil, fmt.Errorf("missing %s", marker)
	}
	out := make([]byte, 0, len(data)+len(insert))
	out = append(out, data[:i]...)
	out = append(out, insert...)
	out = append(out, data[i:]...)
	return out, nil
}

func slideRelsXML(layoutTarget string) []byte {
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="%s" Target="%s"/></Relationships>`,
		relTypeSlideLayout, escape(layoutTarget)))
}

func summarySlideXML(s SummarySlide, width, height int) []byte {
	margin := width / 20
	titleHeight := height / 6
	bodyY := margin + titleHeight

	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	fmt.Fprintf(&b, `<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsDrawingML, nsRelationships, nsPresentationML)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)

	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Titre"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>`)
	fmt.Fprintf(&b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm></p:spPr>`,
		margin, margin, width-2*margin, titleHeight)
	fmt.Fprintf(&b, `<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="fr-FR" sz="2800" b="1"/><a:t>%s</a:t></a:r></a:p></p:txBody></p:sp>`,
		escape(s.Title))

	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="3" name="Synthèse"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`)
	fmt.Fprintf(&b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`,
		margin, bodyY, width-2*margin, height-bodyY-margin)
	b.WriteString(`<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>`)
	if len(s.Lines) == 0 {
		b.WriteString(`<a:p><a:endParaRPr lang="fr-FR"/></a:p>`)
	}
	for _, line := range s.Lines {
		fmt.Fprintf(&b, `<a:p><a:r><a:rPr lang="fr-FR" sz="1600"/><a:t>%s</a:t></a:r></a:p>`, escape(line))
	}
	b.WriteString(`</p:txBody></p:sp>`)

	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return b.Bytes()
}

// Save writes the presentation, with any annotations, to path.
func (p *Presentation) Save(path string) error {
	return p.pkg.Save(path)
}
