package pptx

import (
	"encoding/xml"
	"strconv"
)

// Relationship and content types written by the annotator.
const (
	relTypeSlide       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeSlideLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	contentTypeSlide   = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"

	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	uriChart = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	uriTable = "http://schemas.openxmlformats.org/drawingml/2006/table"
)

// Default slide size (4:3) in EMUs, used when sldSz is absent.
const (
	defaultSlideWidth  = 9144000
	defaultSlideHeight = 6858000
)

type presentationXML struct {
	XMLName     xml.Name        `xml:"presentation"`
	SlideIDList *slideIDListXML `xml:"sldIdLst"`
	SlideSz     *slideSzXML     `xml:"sldSz"`
}

type slideIDListXML struct {
	SlideID []slideIDXML `xml:"sldId"`
}

// slideIDXML carries both id and r:id. A plain id,attr tag would also match
// r:id, so the attributes are split by namespace here.
type slideIDXML struct {
	ID  int
	RID string
}

func (s *slideIDXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		if a.Name.Local != "id" {
			continue
		}
		switch a.Name.Space {
		case "":
			if n, err := strconv.Atoi(a.Value); err == nil {
				s.ID = n
			}
		case nsRelationships:
			s.RID = a.Value
		}
	}
	return d.Skip()
}

type slideSzXML struct {
	Cx int `xml:"cx,attr"`
	Cy int `xml:"cy,attr"`
}

type slideXML struct {
	XMLName xml.Name `xml:"sld"`
	CSld    cSldXML  `xml:"cSld"`
}

type cSldXML struct {
	SpTree groupXML `xml:"spTree"`
}

// groupXML covers both the slide's spTree and nested grpSp elements.
type groupXML struct {
	Sp           []spXML           `xml:"sp"`
	Pic          []picXML          `xml:"pic"`
	GraphicFrame []graphicFrameXML `xml:"graphicFrame"`
	GrpSp        []groupXML        `xml:"grpSp"`
}

type cNvPrXML struct {
	ID    int    `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr"`
}

type spXML struct {
	NvSpPr nvSpPrXML  `xml:"nvSpPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type nvSpPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
	NvPr  nvPrXML  `xml:"nvPr"`
}

type nvPrXML struct {
	Ph *phXML `xml:"ph"`
}

type phXML struct {
	Type string `xml:"type,attr"`
}

type txBodyXML struct {
	P []pXML `xml:"p"`
}

// pXML keeps runs, fields and line breaks in document order.
type pXML struct {
	PPr   *pPrXML
	Items []textItemXML
}

// textItemXML is an a:r, a:fld or a:br child of a paragraph.
type textItemXML struct {
	Break bool
	RPr   *rPrXML
	T     string
}

func (p *pXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "pPr":
				p.PPr = &pPrXML{}
				if err := d.DecodeElement(p.PPr, &el); err != nil {
					return err
				}
			case "r", "fld":
				var r rXML
				if err := d.DecodeElement(&r, &el); err != nil {
					return err
				}
				p.Items = append(p.Items, textItemXML{RPr: r.RPr, T: r.T})
			case "br":
				p.Items = append(p.Items, textItemXML{Break: true})
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

type pPrXML struct {
	Lvl       int           `xml:"lvl,attr"`
	BuNone    *struct{}     `xml:"buNone"`
	BuChar    *buCharXML    `xml:"buChar"`
	BuAutoNum *buAutoNumXML `xml:"buAutoNum"`
}

type buCharXML struct {
	Char string `xml:"char,attr"`
}

type buAutoNumXML struct {
	Type string `xml:"type,attr"`
}

type rXML struct {
	RPr *rPrXML `xml:"rPr"`
	T   string  `xml:"t"`
}

type rPrXML struct {
	Sz int    `xml:"sz,attr"` // hundredths of a point
	B  string `xml:"b,attr"`  // xsd:boolean
}

func (r *rPrXML) bold() bool {
	return r.B == "1" || r.B == "true"
}

type picXML struct {
	NvPicPr struct {
		CNvPr cNvPrXML `xml:"cNvPr"`
	} `xml:"nvPicPr"`
}

type graphicFrameXML struct {
	NvGraphicFramePr struct {
		CNvPr cNvPrXML `xml:"cNvPr"`
	} `xml:"nvGraphicFramePr"`
	Graphic struct {
		GraphicData graphicDataXML `xml:"graphicData"`
	} `xml:"graphic"`
}

type graphicDataXML struct {
	URI string  `xml:"uri,attr"`
	Tbl *tblXML `xml:"tbl"`
}

type tblXML struct {
	Tr []struct {
		Tc []struct {
			TxBody *txBodyXML `xml:"txBody"`
		} `xml:"tc"`
	} `xml:"tr"`
}

type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}
