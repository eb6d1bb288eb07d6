package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/dsfrkit/internal/pptx/pptxtest"
)

func TestRead_Shapes(t *testing.T) {
	data := pptxtest.Deck{Slides: []string{
		pptxtest.Slide(
			pptxtest.Title("Contexte"),
			pptxtest.Body(
				pptxtest.Para{Text: "Premier point", Size: 18},
				pptxtest.Para{Text: "Sous-point", Level: 1, Size: 14},
			),
			pptxtest.Picture(),
			pptxtest.Chart(),
			pptxtest.Table([]string{"A", "B"}, []string{"1", "2"}),
			pptxtest.Group(pptxtest.TextBox(pptxtest.P("Dans un groupe")), pptxtest.Picture()),
		),
	}}.MustBuild(t)

	pres, err := Read(data)
	require.NoError(t, err)
	require.Len(t, pres.Slides, 1)

	slide := pres.Slides[0]
	assert.Equal(t, 1, slide.Number)
	assert.Equal(t, "ppt/slides/slide1.xml", slide.Part)

	kinds := map[ShapeKind]int{}
	for _, s := range slide.Shapes {
		kinds[s.Kind]++
	}
	assert.Equal(t, 3, kinds[KindText])
	assert.Equal(t, 2, kinds[KindPicture])
	assert.Equal(t, 1, kinds[KindChart])
	assert.Equal(t, 1, kinds[KindTable])

	var title, body, grouped *Shape
	for i := range slide.Shapes {
		s := &slide.Shapes[i]
		switch {
		case s.IsTitle():
			title = s
		case s.Placeholder == "body":
			body = s
		case s.Kind == KindText && s.Grouped:
			grouped = s
		}
	}
	require.NotNil(t, title)
	require.NotNil(t, body)
	require.NotNil(t, grouped)

	assert.Equal(t, "Contexte", title.Text())
	assert.Equal(t, "Dans un groupe", grouped.Text())
	require.Len(t, body.Paragraphs, 2)
	assert.Equal(t, 0, body.Paragraphs[0].Level)
	assert.Equal(t, 1, body.Paragraphs[1].Level)
	assert.Equal(t, 18.0, body.Paragraphs[0].Runs[0].FontSize)
	assert.Equal(t, 14.0, body.Paragraphs[1].Runs[0].FontSize)
	assert.Equal(t, "Premier point\nSous-point", body.Text())
}

func TestRead_CenterTitleIsTitle(t *testing.T) {
	data := pptxtest.Deck{Slides: []string{
		pptxtest.Slide(pptxtest.CenterTitle("Ouverture")),
	}}.MustBuild(t)

	pres, err := Read(data)
	require.NoError(t, err)
	require.Len(t, pres.Slides[0].Shapes, 1)
	assert.True(t, pres.Slides[0].Shapes[0].IsTitle())
}

func TestRead_TableCellText(t *testing.T) {
	data := pptxtest.Deck{Slides: []string{
		pptxtest.Slide(pptxtest.Table([]string{"Année", "Budget"})),
	}}.MustBuild(t)

	pres, err := Read(data)
	require.NoError(t, err)
	require.Len(t, pres.Slides[0].Shapes, 1)
	assert.Equal(t, KindTable, pres.Slides[0].Shapes[0].Kind)
	assert.Equal(t, "Année\nBudget", pres.Slides[0].Shapes[0].Text())
}

func TestRead_SlideOrder(t *testing.T) {
	slides := []string{
		pptxtest.Slide(pptxtest.Title("Un")),
		pptxtest.Slide(pptxtest.Title("Deux")),
		pptxtest.Slide(pptxtest.Title("Trois")),
	}

	tests := []struct {
		name string
		deck pptxtest.Deck
		want []string
	}{
		{
			name: "declaration order",
			deck: pptxtest.Deck{Slides: slides},
			want: []string{"Un", "Deux", "Trois"},
		},
		{
			name: "sldIdLst order wins over part numbers",
			deck: pptxtest.Deck{Slides: slides, Order: []int{3, 1, 2}},
			want: []string{"Trois", "Un", "Deux"},
		},
		{
			name: "numeric fallback without sldIdLst",
			deck: pptxtest.Deck{Slides: slides, Order: []int{3, 1, 2}, NoSlideList: true},
			want: []string{"Un", "Deux", "Trois"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pres, err := Read(tt.deck.MustBuild(t))
			require.NoError(t, err)

			var got []string
			for i, s := range pres.Slides {
				assert.Equal(t, i+1, s.Number)
				got = append(got, s.Shapes[0].Text())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_SlideSize(t *testing.T) {
	pres, err := Read(pptxtest.Deck{
		Slides: []string{pptxtest.Slide()},
		Width:  12192000,
		Height: 6858000,
	}.MustBuild(t))
	require.NoError(t, err)
	assert.Equal(t, 12192000, pres.Width)
	assert.Equal(t, 6858000, pres.Height)
}

func TestSlideIDList_IDAndRelationship(t *testing.T) {
	raw := `<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
		`<p:sldIdLst><p:sldId id="256" r:id="rId2"/><p:sldId r:id="rId3" id="257"/></p:sldIdLst></p:presentation>`

	var pres presentationXML
	require.NoError(t, xml.Unmarshal([]byte(raw), &pres))
	require.NotNil(t, pres.SlideIDList)
	assert.Equal(t, []slideIDXML{{ID: 256, RID: "rId2"}, {ID: 257, RID: "rId3"}}, pres.SlideIDList.SlideID)
}

// rawText wraps raw a:p elements in a text box.
func rawText(paras string) string {
	return `<p:sp><p:nvSpPr><p:cNvPr id="40" name="Raw"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr/><p:txBody><a:bodyPr/>` +
		paras + `</p:txBody></p:sp>`
}

func TestRead_RunProperties(t *testing.T) {
	tests := []struct {
		name     string
		para     string
		wantText string
		wantBold []bool
	}{
		{
			name:     "boolean true",
			para:     `<a:p><a:r><a:rPr lang="fr-FR" sz="1800" b="true"/><a:t>Gras</a:t></a:r></a:p>`,
			wantText: "Gras",
			wantBold: []bool{true},
		},
		{
			name:     "numeric flags",
			para:     `<a:p><a:r><a:rPr b="1"/><a:t>Oui </a:t></a:r><a:r><a:rPr b="0"/><a:t>Non</a:t></a:r></a:p>`,
			wantText: "Oui Non",
			wantBold: []bool{true, false},
		},
		{
			name:     "boolean false",
			para:     `<a:p><a:r><a:rPr b="false"/><a:t>Maigre</a:t></a:r></a:p>`,
			wantText: "Maigre",
			wantBold: []bool{false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := pptxtest.Deck{Slides: []string{pptxtest.Slide(rawText(tt.para))}}.MustBuild(t)
			pres, err := Read(data)
			require.NoError(t, err)
			require.Len(t, pres.Slides[0].Shapes, 1)

			para := pres.Slides[0].Shapes[0].Paragraphs[0]
			assert.Equal(t, tt.wantText, para.Text())
			var bold []bool
			for _, r := range para.Runs {
				bold = append(bold, r.Bold)
			}
			assert.Equal(t, tt.wantBold, bold)
		})
	}
}

func TestRead_ParagraphChildrenInOrder(t *testing.T) {
	para := `<a:p><a:pPr lvl="1"/>` +
		`<a:r><a:rPr sz="1400"/><a:t>Bonjour</a:t></a:r><a:br><a:rPr sz="1400"/></a:br>` +
		`<a:r><a:t>page</a:t></a:r><a:fld id="{B6F15528-21DE-4FAA-801E-634DDDAF4B2B}" type="slidenum"><a:t>3</a:t></a:fld>` +
		`<a:r><a:t>fin</a:t></a:r><a:endParaRPr lang="fr-FR"/></a:p>`

	data := pptxtest.Deck{Slides: []string{pptxtest.Slide(rawText(para))}}.MustBuild(t)
	pres, err := Read(data)
	require.NoError(t, err)

	got := pres.Slides[0].Shapes[0].Paragraphs[0]
	assert.Equal(t, 1, got.Level)
	assert.Equal(t, "Bonjour"+LineBreak+"page3fin", got.Text())
	assert.Len(t, strings.Fields(got.Text()), 2)
	assert.Equal(t, 14.0, got.Runs[0].FontSize)
}

func TestRead_NotPresentation(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<document/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Read(buf.Bytes())
	assert.ErrorIs(t, err, ErrNotPresentation)
}

func TestRead_NotZip(t *testing.T) {
	_, err := Read([]byte("plain text"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening ZIP archive")
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.pptx"))
	require.Error(t, err)
}

func TestShapeKind_String(t *testing.T) {
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "picture", KindPicture.String())
	assert.Equal(t, "table", KindTable.String())
	assert.Equal(t, "chart", KindChart.String())
	assert.Equal(t, "graphic", KindGraphic.String())
}
