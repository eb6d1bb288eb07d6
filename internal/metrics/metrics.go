// Package metrics turns parsed slides into the per-slide records the rules
// operate on.
package metrics

import (
	"strings"

	"github.com/yacobolo/dsfrkit/internal/deck"
	"github.com/yacobolo/dsfrkit/internal/pptx"
	"github.com/yacobolo/dsfrkit/internal/textutil"
)

// bulletGlyphs mark a paragraph as a bullet when it has no indentation level.
var bulletGlyphs = []string{"•", "-", "*"}

// Extract builds one record per slide, in presentation order.
func Extract(pres *pptx.Presentation) []deck.Slide {
	slides := make([]deck.Slide, 0, len(pres.Slides))
	for _, s := range pres.Slides {
		slides = append(slides, ExtractSlide(s))
	}
	return slides
}

// ExtractSlide measures one slide. Only text shapes feed the word and bullet
// counts; table cells are ignored.
func ExtractSlide(s *pptx.Slide) deck.Slide {
	rec := deck.Slide{Index: s.Number}

	var pool []string
	for _, shape := range s.Shapes {
		switch shape.Kind {
		case pptx.KindPicture:
			rec.HasImage = true
		case pptx.KindChart:
			rec.HasChart = true
		case pptx.KindTable:
			rec.HasTable = true
		case pptx.KindText:
			if shape.IsTitle() && rec.Title == "" {
				rec.Title = strings.TrimSpace(strings.Join(strings.Fields(shape.Text()), " "))
			}
			for _, para := range shape.Paragraphs {
				text := para.Text()
				if isBullet(para.Level, text) {
					rec.BulletCount++
				}
				for _, run := range para.Runs {
					if run.FontSize > 0 {
						rec.FontSizes = append(rec.FontSizes, run.FontSize)
					}
				}
				pool = append(pool, text)
			}
		}
	}

	rec.Text = strings.Join(pool, "\n")
	rec.WordCount = len(textutil.Words(rec.Text))
	return rec
}

func isBullet(level int, text string) bool {
	if level > 0 {
		return true
	}
	trimmed := strings.TrimSpace(text)
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(trimmed, glyph) {
			return true
		}
	}
	return false
}

// SlideText returns the text used for keyword matching: title and body.
func SlideText(s deck.Slide) string {
	return s.Text
}

// Texts returns SlideText for every slide.
func Texts(slides []deck.Slide) []string {
	out := make([]string, len(slides))
	for i, s := range slides {
		out[i] = SlideText(s)
	}
	return out
}
