package dsfrkit

import (
	"fmt"

	"github.com/yacobolo/dsfrkit/internal/slides"
)

// SlideKinds lists the accessibility slides InsertAccessibilitySlide can draw.
func SlideKinds() []string {
	return slides.Kinds()
}

// InsertAccessibilitySlide writes a copy of deckPath to outPath with a
// DSFR-styled accessibility slide of the given kind at position (1-based,
// 0 appends). It returns the position of the new slide.
func InsertAccessibilitySlide(deckPath, kind, outPath string, position int) (int, error) {
	pres, err := openDeck(deckPath)
	if err != nil {
		return 0, err
	}

	boxes, err := slides.Build(kind, pres.Width, pres.Height)
	if err != nil {
		return 0, err
	}

	pos, err := pres.InsertSlide(position, boxes)
	if err != nil {
		return 0, fmt.Errorf("inserting %s slide: %w", kind, err)
	}
	if err := pres.Save(outPath); err != nil {
		return 0, fmt.Errorf("saving %s: %w", outPath, err)
	}
	return pos, nil
}
