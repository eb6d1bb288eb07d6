// Package contrast computes WCAG contrast ratios between two colors and checks
// them against the AA and AAA thresholds used by the RGAA.
package contrast

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is matched by every color parsing failure.
var ErrInvalidColor = errors.New("invalid color")

// InvalidColorError carries the rejected input.
type InvalidColorError struct {
	Input string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %q: expected 6 hex digits (RRGGBB or #RRGGBB)", e.Input)
}

// Is makes errors.Is(err, ErrInvalidColor) match.
func (e *InvalidColorError) Is(target error) bool {
	return target == ErrInvalidColor
}

var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// Color is an sRGB triple.
type Color struct {
	R, G, B uint8
}

// ParseColor accepts "RRGGBB" or "#RRGGBB".
func ParseColor(s string) (Color, error) {
	in := strings.TrimSpace(s)
	if !hexPattern.MatchString(in) {
		return Color{}, &InvalidColorError{Input: s}
	}
	if !strings.HasPrefix(in, "#") {
		in = "#" + in
	}

	c, err := colorful.Hex(in)
	if err != nil {
		return Color{}, &InvalidColorError{Input: s}
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustParseColor is ParseColor for trusted literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// linearize applies the sRGB transfer function with the WCAG 2.x constant.
func linearize(channel uint8) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance in [0, 1].
func RelativeLuminance(c Color) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// Ratio returns the contrast ratio of two colors, in [1, 21]. It is symmetric.
func Ratio(a, b Color) float64 {
	la, lb := RelativeLuminance(a), RelativeLuminance(b)
	lighter, darker := math.Max(la, lb), math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// CalculateContrastRatio parses both colors and returns their ratio.
func CalculateContrastRatio(fg, bg string) (float64, error) {
	a, err := ParseColor(fg)
	if err != nil {
		return 0, err
	}
	b, err := ParseColor(bg)
	if err != nil {
		return 0, err
	}
	return Ratio(a, b), nil
}

// Minimum ratios
const (
	MinAANormal  = 4.5
	MinAALarge   = 3.0
	MinAAANormal = 7.0
	MinAAALarge  = 4.5
)

// IsLargeText reports whether text of this size (pt) and weight counts as large.
func IsLargeText(size float64, bold bool) bool {
	return size >= 18 || (size >= 14 && bold)
}

// Compliance is the outcome of a WCAG check.
type Compliance struct {
	Ratio       float64 `json:"ratio"`
	LargeText   bool    `json:"large_text"`
	RequiredAA  float64 `json:"required_aa"`
	RequiredAAA float64 `json:"required_aaa"`
	AA          bool    `json:"aa"`
	AAA         bool    `json:"aaa"`
}

// CheckWCAG classifies a ratio for text of the given size and weight.
func CheckWCAG(ratio, size float64, bold bool) Compliance {
	c := Compliance{
		Ratio:       ratio,
		LargeText:   IsLargeText(size, bold),
		RequiredAA:  MinAANormal,
		RequiredAAA: MinAAANormal,
	}
	if c.LargeText {
		c.RequiredAA = MinAALarge
		c.RequiredAAA = MinAAALarge
	}
	c.AA = ratio >= c.RequiredAA
	c.AAA = ratio >= c.RequiredAAA
	return c
}

// Level returns "AAA", "AA" or "échec".
func (c Compliance) Level() string {
	switch {
	case c.AAA:
		return "AAA"
	case c.AA:
		return "AA"
	default:
		return "échec"
	}
}
