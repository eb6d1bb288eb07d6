package contrast

import "strings"

// PaletteColor is a named color of the DSFR palette.
type PaletteColor struct {
	Name  string
	Token string
	Color Color
}

var palette = []PaletteColor{
	{Name: "Bleu France", Token: "blue-france-sun-113", Color: Color{0x00, 0x00, 0x91}},
	{Name: "Bleu France 975", Color: Color{0x00, 0x00, 0x74}},
	{Name: "Bleu France 113", Color: Color{0x12, 0x12, 0xFF}},
	{Name: "Rouge Marianne", Token: "red-marianne-main-472", Color: Color{0xE1, 0x00, 0x0F}},
	{Name: "Rouge Marianne 472", Color: Color{0xC9, 0x19, 0x1E}},
	{Name: "Rouge Marianne 425", Color: Color{0xF9, 0x5C, 0x5E}},
	{Name: "Gris 1000", Token: "grey-50", Color: Color{0x16, 0x16, 0x16}},
	{Name: "Gris 800", Color: Color{0x38, 0x38, 0x38}},
	{Name: "Gris 625", Token: "grey-425", Color: Color{0x66, 0x66, 0x66}},
	{Name: "Gris 425", Color: Color{0x92, 0x92, 0x92}},
	{Name: "Gris 200", Color: Color{0xCE, 0xCE, 0xCE}},
	{Name: "Gris 175", Color: Color{0xE5, 0xE5, 0xE5}},
	{Name: "Gris 950", Color: Color{0xEE, 0xEE, 0xEE}},
	{Name: "Gris 975", Token: "grey-975", Color: Color{0xF6, 0xF6, 0xF6}},
	{Name: "Blanc", Token: "grey-1000", Color: Color{0xFF, 0xFF, 0xFF}},
	{Name: "Bleu Info", Token: "info-425", Color: Color{0x00, 0x63, 0xCB}},
	{Name: "Bleu Info (survol)", Color: Color{0x00, 0x4F, 0x9F}},
	{Name: "Vert Succès", Token: "success-425", Color: Color{0x18, 0x75, 0x3C}},
	{Name: "Vert Succès (survol)", Color: Color{0x0D, 0x5C, 0x2E}},
	{Name: "Orange Attention", Token: "warning-main-525", Color: Color{0xFC, 0x5D, 0x00}},
	{Name: "Orange Attention (survol)", Color: Color{0xC7, 0x46, 0x00}},
	{Name: "Rouge Erreur", Token: "error-425", Color: Color{0xCE, 0x05, 0x00}},
	{Name: "Rouge Erreur (survol)", Color: Color{0x9F, 0x04, 0x00}},
}

// Palette returns the DSFR reference colors.
func Palette() []PaletteColor {
	return append([]PaletteColor(nil), palette...)
}

// LookupPalette returns the palette entry with exactly this color.
func LookupPalette(c Color) (PaletteColor, bool) {
	for _, p := range palette {
		if p.Color == c {
			return p, true
		}
	}
	return PaletteColor{}, false
}

// LookupPaletteName finds an entry by name or token, ignoring case.
func LookupPaletteName(name string) (PaletteColor, bool) {
	for _, p := range palette {
		if strings.EqualFold(p.Name, name) || strings.EqualFold(p.Token, name) {
			return p, true
		}
	}
	return PaletteColor{}, false
}
