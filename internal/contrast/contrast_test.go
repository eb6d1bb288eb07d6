package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{name: "with hash", input: "#000091", want: Color{0x00, 0x00, 0x91}},
		{name: "without hash", input: "E1000F", want: Color{0xE1, 0x00, 0x0F}},
		{name: "lowercase", input: "#ffffff", want: Color{0xFF, 0xFF, 0xFF}},
		{name: "surrounding spaces", input: "  161616 ", want: Color{0x16, 0x16, 0x16}},
		{name: "short form rejected", input: "#fff", wantErr: true},
		{name: "not hex", input: "#GG0000", wantErr: true},
		{name: "too long", input: "#0000911", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "named color", input: "blue", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidColor)

				var colorErr *InvalidColorError
				require.ErrorAs(t, err, &colorErr)
				assert.Equal(t, tt.input, colorErr.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#000091", MustParseColor("000091").Hex())
	assert.Equal(t, "#E1000F", MustParseColor("#e1000f").Hex())
}

func TestRatio_KnownPairs(t *testing.T) {
	tests := []struct {
		fg, bg string
		want   float64
	}{
		{"#000000", "#FFFFFF", 21.0},
		{"#FFFFFF", "#FFFFFF", 1.0},
		{"#000091", "#FFFFFF", 14.91},
		{"#666666", "#FFFFFF", 5.74},
		{"#777777", "#FFFFFF", 4.48},
		{"#929292", "#FFFFFF", 3.11},
	}

	for _, tt := range tests {
		t.Run(tt.fg+" on "+tt.bg, func(t *testing.T) {
			got, err := CalculateContrastRatio(tt.fg, tt.bg)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}

func TestRatio_RangeAndSymmetry(t *testing.T) {
	samples := []string{
		"000000", "FFFFFF", "000091", "E1000F", "161616", "3A3A3A",
		"666666", "F6F6F6", "0063CB", "18753C", "B34000", "CE0500",
		"123456", "ABCDEF", "7F7F7F", "00FF00",
	}

	for _, a := range samples {
		for _, b := range samples {
			ab, err := CalculateContrastRatio(a, b)
			require.NoError(t, err)
			ba, err := CalculateContrastRatio(b, a)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, ab, 1.0, "%s/%s", a, b)
			assert.LessOrEqual(t, ab, 21.0, "%s/%s", a, b)
			assert.Equal(t, ab, ba, "ratio must be symmetric for %s/%s", a, b)
		}
	}
}

func TestCalculateContrastRatio_InvalidInput(t *testing.T) {
	_, err := CalculateContrastRatio("#000091", "white")
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, err = CalculateContrastRatio("nope", "#FFFFFF")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestRelativeLuminance_Bounds(t *testing.T) {
	assert.InDelta(t, 0.0, RelativeLuminance(Color{}), 1e-12)
	assert.InDelta(t, 1.0, RelativeLuminance(Color{0xFF, 0xFF, 0xFF}), 1e-9)
}

func TestIsLargeText(t *testing.T) {
	tests := []struct {
		size float64
		bold bool
		want bool
	}{
		{size: 12, want: false},
		{size: 14, want: false},
		{size: 14, bold: true, want: true},
		{size: 13.5, bold: true, want: false},
		{size: 18, want: true},
		{size: 24, want: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLargeText(tt.size, tt.bold), "size=%v bold=%v", tt.size, tt.bold)
	}
}

func TestCheckWCAG(t *testing.T) {
	tests := []struct {
		name      string
		ratio     float64
		size      float64
		bold      bool
		wantAA    bool
		wantAAA   bool
		wantLevel string
	}{
		{name: "normal text at exactly AA", ratio: 4.5, size: 14, wantAA: true, wantAAA: false, wantLevel: "AA"},
		{name: "normal text below AA", ratio: 4.49, size: 14, wantAA: false, wantAAA: false, wantLevel: "échec"},
		{name: "normal text at AAA", ratio: 7.0, size: 12, wantAA: true, wantAAA: true, wantLevel: "AAA"},
		{name: "large text at 3.0", ratio: 3.0, size: 18, wantAA: true, wantAAA: false, wantLevel: "AA"},
		{name: "large bold text at 4.5", ratio: 4.5, size: 14, bold: true, wantAA: true, wantAAA: true, wantLevel: "AAA"},
		{name: "large text below 3.0", ratio: 2.9, size: 20, wantAA: false, wantAAA: false, wantLevel: "échec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckWCAG(tt.ratio, tt.size, tt.bold)
			assert.Equal(t, tt.wantAA, got.AA)
			assert.Equal(t, tt.wantAAA, got.AAA)
			assert.Equal(t, tt.wantLevel, got.Level())
			assert.Equal(t, tt.ratio, got.Ratio)
		})
	}
}

func TestCheckWCAG_RequiredRatios(t *testing.T) {
	normal := CheckWCAG(5, 12, false)
	assert.False(t, normal.LargeText)
	assert.Equal(t, 4.5, normal.RequiredAA)
	assert.Equal(t, 7.0, normal.RequiredAAA)

	large := CheckWCAG(5, 18, false)
	assert.True(t, large.LargeText)
	assert.Equal(t, 3.0, large.RequiredAA)
	assert.Equal(t, 4.5, large.RequiredAAA)
}

func TestLookupPalette(t *testing.T) {
	p, ok := LookupPalette(MustParseColor("#000091"))
	require.True(t, ok)
	assert.Equal(t, "Bleu France", p.Name)

	_, ok = LookupPalette(MustParseColor("#123456"))
	assert.False(t, ok)

	p, ok = LookupPaletteName("rouge marianne")
	require.True(t, ok)
	assert.Equal(t, "#E1000F", p.Color.Hex())

	p, ok = LookupPaletteName("info-425")
	require.True(t, ok)
	assert.Equal(t, "Bleu Info", p.Name)
}

func TestPalette_ReturnsCopy(t *testing.T) {
	p := Palette()
	p[0].Name = "changed"
	assert.Equal(t, "Bleu France", Palette()[0].Name)
}

func TestSuggest(t *testing.T) {
	white := Color{0xFF, 0xFF, 0xFF}

	t.Run("already passing color is its own nearest", func(t *testing.T) {
		fg := MustParseColor("#000091")
		s := Suggest(fg, white, MinAANormal)
		require.NotNil(t, s.Nearest)
		assert.Equal(t, "#000091", s.Nearest.Hex)
		assert.Equal(t, "Bleu France", s.Nearest.Name)
	})

	t.Run("light grey is darkened until it passes", func(t *testing.T) {
		fg := MustParseColor("#929292")
		s := Suggest(fg, white, MinAANormal)
		require.NotNil(t, s.Nearest)
		assert.GreaterOrEqual(t, s.Nearest.Ratio, MinAANormal)

		nearest := MustParseColor(s.Nearest.Hex)
		assert.Less(t, RelativeLuminance(nearest), RelativeLuminance(fg))
	})

	t.Run("palette candidates all pass and are capped", func(t *testing.T) {
		s := Suggest(MustParseColor("#FC5D00"), white, MinAANormal)
		require.NotEmpty(t, s.Palette)
		assert.LessOrEqual(t, len(s.Palette), 5)
		for i, c := range s.Palette {
			assert.GreaterOrEqual(t, c.Ratio, MinAANormal, c.Name)
			if i > 0 {
				assert.GreaterOrEqual(t, c.Distance, s.Palette[i-1].Distance)
			}
		}
	})

	t.Run("unreachable target", func(t *testing.T) {
		s := Suggest(MustParseColor("#777777"), MustParseColor("#777777"), 22)
		assert.Nil(t, s.Nearest)
		assert.Empty(t, s.Palette)
	})
}
