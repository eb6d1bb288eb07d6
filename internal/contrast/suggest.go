package contrast

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Suggestion lists replacement foregrounds that reach a target ratio.
type Suggestion struct {
	Target  float64     `json:"target"`
	Nearest *Candidate  `json:"nearest,omitempty"`
	Palette []Candidate `json:"palette"`
}

// Candidate is a foreground color together with its ratio on the background.
type Candidate struct {
	Name     string  `json:"name,omitempty"`
	Hex      string  `json:"hex"`
	Ratio    float64 `json:"ratio"`
	Distance float64 `json:"distance,omitempty"`
}

const (
	lightnessStep  = 0.005
	maxSuggestions = 5
)

// Suggest looks for the foreground closest to fg, in HCL lightness, that
// reaches target on bg. Palette entries that pass are returned closest to fg
// first (RGB distance), at most five of them.
func Suggest(fg, bg Color, target float64) Suggestion {
	s := Suggestion{Target: target}

	if nearest, ok := nearestLightness(fg, bg, target); ok {
		s.Nearest = &Candidate{Hex: nearest.Hex(), Ratio: Ratio(nearest, bg)}
		if p, ok := LookupPalette(nearest); ok {
			s.Nearest.Name = p.Name
		}
	}

	for _, p := range palette {
		if p.Color == bg {
			continue
		}
		r := Ratio(p.Color, bg)
		if r >= target {
			s.Palette = append(s.Palette, Candidate{
				Name:     p.Name,
				Hex:      p.Color.Hex(),
				Ratio:    r,
				Distance: rgbDistance(fg, p.Color),
			})
		}
	}
	sort.SliceStable(s.Palette, func(i, j int) bool {
		return s.Palette[i].Distance < s.Palette[j].Distance
	})
	if len(s.Palette) > maxSuggestions {
		s.Palette = s.Palette[:maxSuggestions]
	}

	return s
}

// nearestLightness walks lightness away from fg in both directions and returns
// the first color that passes. Hue and chroma are kept.
func nearestLightness(fg, bg Color, target float64) (Color, bool) {
	if Ratio(fg, bg) >= target {
		return fg, true
	}

	h, c, l := fg.toColorful().Hcl()
	for delta := lightnessStep; delta <= 1; delta += lightnessStep {
		for _, candidate := range []float64{l - delta, l + delta} {
			if candidate < 0 || candidate > 1 {
				continue
			}
			col := fromColorful(colorful.Hcl(h, c, candidate))
			if Ratio(col, bg) >= target {
				return col, true
			}
		}
	}

	// Pure black or white always exists as a fallback when reachable.
	black, white := Color{}, Color{0xFF, 0xFF, 0xFF}
	rb, rw := Ratio(black, bg), Ratio(white, bg)
	switch {
	case math.Max(rb, rw) < target:
		return Color{}, false
	case rb >= rw:
		return black, true
	default:
		return white, true
	}
}

func rgbDistance(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
