package color

import (
	"fmt"
	"math"
)

// HSL is a hue/saturation/lightness triple. H is in degrees [0,360), S and L
// are percentages [0,100].
type HSL struct {
	H float64
	S float64
	L float64
}

// String formats the triple the way CSS hsl() does.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g %g%% %g%%)", c.H, c.S, c.L)
}

// Round returns c with each component rounded half up to a whole number.
// A hue that rounds to 360 wraps to 0.
func (c HSL) Round() HSL {
	h := roundHalfUp(c.H)
	if h >= 360 {
		h -= 360
	}
	return HSL{H: h, S: roundHalfUp(c.S), L: roundHalfUp(c.L)}
}

// Clamp normalizes hue modulo 360 and limits saturation and lightness to
// [0,100].
func (c HSL) Clamp() HSL {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	if math.IsNaN(h) {
		h = 0
	}
	return HSL{H: h, S: clampFloat(c.S, 0, 100), L: clampFloat(c.L, 0, 100)}
}

// HexToHSL parses s and returns its HSL decomposition rounded to integer
// degrees and percents.
func HexToHSL(s string) (HSL, error) {
	h, err := ParseHex(s)
	if err != nil {
		return HSL{}, err
	}
	return h.HSL().Round(), nil
}

// HSL returns the unrounded decomposition of h.
func (h Hex) HSL() HSL {
	rgb := h.RGB()
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var hue float64
	switch maxC {
	case r:
		hue = (g - b) / d
		if g < b {
			hue += 6
		}
	case g:
		hue = (b-r)/d + 2
	default:
		hue = (r-g)/d + 4
	}
	hue /= 6

	return HSL{H: hue * 360, S: s * 100, L: l * 100}
}

// HSLToHex converts c to a hex color. Out-of-range components are clamped
// rather than rejected.
func HSLToHex(c HSL) Hex {
	c = c.Clamp()
	l := c.L / 100
	a := c.S * math.Min(l, 1-l) / 100

	channel := func(n float64) uint8 {
		k := math.Mod(n+c.H/30, 12)
		v := l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		return uint8(clampFloat(roundHalfUp(255*v), 0, 255))
	}

	return FromRGB(RGB{R: channel(0), G: channel(8), B: channel(4)})
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
