package color

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Luminance returns the WCAG relative luminance of h in [0,1].
func Luminance(h Hex) float64 {
	r, g, b := toColorful(h).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between a and b, from 1 to 21.
func ContrastRatio(a, b Hex) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

func toColorful(h Hex) colorful.Color {
	rgb := h.RGB()
	return colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
}
