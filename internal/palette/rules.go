package palette

import (
	"math"

	"github.com/alexisbeaulieu97/shadeforge/internal/color"
)

// Global lightness bounds for derived shades: never pure white or black.
const (
	MaxLightness = 97
	MinLightness = 8
)

// shadeRule describes how one step is derived from the seed's HSL.
//
// For lighter steps bound is a ceiling and satLimit a floor; for darker
// steps bound is a floor and satLimit a ceiling.
type shadeRule struct {
	step      Step
	satFactor float64
	satLimit  float64
	offset    float64
	bound     float64
}

var lighterRules = [...]shadeRule{
	{step: Step50, satFactor: 0.3, satLimit: 10, offset: 45, bound: 97},
	{step: Step100, satFactor: 0.5, satLimit: 15, offset: 35, bound: 94},
	{step: Step200, satFactor: 0.7, satLimit: 20, offset: 25, bound: 87},
	{step: Step300, satFactor: 0.8, satLimit: 25, offset: 15, bound: 77},
	{step: Step400, satFactor: 0.9, satLimit: 30, offset: 5, bound: 65},
}

var darkerRules = [...]shadeRule{
	{step: Step600, satFactor: 1.1, satLimit: 100, offset: 8, bound: 45},
	{step: Step700, satFactor: 1.2, satLimit: 100, offset: 18, bound: 35},
	{step: Step800, satFactor: 1.3, satLimit: 100, offset: 28, bound: 25},
	{step: Step900, satFactor: 1.4, satLimit: 100, offset: 38, bound: 15},
	{step: Step950, satFactor: 1.5, satLimit: 100, offset: 48, bound: 8},
}

// lighten derives a tint. The per-step cap may not drag the tint below the
// seed's own lightness.
func (r shadeRule) lighten(seed color.HSL) color.HSL {
	s := 0.0
	if seed.S > 0 {
		s = math.Min(math.Max(seed.S*r.satFactor, r.satLimit), 100)
	}
	l := math.Max(math.Min(seed.L+r.offset, r.bound), seed.L)
	return color.HSL{H: seed.H, S: s, L: clampLightness(l)}
}

// darken derives a shade. The per-step floor may not lift the shade above
// the seed's own lightness.
func (r shadeRule) darken(seed color.HSL) color.HSL {
	s := 0.0
	if seed.S > 0 {
		s = math.Min(seed.S*r.satFactor, r.satLimit)
	}
	l := math.Min(math.Max(seed.L-r.offset, r.bound), seed.L)
	return color.HSL{H: seed.H, S: s, L: clampLightness(l)}
}

func clampLightness(l float64) float64 {
	return math.Min(math.Max(l, MinLightness), MaxLightness)
}
