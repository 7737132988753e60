// Package palette derives eleven-step shade ramps from a single seed color.
//
// Shades are computed in HSL space from the seed's rounded hue, saturation
// and lightness. Step 500 is always the seed itself.
package palette

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alexisbeaulieu97/shadeforge/internal/color"
)

// Palette maps every Step to a color. It is a value type; generate a new one
// for a new seed instead of modifying an existing palette.
type Palette struct {
	shades [StepCount]color.Hex
}

// Entry pairs a step with its color.
type Entry struct {
	Step  Step      `json:"step" yaml:"step"`
	Color color.Hex `json:"color" yaml:"color"`
}

// Generate derives the full ramp for seed.
func Generate(seed color.Hex) Palette {
	base := seed.HSL().Round()

	var p Palette
	for _, rule := range lighterRules {
		p.shades[rule.step.Index()] = color.HSLToHex(rule.lighten(base))
	}
	p.shades[Step500.Index()] = seed
	for _, rule := range darkerRules {
		p.shades[rule.step.Index()] = color.HSLToHex(rule.darken(base))
	}
	return p
}

// GenerateString parses seed and derives its ramp. Malformed input yields a
// color.FormatError.
func GenerateString(seed string) (Palette, error) {
	hex, err := color.ParseHex(seed)
	if err != nil {
		return Palette{}, err
	}
	return Generate(hex), nil
}

// Seed returns the color the palette was derived from.
func (p Palette) Seed() color.Hex {
	return p.shades[Step500.Index()]
}

// IsZero reports whether p was never generated.
func (p Palette) IsZero() bool {
	return p.Seed().IsZero()
}

// Get returns the color at step, or the zero Hex for a non-canonical step.
func (p Palette) Get(step Step) color.Hex {
	i := step.Index()
	if i < 0 {
		return color.Hex{}
	}
	return p.shades[i]
}

// Entries lists the shades in canonical order.
func (p Palette) Entries() []Entry {
	entries := make([]Entry, 0, StepCount)
	for i, step := range Steps {
		entries = append(entries, Entry{Step: step, Color: p.shades[i]})
	}
	return entries
}

// Map returns a step-keyed copy of the palette.
func (p Palette) Map() map[string]string {
	out := make(map[string]string, StepCount)
	for i, step := range Steps {
		out[step.String()] = p.shades[i].String()
	}
	return out
}

// MarshalJSON writes the palette as an object whose keys follow the
// canonical step order.
func (p Palette) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, step := range Steps {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:%q", step.String(), p.shades[i].String())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object form written by MarshalJSON. Every step
// must be present.
func (p *Palette) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out, err := fromMap(raw)
	if err != nil {
		return err
	}
	*p = out
	return nil
}

func fromMap(raw map[string]string) (Palette, error) {
	var out Palette
	for i, step := range Steps {
		value, ok := raw[step.String()]
		if !ok {
			return Palette{}, fmt.Errorf("palette missing step %s", step)
		}
		hex, err := color.ParseHex(value)
		if err != nil {
			return Palette{}, fmt.Errorf("palette step %s: %w", step, err)
		}
		out.shades[i] = hex
	}
	return out, nil
}
