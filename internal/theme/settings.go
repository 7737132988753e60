package theme

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/shadeforge/internal/color"
)

// Appearance selects the surface the playground previews the theme on. It
// does not change the generated stylesheet.
type Appearance string

const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// ParseAppearance accepts "light" or "dark" in any case.
func ParseAppearance(v string) (Appearance, error) {
	switch Appearance(strings.ToLower(strings.TrimSpace(v))) {
	case AppearanceLight:
		return AppearanceLight, nil
	case AppearanceDark:
		return AppearanceDark, nil
	default:
		return "", invalidField("appearance", fmt.Sprintf("unknown appearance %q", v), nil)
	}
}

// Settings is an immutable snapshot of every input to a theme. The With
// methods return modified copies; a Settings value is never changed in place.
type Settings struct {
	primary    color.Hex
	neutral    color.Hex
	appearance Appearance
	fontFamily string
	radiusPx   int
}

// Default values match the playground's initial state.
const (
	DefaultPrimary    = "#6366f1"
	DefaultNeutral    = "#6b7280"
	DefaultFontFamily = "Inter Variable, Inter"
	DefaultRadiusPx   = 4
)

// DefaultSettings returns the initial playground snapshot.
func DefaultSettings() Settings {
	return Settings{
		primary:    color.MustParseHex(DefaultPrimary),
		neutral:    color.MustParseHex(DefaultNeutral),
		appearance: AppearanceLight,
		fontFamily: DefaultFontFamily,
		radiusPx:   DefaultRadiusPx,
	}
}

// NewSettings builds a snapshot from explicit values.
func NewSettings(primary, neutral color.Hex, appearance Appearance, fontFamily string, radiusPx int) Settings {
	return Settings{
		primary:    primary,
		neutral:    neutral,
		appearance: appearance,
		fontFamily: fontFamily,
		radiusPx:   radiusPx,
	}
}

// Primary returns the primary seed color.
func (s Settings) Primary() color.Hex {
	return s.primary
}

// Neutral returns the neutral seed color.
func (s Settings) Neutral() color.Hex {
	return s.neutral
}

func (s Settings) Appearance() Appearance {
	return s.appearance
}

func (s Settings) FontFamily() string {
	return s.fontFamily
}

// RadiusPx returns the border radius in pixels.
func (s Settings) RadiusPx() int {
	return s.radiusPx
}

func (s Settings) WithPrimary(h color.Hex) Settings {
	s.primary = h
	return s
}

func (s Settings) WithNeutral(h color.Hex) Settings {
	s.neutral = h
	return s
}

func (s Settings) WithAppearance(a Appearance) Settings {
	s.appearance = a
	return s
}

func (s Settings) WithFontFamily(font string) Settings {
	s.fontFamily = font
	return s
}

func (s Settings) WithRadius(px int) Settings {
	s.radiusPx = px
	return s
}

// Validate reports the first field that cannot produce a theme.
func (s Settings) Validate() error {
	if s.primary.IsZero() {
		return invalidField("primary", "seed color is required", color.ErrInvalidColorFormat)
	}
	if s.neutral.IsZero() {
		return invalidField("neutral", "seed color is required", color.ErrInvalidColorFormat)
	}
	if s.appearance != AppearanceLight && s.appearance != AppearanceDark {
		return invalidField("appearance", fmt.Sprintf("unknown appearance %q", s.appearance), nil)
	}
	if strings.TrimSpace(s.fontFamily) == "" {
		return invalidField("font", "font family is required", nil)
	}
	if s.radiusPx < 0 {
		return invalidField("radius", fmt.Sprintf("radius must be non-negative, got %d", s.radiusPx), nil)
	}
	return nil
}
