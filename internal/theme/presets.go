package theme

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/shadeforge/internal/color"
)

// Role distinguishes the two seed slots of a theme.
type Role string

const (
	RolePrimary Role = "primary"
	RoleNeutral Role = "neutral"
)

// ColorPreset is a named seed offered alongside the custom color picker.
type ColorPreset struct {
	Name  string
	Role  Role
	Value color.Hex
}

// DisplayName is the title-cased preset name.
func (p ColorPreset) DisplayName() string {
	// Casers carry state, so each call gets its own.
	return cases.Title(language.English).String(p.Name)
}

// RadiusOption is a named border radius.
type RadiusOption struct {
	Name  string
	Value int
}

// Tailwind 500 shades.
var primaryPresets = []ColorPreset{
	{Name: "indigo", Role: RolePrimary, Value: color.MustParseHex("#6366f1")},
	{Name: "blue", Role: RolePrimary, Value: color.MustParseHex("#3b82f6")},
	{Name: "purple", Role: RolePrimary, Value: color.MustParseHex("#a855f7")},
	{Name: "pink", Role: RolePrimary, Value: color.MustParseHex("#ec4899")},
	{Name: "red", Role: RolePrimary, Value: color.MustParseHex("#ef4444")},
	{Name: "orange", Role: RolePrimary, Value: color.MustParseHex("#f97316")},
	{Name: "amber", Role: RolePrimary, Value: color.MustParseHex("#f59e0b")},
	{Name: "yellow", Role: RolePrimary, Value: color.MustParseHex("#eab308")},
	{Name: "lime", Role: RolePrimary, Value: color.MustParseHex("#84cc16")},
	{Name: "green", Role: RolePrimary, Value: color.MustParseHex("#22c55e")},
	{Name: "emerald", Role: RolePrimary, Value: color.MustParseHex("#10b981")},
	{Name: "teal", Role: RolePrimary, Value: color.MustParseHex("#14b8a6")},
	{Name: "cyan", Role: RolePrimary, Value: color.MustParseHex("#06b6d4")},
	{Name: "sky", Role: RolePrimary, Value: color.MustParseHex("#0ea5e9")},
	{Name: "violet", Role: RolePrimary, Value: color.MustParseHex("#8b5cf6")},
	{Name: "fuchsia", Role: RolePrimary, Value: color.MustParseHex("#d946ef")},
	{Name: "rose", Role: RolePrimary, Value: color.MustParseHex("#f43f5e")},
}

var neutralPresets = []ColorPreset{
	{Name: "slate", Role: RoleNeutral, Value: color.MustParseHex("#64748b")},
	{Name: "gray", Role: RoleNeutral, Value: color.MustParseHex("#6b7280")},
	{Name: "zinc", Role: RoleNeutral, Value: color.MustParseHex("#71717a")},
	{Name: "neutral", Role: RoleNeutral, Value: color.MustParseHex("#737373")},
	{Name: "stone", Role: RoleNeutral, Value: color.MustParseHex("#78716c")},
}

var fontFamilies = []string{
	"Inter Variable, Inter",
	"System UI",
	"Roboto",
	"Open Sans",
	"Poppins",
	"Montserrat",
}

var radiusOptions = []RadiusOption{
	{Name: "None", Value: 0},
	{Name: "4px", Value: 4},
	{Name: "6px", Value: 6},
	{Name: "8px", Value: 8},
	{Name: "12px", Value: 12},
	{Name: "16px", Value: 16},
}

// PrimaryPresets returns the predefined primary seeds in display order.
func PrimaryPresets() []ColorPreset {
	return append([]ColorPreset(nil), primaryPresets...)
}

// NeutralPresets returns the predefined neutral seeds in display order.
func NeutralPresets() []ColorPreset {
	return append([]ColorPreset(nil), neutralPresets...)
}

// Presets returns the presets for role.
func Presets(role Role) []ColorPreset {
	if role == RoleNeutral {
		return NeutralPresets()
	}
	return PrimaryPresets()
}

// FontFamilies returns the suggested font families.
func FontFamilies() []string {
	return append([]string(nil), fontFamilies...)
}

// RadiusOptions returns the suggested radii.
func RadiusOptions() []RadiusOption {
	return append([]RadiusOption(nil), radiusOptions...)
}

// PresetByName finds a preset across both roles, ignoring case.
func PresetByName(name string) (ColorPreset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range primaryPresets {
		if p.Name == key {
			return p, nil
		}
	}
	for _, p := range neutralPresets {
		if p.Name == key {
			return p, nil
		}
	}
	return ColorPreset{}, &SettingsError{Code: ErrCodeUnknownPreset, Field: "preset", Message: fmt.Sprintf("no preset named %q", name)}
}

// ResolveSeed accepts either a hex color or a preset name. It reads user
// input from flags and theme files, so surrounding whitespace is dropped.
func ResolveSeed(v string) (color.Hex, error) {
	v = strings.TrimSpace(v)
	hex, err := color.ParseHex(v)
	if err == nil {
		return hex, nil
	}
	if preset, presetErr := PresetByName(v); presetErr == nil {
		return preset.Value, nil
	}
	return color.Hex{}, err
}
