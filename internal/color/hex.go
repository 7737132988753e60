package color

import (
	"fmt"
	"strings"
)

const hexDigits = 6

// Hex is a validated sRGB color in lowercase #rrggbb form. The zero value is
// not a valid color; obtain one through ParseHex.
type Hex struct {
	value string
}

// RGB holds the three 8-bit channels of a color.
type RGB struct {
	R, G, B uint8
}

// ParseHex validates a six digit hex color. A leading '#' is optional and
// digits are case-insensitive. Surrounding whitespace is rejected.
func ParseHex(s string) (Hex, error) {
	raw := strings.TrimPrefix(s, "#")
	if len(raw) != hexDigits {
		return Hex{}, newFormatError(s, fmt.Sprintf("expected %d hex digits, got %d", hexDigits, len(raw)))
	}
	for i := 0; i < len(raw); i++ {
		if !isHexDigit(raw[i]) {
			return Hex{}, newFormatError(s, fmt.Sprintf("invalid hex digit %q", raw[i]))
		}
	}
	return Hex{value: "#" + strings.ToLower(raw)}, nil
}

// MustParseHex is ParseHex for package-level literals. It panics on error.
func MustParseHex(s string) Hex {
	h, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return h
}

// FromRGB encodes channels as a Hex.
func FromRGB(c RGB) Hex {
	return Hex{value: fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)}
}

// String returns the #rrggbb form, or "" for the zero value.
func (h Hex) String() string {
	return h.value
}

// IsZero reports whether h was never assigned a parsed color.
func (h Hex) IsZero() bool {
	return h.value == ""
}

// RGB decomposes the color into channels.
func (h Hex) RGB() RGB {
	if h.IsZero() {
		return RGB{}
	}
	return RGB{
		R: hexByte(h.value[1], h.value[2]),
		G: hexByte(h.value[3], h.value[4]),
		B: hexByte(h.value[5], h.value[6]),
	}
}

// MarshalText implements encoding.TextMarshaler.
func (h Hex) MarshalText() ([]byte, error) {
	return []byte(h.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so decoders reject
// malformed colors.
func (h *Hex) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

func hexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func hexByte(hi, lo byte) uint8 {
	return hexNibble(hi)<<4 | hexNibble(lo)
}
