// Package stylesheet renders palettes and typography settings as CSS custom
// property declarations.
package stylesheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/shadeforge/internal/palette"
)

// Block selects the at-rule or selector wrapping the declarations.
type Block string

const (
	// BlockTheme wraps declarations in a Tailwind v4 @theme block.
	BlockTheme Block = "theme"
	// BlockRoot wraps declarations in a plain :root rule.
	BlockRoot Block = "root"
)

// ParseBlock accepts "theme", "root", or "" (BlockTheme).
func ParseBlock(v string) (Block, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", string(BlockTheme):
		return BlockTheme, nil
	case string(BlockRoot):
		return BlockRoot, nil
	default:
		return "", fmt.Errorf("unknown css block %q (want theme or root)", v)
	}
}

func (b Block) opener() string {
	if b == BlockRoot {
		return ":root {"
	}
	return "@theme {"
}

// Options controls the template.
type Options struct {
	Block Block
}

// Declaration is a single custom property.
type Declaration struct {
	Name  string
	Value string
}

func (d Declaration) String() string {
	return d.Name + ": " + d.Value + ";"
}

const header = "/* Generated Theme Variables */"

// Serialize renders the default @theme stylesheet for two palettes, a font
// family and a border radius in pixels. The font name is inserted verbatim
// inside single quotes.
func Serialize(primary, neutral palette.Palette, fontFamily string, radiusPx int) string {
	var sb strings.Builder
	_ = Render(&sb, primary, neutral, fontFamily, radiusPx, Options{})
	return sb.String()
}

// Render writes the stylesheet to w.
func Render(w io.Writer, primary, neutral palette.Palette, fontFamily string, radiusPx int, opts Options) error {
	block := opts.Block
	if block == "" {
		block = BlockTheme
	}

	lines := make([]string, 0, 2*palette.StepCount+12)
	lines = append(lines, header, block.opener(), "  /* Primary Colors */")
	lines = appendDeclarations(lines, PaletteDeclarations("primary", primary))
	lines = append(lines, "", "  /* Neutral Colors */")
	lines = appendDeclarations(lines, PaletteDeclarations("neutral", neutral))
	lines = append(lines, "", "  /* Font Family */")
	lines = appendDeclarations(lines, []Declaration{fontDeclaration(fontFamily)})
	lines = append(lines, "", "  /* Border Radius */")
	lines = appendDeclarations(lines, []Declaration{radiusDeclaration(radiusPx)})
	lines = append(lines, "}")

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

// Declarations returns every custom property in stylesheet order, for
// callers that apply the variables directly instead of emitting text.
func Declarations(primary, neutral palette.Palette, fontFamily string, radiusPx int) []Declaration {
	decls := make([]Declaration, 0, 2*palette.StepCount+2)
	decls = append(decls, PaletteDeclarations("primary", primary)...)
	decls = append(decls, PaletteDeclarations("neutral", neutral)...)
	decls = append(decls, fontDeclaration(fontFamily), radiusDeclaration(radiusPx))
	return decls
}

// ValidateRole checks that role can sit inside a custom property name.
func ValidateRole(role string) error {
	if role == "" {
		return fmt.Errorf("empty role name")
	}
	for _, r := range role {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("role %q may only contain letters, digits, '-' and '_'", role)
		}
	}
	return nil
}

// PaletteDeclarations names the shades of p as --color-<role>-<step>. Callers
// taking role from user input check it with ValidateRole first.
func PaletteDeclarations(role string, p palette.Palette) []Declaration {
	decls := make([]Declaration, 0, palette.StepCount)
	for _, entry := range p.Entries() {
		decls = append(decls, Declaration{
			Name:  fmt.Sprintf("--color-%s-%s", role, entry.Step),
			Value: entry.Color.String(),
		})
	}
	return decls
}

func fontDeclaration(fontFamily string) Declaration {
	return Declaration{Name: "--font-sans", Value: "'" + fontFamily + "', ui-sans-serif, system-ui, sans-serif"}
}

func radiusDeclaration(radiusPx int) Declaration {
	return Declaration{Name: "--rounded", Value: strconv.Itoa(radiusPx) + "px"}
}

func appendDeclarations(lines []string, decls []Declaration) []string {
	for _, d := range decls {
		lines = append(lines, "  "+d.String())
	}
	return lines
}
