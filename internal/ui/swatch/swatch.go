// Package swatch renders palettes as colored terminal blocks.
package swatch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/shadeforge/internal/color"
	"github.com/alexisbeaulieu97/shadeforge/internal/palette"
)

// Layout arranges the eleven swatches.
type Layout int

const (
	// LayoutColumn prints one shade per line.
	LayoutColumn Layout = iota
	// LayoutRow prints the ramp as a single strip with labels underneath.
	LayoutRow
)

var (
	lightText = color.MustParseHex("#ffffff")
	darkText  = color.MustParseHex("#111827")
)

// Options controls rendering.
type Options struct {
	Layout Layout
	// Title is printed above the swatches when set.
	Title string
	// Contrast picks label colors by WCAG ratio and annotates each shade.
	Contrast bool
	// Plain disables styling, for output that is not a terminal.
	Plain bool
	// Width of each swatch in a row layout.
	Width int
}

var titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

// Render draws p.
func Render(p palette.Palette, opts Options) string {
	var body string
	if opts.Layout == LayoutRow {
		body = renderRow(p, opts)
	} else {
		body = renderColumn(p, opts)
	}

	if opts.Title == "" {
		return body
	}
	if opts.Plain {
		return opts.Title + "\n" + body
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(opts.Title), body)
}

// LabelColor returns the text color drawn on top of a shade. By default
// shades from 500 up get light text; with contrast it is whichever of the
// two label colors reads better.
func LabelColor(step palette.Step, shade color.Hex, contrast bool) color.Hex {
	if contrast {
		if color.ContrastRatio(shade, lightText) >= color.ContrastRatio(shade, darkText) {
			return lightText
		}
		return darkText
	}
	if step >= palette.Step500 {
		return lightText
	}
	return darkText
}

// Grade maps a contrast ratio to its WCAG 2 level for normal text.
func Grade(ratio float64) string {
	switch {
	case ratio >= 7:
		return "AAA"
	case ratio >= 4.5:
		return "AA"
	case ratio >= 3:
		return "AA18"
	default:
		return "fail"
	}
}

func renderColumn(p palette.Palette, opts Options) string {
	lines := make([]string, 0, palette.StepCount)
	for _, entry := range p.Entries() {
		text := fmt.Sprintf("%-4s %s", entry.Step, entry.Color)
		if opts.Contrast {
			fg := LabelColor(entry.Step, entry.Color, true)
			ratio := color.ContrastRatio(entry.Color, fg)
			text = fmt.Sprintf("%s %5.2f:1 %-4s", text, ratio, Grade(ratio))
		}

		if opts.Plain {
			lines = append(lines, text)
			continue
		}
		lines = append(lines, blockStyle(entry, opts.Contrast).Padding(0, 2).Render(text))
	}
	return strings.Join(lines, "\n")
}

func renderRow(p palette.Palette, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = 8
	}

	if opts.Plain {
		var steps, hexes []string
		for _, entry := range p.Entries() {
			steps = append(steps, fmt.Sprintf("%-*s", width, entry.Step))
			hexes = append(hexes, fmt.Sprintf("%-*s", width, entry.Color))
		}
		return strings.TrimRight(strings.Join(steps, ""), " ") + "\n" + strings.TrimRight(strings.Join(hexes, ""), " ")
	}

	cells := make([]string, 0, palette.StepCount)
	for _, entry := range p.Entries() {
		block := blockStyle(entry, opts.Contrast).Width(width).Align(lipgloss.Center).Render(entry.Step.String())
		caption := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Faint(true).Render(entry.Color.String())
		cells = append(cells, lipgloss.JoinVertical(lipgloss.Center, block, caption))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func blockStyle(entry palette.Entry, contrast bool) lipgloss.Style {
	fg := LabelColor(entry.Step, entry.Color, contrast)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(entry.Color.String())).
		Foreground(lipgloss.Color(fg.String()))
}
