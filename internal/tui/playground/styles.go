package playground

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/shadeforge/internal/palette"
	"github.com/alexisbeaulieu97/shadeforge/internal/theme"
)

var (
	primaryColor = lipgloss.Color("99")
	mutedColor   = lipgloss.Color("245")
	errorColor   = lipgloss.Color("196")
	successColor = lipgloss.Color("42")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Width(12).
			Foreground(mutedColor)

	focusedLabelStyle = lipgloss.NewStyle().
				Width(12).
				Bold(true).
				Foreground(primaryColor)

	optionStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1)

	selectedOptionStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1).
				Bold(true).
				Underline(true)

	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	cssStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)
)

// previewStyle frames the ramps on the surface the theme would use: the
// neutral 50 shade in light mode and the neutral 950 shade in dark mode.
func previewStyle(t theme.Theme) lipgloss.Style {
	surface, text := palette.Step50, palette.Step950
	if t.Settings.Appearance() == theme.AppearanceDark {
		surface, text = palette.Step950, palette.Step50
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Neutral.Get(palette.Step300).String())).
		Background(lipgloss.Color(t.Neutral.Get(surface).String())).
		Foreground(lipgloss.Color(t.Neutral.Get(text).String())).
		Padding(0, 1)
}
