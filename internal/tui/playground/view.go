package playground

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/shadeforge/internal/palette"
	"github.com/alexisbeaulieu97/shadeforge/internal/theme"
	"github.com/alexisbeaulieu97/shadeforge/internal/ui/swatch"
)

// View implements tea.Model.
func (m Model) View() string {
	current := m.live.Current()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Theme Playground"))
	b.WriteString("\n")

	for s := Section(0); s < sectionCount; s++ {
		b.WriteString(m.renderSection(s, current))
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Custom %s color: %s", strings.ToLower(m.focus.String()), m.input.View()))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderPreview(current))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderSection(s Section, current theme.Theme) string {
	label := labelStyle.Render(s.String())
	if s == m.focus {
		label = focusedLabelStyle.Render("> " + s.String())
	}

	settings := current.Settings
	var options []string

	switch s {
	case SectionPrimary, SectionNeutral:
		role, _ := roleFor(s)
		seed := m.selectedSeed(role)
		presets := m.visiblePresets(role)
		for _, p := range presets {
			chip := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Value.String())).Render("■")
			options = append(options, renderOption(chip+" "+p.DisplayName(), p.Value == seed))
		}
		if presetIndex(presets, seed) < 0 {
			options = append(options, renderOption("custom "+seed.String(), true))
		}
		options = append(options, m.moreToggle(s, len(theme.Presets(role))))

	case SectionAppearance:
		for _, a := range []theme.Appearance{theme.AppearanceLight, theme.AppearanceDark} {
			options = append(options, renderOption(string(a), a == settings.Appearance()))
		}

	case SectionFont:
		for _, f := range theme.FontFamilies() {
			options = append(options, renderOption(f, f == settings.FontFamily()))
		}

	case SectionRadius:
		selected := false
		for _, o := range m.visibleRadii() {
			selected = selected || o.Value == settings.RadiusPx()
			options = append(options, renderOption(o.Name, o.Value == settings.RadiusPx()))
		}
		if !selected {
			options = append(options, renderOption(fmt.Sprintf("%dpx", settings.RadiusPx()), true))
		}
		options = append(options, m.moreToggle(s, len(theme.RadiusOptions())))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, options...)
	if m.width > lipgloss.Width(label) {
		row = lipgloss.NewStyle().MaxWidth(m.width - lipgloss.Width(label)).Render(row)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, label, row)
}

func (m Model) moreToggle(s Section, total int) string {
	if total <= collapsedOptions {
		return ""
	}
	if m.expanded[s] {
		return mutedStyle.Render("(m) less")
	}
	return mutedStyle.Render("(m) more")
}

func renderOption(text string, selected bool) string {
	if selected {
		return selectedOptionStyle.Render(text)
	}
	return optionStyle.Render(text)
}

// renderPreview draws the ramps, and the stylesheet when shown, inside a
// container that follows the theme's appearance.
func (m Model) renderPreview(current theme.Theme) string {
	parts := []string{
		mutedStyle.Render(fmt.Sprintf("Preview (%s)", current.Settings.Appearance())),
		m.renderRamp("Primary", current.Primary),
		"",
		m.renderRamp("Neutral", current.Neutral),
	}
	if m.showCSS {
		parts = append(parts, "", cssStyle.Render(m.css()))
	}
	return previewStyle(current).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) renderRamp(title string, p palette.Palette) string {
	width := 7
	// Leave room for the preview border and padding.
	if inner := m.width - 4; inner > 0 && inner/palette.StepCount > width {
		width = inner / palette.StepCount
	}
	return swatch.Render(p, swatch.Options{
		Layout: swatch.LayoutRow,
		Title:  title,
		Width:  width,
	})
}
