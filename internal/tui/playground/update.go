package playground

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/shadeforge/internal/color"
	"github.com/alexisbeaulieu97/shadeforge/internal/theme"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKeys(msg)
		}
		return m.handleKeys(msg)

	case copiedMsg:
		if msg.err != nil {
			return m.setNotice(fmt.Sprintf("Copy failed: %v", msg.err))
		}
		return m.setNotice("Copied to clipboard!")

	case savedMsg:
		if msg.err != nil {
			return m.setNotice(fmt.Sprintf("Save failed: %v", msg.err))
		}
		return m.setNotice("Saved " + msg.path)

	case clearNoticeMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.focus = Section((int(m.focus) + 1) % sectionCount)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.focus = Section((int(m.focus) + sectionCount - 1) % sectionCount)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		return m.step(1)

	case key.Matches(msg, m.keys.Left):
		return m.step(-1)

	case key.Matches(msg, m.keys.More):
		if collapsible(m.focus) {
			m.expanded[m.focus] = !m.expanded[m.focus]
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if _, ok := roleFor(m.focus); !ok {
			return m, nil
		}
		m.editing = true
		m.errMsg = ""
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(m.opts.Clipboard, m.css())

	case key.Matches(msg, m.keys.Save):
		if m.opts.OutputPath == "" {
			return m.setNotice("No output path configured")
		}
		return m, saveCmd(m.opts.OutputPath, m.css())

	case key.Matches(msg, m.keys.ShowCSS):
		m.showCSS = !m.showCSS
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.errMsg = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.editing = false
		m.errMsg = ""
		m.input.Blur()
		return m, nil

	case "enter":
		hex, err := color.ParseHex(m.input.Value())
		if err != nil {
			// The input stays open so the value can be corrected; the
			// palettes on screen are untouched.
			m.errMsg = err.Error()
			return m, nil
		}
		role, _ := roleFor(m.focus)
		m.apply(func(s theme.Settings) theme.Settings {
			if role == theme.RoleNeutral {
				return s.WithNeutral(hex)
			}
			return s.WithPrimary(hex)
		})
		if m.errMsg == "" {
			m.editing = false
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// step moves the focused section to its previous or next option.
func (m Model) step(delta int) (tea.Model, tea.Cmd) {
	current := m.live.Current().Settings

	switch m.focus {
	case SectionPrimary, SectionNeutral:
		role, _ := roleFor(m.focus)
		presets := m.visiblePresets(role)
		next := presets[cycle(presetIndex(presets, m.selectedSeed(role)), delta, len(presets))]
		m.apply(func(s theme.Settings) theme.Settings {
			if role == theme.RoleNeutral {
				return s.WithNeutral(next.Value)
			}
			return s.WithPrimary(next.Value)
		})

	case SectionAppearance:
		next := theme.AppearanceDark
		if current.Appearance() == theme.AppearanceDark {
			next = theme.AppearanceLight
		}
		m.apply(func(s theme.Settings) theme.Settings { return s.WithAppearance(next) })

	case SectionFont:
		fonts := theme.FontFamilies()
		index := -1
		for i, f := range fonts {
			if f == current.FontFamily() {
				index = i
				break
			}
		}
		next := fonts[cycle(index, delta, len(fonts))]
		m.apply(func(s theme.Settings) theme.Settings { return s.WithFontFamily(next) })

	case SectionRadius:
		options := m.visibleRadii()
		index := -1
		for i, o := range options {
			if o.Value == current.RadiusPx() {
				index = i
				break
			}
		}
		next := options[cycle(index, delta, len(options))]
		m.apply(func(s theme.Settings) theme.Settings { return s.WithRadius(next.Value) })
	}

	return m, nil
}

// apply routes an edit through the live theme. A rejected edit leaves the
// current theme in place and surfaces the error.
func (m *Model) apply(fn func(theme.Settings) theme.Settings) {
	if _, err := m.live.Update(fn); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
}

func (m Model) setNotice(text string) (tea.Model, tea.Cmd) {
	m.noticeID++
	m.notice = text
	return m, clearNoticeCmd(m.noticeID, NoticeDuration)
}

func (m Model) css() string {
	return m.live.Current().Stylesheet(m.opts.Stylesheet)
}
