// Package playground is the interactive theme editor behind
// `shadeforge playground`.
package playground

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/shadeforge/internal/color"
	"github.com/alexisbeaulieu97/shadeforge/internal/stylesheet"
	"github.com/alexisbeaulieu97/shadeforge/internal/theme"
)

// collapsedOptions is how many options a collapsible section shows before
// "more".
const collapsedOptions = 3

// Options configures the playground.
type Options struct {
	Stylesheet stylesheet.Options
	// OutputPath enables saving with the save key when set.
	OutputPath string
	// Clipboard replaces the system clipboard, mainly for tests.
	Clipboard func(string) error
}

// Model is the playground state. Every edit goes through the shared
// theme.Live so the palettes on screen always belong to one settings
// snapshot.
type Model struct {
	live *theme.Live
	opts Options
	keys KeyMap

	focus    Section
	expanded [sectionCount]bool
	showCSS  bool

	editing bool
	input   textinput.Model
	help    help.Model

	notice   string
	noticeID int
	errMsg   string

	width  int
	height int
}

// New returns a playground editing live.
func New(live *theme.Live, opts Options) Model {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	input := textinput.New()
	input.Prompt = "# "
	input.Placeholder = "rrggbb"
	input.CharLimit = 7
	input.Width = 10

	return Model{
		live:   live,
		opts:   opts,
		keys:   DefaultKeyMap(),
		focus:  SectionPrimary,
		input:  input,
		help:   help.New(),
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Theme returns the theme currently shown.
func (m Model) Theme() theme.Theme {
	return m.live.Current()
}

// Focus returns the focused section.
func (m Model) Focus() Section {
	return m.focus
}

// Editing reports whether the custom hex input is open.
func (m Model) Editing() bool {
	return m.editing
}

// Notice returns the transient status line, if any.
func (m Model) Notice() string {
	return m.notice
}

// Err returns the last rejected input, if any.
func (m Model) Err() string {
	return m.errMsg
}

// collapsible reports whether s hides options behind "more".
func collapsible(s Section) bool {
	return s == SectionPrimary || s == SectionNeutral || s == SectionRadius
}

// visibleCount limits a section with n options to what is on screen.
func (m Model) visibleCount(s Section, n int) int {
	if collapsible(s) && !m.expanded[s] && n > collapsedOptions {
		return collapsedOptions
	}
	return n
}

// visiblePresets lists the presets offered for a color section.
func (m Model) visiblePresets(role theme.Role) []theme.ColorPreset {
	s := SectionPrimary
	if role == theme.RoleNeutral {
		s = SectionNeutral
	}
	presets := theme.Presets(role)
	return presets[:m.visibleCount(s, len(presets))]
}

// visibleRadii lists the radius options on screen.
func (m Model) visibleRadii() []theme.RadiusOption {
	options := theme.RadiusOptions()
	return options[:m.visibleCount(SectionRadius, len(options))]
}

// selectedSeed is the seed of the focused color section.
func (m Model) selectedSeed(role theme.Role) color.Hex {
	s := m.live.Current().Settings
	if role == theme.RoleNeutral {
		return s.Neutral()
	}
	return s.Primary()
}

func roleFor(s Section) (theme.Role, bool) {
	switch s {
	case SectionPrimary:
		return theme.RolePrimary, true
	case SectionNeutral:
		return theme.RoleNeutral, true
	default:
		return "", false
	}
}

// presetIndex returns the position of seed in presets, or -1 for a custom
// color.
func presetIndex(presets []theme.ColorPreset, seed color.Hex) int {
	for i, p := range presets {
		if p.Value == seed {
			return i
		}
	}
	return -1
}

func cycle(index, delta, n int) int {
	if n == 0 {
		return 0
	}
	if index < 0 {
		if delta > 0 {
			return 0
		}
		return n - 1
	}
	return ((index+delta)%n + n) % n
}
