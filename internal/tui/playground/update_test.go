package playground

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/shadeforge/internal/theme"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) write(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func newTestModel(t *testing.T, opts Options) (Model, *fakeClipboard) {
	t.Helper()
	live, err := theme.NewLive(theme.DefaultSettings())
	require.NoError(t, err)

	clip := &fakeClipboard{}
	if opts.Clipboard == nil {
		opts.Clipboard = clip.write
	}
	return New(live, opts), clip
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
	rightKey    = tea.KeyMsg{Type: tea.KeyRight}
	leftKey     = tea.KeyMsg{Type: tea.KeyLeft}
	enterKey    = tea.KeyMsg{Type: tea.KeyEnter}
	escKey      = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	pm, ok := next.(Model)
	require.True(t, ok)
	assert.Nil(t, cmd)
	assert.Equal(t, 120, pm.width)
	assert.Equal(t, 40, pm.height)
	assert.Equal(t, 120, pm.help.Width)
}

func TestUpdate_FocusCycles(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	assert.Equal(t, SectionPrimary, m.Focus())

	m = press(t, m, tabKey)
	assert.Equal(t, SectionNeutral, m.Focus())

	m = press(t, m, shiftTabKey, shiftTabKey)
	assert.Equal(t, SectionRadius, m.Focus())

	m = press(t, m, tabKey)
	assert.Equal(t, SectionPrimary, m.Focus())
}

func TestUpdate_CyclePrimaryPresets(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = press(t, m, rightKey)
	assert.Equal(t, "#3b82f6", m.Theme().Primary.Seed().String())

	m = press(t, m, leftKey, leftKey)
	assert.Equal(t, "#a855f7", m.Theme().Primary.Seed().String(), "wraps to the last collapsed preset")
}

func TestUpdate_MorePresetsExtendsCycle(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = press(t, m, runes("m"), leftKey)
	assert.Equal(t, "#f43f5e", m.Theme().Primary.Seed().String())

	m = press(t, m, runes("m"))
	assert.Contains(t, m.View(), "custom #f43f5e")
}

func TestUpdate_NeutralAndRadiusCollapse(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = press(t, m, tabKey, leftKey, leftKey)
	assert.Equal(t, "#71717a", m.Theme().Neutral.Seed().String(), "wraps within slate, gray, zinc")

	m = press(t, m, runes("m"), rightKey, rightKey)
	assert.Equal(t, "#78716c", m.Theme().Neutral.Seed().String())

	m = press(t, m, shiftTabKey, rightKey, rightKey, rightKey)
	assert.Equal(t, "#6366f1", m.Theme().Primary.Seed().String(), "primary stays collapsed")

	m = press(t, m, shiftTabKey, rightKey, rightKey)
	assert.Equal(t, SectionRadius, m.Focus())
	assert.Equal(t, 0, m.Theme().Settings.RadiusPx(), "wraps within None, 4px, 6px")

	m = press(t, m, runes("m"), leftKey)
	assert.Equal(t, 16, m.Theme().Settings.RadiusPx())
}

func TestUpdate_MoreIgnoredOutsideCollapsibleSections(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = press(t, m, tabKey, tabKey, runes("m"))
	assert.Equal(t, [sectionCount]bool{}, m.expanded)
}

func TestUpdate_CycleNeutralLeavesPrimary(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = press(t, m, tabKey, rightKey)
	current := m.Theme()
	assert.Equal(t, "#71717a", current.Neutral.Seed().String())
	assert.Equal(t, theme.DefaultPrimary, current.Primary.Seed().String())
}

func TestUpdate_AppearanceFontRadius(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = press(t, m, tabKey, tabKey, rightKey)
	assert.Equal(t, theme.AppearanceDark, m.Theme().Settings.Appearance())

	m = press(t, m, tabKey, rightKey)
	assert.Equal(t, "System UI", m.Theme().Settings.FontFamily())

	m = press(t, m, tabKey, rightKey)
	assert.Equal(t, 6, m.Theme().Settings.RadiusPx())

	m = press(t, m, leftKey, leftKey)
	assert.Equal(t, 0, m.Theme().Settings.RadiusPx())
}

func TestUpdate_CustomHex(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = press(t, m, runes("e"))
	require.True(t, m.Editing())

	m = press(t, m, runes("#10B981"), enterKey)
	assert.False(t, m.Editing())
	assert.Empty(t, m.Err())
	assert.Equal(t, "#10b981", m.Theme().Primary.Seed().String())
}

func TestUpdate_InvalidCustomHexKeepsPalettes(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	before := m.Theme()

	m = press(t, m, tabKey, runes("e"), runes("#12345"), enterKey)
	assert.True(t, m.Editing())
	assert.NotEmpty(t, m.Err())
	assert.Equal(t, before.Neutral, m.Theme().Neutral)
	assert.Equal(t, before.Primary, m.Theme().Primary)

	m = press(t, m, escKey)
	assert.False(t, m.Editing())
	assert.Empty(t, m.Err())
}

func TestUpdate_EditIgnoredOutsideColorSections(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = press(t, m, tabKey, tabKey, runes("e"))
	assert.False(t, m.Editing())
}

func TestUpdate_CopyShowsNoticeThenClears(t *testing.T) {
	m, clip := newTestModel(t, Options{})

	next, cmd := m.Update(runes("c"))
	require.NotNil(t, cmd)
	m = next.(Model)

	msg := cmd()
	require.IsType(t, copiedMsg{}, msg)
	assert.True(t, strings.HasPrefix(clip.text, "/* Generated Theme Variables */"))

	next, cmd = m.Update(msg)
	m = next.(Model)
	assert.Equal(t, "Copied to clipboard!", m.Notice())
	require.NotNil(t, cmd, "notice clears on a timer")

	// A stale timer does not clear a newer notice.
	next, _ = m.Update(clearNoticeMsg{id: m.noticeID - 1})
	m = next.(Model)
	assert.Equal(t, "Copied to clipboard!", m.Notice())

	next, _ = m.Update(clearNoticeMsg{id: m.noticeID})
	m = next.(Model)
	assert.Empty(t, m.Notice())
}

func TestUpdate_CopyFailure(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no clipboard")}
	m, _ := newTestModel(t, Options{Clipboard: clip.write})

	_, cmd := m.Update(runes("c"))
	require.NotNil(t, cmd)

	next, _ := m.Update(cmd())
	assert.Contains(t, next.(Model).Notice(), "no clipboard")
}

func TestUpdate_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "theme.css")
	m, _ := newTestModel(t, Options{OutputPath: path})

	_, cmd := m.Update(runes("s"))
	require.NotNil(t, cmd)

	next, _ := m.Update(cmd())
	assert.Equal(t, "Saved "+path, next.(Model).Notice())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "--color-primary-500: #6366f1;")
}

func TestUpdate_SaveWithoutPath(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	next, _ := m.Update(runes("s"))
	assert.Equal(t, "No output path configured", next.(Model).Notice())
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_QWhileEditingIsInput(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = press(t, m, runes("e"), runes("q"))
	assert.True(t, m.Editing())
	assert.Equal(t, "q", m.input.Value())
}

func TestCycle(t *testing.T) {
	assert.Equal(t, 0, cycle(-1, 1, 5))
	assert.Equal(t, 4, cycle(-1, -1, 5))
	assert.Equal(t, 0, cycle(4, 1, 5))
	assert.Equal(t, 4, cycle(0, -1, 5))
	assert.Equal(t, 0, cycle(3, 1, 0))
}
