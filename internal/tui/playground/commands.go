package playground

import (
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NoticeDuration is how long copy and save notices stay on screen.
const NoticeDuration = 3 * time.Second

func copyCmd(write func(string) error, css string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: write(css)}
	}
}

func saveCmd(path, css string) tea.Cmd {
	return func() tea.Msg {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return savedMsg{path: path, err: err}
			}
		}
		return savedMsg{path: path, err: os.WriteFile(path, []byte(css+"\n"), 0o644)}
	}
}

func clearNoticeCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}
