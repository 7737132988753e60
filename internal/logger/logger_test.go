package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decodeLines(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()
	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Format: FormatJSON, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"seed": "#6366f1", "role": "primary"})
	log.Info("palette generated", map[string]any{"steps": 11})

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "palette generated", entries[0]["message"])
	require.Equal(t, "#6366f1", entries[0]["seed"])
	require.Equal(t, "primary", entries[0]["role"])
	require.EqualValues(t, 11, entries[0]["steps"])
	require.Equal(t, "info", entries[0]["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Format: FormatJSON, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Format: FormatJSON, Writer: buf})
	require.NoError(t, err)

	log.With("path", "theme.yaml").Error(errors.New("boom"), "reload failed")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "reload failed", entries[0]["message"])
	require.Equal(t, "theme.yaml", entries[0]["path"])
	require.Equal(t, "boom", entries[0]["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerConsoleFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Warn("stylesheet drift", map[string]any{"path": "theme.css"})
	out := buf.String()
	require.Contains(t, out, "stylesheet drift")
	require.Contains(t, out, "theme.css")
	require.NotContains(t, out, "\x1b[")
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.Error(errors.New("x"), "ignored")
		require.Nil(t, nilLogger.With("k", "v"))
	})

	require.NotPanics(t, func() {
		Nop().Info("ignored")
	})
}
