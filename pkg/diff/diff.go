// Package diff renders line-oriented unified diffs between two texts.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Unified returns a unified diff from expected to actual, or "" when the
// texts are identical. Lines are compared whole; a changed line shows up as
// one removal and one addition.
func Unified(expected, actual, expectedLabel, actualLabel string) string {
	if expected == actual {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n", expectedLabel)
	fmt.Fprintf(&sb, "+++ %s\n", actualLabel)
	fmt.Fprintf(&sb, "@@ -1,%d +1,%d @@\n", countLines(expected), countLines(actual))

	written := 3
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range splitLines(d.Text) {
			if written >= maxDiffLines {
				sb.WriteString(truncateMessage)
				sb.WriteString("\n")
				return sb.String()
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteString("\n")
			written++
		}
	}

	return sb.String()
}

// Stats counts added and removed lines between two texts.
func Stats(expected, actual string) (added, removed int) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(expected, actual)
	for _, d := range dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += len(splitLines(d.Text))
		case diffmatchpatch.DiffDelete:
			removed += len(splitLines(d.Text))
		}
	}
	return added, removed
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(text string) int {
	return len(splitLines(text))
}
