package diff

import (
	"strings"
	"testing"
)

func TestUnified_IdenticalContent(t *testing.T) {
	text := "--a: #fff;\n--b: #000;\n"

	if result := Unified(text, text, "on disk", "generated"); result != "" {
		t.Errorf("expected empty diff for identical content, got: %s", result)
	}
}

func TestUnified_SingleLineChange(t *testing.T) {
	expected := "@theme {\n  --rounded: 4px;\n}"
	actual := "@theme {\n  --rounded: 8px;\n}"

	result := Unified(expected, actual, "theme.css", "generated")

	if !strings.HasPrefix(result, "--- theme.css\n+++ generated\n@@ -1,3 +1,3 @@\n") {
		t.Errorf("unexpected header:\n%s", result)
	}
	if !strings.Contains(result, "-  --rounded: 4px;\n") {
		t.Error("diff should show removed line with - prefix")
	}
	if !strings.Contains(result, "+  --rounded: 8px;\n") {
		t.Error("diff should show added line with + prefix")
	}
	if !strings.Contains(result, " @theme {\n") {
		t.Error("diff should keep unchanged lines as context")
	}
}

func TestUnified_AddedLines(t *testing.T) {
	result := Unified("a\n", "a\nb\nc\n", "old", "new")

	if !strings.Contains(result, "+b\n+c\n") {
		t.Errorf("expected added lines, got:\n%s", result)
	}
	if strings.Contains(result, "-a") {
		t.Errorf("unchanged line reported as removed:\n%s", result)
	}
}

func TestUnified_Truncates(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < maxDiffLines+50; i++ {
		sb.WriteString("x\n")
	}

	result := Unified("", sb.String(), "old", "new")
	if !strings.HasSuffix(result, truncateMessage+"\n") {
		t.Error("large diff should end with the truncation marker")
	}
	if lines := strings.Count(result, "\n"); lines != maxDiffLines+1 {
		t.Errorf("expected %d lines, got %d", maxDiffLines+1, lines)
	}
}

func TestStats(t *testing.T) {
	added, removed := Stats("a\nb\nc\n", "a\nB\nc\nd\n")
	if added != 2 || removed != 1 {
		t.Errorf("expected +2 -1, got +%d -%d", added, removed)
	}
}
