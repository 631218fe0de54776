package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TruncateLines wraps text to width and keeps at most maxLines lines,
// appending an ellipsis when content was cut. Lines are never padded.
func TruncateLines(text string, width, maxLines int) string {
	if width < 12 {
		width = 12
	}
	if maxLines < 1 {
		maxLines = 1
	}
	wrapped := ansi.Wrap(strings.TrimSpace(text), width, "")
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= maxLines {
		return wrapped
	}
	return strings.Join(lines[:maxLines], "\n") + "..."
}

// DisplayWidth measures the rendered cell width of s, ignoring escapes.
func DisplayWidth(s string) int {
	return ansi.StringWidth(s)
}
