package common

import (
	"strings"
	"testing"
)

func TestTruncateLines_KeepsShortText(t *testing.T) {
	out := TruncateLines("short", 40, 2)
	if out != "short" {
		t.Fatalf("got %q", out)
	}
}

func TestTruncateLines_CutsAndMarks(t *testing.T) {
	long := strings.Repeat("word ", 60)
	out := TruncateLines(long, 20, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasSuffix(out, "...") {
		t.Fatalf("truncated text must end with ellipsis: %q", out)
	}
}

func TestTruncateLines_NeverPadsLines(t *testing.T) {
	for _, in := range []string{"short", "two words here", strings.Repeat("word ", 30)} {
		out := TruncateLines(in, 40, 2)
		for _, line := range strings.Split(out, "\n") {
			if strings.TrimRight(line, " ") != line {
				t.Fatalf("line %q carries trailing padding", line)
			}
		}
	}
}

func TestDisplayWidth_IgnoresEscapes(t *testing.T) {
	styled := "\x1b[1mhi\x1b[0m"
	if got := DisplayWidth(styled); got != 2 {
		t.Fatalf("width = %d, want 2", got)
	}
}
