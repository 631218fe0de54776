package termimg

import (
	"os"
	"strings"
)

// Supported reports whether the running terminal understands the kitty
// graphics protocol. Detection is environment-based and happens once at
// startup; everything downstream commits to one rendering path.
func Supported() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	termProgram := strings.ToLower(strings.TrimSpace(os.Getenv("TERM_PROGRAM")))
	if strings.Contains(termProgram, "kitty") || strings.Contains(termProgram, "ghostty") {
		return true
	}
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	return strings.Contains(term, "xterm-kitty") || strings.Contains(term, "ghostty")
}
