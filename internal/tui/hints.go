package tui

import (
	"github.com/quirekit/quire/internal/tui/theme"
)

// Standard key representations for consistent hints across the app.
const (
	KeyEnter = "enter"
	KeyEsc   = "esc"
	KeyO     = "o"      // Open file
	KeyR     = "r"      // Rename tab
	KeyCtrlW = "ctrl+w" // Close tab
	KeyCtrlE = "ctrl+e" // Edit in external editor
	KeyQ     = "q"      // Quit
)

// RenderHint renders a single key-description pair.
// Example: RenderHint("enter", "select") -> "enter select"
func RenderHint(key, desc string) string {
	s := theme.Current().S()
	return s.HintKey.Render(key) + " " + s.HintDesc.Render(desc)
}

// RenderHintBar renders a hint bar with multiple key-description pairs.
// Pairs are separated by " . " (bullet point separator).
// Example: RenderHintBar("up/down", "scroll", "enter", "select", "esc", "back")
// Returns: "up/down scroll . enter select . esc back"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var result string

	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			result += " " + s.HintSeparator.Render(".") + " "
		}
		result += RenderHint(pairs[i], pairs[i+1])
	}

	return result
}

// HintMain returns the hints shown on the empty state, covering the
// app-level keys.
// "o open . r rename . ctrl+w close . ctrl+e edit . q quit"
func HintMain() string {
	return RenderHintBar(KeyO, "open", KeyR, "rename", KeyCtrlW, "close", KeyCtrlE, "edit", KeyQ, "quit")
}
