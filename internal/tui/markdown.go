package tui

import (
	"strings"

	"charm.land/glamour/v2"

	"github.com/quirekit/quire/internal/tui/theme"
)

// renderMarkdown renders markdown content for the terminal using glamour.
// Falls back to plain text wrapping if rendering fails.
func renderMarkdown(content string, width int) string {
	// Cap width to 120 for readability
	if width > 120 {
		width = 120
	}

	style := "light"
	if theme.Current().IsDark {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wrapText(content, width)
	}

	rendered, err := r.Render(content)
	if err != nil {
		return wrapText(content, width)
	}

	// Remove trailing newline that glamour adds
	return strings.TrimSuffix(rendered, "\n")
}

// wrapText wraps text to the given width, breaking on spaces where
// possible. Only the glamour failure path above needs it; the panes let
// lipgloss wrap plain text.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}

		for len(line) > width {
			breakPoint := width
			for j := width; j > 0; j-- {
				if line[j] == ' ' {
					breakPoint = j
					break
				}
			}
			result.WriteString(line[:breakPoint])
			result.WriteString("\n")
			line = strings.TrimLeft(line[breakPoint:], " ")
		}
		result.WriteString(line)
	}

	return result.String()
}
