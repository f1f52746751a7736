package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/quirekit/quire/internal/tui/theme"
)

// StatusBar displays document info (left) and tab position plus scroll
// state (right).
type StatusBar struct {
	width    int
	height   int
	docTitle string
	docKind  string
	tabIndex int
	tabCount int
	scroll   float64
	scrolled bool
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// Draw renders the status bar to the screen.
// Format: quire | title | kind     tab 2/5  38%
func (s *StatusBar) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return nil
	}

	left := s.buildLeft()
	right := s.buildRight()

	// Calculate spacing to fill width
	totalWidth := area.Dx() - 2 // Account for padding
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)

	padding := totalWidth - leftWidth - rightWidth
	if padding < 1 {
		padding = 1
	}

	spacer := ""
	for i := 0; i < padding; i++ {
		spacer += " "
	}

	content := left + spacer + right

	DrawStyled(scr, area, theme.Current().S().StatusBar, content)

	return nil
}

// buildLeft builds the left side of the status bar with document info.
func (s *StatusBar) buildLeft() string {
	st := theme.Current().S()
	title := st.StatusTitle.Render("quire")
	sep := st.StatusSeparator.Render(" | ")

	if s.docTitle == "" {
		return title + sep + st.StatusInfo.Render("no document")
	}

	left := title + sep + st.StatusInfo.Render(truncateString(s.docTitle, 48))
	if s.docKind != "" {
		left += sep + st.StatusInfo.Render(s.docKind)
	}

	return left
}

// buildRight builds the right side of the status bar with tab position
// and scroll percentage.
func (s *StatusBar) buildRight() string {
	st := theme.Current().S()

	if s.tabCount == 0 {
		return st.StatusInfo.Render("no tabs")
	}

	right := st.StatusInfo.Render(fmt.Sprintf("tab %d/%d", s.tabIndex+1, s.tabCount))
	if s.scrolled {
		right += st.StatusSeparator.Render("  ") +
			st.StatusInfo.Render(fmt.Sprintf("%d%%", int(s.scroll*100)))
	}

	return right
}

// SetSize updates the component dimensions.
func (s *StatusBar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetDocument updates the displayed document title and kind label.
func (s *StatusBar) SetDocument(title, kind string) {
	s.docTitle = title
	s.docKind = kind
}

// SetTabs updates the displayed tab position. index is zero-based.
func (s *StatusBar) SetTabs(index, count int) {
	s.tabIndex = index
	s.tabCount = count
}

// SetScroll updates the scroll percentage. scrolled controls whether the
// percentage is shown at all; panes that fit entirely on screen hide it.
func (s *StatusBar) SetScroll(percent float64, scrolled bool) {
	s.scroll = percent
	s.scrolled = scrolled
}

// Update handles messages. The status bar is display-only.
func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	return nil
}

// truncateString truncates a string to fit within maxWidth, adding "..." if truncated.
func truncateString(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}

	width := lipgloss.Width(s)
	if width <= maxWidth {
		return s
	}

	// Simple truncation - count runes to handle multi-byte chars
	runes := []rune(s)
	targetLen := maxWidth - 3 // Reserve space for "..."

	if targetLen < 0 {
		targetLen = 0
	}

	if targetLen >= len(runes) {
		return s
	}

	return string(runes[:targetLen]) + "..."
}

// Compile-time interface checks
var _ FullComponent = (*StatusBar)(nil)
