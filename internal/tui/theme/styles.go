package theme

import "charm.land/lipgloss/v2"

// Styles contains the pre-built lipgloss styles for the TUI, grouped by the
// component that consumes them. Build once per theme through Theme.S.
type Styles struct {
	// Tab row
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	TabClose      lipgloss.Style
	TabCloseHover lipgloss.Style
	TabRowFill    lipgloss.Style

	// Context menu
	MenuContainer    lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemSelected lipgloss.Style

	// Status bar
	StatusBar       lipgloss.Style
	StatusTitle     lipgloss.Style
	StatusInfo      lipgloss.Style
	StatusSeparator lipgloss.Style

	// Hint bar fragments
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	// Modals
	ModalContainer lipgloss.Style
	ModalTitle     lipgloss.Style
	ModalHint      lipgloss.Style

	// Toast
	Toast lipgloss.Style

	// Content panes
	PaneText        lipgloss.Style
	PaneEmpty       lipgloss.Style
	ScrollIndicator lipgloss.Style
}
