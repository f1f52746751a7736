package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI. Styles and the close-icon
// pair are derived from the palette lazily, once per theme, as components
// first ask for them.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // lipgloss.Color is a string type
	Secondary string

	// Background hierarchy (dark to light)
	BgBase    string
	BgMantle  string
	BgSurface string
	BgOverlay string

	// Foreground hierarchy (dim to bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	// Status colors
	Success string
	Warning string
	Error   string
	Info    string

	// Lazy-built derivations
	styles     *Styles
	stylesOnce sync.Once
	icons      *CloseIcons
	iconsOnce  sync.Once
}

// CloseIcons holds the two fixed visual variants of a tab's close
// affordance, pre-rendered with their styles. The pair is built once per
// theme and shared by every closable tab; headers only pick which variant
// to show based on their hover flag.
type CloseIcons struct {
	Normal string
	Hover  string
}

// Width is the affordance's cell width, identical for both variants so
// hover swaps never shift the tab row.
func (c *CloseIcons) Width() int {
	return 1
}

var (
	currentMu sync.RWMutex
	current   = NewCatppuccinMocha()
)

// Current returns the active theme.
func Current() *Theme {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// Set replaces the active theme. Call before the program starts rendering;
// components re-read Current on every frame.
func Set(t *Theme) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = t
}

// ByName resolves a theme by its config name. Unknown names fall back to
// the default dark theme.
func ByName(name string) *Theme {
	switch name {
	case "catppuccin-latte", "latte", "light":
		return NewCatppuccinLatte()
	default:
		return NewCatppuccinMocha()
	}
}

// S returns the pre-built styles for this theme, building them on first
// call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// Icons returns the close-affordance variants for this theme, building
// them on first call.
func (t *Theme) Icons() *CloseIcons {
	t.iconsOnce.Do(func() {
		s := t.S()
		t.icons = &CloseIcons{
			Normal: s.TabClose.Render("×"),
			Hover:  s.TabCloseHover.Render("×"),
		}
	})
	return t.icons
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	return &Styles{
		// Tab row. The tab styles carry no padding: the row hand-rolls
		// spacing so click regions line up with rendered cells.
		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBright)).
			Background(lipgloss.Color(t.BgSurface)).
			Bold(true),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)).
			Background(lipgloss.Color(t.BgMantle)),
		TabClose: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)).
			Background(lipgloss.Color(t.BgSurface)),
		TabCloseHover: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Background(lipgloss.Color(t.BgSurface)).
			Bold(true),
		TabRowFill: lipgloss.NewStyle().
			Background(lipgloss.Color(t.BgMantle)),

		// Context menu
		MenuContainer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Primary)).
			Background(lipgloss.Color(t.BgOverlay)).
			Padding(0, 1),
		MenuItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBase)).
			Background(lipgloss.Color(t.BgOverlay)).
			Padding(0, 1),
		MenuItemSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBright)).
			Background(lipgloss.Color(t.Primary)).
			Bold(true).
			Padding(0, 1),

		// Status bar
		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.BgMantle)).
			Foreground(lipgloss.Color(t.FgBase)).
			Padding(0, 1),
		StatusTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)),
		StatusSeparator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),

		// Hint bar fragments
		HintKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Bold(true),
		HintDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),

		// Modals
		ModalContainer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Primary)).
			Background(lipgloss.Color(t.BgBase)).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		ModalHint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)).
			Italic(true),

		// Toast
		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Warning)).
			Bold(true).
			Padding(0, 1),

		// Plain text panes
		PaneText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBase)),
		PaneEmpty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)).
			Italic(true),
		ScrollIndicator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)).
			Background(lipgloss.Color(t.BgSurface)),
	}
}
