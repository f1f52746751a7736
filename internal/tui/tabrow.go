package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/quirekit/quire/internal/notebook"
	"github.com/quirekit/quire/internal/tui/theme"
)

// maxTabTitleWidth caps a single tab's title so one long name cannot push
// every other tab off screen.
const maxTabTitleWidth = 24

// tabRegion tracks the click spans for one rendered tab header: the full
// cell, and inside it the close affordance.
type tabRegion struct {
	tab         *notebook.Tab
	startX      int // inclusive
	endX        int // exclusive
	closeStartX int // inclusive; equals closeEndX when non-closable
	closeEndX   int // exclusive
}

// TabRow renders the header strip along the top row and answers pointer
// hit tests against it. Regions are recorded at draw time, the same frame
// the user sees, so hits and pixels cannot disagree.
type TabRow struct {
	nb      *notebook.Notebook
	area    uv.Rectangle
	regions []tabRegion
}

// NewTabRow creates a tab row over the given notebook.
func NewTabRow(nb *notebook.Notebook) *TabRow {
	return &TabRow{nb: nb}
}

// Draw renders the tab headers left to right and records their hit regions.
func (r *TabRow) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	if area.Dy() < 1 {
		return nil
	}
	r.area = area
	r.regions = r.regions[:0]

	s := theme.Current().S()
	icons := theme.Current().Icons()

	var row string
	x := area.Min.X

	for _, p := range r.nb.Pages() {
		tab := p.Tab()

		style := s.TabInactive
		if tab.Active() {
			style = s.TabActive
		}

		title := truncateString(tab.Title(), maxTabTitleWidth)
		titleW := lipgloss.Width(title)

		// Tabs that would spill past the right edge are clipped whole:
		// no region, no partial cell.
		if x+titleW+2 > area.Max.X {
			break
		}

		region := tabRegion{tab: tab, startX: x}

		cell := style.Render(" " + title + " ")
		cellW := titleW + 2

		if tab.Closable() {
			icon := icons.Normal
			if tab.Hovered() {
				icon = icons.Hover
			}
			region.closeStartX = x + titleW + 2
			region.closeEndX = region.closeStartX + icons.Width()
			cell += icon + style.Render(" ")
			cellW += icons.Width() + 1
		} else {
			region.closeStartX = x + cellW
			region.closeEndX = region.closeStartX
		}

		region.endX = x + cellW
		r.regions = append(r.regions, region)

		row += cell
		x += cellW
	}

	DrawStyled(scr, area, s.TabRowFill, row)
	return nil
}

// HitAt resolves screen coordinates to the tab under them. onClose reports
// whether the hit landed on the close affordance rather than the label or
// body.
func (r *TabRow) HitAt(x, y int) (tab *notebook.Tab, onClose bool) {
	if y < r.area.Min.Y || y >= r.area.Max.Y {
		return nil, false
	}
	for _, reg := range r.regions {
		if x < reg.startX || x >= reg.endX {
			continue
		}
		return reg.tab, x >= reg.closeStartX && x < reg.closeEndX
	}
	return nil, false
}

// Hover updates every close affordance's hover flag against the pointer
// position and reports whether any flag flipped. Motion outside the row
// clears all hover state, covering the pointer leaving sideways or down
// into the content area.
func (r *TabRow) Hover(x, y int) bool {
	changed := false
	for _, reg := range r.regions {
		over := y >= r.area.Min.Y && y < r.area.Max.Y &&
			x >= reg.closeStartX && x < reg.closeEndX
		if reg.tab.SetHover(over) {
			changed = true
		}
	}
	return changed
}

// AnchorFor returns the position just under a tab's left edge, where the
// context menu for that tab opens. Falls back to the row's own origin for
// tabs that are no longer rendered.
func (r *TabRow) AnchorFor(tab *notebook.Tab) uv.Position {
	for _, reg := range r.regions {
		if reg.tab == tab {
			return uv.Position{X: reg.startX, Y: r.area.Max.Y}
		}
	}
	return uv.Position{X: r.area.Min.X, Y: r.area.Max.Y}
}

// Update handles messages. The tab row is driven by App-level routing.
func (r *TabRow) Update(msg tea.Msg) tea.Cmd {
	return nil
}

// Compile-time interface check
var _ Component = (*TabRow)(nil)
