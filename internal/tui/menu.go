package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/quirekit/quire/internal/notebook"
	"github.com/quirekit/quire/internal/tui/theme"
)

// MenuAction identifies a context menu item.
type MenuAction int

const (
	MenuClose MenuAction = iota
	MenuCloseOthers
	MenuCloseAll
)

// TabMenuActionMsg is sent when the user picks a context menu item.
type TabMenuActionMsg struct {
	Action MenuAction
	Tab    *notebook.Tab
}

type menuItem struct {
	action MenuAction
	label  string
}

// ContextMenu is the small overlay opened by the secondary button on a tab
// header. It anchors under the tab it was opened for and offers the three
// close operations.
type ContextMenu struct {
	visible  bool
	tab      *notebook.Tab
	items    []menuItem
	selected int
	anchor   uv.Position
	menuArea uv.Rectangle // recorded at draw time for hit detection
}

// NewContextMenu creates the tab context menu.
func NewContextMenu() *ContextMenu {
	return &ContextMenu{
		items: []menuItem{
			{MenuClose, "Close"},
			{MenuCloseOthers, "Close others"},
			{MenuCloseAll, "Close all"},
		},
	}
}

// Show opens the menu for a tab at the given anchor position, with the
// first item highlighted.
func (m *ContextMenu) Show(tab *notebook.Tab, anchor uv.Position) {
	m.visible = true
	m.tab = tab
	m.anchor = anchor
	m.selected = 0
}

// Close hides the menu.
func (m *ContextMenu) Close() {
	m.visible = false
	m.tab = nil
}

// IsVisible returns whether the menu is open.
func (m *ContextMenu) IsVisible() bool {
	return m.visible
}

// Tab returns the tab the menu is open for, or nil.
func (m *ContextMenu) Tab() *notebook.Tab {
	return m.tab
}

// Update handles keyboard input while the menu is open.
func (m *ContextMenu) Update(msg tea.Msg) tea.Cmd {
	if !m.visible {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "esc":
		m.Close()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.items)-1 {
			m.selected++
		}
	case "enter", "space":
		return m.pick(m.selected)
	}
	return nil
}

// HandleClick processes a click while the menu is open. A click on an item
// picks it; anywhere else closes the menu. Either way the click is
// consumed.
func (m *ContextMenu) HandleClick(x, y int) tea.Cmd {
	if !m.visible {
		return nil
	}
	if i := m.itemAt(x, y); i >= 0 {
		return m.pick(i)
	}
	m.Close()
	return nil
}

// HandleMotion moves the highlight with the pointer.
func (m *ContextMenu) HandleMotion(x, y int) {
	if !m.visible {
		return
	}
	if i := m.itemAt(x, y); i >= 0 {
		m.selected = i
	}
}

// pick closes the menu and reports the chosen action.
func (m *ContextMenu) pick(i int) tea.Cmd {
	action := m.items[i].action
	tab := m.tab
	m.Close()
	return func() tea.Msg {
		return TabMenuActionMsg{Action: action, Tab: tab}
	}
}

// itemAt maps screen coordinates to an item index, or -1. Item rows start
// below the container's top border.
func (m *ContextMenu) itemAt(x, y int) int {
	if x < m.menuArea.Min.X+1 || x >= m.menuArea.Max.X-1 {
		return -1
	}
	i := y - m.menuArea.Min.Y - 1
	if i < 0 || i >= len(m.items) {
		return -1
	}
	return i
}

// Draw renders the menu anchored under its tab, clamped to stay on screen.
func (m *ContextMenu) Draw(scr uv.Screen, area uv.Rectangle) {
	if !m.visible {
		return
	}

	s := theme.Current().S()

	innerWidth := 0
	for _, it := range m.items {
		if w := lipgloss.Width(it.label); w > innerWidth {
			innerWidth = w
		}
	}

	var lines []string
	for i, it := range m.items {
		style := s.MenuItem
		if i == m.selected {
			style = s.MenuItemSelected
		}
		lines = append(lines, style.Width(innerWidth+2).Render(it.label))
	}

	menu := s.MenuContainer.Render(strings.Join(lines, "\n"))
	menuWidth := lipgloss.Width(menu)
	menuHeight := lipgloss.Height(menu)

	x := m.anchor.X
	y := m.anchor.Y
	if x+menuWidth > area.Max.X {
		x = area.Max.X - menuWidth
	}
	if y+menuHeight > area.Max.Y {
		y = area.Max.Y - menuHeight
	}
	if x < area.Min.X {
		x = area.Min.X
	}
	if y < area.Min.Y {
		y = area.Min.Y
	}

	m.menuArea = uv.Rectangle{
		Min: uv.Position{X: x, Y: y},
		Max: uv.Position{X: x + menuWidth, Y: y + menuHeight},
	}
	uv.NewStyledString(menu).Draw(scr, m.menuArea)
}
