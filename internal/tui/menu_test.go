package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/require"

	"github.com/quirekit/quire/internal/notebook"
	"github.com/quirekit/quire/internal/tui/testfixtures"
)

// newTestMenu opens a context menu for the first tab of a two-page notebook
// and draws it so its hit area is populated.
func newTestMenu(t *testing.T) (*ContextMenu, *notebook.Tab) {
	t.Helper()

	nb, row := newTestTabRow(true, "alpha.txt", "beta.txt")
	drawRow(row, testfixtures.TestTermWidth)
	tab := nb.Pages()[0].Tab()

	menu := NewContextMenu()
	menu.Show(tab, row.AnchorFor(tab))

	canvas := uv.NewScreenBuffer(testfixtures.TestTermWidth, testfixtures.TestTermHeight)
	menu.Draw(canvas, canvas.Bounds())
	return menu, tab
}

// runMenuCmd executes a menu command and returns the resulting action
// message.
func runMenuCmd(t *testing.T, cmd tea.Cmd) TabMenuActionMsg {
	t.Helper()
	require.NotNil(t, cmd, "expected a menu action command")
	raw := cmd()
	msg, ok := raw.(TabMenuActionMsg)
	require.True(t, ok, "expected a TabMenuActionMsg, got %T", raw)
	return msg
}

func TestContextMenu_ShowAndClose(t *testing.T) {
	t.Parallel()

	menu, tab := newTestMenu(t)

	require.True(t, menu.IsVisible())
	require.Equal(t, tab, menu.Tab())

	menu.Close()
	require.False(t, menu.IsVisible())
	require.Nil(t, menu.Tab())
}

func TestContextMenu_DrawRendersItems(t *testing.T) {
	t.Parallel()

	menu, _ := newTestMenu(t)

	render := testfixtures.Render(func(canvas uv.ScreenBuffer) {
		menu.Draw(canvas, canvas.Bounds())
	})

	require.Contains(t, render, "Close")
	require.Contains(t, render, "Close others")
	require.Contains(t, render, "Close all")
}

func TestContextMenu_DrawNothingWhenHidden(t *testing.T) {
	t.Parallel()

	menu := NewContextMenu()

	render := testfixtures.Render(func(canvas uv.ScreenBuffer) {
		menu.Draw(canvas, canvas.Bounds())
	})

	require.NotContains(t, render, "Close")
}

func TestContextMenu_KeyboardNavigation(t *testing.T) {
	t.Parallel()

	menu, _ := newTestMenu(t)
	require.Equal(t, 0, menu.selected, "first item starts highlighted")

	menu.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	require.Equal(t, 1, menu.selected)

	menu.Update(tea.KeyPressMsg{Code: 'j'})
	require.Equal(t, 2, menu.selected)

	// Bounded at the last item
	menu.Update(tea.KeyPressMsg{Code: 'j'})
	require.Equal(t, 2, menu.selected)

	menu.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	require.Equal(t, 1, menu.selected)

	menu.Update(tea.KeyPressMsg{Code: 'k'})
	require.Equal(t, 0, menu.selected)

	// Bounded at the first item
	menu.Update(tea.KeyPressMsg{Code: 'k'})
	require.Equal(t, 0, menu.selected)
}

func TestContextMenu_EnterPicksSelected(t *testing.T) {
	t.Parallel()

	menu, tab := newTestMenu(t)

	menu.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	cmd := menu.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	msg := runMenuCmd(t, cmd)
	require.Equal(t, MenuCloseOthers, msg.Action)
	require.Equal(t, tab, msg.Tab)
	require.False(t, menu.IsVisible(), "picking an item closes the menu")
}

func TestContextMenu_SpacePicksSelected(t *testing.T) {
	t.Parallel()

	menu, tab := newTestMenu(t)

	cmd := menu.Update(tea.KeyPressMsg{Code: ' ', Text: " "})

	msg := runMenuCmd(t, cmd)
	require.Equal(t, MenuClose, msg.Action)
	require.Equal(t, tab, msg.Tab)
}

func TestContextMenu_EscapeCloses(t *testing.T) {
	t.Parallel()

	menu, _ := newTestMenu(t)

	cmd := menu.Update(tea.KeyPressMsg{Code: tea.KeyEscape, Text: "esc"})

	require.Nil(t, cmd, "escape should produce no action")
	require.False(t, menu.IsVisible())
}

func TestContextMenu_ClickPicksItem(t *testing.T) {
	t.Parallel()

	menu, tab := newTestMenu(t)

	// The menu opens anchored at (0,1); items sit inside the border on
	// rows 2-4.
	cmd := menu.HandleClick(3, 4)

	msg := runMenuCmd(t, cmd)
	require.Equal(t, MenuCloseAll, msg.Action)
	require.Equal(t, tab, msg.Tab)
	require.False(t, menu.IsVisible())
}

func TestContextMenu_ClickOutsideDismisses(t *testing.T) {
	t.Parallel()

	menu, _ := newTestMenu(t)

	cmd := menu.HandleClick(60, 20)

	require.Nil(t, cmd, "a dismissing click should produce no action")
	require.False(t, menu.IsVisible())
}

func TestContextMenu_ClickOnBorderDismisses(t *testing.T) {
	t.Parallel()

	menu, _ := newTestMenu(t)

	// (0,1) is the menu's own top-left border corner, not an item.
	cmd := menu.HandleClick(0, 1)

	require.Nil(t, cmd)
	require.False(t, menu.IsVisible())
}

func TestContextMenu_MotionMovesHighlight(t *testing.T) {
	t.Parallel()

	menu, _ := newTestMenu(t)

	menu.HandleMotion(3, 4)
	require.Equal(t, 2, menu.selected)

	menu.HandleMotion(3, 2)
	require.Equal(t, 0, menu.selected)

	// Motion outside the menu leaves the highlight alone.
	menu.HandleMotion(60, 20)
	require.Equal(t, 0, menu.selected)
}

func TestContextMenu_ClampsToScreen(t *testing.T) {
	t.Parallel()

	nb, row := newTestTabRow(true, "alpha.txt")
	drawRow(row, testfixtures.TestTermWidth)
	tab := nb.Pages()[0].Tab()

	menu := NewContextMenu()
	menu.Show(tab, uv.Position{X: 115, Y: 38})

	canvas := uv.NewScreenBuffer(testfixtures.TestTermWidth, testfixtures.TestTermHeight)
	menu.Draw(canvas, canvas.Bounds())

	require.LessOrEqual(t, menu.menuArea.Max.X, testfixtures.TestTermWidth,
		"menu should be pulled inside the right edge")
	require.LessOrEqual(t, menu.menuArea.Max.Y, testfixtures.TestTermHeight,
		"menu should be pulled inside the bottom edge")
	require.GreaterOrEqual(t, menu.menuArea.Min.X, 0)
	require.GreaterOrEqual(t, menu.menuArea.Min.Y, 0)
}

func TestContextMenu_UpdateIgnoredWhenHidden(t *testing.T) {
	t.Parallel()

	menu := NewContextMenu()

	require.Nil(t, menu.Update(tea.KeyPressMsg{Code: tea.KeyEnter}))
	require.Nil(t, menu.HandleClick(3, 3))
	require.False(t, menu.IsVisible())
}

func TestContextMenu_ShowResetsSelection(t *testing.T) {
	t.Parallel()

	menu, tab := newTestMenu(t)

	menu.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	require.Equal(t, 1, menu.selected)

	menu.Close()
	menu.Show(tab, uv.Position{X: 0, Y: 1})
	require.Equal(t, 0, menu.selected, "reopening should highlight the first item")
}
