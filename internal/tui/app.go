package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/quirekit/quire/internal/content"
	"github.com/quirekit/quire/internal/logger"
	"github.com/quirekit/quire/internal/notebook"
	"github.com/quirekit/quire/internal/tui/theme"
)

// App is the main Bubbletea model. It owns the notebook and every view
// component, translates terminal events into notebook operations, and acts
// as the notebook's layout service: the tab row and content region render
// whatever the notebook says is current.
type App struct {
	// View components
	nb          *notebook.Notebook
	tabs        *TabRow
	menu        *ContextMenu
	status      *StatusBar
	renameModal *RenameModal
	openModal   *OpenModal
	toast       *Toast

	bindings Bindings

	// Layout management
	layout      Layout
	layoutDirty bool

	width        int
	height       int
	quitting     bool
	frameFocused bool // keyboard focus sits on the frame when no page is open
}

// NewApp creates the TUI application with the given documents opened in
// order. The last one added ends up selected.
func NewApp(docs []*content.Document, closable bool, family Family) *App {
	a := &App{
		menu:         NewContextMenu(),
		status:       NewStatusBar(),
		renameModal:  NewRenameModal(),
		openModal:    NewOpenModal(),
		toast:        NewToast(),
		bindings:     NewBindings(family),
		layoutDirty:  true, // Calculate layout on first render
		frameFocused: true,
	}

	a.nb = notebook.New(notebook.Config{Closable: closable}, a)
	a.nb.SetOnChange(func() {
		// Keyboard focus follows the selection, including back to the
		// frame when the last page closes.
		logger.Debug("selection changed: %s", a.nb.SelectedID())
		a.nb.Focus()
	})
	a.tabs = NewTabRow(a.nb)

	for _, doc := range docs {
		a.nb.Add(NewPane(doc), doc.Title)
	}

	return a
}

// Init initializes the application. Nothing runs in the background at
// startup; all commands are event-driven.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return a.handleKeyPress(msg)

	case tea.MouseClickMsg:
		return a.handleMouseClick(msg)

	case tea.MouseMotionMsg:
		return a.handleMouseMotion(msg)

	case tea.MouseWheelMsg:
		return a.handleMouseWheel(msg)

	case tea.PasteMsg:
		return a.handlePaste(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = CalculateLayout(a.width, a.height)
		a.propagateSizes()
		a.layoutDirty = false
		return a, nil

	case TabMenuActionMsg:
		return a, a.handleMenuAction(msg)

	case RenameSubmitMsg:
		if p := a.currentPane(); p != nil {
			if err := a.nb.Rename(p, msg.Title); err != nil {
				logger.Warn("rename failed: %v", err)
			}
		}
		return a, nil

	case OpenSubmitMsg:
		return a, a.openDocument(msg.Path)

	case EditorFinishedMsg:
		return a, a.reloadCurrent(msg.Err)

	case ShowToastMsg:
		return a, a.toast.Show(msg.Text)

	case ToastDismissMsg:
		return a, a.toast.Update(msg)
	}

	return a, nil
}

// handleKeyPress routes keyboard input by overlay priority: the context
// menu, then input modals, then app-level keys, then the current pane.
func (a *App) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits everywhere, even with an overlay open
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return a, tea.Quit
	}

	if a.menu.IsVisible() {
		return a, a.menu.Update(msg)
	}

	if a.renameModal.IsVisible() {
		return a, a.renameModal.Update(msg)
	}
	if a.openModal.IsVisible() {
		return a, a.openModal.Update(msg)
	}

	switch msg.String() {
	case "q":
		a.quitting = true
		return a, tea.Quit

	case "o":
		return a, a.openModal.Show()

	case "r":
		if page := a.nb.CurrentPage(); page != nil {
			return a, a.renameModal.Show(page.Tab().Title())
		}
		return a, nil

	case "ctrl+w":
		if p := a.currentPane(); p != nil {
			if err := a.nb.Close(p); err != nil {
				logger.Warn("close failed: %v", err)
			}
		}
		return a, nil

	case "ctrl+e":
		return a, a.editCurrent()
	}

	// Remaining keys scroll the focused pane
	if p := a.currentPane(); p != nil && !a.frameFocused {
		return a, p.Update(msg)
	}
	return a, nil
}

// handleMouseClick processes mouse clicks using coordinate-based hit
// detection, with overlays taking priority over the tab row and content.
func (a *App) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()

	if a.menu.IsVisible() {
		return a, a.menu.HandleClick(mouse.X, mouse.Y)
	}

	if a.renameModal.IsVisible() {
		return a, a.renameModal.HandleClick(mouse.X, mouse.Y)
	}
	if a.openModal.IsVisible() {
		return a, a.openModal.HandleClick(mouse.X, mouse.Y)
	}

	if tab, onClose := a.tabs.HitAt(mouse.X, mouse.Y); tab != nil {
		a.handleTabClick(tab, onClose, mouse.Button)
		return a, nil
	}

	// Clicks in the content area move keyboard focus to the pane
	if mouse.Button == tea.MouseLeft {
		if p := a.currentPane(); p != nil && p.Contains(mouse.X, mouse.Y) {
			a.nb.Focus()
		}
	}
	return a, nil
}

// handleTabClick maps a button press on a tab header to a notebook
// request. The close affordance answers the primary button directly; the
// other buttons go through the platform binding table.
func (a *App) handleTabClick(tab *notebook.Tab, onClose bool, btn tea.MouseButton) {
	if onClose && btn == tea.MouseLeft {
		tab.ClickClose()
		return
	}

	switch a.bindings.ForButton(btn) {
	case TabActionSelect:
		tab.Click()
	case TabActionMenu:
		a.menu.Show(tab, a.tabs.AnchorFor(tab))
	case TabActionClose:
		tab.ClickClose()
	}
}

// handleMouseMotion drives hover state: menu item highlight when the menu
// is open, close-affordance hover otherwise.
func (a *App) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	if a.menu.IsVisible() {
		a.menu.HandleMotion(msg.X, msg.Y)
		return a, nil
	}

	a.tabs.Hover(msg.X, msg.Y)
	return a, nil
}

// handleMouseWheel scrolls the pane under the cursor.
func (a *App) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()

	const scrollLines = 3

	var lines int
	switch mouse.Button {
	case tea.MouseWheelUp:
		lines = -scrollLines
	case tea.MouseWheelDown:
		lines = scrollLines
	default:
		return a, nil
	}

	if p := a.currentPane(); p != nil && p.Contains(mouse.X, mouse.Y) {
		p.Scroll(lines)
	}
	return a, nil
}

// handlePaste routes pasted text with the same overlay priority as
// handleKeyPress. Both modals hold single-line inputs, so newlines in the
// pasted content are collapsed after sanitizing.
func (a *App) handlePaste(msg tea.PasteMsg) (tea.Model, tea.Cmd) {
	// The menu has no text input; swallow the paste so it cannot leak
	// into a modal stacked underneath.
	if a.menu.IsVisible() {
		return a, nil
	}

	text := collapseNewlines(SanitizePaste(msg.Content))

	if a.renameModal.IsVisible() {
		return a, a.renameModal.Update(tea.PasteMsg{Content: text})
	}
	if a.openModal.IsVisible() {
		return a, a.openModal.Update(tea.PasteMsg{Content: text})
	}

	// Panes are read-only viewers; paste means nothing there.
	return a, nil
}

// handleMenuAction executes a context menu pick against the notebook.
func (a *App) handleMenuAction(msg TabMenuActionMsg) tea.Cmd {
	var err error
	switch msg.Action {
	case MenuClose:
		err = a.nb.CloseTab(msg.Tab)
	case MenuCloseOthers:
		err = a.nb.CloseOthers(msg.Tab)
	case MenuCloseAll:
		err = a.nb.CloseAll()
	}
	if err != nil {
		logger.Warn("menu action failed: %v", err)
	}
	return nil
}

// openDocument loads a file and adds it as a new selected page.
func (a *App) openDocument(path string) tea.Cmd {
	doc, err := content.Load(path)
	if err != nil {
		logger.Warn("open %s: %v", path, err)
		return a.toast.Show("Cannot open " + path)
	}

	pane := NewPane(doc)
	pane.SetSize(a.layout.Content.Dx(), a.layout.Content.Dy())
	a.nb.Add(pane, doc.Title)
	return nil
}

// editCurrent launches the external editor on the current document.
func (a *App) editCurrent() tea.Cmd {
	p := a.currentPane()
	if p == nil {
		return nil
	}
	if p.Doc().Path == "" {
		return a.toast.Show("Built-in documents cannot be edited")
	}
	return openInEditor(p.Doc().Path)
}

// reloadCurrent re-reads the current document after the external editor
// returns, then forces a re-render.
func (a *App) reloadCurrent(editErr error) tea.Cmd {
	if editErr != nil {
		logger.Warn("editor: %v", editErr)
		return a.toast.Show("Editor failed")
	}

	p := a.currentPane()
	if p == nil {
		return nil
	}
	if err := p.Doc().Reload(); err != nil {
		logger.Warn("reload %s: %v", p.Doc().Path, err)
		return a.toast.Show("Reload failed")
	}
	p.Invalidate()
	return nil
}

// currentPane returns the current page's pane, or nil with no pages open.
func (a *App) currentPane() *Pane {
	p, _ := a.nb.Current().(*Pane)
	return p
}

// propagateSizes pushes the current layout dimensions to all components.
// Every pane gets the content size so switching tabs needs no resize.
func (a *App) propagateSizes() {
	a.status.SetSize(a.layout.Status.Dx(), a.layout.Status.Dy())
	for _, page := range a.nb.Pages() {
		if pane, ok := page.Content().(*Pane); ok {
			pane.SetSize(a.layout.Content.Dx(), a.layout.Content.Dy())
		}
	}
}

// refreshStatus re-derives the status bar fields from the notebook.
func (a *App) refreshStatus() {
	p := a.currentPane()
	if p == nil {
		a.status.SetDocument("", "")
		a.status.SetTabs(0, 0)
		a.status.SetScroll(0, false)
		return
	}

	a.status.SetDocument(a.nb.CurrentPage().Tab().Title(), p.Doc().Kind.String())
	if i, err := a.nb.Index(p); err == nil {
		a.status.SetTabs(i, a.nb.Len())
	}
	a.status.SetScroll(p.ScrollPercent(), p.Overflows())
}

// View renders the current view. In Bubbletea v2, this returns tea.View
// with display options like AltScreen and MouseMode.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true                    // Full-screen mode
	view.MouseMode = tea.MouseModeCellMotion // Enable mouse events
	view.ReportFocus = true
	view.KeyboardEnhancements = tea.KeyboardEnhancements{
		ReportEventTypes: true,
	}

	if a.quitting {
		// Return minimal view when quitting - exit alt screen for proper terminal restoration
		view.AltScreen = false
		view.MouseMode = 0
		view.ReportFocus = false
		view.Content = lipgloss.NewLayer("")
		return view
	}

	// Recalculate layout if needed
	if a.layoutDirty {
		a.layout = CalculateLayout(a.width, a.height)
		a.propagateSizes()
		a.layoutDirty = false
	}

	// Create screen buffer for drawing
	canvas := uv.NewScreenBuffer(a.width, a.height)

	// Draw all components to canvas
	view.Cursor = a.Draw(canvas, canvas.Bounds())

	// Render canvas to string
	rendered := canvas.Render()

	view.Content = lipgloss.NewLayer(rendered)

	// Set global background color for the entire terminal
	view.BackgroundColor = theme.HexToColor(theme.Current().BgBase)

	return view
}

// Draw renders all components to the screen buffer.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	a.refreshStatus()

	FillArea(scr, area, lipgloss.NewStyle().Background(lipgloss.Color(theme.Current().BgBase)))

	a.tabs.Draw(scr, a.layout.Tabs)

	if p := a.currentPane(); p != nil {
		p.Draw(scr, a.layout.Content)
	} else {
		a.drawEmptyState(scr, a.layout.Content)
	}

	a.status.Draw(scr, a.layout.Status)

	// Draw overlays
	a.menu.Draw(scr, area)
	if a.renameModal.IsVisible() {
		a.renameModal.Draw(scr, area)
	}
	if a.openModal.IsVisible() {
		a.openModal.Draw(scr, area)
	}

	// Draw toast last so it appears on top of everything
	if a.toast.IsVisible() {
		toastContent := a.toast.View(area.Dx())
		if toastContent != "" {
			// Bottom-right with 1 cell padding, above the status bar
			contentWidth := lipgloss.Width(toastContent)
			contentHeight := lipgloss.Height(toastContent)
			toastX := area.Max.X - contentWidth - 1
			toastY := area.Max.Y - 1 - contentHeight
			if toastX < area.Min.X {
				toastX = area.Min.X
			}
			if toastY < area.Min.Y {
				toastY = area.Min.Y
			}
			toastArea := uv.Rectangle{
				Min: uv.Position{X: toastX, Y: toastY},
				Max: uv.Position{X: toastX + contentWidth, Y: toastY + contentHeight},
			}
			uv.NewStyledString(toastContent).Draw(scr, toastArea)
		}
	}

	return nil
}

// drawEmptyState renders the centered placeholder shown with no pages
// open.
func (a *App) drawEmptyState(scr uv.Screen, area uv.Rectangle) {
	s := theme.Current().S()
	msg := s.PaneEmpty.Render("No open documents") + "\n\n" + HintMain()

	w := lipgloss.Width(msg)
	h := lipgloss.Height(msg)
	x := area.Min.X + (area.Dx()-w)/2
	y := area.Min.Y + (area.Dy()-h)/2
	if x < area.Min.X {
		x = area.Min.X
	}
	if y < area.Min.Y {
		y = area.Min.Y
	}

	DrawText(scr, uv.Rectangle{
		Min: uv.Position{X: x, Y: y},
		Max: uv.Position{X: x + w, Y: y + h},
	}, msg)
}

// Place is part of the notebook.Layout contract. The tab row re-reads
// page order from the notebook every frame, so placement needs no
// bookkeeping here.
func (a *App) Place(t *notebook.Tab, position int) {}

// Raise is part of the notebook.Layout contract. The content region
// renders only the current page, so raising is implicit.
func (a *App) Raise(c notebook.Content) {}

// Detach drops view state tied to a removed page: an open context menu
// anchored to its tab.
func (a *App) Detach(t *notebook.Tab, c notebook.Content) {
	if a.menu.IsVisible() && a.menu.Tab() == t {
		a.menu.Close()
	}
}

// Focus tracks the keyboard focus target. With a page open the current
// pane takes scroll keys; with none the frame itself keeps focus so only
// app-level keys act.
func (a *App) Focus(c notebook.Content) {
	a.frameFocused = c == nil
}

// Compile-time checks: the app is the notebook's layout service.
var _ notebook.Layout = (*App)(nil)
