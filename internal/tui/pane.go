package tui

import (
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/quirekit/quire/internal/content"
	"github.com/quirekit/quire/internal/tui/theme"
)

// Pane displays one document in the content region. Each page owns one
// pane; the notebook raises the current page's pane and the others are
// simply not drawn. Rendering is cached and recomputed only on resize or
// after the document changes.
type Pane struct {
	doc      *content.Document
	viewport viewport.Model
	width    int
	height   int
	area     uv.Rectangle
	stale    bool
}

// NewPane creates a pane over a loaded document.
func NewPane(doc *content.Document) *Pane {
	return &Pane{
		doc:      doc,
		viewport: viewport.New(),
		stale:    true,
	}
}

// Doc returns the pane's document.
func (p *Pane) Doc() *content.Document {
	return p.doc
}

// Invalidate forces a re-render on the next draw. Called after the
// document's text changes, typically on reload from the external editor.
func (p *Pane) Invalidate() {
	p.stale = true
}

// SetSize updates the pane dimensions and re-renders when they changed.
func (p *Pane) SetSize(width, height int) {
	if width == p.width && height == p.height && !p.stale {
		return
	}
	p.width = width
	p.height = height
	p.viewport.SetWidth(width)
	p.viewport.SetHeight(height)
	p.refresh()
}

// refresh renders the document for the current width and loads it into the
// viewport.
func (p *Pane) refresh() {
	s := theme.Current().S()

	var rendered string
	switch {
	case strings.TrimSpace(p.doc.Text) == "":
		rendered = s.PaneEmpty.Render("(empty document)")
	case p.doc.Kind == content.KindMarkdown:
		rendered = renderMarkdown(p.doc.Text, p.width)
	case p.doc.Kind == content.KindCode:
		name := p.doc.Path
		if name == "" {
			name = p.doc.Title
		}
		rendered = syntaxHighlight(p.doc.Text, filepath.Base(name))
	default:
		// lipgloss wraps long lines at the width on its own
		width := p.width
		if width < 1 {
			width = 1
		}
		rendered = s.PaneText.Width(width).Render(p.doc.Text)
	}

	p.viewport.SetContent(rendered)
	p.stale = false
}

// Draw renders the pane into its area.
func (p *Pane) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	p.area = area
	p.SetSize(area.Dx(), area.Dy())
	if p.stale {
		p.refresh()
	}

	DrawText(scr, area, p.viewport.View())

	if p.viewport.TotalLineCount() > p.viewport.Height() {
		DrawScrollIndicator(scr, area, p.viewport.ScrollPercent())
	}
	return nil
}

// Update forwards messages to the viewport, which owns the scroll keys.
func (p *Pane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// Scroll moves the viewport by the given number of lines, clamped to the
// content.
func (p *Pane) Scroll(lines int) {
	offset := p.viewport.YOffset() + lines
	if offset < 0 {
		offset = 0
	}
	if max := p.viewport.TotalLineCount() - p.viewport.Height(); offset > max {
		offset = max
		if offset < 0 {
			offset = 0
		}
	}
	p.viewport.SetYOffset(offset)
}

// Contains reports whether the coordinates fall inside the pane's last
// drawn area. Used to route wheel events.
func (p *Pane) Contains(x, y int) bool {
	return x >= p.area.Min.X && x < p.area.Max.X &&
		y >= p.area.Min.Y && y < p.area.Max.Y
}

// ScrollPercent returns the viewport scroll position in [0, 1].
func (p *Pane) ScrollPercent() float64 {
	return p.viewport.ScrollPercent()
}

// Overflows reports whether the rendered content is taller than the pane.
func (p *Pane) Overflows() bool {
	return p.viewport.TotalLineCount() > p.viewport.Height()
}

// Compile-time interface check
var _ Component = (*Pane)(nil)
