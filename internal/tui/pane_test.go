package tui

import (
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/require"

	"github.com/quirekit/quire/internal/tui/testfixtures"
)

// drawPane renders a pane into the given area and returns the frame.
func drawPane(p *Pane, area uv.Rectangle) string {
	canvas := uv.NewScreenBuffer(testfixtures.TestTermWidth, testfixtures.TestTermHeight)
	p.Draw(canvas, area)
	return canvas.Render()
}

func paneArea() uv.Rectangle {
	return uv.Rect(0, 0, testfixtures.TestTermWidth, 20)
}

func TestPane_RendersPlainText(t *testing.T) {
	t.Parallel()

	p := NewPane(testfixtures.PlainDoc())

	render := drawPane(p, paneArea())

	require.Contains(t, render, "plain fixture text")
	require.Contains(t, render, "with a second line")
}

func TestPane_RendersMarkdown(t *testing.T) {
	t.Parallel()

	p := NewPane(testfixtures.MarkdownDoc())

	render := drawPane(p, paneArea())

	require.Contains(t, render, "Guide", "heading text should survive markdown rendering")
	require.Contains(t, render, "first item")
}

func TestPane_RendersCode(t *testing.T) {
	t.Parallel()

	p := NewPane(testfixtures.CodeDoc())

	render := drawPane(p, paneArea())

	require.Contains(t, render, "package", "keywords should survive highlighting")
	require.Contains(t, render, "hello")
}

func TestPane_RendersEmptyPlaceholder(t *testing.T) {
	t.Parallel()

	doc := testfixtures.PlainDoc()
	doc.Text = "   \n"
	p := NewPane(doc)

	render := drawPane(p, paneArea())

	require.Contains(t, render, "(empty document)")
}

func TestPane_ScrollClampsToContent(t *testing.T) {
	t.Parallel()

	p := NewPane(testfixtures.LongPlainDoc(100))
	p.SetSize(80, 10)

	require.True(t, p.Overflows(), "100 lines should overflow a 10-row pane")
	require.Equal(t, 0, p.viewport.YOffset())

	p.Scroll(5)
	require.Equal(t, 5, p.viewport.YOffset())

	p.Scroll(-100)
	require.Equal(t, 0, p.viewport.YOffset(), "scrolling above the top clamps to 0")

	p.Scroll(100000)
	maxOffset := p.viewport.TotalLineCount() - p.viewport.Height()
	require.Equal(t, maxOffset, p.viewport.YOffset(), "scrolling past the end clamps to the last page")

	p.Scroll(3)
	require.Equal(t, maxOffset, p.viewport.YOffset(), "already at the end stays put")
}

func TestPane_ScrollPercent(t *testing.T) {
	t.Parallel()

	p := NewPane(testfixtures.LongPlainDoc(100))
	p.SetSize(80, 10)

	require.InDelta(t, 0.0, p.ScrollPercent(), 0.001, "fresh pane starts at the top")

	p.Scroll(100000)
	require.InDelta(t, 1.0, p.ScrollPercent(), 0.001, "clamped scroll ends at the bottom")
}

func TestPane_ShortContentDoesNotOverflow(t *testing.T) {
	t.Parallel()

	p := NewPane(testfixtures.PlainDoc())
	p.SetSize(80, 20)

	require.False(t, p.Overflows())

	// Scrolling short content is a no-op.
	p.Scroll(5)
	require.Equal(t, 0, p.viewport.YOffset())
}

func TestPane_ScrollIndicatorShownWhenOverflowing(t *testing.T) {
	t.Parallel()

	p := NewPane(testfixtures.LongPlainDoc(200))

	render := drawPane(p, paneArea())

	require.Contains(t, render, "0%", "overflowing panes show the scroll position")
}

func TestPane_Contains(t *testing.T) {
	t.Parallel()

	p := NewPane(testfixtures.PlainDoc())
	drawPane(p, uv.Rect(0, 1, testfixtures.TestTermWidth, 11))

	require.True(t, p.Contains(5, 5))
	require.True(t, p.Contains(0, 1))
	require.False(t, p.Contains(5, 0), "the tab row is outside the pane")
	require.False(t, p.Contains(5, 12), "the status bar is outside the pane")
	require.False(t, p.Contains(testfixtures.TestTermWidth, 5))
}

func TestPane_InvalidateForcesReRender(t *testing.T) {
	t.Parallel()

	doc := testfixtures.PlainDoc()
	p := NewPane(doc)
	area := paneArea()

	render := drawPane(p, area)
	require.Contains(t, render, "plain fixture text")

	// Mutating the document without Invalidate keeps the cached render.
	doc.Text = "replacement text\n"
	render = drawPane(p, area)
	require.Contains(t, render, "plain fixture text")
	require.NotContains(t, render, "replacement text")

	p.Invalidate()
	render = drawPane(p, area)
	require.Contains(t, render, "replacement text")
	require.NotContains(t, render, "plain fixture text")
}

func TestPane_Doc(t *testing.T) {
	t.Parallel()

	doc := testfixtures.PlainDoc()
	p := NewPane(doc)

	require.Same(t, doc, p.Doc())
}
