package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/quirekit/quire/internal/tui/theme"
)

// DrawText renders plain text at a position
func DrawText(scr uv.Screen, area uv.Rectangle, text string) {
	uv.NewStyledString(text).Draw(scr, area)
}

// DrawStyled renders lipgloss-styled content at a position
func DrawStyled(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, text string) {
	content := style.Width(area.Dx()).Height(area.Dy()).Render(text)
	uv.NewStyledString(content).Draw(scr, area)
}

// FillArea clears an area with a styled background
func FillArea(scr uv.Screen, area uv.Rectangle, style lipgloss.Style) {
	fill := style.Width(area.Dx()).Height(area.Dy()).Render("")
	uv.NewStyledString(fill).Draw(scr, area)
}

// DrawScrollIndicator renders a scroll position indicator
func DrawScrollIndicator(scr uv.Screen, area uv.Rectangle, percent float64) {
	indicator := fmt.Sprintf(" %d%% ", int(percent*100))

	// Position at bottom-right of area
	indicatorArea := uv.Rectangle{
		Min: uv.Position{X: area.Max.X - len(indicator), Y: area.Max.Y - 1},
		Max: uv.Position{X: area.Max.X, Y: area.Max.Y},
	}

	DrawStyled(scr, indicatorArea, theme.Current().S().ScrollIndicator, indicator)
}
