package tui

import uv "github.com/charmbracelet/ultraviolet"

// Layout dimensions
const (
	// TabsHeight is the height of the tab row in rows
	TabsHeight = 1
	// StatusHeight is the height of the status bar in rows
	StatusHeight = 1
)

// Layout defines the rectangular regions for all UI components
type Layout struct {
	Area    uv.Rectangle
	Tabs    uv.Rectangle
	Content uv.Rectangle
	Status  uv.Rectangle
}

// CalculateLayout computes the layout rectangles based on terminal dimensions
func CalculateLayout(width, height int) Layout {
	// Create the full area
	area := uv.Rectangle{
		Max: uv.Position{X: width, Y: height},
	}

	// Split vertically: tab row | content+status
	tabsRect, rest := uv.SplitVertical(area, uv.Fixed(TabsHeight))

	// Split the remainder: content | status
	contentHeight := rest.Dy() - StatusHeight
	if contentHeight < 0 {
		contentHeight = 0
	}
	contentRect, statusRect := uv.SplitVertical(rest, uv.Fixed(contentHeight))

	return Layout{
		Area:    area,
		Tabs:    tabsRect,
		Content: contentRect,
		Status:  statusRect,
	}
}
