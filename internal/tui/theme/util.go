package theme

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// HexToColor converts a #RRGGBB string to a color.Color for APIs that
// take the standard interface rather than a lipgloss style.
func HexToColor(hex string) color.Color {
	r, g, b := parseHexColor(hex)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// ApplyGradient colors each rune of text with a left-to-right blend from
// colorA to colorB. Spaces are passed through unstyled.
func ApplyGradient(text, colorA, colorB string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}

	span := len(runes) - 1
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for i, r := range runes {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		c := InterpolateColor(colorA, colorB, float64(i)/float64(span))
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(string(r)))
	}
	return b.String()
}

// InterpolateColor blends between two hex colors based on position (0.0 to 1.0).
func InterpolateColor(colorA, colorB string, pos float64) string {
	r1, g1, b1 := parseHexColor(colorA)
	r2, g2, b2 := parseHexColor(colorB)

	r := uint8(float64(r1)*(1-pos) + float64(r2)*pos)
	g := uint8(float64(g1)*(1-pos) + float64(g2)*pos)
	b := uint8(float64(b1)*(1-pos) + float64(b2)*pos)

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// parseHexColor extracts RGB channels from a #RRGGBB string. Malformed
// input yields black rather than an error; gradients degrade, not crash.
func parseHexColor(hex string) (uint8, uint8, uint8) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b uint8
	if len(hex) == 6 {
		_, _ = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	}
	return r, g, b
}
