// Package testfixtures provides shared fixtures and render helpers for the
// TUI tests. Importing it pins the lipgloss color profile, so rendered
// output is stable across CI and developer terminals.
package testfixtures

import (
	"os"
	"path/filepath"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
)

// Initialize test environment
func init() {
	// Ascii profile disables color output for consistent rendering across
	// CI/platforms.
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// Render draws onto a fresh screen buffer of the canonical test size and
// returns the rendered frame. This consolidates the common pattern of:
//
//	canvas := uv.NewScreenBuffer(TestTermWidth, TestTermHeight)
//	component.Draw(canvas, canvas.Bounds())
//	canvas.Render()
func Render(renderFn func(canvas uv.ScreenBuffer)) string {
	canvas := uv.NewScreenBuffer(TestTermWidth, TestTermHeight)
	renderFn(canvas)
	return canvas.Render()
}

// WriteTempDoc writes text to a file under a test temp dir and returns its
// path. Used by tests that exercise the load and reload paths.
func WriteTempDoc(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("failed to write temp doc %s: %v", name, err)
	}
	return path
}
