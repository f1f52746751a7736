package theme

import (
	"image/color"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestCatppuccinMocha_Palette(t *testing.T) {
	th := NewCatppuccinMocha()

	if th.Name != "catppuccin-mocha" {
		t.Fatalf("expected catppuccin-mocha, got %s", th.Name)
	}
	if !th.IsDark {
		t.Error("mocha should be a dark theme")
	}

	// Spot-check key colors against the upstream palette.
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Primary (Mauve)", th.Primary, "#cba6f7"},
		{"Secondary (Blue)", th.Secondary, "#89b4fa"},
		{"BgBase", th.BgBase, "#1e1e2e"},
		{"FgBase (Text)", th.FgBase, "#cdd6f4"},
		{"Error (Red)", th.Error, "#f38ba8"},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.expected)
		}
	}
}

func TestCatppuccinLatte_Palette(t *testing.T) {
	th := NewCatppuccinLatte()

	if th.Name != "catppuccin-latte" {
		t.Fatalf("expected catppuccin-latte, got %s", th.Name)
	}
	if th.IsDark {
		t.Error("latte should be a light theme")
	}
	if th.Primary != "#8839ef" {
		t.Errorf("Primary: got %q, want #8839ef", th.Primary)
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"catppuccin-latte", "catppuccin-latte"},
		{"latte", "catppuccin-latte"},
		{"light", "catppuccin-latte"},
		{"catppuccin-mocha", "catppuccin-mocha"},
		{"", "catppuccin-mocha"},
		{"solarized", "catppuccin-mocha"}, // unknown falls back to the default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ByName(tt.input)
			if got.Name != tt.expected {
				t.Errorf("ByName(%q) = %s, want %s", tt.input, got.Name, tt.expected)
			}
		})
	}
}

func TestStyles_BuiltOnce(t *testing.T) {
	th := NewCatppuccinMocha()

	first := th.S()
	second := th.S()
	if first != second {
		t.Error("S should return the same styles on every call")
	}
	if first.TabActive.Render("x") == "" {
		t.Error("styles should render without panicking")
	}
}

func TestIcons_BuiltOnceAndShared(t *testing.T) {
	th := NewCatppuccinMocha()

	first := th.Icons()
	second := th.Icons()
	if first != second {
		t.Error("Icons should return the same pair on every call")
	}
	if first.Normal == first.Hover {
		t.Error("the hover variant should render differently from normal")
	}
	if !strings.Contains(first.Normal, "×") || !strings.Contains(first.Hover, "×") {
		t.Error("both variants should contain the close glyph")
	}
}

func TestIcons_VariantsShareWidth(t *testing.T) {
	icons := NewCatppuccinMocha().Icons()

	if got := lipgloss.Width(icons.Normal); got != icons.Width() {
		t.Errorf("normal variant width = %d, want %d", got, icons.Width())
	}
	if got := lipgloss.Width(icons.Hover); got != icons.Width() {
		t.Errorf("hover variant width = %d, want %d", got, icons.Width())
	}
}

func TestSetAndCurrent(t *testing.T) {
	original := Current()
	defer Set(original)

	latte := NewCatppuccinLatte()
	Set(latte)

	if Current() != latte {
		t.Error("Current should return the theme passed to Set")
	}
}

func TestInterpolateColor(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		pos      float64
		expected string
	}{
		{"start", "#000000", "#ffffff", 0.0, "#000000"},
		{"end", "#000000", "#ffffff", 1.0, "#ffffff"},
		{"midpoint", "#000000", "#ffffff", 0.5, "#7f7f7f"},
		{"channels independent", "#ff0000", "#0000ff", 1.0, "#0000ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpolateColor(tt.a, tt.b, tt.pos)
			if got != tt.expected {
				t.Errorf("InterpolateColor(%s, %s, %v) = %s, want %s", tt.a, tt.b, tt.pos, got, tt.expected)
			}
		})
	}
}

func TestApplyGradient(t *testing.T) {
	if got := ApplyGradient("", "#000000", "#ffffff"); got != "" {
		t.Errorf("empty input should pass through, got %q", got)
	}

	// Spaces are left unstyled so the gradient does not paint gaps.
	out := ApplyGradient("a b", "#ff0000", "#0000ff")
	if !strings.Contains(out, " ") {
		t.Error("spaces should survive unstyled")
	}
}

func TestHexToColor(t *testing.T) {
	got := HexToColor("#cba6f7")
	want := color.RGBA{R: 0xcb, G: 0xa6, B: 0xf7, A: 0xff}
	if got != want {
		t.Errorf("HexToColor(#cba6f7) = %v, want %v", got, want)
	}

	// Malformed input degrades to black instead of failing.
	if got := HexToColor("oops"); got != (color.RGBA{A: 0xff}) {
		t.Errorf("malformed hex should yield black, got %v", got)
	}
}
