package theme

// NewCatppuccinLatte creates the light theme from the Catppuccin Latte
// palette.
func NewCatppuccinLatte() *Theme {
	return &Theme{
		Name:   "catppuccin-latte",
		IsDark: false,

		// Semantic colors
		Primary:   "#8839ef", // Mauve
		Secondary: "#1e66f5", // Blue

		// Background hierarchy
		BgBase:    "#eff1f5", // Base
		BgMantle:  "#e6e9ef", // Mantle
		BgSurface: "#ccd0da", // Surface0
		BgOverlay: "#bcc0cc", // Surface1

		// Foreground hierarchy
		FgMuted:  "#9ca0b0", // Overlay0
		FgSubtle: "#6c6f85", // Subtext0
		FgBase:   "#4c4f69", // Text
		FgBright: "#dc8a78", // Rosewater

		// Status colors
		Success: "#40a02b", // Green
		Warning: "#df8e1d", // Yellow
		Error:   "#d20f39", // Red
		Info:    "#04a5e5", // Sky
	}
}
