package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/quirekit/quire/internal/logger"
	"github.com/quirekit/quire/internal/tui/theme"
)

const (
	logoText1 = "█▀█ █ █ █ █▀█ █▀▀"
	logoText2 = "▀▀█ █▄█ █ █▀▄ ██▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quire [files...]",
	Short: "Terminal tabbed document viewer",
	Args:  cobra.ArbitraryArgs,
	RunE:  runView,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

quire opens files in a tabbed full-screen viewer. Markdown renders as
styled text, source code gets syntax highlighting, and everything else
shows as plain scrollable text. Tabs respond to the mouse: click to
select, and use the platform's secondary button for the tab menu.

Run with no arguments to open the built-in tour.`

	rootCmd.AddCommand(initCmd)
}
