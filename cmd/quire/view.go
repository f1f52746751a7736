package main

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/quirekit/quire/internal/config"
	"github.com/quirekit/quire/internal/content"
	"github.com/quirekit/quire/internal/logger"
	"github.com/quirekit/quire/internal/tui"
	"github.com/quirekit/quire/internal/tui/theme"
)

var viewFlags struct {
	theme    string
	platform string
	closable bool
}

func init() {
	rootCmd.Flags().StringVarP(&viewFlags.theme, "theme", "t", "", "Color theme (catppuccin-mocha or catppuccin-latte)")
	rootCmd.Flags().StringVarP(&viewFlags.platform, "platform", "p", "", "Mouse button convention: auto, mac, or other")
	rootCmd.Flags().BoolVar(&viewFlags.closable, "closable", true, "Render close affordances on tabs")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file and environment
	if cmd.Flags().Changed("theme") {
		cfg.Theme = viewFlags.theme
	}
	if cmd.Flags().Changed("platform") {
		cfg.Platform = viewFlags.platform
	}
	if cmd.Flags().Changed("closable") {
		cfg.Closable = viewFlags.closable
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Configure(cfg.LogLevel, cfg.LogFile)
	theme.Set(theme.ByName(cfg.Theme))

	// Open the named files, or the built-in tour with none
	var docs []*content.Document
	for _, arg := range args {
		doc, err := content.Load(arg)
		if err != nil {
			return fmt.Errorf("opening %s: %w", arg, err)
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		docs = content.Builtin(version, config.GlobalPath())
	}

	family := tui.ResolveFamily(cfg.Platform)
	logger.Info("starting: %d documents, theme=%s, family=%s", len(docs), cfg.Theme, family)

	app := tui.NewApp(docs, cfg.Closable, family)
	if _, err := tea.NewProgram(app).Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
