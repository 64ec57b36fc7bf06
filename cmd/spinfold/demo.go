package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spinfold/internal/logger"
	"github.com/alexisbeaulieu97/spinfold/internal/theme"
	"github.com/alexisbeaulieu97/spinfold/internal/tui"
)

func newDemoCmd(log *logger.Logger, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive button gallery",
		Long:  `Launch a gallery of fold-out buttons at several scales to exercise hovering, toggling, editing and live restyling.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(log, flags)
		},
	}

	return cmd
}

func runDemo(log *logger.Logger, flags *rootFlags) error {
	scale := flags.scale
	var overrides theme.Overrides

	if flags.themePath != "" {
		cfg, err := theme.LoadFile(flags.themePath)
		if err != nil {
			log.Error(err, "theme file rejected")
			return fmt.Errorf("failed to load theme: %w", err)
		}
		overrides = cfg.Overrides
		scale *= cfg.Scale
	}

	model, err := tui.NewModel(log, overrides, scale)
	if err != nil {
		return fmt.Errorf("failed to build demo: %w", err)
	}

	log.Info("launching demo")
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "demo exited with error")
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}
