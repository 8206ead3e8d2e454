package main

import (
	"imgsort/internal/log"
	"imgsort/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [directory]",
		Short: "Sort images in the terminal",
		Long:  `Open the terminal interface on a folder. Log lines go to a file while it runs.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts, args)
		},
	}
}

func runTUI(opts *options, args []string) error {
	opts.interactiveLogging()

	session, w, err := opts.newSession(args)
	if err != nil {
		return err
	}
	if w != nil {
		defer w.Stop()
	}

	model := tui.New(session, opts.cfg, w)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.LogWithError(err).Error("Terminal interface failed")
		return err
	}
	return nil
}
