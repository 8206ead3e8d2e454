package main

import (
	"fmt"

	"imgsort/internal/gui"

	"github.com/spf13/cobra"
)

func newGUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gui [directory]",
		Short: "Sort images in a desktop window",
		Long:  `Open the graphical interface with an image preview and a button per shortcut.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.IsGUIAvailable() {
				return fmt.Errorf("this build has no graphical interface; use 'imgsort tui'")
			}

			session, w, err := opts.newSession(args)
			if err != nil {
				return err
			}
			if w != nil {
				defer w.Stop()
			}
			return gui.StartGUI(opts.cfg, session, w)
		},
	}
}
