package main

import (
	"fmt"

	"imgsort/internal/errors"
	"imgsort/internal/preview"
	"imgsort/internal/source"

	"github.com/spf13/cobra"
)

func newScanCmd(opts *options) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "List the images a sorting session would show",
		Long:  `List the eligible images of a folder in session order, with their size, dimensions and camera facts.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := opts.sourceDir(args)
			if err != nil {
				return err
			}
			if dir == "" {
				return fmt.Errorf("no directory given and no source configured")
			}

			set := source.New()
			if err := set.SetDirectory(dir); err != nil {
				return errors.Wrapf(err, "cannot scan %s", dir)
			}

			out := cmd.OutOrStdout()
			if !jsonOutput {
				fmt.Fprintln(out, primaryText(fmt.Sprintf("%s (%d images)", set.Directory(), set.Count())))
			}
			for i := 1; i <= set.Count(); i++ {
				path, ok := set.Path(i)
				if !ok {
					break
				}
				info, err := preview.Describe(path)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), errorText(err.Error()))
					continue
				}
				if jsonOutput {
					fmt.Fprintln(out, info.ToJSON())
					continue
				}
				fmt.Fprintf(out, "%s  %s\n", info.Name(), dimText(info.Summary()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "print one JSON object per image")
	return cmd
}
