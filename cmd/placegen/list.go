package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bagtoad/placegen/internal/batch"
	"github.com/bagtoad/placegen/internal/placeholder"
)

func newListCmd(a *app) *cobra.Command {
	var themes bool

	cmd := &cobra.Command{
		Use:   "list [batch...]",
		Short: "List batches and the images they generate",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if themes {
				fmt.Fprintln(out, strings.Join(placeholder.ThemeNames(), "\n"))
				return nil
			}

			selected, err := batch.Select(a.batches, args)
			if err != nil {
				return err
			}

			gen := a.generator()
			for _, b := range selected {
				fmt.Fprintf(out, "%s/  %d images  label %s\n", b.Name, len(b.Images), b.Placement)
				bgen := gen.WithPolicy(b.Placement, b.Fallback)
				for _, req := range b.Images {
					style := "?"
					if t, err := bgen.Theme(req); err == nil {
						style = t.Name
					}
					fmt.Fprintf(out, "  %s  %dx%d  %s  %q\n", req.Path, req.Width, req.Height, style, req.Label)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&themes, "themes", false, "list the available themes instead")
	return cmd
}
