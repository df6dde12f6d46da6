package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bagtoad/placegen/internal/batch"
	"github.com/bagtoad/placegen/internal/scanner"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [batch...]",
		Short: "Check that generated images exist with the expected size",
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := batch.Select(a.batches, args)
			if err != nil {
				return err
			}

			reqs := batch.Requests(selected, a.cfg.Root)
			problems := scanner.Verify(reqs)
			out := cmd.OutOrStdout()
			for _, p := range problems {
				fmt.Fprintln(out, p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d of %d images failed verification", len(problems), len(reqs))
			}
			fmt.Fprintf(out, "All %d images present.\n", len(reqs))
			return nil
		},
	}
}
