package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"noticegen/internal/batch"
)

func newBatchCommand(a *app) *cobra.Command {
	var (
		outDir   string
		parallel int
	)
	cmd := &cobra.Command{
		Use:   "batch --out dir files...",
		Short: "Render one notice per data file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("parallel") {
				parallel = a.cfg.Output.Parallel
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			rep, err := batch.Run(cmd.Context(), a.renderer, args, outDir, parallel)
			w := cmd.OutOrStdout()
			for _, r := range rep.Results {
				if r.Err != nil {
					fmt.Fprintf(w, "FAIL %s: %v\n", r.Input, r.Err)
					continue
				}
				fmt.Fprintf(w, "ok   %s -> %s\n", r.Input, r.Output)
			}
			if err != nil {
				return err
			}
			if n := rep.Failed(); n > 0 {
				return fmt.Errorf("%d of %d notices failed", n, len(rep.Results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "output directory")
	cmd.Flags().IntVar(&parallel, "parallel", 4, "renders in flight (default from config)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
