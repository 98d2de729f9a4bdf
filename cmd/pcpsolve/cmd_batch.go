package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pcpsearch/pcp"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		parallel int
		search   searchFlags
	)
	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Search several PCP instances concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			cfg, err := search.apply(cmd, a.cfg)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("parallel") {
				cfg.Batch.Parallel = parallel
			}

			inputs := make([]any, len(files))
			for i, f := range files {
				if inputs[i], err = readInstance(f, cmd.InOrStdin()); err != nil {
					return err
				}
			}

			a.log.Debug("batch started", slog.Int("instances", len(files)), slog.Int("parallel", cfg.Batch.Parallel))
			opts := append(cfg.SearchOptions(), pcp.WithLogger(a.log))
			results := pcp.SolveBatch(cmd.Context(), inputs, cfg.Batch.Parallel, opts...)

			named := make([]namedResult, len(files))
			rejected := 0
			for i := range files {
				named[i] = namedResult{Name: files[i], Result: results[i]}
				if results[i].Invalid() {
					rejected++
				}
			}
			if err = renderNamed(cmd.OutOrStdout(), cfg.Output.Format, named); err != nil {
				return err
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d: %w", rejected, len(files), errRejected)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", 0, "Concurrent solves; 0 means one per file (overrides config)")
	search.register(cmd)

	return cmd
}
