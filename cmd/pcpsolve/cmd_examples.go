package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pcpsearch/pcp"
)

func newExamplesCmd(a *app) *cobra.Command {
	var (
		solve  bool
		search searchFlags
	)
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List (or solve) the built-in PCP examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := search.apply(cmd, a.cfg)
			if err != nil {
				return err
			}
			examples := pcp.Examples()
			out := cmd.OutOrStdout()

			if !solve {
				for _, ex := range examples {
					fmt.Fprintf(out, "%-14s %s\n", ex.Name, ex.Text)
				}
				return nil
			}

			inputs := make([]any, len(examples))
			for i, ex := range examples {
				inputs[i] = ex.Pairs
			}
			opts := append(cfg.SearchOptions(), pcp.WithLogger(a.log))
			results := pcp.SolveBatch(cmd.Context(), inputs, cfg.Batch.Parallel, opts...)

			named := make([]namedResult, len(examples))
			for i, ex := range examples {
				named[i] = namedResult{Name: ex.Name, Result: results[i]}
			}

			return renderNamed(out, cfg.Output.Format, named)
		},
	}
	cmd.Flags().BoolVar(&solve, "solve", false, "Solve every example instead of listing them")
	search.register(cmd)

	return cmd
}
