package pcp

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SolveBatch solves inputs independently and returns the results in input
// order. At most parallel solves run at once (parallel <= 0 means one per
// input). Cancelling ctx stops the in-flight searches at their next node;
// they report OutcomeTimeout.
func SolveBatch(ctx context.Context, inputs []any, parallel int, opts ...Option) []Result {
	results := make([]Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	// Caller options first so the group context always wins.
	perCall := append(append([]Option(nil), opts...), WithContext(gctx))
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			results[i] = SolveWithOptions(in, perCall...)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
