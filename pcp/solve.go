// Package pcp - entry points.
//
// Solve is the data-only API: every outcome (rejected instance, solution,
// exhaustion, timeout) is a Result. SolveInstance is the typed API for Go
// callers that already hold an Instance and prefer an error for rejection.
package pcp

import "log/slog"

// Solve validates input and searches it under the fixed policy of
// DefaultOptions. It never panics and never returns a Go error.
func Solve(input any) Result {
	return SolveWithOptions(input)
}

// SolveWithOptions is Solve with policy overrides.
func SolveWithOptions(input any, opts ...Option) Result {
	o := resolve(opts)
	inst, err := Validate(input)
	if err != nil {
		o.Logger.Debug("pcp instance rejected", slog.String("reason", err.Error()))
		return invalidResult(err)
	}

	return runSearch(inst, o)
}

// SolveInstance searches an already typed instance. The instance is still
// validated; on rejection the returned Result is the invalid value and err
// is the *ValidationError.
func SolveInstance(inst Instance, opts ...Option) (Result, error) {
	valid, err := Validate(inst)
	if err != nil {
		return invalidResult(err), err
	}

	return runSearch(valid, resolve(opts)), nil
}

// runSearch runs the engine on a validated instance and formats the outcome.
func runSearch(valid Instance, o Options) Result {
	e := newEngine(valid, o)
	found := e.run()

	stats := e.stats
	stats.TimeMs = o.Now().Sub(e.start).Milliseconds()

	var res Result
	if found {
		res = solvedResult(valid, e.solution, e.match, stats)
	} else {
		res = exhaustedResult(valid, stats, o, e.cause)
	}

	o.Logger.Debug("pcp search finished",
		slog.String("outcome", string(res.Outcome)),
		slog.Int("pairs", len(valid)),
		slog.Int("nodes", stats.NodesExplored),
		slog.Int("pruned", stats.BranchesPruned),
		slog.Int("max_depth", stats.MaxDepthReached),
		slog.Int64("time_ms", stats.TimeMs),
	)

	return res
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return o
}
