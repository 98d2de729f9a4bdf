// Package pcpsearch is a small toolkit for exploring Post Correspondence
// Problem (PCP) instances: given dominoes (top, bottom), find a non-empty
// sequence of indices whose top and bottom concatenations are equal.
//
// PCP is undecidable, so the search is bounded: depth, length divergence and
// wall-clock time all cap the exploration, and a negative answer only means
// "nothing found within bounds".
//
// Layout:
//
//	pcp/              - validation, bounded search engine, step replay, batch solving
//	internal/config/  - YAML settings for the CLI
//	internal/logging/ - slog setup
//	cmd/pcpsolve/     - command-line front end
//	examples/         - runnable scenarios
//
// Quick example:
//
//	res := pcp.Solve([]pcp.Pair{{Top: "a", Bottom: "ab"}, {Top: "ba", Bottom: "a"}})
//	// res.Sequence == [0 1], res.TopResult == "aba"
//
//	go install github.com/katalvlaran/pcpsearch/cmd/pcpsolve@latest
package pcpsearch
