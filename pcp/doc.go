// Package pcp implements a bounded backtracking search for the Post
// Correspondence Problem (PCP).
//
// What:
//
//   - Validate: turns untyped external data (decoded JSON/YAML, a bare pair
//     list or a {"pairs": [...]} wrapper) into a typed Instance, rejecting
//     malformed input with a *ValidationError that names the 1-based position
//     of the offending pair.
//   - Solve: depth-first search over pair-index sequences with four pruning
//     rules (depth, length divergence, revisited state, prefix compatibility)
//     and a cooperative wall-clock budget.
//   - ReconstructSteps: replays a witnessing sequence into per-step snapshots.
//   - SolveBatch: runs independent solves in parallel.
//
// Policy:
//
//   - MaxDepth = 8, MaxDiff = 50, TimeLimit = 3s (see DefaultOptions).
//   - Pairs are tried in index order; the first sequence reaching a match is
//     returned, so results are deterministic for a fixed instance ordering.
//   - A negative result means "not found within bounds". PCP is undecidable and
//     the engine never claims that no solution exists.
//
// Errors:
//
//   - Solve never returns a Go error: validation failures, exhaustion and
//     timeouts are all reported as data on Result (see Outcome).
//   - Validate and SolveInstance expose typed errors for Go callers; use
//     errors.Is with ErrNoPairs, ErrInvalidFormat, ErrEmptyInstance,
//     ErrNotARecord, ErrMissingTop, ErrMissingBottom, ErrBothEmpty.
//
// Complexity:
//
//   - Time:   O(k^D) node visits in the worst case (k = #pairs, D = MaxDepth),
//     each doing O(L) string work where L is the accumulated length.
//   - Memory: O(D) stack frames + O(#visited states) for the revisit set.
//
// Concurrency:
//
//   - Every solve owns its visited set and counters; nothing is shared across
//     calls, so concurrent solves need no locking.
package pcp
