package pcp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// advisory returns the "many pairs" prefix for large instances.
func advisory(n int) string {
	if n <= ManyPairsThreshold {
		return ""
	}

	return fmt.Sprintf("Warning: many pairs (%d); the search space grows exponentially and may be slow. ", n)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, ", ")
}

// solvedResult assembles the success value.
func solvedResult(inst Instance, seq []int, match string, stats Stats) Result {
	return Result{
		Type:         ResultType,
		Outcome:      OutcomeSolved,
		HasSolution:  true,
		Sequence:     seq,
		TopResult:    match,
		BottomResult: match,
		Steps:        ReconstructSteps(seq, inst),
		Message: advisory(len(inst)) + fmt.Sprintf(
			"Found a valid PCP solution using the sequence [%s]. The top and bottom strings match exactly: %q.",
			joinInts(seq), match),
		Stats: &stats,
	}
}

// exhaustedResult assembles the negative value, naming the bound that ended
// the search. cause is the context error that stopped it, if any.
func exhaustedResult(inst Instance, stats Stats, opts Options, cause error) Result {
	var (
		outcome = OutcomeExhausted
		why     string
	)
	switch {
	case cause != nil:
		outcome = OutcomeTimeout
		why = fmt.Sprintf("The search was cancelled (%v).", cause)
	case stats.TimeExceeded:
		outcome = OutcomeTimeout
		why = fmt.Sprintf("The time limit of %s was exceeded.", formatLimit(opts.TimeLimit))
	case stats.PrunedBy.Depth > 0:
		why = fmt.Sprintf("The maximum depth of %d was reached.", opts.MaxDepth)
	default:
		why = fmt.Sprintf("Every branch was pruned before reaching the maximum depth of %d.", opts.MaxDepth)
	}

	return Result{
		Type:     ResultType,
		Outcome:  outcome,
		Sequence: []int{},
		Steps:    []Step{},
		Message: advisory(len(inst)) + fmt.Sprintf(
			"No solution found up to depth %d. %s This does not imply that no solution exists, "+
				"since PCP is undecidable. Explored %d nodes and pruned %d branches.",
			stats.MaxDepthReached, why, stats.NodesExplored, stats.BranchesPruned),
		Stats: &stats,
	}
}

// invalidResult assembles the rejection value. It carries no stats.
func invalidResult(err error) Result {
	msg := err.Error()
	var ve *ValidationError
	if errors.As(err, &ve) {
		msg = ve.Reason()
	}

	return Result{
		Type:     ResultType,
		Outcome:  OutcomeInvalid,
		Sequence: []int{},
		Steps:    []Step{},
		Message:  "Error: " + msg,
		Error:    true,
	}
}

func formatLimit(d time.Duration) string {
	if d == 0 {
		return "unlimited"
	}

	return d.String()
}
