package pcp

import (
	"fmt"
	"time"
)

// Search policy defaults.
const (
	// MaxDepth is the maximum number of pairs concatenated along one branch.
	MaxDepth = 8

	// MaxDiff is the largest tolerated |len(top) - len(bottom)| (in runes).
	MaxDiff = 50

	// TimeLimit is the wall-clock budget of one solve.
	TimeLimit = 3000 * time.Millisecond

	// ManyPairsThreshold is the instance size above which the result message
	// carries a "many pairs" advisory.
	ManyPairsThreshold = 10
)

// ResultType tags every Result produced by this package.
const ResultType = "pcp"

// Pair is one PCP domino: a top and a bottom string, not both empty.
type Pair struct {
	Top    string `json:"top" yaml:"top"`
	Bottom string `json:"bottom" yaml:"bottom"`
}

// String renders the pair as "(top, bottom)".
func (p Pair) String() string { return fmt.Sprintf("(%s, %s)", p.Top, p.Bottom) }

// Instance is a validated, ordered list of pairs. Indices into it identify
// pairs in solution sequences.
type Instance []Pair

// Input is the wrapper shape accepted by Validate and Solve alongside a
// bare pair list.
type Input struct {
	Pairs []Pair `json:"pairs" yaml:"pairs"`
}

// Outcome classifies a Result.
type Outcome string

const (
	// OutcomeSolved: a witnessing sequence was found.
	OutcomeSolved Outcome = "solved"
	// OutcomeExhausted: the search finished within its depth/divergence bounds
	// without a match.
	OutcomeExhausted Outcome = "exhausted"
	// OutcomeTimeout: the time budget (or the caller's context) stopped the search.
	OutcomeTimeout Outcome = "timeout"
	// OutcomeInvalid: the instance was rejected before any search began.
	OutcomeInvalid Outcome = "invalid"
)

// PruneCounts attributes pruned branches to the rule that cut them.
type PruneCounts struct {
	Depth      int `json:"depth"`
	Divergence int `json:"divergence"`
	Revisit    int `json:"revisit"`
	Prefix     int `json:"prefix"`
}

// Stats are the counters accumulated over one solve.
type Stats struct {
	NodesExplored   int         `json:"nodesExplored"`
	BranchesPruned  int         `json:"branchesPruned"`
	MaxDepthReached int         `json:"maxDepthReached"`
	TimeMs          int64       `json:"timeMs"`
	TimeExceeded    bool        `json:"timeExceeded"`
	PrunedBy        PruneCounts `json:"prunedBy"`
}

// Step is one replayed pair of a witnessing sequence.
type Step struct {
	// Step is the 1-based position in the sequence.
	Step int `json:"step"`
	// PairIndex is the 0-based index of the pair in the instance.
	PairIndex int `json:"pairIndex"`
	// Pair is the literal "(top, bottom)" text of the chosen pair.
	Pair              string `json:"pair"`
	TopAccumulated    string `json:"topAccumulated"`
	BottomAccumulated string `json:"bottomAccumulated"`
	// Match is true when both accumulations are equal and non-empty.
	Match bool `json:"match"`
}

// Result is the structured answer of a solve. Stats is nil for rejected
// instances; Error is set only for them.
type Result struct {
	Type         string  `json:"type"`
	Outcome      Outcome `json:"outcome"`
	HasSolution  bool    `json:"hasSolution"`
	Sequence     []int   `json:"sequence"`
	TopResult    string  `json:"topResult"`
	BottomResult string  `json:"bottomResult"`
	Steps        []Step  `json:"steps"`
	Message      string  `json:"message"`
	Stats        *Stats  `json:"stats,omitempty"`
	Error        bool    `json:"error,omitempty"`
}

// Invalid reports whether the instance was rejected by validation, as opposed
// to searched without success.
func (r Result) Invalid() bool { return r.Outcome == OutcomeInvalid }
