// Package pcp - bounded depth-first search engine.
//
// The engine enumerates pair-index sequences depth-first, lowest index first,
// and stops at the first node whose accumulations are equal and non-empty.
//
// Per node, in order:
//  1. Budget check: elapsed > TimeLimit (or ctx done) aborts the whole search.
//  2. Accounting: NodesExplored++, MaxDepthReached = max(MaxDepthReached, depth).
//  3. Success test: top == bottom != "".
//  4. Pruning: depth >= MaxDepth; |len(top)-len(bottom)| > MaxDiff;
//     (top, bottom, depth) already visited (otherwise it is recorded).
//  5. Expansion: for each pair, children whose accumulations are not prefix
//     compatible are pruned; the others are searched recursively.
//
// Prefix pruning is safe: the search only appends, so two strings that
// disagree at some position can never become equal later.
package pcp

import (
	"context"
	"time"
	"unicode/utf8"
)

// stateKey identifies a search node for revisit pruning.
type stateKey struct {
	top, bottom string
	depth       int
}

// engine holds all state of one solve. A fresh engine is built per call.
type engine struct {
	// Policy
	pairs    Instance
	maxDepth int
	maxDiff  int
	limit    time.Duration

	// Budget
	ctx   context.Context
	now   func() time.Time
	start time.Time

	// Rune lengths of pairs[i].Top / pairs[i].Bottom.
	topLen    []int
	bottomLen []int

	// Search state
	visited map[stateKey]struct{}
	path    []int
	stats   Stats
	aborted bool
	cause   error // context error that aborted the search

	// Witness
	solution []int
	match    string
}

func newEngine(inst Instance, opts Options) *engine {
	e := &engine{
		pairs:     inst,
		maxDepth:  opts.MaxDepth,
		maxDiff:   opts.MaxDiff,
		limit:     opts.TimeLimit,
		ctx:       opts.Ctx,
		now:       opts.Now,
		topLen:    make([]int, len(inst)),
		bottomLen: make([]int, len(inst)),
		visited:   make(map[stateKey]struct{}),
		path:      make([]int, 0, opts.MaxDepth),
	}
	for i, p := range inst {
		e.topLen[i] = utf8.RuneCountInString(p.Top)
		e.bottomLen[i] = utf8.RuneCountInString(p.Bottom)
	}

	return e
}

// run searches from the empty accumulation and reports whether a witness
// was found.
func (e *engine) run() bool {
	e.start = e.now()

	return e.search("", "", 0, 0, 0)
}

// expired is the cooperative cancellation point.
func (e *engine) expired() bool {
	if e.ctx != nil {
		if err := e.ctx.Err(); err != nil {
			e.cause = err
			return true
		}
	}

	return e.limit > 0 && e.now().Sub(e.start) > e.limit
}

func (e *engine) prune(counter *int) {
	e.stats.BranchesPruned++
	*counter++
}

// search visits the node (top, bottom, depth). tl and bl are the rune
// lengths of top and bottom.
func (e *engine) search(top, bottom string, tl, bl, depth int) bool {
	if e.expired() {
		e.stats.TimeExceeded = true
		e.aborted = true
		return false
	}

	e.stats.NodesExplored++
	if depth > e.stats.MaxDepthReached {
		e.stats.MaxDepthReached = depth
	}

	if top == bottom && top != "" {
		e.solution = append([]int(nil), e.path...)
		e.match = top
		return true
	}

	if depth >= e.maxDepth {
		e.prune(&e.stats.PrunedBy.Depth)
		return false
	}
	if diff := tl - bl; diff > e.maxDiff || -diff > e.maxDiff {
		e.prune(&e.stats.PrunedBy.Divergence)
		return false
	}
	key := stateKey{top: top, bottom: bottom, depth: depth}
	if _, seen := e.visited[key]; seen {
		e.prune(&e.stats.PrunedBy.Revisit)
		return false
	}
	e.visited[key] = struct{}{}

	var (
		i                 int
		nextTop, nextBott string
	)
	for i = range e.pairs {
		nextTop = top + e.pairs[i].Top
		nextBott = bottom + e.pairs[i].Bottom
		if !prefixCompatible(nextTop, nextBott) {
			e.prune(&e.stats.PrunedBy.Prefix)
			continue
		}

		e.path = append(e.path, i)
		if e.search(nextTop, nextBott, tl+e.topLen[i], bl+e.bottomLen[i], depth+1) {
			return true
		}
		e.path = e.path[:len(e.path)-1]

		if e.aborted {
			return false
		}
	}

	return false
}
