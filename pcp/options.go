package pcp

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Option configures a solve. Use with SolveWithOptions(input, opts...).
type Option func(*Options)

// Options holds the search policy. Solve always runs with DefaultOptions();
// overriding is meant for tooling and tests.
type Options struct {
	// Ctx allows the caller to stop a search early. It is polled at the same
	// cooperative point as the time budget.
	Ctx context.Context

	// MaxDepth bounds the number of pairs in a candidate sequence.
	MaxDepth int

	// MaxDiff bounds |len(top) - len(bottom)| of an accumulation.
	MaxDiff int

	// TimeLimit is the wall-clock budget. Zero disables it.
	TimeLimit time.Duration

	// Now is the clock used for the budget and TimeMs.
	Now func() time.Time

	// Logger receives one Debug record per solve.
	Logger *slog.Logger
}

// DefaultOptions returns the fixed search policy:
//   - Background context
//   - MaxDepth = 8, MaxDiff = 50, TimeLimit = 3s
//   - time.Now as clock
//   - a logger that discards everything
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxDepth:  MaxDepth,
		MaxDiff:   MaxDiff,
		TimeLimit: TimeLimit,
		Now:       time.Now,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth overrides the depth bound. Panics if limit < 0.
func WithMaxDepth(limit int) Option {
	if limit < 0 {
		panic("pcp: WithMaxDepth requires limit >= 0")
	}

	return func(o *Options) { o.MaxDepth = limit }
}

// WithMaxDiff overrides the divergence bound. Panics if diff < 0.
func WithMaxDiff(diff int) Option {
	if diff < 0 {
		panic("pcp: WithMaxDiff requires diff >= 0")
	}

	return func(o *Options) { o.MaxDiff = diff }
}

// WithTimeLimit overrides the wall-clock budget; 0 means unlimited.
// Panics if d < 0.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("pcp: WithTimeLimit requires d >= 0")
	}

	return func(o *Options) { o.TimeLimit = d }
}

// WithClock replaces time.Now. A nil fn has no effect.
func WithClock(fn func() time.Time) Option {
	return func(o *Options) {
		if fn != nil {
			o.Now = fn
		}
	}
}

// WithLogger installs a logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
