package pcp

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Callers branch with errors.Is; positional context is
// carried by *ValidationError.
var (
	// ErrNoPairs indicates that no input was provided at all (nil), or that a
	// text contained no "(x,y)" pairs.
	ErrNoPairs = errors.New("pcp: no pairs provided")

	// ErrInvalidFormat indicates an input that is neither a pair list nor a
	// wrapper with a "pairs" list.
	ErrInvalidFormat = errors.New("pcp: invalid input format, expected a list of pairs")

	// ErrEmptyInstance indicates a pair list of length zero.
	ErrEmptyInstance = errors.New("pcp: at least one pair is required")

	// ErrNotARecord indicates a list element that is not an object.
	ErrNotARecord = errors.New("pcp: not a valid object")

	// ErrMissingTop indicates a missing or non-string "top" field.
	ErrMissingTop = errors.New("pcp: missing or non-string 'top' field")

	// ErrMissingBottom indicates a missing or non-string "bottom" field.
	ErrMissingBottom = errors.New("pcp: missing or non-string 'bottom' field")

	// ErrBothEmpty indicates a pair whose top and bottom are both empty.
	ErrBothEmpty = errors.New("pcp: top and bottom cannot both be empty")
)

// ValidationError reports why an instance was rejected. Position is the
// 1-based index of the offending pair, or 0 when the whole input is at fault.
type ValidationError struct {
	Position int
	Err      error
}

func (e *ValidationError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("pcp: pair %d: %s", e.Position, reason(e.Err))
	}

	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Reason is the human-readable message without the package prefix.
func (e *ValidationError) Reason() string {
	return strings.TrimPrefix(e.Error(), "pcp: ")
}

func reason(err error) string { return strings.TrimPrefix(err.Error(), "pcp: ") }

func invalid(pos int, err error) *ValidationError {
	return &ValidationError{Position: pos, Err: err}
}
