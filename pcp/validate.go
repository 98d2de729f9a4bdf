// Package pcp - instance validation.
//
// Validate accepts data of unknown shape (typically produced by DecodeJSON /
// DecodeYAML or by an upstream classifier) and produces a typed Instance.
//
// Accepted shapes:
//   - Instance, []Pair, Input, *Input
//   - []any / []map[string]any whose elements are records with "top"/"bottom"
//   - map[string]any with a "pairs" key holding one of the list shapes above
//
// Rules (checked per element, first violation wins):
//  1. the element is a record (map or Pair);
//  2. "top" is present and a string;
//  3. "bottom" is present and a string;
//  4. top and bottom are not both empty.
package pcp

// Validate checks input and returns the validated instance. On failure the
// error is a *ValidationError wrapping one of the package sentinels; no
// partial instance is returned.
//
// Complexity: O(k) in the number of pairs.
func Validate(input any) (Instance, error) {
	if input == nil {
		return nil, invalid(0, ErrNoPairs)
	}

	switch v := input.(type) {
	case Instance:
		return validatePairs(v)
	case []Pair:
		return validatePairs(v)
	case Input:
		return validatePairs(v.Pairs)
	case *Input:
		if v == nil {
			return nil, invalid(0, ErrNoPairs)
		}
		return validatePairs(v.Pairs)
	case []any:
		return validateRecords(v)
	case []map[string]any:
		var recs = make([]any, len(v))
		for i := range v {
			recs[i] = v[i]
		}
		return validateRecords(recs)
	case map[string]any:
		// Wrapper form: only a list under "pairs" is accepted.
		if inner, ok := v["pairs"]; ok && isList(inner) {
			return Validate(inner)
		}
	}

	return nil, invalid(0, ErrInvalidFormat)
}

// isList reports whether x is one of the list shapes Validate understands.
func isList(x any) bool {
	switch x.(type) {
	case []any, []map[string]any, []Pair, Instance:
		return true
	}

	return false
}

func validatePairs(pairs []Pair) (Instance, error) {
	if len(pairs) == 0 {
		return nil, invalid(0, ErrEmptyInstance)
	}
	var i int
	for i = range pairs {
		if pairs[i].Top == "" && pairs[i].Bottom == "" {
			return nil, invalid(i+1, ErrBothEmpty)
		}
	}
	out := make(Instance, len(pairs))
	copy(out, pairs)

	return out, nil
}

func validateRecords(recs []any) (Instance, error) {
	if len(recs) == 0 {
		return nil, invalid(0, ErrEmptyInstance)
	}
	var (
		out = make(Instance, 0, len(recs))
		p   Pair
		err error
	)
	for i, rec := range recs {
		if p, err = recordToPair(rec, i+1); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// recordToPair converts one list element; pos is its 1-based position.
func recordToPair(rec any, pos int) (Pair, error) {
	var top, bottom any
	var hasTop, hasBottom bool

	switch r := rec.(type) {
	case Pair:
		top, bottom, hasTop, hasBottom = r.Top, r.Bottom, true, true
	case *Pair:
		if r == nil {
			return Pair{}, invalid(pos, ErrNotARecord)
		}
		top, bottom, hasTop, hasBottom = r.Top, r.Bottom, true, true
	case map[string]any:
		top, hasTop = r["top"]
		bottom, hasBottom = r["bottom"]
	case map[string]string:
		top, hasTop = r["top"]
		bottom, hasBottom = r["bottom"]
	default:
		return Pair{}, invalid(pos, ErrNotARecord)
	}

	ts, ok := top.(string)
	if !hasTop || !ok {
		return Pair{}, invalid(pos, ErrMissingTop)
	}
	bs, ok := bottom.(string)
	if !hasBottom || !ok {
		return Pair{}, invalid(pos, ErrMissingBottom)
	}
	if ts == "" && bs == "" {
		return Pair{}, invalid(pos, ErrBothEmpty)
	}

	return Pair{Top: ts, Bottom: bs}, nil
}
