package pcp

import "regexp"

// pairPattern matches "(x,y)" tuples of letters and digits, tolerating
// whitespace around the members.
var pairPattern = regexp.MustCompile(`(?i)\(\s*([a-z0-9]+)\s*,\s*([a-z0-9]+)\s*\)`)

// ParsePairs extracts pairs written as "(top,bottom)" from text, in order of
// appearance, e.g. "Solve the PCP: (a,ab), (ba,a), (aba,b)." It returns
// ErrNoPairs if the text holds none.
func ParsePairs(text string) ([]Pair, error) {
	matches := pairPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, ErrNoPairs
	}
	pairs := make([]Pair, len(matches))
	for i, m := range matches {
		pairs[i] = Pair{Top: m[1], Bottom: m[2]}
	}

	return pairs, nil
}
