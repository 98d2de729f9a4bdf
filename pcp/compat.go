package pcp

import "strings"

// prefixCompatible reports whether a and b can still become equal by
// appending characters to both: one of them is empty, or the shorter one is
// a prefix of the longer one (equal lengths therefore require a == b).
func prefixCompatible(a, b string) bool {
	if a == "" || b == "" {
		return true
	}
	if len(a) == len(b) {
		return a == b
	}
	if len(a) < len(b) {
		return strings.HasPrefix(b, a)
	}

	return strings.HasPrefix(a, b)
}
