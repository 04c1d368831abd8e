package lexer

import "strconv"

// parseUintOverflow reports whether digits (in the given base, no prefix)
// exceeds the signed 64-bit integer range, in which case the token must be
// promoted to a double literal per spec.md §4.2.2.
func parseUintOverflow(digits string, base int) (uint64, bool) {
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, true
	}
	if v > 1<<63-1 {
		return v, true
	}
	return v, false
}
