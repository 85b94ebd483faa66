package cas

import (
	"github.com/symcalc/symcalc/token"
)

// effectiveVariable returns the largest span around the first occurrence of v that wraps
// every occurrence of v in the same way: the same enclosing round brackets, each
// optionally preceded by the same function marker. Returns v itself when the occurrences
// are not uniformly wrapped.
func effectiveVariable(span, v []token.Token) []token.Token {

	positions := occurrences(span, v)
	if len(positions) == 0 {
		return v
	}

	first := positions[0]

	// left reports whether the token at distance i before every occurrence is the same and satisfies is.
	left := func(i int, is func(token.Token) bool) bool {
		if first <= i {
			return false
		}
		ref := span[first-i-1]
		for _, k := range positions {
			if t := span[k-i-1]; !is(t) || !token.Equal(t, ref) {
				return false
			}
		}
		return true
	}

	// right reports whether the token at distance j after the start of every occurrence is the same and satisfies is.
	right := func(j int, is func(token.Token) bool) bool {
		for _, k := range positions {
			if k+j >= len(span) {
				return false
			}
		}
		ref := span[first+j]
		for _, k := range positions {
			if t := span[k+j]; !is(t) || !token.Equal(t, ref) {
				return false
			}
		}
		return true
	}

	isLeftRound := func(t token.Token) bool { return t == token.LeftRound }
	isRightRound := func(t token.Token) bool { return t == token.RightRound }
	isFunc := func(t token.Token) bool { _, ok := t.(token.Func); return ok }

	i, j := 0, len(v)
	for left(i, isLeftRound) && right(j, isRightRound) {
		i++
		if left(i, isFunc) {
			i++
		}
		j++
	}

	return span[first-i : first+j]
}
