package cas

import (
	"github.com/symcalc/symcalc/token"
)

// place splits span on the top-level occurrences of op. Splitting on token.Mul also
// splits on token.ImplicitMul. With once set, only the first occurrence is split on.
// It returns nil if op does not occur at the top level.
func place(span []token.Token, op token.Operator, once bool) (segments [][]token.Token) {

	var depth, last int

	for i, t := range span {
		switch t := t.(type) {
		case token.Bracket:
			if t.IsOpen() {
				depth++
			} else {
				depth--
			}
		case token.Operator:
			if depth != 0 || (t != op && !(op == token.Mul && t == token.ImplicitMul)) {
				continue
			}
			segments = append(segments, span[last:i])
			last = i + 1
			if once {
				return append(segments, span[last:])
			}
		}
	}

	if last != 0 {
		segments = append(segments, span[last:])
	}

	return
}

// isInterior reports whether span is exactly one matched pair of round brackets.
func isInterior(span []token.Token) bool {

	if len(span) < 2 || span[0] != token.LeftRound || span[len(span)-1] != token.RightRound {
		return false
	}

	var depth int
	for i, t := range span {
		if b, ok := t.(token.Bracket); ok {
			switch b {
			case token.LeftRound:
				depth++
			case token.RightRound:
				depth--
			}
		}
		if depth == 0 && i != len(span)-1 {
			return false
		}
	}

	return true
}

// isConstant reports whether v never occurs in span.
func isConstant(span, v []token.Token) bool {
	return !token.Contains(span, v)
}

// isFunctionApplication reports whether span is a function marker followed by its bracketed argument.
func isFunctionApplication(span []token.Token) bool {
	if _, ok := span[0].(token.Func); !ok {
		return false
	}
	return len(span) > 1 && isInterior(span[1:])
}

// occurrences returns the start of every non-overlapping occurrence of v in span.
func occurrences(span, v []token.Token) (positions []int) {
	for i := 0; i+len(v) <= len(span); {
		if token.EqualSpan(span[i:i+len(v)], v) {
			positions = append(positions, i)
			i += len(v)
		} else {
			i++
		}
	}
	return
}
