// Package token defines the closed vocabulary of tokens exchanged between the parser,
// the evaluator and the equation solver.
package token

import (
	"strings"

	"github.com/symcalc/symcalc/utils/bignum"
)

// Token is one element of a normalized expression.
// The set of variants is closed: Num, Vector, Operator, Bracket, Comma, Func and Name.
type Token interface {
	String() string
	isToken()
}

// Num is a numeric literal.
type Num struct {
	Value *bignum.Complex
}

// NewNum returns a numeric literal holding x at prec bits of precision.
// See [bignum.ToComplex] for the accepted types.
func NewNum(x interface{}, prec uint) Num {
	return Num{Value: bignum.ToComplex(x, prec)}
}

// Vector is a fixed-length list of numeric values.
type Vector struct {
	Values []*bignum.Complex
}

// Operator is an arithmetic operator.
type Operator int

const (
	Add = Operator(iota)
	Sub
	Mul
	// ImplicitMul is the multiplication expressed by juxtaposition, e.g. 2x.
	ImplicitMul
	Div
	Pow
)

// Bracket is a grouping delimiter.
type Bracket int

const (
	LeftRound = Bracket(iota)
	RightRound
	LeftCurly
	RightCurly
)

// Comma separates function arguments and vector elements.
type Comma struct{}

// Func marks the application of the named function to the bracketed span that follows.
type Func string

// Name is a bare identifier: an unknown or an unresolved variable.
type Name string

func (Num) isToken()      {}
func (Vector) isToken()   {}
func (Operator) isToken() {}
func (Bracket) isToken()  {}
func (Comma) isToken()    {}
func (Func) isToken()     {}
func (Name) isToken()     {}

func (t Num) String() string {
	return t.Value.String()
}

func (t Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range t.Values {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (t Operator) String() string {
	switch t {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case ImplicitMul:
		return ""
	case Div:
		return "/"
	case Pow:
		return "^"
	}
	return "?"
}

func (t Bracket) String() string {
	switch t {
	case LeftRound:
		return "("
	case RightRound:
		return ")"
	case LeftCurly:
		return "{"
	case RightCurly:
		return "}"
	}
	return "?"
}

func (Comma) String() string {
	return ","
}

func (t Func) String() string {
	return string(t)
}

func (t Name) String() string {
	return string(t)
}

// IsOpen reports whether b opens a group.
func (b Bracket) IsOpen() bool {
	return b == LeftRound || b == LeftCurly
}

// IsMultiplication reports whether t is Mul or ImplicitMul.
func IsMultiplication(t Token) bool {
	op, ok := t.(Operator)
	return ok && (op == Mul || op == ImplicitMul)
}

// Equal reports whether a and b are the same token.
// Numeric literals compare by value.
func Equal(a, b Token) bool {
	switch a := a.(type) {
	case Num:
		b, ok := b.(Num)
		return ok && a.Value.Equal(b.Value)
	case Vector:
		b, ok := b.(Vector)
		if !ok || len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !a.Values[i].Equal(b.Values[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// EqualSpan reports whether a and b hold the same tokens in the same order.
func EqualSpan(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Contains reports whether sub occurs as a contiguous sub-span of span.
func Contains(span, sub []Token) bool {
	return Index(span, sub) >= 0
}

// Index returns the index of the first occurrence of sub in span, or -1.
func Index(span, sub []Token) int {
	for i := 0; i+len(sub) <= len(span); i++ {
		if EqualSpan(span[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

// Format renders a token span as text.
func Format(tokens []Token) string {
	var sb strings.Builder
	for i, t := range tokens {
		switch t := t.(type) {
		case Operator:
			if t == ImplicitMul {
				// juxtaposition only reads unambiguously after a literal and before a non-literal
				if i > 0 && i+1 < len(tokens) {
					_, after := tokens[i-1].(Num)
					_, before := tokens[i+1].(Num)
					if after && !before {
						continue
					}
				}
				sb.WriteString(Mul.String())
				continue
			}
			sb.WriteString(t.String())
		case Comma:
			sb.WriteString(", ")
		case Num:
			if i > 0 && !t.Value.IsNaN() && (!t.Value.IsReal() || t.Value.Real().Sign() < 0) {
				if _, ok := tokens[i-1].(Operator); ok {
					sb.WriteString("(" + t.String() + ")")
					continue
				}
			}
			sb.WriteString(t.String())
		default:
			sb.WriteString(t.String())
		}
	}
	return sb.String()
}
