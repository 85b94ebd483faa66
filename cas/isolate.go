// Package cas isolates an unknown in an expression: it finds the values of the unknown
// for which the expression vanishes.
//
// Expressions that are rational functions of the unknown, possibly wrapped uniformly in
// function applications, are compiled into a [RationalPolynomial], reduced to a
// polynomial and solved in closed form up to degree four. The roots are then mapped
// back through the inverses of the wrapping functions. Additive terms that are free of
// the unknown are moved to the other side of the equation.
package cas

import (
	"fmt"
	"math/big"

	"github.com/symcalc/symcalc/eval"
	"github.com/symcalc/symcalc/token"
	"github.com/symcalc/symcalc/utils/bignum"
)

// Isolator solves token expressions for an unknown.
// Constant sub-expressions are reduced by the evaluator with the given options and
// bindings. An Isolator holds no state between calls and is safe for concurrent use.
type Isolator struct {
	opts     eval.Options
	bindings eval.Bindings
}

// NewIsolator creates a new Isolator.
func NewIsolator(opts eval.Options, bindings eval.Bindings) *Isolator {
	return &Isolator{opts: opts, bindings: bindings}
}

// Isolate returns the values of the unknown for which tokens evaluate to zero.
// The values are sorted by (real, imaginary) part and may repeat.
func Isolate(tokens []token.Token, unknown string, opts eval.Options, bindings eval.Bindings) (eval.Result, error) {
	return NewIsolator(opts, bindings).Isolate(tokens, unknown)
}

// Isolate returns the values of the unknown for which tokens evaluate to zero.
// The result is a vector, the NaN sentinel standing for an equation without solution.
func (iso *Isolator) Isolate(tokens []token.Token, unknown string) (res eval.Result, err error) {

	if err = iso.opts.Validate(); err != nil {
		return
	}

	if !mentions(tokens, unknown) {
		return res, ErrNothingToIsolate
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(big.ErrNaN); ok {
				res, err = eval.Result{}, eval.ErrUndefined
				return
			}
			panic(r)
		}
	}()

	var solved []token.Token
	if solved, err = iso.isolate(tokens, []token.Token{token.Name(unknown)}); err != nil {
		return
	}

	if len(solved) == 0 {
		return res, ErrNotPoly
	}

	return eval.Evaluate(solved, iso.opts, iso.bindings)
}

// mentions reports whether unknown occurs in tokens, as a name or as a function marker.
func mentions(tokens []token.Token, unknown string) bool {
	for _, t := range tokens {
		switch t := t.(type) {
		case token.Name:
			if string(t) == unknown {
				return true
			}
		case token.Func:
			if string(t) == unknown {
				return true
			}
		}
	}
	return false
}

// isolate rewrites span = 0 into an expression free of v that evaluates to the solutions.
func (iso *Isolator) isolate(span, v []token.Token) ([]token.Token, error) {

	if len(span) == 0 {
		return nil, fmt.Errorf("%w: empty term", ErrNotPoly)
	}

	if isInterior(span) {
		return iso.isolate(span[1:len(span)-1], v)
	}

	if isFunctionApplication(span) {

		inner, err := iso.isolate(span[2:len(span)-1], v)
		if err != nil {
			return nil, err
		}

		if len(inner) == 0 {
			return nil, ErrNotPoly
		}

		targets, err := eval.Evaluate(inner, iso.opts, iso.bindings)
		if err != nil {
			return nil, err
		}

		values, err := iso.invertFunction(string(span[0].(token.Func)), targets.Values())
		if err != nil {
			return nil, err
		}

		SortValues(values)

		return []token.Token{token.Vector{Values: values}}, nil
	}

	if ev := effectiveVariable(span, v); iso.isPoly(span, ev) {
		return iso.solvePoly(span, ev)
	}

	return iso.migrate(span, v)
}

// solvePoly solves span as a polynomial in the effective variable ev and maps the
// roots back through the wrapping of ev.
func (iso *Isolator) solvePoly(span, ev []token.Token) ([]token.Token, error) {

	p, err := iso.compile(span, ev)
	if err != nil {
		return nil, err
	}

	coeffs, err := p.Canonicalize()
	if err != nil {
		return nil, err
	}

	values, err := Solve(coeffs, iso.opts)
	if err != nil {
		return nil, err
	}

	if len(ev) > 1 {
		if values, err = iso.invert(ev, values); err != nil {
			return nil, err
		}
	}

	SortValues(values)

	return []token.Token{token.Vector{Values: values}}, nil
}

// migrate moves the terms of span that are free of v to the other side of the equation
// and isolates the remaining terms one by one.
func (iso *Isolator) migrate(span, v []token.Token) ([]token.Token, error) {

	terms := place(span, token.Add, false)
	if terms == nil {
		return nil, ErrNotPoly
	}

	var out []token.Token

	for _, term := range terms {

		var next []token.Token

		if isConstant(term, v) {
			next = make([]token.Token, 0, len(term)+6)
			next = append(next, token.LeftRound, token.NewNum(0, iso.opts.Prec), token.Sub, token.LeftRound)
			next = append(next, term...)
			next = append(next, token.RightRound, token.RightRound)
		} else {
			solved, err := iso.isolate(term, v)
			if err != nil {
				return nil, err
			}
			if len(solved) == 0 || token.EqualSpan(solved, v) {
				continue
			}
			next = solved
		}

		if len(out) != 0 {
			out = append(out, token.Add)
		}
		out = append(out, next...)
	}

	return out, nil
}

// invert maps values through the inverses of the functions wrapping the effective
// variable wrapper, outermost first. Bracket-only wrappings are stripped.
func (iso *Isolator) invert(wrapper []token.Token, values []*bignum.Complex) (out []*bignum.Complex, err error) {

	out = values

	for len(wrapper) > 1 {
		switch t := wrapper[0].(type) {
		case token.Func:
			if out, err = iso.invertFunction(string(t), out); err != nil {
				return nil, err
			}
			wrapper = wrapper[2 : len(wrapper)-1]
		case token.Bracket:
			wrapper = wrapper[1 : len(wrapper)-1]
		default:
			return out, nil
		}
	}

	return out, nil
}

// invertFunction returns the pre-images of values under the named function.
// sin and cos yield two branches per value. Other functions are inverted through the
// evaluator's function of the same name prefixed with "a".
func (iso *Isolator) invertFunction(name string, values []*bignum.Complex) ([]*bignum.Complex, error) {

	switch name {
	case "sin", "cos":

		out := make([]*bignum.Complex, 0, 2*len(values))

		for _, a := range values {

			if a.IsNaN() {
				out = append(out, bignum.NaN(), bignum.NaN())
				continue
			}

			if name == "sin" {
				theta := bignum.ComplexAsin(a)
				pi := bignum.Pi(theta.Prec())
				out = append(out, theta, bignum.Sub(&bignum.Complex{pi, new(big.Float).SetPrec(theta.Prec())}, theta))
			} else {
				theta := bignum.ComplexAcos(a)
				out = append(out, theta, bignum.Neg(theta))
			}
		}

		for _, v := range out {
			v.ClearSignedZeros()
		}

		return out, nil
	}

	res, err := eval.Evaluate([]token.Token{
		token.Func("a" + name),
		token.LeftRound,
		token.Vector{Values: values},
		token.RightRound,
	}, iso.opts, iso.bindings)

	if err != nil {
		return nil, err
	}

	return res.Values(), nil
}
