package cas

import (
	"fmt"
	"math/big"

	"github.com/symcalc/symcalc/eval"
	"github.com/symcalc/symcalc/token"
	"github.com/symcalc/symcalc/utils"
	"github.com/symcalc/symcalc/utils/bignum"
)

// maxDegree bounds the degree of the polynomials built from integer powers.
const maxDegree = 1 << 12

// constant evaluates a span free of the unknown to a single value.
func (iso *Isolator) constant(span []token.Token) (*bignum.Complex, error) {
	return eval.EvaluateScalar(span, iso.opts, iso.bindings)
}

// isPoly reports whether span, outside the occurrences of v, only holds numeric literals,
// arithmetic operators, round brackets and bound names.
func (iso *Isolator) isPoly(span, v []token.Token) bool {
	for i := 0; i < len(span); {
		if i+len(v) <= len(span) && token.EqualSpan(span[i:i+len(v)], v) {
			i += len(v)
			continue
		}
		switch t := span[i].(type) {
		case token.Num, token.Operator:
		case token.Bracket:
			if t != token.LeftRound && t != token.RightRound {
				return false
			}
		case token.Name:
			if !iso.isBound(string(t)) {
				return false
			}
		default:
			return false
		}
		i++
	}
	return true
}

func (iso *Isolator) isBound(name string) bool {
	if _, ok := iso.bindings[name]; ok {
		return true
	}
	return eval.IsConstant(name)
}

// compile builds the rational polynomial in v that span denotes.
// Constant sub-spans are reduced by the evaluator.
func (iso *Isolator) compile(span, v []token.Token) (p RationalPolynomial, err error) {

	if len(span) == 0 {
		return p, fmt.Errorf("%w: empty term", ErrNotPoly)
	}

	// v may itself be bracketed
	if token.EqualSpan(span, v) {
		return Variable(iso.opts.Prec), nil
	}

	if isInterior(span) {
		return iso.compile(span[1:len(span)-1], v)
	}

	if isConstant(span, v) {
		var c *bignum.Complex
		if c, err = iso.constant(span); err != nil {
			return
		}
		return NewConstant(c), nil
	}

	if terms := place(span, token.Add, false); terms != nil {
		p = NewRationalPolynomial(nil, iso.opts.Prec)
		for _, term := range terms {
			if p, err = iso.combine(p, term, v, RationalPolynomial.Add, RationalPolynomial.AddConstant); err != nil {
				return
			}
		}
		return
	}

	if terms := place(span, token.Sub, false); terms != nil {
		// a leading minus subtracts from zero
		if len(terms[0]) == 0 {
			p = NewRationalPolynomial(nil, iso.opts.Prec)
		} else if p, err = iso.compile(terms[0], v); err != nil {
			return
		}
		for _, term := range terms[1:] {
			if p, err = iso.combine(p, term, v, RationalPolynomial.Sub, RationalPolynomial.SubConstant); err != nil {
				return
			}
		}
		return
	}

	if factors := place(span, token.Mul, false); factors != nil {
		p = NewConstant(bignum.ToComplex(1, iso.opts.Prec))
		for _, factor := range factors {
			if p, err = iso.combine(p, factor, v, RationalPolynomial.Mul, RationalPolynomial.MulConstant); err != nil {
				return
			}
		}
		return
	}

	if factors := place(span, token.Div, false); factors != nil {
		if p, err = iso.compile(factors[0], v); err != nil {
			return
		}
		for _, factor := range factors[1:] {
			if len(factor) != 0 && isConstant(factor, v) {
				var c *bignum.Complex
				if c, err = iso.constant(factor); err != nil {
					return
				}
				if p, err = p.DivConstant(c); err != nil {
					return
				}
				continue
			}
			var q RationalPolynomial
			if q, err = iso.compile(factor, v); err != nil {
				return
			}
			p = p.Div(q)
		}
		return
	}

	if operands := place(span, token.Pow, true); operands != nil {
		return iso.power(operands[0], operands[1], v)
	}

	return p, ErrNotPoly
}

// combine folds term into p: numerically with constant when term does not hold v,
// with poly otherwise.
func (iso *Isolator) combine(p RationalPolynomial, term, v []token.Token,
	poly func(RationalPolynomial, RationalPolynomial) RationalPolynomial,
	constant func(RationalPolynomial, *bignum.Complex) RationalPolynomial) (RationalPolynomial, error) {

	if len(term) != 0 && isConstant(term, v) {
		c, err := iso.constant(term)
		if err != nil {
			return p, err
		}
		return constant(p, c), nil
	}

	q, err := iso.compile(term, v)
	if err != nil {
		return p, err
	}

	return poly(p, q), nil
}

// power builds base^exponent for a constant integer exponent.
func (iso *Isolator) power(base, exponent, v []token.Token) (p RationalPolynomial, err error) {

	if p, err = iso.compile(base, v); err != nil {
		return
	}

	if len(exponent) == 0 || !isConstant(exponent, v) {
		return p, fmt.Errorf("%w: exponent depends on the unknown", ErrNonIntegerExponent)
	}

	var k *bignum.Complex
	if k, err = iso.constant(exponent); err != nil {
		return
	}

	if k.IsNaN() || !k.IsReal() || !k.Real().IsInt() {
		return p, ErrNonIntegerExponent
	}

	n, acc := k.Real().Int64()
	degree, _ := p.Degree()
	if acc != big.Exact || n > maxDegree || n < -maxDegree || utils.Abs(n)*int64(utils.Max(degree, 1)) > maxDegree {
		return p, fmt.Errorf("%w: exponent %s is too large", ErrGreaterThanQuartic, k.Text(16))
	}

	if n == 0 {
		return NewConstant(bignum.ToComplex(1, iso.opts.Prec)), nil
	}

	return p.PowInt(n), nil
}
