package bignum

import (
	"fmt"
	"math/big"
)

// Polynomial is a univariate polynomial in the monomial basis.
// Coeffs are ordered by ascending power; nil coefficients are zero.
type Polynomial struct {
	Coeffs []*Complex
}

// NewPolynomial creates a new polynomial from coeffs at prec bits of precision.
// coeffs: []int64, []complex128, []float64, []*Complex or []*big.Float, by ascending power.
func NewPolynomial(coeffs interface{}, prec uint) Polynomial {
	var coefficients []*Complex

	switch coeffs := coeffs.(type) {
	case []int64:
		coefficients = make([]*Complex, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = ToComplex(c, prec)
		}
	case []complex128:
		coefficients = make([]*Complex, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = ToComplex(c, prec)
		}
	case []float64:
		coefficients = make([]*Complex, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = ToComplex(c, prec)
		}
	case []*Complex:
		coefficients = make([]*Complex, len(coeffs))
		for i, c := range coeffs {
			if c != nil {
				coefficients[i] = ToComplex(c, prec)
			}
		}
	case []*big.Float:
		coefficients = make([]*Complex, len(coeffs))
		for i, c := range coeffs {
			if c != nil {
				coefficients[i] = ToComplex(c, prec)
			}
		}
	default:
		panic(fmt.Sprintf("invalid coefficient type, allowed types are []{int64, complex128, float64, *Complex, *big.Float} but is %T", coeffs))
	}

	return Polynomial{Coeffs: coefficients}
}

// Clone returns a deep copy of the polynomial.
func (p Polynomial) Clone() Polynomial {
	Coeffs := make([]*Complex, len(p.Coeffs))
	for i := range Coeffs {
		if p.Coeffs[i] != nil {
			Coeffs[i] = p.Coeffs[i].Clone()
		}
	}
	return Polynomial{Coeffs: Coeffs}
}

// Degree returns the degree of the polynomial.
func (p Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// Evaluate returns y = P(x) by Horner's rule.
// The precision of x is used as reference precision for y.
func (p Polynomial) Evaluate(x *Complex) (y *Complex) {

	prec := x.Prec()

	if x.IsNaN() {
		return NaN()
	}

	n := len(p.Coeffs)
	if n == 0 {
		return NewComplex(prec)
	}

	mul := NewComplexMultiplier()

	y = NewComplex(prec)
	if c := p.Coeffs[n-1]; c != nil {
		y.Set(c)
	}
	for i := n - 2; i >= 0; i-- {
		mul.Mul(y, x, y)
		if p.Coeffs[i] != nil {
			y.Add(y, p.Coeffs[i])
		}
	}

	return
}
