package cas

import (
	"github.com/symcalc/symcalc/utils"
	"github.com/symcalc/symcalc/utils/bignum"
)

// RationalPolynomial is the rational function Quotient(x)/Divisor(x).
// Both coefficient lists are ordered by ascending power. Quotient carries no trailing
// zeros, so an empty Quotient is the zero function. Divisor is never identically zero
// unless a division by the zero polynomial took place, which Canonicalize reports.
//
// Operations never modify their operands and return fresh values.
type RationalPolynomial struct {
	Quotient []*bignum.Complex
	Divisor  []*bignum.Complex
}

// NewRationalPolynomial returns the polynomial with the given coefficients over the divisor 1.
func NewRationalPolynomial(coeffs []*bignum.Complex, prec uint) RationalPolynomial {
	return RationalPolynomial{
		Quotient: trim(cloneCoefficients(coeffs)),
		Divisor:  []*bignum.Complex{bignum.ToComplex(1, prec)},
	}
}

// NewConstant returns the constant polynomial c.
func NewConstant(c *bignum.Complex) RationalPolynomial {
	return NewRationalPolynomial([]*bignum.Complex{c}, c.Prec())
}

// Variable returns the polynomial x.
func Variable(prec uint) RationalPolynomial {
	return NewRationalPolynomial([]*bignum.Complex{bignum.NewComplex(prec), bignum.ToComplex(1, prec)}, prec)
}

// Clone returns a deep copy of p.
func (p RationalPolynomial) Clone() RationalPolynomial {
	return RationalPolynomial{
		Quotient: cloneCoefficients(p.Quotient),
		Divisor:  cloneCoefficients(p.Divisor),
	}
}

// Degree returns the degrees of the quotient and of the divisor, -1 standing for an empty list.
func (p RationalPolynomial) Degree() (quotient, divisor int) {
	return len(p.Quotient) - 1, len(p.Divisor) - 1
}

// Prec returns the largest precision among the coefficients of p.
func (p RationalPolynomial) Prec() (prec uint) {
	return utils.Max(coefficientsPrec(p.Quotient), coefficientsPrec(p.Divisor))
}

// Add returns p + q.
func (p RationalPolynomial) Add(q RationalPolynomial) RationalPolynomial {
	return RationalPolynomial{
		Quotient: trim(addCoefficients(mulCoefficients(p.Quotient, q.Divisor), mulCoefficients(q.Quotient, p.Divisor), false)),
		Divisor:  mulCoefficients(p.Divisor, q.Divisor),
	}
}

// Sub returns p - q.
func (p RationalPolynomial) Sub(q RationalPolynomial) RationalPolynomial {
	return RationalPolynomial{
		Quotient: trim(addCoefficients(mulCoefficients(p.Quotient, q.Divisor), mulCoefficients(q.Quotient, p.Divisor), true)),
		Divisor:  mulCoefficients(p.Divisor, q.Divisor),
	}
}

// AddConstant returns p + c, keeping the divisor of p.
func (p RationalPolynomial) AddConstant(c *bignum.Complex) RationalPolynomial {
	return RationalPolynomial{
		Quotient: trim(addCoefficients(p.Quotient, scaleCoefficients(p.Divisor, c), false)),
		Divisor:  cloneCoefficients(p.Divisor),
	}
}

// SubConstant returns p - c, keeping the divisor of p.
func (p RationalPolynomial) SubConstant(c *bignum.Complex) RationalPolynomial {
	return RationalPolynomial{
		Quotient: trim(addCoefficients(p.Quotient, scaleCoefficients(p.Divisor, c), true)),
		Divisor:  cloneCoefficients(p.Divisor),
	}
}

// Mul returns p * q.
func (p RationalPolynomial) Mul(q RationalPolynomial) RationalPolynomial {
	return RationalPolynomial{
		Quotient: trim(mulCoefficients(p.Quotient, q.Quotient)),
		Divisor:  mulCoefficients(p.Divisor, q.Divisor),
	}
}

// MulConstant returns c * p.
func (p RationalPolynomial) MulConstant(c *bignum.Complex) RationalPolynomial {
	return RationalPolynomial{
		Quotient: trim(scaleCoefficients(p.Quotient, c)),
		Divisor:  cloneCoefficients(p.Divisor),
	}
}

// Div returns p / q.
func (p RationalPolynomial) Div(q RationalPolynomial) RationalPolynomial {
	return p.Mul(q.Reciprocal())
}

// DivConstant returns p / c.
func (p RationalPolynomial) DivConstant(c *bignum.Complex) (RationalPolynomial, error) {
	if c.IsZero() {
		return RationalPolynomial{}, ErrZeroDivisor
	}
	return RationalPolynomial{
		Quotient: cloneCoefficients(p.Quotient),
		Divisor:  scaleCoefficients(p.Divisor, c),
	}, nil
}

// Reciprocal returns 1 / p.
func (p RationalPolynomial) Reciprocal() RationalPolynomial {
	return RationalPolynomial{
		Quotient: trim(cloneCoefficients(p.Divisor)),
		Divisor:  cloneCoefficients(p.Quotient),
	}
}

// PowInt returns p^k by repeated squaring.
func (p RationalPolynomial) PowInt(k int64) RationalPolynomial {

	if k < 0 {
		return p.PowInt(-k).Reciprocal()
	}

	acc := NewConstant(bignum.ToComplex(1, p.Prec()))
	base := p.Clone()
	for k > 0 {
		if k&1 == 1 {
			acc = acc.Mul(base)
		}
		k >>= 1
		if k > 0 {
			base = base.Mul(base)
		}
	}

	return acc
}

// GCD returns the greatest common divisor of the quotient and the divisor, computed by
// Euclidean remaindering. The result is defined up to a constant factor; a constant
// result means the two are coprime.
func (p RationalPolynomial) GCD() []*bignum.Complex {
	a, b := p.Quotient, p.Divisor
	for {
		_, r, err := DivideWithRemainder(a, b)
		if err != nil || len(r) == 0 {
			return b
		}
		a, b = b, r
	}
}

// Canonicalize collapses p into a single coefficient list whose roots are the roots of p:
// the quotient divided by its greatest common divisor with the divisor.
// Constant factors are not normalized. It returns ErrZeroDivisor if p divides by zero.
func (p RationalPolynomial) Canonicalize() ([]*bignum.Complex, error) {

	q, r, err := DivideWithRemainder(p.Quotient, p.GCD())
	if err != nil {
		return nil, err
	}

	// a numerically failed reduction leaves the quotient as is
	if len(r) != 0 {
		return cloneCoefficients(p.Quotient), nil
	}

	return q, nil
}

// DivideWithRemainder returns num = quotient*den + remainder by polynomial long division.
// A constant den leaves num unchanged, with no remainder. Remainder coefficients that are
// negligible with respect to num at the working precision are dropped, so an empty
// remainder means an exact division. It returns ErrZeroDivisor if den is identically zero.
func DivideWithRemainder(num, den []*bignum.Complex) (quotient, remainder []*bignum.Complex, err error) {

	den = trim(cloneCoefficients(den))

	if len(den) == 0 {
		return nil, nil, ErrZeroDivisor
	}

	if len(den) == 1 {
		return cloneCoefficients(num), nil, nil
	}

	rem := trim(cloneCoefficients(num))

	if len(rem) == 0 {
		return nil, nil, nil
	}

	prec := utils.Max(coefficientsPrec(rem), coefficientsPrec(den))
	scale := maxExponent(rem)

	dDen := len(den) - 1
	lead := den[dDen]

	if len(rem)-1 < dDen {
		return nil, rem, nil
	}

	quotient = make([]*bignum.Complex, len(rem)-dDen)
	for i := range quotient {
		quotient[i] = bignum.NewComplex(prec)
	}

	mul := bignum.NewComplexMultiplier()
	tmp := bignum.NewComplex(prec)

	for dRem := len(rem) - 1; dRem >= dDen; dRem = len(rem) - 1 {

		shift := dRem - dDen
		coeff := bignum.Quo(rem[dRem], lead)

		for k := 0; k < dDen; k++ {
			mul.Mul(coeff, den[k], tmp)
			rem[k+shift] = bignum.Sub(rem[k+shift], tmp)
		}

		quotient[shift] = coeff

		rem = trimNegligible(rem[:dRem], scale, prec)

		if len(rem) == 0 {
			return quotient, nil, nil
		}
	}

	return quotient, rem, nil
}

func cloneCoefficients(coeffs []*bignum.Complex) []*bignum.Complex {
	out := make([]*bignum.Complex, len(coeffs))
	for i := range coeffs {
		out[i] = coeffs[i].Clone()
	}
	return out
}

func coefficientsPrec(coeffs []*bignum.Complex) (prec uint) {
	for _, c := range coeffs {
		prec = utils.Max(prec, c.Prec())
	}
	return
}

// trim removes the trailing zero coefficients.
func trim(coeffs []*bignum.Complex) []*bignum.Complex {
	for len(coeffs) > 0 && coeffs[len(coeffs)-1].IsZero() {
		coeffs = coeffs[:len(coeffs)-1]
	}
	return coeffs
}

// exponent returns the binary exponent of the largest part of c.
func exponent(c *bignum.Complex) (exp int, zero bool) {
	if c.IsZero() {
		return 0, true
	}
	exp = c.Real().MantExp(nil)
	if c.Real().Sign() == 0 || (c.Imag().Sign() != 0 && c.Imag().MantExp(nil) > exp) {
		exp = c.Imag().MantExp(nil)
	}
	return exp, false
}

func maxExponent(coeffs []*bignum.Complex) (m int) {
	first := true
	for _, c := range coeffs {
		if exp, zero := exponent(c); !zero && (first || exp > m) {
			m, first = exp, false
		}
	}
	return
}

// trimNegligible removes the trailing coefficients that vanish at prec bits relative to 2^scale.
func trimNegligible(coeffs []*bignum.Complex, scale int, prec uint) []*bignum.Complex {
	for len(coeffs) > 0 {
		exp, zero := exponent(coeffs[len(coeffs)-1])
		if !zero && exp >= scale-int(prec)+16 {
			break
		}
		coeffs = coeffs[:len(coeffs)-1]
	}
	return coeffs
}

// addCoefficients returns a + b, or a - b if negate is set, zero-padded to the longer length.
func addCoefficients(a, b []*bignum.Complex, negate bool) []*bignum.Complex {

	prec := utils.Max(coefficientsPrec(a), coefficientsPrec(b))

	out := make([]*bignum.Complex, utils.Max(len(a), len(b)))
	for i := range out {
		out[i] = bignum.NewComplex(prec)
		if i < len(a) {
			out[i].Set(a[i])
		}
		if i < len(b) {
			if negate {
				out[i].Sub(out[i], b[i])
			} else {
				out[i].Add(out[i], b[i])
			}
		}
	}
	return out
}

// mulCoefficients returns the convolution of a and b.
func mulCoefficients(a, b []*bignum.Complex) []*bignum.Complex {

	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	prec := utils.Max(coefficientsPrec(a), coefficientsPrec(b))

	out := make([]*bignum.Complex, len(a)+len(b)-1)
	for i := range out {
		out[i] = bignum.NewComplex(prec)
	}

	mul := bignum.NewComplexMultiplier()
	tmp := bignum.NewComplex(prec)

	for j, bj := range b {
		if bj.IsZero() {
			continue
		}
		for i, ai := range a {
			if ai.IsZero() {
				continue
			}
			mul.Mul(ai, bj, tmp)
			out[i+j].Add(out[i+j], tmp)
		}
	}

	return out
}

// scaleCoefficients returns c * a.
func scaleCoefficients(a []*bignum.Complex, c *bignum.Complex) []*bignum.Complex {
	out := make([]*bignum.Complex, len(a))
	for i := range a {
		out[i] = bignum.Mul(a[i], c)
	}
	return out
}
