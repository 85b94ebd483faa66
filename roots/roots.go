// Package roots implements closed-form solvers for polynomials of degree two to four
// and the expansion of a value into its n-th roots.
// Coefficients are given from the highest to the lowest power.
package roots

import (
	"github.com/symcalc/symcalc/utils"
	"github.com/symcalc/symcalc/utils/bignum"
)

// guardBits is the extra precision the closed forms are evaluated with.
const guardBits = 32

func maxPrec(coeffs ...*bignum.Complex) (prec uint) {
	for _, c := range coeffs {
		prec = utils.Max(prec, c.Prec())
	}
	return
}

func raise(prec uint, coeffs ...*bignum.Complex) []*bignum.Complex {
	out := make([]*bignum.Complex, len(coeffs))
	for i, c := range coeffs {
		out[i] = bignum.ToComplex(c, prec)
	}
	return out
}

func round(prec uint, values []*bignum.Complex) []*bignum.Complex {
	for _, v := range values {
		if !v.IsNaN() {
			v.SetPrec(prec).ClearSignedZeros()
		}
	}
	return values
}

// Linear returns the root of a*x + b.
// A zero a leaves no solution and yields the NaN sentinel.
func Linear(a, b *bignum.Complex) []*bignum.Complex {
	if a.IsZero() {
		return []*bignum.Complex{bignum.NaN()}
	}
	return []*bignum.Complex{bignum.Neg(bignum.Quo(b, a)).ClearSignedZeros()}
}

// Quadratic returns the two roots of a*x^2 + b*x + c.
func Quadratic(a, b, c *bignum.Complex) []*bignum.Complex {

	if a.IsZero() {
		return Linear(b, c)
	}

	prec := maxPrec(a, b, c)
	return round(prec, quadratic(raise(prec+guardBits, a, b, c)...))
}

func quadratic(coeffs ...*bignum.Complex) []*bignum.Complex {

	a, b, c := coeffs[0], coeffs[1], coeffs[2]
	prec := maxPrec(a, b, c)

	// sqrt(b^2 - 4ac)
	disc := bignum.Sub(bignum.Mul(b, b), bignum.Mul(bignum.ToComplex(4, prec), bignum.Mul(a, c)))
	sq := bignum.Sqrt(disc)

	// q = -(b + sign*sqrt)/2 with the sign that avoids cancellation
	plus := bignum.Add(b, sq)
	minus := bignum.Sub(b, sq)
	s := plus
	if bignum.Abs(minus).Cmp(bignum.Abs(plus)) > 0 {
		s = minus
	}

	if s.IsZero() {
		return []*bignum.Complex{bignum.NewComplex(prec), bignum.NewComplex(prec)}
	}

	q := bignum.Neg(s)
	q[0].SetMantExp(q[0], -1)
	q[1].SetMantExp(q[1], -1)

	return []*bignum.Complex{bignum.Quo(q, a), bignum.Quo(c, q)}
}

// Cubic returns the three roots of a*x^3 + b*x^2 + c*x + d.
func Cubic(a, b, c, d *bignum.Complex) []*bignum.Complex {

	if a.IsZero() {
		return Quadratic(b, c, d)
	}

	prec := maxPrec(a, b, c, d)
	return round(prec, cubic(raise(prec+guardBits, a, b, c, d)...))
}

func cubic(coeffs ...*bignum.Complex) []*bignum.Complex {

	a, b, c, d := coeffs[0], coeffs[1], coeffs[2], coeffs[3]
	prec := maxPrec(a, b, c, d)

	n := func(x int64) *bignum.Complex { return bignum.ToComplex(x, prec) }

	// delta0 = b^2 - 3ac
	delta0 := bignum.Sub(bignum.Mul(b, b), bignum.Mul(n(3), bignum.Mul(a, c)))

	// delta1 = 2b^3 - 9abc + 27a^2d
	delta1 := bignum.Mul(n(2), bignum.Mul(b, bignum.Mul(b, b)))
	delta1 = bignum.Sub(delta1, bignum.Mul(n(9), bignum.Mul(a, bignum.Mul(b, c))))
	delta1 = bignum.Add(delta1, bignum.Mul(n(27), bignum.Mul(bignum.Mul(a, a), d)))

	a3 := bignum.Mul(n(3), a)

	if delta0.IsZero() && delta1.IsZero() {
		r := bignum.Neg(bignum.Quo(b, a3))
		return []*bignum.Complex{r, r.Clone(), r.Clone()}
	}

	// C = cbrt((delta1 +/- sqrt(delta1^2 - 4 delta0^3))/2)
	sq := bignum.Sqrt(bignum.Sub(bignum.Mul(delta1, delta1), bignum.Mul(n(4), bignum.Mul(delta0, bignum.Mul(delta0, delta0)))))

	plus := bignum.Add(delta1, sq)
	minus := bignum.Sub(delta1, sq)
	s := plus
	if bignum.Abs(minus).Cmp(bignum.Abs(plus)) > 0 {
		s = minus
	}
	s[0].SetMantExp(s[0], -1)
	s[1].SetMantExp(s[1], -1)

	C := bignum.Cbrt(s)

	// x_k = -(b + xi^k C + delta0/(xi^k C))/(3a)
	out := make([]*bignum.Complex, 3)
	for k := range out {
		ck := bignum.Mul(C, bignum.RootOfUnity(k, 3, prec))
		x := bignum.Add(b, bignum.Add(ck, bignum.Quo(delta0, ck)))
		out[k] = bignum.Neg(bignum.Quo(x, a3))
	}

	return out
}

// Quartic returns the four roots of a*x^4 + b*x^3 + c*x^2 + d*x + e.
func Quartic(a, b, c, d, e *bignum.Complex) []*bignum.Complex {

	if a.IsZero() {
		return Cubic(b, c, d, e)
	}

	prec := maxPrec(a, b, c, d, e)
	return round(prec, quartic(raise(prec+guardBits, a, b, c, d, e)...))
}

func quartic(coeffs ...*bignum.Complex) []*bignum.Complex {

	prec := maxPrec(coeffs...)

	n := func(x int64) *bignum.Complex { return bignum.ToComplex(x, prec) }

	// monic x^4 + B x^3 + C x^2 + D x + E
	B := bignum.Quo(coeffs[1], coeffs[0])
	C := bignum.Quo(coeffs[2], coeffs[0])
	D := bignum.Quo(coeffs[3], coeffs[0])
	E := bignum.Quo(coeffs[4], coeffs[0])

	B2 := bignum.Mul(B, B)

	// depressed y^4 + p y^2 + q y + r with x = y - B/4
	p := bignum.Sub(C, bignum.Quo(bignum.Mul(n(3), B2), n(8)))

	q := bignum.Sub(D, bignum.Quo(bignum.Mul(B, C), n(2)))
	q = bignum.Add(q, bignum.Quo(bignum.Mul(B2, B), n(8)))

	r := bignum.Sub(E, bignum.Quo(bignum.Mul(B, D), n(4)))
	r = bignum.Add(r, bignum.Quo(bignum.Mul(B2, C), n(16)))
	r = bignum.Sub(r, bignum.Quo(bignum.Mul(n(3), bignum.Mul(B2, B2)), n(256)))

	shift := bignum.Quo(B, n(4))

	var ys []*bignum.Complex

	if q.IsZero() {
		// biquadratic: z = y^2, z^2 + p z + r = 0
		for _, z := range quadratic(n(1), p, r) {
			y := bignum.Sqrt(z)
			ys = append(ys, y, bignum.Neg(y))
		}
	} else {
		// resolvent cubic 8m^3 + 8p m^2 + (2p^2 - 8r) m - q^2 = 0
		m := largest(cubic(
			n(8),
			bignum.Mul(n(8), p),
			bignum.Sub(bignum.Mul(n(2), bignum.Mul(p, p)), bignum.Mul(n(8), r)),
			bignum.Neg(bignum.Mul(q, q)),
		))

		s := bignum.Sqrt(bignum.Mul(n(2), m))

		// y^2 -/+ s y + (p/2 + m +/- q/(2s)) = 0
		base := bignum.Add(bignum.Quo(p, n(2)), m)
		t := bignum.Quo(q, bignum.Mul(n(2), s))

		ys = append(ys, quadratic(n(1), bignum.Neg(s), bignum.Add(base, t))...)
		ys = append(ys, quadratic(n(1), s, bignum.Sub(base, t))...)
	}

	for i := range ys {
		ys[i] = bignum.Sub(ys[i], shift)
	}

	return ys
}

// largest returns the value of largest modulus.
func largest(values []*bignum.Complex) (m *bignum.Complex) {
	m = values[0]
	for _, v := range values[1:] {
		if bignum.Abs(v).Cmp(bignum.Abs(m)) > 0 {
			m = v
		}
	}
	return
}

// Unity returns the n roots x of x^n = root: the principal n-th root of root
// rotated by each of the n-th roots of unity.
func Unity(root *bignum.Complex, n int) []*bignum.Complex {

	if root.IsNaN() {
		out := make([]*bignum.Complex, n)
		for i := range out {
			out[i] = bignum.NaN()
		}
		return out
	}

	prec := root.Prec()

	var principal *bignum.Complex
	switch n {
	case 1:
		principal = root.Clone()
	case 2:
		principal = bignum.Sqrt(root)
	default:
		principal = bignum.ComplexPow(root, bignum.Quo(bignum.ToComplex(1, prec), bignum.ToComplex(n, prec)))
	}

	out := make([]*bignum.Complex, n)
	for k := range out {
		out[k] = bignum.Mul(principal, bignum.RootOfUnity(k, n, prec)).ClearSignedZeros()
	}

	return out
}
