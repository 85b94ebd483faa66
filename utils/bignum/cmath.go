package bignum

import (
	"math/big"
)

// Elementary functions over *Complex. All functions allocate their result at the
// precision of the input and take the principal branch. Undefined points
// (log of zero, 0^w with Re(w) <= 0) panic with big.ErrNaN, which callers
// recover into an error.

// Abs returns |z|.
func Abs(z *Complex) *big.Float {
	prec := z.Prec()
	if z[1].Sign() == 0 {
		return new(big.Float).SetPrec(prec).Abs(z[0])
	}
	if z[0].Sign() == 0 {
		return new(big.Float).SetPrec(prec).Abs(z[1])
	}
	r := new(big.Float).SetPrec(prec).Mul(z[0], z[0])
	i := new(big.Float).SetPrec(prec).Mul(z[1], z[1])
	r.Add(r, i)
	return r.Sqrt(r)
}

// Arg returns the argument of z in (-pi, pi].
func Arg(z *Complex) *big.Float {
	return Atan2(z[1], z[0])
}

// Sqrt returns the principal square root of z.
func Sqrt(z *Complex) *Complex {
	prec := z.Prec()

	if z.IsZero() {
		return NewComplex(prec)
	}

	if z.IsReal() {
		if z[0].Sign() > 0 {
			return &Complex{new(big.Float).SetPrec(prec).Sqrt(z[0]), new(big.Float).SetPrec(prec)}
		}
		im := new(big.Float).SetPrec(prec).Neg(z[0])
		return &Complex{new(big.Float).SetPrec(prec), im.Sqrt(im)}
	}

	// re = sqrt((|z|+a)/2), im = sign(b) sqrt((|z|-a)/2)
	r := Abs(z)

	re := new(big.Float).SetPrec(prec).Add(r, z[0])
	re.SetMantExp(re, -1)
	re.Sqrt(re)

	im := new(big.Float).SetPrec(prec).Sub(r, z[0])
	im.SetMantExp(im, -1)
	if im.Sign() < 0 {
		im.SetInt64(0)
	}
	im.Sqrt(im)
	if z[1].Sign() < 0 {
		im.Neg(im)
	}

	return &Complex{re, im}
}

// ComplexExp returns e^z.
func ComplexExp(z *Complex) *Complex {
	prec := z.Prec()
	ea := Exp(new(big.Float).SetPrec(prec).Set(z[0]))
	if z[1].Sign() == 0 {
		return &Complex{ea, new(big.Float).SetPrec(prec)}
	}
	sinb, cosb := SinCos(z[1])
	return &Complex{
		new(big.Float).SetPrec(prec).Mul(ea, cosb),
		new(big.Float).SetPrec(prec).Mul(ea, sinb),
	}
}

// ComplexLog returns the principal natural logarithm of z.
func ComplexLog(z *Complex) *Complex {
	prec := z.Prec()

	if z.IsZero() {
		panic(big.ErrNaN{})
	}

	r := Abs(z)

	var re *big.Float
	if r.Cmp(NewFloat(1, prec)) == 0 {
		re = new(big.Float).SetPrec(prec)
	} else {
		re = Log(r).SetPrec(prec)
	}

	return &Complex{re, Arg(z).SetPrec(prec)}
}

// PowInt returns z^n by repeated squaring. n may be negative.
func PowInt(z *Complex, n int64) *Complex {
	prec := z.Prec()

	if n < 0 {
		return Quo(ToComplex(1, prec), PowInt(z, -n))
	}

	mul := NewComplexMultiplier()
	acc := ToComplex(1, prec)
	base := z.Clone()
	for n > 0 {
		if n&1 == 1 {
			mul.Mul(acc, base, acc)
		}
		n >>= 1
		if n > 0 {
			mul.Mul(base, base, base)
		}
	}
	return acc
}

// maxExactExponent bounds the exponents computed by repeated squaring in ComplexPow.
const maxExactExponent = 1 << 16

// ComplexPow returns the principal value of z^w.
func ComplexPow(z, w *Complex) *Complex {

	prec := z.Prec()
	if w.Prec() > prec {
		prec = w.Prec()
	}

	if w.IsReal() && w[0].IsInt() {
		if n, acc := w[0].Int64(); acc == big.Exact && n <= maxExactExponent && n >= -maxExactExponent {
			if n <= 0 && z.IsZero() {
				if n == 0 {
					return ToComplex(1, prec)
				}
				panic(big.ErrNaN{})
			}
			return PowInt(ToComplex(z, prec), n)
		}
	}

	if z.IsZero() {
		if w[0].Sign() > 0 {
			return NewComplex(prec)
		}
		panic(big.ErrNaN{})
	}

	if z.Equal(ToComplex(1, prec)) {
		return ToComplex(1, prec)
	}

	if z.IsReal() && z[0].Sign() > 0 && w.IsReal() {
		return &Complex{Pow(new(big.Float).SetPrec(prec).Set(z[0]), new(big.Float).SetPrec(prec).Set(w[0])), new(big.Float).SetPrec(prec)}
	}

	return ComplexExp(Mul(w, ComplexLog(ToComplex(z, prec))))
}

// Cbrt returns the principal cube root of z. Negative reals have a real cube root.
func Cbrt(z *Complex) *Complex {
	prec := z.Prec()
	if z.IsZero() {
		return NewComplex(prec)
	}
	third := Quo(ToComplex(1, prec), ToComplex(3, prec))
	if z.IsReal() && z[0].Sign() < 0 {
		return Neg(ComplexPow(Neg(z), third))
	}
	return ComplexPow(z, third)
}

// ComplexSin returns sin(z) = sin(a)cosh(b) + i cos(a)sinh(b).
func ComplexSin(z *Complex) *Complex {
	prec := z.Prec()
	sina, cosa := SinCos(z[0])
	if z[1].Sign() == 0 {
		return &Complex{sina, new(big.Float).SetPrec(prec)}
	}
	sinhb, coshb := SinhCosh(z[1])
	return &Complex{
		new(big.Float).SetPrec(prec).Mul(sina, coshb),
		new(big.Float).SetPrec(prec).Mul(cosa, sinhb),
	}
}

// ComplexCos returns cos(z) = cos(a)cosh(b) - i sin(a)sinh(b).
func ComplexCos(z *Complex) *Complex {
	prec := z.Prec()
	sina, cosa := SinCos(z[0])
	if z[1].Sign() == 0 {
		return &Complex{cosa, new(big.Float).SetPrec(prec)}
	}
	sinhb, coshb := SinhCosh(z[1])
	im := new(big.Float).SetPrec(prec).Mul(sina, sinhb)
	return &Complex{
		new(big.Float).SetPrec(prec).Mul(cosa, coshb),
		im.Neg(im),
	}
}

// ComplexTan returns sin(z)/cos(z).
func ComplexTan(z *Complex) *Complex {
	return Quo(ComplexSin(z), ComplexCos(z))
}

// ComplexSinh returns (e^z - e^-z)/2.
func ComplexSinh(z *Complex) *Complex {
	if z.IsReal() {
		s, _ := SinhCosh(z[0])
		return &Complex{s, new(big.Float).SetPrec(z.Prec())}
	}
	ez := ComplexExp(z)
	r := Sub(ez, Quo(ToComplex(1, z.Prec()), ez))
	return halve(r)
}

// ComplexCosh returns (e^z + e^-z)/2.
func ComplexCosh(z *Complex) *Complex {
	if z.IsReal() {
		_, c := SinhCosh(z[0])
		return &Complex{c, new(big.Float).SetPrec(z.Prec())}
	}
	ez := ComplexExp(z)
	r := Add(ez, Quo(ToComplex(1, z.Prec()), ez))
	return halve(r)
}

// ComplexTanh returns sinh(z)/cosh(z).
func ComplexTanh(z *Complex) *Complex {
	return Quo(ComplexSinh(z), ComplexCosh(z))
}

// ComplexAsin returns -i log(iz + sqrt(1 - z^2)).
func ComplexAsin(z *Complex) *Complex {
	prec := z.Prec()
	one := ToComplex(1, prec)
	if z.IsReal() && new(big.Float).Abs(z[0]).Cmp(one[0]) <= 0 {
		// real branch, avoids a spurious imaginary residue
		s := new(big.Float).SetPrec(prec).Mul(z[0], z[0])
		s.Sub(one[0], s)
		s.Sqrt(s)
		return &Complex{Atan2(z[0], s), new(big.Float).SetPrec(prec)}
	}
	iz := mulI(z)
	w := Add(iz, Sqrt(Sub(one, Mul(z, z))))
	return mulNegI(ComplexLog(w))
}

// ComplexAcos returns pi/2 - asin(z).
func ComplexAcos(z *Complex) *Complex {
	prec := z.Prec()
	halfPi := Pi(prec)
	halfPi.SetMantExp(halfPi, -1)
	return Sub(&Complex{halfPi, new(big.Float).SetPrec(prec)}, ComplexAsin(z))
}

// ComplexAtan returns (i/2) (log(1 - iz) - log(1 + iz)).
func ComplexAtan(z *Complex) *Complex {
	prec := z.Prec()
	if z.IsReal() {
		return &Complex{Atan(z[0]), new(big.Float).SetPrec(prec)}
	}
	one := ToComplex(1, prec)
	iz := mulI(z)
	d := Sub(ComplexLog(Sub(one, iz)), ComplexLog(Add(one, iz)))
	return halve(mulI(d))
}

// ComplexAsinh returns log(z + sqrt(z^2 + 1)).
func ComplexAsinh(z *Complex) *Complex {
	one := ToComplex(1, z.Prec())
	return ComplexLog(Add(z, Sqrt(Add(Mul(z, z), one))))
}

// ComplexAcosh returns log(z + sqrt(z + 1) sqrt(z - 1)).
func ComplexAcosh(z *Complex) *Complex {
	one := ToComplex(1, z.Prec())
	return ComplexLog(Add(z, Mul(Sqrt(Add(z, one)), Sqrt(Sub(z, one)))))
}

// ComplexAtanh returns (log(1 + z) - log(1 - z))/2.
func ComplexAtanh(z *Complex) *Complex {
	one := ToComplex(1, z.Prec())
	return halve(Sub(ComplexLog(Add(one, z)), ComplexLog(Sub(one, z))))
}

// RootOfUnity returns exp(2*pi*i*k/n), exact on quarter turns.
func RootOfUnity(k, n int, prec uint) *Complex {
	k %= n
	if k < 0 {
		k += n
	}
	if (4*k)%n == 0 {
		switch 4 * k / n {
		case 0:
			return ToComplex(1, prec)
		case 1:
			return ToComplex(complex(0, 1), prec)
		case 2:
			return ToComplex(-1, prec)
		default:
			return ToComplex(complex(0, -1), prec)
		}
	}
	theta := Pi(prec + guardBits)
	theta.Mul(theta, NewFloat(2*k, prec+guardBits))
	theta.Quo(theta, NewFloat(n, prec+guardBits))
	s, c := SinCos(theta)
	return &Complex{c.SetPrec(prec), s.SetPrec(prec)}
}

func halve(z *Complex) *Complex {
	z[0].SetMantExp(z[0], -1)
	z[1].SetMantExp(z[1], -1)
	return z
}

// mulI returns i*z.
func mulI(z *Complex) *Complex {
	prec := z.Prec()
	return &Complex{new(big.Float).SetPrec(prec).Neg(z[1]), new(big.Float).SetPrec(prec).Set(z[0])}
}

// mulNegI returns -i*z.
func mulNegI(z *Complex) *Complex {
	prec := z.Prec()
	return &Complex{new(big.Float).SetPrec(prec).Set(z[1]), new(big.Float).SetPrec(prec).Neg(z[0])}
}
