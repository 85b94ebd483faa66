package eval

import (
	"github.com/symcalc/symcalc/utils"
	"github.com/symcalc/symcalc/utils/bignum"
)

type unaryFunction func(z *bignum.Complex) *bignum.Complex

type binaryFunction func(a, b *bignum.Complex) *bignum.Complex

var unaryFunctions = map[string]unaryFunction{
	"sin":    bignum.ComplexSin,
	"cos":    bignum.ComplexCos,
	"tan":    bignum.ComplexTan,
	"csc":    reciprocalOf(bignum.ComplexSin),
	"sec":    reciprocalOf(bignum.ComplexCos),
	"cot":    reciprocalOf(bignum.ComplexTan),
	"asin":   bignum.ComplexAsin,
	"acos":   bignum.ComplexAcos,
	"atan":   bignum.ComplexAtan,
	"acsc":   ofReciprocal(bignum.ComplexAsin),
	"asec":   ofReciprocal(bignum.ComplexAcos),
	"acot":   ofReciprocal(bignum.ComplexAtan),
	"sinh":   bignum.ComplexSinh,
	"cosh":   bignum.ComplexCosh,
	"tanh":   bignum.ComplexTanh,
	"asinh":  bignum.ComplexAsinh,
	"acosh":  bignum.ComplexAcosh,
	"atanh":  bignum.ComplexAtanh,
	"exp":    bignum.ComplexExp,
	"ln":     bignum.ComplexLog,
	"log":    bignum.ComplexLog,
	"sqrt":   bignum.Sqrt,
	"cbrt":   bignum.Cbrt,
	"square": square,
	"cube":   cube,
	"abs":    abs,
	"arg":    arg,
	"re":     re,
	"im":     im,
	"conj":   conj,

	// inverses reachable through the "a"+name convention
	"aexp":    bignum.ComplexLog,
	"aln":     bignum.ComplexExp,
	"asqrt":   square,
	"asquare": bignum.Sqrt,
	"acbrt":   cube,
	"acube":   bignum.Cbrt,
}

var binaryFunctions = map[string]binaryFunction{
	"log":  logBase,
	"root": root,
}

// IsFunction reports whether name is a built-in function.
func IsFunction(name string) bool {
	if _, ok := unaryFunctions[name]; ok {
		return true
	}
	_, ok := binaryFunctions[name]
	return ok
}

// Functions returns the sorted names of the built-in functions.
func Functions() []string {
	names := map[string]bool{}
	for name := range unaryFunctions {
		names[name] = true
	}
	for name := range binaryFunctions {
		names[name] = true
	}
	return utils.GetSortedKeys(names)
}

// Constant returns the value of a built-in constant at prec bits.
func Constant(name string, prec uint) (*bignum.Complex, bool) {
	switch name {
	case "pi", "π":
		return bignum.ToComplex(bignum.Pi(prec), prec), true
	case "tau", "τ":
		tau := bignum.Pi(prec)
		return bignum.ToComplex(tau.SetMantExp(tau, 1), prec), true
	case "e":
		return bignum.ToComplex(bignum.Exp(bignum.NewFloat(1, prec)), prec), true
	case "phi", "φ":
		phi := bignum.NewFloat(5, prec)
		phi.Sqrt(phi)
		phi.Add(phi, bignum.NewFloat(1, prec))
		return bignum.ToComplex(phi.SetMantExp(phi, -1), prec), true
	case "i":
		return bignum.ToComplex(complex(0, 1), prec), true
	}
	return nil, false
}

// IsConstant reports whether name is a built-in constant.
func IsConstant(name string) bool {
	_, ok := Constant(name, 2)
	return ok
}

func reciprocalOf(f unaryFunction) unaryFunction {
	return func(z *bignum.Complex) *bignum.Complex {
		return bignum.Quo(bignum.ToComplex(1, z.Prec()), f(z))
	}
}

func ofReciprocal(f unaryFunction) unaryFunction {
	return func(z *bignum.Complex) *bignum.Complex {
		return f(bignum.Quo(bignum.ToComplex(1, z.Prec()), z))
	}
}

func square(z *bignum.Complex) *bignum.Complex {
	return bignum.Mul(z, z)
}

func cube(z *bignum.Complex) *bignum.Complex {
	return bignum.Mul(z, bignum.Mul(z, z))
}

func abs(z *bignum.Complex) *bignum.Complex {
	return bignum.ToComplex(bignum.Abs(z), z.Prec())
}

func arg(z *bignum.Complex) *bignum.Complex {
	return bignum.ToComplex(bignum.Arg(z), z.Prec())
}

func re(z *bignum.Complex) *bignum.Complex {
	return bignum.ToComplex(z.Real(), z.Prec())
}

func im(z *bignum.Complex) *bignum.Complex {
	return bignum.ToComplex(z.Imag(), z.Prec())
}

func conj(z *bignum.Complex) *bignum.Complex {
	return bignum.NewComplex(z.Prec()).Conj(z)
}

// logBase returns log_b(x).
func logBase(b, x *bignum.Complex) *bignum.Complex {
	return bignum.Quo(bignum.ComplexLog(x), bignum.ComplexLog(b))
}

// root returns the principal n-th root of x, or the real root of a negative real x for odd n.
func root(x, n *bignum.Complex) *bignum.Complex {

	prec := utils.Max(x.Prec(), n.Prec())

	inv := bignum.Quo(bignum.ToComplex(1, prec), n)

	if x.IsReal() && x.Real().Sign() < 0 && n.IsReal() && n.Real().IsInt() {
		k := n.Int()
		if k.Bit(0) == 1 {
			return bignum.Neg(bignum.ComplexPow(bignum.Neg(x), inv))
		}
	}

	return bignum.ComplexPow(x, inv)
}

func nanSafe1(f unaryFunction) unaryFunction {
	return func(z *bignum.Complex) *bignum.Complex {
		if z.IsNaN() {
			return bignum.NaN()
		}
		return f(z)
	}
}

func nanSafe2(f binaryFunction) binaryFunction {
	return func(a, b *bignum.Complex) *bignum.Complex {
		if a.IsNaN() || b.IsNaN() {
			return bignum.NaN()
		}
		return f(a, b)
	}
}
