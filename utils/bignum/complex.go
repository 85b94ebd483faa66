package bignum

import (
	"fmt"
	"math/big"

	"github.com/symcalc/symcalc/utils"
)

// Complex is a type for arbitrary precision complex number.
// A Complex with nil parts is the not-a-number sentinel, see [NaN].
type Complex [2]*big.Float

// NewComplex creates a new arbitrary precision complex number set to zero with prec bits of precision.
func NewComplex(prec uint) (c *Complex) {
	return &Complex{
		new(big.Float).SetPrec(prec),
		new(big.Float).SetPrec(prec),
	}
}

// NaN returns the not-a-number sentinel.
// big.Float has no NaN, so the sentinel carries no parts and must be checked with IsNaN
// before any arithmetic.
func NaN() *Complex {
	return &Complex{}
}

// IsNaN reports whether c is the not-a-number sentinel.
func (c *Complex) IsNaN() bool {
	return c == nil || c[0] == nil || c[1] == nil
}

// ToComplex takes a complex128, float64, int, int64, uint64, *big.Int, *big.Float or *Complex and returns a *Complex set to the given precision.
func ToComplex(value interface{}, prec uint) (cmplx *Complex) {

	cmplx = new(Complex)

	switch value := value.(type) {
	case complex128:
		cmplx[0] = new(big.Float).SetPrec(prec).SetFloat64(real(value))
		cmplx[1] = new(big.Float).SetPrec(prec).SetFloat64(imag(value))
	case float64:
		cmplx[0] = new(big.Float).SetPrec(prec).SetFloat64(value)
		cmplx[1] = new(big.Float).SetPrec(prec)
	case int:
		cmplx[0] = new(big.Float).SetPrec(prec).SetInt64(int64(value))
		cmplx[1] = new(big.Float).SetPrec(prec)
	case int64:
		cmplx[0] = new(big.Float).SetPrec(prec).SetInt64(value)
		cmplx[1] = new(big.Float).SetPrec(prec)
	case uint64:
		return ToComplex(new(big.Int).SetUint64(value), prec)
	case *big.Float:
		cmplx[0] = new(big.Float).SetPrec(prec).Set(value)
		cmplx[1] = new(big.Float).SetPrec(prec)
	case *big.Int:
		cmplx[0] = new(big.Float).SetPrec(prec).SetInt(value)
		cmplx[1] = new(big.Float).SetPrec(prec)
	case *Complex:
		if value.IsNaN() {
			return NaN()
		}
		cmplx[0] = new(big.Float).SetPrec(prec).Set(value[0])
		cmplx[1] = new(big.Float).SetPrec(prec).Set(value[1])
	default:
		panic(fmt.Errorf("invalid value.(type): must be int, int64, uint64, float64, complex128, *big.Int, *big.Float or *Complex but is %T", value))
	}

	return
}

// NewComplexFromParts returns re + i*im, copying both parts at the given precision.
func NewComplexFromParts(re, im *big.Float, prec uint) *Complex {
	return &Complex{
		new(big.Float).SetPrec(prec).Set(re),
		new(big.Float).SetPrec(prec).Set(im),
	}
}

// IsInt returns true if both the real and imaginary parts are integers.
func (c Complex) IsInt() bool {
	return c[0].IsInt() && c[1].IsInt()
}

// IsReal returns true if the imaginary part is zero.
func (c Complex) IsReal() bool {
	return c[1] == nil || c[1].Sign() == 0
}

// IsZero returns true if both parts are zero.
func (c *Complex) IsZero() bool {
	return !c.IsNaN() && c[0].Sign() == 0 && c[1].Sign() == 0
}

// Set sets an arbitrary precision complex number
func (c *Complex) Set(a *Complex) *Complex {
	c[0].Set(a[0])
	c[1].Set(a[1])
	return c
}

// SetInt64 sets c to the real integer x.
func (c *Complex) SetInt64(x int64) *Complex {
	c[0].SetInt64(x)
	c[1].SetInt64(0)
	return c
}

// Prec returns the largest precision of the two parts.
func (c *Complex) Prec() uint {
	if c.IsNaN() {
		return 0
	}
	return utils.Max(c[0].Prec(), c[1].Prec())
}

// SetPrec sets the precision of both parts.
func (c *Complex) SetPrec(prec uint) *Complex {
	c[0].SetPrec(prec)
	c[1].SetPrec(prec)
	return c
}

// Clone returns a new copy of the target arbitrary precision complex number
func (c *Complex) Clone() *Complex {
	if c.IsNaN() {
		return NaN()
	}
	return &Complex{new(big.Float).Copy(c[0]), new(big.Float).Copy(c[1])}
}

// Real returns the real part as a big.Float
func (c *Complex) Real() *big.Float {
	return c[0]
}

// Imag returns the imaginary part as a big.Float
func (c *Complex) Imag() *big.Float {
	return c[1]
}

// Complex128 returns the arbitrary precision complex number as a complex128
func (c *Complex) Complex128() complex128 {

	real, _ := c[0].Float64()
	imag, _ := c[1].Float64()

	return complex(real, imag)
}

// Int returns the real part of the complex number as a *big.Int.
func (c *Complex) Int() (bInt *big.Int) {
	bInt = new(big.Int)
	c[0].Int(bInt)
	return
}

// Add adds two arbitrary precision complex numbers together
func (c *Complex) Add(a, b *Complex) *Complex {
	c[0].Add(a[0], b[0])
	c[1].Add(a[1], b[1])
	return c
}

// Sub subtracts two arbitrary precision complex numbers together
func (c *Complex) Sub(a, b *Complex) *Complex {
	c[0].Sub(a[0], b[0])
	c[1].Sub(a[1], b[1])
	return c
}

// Neg negates a and writes the result on c.
func (c *Complex) Neg(a *Complex) *Complex {
	c[0].Neg(a[0])
	c[1].Neg(a[1])
	return c
}

// Conj writes the complex conjugate of a on c.
func (c *Complex) Conj(a *Complex) *Complex {
	c[0].Set(a[0])
	c[1].Neg(a[1])
	return c
}

// ClearSignedZeros replaces -0 parts by +0.
func (c *Complex) ClearSignedZeros() *Complex {
	if c.IsNaN() {
		return c
	}
	for i := range c {
		if c[i].Sign() == 0 && c[i].Signbit() {
			c[i].Neg(c[i])
		}
	}
	return c
}

// Cmp is the total order on (real, imaginary) parts used to sort solution sets.
// The NaN sentinel sorts after every number.
func (c *Complex) Cmp(a *Complex) int {
	switch {
	case c.IsNaN() && a.IsNaN():
		return 0
	case c.IsNaN():
		return 1
	case a.IsNaN():
		return -1
	}
	if r := c[0].Cmp(a[0]); r != 0 {
		return r
	}
	return c[1].Cmp(a[1])
}

// Equal returns true if c and a hold the same value.
func (c *Complex) Equal(a *Complex) bool {
	if c.IsNaN() || a.IsNaN() {
		return c.IsNaN() && a.IsNaN()
	}
	return c[0].Cmp(a[0]) == 0 && c[1].Cmp(a[1]) == 0
}

// ComplexMultiplier is a struct for the multiplication or division of two arbitrary precision complex numbers
type ComplexMultiplier struct {
	tmp0 *big.Float
	tmp1 *big.Float
	tmp2 *big.Float
	tmp3 *big.Float
}

// NewComplexMultiplier creates a new ComplexMultiplier
func NewComplexMultiplier() (cEval *ComplexMultiplier) {
	cEval = new(ComplexMultiplier)
	cEval.tmp0 = new(big.Float)
	cEval.tmp1 = new(big.Float)
	cEval.tmp2 = new(big.Float)
	cEval.tmp3 = new(big.Float)
	return
}

func (cEval *ComplexMultiplier) setPrec(prec uint) {
	cEval.tmp0.SetPrec(prec)
	cEval.tmp1.SetPrec(prec)
	cEval.tmp2.SetPrec(prec)
	cEval.tmp3.SetPrec(prec)
}

// Mul evaluates c = a * b.
func (cEval *ComplexMultiplier) Mul(a, b, c *Complex) {

	if a.IsReal() {
		if b.IsReal() {
			c[0].Mul(a[0], b[0])
			c[1].SetFloat64(0)
		} else {
			cEval.setPrec(utils.Max(a.Prec(), b.Prec()))
			cEval.tmp0.Set(a[0])
			c[1].Mul(cEval.tmp0, b[1])
			c[0].Mul(cEval.tmp0, b[0])
		}
	} else {
		if b.IsReal() {
			cEval.setPrec(utils.Max(a.Prec(), b.Prec()))
			cEval.tmp0.Set(b[0])
			c[1].Mul(a[1], cEval.tmp0)
			c[0].Mul(a[0], cEval.tmp0)
		} else {
			cEval.setPrec(utils.Max(a.Prec(), b.Prec()))
			cEval.tmp0.Mul(a[0], b[0])
			cEval.tmp1.Mul(a[1], b[1])
			cEval.tmp2.Mul(a[0], b[1])
			cEval.tmp3.Mul(a[1], b[0])

			c[0].Sub(cEval.tmp0, cEval.tmp1)
			c[1].Add(cEval.tmp2, cEval.tmp3)
		}
	}
}

// Quo evaluates c = a / b.
func (cEval *ComplexMultiplier) Quo(a, b, c *Complex) {

	if b.IsReal() {
		if a.IsReal() {
			c[0].Quo(a[0], b[0])
			c[1].SetFloat64(0)
		} else {
			cEval.setPrec(utils.Max(a.Prec(), b.Prec()))
			cEval.tmp0.Set(b[0])
			c[1].Quo(a[1], cEval.tmp0)
			c[0].Quo(a[0], cEval.tmp0)
		}
		return
	}

	cEval.setPrec(utils.Max(a.Prec(), b.Prec()))

	// tmp0 = (a[0] * b[0]) + (a[1] * b[1]) real part
	// tmp1 = (a[1] * b[0]) - (a[0] * b[1]) imag part
	// tmp2 = (b[0] * b[0]) + (b[1] * b[1]) denominator
	cEval.tmp0.Mul(a[0], b[0])
	cEval.tmp1.Mul(a[1], b[1])
	cEval.tmp2.Mul(a[1], b[0])
	cEval.tmp3.Mul(a[0], b[1])

	cEval.tmp0.Add(cEval.tmp0, cEval.tmp1)
	cEval.tmp1.Sub(cEval.tmp2, cEval.tmp3)

	cEval.tmp2.Mul(b[0], b[0])
	cEval.tmp3.Mul(b[1], b[1])
	cEval.tmp2.Add(cEval.tmp2, cEval.tmp3)

	c[0].Quo(cEval.tmp0, cEval.tmp2)
	c[1].Quo(cEval.tmp1, cEval.tmp2)
}

// Mul returns a * b as a newly allocated value.
func Mul(a, b *Complex) *Complex {
	c := NewComplex(utils.Max(a.Prec(), b.Prec()))
	NewComplexMultiplier().Mul(a, b, c)
	return c
}

// Quo returns a / b as a newly allocated value.
// Dividing by zero panics with big.ErrNaN.
func Quo(a, b *Complex) *Complex {
	if b.IsZero() {
		panic(big.ErrNaN{})
	}
	c := NewComplex(utils.Max(a.Prec(), b.Prec()))
	NewComplexMultiplier().Quo(a, b, c)
	return c
}

// Add returns a + b as a newly allocated value.
func Add(a, b *Complex) *Complex {
	return NewComplex(utils.Max(a.Prec(), b.Prec())).Add(a, b)
}

// Sub returns a - b as a newly allocated value.
func Sub(a, b *Complex) *Complex {
	return NewComplex(utils.Max(a.Prec(), b.Prec())).Sub(a, b)
}

// Neg returns -a as a newly allocated value.
func Neg(a *Complex) *Complex {
	return NewComplex(a.Prec()).Neg(a)
}
