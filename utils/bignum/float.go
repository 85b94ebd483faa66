package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/symcalc/symcalc/utils"
)

const pi = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679821480865132823066470938446095505822317253594081284811174502841027019385211055596446229489549303819644288109756659334461284756482337867831652712019091456485669234603486104543266482133936072602491412737245870066063155881748815209209628292540917153643678925903600113305305488204665213841469519415116094330572703657595919530921861173819326117931051185480744623799627495673518857527248912279381830119491298336733624406566430860213949463952247371907021798609437027705392171762931767523846748184676694051320005681271452635608277857713427577896091736371787214684409012249534301465495853710507922796892589235420199561121290219608640344181598136297747713099605187072113499999983729780499510597317328160963185950244594553469083026425223082533446850352619311881710100031378387528865875332083814206171776691473035982534904287554687311595628638823537875937519577818577805321712268066130019278766111959092164201989"

// guardBits is the extra working precision used by the iterative functions below.
const guardBits = 64

// Pi returns Pi with prec bits of precision.
func Pi(prec uint) *big.Float {
	pi, _ := new(big.Float).SetPrec(prec).SetString(pi)
	return pi
}

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valide types for x are: int, int64, uint, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec) // decimal precision

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valide types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Round returns round(x), rounding half away from zero.
func Round(x *big.Float) (r *big.Float) {
	r = new(big.Float).Set(x)
	if r.Cmp(new(big.Float)) >= 0 {
		r.Add(r, new(big.Float).SetFloat64(0.5))
	} else {
		r.Sub(r, new(big.Float).SetFloat64(0.5))
	}

	tmp := new(big.Int)
	r.Int(tmp)
	r.SetInt(tmp)
	return
}

// workingPrec returns the precision of x, or 53 bits for a zero-precision value.
func workingPrec(x *big.Float) uint {
	if p := x.Prec(); p != 0 {
		return p
	}
	return 53
}

// negligible reports whether term no longer contributes to sum at prec bits.
func negligible(term, sum *big.Float, prec uint) bool {
	if term.Sign() == 0 {
		return true
	}
	if sum.Sign() == 0 {
		return term.MantExp(nil) < -int(prec)
	}
	return term.MantExp(nil) < sum.MantExp(nil)-int(prec)
}

// reduceAngle returns x - 2*pi*round(x/(2*pi)), which lies in [-pi, pi].
func reduceAngle(x *big.Float) *big.Float {
	prec := x.Prec()
	twoPi := Pi(prec)
	twoPi.Mul(twoPi, NewFloat(2, prec))
	q := Round(new(big.Float).SetPrec(prec).Quo(x, twoPi))
	if q.Sign() == 0 {
		return new(big.Float).Set(x)
	}
	r := new(big.Float).SetPrec(prec).Mul(q, twoPi)
	return r.Sub(x, r)
}

// SinCos returns sin(x) and cos(x) at the precision of x.
// The argument is reduced modulo 2*pi, halved a fixed number of times,
// evaluated by Taylor series and doubled back.
func SinCos(x *big.Float) (sinx, cosx *big.Float) {

	prec := workingPrec(x)

	if x.Sign() == 0 {
		return NewFloat(0, prec), NewFloat(1, prec)
	}

	wp := prec + guardBits

	const halvings = 8

	r := reduceAngle(new(big.Float).SetPrec(wp).Set(x))
	r.SetMantExp(r, -halvings)

	r2 := new(big.Float).SetPrec(wp).Mul(r, r)

	s := new(big.Float).SetPrec(wp).Set(r)
	c := NewFloat(1, wp)

	term := new(big.Float).SetPrec(wp).Set(r)
	for k := int64(1); k < int64(wp); k++ {
		term.Mul(term, r2)
		term.Quo(term, NewFloat((2*k)*(2*k+1), wp))
		term.Neg(term)
		s.Add(s, term)
		if negligible(term, s, wp) {
			break
		}
	}

	term = NewFloat(1, wp)
	for k := int64(1); k < int64(wp); k++ {
		term.Mul(term, r2)
		term.Quo(term, NewFloat((2*k-1)*(2*k), wp))
		term.Neg(term)
		c.Add(c, term)
		if negligible(term, c, wp) {
			break
		}
	}

	tmp := new(big.Float).SetPrec(wp)
	for i := 0; i < halvings; i++ {
		// sin(2a) = 2 sin(a) cos(a), cos(2a) = cos(a)^2 - sin(a)^2
		tmp.Mul(s, c)
		tmp.SetMantExp(tmp, 1)
		c.Mul(c, c)
		s.Mul(s, s)
		c.Sub(c, s)
		s.Set(tmp)
	}

	return s.SetPrec(prec), c.SetPrec(prec)
}

// Cos returns cos(x) at the precision of x.
func Cos(x *big.Float) (cosx *big.Float) {
	_, cosx = SinCos(x)
	return
}

// Sin returns sin(x) at the precision of x.
func Sin(x *big.Float) (sinx *big.Float) {
	sinx, _ = SinCos(x)
	return
}

// Atan returns atan(x) at the precision of x.
// |x| > 1 is folded with atan(x) = pi/2 - atan(1/x), then the argument is shrunk with
// atan(x) = 2*atan(x/(1+sqrt(1+x^2))) before the Taylor series.
func Atan(x *big.Float) *big.Float {

	prec := workingPrec(x)

	if x.Sign() == 0 {
		return NewFloat(0, prec)
	}

	wp := prec + guardBits
	one := NewFloat(1, wp)

	y := new(big.Float).SetPrec(wp).Abs(x)
	neg := x.Sign() < 0

	inverted := y.Cmp(one) > 0
	if inverted {
		y.Quo(one, y)
	}

	const reductions = 8

	t := new(big.Float).SetPrec(wp)
	for i := 0; i < reductions; i++ {
		t.Mul(y, y)
		t.Add(t, one)
		t.Sqrt(t)
		t.Add(t, one)
		y.Quo(y, t)
	}

	y2 := new(big.Float).SetPrec(wp).Mul(y, y)
	power := new(big.Float).SetPrec(wp).Set(y)
	sum := new(big.Float).SetPrec(wp).Set(y)
	for n := int64(1); n < int64(wp); n++ {
		power.Mul(power, y2)
		power.Neg(power)
		t.Quo(power, NewFloat(2*n+1, wp))
		sum.Add(sum, t)
		if negligible(t, sum, wp) {
			break
		}
	}

	sum.SetMantExp(sum, reductions)

	if inverted {
		halfPi := Pi(wp)
		halfPi.SetMantExp(halfPi, -1)
		sum.Sub(halfPi, sum)
	}

	if neg {
		sum.Neg(sum)
	}

	return sum.SetPrec(prec)
}

// Atan2 returns the angle of the point (x, y) in (-pi, pi].
func Atan2(y, x *big.Float) *big.Float {

	prec := utils.Max(workingPrec(x), workingPrec(y))

	switch x.Sign() {
	case 1:
		return Atan(new(big.Float).SetPrec(prec).Quo(y, x))
	case -1:
		a := Atan(new(big.Float).SetPrec(prec).Quo(y, x))
		if y.Sign() < 0 {
			return a.Sub(a, Pi(prec))
		}
		return a.Add(a, Pi(prec))
	}

	switch y.Sign() {
	case 1:
		halfPi := Pi(prec)
		return halfPi.SetMantExp(halfPi, -1)
	case -1:
		halfPi := Pi(prec)
		halfPi.SetMantExp(halfPi, -1)
		return halfPi.Neg(halfPi)
	}

	return NewFloat(0, prec)
}

// Log return ln(x) with 2^precisions bits.
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Exp returns exp(x) with 2^precisions bits.
func Exp(x *big.Float) (exp *big.Float) {
	if x.Sign() == 0 {
		return NewFloat(1, workingPrec(x))
	}
	return bigfloat.Exp(x)
}

// Pow returns x^y
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}

// SinhCosh returns sinh(x) and cosh(x).
func SinhCosh(x *big.Float) (sinh, cosh *big.Float) {

	prec := workingPrec(x)

	if x.Sign() == 0 {
		return NewFloat(0, prec), NewFloat(1, prec)
	}

	wp := prec + guardBits

	ex := Exp(new(big.Float).SetPrec(wp).Set(x))
	emx := new(big.Float).SetPrec(wp).Quo(NewFloat(1, wp), ex)

	sinh = new(big.Float).SetPrec(wp).Sub(ex, emx)
	sinh.SetMantExp(sinh, -1)

	cosh = new(big.Float).SetPrec(wp).Add(ex, emx)
	cosh.SetMantExp(cosh, -1)

	return sinh.SetPrec(prec), cosh.SetPrec(prec)
}

// Sign returns -1, 0 or 1 as a big.Float with the precision of x.
func Sign(x *big.Float) (y *big.Float) {
	return NewFloat(x.Sign(), workingPrec(x))
}
