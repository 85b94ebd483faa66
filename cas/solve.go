package cas

import (
	"fmt"
	"sort"

	"github.com/symcalc/symcalc/eval"
	"github.com/symcalc/symcalc/roots"
	"github.com/symcalc/symcalc/utils/bignum"
)

// Solve returns the roots of the polynomial with the given coefficients, by ascending power.
//
// Roots at zero are peeled off one at a time while the two lowest coefficients vanish,
// and returned exactly when a closed form would otherwise see a vanishing constant term.
// A polynomial p(x^s) with a constant stride s between its non-zero coefficients is
// solved in x^s, and every root is expanded into its s-th roots. The reduced polynomial
// must be of degree at most four; degree zero yields the NaN sentinel.
// The roots are sorted by (real, imaginary) part.
func Solve(coeffs []*bignum.Complex, opts eval.Options) ([]*bignum.Complex, error) {

	p := trim(cloneCoefficients(coeffs))

	var zeros []*bignum.Complex
	for len(p) > 1 && p[0].IsZero() && p[1].IsZero() {
		p = p[1:]
		zeros = append(zeros, bignum.NewComplex(opts.Prec))
	}

	stride := Stride(p)

	reduced := make([]*bignum.Complex, 0, (len(p)+stride-1)/stride)
	for i := 0; i < len(p); i += stride {
		reduced = append(reduced, p[i])
	}

	// a vanishing constant term is an exact root, deflated before the closed forms
	for stride == 1 && len(reduced) > 2 && len(reduced) <= 5 && reduced[0].IsZero() {
		zeros = append(zeros, bignum.NewComplex(opts.Prec))
		reduced = reduced[1:]
	}

	var values []*bignum.Complex

	switch len(reduced) {
	case 0, 1:
		values = []*bignum.Complex{bignum.NaN()}
	case 2:
		values = roots.Linear(reduced[1], reduced[0])
	case 3:
		values = roots.Quadratic(reduced[2], reduced[1], reduced[0])
	case 4:
		values = roots.Cubic(reduced[3], reduced[2], reduced[1], reduced[0])
	case 5:
		values = roots.Quartic(reduced[4], reduced[3], reduced[2], reduced[1], reduced[0])
	default:
		return nil, fmt.Errorf("%w: reduced degree is %d", ErrGreaterThanQuartic, len(reduced)-1)
	}

	if stride > 1 {
		expanded := make([]*bignum.Complex, 0, stride*len(values))
		for _, v := range values {
			expanded = append(expanded, roots.Unity(v, stride)...)
		}
		values = expanded
	}

	values = append(zeros, values...)

	SortValues(values)

	return values, nil
}

// Stride returns the constant spacing between the indices of the non-zero coefficients
// of p, the constant term always counting as non-zero, or 1 if the spacing is not
// constant. Lists of fewer than five coefficients have stride 1.
func Stride(p []*bignum.Complex) int {

	if len(p) < 5 {
		return 1
	}

	var powers []int
	for i, c := range p {
		if i == 0 || !c.IsZero() {
			powers = append(powers, i)
		}
	}

	if len(powers) < 2 {
		return 1
	}

	stride := powers[1] - powers[0]
	for i := 2; i < len(powers); i++ {
		if powers[i]-powers[i-1] != stride {
			return 1
		}
	}

	return stride
}

// SortValues sorts values in place by (real, imaginary) part, the NaN sentinel last.
func SortValues(values []*bignum.Complex) {
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Cmp(values[j]) < 0
	})
}
