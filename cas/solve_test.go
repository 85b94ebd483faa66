package cas

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/symcalc/symcalc/utils/bignum"
	"github.com/symcalc/symcalc/utils/sampling"
)

func TestStride(t *testing.T) {

	for _, tc := range []struct {
		coeffs []interface{}
		stride int
	}{
		{[]interface{}{-1, 0, 0, 0, 1}, 4},
		{[]interface{}{1, 0, 1, 0, 1}, 2},
		{[]interface{}{-1, 0, 0, 1, 0, 0, 1}, 3},
		{[]interface{}{0, 0, 1, 0, 0, 1}, 1},
		{[]interface{}{1, 0, 0, 1, 0, 1}, 1},
		{[]interface{}{0, 0, 0, 0, 0, 0, 1}, 6},
		{[]interface{}{1, 0, 1}, 1},
		{[]interface{}{1, 2, 3, 4, 5}, 1},
	} {
		t.Run(fmt.Sprintf("%v", tc.coeffs), func(t *testing.T) {
			require.Equal(t, tc.stride, Stride(coefficients(tc.coeffs...)))
		})
	}
}

func TestSolve(t *testing.T) {

	t.Run("Linear", func(t *testing.T) {
		// 2x - 6
		values, err := Solve(coefficients(-6, 2), opts)
		require.NoError(t, err)
		requireValues(t, []complex128{3}, values)
	})

	t.Run("Constant", func(t *testing.T) {
		for _, coeffs := range [][]*bignum.Complex{nil, coefficients(5), coefficients(5, 0, 0)} {
			values, err := Solve(coeffs, opts)
			require.NoError(t, err)
			require.Len(t, values, 1)
			require.True(t, values[0].IsNaN())
		}
	})

	t.Run("ZeroRoots", func(t *testing.T) {
		// x^4 - 4x^2
		values, err := Solve(coefficients(0, 0, -4, 0, 1), opts)
		require.NoError(t, err)
		requireValues(t, []complex128{-2, 0, 0, 2}, values)
	})

	t.Run("TripleZero", func(t *testing.T) {
		values, err := Solve(coefficients(0, 0, 0, 1), opts)
		require.NoError(t, err)
		requireValues(t, []complex128{0, 0, 0}, values)
	})

	t.Run("SingleZero", func(t *testing.T) {
		// x^2 - x has a single root at zero, left to the quadratic solver
		values, err := Solve(coefficients(0, -1, 1), opts)
		require.NoError(t, err)
		requireValues(t, []complex128{0, 1}, values)
	})

	t.Run("VanishingConstant", func(t *testing.T) {
		for _, coeffs := range [][]*bignum.Complex{
			coefficients(0, 5, -3, 0, -4),
			coefficients(0, -9, -6, 6),
			coefficients(0, 9, -2, -4, -7),
			coefficients(0, 1, 0, 1),
		} {
			values, err := Solve(coeffs, opts)
			require.NoError(t, err)
			require.Len(t, values, len(coeffs)-1)
			requireSorted(t, values)
			requireResidual(t, coeffs, values)

			var zeros int
			for _, v := range values {
				if v.IsZero() {
					zeros++
				}
			}
			require.Equal(t, 1, zeros, "the root at zero is exact")
		}
	})

	t.Run("Stride", func(t *testing.T) {
		// x^4 - 1
		values, err := Solve(coefficients(-1, 0, 0, 0, 1), opts)
		require.NoError(t, err)
		requireValues(t, []complex128{-1, complex(0, -1), complex(0, 1), 1}, values)
	})

	t.Run("StrideSix", func(t *testing.T) {
		// x^6 - 9x^3 + 8 = (x^3 - 1)(x^3 - 8)
		coeffs := coefficients(8, 0, 0, -9, 0, 0, 1)
		values, err := Solve(coeffs, opts)
		require.NoError(t, err)
		require.Len(t, values, 6)
		requireSorted(t, values)
		requireResidual(t, coeffs, values)
	})

	t.Run("GreaterThanQuartic", func(t *testing.T) {
		// x^5 - x - 1
		_, err := Solve(coefficients(-1, -1, 0, 0, 0, 1), opts)
		require.ErrorIs(t, err, ErrGreaterThanQuartic)
	})

	t.Run("OcticWithStride", func(t *testing.T) {
		// x^8 - 17x^4 + 16 is a quadratic in x^4
		coeffs := coefficients(16, 0, 0, 0, -17, 0, 0, 0, 1)
		values, err := Solve(coeffs, opts)
		require.NoError(t, err)
		requireValues(t, []complex128{-2, -1, complex(0, -2), complex(0, -1), complex(0, 1), complex(0, 2), 1, 2}, values)
	})

	t.Run("Random", func(t *testing.T) {

		prng, err := sampling.NewKeyedPRNG([]byte("cas.Solve"))
		require.NoError(t, err)

		for degree := 1; degree <= 4; degree++ {
			for i := 0; i < 8; i++ {

				ints, err := sampling.IntegerPolynomial(prng, degree, 9)
				require.NoError(t, err)

				coeffs := bignum.NewPolynomial(ints, prec).Coeffs

				values, err := Solve(coeffs, opts)
				require.NoError(t, err, "%v", ints)
				require.Len(t, values, degree, "%v", ints)
				requireSorted(t, values)
				requireResidual(t, coeffs, values)
			}
		}
	})
}

// requireResidual checks that every value cancels the polynomial given by ascending power.
func requireResidual(t *testing.T, coeffs, values []*bignum.Complex) {
	t.Helper()

	var scale float64
	for _, c := range coeffs {
		f, _ := bignum.Abs(c).Float64()
		scale += f
	}

	poly := bignum.Polynomial{Coeffs: coeffs}

	for _, v := range values {
		require.False(t, v.IsNaN())
		r, _ := bignum.Abs(poly.Evaluate(v)).Float64()
		m, _ := bignum.Abs(v).Float64()
		if m < 1 {
			m = 1
		}
		bound := 1e-30 * scale
		for range coeffs {
			bound *= m
		}
		require.Less(t, r, bound, "residual of %v", v.Complex128())
	}
}
