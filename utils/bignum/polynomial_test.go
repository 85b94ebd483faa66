package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolynomial(t *testing.T) {

	prec := uint(128)

	t.Run("Evaluate", func(t *testing.T) {
		// x^3 - 2x + 5
		p := NewPolynomial([]int64{5, -2, 0, 1}, prec)
		require.Equal(t, 3, p.Degree())
		require.Equal(t, complex(1, 0), p.Evaluate(ToComplex(-2, prec)).Complex128())
		require.Equal(t, complex(5, 0), p.Evaluate(NewComplex(prec)).Complex128())
		// (i)^3 - 2i + 5 = 5 - 3i
		require.Equal(t, complex(5, -3), p.Evaluate(ToComplex(complex(0, 1), prec)).Complex128())
	})

	t.Run("CoefficientTypes", func(t *testing.T) {
		x := ToComplex(2, prec)
		require.Equal(t, complex(7, 0), NewPolynomial([]float64{1, 3}, prec).Evaluate(x).Complex128())
		require.Equal(t, complex(7, 2), NewPolynomial([]complex128{complex(1, 2), 3}, prec).Evaluate(x).Complex128())
		require.Equal(t, complex(7, 0), NewPolynomial([]*big.Float{big.NewFloat(1), big.NewFloat(3)}, prec).Evaluate(x).Complex128())
		require.Equal(t, complex(6, 0), NewPolynomial([]*Complex{nil, ToComplex(3, prec)}, prec).Evaluate(x).Complex128())
		require.Panics(t, func() { NewPolynomial([]string{"1"}, prec) })
	})

	t.Run("Empty", func(t *testing.T) {
		require.True(t, Polynomial{}.Evaluate(ToComplex(3, prec)).IsZero())
		require.True(t, NewPolynomial([]int64{1}, prec).Evaluate(NaN()).IsNaN())
	})

	t.Run("Clone", func(t *testing.T) {
		p := NewPolynomial([]int64{1, 2}, prec)
		q := p.Clone()
		q.Coeffs[0].SetInt64(7)
		require.Equal(t, complex(1, 0), p.Coeffs[0].Complex128())
	})
}

func TestText(t *testing.T) {

	prec := uint(128)

	for _, tc := range []struct {
		value    complex128
		expected string
	}{
		{2, "2"},
		{-0.5, "-0.5"},
		{0, "0"},
		{complex(0, 1), "i"},
		{complex(0, -1), "-i"},
		{complex(0, 3), "3i"},
		{complex(1, 2), "1+2i"},
		{complex(1, -2), "1-2i"},
		{complex(1.5, -1), "1.5-i"},
		{complex(1, 1e-40), "1"},
	} {
		t.Run(tc.expected, func(t *testing.T) {
			require.Equal(t, tc.expected, ToComplex(tc.value, prec).Text(16))
		})
	}

	require.Equal(t, "NaN", NaN().String())
	require.Equal(t, "3.142", (&Complex{Pi(prec), NewFloat(0, prec)}).Text(4))

	t.Run("Scientific", func(t *testing.T) {
		require.Equal(t, "1.2345e+03", ToComplex(1234.5, prec).TextFormat('e', 5))
		require.Equal(t, "1.50e+00-2.00e-03i", ToComplex(complex(1.5, -0.002), prec).TextFormat('e', 3))
		require.Equal(t, "0", ToComplex(0, prec).TextFormat('e', 3))
		require.Equal(t, "1234.5", ToComplex(1234.5, prec).TextFormat('g', 16))
	})
}
