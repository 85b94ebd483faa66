package bignum

import (
	"math/big"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplex(t *testing.T) {

	prec := uint(128)

	t.Run("Arithmetic", func(t *testing.T) {
		a := ToComplex(complex(1, 2), prec)
		b := ToComplex(complex(3, -1), prec)

		require.Equal(t, complex(4, 1), Add(a, b).Complex128())
		require.Equal(t, complex(-2, 3), Sub(a, b).Complex128())
		require.Equal(t, complex(5, 5), Mul(a, b).Complex128())
		require.Equal(t, complex(-1, -2), Neg(a).Complex128())

		q := Quo(a, b).Complex128()
		require.InDelta(t, 0.1, real(q), 1e-15)
		require.InDelta(t, 0.7, imag(q), 1e-15)
	})

	t.Run("QuoRealByComplex", func(t *testing.T) {
		q := Quo(ToComplex(2, prec), ToComplex(complex(1, 1), prec))
		require.Equal(t, complex(1, -1), q.Complex128())
	})

	t.Run("QuoByZero", func(t *testing.T) {
		require.Panics(t, func() { Quo(ToComplex(1, prec), NewComplex(prec)) })
	})

	t.Run("NaN", func(t *testing.T) {
		require.True(t, NaN().IsNaN())
		require.False(t, NewComplex(prec).IsNaN())
		require.True(t, ToComplex(NaN(), prec).IsNaN())
		require.True(t, NaN().Clone().IsNaN())
		require.True(t, NaN().Equal(NaN()))
		require.False(t, NaN().Equal(NewComplex(prec)))
	})

	t.Run("Predicates", func(t *testing.T) {
		require.True(t, ToComplex(3, prec).IsInt())
		require.False(t, ToComplex(3.5, prec).IsInt())
		require.True(t, ToComplex(3.5, prec).IsReal())
		require.False(t, ToComplex(complex(0, 1), prec).IsReal())
		require.True(t, NewComplex(prec).IsZero())
		require.Equal(t, int64(-4), ToComplex(-4, prec).Int().Int64())
	})

	t.Run("ClearSignedZeros", func(t *testing.T) {
		z := Neg(NewComplex(prec))
		require.True(t, z[0].Signbit())
		z.ClearSignedZeros()
		require.False(t, z[0].Signbit())
		require.False(t, z[1].Signbit())
	})

	t.Run("TotalOrder", func(t *testing.T) {
		values := []*Complex{
			ToComplex(1, prec),
			NaN(),
			ToComplex(complex(0, 1), prec),
			ToComplex(-1, prec),
			ToComplex(complex(0, -1), prec),
		}
		sort.Slice(values, func(i, j int) bool { return values[i].Cmp(values[j]) < 0 })
		require.Equal(t, complex(-1, 0), values[0].Complex128())
		require.Equal(t, complex(0, -1), values[1].Complex128())
		require.Equal(t, complex(0, 1), values[2].Complex128())
		require.Equal(t, complex(1, 0), values[3].Complex128())
		require.True(t, values[4].IsNaN())
	})

	t.Run("Precision", func(t *testing.T) {
		a := NewComplexFromParts(big.NewFloat(1), big.NewFloat(2), 200)
		require.Equal(t, uint(200), a.Prec())
		require.Equal(t, uint(200), Mul(a, ToComplex(1, 64)).Prec())
		require.Equal(t, uint(90), a.Clone().SetPrec(90).Prec())
	})
}
