package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symcalc/symcalc/utils/sampling"
)

func TestRandInt64(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG([]byte("symcalc"))
	require.NoError(t, err)

	t.Run("Bounds", func(t *testing.T) {
		seen := map[int64]bool{}
		for i := 0; i < 2048; i++ {
			v, err := sampling.RandInt64(prng, 3)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, int64(-3))
			require.LessOrEqual(t, v, int64(3))
			seen[v] = true
		}
		require.Len(t, seen, 7)
	})

	t.Run("ZeroBound", func(t *testing.T) {
		v, err := sampling.RandInt64(prng, 0)
		require.NoError(t, err)
		require.Zero(t, v)
	})

	t.Run("NegativeBound", func(t *testing.T) {
		_, err := sampling.RandInt64(prng, -1)
		require.Error(t, err)
	})
}

func TestIntegerPolynomial(t *testing.T) {

	t.Run("Deterministic", func(t *testing.T) {
		a, err := sampling.NewKeyedPRNG([]byte("seed"))
		require.NoError(t, err)
		b, err := sampling.NewKeyedPRNG([]byte("seed"))
		require.NoError(t, err)

		for degree := 0; degree < 5; degree++ {
			pa, err := sampling.IntegerPolynomial(a, degree, 10)
			require.NoError(t, err)
			pb, err := sampling.IntegerPolynomial(b, degree, 10)
			require.NoError(t, err)
			require.Equal(t, pa, pb)
			require.Len(t, pa, degree+1)
			require.NotZero(t, pa[degree])
		}
	})

	t.Run("InvalidArguments", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG(nil)
		require.NoError(t, err)
		_, err = sampling.IntegerPolynomial(prng, -1, 10)
		require.Error(t, err)
		_, err = sampling.IntegerPolynomial(prng, 2, 0)
		require.Error(t, err)
	})
}
