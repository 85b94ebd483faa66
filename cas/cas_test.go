package cas

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/symcalc/symcalc/eval"
	"github.com/symcalc/symcalc/token"
	"github.com/symcalc/symcalc/utils/bignum"
)

const prec = 256

var (
	x   = token.Name("x")
	lp  = token.LeftRound
	rp  = token.RightRound
	add = token.Add
	sub = token.Sub
	mul = token.Mul
	div = token.Div
	pow = token.Pow

	opts = eval.Options{Prec: prec}
)

func num(v interface{}) token.Num {
	return token.NewNum(v, prec)
}

func c(v interface{}) *bignum.Complex {
	return bignum.ToComplex(v, prec)
}

func coefficients(values ...interface{}) []*bignum.Complex {
	out := make([]*bignum.Complex, len(values))
	for i := range values {
		out[i] = c(values[i])
	}
	return out
}

func span(tokens ...token.Token) []token.Token {
	return tokens
}

func complexes(values []*bignum.Complex) []complex128 {
	out := make([]complex128, len(values))
	for i := range values {
		out[i] = values[i].Complex128()
	}
	return out
}

func requireValues(t *testing.T, expected []complex128, actual []*bignum.Complex) {
	t.Helper()
	require.Len(t, actual, len(expected), "%v", complexes(actual))
	for i := range expected {
		require.False(t, actual[i].IsNaN(), "value %d is NaN", i)
		got := actual[i].Complex128()
		require.InDelta(t, real(expected[i]), real(got), 1e-14, "value %d: %v", i, complexes(actual))
		require.InDelta(t, imag(expected[i]), imag(got), 1e-14, "value %d: %v", i, complexes(actual))
	}
}

func requireSorted(t *testing.T, values []*bignum.Complex) {
	t.Helper()
	require.True(t, sort.SliceIsSorted(values, func(i, j int) bool {
		return values[i].Cmp(values[j]) < 0
	}), "%v", complexes(values))
}
