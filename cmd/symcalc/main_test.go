package main

import (
	"bytes"
	"encoding/json"
	"math/big"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/symcalc/symcalc/cas"
	"github.com/symcalc/symcalc/eval"
	"github.com/symcalc/symcalc/utils/bignum"
)

// run executes the root command from an empty working and home directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}

func isolate(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestSolveCommand(t *testing.T) {

	t.Run("Linear", func(t *testing.T) {
		isolate(t)
		out, err := run(t, "solve", "2x - 6 = 0")
		require.NoError(t, err)
		assert.Equal(t, "3\n", out)
	})

	t.Run("Quadratic", func(t *testing.T) {
		isolate(t)
		out, err := run(t, "solve", "x^2", "=", "4")
		require.NoError(t, err)
		got := lines(out)
		require.Len(t, got, 2)
		assert.True(t, strings.HasPrefix(got[0], "-2"), got[0])
		assert.True(t, strings.HasPrefix(got[1], "2"), got[1])
	})

	t.Run("ExactZero", func(t *testing.T) {
		isolate(t)
		out, err := run(t, "solve", "x^3 + x")
		require.NoError(t, err)
		got := lines(out)
		require.Len(t, got, 3)
		assert.Equal(t, "0", got[1])
	})

	t.Run("Unknown", func(t *testing.T) {
		isolate(t)
		out, err := run(t, "solve", "--for", "t", "t + 1")
		require.NoError(t, err)
		assert.Equal(t, "-1\n", out)
	})

	t.Run("ShadowedConstant", func(t *testing.T) {
		isolate(t)
		out, err := run(t, "solve", "--for", "e", "e - 5")
		require.NoError(t, err)
		assert.Equal(t, "5\n", out)
	})

	t.Run("JSON", func(t *testing.T) {
		isolate(t)
		out, err := run(t, "solve", "-o", "json", "x - 3")
		require.NoError(t, err)

		var report valuesReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, valuesReport{Input: "x - 3", Unknown: "x", Values: []string{"3"}}, report)
	})

	t.Run("YAML", func(t *testing.T) {
		isolate(t)
		out, err := run(t, "solve", "-o", "yaml", "x - 3")
		require.NoError(t, err)

		var report valuesReport
		require.NoError(t, yaml.Unmarshal([]byte(out), &report))
		assert.Equal(t, []string{"3"}, report.Values)
	})

	t.Run("Table", func(t *testing.T) {
		isolate(t)
		out, err := run(t, "solve", "-o", "table", "x - 3")
		require.NoError(t, err)
		assert.Contains(t, out, "3")
		assert.Greater(t, len(lines(out)), 2)
	})

	t.Run("ConfigFile", func(t *testing.T) {
		isolate(t)
		require.NoError(t, os.WriteFile("symcalc.yaml", []byte("variables:\n  a: \"7\"\n"), 0o600))
		out, err := run(t, "solve", "x = a")
		require.NoError(t, err)
		assert.Equal(t, "7\n", out)
	})

	t.Run("NothingToIsolate", func(t *testing.T) {
		isolate(t)
		_, err := run(t, "solve", "y + 1")
		require.ErrorIs(t, err, cas.ErrNothingToIsolate)
	})

	t.Run("GreaterThanQuartic", func(t *testing.T) {
		isolate(t)
		_, err := run(t, "solve", "x^5 + x + 1")
		require.ErrorIs(t, err, cas.ErrGreaterThanQuartic)
	})

	t.Run("Syntax", func(t *testing.T) {
		isolate(t)
		_, err := run(t, "solve", "x + ")
		require.Error(t, err)
	})

	t.Run("NoArgs", func(t *testing.T) {
		isolate(t)
		_, err := run(t, "solve")
		require.Error(t, err)
	})
}

func TestEvalCommand(t *testing.T) {

	t.Run("Sum", func(t *testing.T) {
		isolate(t)
		out, err := run(t, "eval", "1 + 2")
		require.NoError(t, err)
		assert.Equal(t, "3\n", out)
	})

	t.Run("Digits", func(t *testing.T) {
		isolate(t)
		out, err := run(t, "eval", "-d", "5", "pi")
		require.NoError(t, err)
		assert.Equal(t, "3.1416\n", out)
	})

	t.Run("Scientific", func(t *testing.T) {
		isolate(t)
		out, err := run(t, "eval", "--sci", "-d", "3", "1234")
		require.NoError(t, err)
		assert.Equal(t, "1.23e+03\n", out)
	})

	t.Run("Environment", func(t *testing.T) {
		isolate(t)
		t.Setenv("SYMCALC_DIGITS", "3")
		out, err := run(t, "eval", "pi")
		require.NoError(t, err)
		assert.Equal(t, "3.14\n", out)
	})

	t.Run("Vector", func(t *testing.T) {
		isolate(t)
		out, err := run(t, "eval", "{1, 2} * 3")
		require.NoError(t, err)
		assert.Equal(t, []string{"3", "6"}, lines(out))
	})

	t.Run("InvalidPrecision", func(t *testing.T) {
		isolate(t)
		_, err := run(t, "eval", "-p", "8", "1")
		require.ErrorContains(t, err, "precision")
	})

	t.Run("InvalidOutput", func(t *testing.T) {
		isolate(t)
		_, err := run(t, "eval", "-o", "xml", "1")
		require.ErrorContains(t, err, "output")
	})

	t.Run("UnboundName", func(t *testing.T) {
		isolate(t)
		_, err := run(t, "eval", "y + 1")
		require.Error(t, err)
	})
}

func TestSelftestCommand(t *testing.T) {

	t.Run("Text", func(t *testing.T) {
		isolate(t)
		out, err := run(t, "selftest", "--count", "20")
		require.NoError(t, err)
		assert.Contains(t, out, "polynomials:")
		assert.Contains(t, out, "20")
	})

	t.Run("JSON", func(t *testing.T) {
		isolate(t)
		out, err := run(t, "selftest", "-o", "json", "--count", "30", "--max-degree", "6", "--seed", "json")
		require.NoError(t, err)

		var report selftestReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, "json", report.Seed)
		assert.Equal(t, 30, report.Polynomials)
		assert.Equal(t, 30, report.Solved+report.Rejected)
		assert.Zero(t, report.Failed)
	})

	t.Run("InvalidCount", func(t *testing.T) {
		isolate(t)
		_, err := run(t, "selftest", "--count", "0")
		require.ErrorContains(t, err, "count")
	})
}

func TestSelftest(t *testing.T) {

	p := selftestParameters{seed: "selftest", count: 50, maxDegree: 4, bound: 9}

	report, err := selftest(p, 128)
	require.NoError(t, err)
	require.Equal(t, 50, report.Solved)
	require.Zero(t, report.Rejected)
	require.Zero(t, report.Failed)
	require.GreaterOrEqual(t, report.Roots, 50)
	require.LessOrEqual(t, report.MedianResidual, report.MaxResidual)

	again, err := selftest(p, 128)
	require.NoError(t, err)
	require.Equal(t, report, again, "the generator is deterministic")
}

func TestSelftestRandomSeed(t *testing.T) {

	p := selftestParameters{count: 10, maxDegree: 4, bound: 9}

	report, err := selftest(p, 128)
	require.NoError(t, err)
	require.Len(t, report.Seed, 32)

	p.seed = report.Seed
	replay, err := selftest(p, 128)
	require.NoError(t, err)
	require.Equal(t, report, replay, "the reported seed replays the run")
}

func TestResidual(t *testing.T) {

	// 5x - 3x^2 - 4x^4 has a root at zero next to the quartic's other roots
	poly := bignum.NewPolynomial([]int64{0, 5, -3, 0, -4}, 128)

	values, err := cas.Solve(poly.Coeffs, eval.Options{Prec: 128})
	require.NoError(t, err)
	require.Len(t, values, 4)

	tolerance := new(big.Float).SetMantExp(big.NewFloat(1), -64)

	for _, v := range values {
		x := residual(poly, v)
		require.True(t, x.Cmp(tolerance) <= 0, "residual %v of root %v", x, v.Complex128())
		if v.IsZero() {
			require.Zero(t, x.Sign())
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "symcalc v"+Version+"\n", out)
}
