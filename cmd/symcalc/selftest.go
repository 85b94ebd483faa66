package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/symcalc/symcalc/cas"
	"github.com/symcalc/symcalc/eval"
	"github.com/symcalc/symcalc/utils/bignum"
	"github.com/symcalc/symcalc/utils/sampling"
)

// selftestReport summarizes the scaled residuals |P(r)| / (sum |c_k| max(1, |r|)^deg P)
// of the roots r found for random integer polynomials P.
type selftestReport struct {
	Seed           string  `json:"seed" yaml:"seed"`
	Precision      uint    `json:"precision" yaml:"precision"`
	Polynomials    int     `json:"polynomials" yaml:"polynomials"`
	Solved         int     `json:"solved" yaml:"solved"`
	Rejected       int     `json:"rejected" yaml:"rejected"`
	Roots          int     `json:"roots" yaml:"roots"`
	Failed         int     `json:"failed" yaml:"failed"`
	MaxResidual    float64 `json:"max_residual" yaml:"max_residual"`
	MeanResidual   float64 `json:"mean_residual" yaml:"mean_residual"`
	MedianResidual float64 `json:"median_residual" yaml:"median_residual"`
}

type selftestParameters struct {
	seed      string
	count     int
	maxDegree int
	bound     int64
}

func newSelftestCmd(a *app) *cobra.Command {

	var p selftestParameters

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Solve random polynomials and check the roots",
		Long: `Sample random integer polynomials from a seeded generator, solve them and
substitute the roots back. Polynomials above degree four are rejected unless
they reduce to a lower degree. A root fails when its scaled residual
exceeds 2^-(precision/2). An empty seed draws a random one, reported so that
the run can be replayed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {

			start := time.Now()

			report, err := selftest(p, a.cfg.Precision)
			if err != nil {
				return err
			}

			a.logger.Info("selftest done", "polynomials", report.Polynomials, "roots", report.Roots, "elapsed", time.Since(start))

			if err = renderSelftest(cmd.OutOrStdout(), a.cfg.Output, report); err != nil {
				return err
			}

			if report.Failed != 0 {
				return fmt.Errorf("selftest failed: %d of %d roots above tolerance", report.Failed, report.Roots)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&p.seed, "seed", "symcalc", "seed of the polynomial generator, random if empty")
	cmd.Flags().IntVarP(&p.count, "count", "n", 100, "number of polynomials")
	cmd.Flags().IntVar(&p.maxDegree, "max-degree", 4, "maximum degree of the polynomials")
	cmd.Flags().Int64Var(&p.bound, "bound", 9, "bound on the absolute value of the coefficients")

	return cmd
}

func selftest(p selftestParameters, prec uint) (report selftestReport, err error) {

	if p.count < 1 {
		return report, fmt.Errorf("invalid count: must be at least 1 but is %d", p.count)
	}

	if p.maxDegree < 1 {
		return report, fmt.Errorf("invalid max-degree: must be at least 1 but is %d", p.maxDegree)
	}

	if p.seed == "" {
		if p.seed, err = randomSeed(); err != nil {
			return report, err
		}
	}

	prng, err := sampling.NewKeyedPRNG([]byte(p.seed))
	if err != nil {
		return report, fmt.Errorf("invalid seed: %w", err)
	}

	report = selftestReport{Seed: p.seed, Precision: prec, Polynomials: p.count}

	tolerance := new(big.Float).SetMantExp(big.NewFloat(1), -int(prec/2))

	residuals := make(stats.Float64Data, 0, p.count*p.maxDegree)

	for i := 0; i < p.count; i++ {

		r, err := sampling.RandUint64(prng)
		if err != nil {
			return report, err
		}

		ints, err := sampling.IntegerPolynomial(prng, 1+int(r%uint64(p.maxDegree)), p.bound)
		if err != nil {
			return report, err
		}

		poly := bignum.NewPolynomial(ints, prec)

		roots, err := cas.Solve(poly.Coeffs, eval.Options{Prec: prec})
		if err != nil {
			if errors.Is(err, cas.ErrGreaterThanQuartic) {
				report.Rejected++
				continue
			}
			return report, fmt.Errorf("cannot solve %v: %w", ints, err)
		}

		report.Solved++

		for _, root := range roots {

			if root.IsNaN() {
				continue
			}

			x := residual(poly, root)

			if x.Cmp(tolerance) > 0 {
				report.Failed++
			}

			f, _ := x.Float64()
			residuals = append(residuals, f)
		}
	}

	report.Roots = len(residuals)

	if len(residuals) == 0 {
		return report, nil
	}

	if report.MaxResidual, err = stats.Max(residuals); err != nil {
		return
	}

	if report.MeanResidual, err = stats.Mean(residuals); err != nil {
		return
	}

	report.MedianResidual, err = stats.Median(residuals)

	return
}

// residual returns |P(r)| / (sum |c_k| max(1, |r|)^deg P).
func residual(poly bignum.Polynomial, r *bignum.Complex) *big.Float {

	prec := r.Prec()

	scale := new(big.Float).SetPrec(prec)
	for _, c := range poly.Coeffs {
		scale.Add(scale, bignum.Abs(c))
	}

	if scale.Sign() == 0 {
		return new(big.Float)
	}

	if m := bignum.Abs(r); m.Cmp(big.NewFloat(1)) > 0 {
		for i := 0; i < poly.Degree(); i++ {
			scale.Mul(scale, m)
		}
	}

	return new(big.Float).SetPrec(prec).Quo(bignum.Abs(poly.Evaluate(r)), scale)
}

// randomSeed returns a hexadecimal seed drawn from the system randomness source.
func randomSeed() (string, error) {

	prng, err := sampling.NewPRNG()
	if err != nil {
		return "", err
	}

	seed := make([]byte, 16)
	if _, err = prng.Read(seed); err != nil {
		return "", fmt.Errorf("cannot draw a seed: %w", err)
	}

	return hex.EncodeToString(seed), nil
}
