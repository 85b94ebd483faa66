package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/symcalc/symcalc/cas"
	"github.com/symcalc/symcalc/eval"
	"github.com/symcalc/symcalc/parser"
	"github.com/symcalc/symcalc/token"
)

func newSolveCmd(a *app) *cobra.Command {

	var unknown string

	cmd := &cobra.Command{
		Use:   "solve <equation>",
		Short: "Solve an equation for an unknown",
		Long: `Solve an equation for an unknown. The equation is either lhs = rhs or an
expression, read as expression = 0. Solutions are printed sorted by real then
imaginary part, repeated according to their multiplicity. NaN means that the
equation has no solution.`,
		Example: `  symcalc solve "x^2 - 2 = 0"
  symcalc solve "sin(t)^2 = 1/4" --for t
  symcalc solve -o table "x^4 = 16"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			src := strings.Join(args, " ")
			prec := a.cfg.Precision

			tokens, err := parser.New(a.cfg.Definitions()).WithUnknown(unknown).ParseEquation(src, prec)
			if err != nil {
				return fmt.Errorf("cannot parse %q: %w", src, err)
			}

			a.logger.Debug("parsed equation", "tokens", token.Format(tokens), "unknown", unknown, "precision", prec)

			start := time.Now()

			res, err := cas.NewIsolator(a.cfg.Options(), nil).Isolate(tokens, unknown)
			if err != nil {
				return fmt.Errorf("cannot solve for %s: %w", unknown, err)
			}

			a.logger.Debug("solved", "solutions", res.Len(), "elapsed", time.Since(start))

			return renderValues(cmd.OutOrStdout(), a.cfg.Output, newValuesReport(src, unknown, res, a.cfg.NumberFormat(), a.cfg.Digits))
		},
	}

	cmd.Flags().StringVar(&unknown, "for", "x", "unknown to solve for")

	return cmd
}

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "eval <expression>",
		Short:   "Evaluate an expression",
		Example: `  symcalc eval "e^(i pi)"
  symcalc eval -p 1024 -d 300 "sqrt(2)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			src := strings.Join(args, " ")

			tokens, err := parser.New(a.cfg.Definitions()).Parse(src, a.cfg.Precision)
			if err != nil {
				return fmt.Errorf("cannot parse %q: %w", src, err)
			}

			a.logger.Debug("parsed expression", "tokens", token.Format(tokens), "precision", a.cfg.Precision)

			res, err := eval.Evaluate(tokens, a.cfg.Options(), nil)
			if err != nil {
				return fmt.Errorf("cannot evaluate %q: %w", src, err)
			}

			return renderValues(cmd.OutOrStdout(), a.cfg.Output, newValuesReport(src, "", res, a.cfg.NumberFormat(), a.cfg.Digits))
		},
	}
}
