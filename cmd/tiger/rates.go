package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tiger/rates"
	"github.com/katalvlaran/tiger/report"
)

func newRatesCmd(a *app) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "rates FILE",
		Short: "Compute one rate per character",
		Long: `Compute the mean agreement of every selected character with all other
characters that have data.

With --check, a JSON fixture's expected results are compared with the
computed rates to two decimals. Expected values pair with the selected
characters, or with the fixture's characters in order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, tbl, err := a.load(args[0])
			if err != nil {
				return err
			}
			out, err := a.outputFormat()
			if err != nil {
				return err
			}
			opts, err := a.cfg.RateOptions()
			if err != nil {
				return err
			}
			opts = append(opts, rates.WithContext(cmd.Context()), rates.WithLogger(a.logger))

			r, err := rates.Compute(tbl, opts...)
			if err != nil {
				return err
			}

			order := a.cfg.Selected
			if len(order) == 0 {
				order = tbl.Pool()
			}
			if err := report.NewRateReport(ds.Name, a.cfg.Scorer, order, r).Write(cmd.OutOrStdout(), out); err != nil {
				return err
			}

			if check {
				expectOrder := a.cfg.Selected
				if len(expectOrder) == 0 {
					expectOrder = ds.Characters
				}
				return checkExpected(ds.Expected, expectOrder, r)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "compare with the expected rates of a JSON fixture")

	return cmd
}

// checkExpected compares expected[i] with the rate of chars[i] at two
// decimals. A missing rate never matches.
func checkExpected(expected []float64, chars []string, r map[string]float64) error {
	if len(expected) == 0 {
		return fmt.Errorf("%w: input carries no expected rates", errCheckFailed)
	}
	if len(expected) > len(chars) {
		return fmt.Errorf("%w: %d expected rates for %d characters", errCheckFailed, len(expected), len(chars))
	}

	var bad []string
	for i, want := range expected {
		got, ok := r[chars[i]]
		if !ok || math.Round(got*100) != math.Round(want*100) {
			bad = append(bad, chars[i])
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %d of %d characters (first: %q)", errCheckFailed, len(bad), len(expected), bad[0])
	}

	return nil
}
