package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tiger/config"
	"github.com/katalvlaran/tiger/rates"
	"github.com/katalvlaran/tiger/report"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare FILE...",
		Short: "Tabulate TIGER and C-TIGER summaries for several data sets",
		Long: `For every input, print the partition profile together with mean and
standard deviation of the standard and the corrected rates. The --scorer
setting is ignored; both scorers always run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.outputFormat()
			if err != nil {
				return err
			}

			standard := *a.cfg
			standard.Scorer = config.ScorerStandard
			corrected := *a.cfg
			corrected.Scorer = config.ScorerCorrected

			rows := make([]report.ComparisonRow, 0, len(args))
			for _, path := range args {
				ds, tbl, err := a.load(path)
				if err != nil {
					return err
				}

				results := make([]map[string]float64, 2)
				for i, cfg := range []*config.Config{&standard, &corrected} {
					opts, err := cfg.RateOptions()
					if err != nil {
						return err
					}
					opts = append(opts, rates.WithContext(cmd.Context()), rates.WithLogger(a.logger))
					if results[i], err = rates.Compute(tbl, opts...); err != nil {
						return err
					}
				}

				rows = append(rows, report.NewComparisonRow(ds.Name, tbl.Profile(), results[0], results[1]))
			}

			return report.WriteComparison(cmd.OutOrStdout(), out, rows)
		},
	}
}
