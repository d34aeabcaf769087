package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tiger/agreement"
	"github.com/katalvlaran/tiger/report"
)

func newMatrixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix FILE",
		Short: "Print the agreement score of every character pair",
		Long: `Print the score of every ordered pair of the selected characters
(default: all characters with data). Rows are the reference characters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, tbl, err := a.load(args[0])
			if err != nil {
				return err
			}
			out, err := a.outputFormat()
			if err != nil {
				return err
			}
			s, err := a.cfg.NewScorer()
			if err != nil {
				return err
			}

			m, err := agreement.NewMatrix(tbl, a.cfg.Selected, s)
			if err != nil {
				return err
			}
			a.logger.Debug().Int("characters", len(m.Labels)).Msg("matrix scored")

			return report.NewMatrixReport(s.Name(), m).Write(cmd.OutOrStdout(), out)
		},
	}
}
