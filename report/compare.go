package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/tiger/partition"
	"github.com/katalvlaran/tiger/rates"
)

// ComparisonRow describes one data set: its table profile and the summaries
// of its standard and corrected rates.
type ComparisonRow struct {
	Dataset     string  `json:"dataset" yaml:"dataset"`
	Characters  int     `json:"characters" yaml:"characters"`
	Informative int     `json:"informative" yaml:"informative"`
	MeanSize    float64 `json:"mean_size" yaml:"mean_size"`
	StdDevSize  float64 `json:"stdev_size" yaml:"stdev_size"`
	Singletons  float64 `json:"singletons" yaml:"singletons"`
	Invariants  float64 `json:"invariants" yaml:"invariants"`
	Standard    Summary `json:"tiger" yaml:"tiger"`
	Corrected   Summary `json:"c_tiger" yaml:"c_tiger"`
}

// NewComparisonRow combines a table profile with two rate tables.
func NewComparisonRow(dataset string, p partition.Profile, standard, corrected map[string]float64) ComparisonRow {
	return ComparisonRow{
		Dataset:     dataset,
		Characters:  p.Characters,
		Informative: p.Informative,
		MeanSize:    p.MeanSize,
		StdDevSize:  p.StdDevSize,
		Singletons:  p.Singletons,
		Invariants:  p.Invariants,
		Standard:    newSummary(rates.Summarize(standard)),
		Corrected:   newSummary(rates.Summarize(corrected)),
	}
}

var comparisonHeaders = []string{"Dataset", "Chars", "CS-Size", "Singletons", "Invariants", "TIGER", "C-TIGER"}

// WriteComparison renders one line per data set in format f.
func WriteComparison(w io.Writer, f Format, rows []ComparisonRow) error {
	switch f {
	case FormatTable:
		cells := make([][]string, len(rows))
		for i, r := range rows {
			cells[i] = []string{
				r.Dataset,
				fmt.Sprintf("%d / %d", r.Informative, r.Characters),
				fmt.Sprintf("%.2f ± %.2f", r.MeanSize, r.StdDevSize),
				fmt.Sprintf("%.0f%%", 100*r.Singletons),
				fmt.Sprintf("%.0f%%", 100*r.Invariants),
				fmt.Sprintf("%.2f ± %.2f", r.Standard.Mean, r.Standard.StdDev),
				fmt.Sprintf("%.2f ± %.2f", r.Corrected.Mean, r.Corrected.StdDev),
			}
		}
		_, err := fmt.Fprintln(w, render(comparisonHeaders, cells))
		return err
	case FormatTSV:
		cells := make([][]string, len(rows))
		for i, r := range rows {
			cells[i] = []string{
				r.Dataset,
				strconv.Itoa(r.Informative),
				strconv.Itoa(r.Characters),
				fmt.Sprintf("%.4f", r.MeanSize),
				fmt.Sprintf("%.4f", r.StdDevSize),
				fmt.Sprintf("%.4f", r.Singletons),
				fmt.Sprintf("%.4f", r.Invariants),
				fmt.Sprintf("%.4f", r.Standard.Mean),
				fmt.Sprintf("%.4f", r.Standard.StdDev),
				fmt.Sprintf("%.4f", r.Corrected.Mean),
				fmt.Sprintf("%.4f", r.Corrected.StdDev),
			}
		}
		return writeTSV(w, []string{
			"dataset", "informative", "characters", "mean_size", "stdev_size",
			"singletons", "invariants", "tiger", "tiger_stdev", "c_tiger", "c_tiger_stdev",
		}, cells)
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatYAML:
		return writeYAML(w, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
