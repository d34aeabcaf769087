package report

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/katalvlaran/tiger/rates"
)

// Summary is the serializable form of rates.Summary.
type Summary struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stdev" yaml:"stdev"`
}

func newSummary(s rates.Summary) Summary {
	return Summary{Count: s.Count, Mean: s.Mean, StdDev: s.StdDev}
}

// String renders "n=3 0.54 ± 0.12".
func (s Summary) String() string {
	return fmt.Sprintf("n=%d %.2f ± %.2f", s.Count, s.Mean, s.StdDev)
}

// RateRow is one character of a rate report. Rate is nil for characters
// that were requested but received no rate.
type RateRow struct {
	Character string   `json:"character" yaml:"character"`
	Rate      *float64 `json:"rate" yaml:"rate"`
}

// RateReport is a rate table with its summary.
type RateReport struct {
	Dataset string    `json:"dataset,omitempty" yaml:"dataset,omitempty"`
	Scorer  string    `json:"scorer" yaml:"scorer"`
	Rates   []RateRow `json:"rates" yaml:"rates"`
	Summary Summary   `json:"summary" yaml:"summary"`
}

// NewRateReport lists r in the given character order. Characters of order
// missing from r appear with a nil rate; an empty order lists the keys of r
// sorted.
func NewRateReport(dataset, scorer string, order []string, r map[string]float64) *RateReport {
	if len(order) == 0 {
		order = slices.Sorted(maps.Keys(r))
	}

	rows := make([]RateRow, len(order))
	for i, c := range order {
		rows[i] = RateRow{Character: c}
		if v, ok := r[c]; ok {
			rows[i].Rate = &v
		}
	}

	return &RateReport{
		Dataset: dataset,
		Scorer:  scorer,
		Rates:   rows,
		Summary: newSummary(rates.Summarize(r)),
	}
}

// Write renders the report in format f.
func (rr *RateReport) Write(w io.Writer, f Format) error {
	switch f {
	case FormatTable:
		rows := make([][]string, len(rr.Rates))
		for i, r := range rr.Rates {
			rows[i] = []string{r.Character, short(r.Rate)}
		}
		label := rr.Scorer
		if rr.Dataset != "" {
			label = rr.Dataset + " " + label
		}
		_, err := fmt.Fprintf(w, "%s\n%s: %s\n", render([]string{"Character", "Rate"}, rows), label, rr.Summary)
		return err
	case FormatTSV:
		rows := make([][]string, len(rr.Rates))
		for i, r := range rr.Rates {
			rows[i] = []string{r.Character, number(r.Rate)}
		}
		return writeTSV(w, []string{"character", "rate"}, rows)
	case FormatJSON:
		return writeJSON(w, rr)
	case FormatYAML:
		return writeYAML(w, rr)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
