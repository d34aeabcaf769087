package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/tiger/agreement"
)

// MatrixReport is the serializable form of an agreement.Matrix.
// Scores[i][j] is nil where the score is undefined.
type MatrixReport struct {
	Scorer string       `json:"scorer" yaml:"scorer"`
	Labels []string     `json:"labels" yaml:"labels"`
	Scores [][]*float64 `json:"scores" yaml:"scores,flow"`
}

// NewMatrixReport converts m.
func NewMatrixReport(scorer string, m *agreement.Matrix) *MatrixReport {
	mr := &MatrixReport{
		Scorer: scorer,
		Labels: append([]string(nil), m.Labels...),
		Scores: make([][]*float64, len(m.Scores)),
	}
	for i, row := range m.Scores {
		mr.Scores[i] = make([]*float64, len(row))
		for j, s := range row {
			if v, ok := s.Float(); ok {
				mr.Scores[i][j] = &v
			}
		}
	}

	return mr
}

// Write renders the matrix in format f. Rows are reference characters.
func (mr *MatrixReport) Write(w io.Writer, f Format) error {
	headers := append([]string{""}, mr.Labels...)
	cells := func(cell func(*float64) string) [][]string {
		out := make([][]string, len(mr.Scores))
		for i, row := range mr.Scores {
			out[i] = make([]string, 0, len(row)+1)
			out[i] = append(out[i], mr.Labels[i])
			for _, v := range row {
				out[i] = append(out[i], cell(v))
			}
		}
		return out
	}

	switch f {
	case FormatTable:
		_, err := fmt.Fprintln(w, render(headers, cells(short)))
		return err
	case FormatTSV:
		return writeTSV(w, headers, cells(number))
	case FormatJSON:
		return writeJSON(w, mr)
	case FormatYAML:
		return writeYAML(w, mr)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
