package agreement

import (
	"slices"

	"github.com/katalvlaran/tiger/partition"
)

// Matrix holds the scores of every ordered pair of characters.
// Row i is the reference, column j the compared character.
type Matrix struct {
	Labels []string
	Scores [][]Score
	index  map[string]int
}

// NewMatrix scores every ordered pair of characters with s, diagonal
// included. If characters is empty the table's Pool is used.
//
// Errors: ErrNilTable, ErrNilScorer, partition.ErrUnknownCharacter.
//
// Complexity: O(C²) calls to s for C characters.
func NewMatrix(t *partition.Table, characters []string, s Scorer) (*Matrix, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if s == nil {
		return nil, ErrNilScorer
	}
	if len(characters) == 0 {
		characters = t.Pool()
	}

	parts := make([]partition.Partition, len(characters))
	for i, c := range characters {
		p, err := t.Get(c)
		if err != nil {
			return nil, err
		}
		parts[i] = p
	}

	m := &Matrix{
		Labels: slices.Clone(characters),
		Scores: make([][]Score, len(characters)),
		index:  make(map[string]int, len(characters)),
	}
	for i, ref := range parts {
		m.index[characters[i]] = i
		row := make([]Score, len(parts))
		for j, other := range parts {
			row[j] = s.Score(ref, other)
		}
		m.Scores[i] = row
	}

	return m, nil
}

// Lookup returns the score of other against reference.
func (m *Matrix) Lookup(reference, other string) (Score, bool) {
	i, ok := m.index[reference]
	if !ok {
		return NoData, false
	}
	j, ok := m.index[other]
	if !ok {
		return NoData, false
	}

	return m.Scores[i][j], true
}
