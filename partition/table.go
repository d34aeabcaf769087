package partition

import (
	"fmt"
	"maps"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Table maps characters to their partitions. It is read-only once built.
type Table struct {
	parts map[string]Partition
	taxa  []string
}

// NewTable wraps hand-built partitions into a Table. The map is copied.
// Tables built this way carry no taxon list; Profile then counts the taxa
// found in the partitions.
func NewTable(parts map[string]Partition) *Table {
	return &Table{parts: maps.Clone(parts)}
}

// Len returns the number of characters, including those with empty partitions.
func (t *Table) Len() int { return len(t.parts) }

// Taxa returns a copy of the taxon list the table was built from.
func (t *Table) Taxa() []string { return slices.Clone(t.taxa) }

// Characters returns every character in sorted order.
func (t *Table) Characters() []string {
	return slices.Sorted(maps.Keys(t.parts))
}

// Pool returns, in sorted order, the characters whose partition is not
// empty. Only these characters take part in comparisons.
func (t *Table) Pool() []string {
	pool := make([]string, 0, len(t.parts))
	for _, c := range t.Characters() {
		if !t.parts[c].IsEmpty() {
			pool = append(pool, c)
		}
	}

	return pool
}

// Partition returns the partition of char and whether it exists.
func (t *Table) Partition(char string) (Partition, bool) {
	p, ok := t.parts[char]
	return p, ok
}

// Get returns the partition of char or ErrUnknownCharacter.
func (t *Table) Get(char string) (Partition, error) {
	p, ok := t.parts[char]
	if !ok {
		return Partition{}, fmt.Errorf("%w: %q", ErrUnknownCharacter, char)
	}

	return p, nil
}

// Profile summarizes the shape of a Table.
type Profile struct {
	Characters  int     // all characters in the table
	Informative int     // characters with a non-empty partition
	Groups      int     // groups across all partitions
	MeanSize    float64 // mean number of groups per character
	StdDevSize  float64 // sample standard deviation of groups per character
	Singletons  float64 // share of groups holding one taxon
	Invariants  float64 // share of groups holding every taxon
}

// Profile computes size statistics over every character of the table.
//
// The invariant ceiling is the length of the taxon list for built tables and
// the number of distinct taxa across all partitions otherwise. Shares are 0
// when the table has no groups; StdDevSize is 0 for fewer than two characters.
func (t *Table) Profile() Profile {
	ceiling := len(t.taxa)
	if ceiling == 0 {
		seen := make(map[string]struct{})
		for _, p := range t.parts {
			for _, g := range p.groups {
				for _, taxon := range g.taxa {
					seen[taxon] = struct{}{}
				}
			}
		}
		ceiling = len(seen)
	}

	var pr Profile
	sizes := make([]float64, 0, len(t.parts))
	var singletons, invariants int
	for _, c := range t.Characters() {
		p := t.parts[c]
		sizes = append(sizes, float64(p.Len()))
		if !p.IsEmpty() {
			pr.Informative++
		}
		for _, g := range p.groups {
			switch g.Len() {
			case 1:
				singletons++
			case ceiling:
				invariants++
			}
		}
		pr.Groups += p.Len()
	}
	pr.Characters = len(sizes)

	switch len(sizes) {
	case 0:
	case 1:
		pr.MeanSize = sizes[0]
	default:
		pr.MeanSize, pr.StdDevSize = stat.MeanStdDev(sizes, nil)
	}
	if pr.Groups > 0 {
		pr.Singletons = float64(singletons) / float64(pr.Groups)
		pr.Invariants = float64(invariants) / float64(pr.Groups)
	}

	return pr
}
