package partition

import (
	"fmt"
	"slices"
	"strings"
)

// Partition is the immutable set of taxon groups of one character.
//
// Groups are unique by membership and never empty. A Partition may itself be
// empty, which is how a character without valid observations is represented.
// The zero value is the empty partition.
type Partition struct {
	groups []TaxonSet          // sorted by membership
	index  map[string]struct{} // Key of every group
	taxa   int                 // distinct taxa across all groups
}

// NewPartition builds a Partition from the given groups.
// Equal groups collapse; an empty group yields ErrEmptyGroup.
func NewPartition(groups ...TaxonSet) (Partition, error) {
	for i, g := range groups {
		if g.IsEmpty() {
			return Partition{}, fmt.Errorf("%w: group #%d", ErrEmptyGroup, i)
		}
	}

	return newPartition(groups), nil
}

// MustPartition is like NewPartition but panics on error.
// Each argument is a list of taxa forming one group.
func MustPartition(groups ...[]string) Partition {
	sets := make([]TaxonSet, 0, len(groups))
	for _, g := range groups {
		sets = append(sets, MustTaxonSet(g...))
	}

	p, err := NewPartition(sets...)
	if err != nil {
		panic(err)
	}

	return p
}

func newPartition(groups []TaxonSet) Partition {
	p := Partition{index: make(map[string]struct{}, len(groups))}
	seen := make(map[string]struct{})
	for _, g := range groups {
		if _, dup := p.index[g.key]; dup {
			continue
		}
		p.index[g.key] = struct{}{}
		p.groups = append(p.groups, g)
		for _, t := range g.taxa {
			seen[t] = struct{}{}
		}
	}
	p.taxa = len(seen)

	slices.SortFunc(p.groups, func(a, b TaxonSet) int {
		return slices.Compare(a.taxa, b.taxa)
	})

	return p
}

// Len returns the number of groups.
func (p Partition) Len() int { return len(p.groups) }

// IsEmpty reports whether the partition has no groups.
func (p Partition) IsEmpty() bool { return len(p.groups) == 0 }

// Groups returns the groups in sorted order. The slice is a copy; the
// TaxonSets themselves are immutable.
func (p Partition) Groups() []TaxonSet { return slices.Clone(p.groups) }

// Has reports whether a group with exactly the members of g exists.
func (p Partition) Has(g TaxonSet) bool {
	_, ok := p.index[g.key]
	return ok
}

// TaxonCount returns the number of distinct taxa across all groups.
func (p Partition) TaxonCount() int { return p.taxa }

// Equal reports whether both partitions hold the same groups.
func (p Partition) Equal(o Partition) bool {
	if len(p.groups) != len(o.groups) {
		return false
	}
	for _, g := range p.groups {
		if !o.Has(g) {
			return false
		}
	}

	return true
}

// String renders the partition as "{a,c,d} {b} {e}".
func (p Partition) String() string {
	parts := make([]string, len(p.groups))
	for i, g := range p.groups {
		parts[i] = g.String()
	}

	return strings.Join(parts, " ")
}
