package partition

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// TaxonSet is an immutable set of taxon identifiers.
//
// Members are kept sorted and unique, which makes equality, subset and
// intersection tests linear merges. The zero value is the empty set.
type TaxonSet struct {
	taxa []string
	key  string
}

// NewTaxonSet builds a TaxonSet from the given identifiers.
// Duplicates collapse; an empty identifier yields ErrEmptyTaxon.
func NewTaxonSet(taxa ...string) (TaxonSet, error) {
	for _, t := range taxa {
		if t == "" {
			return TaxonSet{}, ErrEmptyTaxon
		}
	}

	return newTaxonSet(slices.Clone(taxa)), nil
}

// MustTaxonSet is like NewTaxonSet but panics on error.
// It is intended for literals in tests and examples.
func MustTaxonSet(taxa ...string) TaxonSet {
	s, err := NewTaxonSet(taxa...)
	if err != nil {
		panic(err)
	}

	return s
}

// newTaxonSet takes ownership of taxa, sorting and compacting it in place.
func newTaxonSet(taxa []string) TaxonSet {
	slices.Sort(taxa)
	taxa = slices.Compact(taxa)

	// Length-prefixed encoding keeps keys unambiguous for any identifier.
	var b strings.Builder
	for _, t := range taxa {
		b.WriteString(strconv.Itoa(len(t)))
		b.WriteByte(':')
		b.WriteString(t)
	}

	return TaxonSet{taxa: taxa, key: b.String()}
}

// Len returns the number of taxa in the set.
func (s TaxonSet) Len() int { return len(s.taxa) }

// IsEmpty reports whether the set has no members.
func (s TaxonSet) IsEmpty() bool { return len(s.taxa) == 0 }

// Taxa returns a sorted copy of the members.
func (s TaxonSet) Taxa() []string { return slices.Clone(s.taxa) }

// Key returns a canonical string that is equal for equal sets.
func (s TaxonSet) Key() string { return s.key }

// Contains reports whether taxon is a member of the set.
func (s TaxonSet) Contains(taxon string) bool {
	_, ok := slices.BinarySearch(s.taxa, taxon)
	return ok
}

// Equal reports whether both sets have the same members.
func (s TaxonSet) Equal(o TaxonSet) bool { return s.key == o.key }

// SubsetOf reports whether every member of s is also a member of o.
// The empty set is a subset of every set.
func (s TaxonSet) SubsetOf(o TaxonSet) bool {
	if len(s.taxa) > len(o.taxa) {
		return false
	}

	j := 0
	for _, t := range s.taxa {
		for j < len(o.taxa) && o.taxa[j] < t {
			j++
		}
		if j == len(o.taxa) || o.taxa[j] != t {
			return false
		}
		j++
	}

	return true
}

// Intersects reports whether s and o share at least one taxon.
func (s TaxonSet) Intersects(o TaxonSet) bool {
	i, j := 0, 0
	for i < len(s.taxa) && j < len(o.taxa) {
		switch {
		case s.taxa[i] == o.taxa[j]:
			return true
		case s.taxa[i] < o.taxa[j]:
			i++
		default:
			j++
		}
	}

	return false
}

// String renders the set as "{a,b,c}".
func (s TaxonSet) String() string {
	return fmt.Sprintf("{%s}", strings.Join(s.taxa, ","))
}
