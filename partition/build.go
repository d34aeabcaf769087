package partition

import "fmt"

// Observations maps character → taxon → observed states.
//
// A taxon missing from the inner map, or mapped to an empty slice, has no
// data for that character. Several states per cell are allowed.
type Observations map[string]map[string][]string

// Options configures Build.
type Options struct {
	// FilterExtremes drops singleton groups (one taxon) and invariant groups
	// (all taxa of the taxon list) before they enter a partition.
	FilterExtremes bool
}

// Option is a functional option for Build.
type Option func(*Options)

// WithFilterExtremes enables dropping of singleton and invariant groups.
func WithFilterExtremes() Option {
	return func(o *Options) {
		o.FilterExtremes = true
	}
}

// DefaultOptions returns the Build defaults: every group is kept.
func DefaultOptions() Options {
	return Options{FilterExtremes: false}
}

// Build converts observations into a partition Table.
//
// Algorithm, for every character:
//  1. For every taxon in taxa and every state recorded for it, add the taxon
//     to the bucket of that state.
//  2. Turn each non-empty bucket into a TaxonSet.
//  3. If FilterExtremes is set, skip sets of size 1 or size len(taxa).
//  4. Collect the remaining sets into a Partition (equal sets collapse).
//
// Taxa present in obs but absent from taxa are ignored. Taxon identifiers in
// taxa must be unique and non-empty.
//
// Complexity: O(C · (T·S + G log G)) for C characters, T taxa, S states per
// cell and G groups per character.
func Build(obs Observations, taxa []string, opts ...Option) (*Table, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	seen := make(map[string]struct{}, len(taxa))
	for _, t := range taxa {
		if t == "" {
			return nil, ErrEmptyTaxon
		}
		if _, dup := seen[t]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTaxon, t)
		}
		seen[t] = struct{}{}
	}

	parts := make(map[string]Partition, len(obs))
	for char, cells := range obs {
		parts[char] = buildCharacter(cells, taxa, cfg)
	}

	return &Table{parts: parts, taxa: append([]string(nil), taxa...)}, nil
}

func buildCharacter(cells map[string][]string, taxa []string, cfg Options) Partition {
	buckets := make(map[string][]string)
	var order []string
	for _, taxon := range taxa {
		for _, state := range cells[taxon] {
			if _, ok := buckets[state]; !ok {
				order = append(order, state)
			}
			buckets[state] = append(buckets[state], taxon)
		}
	}

	groups := make([]TaxonSet, 0, len(order))
	for _, state := range order {
		g := newTaxonSet(buckets[state])
		if cfg.FilterExtremes && (g.Len() == 1 || g.Len() == len(taxa)) {
			continue
		}
		groups = append(groups, g)
	}

	return newPartition(groups)
}
