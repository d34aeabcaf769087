package patterns

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/katalvlaran/tiger/partition"
)

// ReadWordlist reads a long-format wordlist: one record per observation.
//
// The header must contain the taxon, character and state columns named by
// Options.Columns; other columns are ignored. Records for the same taxon and
// character accumulate states. A record whose state is missing still
// registers the taxon and character.
func ReadWordlist(r io.Reader, opts ...Option) (*Dataset, error) {
	cfg := gatherOptions(opts)
	cr := newReader(r, cfg)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, malformed(1, "empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	idx := make([]int, 3)
	for i, name := range []string{cfg.Columns.Taxon, cfg.Columns.Character, cfg.Columns.State} {
		idx[i] = slices.IndexFunc(header, func(h string) bool {
			return strings.EqualFold(strings.TrimSpace(h), name)
		})
		if idx[i] < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	width := slices.Max(idx) + 1

	ds := &Dataset{Observations: make(partition.Observations)}
	seenTaxa := make(map[string]struct{})
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < width {
			return nil, malformed(line, "expected at least %d fields, got %d", width, len(rec))
		}

		taxon := strings.TrimSpace(rec[idx[0]])
		char := strings.TrimSpace(rec[idx[1]])
		if taxon == "" || char == "" {
			return nil, malformed(line, "empty taxon or character")
		}

		if _, ok := seenTaxa[taxon]; !ok {
			seenTaxa[taxon] = struct{}{}
			ds.Taxa = append(ds.Taxa, taxon)
		}
		cells, ok := ds.Observations[char]
		if !ok {
			cells = make(map[string][]string)
			ds.Observations[char] = cells
			ds.Characters = append(ds.Characters, char)
		}
		states := cells[taxon]
		for _, s := range cfg.states(rec[idx[2]]) {
			if !slices.Contains(states, s) {
				states = append(states, s)
			}
		}
		cells[taxon] = states
	}

	return ds, nil
}
