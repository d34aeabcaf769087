package patterns

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/tiger/partition"
)

// ReadMatrix reads a taxon × character matrix.
//
// The first record is the header: its first cell labels the taxon column,
// the remaining cells name the characters. Every following record starts
// with a taxon followed by one cell per character. Lines starting with '#'
// are skipped. Character names and taxa must be unique and non-empty.
func ReadMatrix(r io.Reader, opts ...Option) (*Dataset, error) {
	cfg := gatherOptions(opts)
	cr := newReader(r, cfg)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, malformed(1, "empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(header) < 2 {
		return nil, malformed(1, "header has no character columns")
	}

	ds := &Dataset{Observations: make(partition.Observations, len(header)-1)}
	for _, name := range header[1:] {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, malformed(1, "empty character name")
		}
		if _, dup := ds.Observations[name]; dup {
			return nil, malformed(1, "duplicate character %q", name)
		}
		ds.Characters = append(ds.Characters, name)
		ds.Observations[name] = make(map[string][]string)
	}

	seen := make(map[string]struct{})
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		line, _ := cr.FieldPos(0)

		taxon := strings.TrimSpace(rec[0])
		if taxon == "" {
			return nil, malformed(line, "empty taxon")
		}
		if _, dup := seen[taxon]; dup {
			return nil, malformed(line, "duplicate taxon %q", taxon)
		}
		seen[taxon] = struct{}{}
		ds.Taxa = append(ds.Taxa, taxon)

		for i, char := range ds.Characters {
			ds.Observations[char][taxon] = cfg.states(rec[i+1])
		}
	}

	return ds, nil
}

func newReader(r io.Reader, cfg Options) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = cfg.Comma
	cr.Comment = '#'
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = cfg.Comma != '\t'
	cr.ReuseRecord = true

	return cr
}
