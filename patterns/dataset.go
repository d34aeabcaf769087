package patterns

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/tiger/partition"
)

// Sentinel errors for reading character data.
var (
	// ErrMalformed indicates input that does not follow the expected layout.
	ErrMalformed = errors.New("patterns: malformed input")

	// ErrMissingColumn indicates that a required wordlist column is absent.
	ErrMissingColumn = errors.New("patterns: required column not found")

	// ErrUnknownFormat indicates an unsupported input format name.
	ErrUnknownFormat = errors.New("patterns: unknown format")
)

// Dataset is character data ready for partition.Build.
type Dataset struct {
	Name         string
	Taxa         []string
	Characters   []string
	Observations partition.Observations

	// Expected holds reference rates shipped with a fixture, if any.
	Expected []float64
}

// Build is a shorthand for partition.Build over the dataset.
func (d *Dataset) Build(opts ...partition.Option) (*partition.Table, error) {
	return partition.Build(d.Observations, d.Taxa, opts...)
}

// Columns names the wordlist columns. Matching is case-insensitive.
type Columns struct {
	Taxon     string `yaml:"taxon"`
	Character string `yaml:"character"`
	State     string `yaml:"state"`
}

// DefaultColumns are the column names of a cognate-coded wordlist.
func DefaultColumns() Columns {
	return Columns{Taxon: "DOCULECT", Character: "CONCEPT", State: "COGID"}
}

// Options configures the readers.
type Options struct {
	// Comma is the field delimiter for Matrix and Wordlist.
	Comma rune

	// Missing lists cell values that mean "no data".
	Missing []string

	// Separator, if non-empty, splits one cell into several states.
	Separator string

	// Columns names the wordlist columns.
	Columns Columns
}

// Option configures a reader via functional arguments.
type Option func(*Options)

// DefaultMissing are the default missing-data markers.
var DefaultMissing = []string{"", "?", "-", "Ø"}

// DefaultOptions returns comma-separated input, the default missing-data
// markers, no state separator and the default wordlist columns.
func DefaultOptions() Options {
	return Options{
		Comma:   ',',
		Missing: slices.Clone(DefaultMissing),
		Columns: DefaultColumns(),
	}
}

// WithComma sets the field delimiter.
func WithComma(r rune) Option {
	return func(o *Options) { o.Comma = r }
}

// WithMissing replaces the missing-data markers.
func WithMissing(markers ...string) Option {
	return func(o *Options) { o.Missing = slices.Clone(markers) }
}

// WithSeparator splits cells on sep into several states.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.Separator = sep }
}

// WithColumns sets the wordlist column names. Empty fields keep the default.
func WithColumns(c Columns) Option {
	return func(o *Options) {
		if c.Taxon != "" {
			o.Columns.Taxon = c.Taxon
		}
		if c.Character != "" {
			o.Columns.Character = c.Character
		}
		if c.State != "" {
			o.Columns.State = c.State
		}
	}
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// states splits a raw cell into unique, non-missing states in input order.
func (o Options) states(cell string) []string {
	parts := []string{cell}
	if o.Separator != "" {
		parts = strings.Split(cell, o.Separator)
	}

	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if slices.Contains(o.Missing, p) || slices.Contains(out, p) {
			continue
		}
		out = append(out, p)
	}

	return out
}

// malformed wraps ErrMalformed with a line reference.
func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, line, fmt.Sprintf(format, args...))
}
