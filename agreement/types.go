package agreement

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tiger/partition"
)

// Sentinel errors for agreement scoring.
var (
	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("agreement: invalid option supplied")

	// ErrNilScorer is returned when a nil Scorer is passed to Matrix.
	ErrNilScorer = errors.New("agreement: scorer is nil")

	// ErrNilTable is returned when a nil table is passed to Matrix.
	ErrNilTable = errors.New("agreement: table is nil")
)

// Score is the result of comparing two partitions.
// A Score with Defined == false carries no data and Value is meaningless.
type Score struct {
	Value   float64
	Defined bool
}

// NoData is the Score of a comparison that could not be evaluated.
var NoData = Score{}

// Of returns a defined Score holding v.
func Of(v float64) Score { return Score{Value: v, Defined: true} }

// Float returns the value and whether it is defined.
func (s Score) Float() (float64, bool) { return s.Value, s.Defined }

// String formats the value with two decimals, or "n/a" without data.
func (s Score) String() string {
	if !s.Defined {
		return "n/a"
	}

	return fmt.Sprintf("%.2f", s.Value)
}

// Scorer compares a reference partition against another partition.
type Scorer interface {
	// Score returns the agreement of other with reference.
	Score(reference, other partition.Partition) Score

	// Name identifies the strategy in reports and logs.
	Name() string
}

// Options configures the corrected score.
type Options struct {
	// TaxonCount, if > 0, is the ceiling used for both partitions: groups of
	// this size are invariant. If 0, each partition uses the number of
	// distinct taxa across its own groups.
	TaxonCount int

	// Excluded is returned, as a defined Score, instead of NoData when no
	// informative group pair exists. Only used if HasExcluded is set.
	Excluded    float64
	HasExcluded bool

	// internal error recorded during option parsing
	err error
}

// Option configures the corrected score via functional arguments.
// Invalid arguments are recorded and surface as ErrOptionViolation.
type Option func(*Options)

// WithTaxonCount fixes the invariant ceiling for both partitions.
// n must be ≥ 0; 0 restores the per-partition default.
func WithTaxonCount(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: taxon count %d is negative", ErrOptionViolation, n)
			return
		}
		o.TaxonCount = n
	}
}

// WithExcludedValue makes uninformative comparisons return Of(v) instead of
// NoData. v must be finite.
func WithExcludedValue(v float64) Option {
	return func(o *Options) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			o.err = fmt.Errorf("%w: excluded value %v is not finite", ErrOptionViolation, v)
			return
		}
		o.Excluded = v
		o.HasExcluded = true
	}
}

// DefaultOptions returns the corrected-score defaults: per-partition
// ceilings and NoData for uninformative comparisons.
func DefaultOptions() Options {
	return Options{}
}

func gatherOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
		if cfg.err != nil {
			return Options{}, cfg.err
		}
	}

	return cfg, nil
}
