package rates

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tiger/agreement"
	"github.com/katalvlaran/tiger/partition"
)

// Sentinel errors for rate computation.
var (
	// ErrNilTable is returned when Compute receives a nil table.
	ErrNilTable = errors.New("rates: table is nil")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("rates: invalid option supplied")

	// ErrUnknownCharacter is returned when a selected character is not in
	// the table. It is the partition package's sentinel.
	ErrUnknownCharacter = partition.ErrUnknownCharacter
)

// Options configures Compute.
type Options struct {
	// Ctx allows cancellation between rows.
	Ctx context.Context

	// Selected restricts the characters that receive a rate.
	// Empty means every character of the pool.
	Selected []string

	// Scorer compares two partitions. Default: agreement.Standard.
	Scorer agreement.Scorer

	// Workers is the number of rows computed concurrently. Default: 1.
	Workers int

	// Logger receives debug events. Default: zerolog.Nop().
	Logger zerolog.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures Compute via functional arguments.
// Invalid arguments are recorded and surface as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns the defaults: background context, the whole pool,
// the standard scorer, one worker and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Scorer:  agreement.Standard{},
		Workers: 1,
		Logger:  zerolog.Nop(),
	}
}

// WithContext sets the context checked before every row.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithSelected restricts rate computation to the given characters.
// Duplicates are computed once.
func WithSelected(chars ...string) Option {
	return func(o *Options) {
		o.Selected = append([]string(nil), chars...)
	}
}

// WithScorer sets the agreement strategy.
func WithScorer(s agreement.Scorer) Option {
	return func(o *Options) {
		if s == nil {
			o.err = fmt.Errorf("%w: nil scorer", ErrOptionViolation)
			return
		}
		o.Scorer = s
	}
}

// WithWorkers sets how many rows are computed concurrently. n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the logger for debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
