package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tiger/agreement"
	"github.com/katalvlaran/tiger/partition"
	"github.com/katalvlaran/tiger/patterns"
	"github.com/katalvlaran/tiger/rates"
)

// ErrInvalidConfig is returned by Validate and Load for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Scorer names.
const (
	ScorerStandard  = "standard"
	ScorerCorrected = "corrected"
)

// Output formats.
var Outputs = []string{"table", "json", "yaml", "tsv"}

// Config is a complete run configuration.
type Config struct {
	Scorer         string   `yaml:"scorer"`
	FilterExtremes bool     `yaml:"filter_extremes"`
	TaxonCount     int      `yaml:"taxon_count"`
	Excluded       *float64 `yaml:"excluded"`
	Selected       []string `yaml:"selected"`
	Workers        int      `yaml:"workers"`
	Input          Input    `yaml:"input"`
	Output         string   `yaml:"output"`
	LogLevel       string   `yaml:"log_level"`
}

// Input holds reader settings.
type Input struct {
	Format    string           `yaml:"format"`
	Missing   []string         `yaml:"missing"`
	Separator string           `yaml:"separator"`
	Columns   patterns.Columns `yaml:"columns"`
}

// Default returns the standard scorer, one worker, guessed input format,
// the default missing-data markers, table output and info logging.
func Default() *Config {
	return &Config{
		Scorer:   ScorerStandard,
		Workers:  1,
		Input:    Input{Missing: slices.Clone(patterns.DefaultMissing), Columns: patterns.DefaultColumns()},
		Output:   "table",
		LogLevel: zerolog.InfoLevel.String(),
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML from r on top of Default and validates the result.
// An empty document yields the defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	switch {
	case c.Scorer != ScorerStandard && c.Scorer != ScorerCorrected:
		return fmt.Errorf("%w: scorer %q (want %s or %s)", ErrInvalidConfig, c.Scorer, ScorerStandard, ScorerCorrected)
	case c.TaxonCount < 0:
		return fmt.Errorf("%w: taxon_count must be ≥ 0, got %d", ErrInvalidConfig, c.TaxonCount)
	case c.Excluded != nil && (math.IsNaN(*c.Excluded) || math.IsInf(*c.Excluded, 0)):
		return fmt.Errorf("%w: excluded must be finite", ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrInvalidConfig, c.Workers)
	case !slices.Contains(Outputs, c.Output):
		return fmt.Errorf("%w: output %q", ErrInvalidConfig, c.Output)
	}
	if _, err := patterns.ParseFormat(c.Input.Format); err != nil {
		return fmt.Errorf("%w: input.format: %v", ErrInvalidConfig, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Level returns the parsed log level, or info if it does not parse.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

// NewScorer returns the configured agreement strategy.
func (c *Config) NewScorer() (agreement.Scorer, error) {
	switch c.Scorer {
	case ScorerStandard:
		return agreement.Standard{}, nil
	case ScorerCorrected:
		var opts []agreement.Option
		if c.TaxonCount > 0 {
			opts = append(opts, agreement.WithTaxonCount(c.TaxonCount))
		}
		if c.Excluded != nil {
			opts = append(opts, agreement.WithExcludedValue(*c.Excluded))
		}
		corrected, err := agreement.NewCorrected(opts...)
		if err != nil {
			return nil, err
		}
		return corrected, nil
	default:
		return nil, fmt.Errorf("%w: scorer %q", ErrInvalidConfig, c.Scorer)
	}
}

// PartitionOptions returns the options for partition.Build.
func (c *Config) PartitionOptions() []partition.Option {
	if c.FilterExtremes {
		return []partition.Option{partition.WithFilterExtremes()}
	}

	return nil
}

// ReaderOptions returns the options for the patterns readers.
func (c *Config) ReaderOptions() []patterns.Option {
	opts := []patterns.Option{patterns.WithColumns(c.Input.Columns)}
	if c.Input.Missing != nil {
		opts = append(opts, patterns.WithMissing(c.Input.Missing...))
	}
	if c.Input.Separator != "" {
		opts = append(opts, patterns.WithSeparator(c.Input.Separator))
	}

	return opts
}

// RateOptions returns the options for rates.Compute, scorer included.
func (c *Config) RateOptions() ([]rates.Option, error) {
	s, err := c.NewScorer()
	if err != nil {
		return nil, err
	}

	opts := []rates.Option{rates.WithScorer(s), rates.WithWorkers(c.Workers)}
	if len(c.Selected) > 0 {
		opts = append(opts, rates.WithSelected(c.Selected...))
	}

	return opts, nil
}
