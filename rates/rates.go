package rates

import (
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tiger/partition"
)

// row is the outcome for one selected character.
type row struct {
	rate   float64
	scores int
}

// Compute returns the rate of every selected character of t.
//
// Steps:
//  1. Validate options and the table; every selected character must exist.
//  2. Build the pool: characters with a non-empty partition, sorted.
//  3. For each selected character c, score partition(c) (reference) against
//     partition(d) for each pool character d ≠ c; keep defined scores.
//  4. rate(c) = mean of the kept scores; characters without any are omitted.
//
// Errors: ErrOptionViolation, ErrNilTable, ErrUnknownCharacter, or the
// context's error if it is cancelled before all rows are done.
//
// Complexity: O(S · P) scorer calls for S selected and P pool characters.
func Compute(t *partition.Table, opts ...Option) (map[string]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if t == nil {
		return nil, ErrNilTable
	}

	pool := t.Pool()
	poolParts := make([]partition.Partition, len(pool))
	for i, c := range pool {
		poolParts[i], _ = t.Partition(c)
	}

	selected := pool
	if len(cfg.Selected) > 0 {
		selected = dedupe(cfg.Selected)
	}
	refs := make([]partition.Partition, len(selected))
	for i, c := range selected {
		p, err := t.Get(c)
		if err != nil {
			return nil, err
		}
		refs[i] = p
	}

	rows := make([]row, len(selected))
	g, ctx := errgroup.WithContext(cfg.Ctx)
	g.SetLimit(cfg.Workers)
	for i := range selected {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = computeRow(selected[i], refs[i], pool, poolParts, cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(selected))
	for i, c := range selected {
		if rows[i].scores == 0 {
			cfg.Logger.Debug().Str("character", c).Str("scorer", cfg.Scorer.Name()).Msg("no usable comparisons, rate omitted")
			continue
		}
		out[c] = rows[i].rate
	}
	cfg.Logger.Debug().
		Str("scorer", cfg.Scorer.Name()).
		Int("pool", len(pool)).
		Int("selected", len(selected)).
		Int("rated", len(out)).
		Msg("rates computed")

	return out, nil
}

func computeRow(char string, ref partition.Partition, pool []string, parts []partition.Partition, cfg Options) row {
	scores := make([]float64, 0, len(pool))
	for j, other := range pool {
		if other == char {
			continue
		}
		if v, ok := cfg.Scorer.Score(ref, parts[j]).Float(); ok {
			scores = append(scores, v)
		}
	}
	if len(scores) == 0 {
		return row{}
	}

	return row{rate: mean(scores), scores: len(scores)}
}

func dedupe(chars []string) []string {
	out := make([]string, 0, len(chars))
	for _, c := range chars {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}

	return out
}
