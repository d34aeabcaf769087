package agreement

import "github.com/katalvlaran/tiger/partition"

// CorrectedScore compares other against reference while ignoring singleton
// and invariant groups.
//
// Algorithm:
//  1. Ceilings: opts' TaxonCount for both partitions, or else each
//     partition's own TaxonCount.
//  2. For every (group in other, group in reference) pair where both sizes
//     are > 1 and below their partition's ceiling: count a link if the
//     groups intersect and a match if the other group is a subset.
//  3. matches > 0 → matches/links; links > 0 → 0; otherwise NoData, or the
//     excluded value if one was configured.
//
// The only error is ErrOptionViolation for invalid options.
func CorrectedScore(reference, other partition.Partition, opts ...Option) (Score, error) {
	cfg, err := gatherOptions(opts)
	if err != nil {
		return NoData, err
	}

	return correctedScore(reference, other, cfg), nil
}

func correctedScore(reference, other partition.Partition, cfg Options) Score {
	refCeil, otherCeil := reference.TaxonCount(), other.TaxonCount()
	if cfg.TaxonCount > 0 {
		refCeil, otherCeil = cfg.TaxonCount, cfg.TaxonCount
	}

	refs := informative(reference.Groups(), refCeil)
	var links, matches int
	for _, g := range informative(other.Groups(), otherCeil) {
		for _, r := range refs {
			if g.Intersects(r) {
				links++
			}
			if g.SubsetOf(r) {
				matches++
			}
		}
	}

	switch {
	case matches > 0:
		return Of(float64(matches) / float64(links))
	case links > 0:
		return Of(0)
	case cfg.HasExcluded:
		return Of(cfg.Excluded)
	default:
		return NoData
	}
}

// informative keeps groups with 1 < size < ceiling.
func informative(groups []partition.TaxonSet, ceiling int) []partition.TaxonSet {
	out := groups[:0]
	for _, g := range groups {
		if g.Len() > 1 && g.Len() < ceiling {
			out = append(out, g)
		}
	}

	return out
}

// Corrected is the Scorer for CorrectedScore with a fixed configuration.
type Corrected struct {
	opts Options
}

// NewCorrected validates opts once and returns a reusable Scorer.
func NewCorrected(opts ...Option) (*Corrected, error) {
	cfg, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Corrected{opts: cfg}, nil
}

// Options returns the validated configuration.
func (c *Corrected) Options() Options { return c.opts }

// Score implements Scorer.
func (c *Corrected) Score(reference, other partition.Partition) Score {
	return correctedScore(reference, other, c.opts)
}

// Name implements Scorer.
func (c *Corrected) Name() string { return "corrected" }
