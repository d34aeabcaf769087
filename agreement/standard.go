package agreement

import "github.com/katalvlaran/tiger/partition"

// PartitionScore returns the share of groups in other that are a subset of
// at least one group in reference. It is 0 when other is empty.
//
// Complexity: O(|other| · |reference| · s) for group size s.
func PartitionScore(reference, other partition.Partition) float64 {
	groups := other.Groups()
	if len(groups) == 0 {
		return 0
	}

	refs := reference.Groups()
	hits := 0
	for _, g := range groups {
		for _, r := range refs {
			if g.SubsetOf(r) {
				hits++
				break
			}
		}
	}

	return float64(hits) / float64(len(groups))
}

// Standard is the Scorer for PartitionScore. Its scores are always defined.
type Standard struct{}

// Score implements Scorer.
func (Standard) Score(reference, other partition.Partition) Score {
	return Of(PartitionScore(reference, other))
}

// Name implements Scorer.
func (Standard) Name() string { return "standard" }
