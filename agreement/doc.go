// Package agreement scores how well one character's partition is confirmed
// by another's.
//
// Two strategies implement the Scorer interface:
//
//   - Standard: the partition agreement score of Cummins & McInerney (2011).
//     Every group of the other partition scores 1 if it is a subset of some
//     group of the reference partition and 0 otherwise; the score is the
//     mean over the other partition's groups (0 if it has none).
//
//   - Corrected: ignores uninformative groups (singletons and groups that
//     hold every taxon) while scoring instead of removing them from the
//     partitions up front. Over all informative (other, reference) group
//     pairs it counts links (the groups intersect) and matches (the other
//     group is a subset of the reference group):
//
//     matches > 0           → matches / links
//     links > 0, matches=0  → 0
//     no informative pair   → no data (or the configured excluded value)
//
// Both scores are asymmetric: Score(A, B) and Score(B, A) generally differ.
// The first argument is always the reference, the second the partition
// whose groups are tested against it.
//
// Results are returned as Score, a tagged value whose Defined flag
// separates a genuine 0 from "not evaluable".
//
// Matrix evaluates a Scorer over every ordered pair of characters.
package agreement
