// Package tiger measures how well the characters of a phylogenetic data set
// agree with each other (TIGER rates, Cummins & McInerney 2011).
//
// 🚀 What is tiger?
//
//	An in-memory pipeline over discrete character data:
//		• Partitions: every character splits the taxa into groups that share a state
//		• Agreement: one partition scored against another, standard or corrected
//		• Rates: the mean agreement of a character with all other characters
//		• Readers: taxon × character matrices, cognate wordlists, JSON fixtures
//		• Reports: terminal tables, TSV, JSON and YAML
//
// ✨ Why rates?
//
//   - Fast-evolving characters disagree with most others and get low rates
//   - Rates need no tree, so they can screen data before inference
//   - The corrected score ignores singleton and invariant groups, which
//     otherwise inflate agreement for free
//
// Packages:
//
//	partition/    TaxonSet, Partition and the partition Table built from observations
//	agreement/    Scorer interface, Standard and Corrected scorers, pairwise Matrix
//	rates/        Compute (parallel per character) and Summarize
//	patterns/     matrix, wordlist and fixture readers producing a Dataset
//	report/       rate, comparison and matrix rendering
//	config/       YAML run configuration
//	cmd/tiger/    command-line interface
//
// Quick example:
//
//	       X: {a,c,d} {b} {e}
//	       Y: {a,b} {c,d} {e}
//
//	{c,d} ⊂ {a,c,d}, {e} ⊂ {e}, {a,b} fits nowhere: Y scores 2/3 against X.
//
//	go install github.com/katalvlaran/tiger/cmd/tiger@latest
package tiger
