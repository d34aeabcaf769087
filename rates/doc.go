// Package rates aggregates pairwise agreement scores into one TIGER rate
// per character.
//
// For every selected character, the rate is the arithmetic mean of its
// agreement with every other character of the comparison pool:
//
//	rate(c) = mean{ score(partition(c), partition(d)) : d ∈ pool, d ≠ c, score defined }
//
// The pool is every character of the table with a non-empty partition. The
// selection only restricts which characters receive a rate, never which
// characters serve as comparison partners. Self-comparison is excluded by
// character identity. Characters that end up with no defined score are
// omitted from the result.
//
// Choosing the Scorer selects the flavor:
//
//	Compute(tbl)                                          // TIGER rates
//	Compute(tbl, WithScorer(corrected))                   // corrected TIGER rates
//	Compute(tbl, WithSelected("1", "2"), WithWorkers(4))  // subset, 4 rows at a time
//
// Every row of the rate table is independent; WithWorkers computes rows
// concurrently with golang.org/x/sync/errgroup. Results do not depend on the
// number of workers.
//
// Summarize reduces a rate table to count, mean and sample standard
// deviation.
package rates
