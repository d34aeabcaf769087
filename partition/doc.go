// Package partition turns per-character, per-taxon state observations into
// set partitions of taxa.
//
// 🚀 What is a partition?
//
//	For one character, every observed state collects the taxa that carry it.
//	The partition of the character is the set of those taxon groups:
//
//	    character X:  a=A  b=B  c=A  d=A  e=C
//	    partition X:  {a,c,d}  {b}  {e}
//
//	Groups are compared by their members, not by the state that produced
//	them, so two states covering the same taxa collapse into one group.
//	A taxon may carry zero, one or several states for a character; taxa with
//	no state contribute to no group.
//
// ✨ Key features:
//   - TaxonSet: immutable, sorted, duplicate-free group of taxa with
//     O(n+m) subset and intersection tests.
//   - Partition: immutable set of TaxonSets with set semantics.
//   - Build: Observations → Table, optionally dropping singleton and
//     invariant groups (WithFilterExtremes).
//   - Table.Profile: size statistics over a whole table.
//
// ⚙️ Usage:
//
//	obs := partition.Observations{
//	  "X": {"a": {"A"}, "b": {"B"}, "c": {"A"}},
//	}
//	tbl, err := partition.Build(obs, []string{"a", "b", "c"})
//
// Determinism:
//
//	The result of Build does not depend on taxon or state iteration order.
//	Groups inside a Partition and characters inside a Table are always
//	reported in sorted order.
//
// Errors (sentinel):
//   - ErrEmptyTaxon:       an empty taxon identifier was supplied.
//   - ErrDuplicateTaxon:   the taxon list names the same taxon twice.
//   - ErrEmptyGroup:       a hand-built partition contains an empty group.
//   - ErrUnknownCharacter: a character is not part of the table.
package partition
