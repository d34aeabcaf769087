// Package patterns reads character data from files into partition
// Observations.
//
// Three layouts are supported:
//
//   - Matrix (CSV or TSV): one row per taxon, one column per character.
//     The header row names the characters; its first cell is ignored.
//
//     Taxon,1,2,3
//     a,A,B,A|C
//     b,A,?,B
//
//   - Wordlist (TSV): one row per observation with taxon, character and
//     state columns, e.g. a cognate-coded wordlist with DOCULECT, CONCEPT
//     and COGID. Several rows for the same taxon and character give a
//     multi-state cell.
//
//   - Fixture (JSON): {"taxa": [...], "patterns": {char: {taxon: [states]}},
//     "results": [...]} as used for reference data sets.
//
// Missing-data markers (default "", "?", "-", "Ø") never become states.
// Every reader returns a Dataset that keeps the input order of taxa and
// characters.
package patterns
