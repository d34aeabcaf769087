// Package report renders rate tables, data set comparisons and pairwise
// score matrices.
//
// ✨ Formats:
//   - table: a bordered terminal table (charmbracelet/lipgloss), followed by
//     a one-line summary where it applies.
//   - tsv: a header line and one tab-separated record per row.
//   - json, yaml: the report value itself; undefined scores and omitted
//     rates are null.
//
// Rendering is deterministic: rows follow the caller's character order, or
// sorted character order when none is given.
package report
