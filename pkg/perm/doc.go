// Package perm parses permutation records and hands out their labels.
//
// A permutation record is one line of a search report that assigns a label
// to every vertex and every edge of a graph:
//
//	3: {4, 1, 7, 2, 6, 3, 5} Magic Number: 12
//
// [ParseRecord] extracts the record id, the bracketed label list (either
// {...} or [...]) and the optional "Magic Number" trailer. Parsing is
// delimiter-aware rather than positional, so a trailer of a different length
// does not shift the labels.
//
// A [Cursor] walks the labels in order. Nodes take the first labels and
// edges the rest; the cursor fails with INSUFFICIENT_LABELS rather than
// indexing past the end of the list.
package perm
