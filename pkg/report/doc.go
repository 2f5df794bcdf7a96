// Package report reads the text reports written by the vertex-magic search.
//
// # Format
//
// A report for cycle size C and K connecting vertices is stored as
// output_<C>_<K>.txt (see [Filename]) and has this layout:
//
//	Graph: Cycle size = 4, connecting vertices = 2
//	Time taken: 0.120000 seconds
//	0 1 0 0 0 0
//	...                       (one row per vertex)
//	1: {3, 9, 1, ...} Magic Number: 17
//	2: {5, 2, 8, ...} Magic Number: 17
//
// The first two lines are informational. The matrix width defines the
// vertex count and every following row must have the same width. Each
// remaining line is one permutation record, parsed by [perm.ParseRecord].
//
// # Reading
//
// [Read] and [Open] read the header and matrix, then select one record by
// its 1-based position after the matrix. They stop reading as soon as that
// record is found. [Scan] and [OpenAll] read every record for summaries.
//
// All failures carry a code from pkg/errors: FILE_NOT_FOUND,
// MALFORMED_MATRIX, RECORD_NOT_FOUND or MALFORMED_RECORD.
package report
