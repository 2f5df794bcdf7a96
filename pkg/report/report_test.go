package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/necklace/pkg/errors"
	"github.com/matzehuels/necklace/pkg/graph"
)

const sample = `Graph: Cycle size = 3, connecting vertices = 1
Time taken: 1.500000 seconds
0 1 0 0 0 
0 0 1 0 0 
0 0 0 1 0 
0 0 0 0 1 
1 0 0 0 0 
1: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10} Magic Number: 11
2: {10, 9, 8, 7, 6, 5, 4, 3, 2, 1} Magic Number: 11
3: {2, 1, 3, 4, 5, 6, 7, 8, 9, 10} Magic Number: 13
`

func TestFilename(t *testing.T) {
	require.Equal(t, "output_4_2.txt", Filename(4, 2))
	require.Equal(t, "output_10_0.txt", Filename(10, 0))
}

func TestRead(t *testing.T) {
	rep, err := Read(strings.NewReader(sample), 2)
	require.NoError(t, err)

	require.True(t, rep.Header.HasParams)
	require.Equal(t, 3, rep.Header.CycleSize)
	require.Equal(t, 1, rep.Header.Connecting)
	require.True(t, rep.Header.HasElapsed)
	require.Equal(t, 1500*time.Millisecond, rep.Header.Elapsed)

	require.Equal(t, 5, rep.Matrix.Size())
	require.Equal(t, 5, rep.Matrix.EdgeCount())
	require.Equal(t, 2, rep.Index)
	require.Equal(t, 9, rep.Line)
	require.Equal(t, "2", rep.Record.ID)
	require.Equal(t, []string{"10", "9", "8", "7", "6", "5", "4", "3", "2", "1"}, rep.Record.Labels)
	require.Equal(t, 11, rep.Record.Magic)
}

func TestRead_SelectsByPositionNotID(t *testing.T) {
	in := "params\ntime\n0 1\n1 0\nx: [a, b]\ny: [c, d]\nperm 3: [e, f, g, h]" + strings.Repeat(" ", 13) + "\n"
	rep, err := Read(strings.NewReader(in), 3)
	require.NoError(t, err)

	require.False(t, rep.Header.HasParams)
	require.False(t, rep.Header.HasElapsed)
	require.Equal(t, "params", rep.Header.Params)
	require.Equal(t, "perm 3", rep.Record.ID)
	require.Equal(t, []string{"e", "f", "g", "h"}, rep.Record.Labels)
	require.False(t, rep.Record.HasMagic)
}

func TestRead_CRLF(t *testing.T) {
	in := strings.ReplaceAll(sample, "\n", "\r\n")
	rep, err := Read(strings.NewReader(in), 1)
	require.NoError(t, err)
	require.Equal(t, graph.Matrix{
		{0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 1, 0},
		{0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0},
	}, rep.Matrix)
	require.Len(t, rep.Record.Labels, 10)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		idx  int
		code errs.Code
		msg  string
	}{
		{"index zero", sample, 0, errs.ErrCodeInvalidArgument, "at least 1"},
		{"index past end", sample, 4, errs.ErrCodeRecordNotFound, "report has 3 lines after the matrix"},
		{"empty file", "", 1, errs.ErrCodeMalformedMatrix, "parameter line"},
		{"header only", "a\nb\n", 1, errs.ErrCodeMalformedMatrix, "while reading matrix"},
		{"blank first row", "a\nb\n\n", 1, errs.ErrCodeMalformedMatrix, "first matrix row is empty"},
		{"non-integer cell", "a\nb\n0 x\n1 0\n1: {a}\n", 1, errs.ErrCodeMalformedMatrix, "entry 2 is not an integer"},
		{"short row", "a\nb\n0 1 0\n1 0\n0 0 0\n1: {a}\n", 1, errs.ErrCodeMalformedMatrix, "matrix row 2 has 2 entries, want 3"},
		{"long row", "a\nb\n0 1\n1 0 1\n1: {a}\n", 1, errs.ErrCodeMalformedMatrix, "matrix row 2 has 3 entries, want 2"},
		{"truncated matrix", "a\nb\n0 1 0\n1 0 0\n", 1, errs.ErrCodeMalformedMatrix, "matrix row 3 of 3"},
		{"malformed record", "a\nb\n0\nnot a record\n", 1, errs.ErrCodeMalformedRecord, "line 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in), tt.idx)
			require.Error(t, err)
			require.Equal(t, tt.code, errs.GetCode(err), "err = %v", err)
			require.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename(3, 1))
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	rep, err := Open(path, 3)
	require.NoError(t, err)
	require.Equal(t, 13, rep.Record.Magic)

	_, err = Open(filepath.Join(dir, Filename(9, 9)), 1)
	require.True(t, errs.Is(err, errs.ErrCodeFileNotFound), "err = %v", err)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Open("", 1)
	require.True(t, errs.Is(err, errs.ErrCodeInvalidPath))
}

func TestScan(t *testing.T) {
	s, err := Scan(strings.NewReader(sample + "\n\n"))
	require.NoError(t, err)
	require.Len(t, s.Records, 3)
	require.Equal(t, "3", s.Records[2].ID)

	lo, hi, ok := s.MagicRange()
	require.True(t, ok)
	require.Equal(t, 11, lo)
	require.Equal(t, 13, hi)
}

func TestScan_NoRecords(t *testing.T) {
	s, err := Scan(strings.NewReader("a\nb\n0\n"))
	require.NoError(t, err)
	require.Empty(t, s.Records)

	_, _, ok := s.MagicRange()
	require.False(t, ok)
}

func TestScan_MalformedRecord(t *testing.T) {
	_, err := Scan(strings.NewReader("a\nb\n0\n1: {a}\nbroken\n"))
	require.True(t, errs.Is(err, errs.ErrCodeMalformedRecord))
	require.Contains(t, err.Error(), "line 5")
}

func TestOpenAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	s, err := OpenAll(path)
	require.NoError(t, err)
	require.Len(t, s.Records, 3)
	require.Equal(t, 5, s.Matrix.Size())
}
