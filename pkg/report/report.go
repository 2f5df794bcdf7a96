package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	errs "github.com/matzehuels/necklace/pkg/errors"
	"github.com/matzehuels/necklace/pkg/graph"
	"github.com/matzehuels/necklace/pkg/perm"
)

// maxLineSize bounds a single report line. Records for large graphs list
// every vertex and edge label on one line.
const maxLineSize = 4 << 20

var (
	paramsRe  = regexp.MustCompile(`(?i)cycle\s+size\s*=\s*(\d+)\s*,\s*connecting\s+vertices\s*=\s*(\d+)`)
	elapsedRe = regexp.MustCompile(`(?i)time\s+taken\s*:\s*([0-9.]+)\s*seconds`)
)

// Filename returns the report file name for the given parameters.
func Filename(cycleSize, connecting int) string {
	return fmt.Sprintf("output_%d_%d.txt", cycleSize, connecting)
}

// Header holds the two informational lines at the top of a report.
// Neither line is required to match the upstream wording.
type Header struct {
	Params     string // raw first line
	CycleSize  int
	Connecting int
	HasParams  bool // CycleSize and Connecting were found in Params

	Time       string // raw second line
	Elapsed    time.Duration
	HasElapsed bool
}

// Report is a parsed report with one selected record.
type Report struct {
	Header Header
	Matrix graph.Matrix
	Index  int // 1-based record position after the matrix
	Line   int // 1-based line number of the record in the file
	Record *perm.Record
}

// Open reads the report at path and selects record idx.
func Open(path string, idx int) (*Report, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, idx)
}

// Read parses the header and matrix from r and selects the idx-th line
// after the matrix (1-based) as the record. Read does not close r.
func Read(r io.Reader, idx int) (*Report, error) {
	if idx < 1 {
		return nil, errs.New(errs.ErrCodeInvalidArgument, "record index must be at least 1, got %d", idx)
	}

	lr := newLineReader(r)
	hdr, m, err := readPreamble(lr)
	if err != nil {
		return nil, err
	}

	var line string
	for i := 1; i <= idx; i++ {
		l, ok := lr.next()
		if !ok {
			if err := lr.err(); err != nil {
				return nil, err
			}
			return nil, errs.New(errs.ErrCodeRecordNotFound,
				"record %d requested but the report has %d lines after the matrix", idx, i-1)
		}
		line = l
	}

	rec, err := perm.ParseRecord(line)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lr.n, err)
	}
	return &Report{Header: hdr, Matrix: m, Index: idx, Line: lr.n, Record: rec}, nil
}

// Summary is a report with all of its records.
type Summary struct {
	Header  Header
	Matrix  graph.Matrix
	Records []*perm.Record
}

// OpenAll reads the report at path with every record.
func OpenAll(path string) (*Summary, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Scan(f)
}

// Scan parses the header, the matrix and every non-blank record line.
func Scan(r io.Reader) (*Summary, error) {
	lr := newLineReader(r)
	hdr, m, err := readPreamble(lr)
	if err != nil {
		return nil, err
	}

	s := &Summary{Header: hdr, Matrix: m}
	for {
		line, ok := lr.next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := perm.ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lr.n, err)
		}
		s.Records = append(s.Records, rec)
	}
	if err := lr.err(); err != nil {
		return nil, err
	}
	return s, nil
}

// MagicRange returns the smallest and largest magic numbers among records
// that carry one. ok is false if none do.
func (s *Summary) MagicRange() (lo, hi int, ok bool) {
	for _, r := range s.Records {
		if !r.HasMagic {
			continue
		}
		if !ok || r.Magic < lo {
			lo = r.Magic
		}
		if !ok || r.Magic > hi {
			hi = r.Magic
		}
		ok = true
	}
	return lo, hi, ok
}

func open(path string) (*os.File, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "report %s", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "open %s", path)
	}
	return f, nil
}

func readPreamble(lr *lineReader) (Header, graph.Matrix, error) {
	var hdr Header
	params, ok := lr.next()
	if !ok {
		return hdr, nil, lr.eof("parameter line")
	}
	hdr.Params = params
	if m := paramsRe.FindStringSubmatch(params); m != nil {
		hdr.CycleSize, _ = strconv.Atoi(m[1])
		hdr.Connecting, _ = strconv.Atoi(m[2])
		hdr.HasParams = true
	}

	elapsed, ok := lr.next()
	if !ok {
		return hdr, nil, lr.eof("time line")
	}
	hdr.Time = elapsed
	if m := elapsedRe.FindStringSubmatch(elapsed); m != nil {
		if secs, err := strconv.ParseFloat(m[1], 64); err == nil {
			hdr.Elapsed = time.Duration(secs * float64(time.Second))
			hdr.HasElapsed = true
		}
	}

	m, err := readMatrix(lr)
	return hdr, m, err
}

func readMatrix(lr *lineReader) (graph.Matrix, error) {
	line, ok := lr.next()
	if !ok {
		return nil, lr.eof("matrix")
	}
	first, err := parseRow(line, lr.n)
	if err != nil {
		return nil, err
	}
	n := len(first)
	if n == 0 {
		return nil, errs.New(errs.ErrCodeMalformedMatrix, "line %d: first matrix row is empty", lr.n)
	}

	rows := make([][]int, 1, n)
	rows[0] = first
	for i := 1; i < n; i++ {
		line, ok := lr.next()
		if !ok {
			return nil, lr.eof(fmt.Sprintf("matrix row %d of %d", i+1, n))
		}
		row, err := parseRow(line, lr.n)
		if err != nil {
			return nil, err
		}
		if len(row) != n {
			return nil, errs.New(errs.ErrCodeMalformedMatrix,
				"line %d: matrix row %d has %d entries, want %d", lr.n, i+1, len(row), n)
		}
		rows = append(rows, row)
	}

	m, err := graph.NewMatrix(rows)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeMalformedMatrix, err, "matrix")
	}
	return m, nil
}

func parseRow(line string, lineNo int) ([]int, error) {
	fields := strings.Fields(line)
	row := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeMalformedMatrix, err,
				"line %d: entry %d is not an integer", lineNo, i+1)
		}
		row[i] = v
	}
	return row, nil
}

// lineReader counts lines and keeps the first read error.
type lineReader struct {
	sc *bufio.Scanner
	n  int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineReader{sc: sc}
}

func (l *lineReader) next() (string, bool) {
	if !l.sc.Scan() {
		return "", false
	}
	l.n++
	return strings.TrimRight(l.sc.Text(), "\r"), true
}

func (l *lineReader) err() error {
	if err := l.sc.Err(); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "read report after line %d", l.n)
	}
	return nil
}

// eof reports a report that ended while reading what.
func (l *lineReader) eof(what string) error {
	if err := l.err(); err != nil {
		return err
	}
	return errs.New(errs.ErrCodeMalformedMatrix, "report ended after line %d while reading %s", l.n, what)
}
