package perm

import (
	"regexp"
	"strconv"
	"strings"

	errs "github.com/matzehuels/necklace/pkg/errors"
)

var (
	recordRe = regexp.MustCompile(`^\s*([^:]*?)\s*:\s*([\[{])(.*)([\]}])(.*)$`)
	magicRe  = regexp.MustCompile(`(?i)magic\s+number\s*:\s*(-?\d+)`)
)

// labelSep separates labels inside the brackets. A bare comma belongs to
// the label it appears in.
const labelSep = ", "

// closing maps each opening bracket to the bracket that must close it.
var closing = map[string]string{"[": "]", "{": "}"}

// Record is one labeled assignment parsed from a report line.
type Record struct {
	ID       string   // text before the first colon, e.g. "3"
	Labels   []string // labels in record order
	Magic    int      // magic number from the trailer, if HasMagic
	HasMagic bool
}

// ParseRecord parses a line of the form "<id>: <open><labels><close><trailer>".
// Labels are separated by ", " and trimmed. The trailer is optional; when
// it contains "Magic Number: <n>" the number is captured.
func ParseRecord(line string) (*Record, error) {
	line = strings.TrimRight(line, "\r\n")
	m := recordRe.FindStringSubmatch(line)
	if m == nil {
		return nil, errs.New(errs.ErrCodeMalformedRecord, "no bracketed label list in %q", line)
	}
	left, body, right, trailer := m[2], m[3], m[4], m[5]
	if closing[left] != right {
		return nil, errs.New(errs.ErrCodeMalformedRecord, "mismatched brackets %s...%s in %q", left, right, line)
	}

	labels, err := splitLabels(body)
	if err != nil {
		return nil, err
	}

	rec := &Record{ID: m[1], Labels: labels}
	if mm := magicRe.FindStringSubmatch(trailer); mm != nil {
		n, err := strconv.Atoi(mm[1])
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeMalformedRecord, err, "magic number %q", mm[1])
		}
		rec.Magic, rec.HasMagic = n, true
	}
	return rec, nil
}

func splitLabels(body string) ([]string, error) {
	if strings.TrimSpace(body) == "" {
		return nil, errs.New(errs.ErrCodeMalformedRecord, "empty label list")
	}
	parts := strings.Split(body, labelSep)
	labels := make([]string, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, errs.New(errs.ErrCodeMalformedRecord, "label %d is empty", i+1)
		}
		labels[i] = p
	}
	return labels, nil
}
