package perm

import (
	errs "github.com/matzehuels/necklace/pkg/errors"
)

// Cursor hands out labels strictly in order. Every label is returned at most
// once. It is not safe for concurrent use.
type Cursor struct {
	labels []string
	pos    int
}

// NewCursor returns a cursor positioned at the first label.
func NewCursor(labels []string) *Cursor {
	return &Cursor{labels: labels}
}

// Next returns the next unused label.
func (c *Cursor) Next() (string, error) {
	if c.pos >= len(c.labels) {
		return "", errs.New(errs.ErrCodeInsufficientLabels,
			"label %d requested but the record has only %d", c.pos+1, len(c.labels))
	}
	l := c.labels[c.pos]
	c.pos++
	return l, nil
}

// Require fails unless at least n labels remain.
func (c *Cursor) Require(n int) error {
	if r := c.Remaining(); r < n {
		return errs.New(errs.ErrCodeInsufficientLabels,
			"need %d labels, record has %d remaining", n, r)
	}
	return nil
}

// Remaining returns how many labels have not been handed out.
func (c *Cursor) Remaining() int { return len(c.labels) - c.pos }

// Consumed returns the labels handed out so far, in order.
func (c *Cursor) Consumed() []string { return c.labels[:c.pos] }
