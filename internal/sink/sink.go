// Package sink provides append-only targets for compiled CSS rules: a
// text buffer, an in-memory rule list and a SQLite table.
package sink

import (
	"strings"
	"sync"
)

// Text is a single growable text buffer. Every inserted rule is followed
// by a newline.
type Text struct {
	mu  sync.Mutex
	buf strings.Builder
}

// NewText returns a buffer seeded with initial, typically CSS rendered
// by an earlier process.
func NewText(initial string) *Text {
	t := &Text{}
	t.buf.WriteString(initial)
	return t
}

// Insert appends rule.
func (t *Text) Insert(rule string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf.WriteString(rule)
	t.buf.WriteByte('\n')
	return nil
}

// Rules returns the whole buffer as one chunk, or nothing when it is empty.
func (t *Text) Rules() ([]string, error) {
	s := t.String()
	if s == "" {
		return nil, nil
	}
	return []string{s}, nil
}

// String returns the buffer content.
func (t *Text) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.String()
}

// Sheet is an ordered list of rules, the in-memory counterpart of a
// browser style sheet.
type Sheet struct {
	mu    sync.Mutex
	rules []string
}

// NewSheet returns a sheet holding initial.
func NewSheet(initial ...string) *Sheet {
	return &Sheet{rules: append([]string(nil), initial...)}
}

// Insert appends rule.
func (s *Sheet) Insert(rule string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, rule)
	return nil
}

// Rules returns a copy of the rules, oldest first.
func (s *Sheet) Rules() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.rules...), nil
}

// Len returns the number of rules.
func (s *Sheet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rules)
}

// String joins the rules with newlines.
func (s *Sheet) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.rules, "\n")
}
