// Package cache records which compiled style groups were already written
// to a sink, so every distinct group is emitted at most once.
package cache

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"github.com/yacobolo/unicss/internal/sink"
)

// Sink is an append-only target for CSS rules.
type Sink interface {
	// Insert appends one rule.
	Insert(rule string) error
	// Rules enumerates the existing content, oldest first.
	Rules() ([]string, error)
}

// BatchSink is implemented by sinks that can append a group of rules
// atomically.
type BatchSink interface {
	Sink
	InsertAll(rules []string) error
}

// Cache is an insertion-ordered set of recorded identifiers over a Sink.
// It is safe for concurrent use.
type Cache struct {
	mu     sync.Mutex
	sink   Sink
	seen   map[string]struct{}
	hashes []string
	log    *zap.Logger
}

// New creates a cache over s and hydrates it from the existing content
// of s. A nil sink is replaced by an empty in-memory sheet. Content that
// cannot be enumerated is reported, and the cache starts empty.
func New(s Sink, log *zap.Logger) (*Cache, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if s == nil {
		s = sink.NewSheet()
	}
	c := &Cache{
		sink: s,
		seen: make(map[string]struct{}),
		log:  log.Named("cache"),
	}

	rules, err := s.Rules()
	if err != nil {
		return c, fmt.Errorf("read sink content: %w", err)
	}
	for _, rule := range rules {
		for _, hash := range ScanMarkers(rule) {
			c.record(hash)
		}
	}
	if len(c.hashes) > 0 {
		c.log.Debug("hydrated", zap.Int("hashes", len(c.hashes)))
	}
	return c, nil
}

// Insert writes the marker of hash followed by rules, with every
// Placeholder replaced by hash, unless hash is already recorded. It
// reports whether anything was written. A hash is recorded only once its
// rules reached the sink, so a failed insert is retried on the next call.
func (c *Cache) Insert(hash string, rules []string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.seen[hash]; ok {
		return false, nil
	}

	group := make([]string, 0, len(rules)+1)
	group = append(group, Marker(hash))
	for _, rule := range rules {
		group = append(group, strings.ReplaceAll(rule, Placeholder, hash))
	}

	if batch, ok := c.sink.(BatchSink); ok {
		if err := batch.InsertAll(group); err != nil {
			return false, fmt.Errorf("insert %s: %w", hash, err)
		}
	} else {
		for _, rule := range group {
			if err := c.sink.Insert(rule); err != nil {
				return false, fmt.Errorf("insert %s: %w", hash, err)
			}
		}
	}

	c.record(hash)
	c.log.Debug("inserted", zap.String("hash", hash), zap.Int("rules", len(rules)))
	return true, nil
}

// Has reports whether hash is recorded.
func (c *Cache) Has(hash string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.seen[hash]
	return ok
}

// Hashes returns the recorded identifiers in insertion order.
func (c *Cache) Hashes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.hashes))
	copy(out, c.hashes)
	return out
}

// Len returns the number of recorded identifiers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.hashes)
}

// Sink returns the underlying sink.
func (c *Cache) Sink() Sink {
	return c.sink
}

func (c *Cache) record(hash string) {
	if _, ok := c.seen[hash]; ok {
		return
	}
	c.seen[hash] = struct{}{}
	c.hashes = append(c.hashes, hash)
}

// ScanMarkers returns the identifiers recorded by marker rules
// (--uni {--uni:uni-123;}, value quoted or bare) in text, in order of
// appearance.
func ScanMarkers(text string) []string {
	if !strings.Contains(text, MarkerProperty) {
		return nil
	}

	var out []string
	l := css.NewLexer(parse.NewInputString(text))
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break
		}
		if string(data) != MarkerProperty {
			continue
		}
		// Only a rule selected by --uni whose first declaration is --uni
		// is a marker; the same declaration inside any other rule is not.
		if tt, _ = next(l); tt != css.LeftBraceToken {
			continue
		}
		if _, data = next(l); string(data) != MarkerProperty {
			continue
		}
		if tt, _ = next(l); tt != css.ColonToken {
			continue
		}
		tt, data = next(l)
		var value string
		switch tt {
		case css.IdentToken:
			value = string(data)
		case css.StringToken:
			value = strings.Trim(string(data), `"'`)
		default:
			continue
		}
		if strings.HasPrefix(value, Prefix) {
			out = append(out, value)
		}
	}
	return out
}

// next returns the next token that is not whitespace or a comment.
func next(l *css.Lexer) (css.TokenType, []byte) {
	for {
		tt, data := l.Next()
		if tt != css.WhitespaceToken && tt != css.CommentToken {
			return tt, data
		}
	}
}
