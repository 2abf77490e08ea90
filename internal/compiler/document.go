package compiler

import (
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/unicss/internal/style"
)

// At-rules with dedicated handling at the top level of a document.
const (
	atImport   = "@import"
	atFontFace = "@font-face"
)

// Transform compiles a top-level style map into an ordered list of CSS
// rules. Keys are selectors or at-rules:
//
//   - @import: a string or list of strings, one @import per entry
//   - @font-face (also @fontface, @fontFace): a node or list of nodes
//   - any other at-rule, media aliases included: a map of selectors
//     wrapped into a single block
//
// A nil document yields no rules.
func (c *Compiler) Transform(doc *style.Node) []string {
	var out []string
	for _, e := range doc.Entries() {
		out = append(out, c.transformEntry(e.Key, e.Value)...)
	}
	c.log.Debug("transformed document", zap.Int("entries", doc.Len()), zap.Int("rules", len(out)))
	return out
}

func (c *Compiler) transformEntry(key string, v style.Value) []string {
	if !strings.HasPrefix(key, "@") {
		return c.TransformRule(key, v, nil)
	}

	rule := c.theme.AtRule(key)
	switch {
	case rule == atImport:
		return imports(c.evaluate(v))
	case isFontFace(rule):
		return c.TransformRule(atFontFace, v, nil)
	}

	block, ok := c.evaluate(v).(*style.Node)
	if !ok || block == nil {
		c.log.Debug("at-rule value is not a selector map, ignored", zap.String("rule", rule))
		return nil
	}
	var inner []string
	for _, e := range block.Entries() {
		inner = append(inner, c.TransformRule(e.Key, e.Value, nil)...)
	}
	if len(inner) == 0 {
		return nil
	}
	return []string{wrap(rule, strings.Join(inner, " "))}
}

func isFontFace(rule string) bool {
	switch rule {
	case "@font-face", "@fontface", "@fontFace":
		return true
	}
	return false
}

// imports accepts a string or a list of strings. Anything else emits
// nothing.
func imports(v style.Value) []string {
	var sources []string
	switch x := v.(type) {
	case style.String:
		sources = []string{string(x)}
	case style.List:
		for _, item := range x {
			if s, ok := item.(style.String); ok {
				sources = append(sources, string(s))
			}
		}
	}
	out := make([]string, 0, len(sources))
	for _, src := range sources {
		if src != "" {
			out = append(out, atImport+" "+src+";")
		}
	}
	return out
}
