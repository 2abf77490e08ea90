// Package compiler turns style trees into CSS rule strings.
//
// The compiler is a small interpreter over style.Node: it expands mixins,
// normalizes at-rules, records local variables, resolves theme tokens and
// walks nested selectors, producing rules in encounter order. It never
// fails: unknown tokens, aliases and mixins fall through to the raw text,
// and malformed input yields an empty result.
package compiler

import (
	"go.uber.org/zap"

	"github.com/yacobolo/unicss/internal/style"
	"github.com/yacobolo/unicss/internal/theme"
)

// Reserved keys that never become declarations.
const (
	KeyVariants = "variants"
	KeyApply    = "apply"
)

// themeFuncDepth bounds chains of theme functions returning functions.
const themeFuncDepth = 8

// Compiler compiles style trees against one immutable theme.
type Compiler struct {
	theme *theme.Theme
	log   *zap.Logger
}

// New creates a compiler. A nil theme behaves as an empty theme and a nil
// logger discards everything.
func New(t *theme.Theme, log *zap.Logger) *Compiler {
	if t == nil {
		t = theme.New(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{theme: t, log: log.Named("compiler")}
}

// Theme returns the theme the compiler resolves against.
func (c *Compiler) Theme() *theme.Theme {
	return c.theme
}

// evaluate calls theme functions until a non-function value comes out.
func (c *Compiler) evaluate(v style.Value) style.Value {
	for i := 0; i < themeFuncDepth; i++ {
		fn, ok := v.(style.ThemeFunc)
		if !ok {
			if v == nil {
				return style.Null{}
			}
			return v
		}
		if fn == nil {
			return style.Null{}
		}
		v = fn(c.theme)
	}
	c.log.Debug("theme function chain too deep, value dropped")
	return style.Null{}
}

func wrap(name, content string) string {
	return name + " {" + content + "}"
}
