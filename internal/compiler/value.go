package compiler

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/unicss/internal/style"
)

var (
	tokenPattern     = regexp.MustCompile(`\$([\w.]+)`)
	importantPattern = regexp.MustCompile(`\s*!important\s*$`)
)

// unitless properties receive plain numbers instead of px values.
var unitless = map[string]struct{}{
	"animationIterationCount": {},
	"flex":                    {},
	"flexGrow":                {},
	"flexOrder":               {},
	"flexShrink":              {},
	"fontWeight":              {},
	"gridRow":                 {},
	"gridColumn":              {},
	"lineClamp":               {},
	"lineHeight":              {},
	"opacity":                 {},
	"order":                   {},
	"widows":                  {},
	"zIndex":                  {},
	"zoom":                    {},
}

// IsUnitless reports whether prop (camelCase or kebab-case) takes plain
// numbers.
func IsUnitless(prop string) bool {
	_, ok := unitless[style.Camel(prop)]
	return ok
}

// ResolveValue renders the value of prop as CSS text. Theme functions are
// evaluated, $tokens substituted and numbers given a px unit unless prop
// is unitless.
func (c *Compiler) ResolveValue(prop string, v style.Value, scope *Scope) string {
	switch x := c.evaluate(v).(type) {
	case style.String:
		return c.substitute(prop, string(x), scope)
	case style.Number:
		if IsUnitless(prop) {
			return style.Text(x)
		}
		return style.Text(x) + "px"
	case style.Bool:
		return style.Text(x)
	default:
		return ""
	}
}

// substitute replaces every $token in s. Lookup order: local variables,
// the scale mapped to prop (plain names only), dotted paths against the
// whole theme. Unresolved tokens stay as written.
func (c *Compiler) substitute(prop, s string, scope *Scope) string {
	if !strings.Contains(s, "$") {
		return s
	}
	body, important := s, ""
	if loc := importantPattern.FindStringIndex(s); loc != nil {
		body, important = s[:loc[0]], s[loc[0]:]
	}
	out := tokenPattern.ReplaceAllStringFunc(body, func(match string) string {
		if text, ok := c.token(prop, match[1:], scope); ok {
			return text
		}
		c.log.Debug("unresolved token", zap.String("property", prop), zap.String("token", match))
		return match
	})
	return out + important
}

func (c *Compiler) token(prop, key string, scope *Scope) (string, bool) {
	if v, ok := scope.Lookup(key); ok {
		if v = c.evaluate(v); style.IsScalar(v) {
			return style.Text(v), true
		}
	}
	dotted := strings.Contains(key, ".")
	if !dotted {
		if table, ok := c.theme.Scale(prop); ok {
			if v, ok := table.Get(key); ok {
				if v = c.evaluate(v); style.IsScalar(v) {
					return style.Text(v), true
				}
			}
		}
		return "", false
	}
	if v, ok := c.theme.Lookup(key); ok {
		if v = c.evaluate(v); style.IsScalar(v) {
			return style.Text(v), true
		}
	}
	return "", false
}
