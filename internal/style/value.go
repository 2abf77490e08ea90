// Package style defines the style tree consumed by the compiler: an
// ordered node of declarations whose values form a closed sum type.
package style

import (
	"strconv"
	"strings"
)

// Value is one of String, Number, Bool, *Node, List, ThemeFunc,
// PropertyFunc or Null.
type Value interface {
	isValue()
}

// String is a literal scalar.
type String string

// Number is a numeric scalar. Numbers receive a px unit unless the
// property is unitless.
type Number float64

// Bool is a boolean scalar, as decoded from YAML or JSON documents.
type Bool bool

// List is an ordered array of values (@font-face lists, apply lists,
// @import lists).
type List []Value

// Null suppresses the key it is assigned to.
type Null struct{}

// TokenSource gives lazy access to theme tokens by dotted path.
type TokenSource interface {
	Lookup(path string) (Value, bool)
}

// ThemeFunc computes a value from the active theme at compile time.
type ThemeFunc func(t TokenSource) Value

// PropertyFunc expands the value of a custom property into the
// declarations it stands for, e.g. paddingX into paddingLeft and
// paddingRight. It lives in the theme's properties registry.
type PropertyFunc func(v Value) *Node

func (String) isValue()       {}
func (Number) isValue()       {}
func (Bool) isValue()         {}
func (*Node) isValue()        {}
func (List) isValue()         {}
func (Null) isValue()         {}
func (ThemeFunc) isValue()    {}
func (PropertyFunc) isValue() {}

// Text renders a scalar the way it appears in CSS output. Non-scalars
// render as the empty string.
func Text(v Value) string {
	switch x := v.(type) {
	case String:
		return string(x)
	case Number:
		return strconv.FormatFloat(float64(x), 'f', -1, 64)
	case Bool:
		return strconv.FormatBool(bool(x))
	default:
		return ""
	}
}

// IsScalar reports whether v is a String, Number or Bool.
func IsScalar(v Value) bool {
	switch v.(type) {
	case String, Number, Bool:
		return true
	}
	return false
}

// Truthy mirrors the loose truthiness used by ClassNames.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case nil, Null:
		return false
	case String:
		return x != ""
	case Number:
		return x != 0
	case Bool:
		return bool(x)
	case *Node:
		return x != nil
	case ThemeFunc:
		return x != nil
	case PropertyFunc:
		return x != nil
	default:
		return true
	}
}

// From converts a native Go value into a Value. Unsupported values
// become Null.
func From(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null{}
	case Value:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Number(x)
	case int32:
		return Number(x)
	case int64:
		return Number(x)
	case float32:
		return Number(x)
	case float64:
		return Number(x)
	case func(TokenSource) Value:
		return ThemeFunc(x)
	case func(Value) *Node:
		return PropertyFunc(x)
	case []string:
		out := make(List, len(x))
		for i, s := range x {
			out[i] = String(s)
		}
		return out
	case []any:
		out := make(List, len(x))
		for i, item := range x {
			out[i] = From(item)
		}
		return out
	case []*Node:
		out := make(List, len(x))
		for i, n := range x {
			out[i] = n
		}
		return out
	default:
		return Null{}
	}
}

// Strings returns the textual scalars of a String or List value.
func Strings(v Value) []string {
	switch x := v.(type) {
	case String:
		return []string{string(x)}
	case List:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if IsScalar(item) {
				out = append(out, Text(item))
			}
		}
		return out
	}
	return nil
}

// Kebab converts camelCase letters to kebab-case: fontSize -> font-size.
func Kebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Camel converts kebab-case to camelCase: font-size -> fontSize. Custom
// properties (--x) are returned untouched.
func Camel(s string) string {
	if strings.HasPrefix(s, "--") || !strings.Contains(s, "-") {
		return s
	}
	var b strings.Builder
	upper := false
	for _, r := range s {
		if r == '-' {
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = false
		b.WriteRune(r)
	}
	return b.String()
}
