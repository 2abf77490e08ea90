package compiler

import "github.com/yacobolo/unicss/internal/style"

// Scope is an immutable chain of local variables. Extending a scope never
// changes it, so sibling branches of a style tree cannot see each other's
// variables. The nil *Scope is the empty scope.
type Scope struct {
	parent *Scope
	name   string
	value  style.Value
}

// With returns a child scope binding name to value.
func (s *Scope) With(name string, value style.Value) *Scope {
	return &Scope{parent: s, name: name, value: value}
}

// Lookup returns the innermost binding of name.
func (s *Scope) Lookup(name string) (style.Value, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.value, true
		}
	}
	return nil, false
}
