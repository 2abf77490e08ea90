package compiler

import "github.com/yacobolo/unicss/internal/style"

// Property is one CSS property a declared key expands to.
type Property struct {
	// Name is the emitted kebab-case name.
	Name string
	// Source is the name as declared or as listed in the alias, used for
	// scale and unitless lookups.
	Source string
}

// ResolveProperty expands key through the theme aliases. Keys without an
// alias map to themselves.
func (c *Compiler) ResolveProperty(key string) []Property {
	targets := c.theme.Aliases(key)
	if len(targets) == 0 {
		targets = []string{key}
	}
	out := make([]Property, 0, len(targets))
	for _, t := range targets {
		out = append(out, Property{Name: style.Kebab(t), Source: t})
	}
	return out
}

// Declaration is a resolved property together with the value it is
// emitted with.
type Declaration struct {
	Property
	Value style.Value
}

// ExpandProperty resolves a scalar declaration into the declarations it
// emits. An expander registered under the theme's properties takes
// precedence over the aliases: the keys of the node it returns are
// emitted as named, and non-scalar values in it are skipped. An expander
// returning nil falls back to the aliases.
func (c *Compiler) ExpandProperty(key string, v style.Value) []Declaration {
	if fn, ok := c.theme.Property(key); ok {
		if n := fn(v); n != nil {
			out := make([]Declaration, 0, n.Len())
			for _, e := range n.Entries() {
				ev := c.evaluate(e.Value)
				if !style.IsScalar(ev) {
					continue
				}
				out = append(out, Declaration{Property: Property{Name: style.Kebab(e.Key), Source: e.Key}, Value: ev})
			}
			return out
		}
	}
	props := c.ResolveProperty(key)
	out := make([]Declaration, len(props))
	for i, p := range props {
		out[i] = Declaration{Property: p, Value: v}
	}
	return out
}
