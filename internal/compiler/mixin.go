package compiler

import (
	"go.uber.org/zap"

	"github.com/yacobolo/unicss/internal/style"
)

// ResolveMixins expands the apply directive of n. Applied mixins merge in
// order, later ones overriding earlier ones, and n's own properties are
// merged last so they override every mixin. A mixin already in visited is
// skipped, which breaks cycles. visited may be nil.
func (c *Compiler) ResolveMixins(n *style.Node, visited map[string]bool) *style.Node {
	apply, ok := n.Get(KeyApply)
	if !ok || !c.theme.HasMixins() {
		return n
	}
	names := mixinNames(apply)
	if names == nil {
		return n
	}
	if visited == nil {
		visited = make(map[string]bool)
	}

	acc := style.NewNode()
	for _, name := range names {
		if visited[name] {
			c.log.Debug("mixin already applied, skipping", zap.String("mixin", name))
			continue
		}
		visited[name] = true

		entry, ok := c.theme.Mixin(name)
		if !ok {
			c.log.Debug("unknown mixin", zap.String("mixin", name))
			continue
		}
		acc = style.Merge(acc, c.ResolveMixins(entry, visited))
	}
	return style.Merge(acc, n.Without(KeyApply))
}

// mixinNames accepts a single name or a list of names. Non-string items
// are ignored; any other value type is not an apply directive.
func mixinNames(v style.Value) []string {
	switch x := v.(type) {
	case style.String:
		if x == "" {
			return []string{}
		}
		return []string{string(x)}
	case style.List:
		out := []string{}
		for _, item := range x {
			if s, ok := item.(style.String); ok && s != "" {
				out = append(out, string(s))
			}
		}
		return out
	}
	return nil
}
