package compiler

import (
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/unicss/internal/style"
)

// TransformRule compiles the styles of one selector. v is a Node or a
// List of nodes; each list element is compiled against the same selector.
// The first rule holds the selector's own declarations, followed by the
// nested and at-rule blocks in encounter order.
func (c *Compiler) TransformRule(selector string, v style.Value, scope *Scope) []string {
	switch x := c.evaluate(v).(type) {
	case *style.Node:
		if x == nil {
			return nil
		}
		return c.transformNode(selector, x, scope)
	case style.List:
		var out []string
		for _, item := range x {
			out = append(out, c.TransformRule(selector, item, scope)...)
		}
		return out
	case style.Null:
		return nil
	default:
		c.log.Debug("styles are not an object, ignored", zap.String("selector", selector))
		return nil
	}
}

func (c *Compiler) transformNode(selector string, n *style.Node, scope *Scope) []string {
	n = c.normalizeAtRules(c.ResolveMixins(n, nil))

	// Variables apply to every declaration of the node, wherever they are
	// declared in it.
	for _, e := range n.Entries() {
		if name, ok := strings.CutPrefix(e.Key, "$"); ok {
			if _, null := e.Value.(style.Null); !null {
				scope = scope.With(name, e.Value)
			}
		}
	}

	var decls strings.Builder
	var nested []string
	for _, e := range n.Entries() {
		if e.Key == KeyVariants || e.Key == KeyApply || strings.HasPrefix(e.Key, "$") {
			continue
		}
		switch x := c.evaluate(e.Value).(type) {
		case style.Null:
			continue
		case *style.Node, style.List:
			if l, ok := x.(style.List); ok && !hasNode(l) {
				c.log.Debug("list without style objects, ignored", zap.String("key", e.Key))
				continue
			}
			if strings.HasPrefix(e.Key, "@") {
				if inner := c.TransformRule(selector, x, scope); len(inner) > 0 {
					nested = append(nested, wrap(e.Key, strings.Join(inner, " ")))
				}
				continue
			}
			nested = append(nested, c.TransformRule(strings.ReplaceAll(e.Key, "&", selector), x, scope)...)
		default:
			if strings.HasPrefix(e.Key, "@") {
				continue
			}
			for _, d := range c.ExpandProperty(e.Key, x) {
				decls.WriteString(d.Name)
				decls.WriteByte(':')
				decls.WriteString(c.ResolveValue(d.Source, d.Value, scope))
				decls.WriteByte(';')
			}
		}
	}

	out := make([]string, 0, len(nested)+1)
	if decls.Len() > 0 {
		out = append(out, wrap(selector, decls.String()))
	}
	for _, rule := range nested {
		if rule != "" {
			out = append(out, rule)
		}
	}
	return out
}

// normalizeAtRules rewrites at-rule keys before partitioning. Theme
// functions under at-rule keys are evaluated first.
//
//   - "@md": {...} becomes "@media <query>" when md is a media alias
//   - "@md:color": "red" becomes {"color": "red"} under "@media <query>"
//
// Keys that end up naming the same at-rule are merged, the first one
// keeping its position. A scalar at-rule key that is not a resolvable
// shorthand is dropped.
func (c *Compiler) normalizeAtRules(n *style.Node) *style.Node {
	if !hasAtRule(n) {
		return n
	}
	out := style.NewNode()
	for _, e := range n.Entries() {
		if !strings.HasPrefix(e.Key, "@") {
			out.Set(e.Key, e.Value)
			continue
		}
		switch v := c.evaluate(e.Value).(type) {
		case *style.Node:
			if v == nil {
				continue
			}
			rule := c.theme.AtRule(e.Key)
			prev, _ := out.Node(rule)
			out.Set(rule, style.Merge(prev, v))
		case style.List:
			out.Set(e.Key, v)
		default:
			name, prop, ok := strings.Cut(e.Key[1:], ":")
			if !ok || prop == "" {
				c.log.Debug("at-rule without block, dropped", zap.String("key", e.Key))
				continue
			}
			query, ok := c.theme.Media(name)
			if !ok {
				c.log.Debug("unknown media alias, dropped", zap.String("key", e.Key))
				continue
			}
			rule := "@media " + query
			prev, _ := out.Node(rule)
			out.Set(rule, style.Merge(prev, style.NewNode().Set(prop, v)))
		}
	}
	return out
}

func hasAtRule(n *style.Node) bool {
	for _, key := range n.Keys() {
		if strings.HasPrefix(key, "@") {
			return true
		}
	}
	return false
}

func hasNode(l style.List) bool {
	for _, item := range l {
		if _, ok := item.(*style.Node); ok {
			return true
		}
		if inner, ok := item.(style.List); ok && hasNode(inner) {
			return true
		}
	}
	return false
}
