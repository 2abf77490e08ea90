// Package theme wraps the opaque configuration tree a compiler resolves
// aliases, scales, media aliases and mixins against.
package theme

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/yacobolo/unicss/internal/style"
)

// Reserved top-level keys of a theme tree.
const (
	KeyAliases    = "aliases"
	KeyMapping    = "mapping"
	KeyMedia      = "media"
	KeyMixins     = "mixins"
	KeyProperties = "properties"
	KeyScales     = "scales"
)

//go:embed default.yaml
var defaultTheme []byte

var defaultMapping = sync.OnceValue(func() *style.Node {
	m, _ := Default().root.Node(KeyMapping)
	return m
})

// Theme is an immutable view over a theme tree.
type Theme struct {
	root *style.Node
}

var _ style.TokenSource = (*Theme)(nil)

// New wraps root. A nil root yields an empty theme where every lookup
// falls through.
func New(root *style.Node) *Theme {
	if root == nil {
		root = style.NewNode()
	}
	return &Theme{root: root}
}

// Parse decodes a YAML or JSON theme document.
func Parse(data []byte) (*Theme, error) {
	root, err := style.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	return New(root), nil
}

// Load reads a theme document from path.
func Load(path string) (*Theme, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in theme: media aliases sm/md/lg/xl, the
// color, font and radius scales and the property to scale mapping.
func Default() *Theme {
	t, err := Parse(defaultTheme)
	if err != nil {
		panic(fmt.Sprintf("theme: embedded default theme is invalid: %v", err))
	}
	return t
}

// Root returns the underlying tree.
func (t *Theme) Root() *style.Node {
	if t == nil {
		return style.NewNode()
	}
	return t.root
}

// Lookup resolves a dotted path against the whole theme tree.
func (t *Theme) Lookup(path string) (style.Value, bool) {
	if t == nil {
		return nil, false
	}
	return t.root.Path(path)
}

// Aliases returns the properties prop expands to, or nil when prop has
// no alias.
func (t *Theme) Aliases(prop string) []string {
	if t == nil {
		return nil
	}
	aliases, ok := t.root.Node(KeyAliases)
	if !ok {
		return nil
	}
	v, ok := aliases.Get(prop)
	if !ok {
		return nil
	}
	return style.Strings(v)
}

// ScaleName returns the scale mapped to prop. Mapping keys are camelCase;
// kebab-case property names are normalized before the lookup. A theme
// without a mapping uses the default theme's mapping.
func (t *Theme) ScaleName(prop string) (string, bool) {
	if t == nil {
		return "", false
	}
	mapping, ok := t.root.Node(KeyMapping)
	if !ok {
		mapping = defaultMapping()
	}
	for _, key := range []string{prop, style.Camel(prop)} {
		if v, ok := mapping.Get(key); ok {
			if s, ok := v.(style.String); ok && s != "" {
				return string(s), true
			}
		}
	}
	return "", false
}

// Scale returns the token table mapped to prop. Tables are looked up at
// the top level first and under "scales" second.
func (t *Theme) Scale(prop string) (*style.Node, bool) {
	name, ok := t.ScaleName(prop)
	if !ok {
		return nil, false
	}
	if table, ok := t.root.Node(name); ok {
		return table, true
	}
	if scales, ok := t.root.Node(KeyScales); ok {
		return scales.Node(name)
	}
	return nil, false
}

// Media resolves a media alias (without the leading @) to its query.
func (t *Theme) Media(name string) (string, bool) {
	if t == nil || name == "" {
		return "", false
	}
	media, ok := t.root.Node(KeyMedia)
	if !ok {
		return "", false
	}
	v, ok := media.Get(name)
	if !ok || !style.Truthy(v) || !style.IsScalar(v) {
		return "", false
	}
	return style.Text(v), true
}

// AtRule maps an at-rule key through the media alias table: "@md" becomes
// "@media (min-width: 768px)" when md is a known alias. Unknown keys are
// returned unchanged.
func (t *Theme) AtRule(key string) string {
	if q, ok := t.Media(strings.TrimPrefix(key, "@")); ok {
		return "@media " + q
	}
	return key
}

// Property returns the expander registered for prop under "properties".
func (t *Theme) Property(prop string) (style.PropertyFunc, bool) {
	if t == nil {
		return nil, false
	}
	registry, ok := t.root.Node(KeyProperties)
	if !ok {
		return nil, false
	}
	for _, key := range []string{prop, style.Camel(prop)} {
		if v, ok := registry.Get(key); ok {
			fn, ok := v.(style.PropertyFunc)
			return fn, ok && fn != nil
		}
	}
	return nil, false
}

// HasMixins reports whether the theme defines a mixin registry.
func (t *Theme) HasMixins() bool {
	if t == nil {
		return false
	}
	_, ok := t.root.Node(KeyMixins)
	return ok
}

// Mixin returns the registry entry for name. Dotted names address nested
// registries.
func (t *Theme) Mixin(name string) (*style.Node, bool) {
	if t == nil {
		return nil, false
	}
	registry, ok := t.root.Node(KeyMixins)
	if !ok {
		return nil, false
	}
	v, ok := registry.Path(name)
	if !ok {
		return nil, false
	}
	n, ok := v.(*style.Node)
	return n, ok && n != nil
}
