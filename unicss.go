// Package unicss compiles declarative style trees into CSS.
//
// Styles are ordered nodes of declarations, nested selectors and at-rules.
// Values may reference theme tokens ($primary, $colors.primary), expand
// through property aliases, apply mixins and declare local variables. The
// compiled rules of every style group are hashed into a class name and
// written to a sink at most once.
//
// # Class names
//
//	ui, _ := unicss.New(unicss.Options{Theme: unicss.DefaultTheme()})
//	button := ui.CSS(unicss.Of(
//		"color", "$white",
//		"backgroundColor", "$primary",
//		"&:hover", unicss.Of("opacity", 0.8),
//	))
//	fmt.Println(ui.ExtractCSS())
//
// # Documents
//
// Style documents are YAML or JSON maps and keep their key order:
//
//	doc, err := unicss.ParseStyle(data)
//	rules := unicss.Transform(doc, theme)
//
// # Custom properties
//
// A theme's properties registry maps a key to a PropertyFunc that
// expands its value into other declarations:
//
//	theme := unicss.NewTheme(unicss.Of("properties", unicss.Of(
//		"paddingX", func(v unicss.Value) *unicss.Node {
//			return unicss.Of("paddingLeft", v, "paddingRight", v)
//		},
//	)))
//
// # CLI Tool
//
// unicss also provides a CLI tool that compiles style documents into a
// stylesheet. Install with:
//
//	go install github.com/yacobolo/unicss/cmd/unicss@latest
package unicss

import (
	"github.com/yacobolo/unicss/internal/cache"
	"github.com/yacobolo/unicss/internal/compiler"
	"github.com/yacobolo/unicss/internal/sink"
	"github.com/yacobolo/unicss/internal/style"
	"github.com/yacobolo/unicss/internal/theme"
)

// Style tree types.
type (
	Node         = style.Node
	Entry        = style.Entry
	Value        = style.Value
	String       = style.String
	Number       = style.Number
	Bool         = style.Bool
	List         = style.List
	Null         = style.Null
	ThemeFunc    = style.ThemeFunc
	PropertyFunc = style.PropertyFunc
	TokenSource  = style.TokenSource
)

// Theme is an immutable token store.
type Theme = theme.Theme

// Sink is an append-only rule target; Cache tracks what was written to it.
type (
	Sink  = cache.Sink
	Cache = cache.Cache
)

// Placeholder is the class name used in rules before hashing.
const Placeholder = cache.Placeholder

// Of builds a node from alternating keys and values.
func Of(kv ...any) *Node { return style.Of(kv...) }

// ParseStyle decodes a YAML or JSON style document, keeping key order.
func ParseStyle(data []byte) (*Node, error) { return style.Parse(data) }

// NewTheme wraps root as a theme. A nil root is an empty theme.
func NewTheme(root *Node) *Theme { return theme.New(root) }

// ParseTheme decodes a YAML or JSON theme document.
func ParseTheme(data []byte) (*Theme, error) { return theme.Parse(data) }

// LoadTheme reads a theme document from path.
func LoadTheme(path string) (*Theme, error) { return theme.Load(path) }

// DefaultTheme returns the bundled theme.
func DefaultTheme() *Theme { return theme.Default() }

// NewTextSink returns a text buffer sink seeded with initial.
func NewTextSink(initial string) *sink.Text { return sink.NewText(initial) }

// NewSheetSink returns an in-memory rule list sink seeded with initial.
func NewSheetSink(initial ...string) *sink.Sheet { return sink.NewSheet(initial...) }

// OpenSQLiteSink opens a persistent rule table at path.
func OpenSQLiteSink(path string) (*sink.SQLite, error) { return sink.OpenSQLite(path) }

// NewCache hydrates a cache from the content of s. Caches can be shared
// by several instances.
func NewCache(s Sink) (*Cache, error) { return cache.New(s, nil) }

// Transform compiles doc against t without touching any cache. Keys of
// doc are selectors or at-rules.
func Transform(doc *Node, t *Theme) []string {
	return compiler.New(t, nil).Transform(doc)
}

// Merge deep-merges target over source. @font-face values concatenate.
func Merge(source, target *Node) *Node { return style.Merge(source, target) }

// ClassNames joins truthy class names.
func ClassNames(args ...any) string { return style.ClassNames(args...) }

// Hash returns the class name generated for text.
func Hash(text string) string { return cache.Hash(text) }
