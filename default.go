package unicss

import "sync"

var (
	defaultOnce     sync.Once
	defaultInstance *Instance
)

// Default returns the process-wide instance behind the package-level
// functions. It starts with an empty theme and an in-memory sheet; use
// Configure to install a theme.
func Default() *Instance {
	defaultOnce.Do(func() {
		inst, err := New(Options{Key: "default"})
		if err != nil {
			// An empty sheet always hydrates.
			panic(err)
		}
		defaultInstance = inst
	})
	return defaultInstance
}

// Configure replaces the theme and pragma of the default instance.
func Configure(opts Options) { Default().Configure(opts) }

// CSS compiles n with the default instance.
func CSS(n *Node) string { return Default().CSS(n) }

// Variant compiles a variant of n with the default instance.
func Variant(n *Node, name string) string { return Default().Variant(n, name) }

// GlobalCSS compiles a global document with the default instance.
func GlobalCSS(doc *Node) string { return Default().GlobalCSS(doc) }

// Keyframes compiles keyframe steps with the default instance.
func Keyframes(steps *Node) string { return Default().Keyframes(steps) }

// Styled creates a component on the default instance.
func Styled(tag string, styles *Node) Component { return Default().Styled(tag, styles) }

// ExtractCSS returns everything the default instance wrote.
func ExtractCSS() string { return Default().ExtractCSS() }
