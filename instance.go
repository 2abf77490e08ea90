package unicss

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/yacobolo/unicss/internal/cache"
	"github.com/yacobolo/unicss/internal/compiler"
	"github.com/yacobolo/unicss/internal/style"
)

// DefaultVariant is selected when no variant name is given.
const DefaultVariant = "default"

// Options configures an Instance.
type Options struct {
	// Theme resolves tokens, aliases, media and mixins. Nil is an empty
	// theme.
	Theme *Theme
	// Cache is shared with other instances. When nil a cache is built
	// over Sink.
	Cache *Cache
	// Sink receives the rules when no Cache is given. Nil is an
	// in-memory sheet.
	Sink Sink
	// Pragma creates the elements of styled components.
	Pragma Pragma
	// Logger receives debug events. Nil discards them.
	Logger *zap.Logger
	// Key names the instance in log output.
	Key string
}

// Kind selects how a style node is wrapped before compiling.
type Kind int

const (
	// KindClass compiles a node under a generated class selector.
	KindClass Kind = iota
	// KindGlobal compiles a document of selectors and at-rules.
	KindGlobal
	// KindKeyframes compiles keyframe steps under a generated name.
	KindKeyframes
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindGlobal:
		return "global"
	case KindKeyframes:
		return "keyframes"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Emission is the result of compiling one style group.
type Emission struct {
	// Hash is the generated identifier, also the class or keyframes name.
	Hash string
	// Rules are the compiled rules with the placeholder replaced.
	Rules []string
	// Inserted is false when the group was already in the sink.
	Inserted bool
}

// Instance compiles styles against a theme and writes them to a cache.
// It is safe for concurrent use.
type Instance struct {
	mu       sync.RWMutex
	compiler *compiler.Compiler
	cache    *cache.Cache
	pragma   Pragma
	key      string
	base     *zap.Logger
	log      *zap.Logger
}

// New creates an instance. The only error comes from hydrating a new
// cache from an unreadable sink.
func New(opts Options) (*Instance, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Key != "" {
		log = log.With(zap.String("key", opts.Key))
	}

	c := opts.Cache
	if c == nil {
		var err error
		if c, err = cache.New(opts.Sink, log); err != nil {
			return nil, fmt.Errorf("create cache: %w", err)
		}
	}

	pragma := opts.Pragma
	if pragma == nil {
		pragma = NewElement
	}

	return &Instance{
		compiler: compiler.New(opts.Theme, log),
		cache:    c,
		pragma:   pragma,
		key:      opts.Key,
		base:     log,
		log:      log.Named("unicss"),
	}, nil
}

// Configure replaces the theme and the pragma. Nil fields keep the
// current value; other options are ignored.
func (i *Instance) Configure(opts Options) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if opts.Theme != nil {
		i.compiler = compiler.New(opts.Theme, i.base)
	}
	if opts.Pragma != nil {
		i.pragma = opts.Pragma
	}
}

// Theme returns the active theme.
func (i *Instance) Theme() *Theme {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.compiler.Theme()
}

// Cache returns the cache the instance writes to.
func (i *Instance) Cache() *Cache {
	return i.cache
}

// Key returns the instance name.
func (i *Instance) Key() string {
	return i.key
}

// Compile compiles n as kind, hashes the rules and inserts them unless
// the hash is already cached. On a sink error the emission is still
// returned, and the group will be retried by the next compile.
func (i *Instance) Compile(kind Kind, n *Node) (Emission, error) {
	i.mu.RLock()
	c := i.compiler
	i.mu.RUnlock()

	if n == nil {
		n = style.NewNode()
	}
	var doc *style.Node
	switch kind {
	case KindGlobal:
		doc = n
	case KindKeyframes:
		doc = style.Of("@keyframes "+Placeholder, n)
	default:
		doc = style.Of("."+Placeholder, n)
	}

	rules := c.Transform(doc)
	hash := cache.Hash(strings.Join(rules, "\n"))
	out := Emission{Hash: hash, Rules: make([]string, len(rules))}
	for j, rule := range rules {
		out.Rules[j] = strings.ReplaceAll(rule, Placeholder, hash)
	}

	inserted, err := i.cache.Insert(hash, rules)
	if err != nil {
		return out, err
	}
	out.Inserted = inserted
	return out, nil
}

func (i *Instance) emit(kind Kind, n *Node) string {
	e, err := i.Compile(kind, n)
	if err != nil {
		i.log.Warn("styles not written", zap.Stringer("kind", kind), zap.String("hash", e.Hash), zap.Error(err))
	}
	return e.Hash
}

// CSS compiles n under a generated class and returns the class name.
func (i *Instance) CSS(n *Node) string {
	return i.emit(KindClass, n)
}

// Variant compiles n with the node registered under variants.<name>
// merged over it. An empty name selects DefaultVariant; an unknown one
// compiles n alone.
func (i *Instance) Variant(n *Node, name string) string {
	return i.CSS(withVariant(n, name))
}

// GlobalCSS compiles a document of selectors and at-rules. The returned
// hash identifies the group in the sink.
func (i *Instance) GlobalCSS(doc *Node) string {
	return i.emit(KindGlobal, doc)
}

// Keyframes compiles keyframe steps and returns the generated animation
// name.
func (i *Instance) Keyframes(steps *Node) string {
	return i.emit(KindKeyframes, steps)
}

// ExtractCSS returns the content of the sink as CSS text.
func (i *Instance) ExtractCSS() string {
	s := i.cache.Sink()
	if str, ok := s.(fmt.Stringer); ok {
		return str.String()
	}
	rules, err := s.Rules()
	if err != nil {
		i.log.Warn("read sink", zap.Error(err))
		return ""
	}
	return strings.Join(rules, "\n")
}

func withVariant(n *Node, name string) *Node {
	if name == "" {
		name = DefaultVariant
	}
	variants, ok := n.Node(compiler.KeyVariants)
	if !ok {
		return n
	}
	v, ok := variants.Node(name)
	if !ok {
		return n
	}
	return style.Merge(n, v)
}
