package style

import "strings"

// Entry is a single key/value pair of a Node.
type Entry struct {
	Key   string
	Value Value
}

// Node is an ordered mapping from declaration key to value. The order in
// which keys were first set is the order in which they are emitted.
//
// A Node is built with Set and treated as immutable afterwards; every
// transformation (Merge, Without, mixin resolution) returns a new Node.
type Node struct {
	entries []Entry
	index   map[string]int
}

// NewNode returns an empty node.
func NewNode() *Node {
	return &Node{index: make(map[string]int)}
}

// Of builds a node from alternating keys and values. Values are converted
// with From. A trailing key without value is ignored, as are non-string
// keys.
//
//	style.Of("color", "red", "&:hover", style.Of("color", "blue"))
func Of(kv ...any) *Node {
	n := NewNode()
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		n.Set(key, From(kv[i+1]))
	}
	return n
}

// Set assigns value to key. An existing key keeps its position.
func (n *Node) Set(key string, value Value) *Node {
	if n.index == nil {
		n.index = make(map[string]int)
	}
	if value == nil {
		value = Null{}
	}
	if i, ok := n.index[key]; ok {
		n.entries[i].Value = value
		return n
	}
	n.index[key] = len(n.entries)
	n.entries = append(n.entries, Entry{Key: key, Value: value})
	return n
}

// Get returns the value stored under key.
func (n *Node) Get(key string) (Value, bool) {
	if n == nil {
		return nil, false
	}
	i, ok := n.index[key]
	if !ok {
		return nil, false
	}
	return n.entries[i].Value, true
}

// Has reports whether key is present.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Len returns the number of entries.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.entries)
}

// Entries returns a copy of the entries in order.
func (n *Node) Entries() []Entry {
	if n == nil {
		return nil
	}
	out := make([]Entry, len(n.entries))
	copy(out, n.entries)
	return out
}

// Keys returns the keys in order.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	out := make([]string, len(n.entries))
	for i, e := range n.entries {
		out[i] = e.Key
	}
	return out
}

// Clone returns a shallow copy: nested values are shared.
func (n *Node) Clone() *Node {
	out := NewNode()
	if n == nil {
		return out
	}
	out.entries = make([]Entry, len(n.entries))
	copy(out.entries, n.entries)
	for k, v := range n.index {
		out.index[k] = v
	}
	return out
}

// Without returns a copy of n lacking key.
func (n *Node) Without(key string) *Node {
	out := NewNode()
	for _, e := range n.Entries() {
		if e.Key != key {
			out.Set(e.Key, e.Value)
		}
	}
	return out
}

// Node returns the nested node stored under key, if any.
func (n *Node) Node(key string) (*Node, bool) {
	v, ok := n.Get(key)
	if !ok {
		return nil, false
	}
	child, ok := v.(*Node)
	return child, ok && child != nil
}

// Path walks a dotted path (a.b.c) through nested nodes.
func (n *Node) Path(path string) (Value, bool) {
	if n == nil || path == "" {
		return nil, false
	}
	cur := n
	parts := strings.Split(path, ".")
	for i, part := range parts {
		v, ok := cur.Get(part)
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		next, ok := v.(*Node)
		if !ok || next == nil {
			return nil, false
		}
		cur = next
	}
	return nil, false
}
