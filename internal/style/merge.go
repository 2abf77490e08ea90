package style

// FontFace is the only key whose values concatenate on merge.
const FontFace = "@font-face"

// Merge deep-merges target over source and returns a new node. Neither
// input is modified. Nested nodes present in both are merged recursively,
// @font-face values are concatenated as a flat list and any other value
// of target overwrites the one in source.
func Merge(source, target *Node) *Node {
	out := source.Clone()
	for _, e := range target.Entries() {
		prev, exists := out.Get(e.Key)
		if e.Key == FontFace && exists {
			out.Set(e.Key, concat(prev, e.Value))
			continue
		}
		if a, ok := prev.(*Node); ok && a != nil {
			if b, ok := e.Value.(*Node); ok && b != nil {
				out.Set(e.Key, Merge(a, b))
				continue
			}
		}
		out.Set(e.Key, e.Value)
	}
	return out
}

// concat flattens both values one level and joins them.
func concat(a, b Value) List {
	out := List{}
	for _, v := range []Value{a, b} {
		if l, ok := v.(List); ok {
			out = append(out, l...)
			continue
		}
		out = append(out, v)
	}
	return out
}
