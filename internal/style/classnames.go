package style

import (
	"sort"
	"strings"
)

// ClassNames joins class name arguments into a single space separated
// list. Accepted arguments:
//
//   - string: split on spaces, empty parts dropped
//   - []string, []any, List: non-empty string items
//   - *Node: keys whose value is truthy, in node order
//   - map[string]bool: keys set to true, sorted
//
// Any other argument contributes nothing.
func ClassNames(args ...any) string {
	var out []string
	for _, arg := range args {
		out = append(out, classList(arg)...)
	}
	return strings.Join(out, " ")
}

func classList(arg any) []string {
	switch x := arg.(type) {
	case string:
		return strings.Fields(x)
	case String:
		return strings.Fields(string(x))
	case []string:
		return nonEmpty(x)
	case []any:
		var items []string
		for _, item := range x {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return nonEmpty(items)
	case List:
		var items []string
		for _, item := range x {
			if s, ok := item.(String); ok {
				items = append(items, string(s))
			}
		}
		return nonEmpty(items)
	case *Node:
		var items []string
		for _, e := range x.Entries() {
			if Truthy(e.Value) {
				items = append(items, e.Key)
			}
		}
		return items
	case map[string]bool:
		var items []string
		for k, on := range x {
			if on {
				items = append(items, k)
			}
		}
		sort.Strings(items)
		return items
	}
	return nil
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
