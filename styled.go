package unicss

import (
	"go.uber.org/zap"

	"github.com/yacobolo/unicss/internal/style"
)

// Reserved props of styled components.
const (
	PropAs        = "as"
	PropCSS       = "css"
	PropVariant   = "variant"
	PropClassName = "className"
)

// Props are the properties passed to a component.
type Props map[string]any

// Pragma creates a host element for tag. It plays the role of a
// createElement function of a UI library.
type Pragma func(tag string, props Props) any

// Component renders props into an element.
type Component func(props Props) any

// Element is what the built-in pragma produces.
type Element struct {
	Tag   string
	Props Props
}

// NewElement is the built-in Pragma.
func NewElement(tag string, props Props) any {
	return Element{Tag: tag, Props: props}
}

// styledDefaults are applied below the styles of every styled component.
func styledDefaults() *Node {
	return style.Of("boxSizing", "border-box", "minWidth", "0")
}

// Styled returns a component rendering tag with the class generated for
// styles. Per call, the css prop (a *Node) is layered over styles, the
// variant prop selects a registered variant, the as prop replaces the tag
// and the className prop is kept in front of the generated class. Layers
// replace whole keys; they are not deep-merged.
func (i *Instance) Styled(tag string, styles *Node) Component {
	if tag == "" {
		tag = "div"
	}
	return func(props Props) any {
		layers := []*Node{styledDefaults(), styles}
		if extra, ok := props[PropCSS]; ok {
			if n, ok := extra.(*Node); ok {
				layers = append(layers, n)
			} else if extra != nil {
				i.log.Debug("css prop is not a style node, ignored", zap.String("tag", tag))
			}
		}
		n := spread(layers...)

		variant, _ := props[PropVariant].(string)
		class := i.Variant(n, variant)

		out := make(Props, len(props)+1)
		for k, v := range props {
			switch k {
			case PropAs, PropCSS, PropVariant:
				continue
			}
			out[k] = v
		}
		out[PropClassName] = ClassNames(props[PropClassName], class)

		element := tag
		if as, ok := props[PropAs].(string); ok && as != "" {
			element = as
		}

		i.mu.RLock()
		pragma := i.pragma
		i.mu.RUnlock()
		return pragma(element, out)
	}
}

// spread copies the entries of every node in order, later nodes
// replacing the values of earlier ones.
func spread(nodes ...*Node) *Node {
	out := style.NewNode()
	for _, n := range nodes {
		for _, e := range n.Entries() {
			out.Set(e.Key, e.Value)
		}
	}
	return out
}
