package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeKeepsInsertionOrder(t *testing.T) {
	n := Of("color", "red", "margin", 0, "padding", "1px")
	n.Set("color", String("blue"))

	assert.Equal(t, []string{"color", "margin", "padding"}, n.Keys())
	v, ok := n.Get("color")
	require.True(t, ok)
	assert.Equal(t, String("blue"), v)
}

func TestOfConvertsNatives(t *testing.T) {
	fn := func(TokenSource) Value { return String("x") }
	n := Of(
		"s", "text",
		"i", 2,
		"f", 1.5,
		"b", true,
		"nil", nil,
		"list", []string{"a", "b"},
		"child", Of("color", "red"),
		"fn", fn,
		"expand", func(v Value) *Node { return Of("paddingLeft", v) },
	)

	tests := []struct {
		key  string
		want any
	}{
		{"s", String("text")},
		{"i", Number(2)},
		{"f", Number(1.5)},
		{"b", Bool(true)},
		{"nil", Null{}},
		{"list", List{String("a"), String("b")}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok := n.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}

	_, ok := n.Node("child")
	assert.True(t, ok)
	v, _ := n.Get("fn")
	_, ok = v.(ThemeFunc)
	assert.True(t, ok)
	v, _ = n.Get("expand")
	_, ok = v.(PropertyFunc)
	assert.True(t, ok)
}

func TestText(t *testing.T) {
	assert.Equal(t, "1", Text(Number(1)))
	assert.Equal(t, "1.5", Text(Number(1.5)))
	assert.Equal(t, "-0.25", Text(Number(-0.25)))
	assert.Equal(t, "true", Text(Bool(true)))
	assert.Equal(t, "red", Text(String("red")))
	assert.Equal(t, "", Text(Of()))
}

func TestCaseConversion(t *testing.T) {
	assert.Equal(t, "font-size", Kebab("fontSize"))
	assert.Equal(t, "border-top-left-radius", Kebab("borderTopLeftRadius"))
	assert.Equal(t, "color", Kebab("color"))
	assert.Equal(t, "fontSize", Camel("font-size"))
	assert.Equal(t, "zIndex", Camel("z-index"))
	assert.Equal(t, "--custom-prop", Camel("--custom-prop"))
}

func TestWithoutDoesNotMutate(t *testing.T) {
	n := Of("apply", "m", "color", "red")
	out := n.Without("apply")

	assert.Equal(t, []string{"color"}, out.Keys())
	assert.Equal(t, []string{"apply", "color"}, n.Keys())
}

func TestPath(t *testing.T) {
	n := Of("colors", Of("primary", "blue", "nested", Of("deep", "x")))

	v, ok := n.Path("colors.primary")
	require.True(t, ok)
	assert.Equal(t, String("blue"), v)

	v, ok = n.Path("colors.nested.deep")
	require.True(t, ok)
	assert.Equal(t, String("x"), v)

	_, ok = n.Path("colors.primary.deeper")
	assert.False(t, ok)
	_, ok = n.Path("missing")
	assert.False(t, ok)
}

func TestParsePreservesOrder(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "yaml",
			doc: `
zIndex: 2
color: red
"&:hover":
  margin: 0
`,
		},
		{
			name: "json",
			doc:  `{"zIndex": 2, "color": "red", "&:hover": {"margin": 0}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, []string{"zIndex", "color", "&:hover"}, n.Keys())

			v, _ := n.Get("zIndex")
			assert.Equal(t, Number(2), v)

			hover, ok := n.Node("&:hover")
			require.True(t, ok)
			v, _ = hover.Get("margin")
			assert.Equal(t, Number(0), v)
		})
	}
}

func TestParseScalars(t *testing.T) {
	n, err := Parse([]byte(`
a: null
b: true
c: 1.25
d: "1px"
e: [x, y]
`))
	require.NoError(t, err)

	v, _ := n.Get("a")
	assert.Equal(t, Null{}, v)
	v, _ = n.Get("b")
	assert.Equal(t, Bool(true), v)
	v, _ = n.Get("c")
	assert.Equal(t, Number(1.25), v)
	v, _ = n.Get("d")
	assert.Equal(t, String("1px"), v)
	v, _ = n.Get("e")
	assert.Equal(t, List{String("x"), String("y")}, v)
}

func TestParseRejectsNonMapping(t *testing.T) {
	_, err := Parse([]byte(`- a`))
	require.Error(t, err)

	n, err := Parse([]byte(``))
	require.NoError(t, err)
	assert.Equal(t, 0, n.Len())
}
