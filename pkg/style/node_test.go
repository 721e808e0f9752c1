package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/anchorui/pkg/graphics"
)

func buttonStyle() *Node {
	n := NewNode("Button")
	n.AddChild(NewValue("color", "#ffffff"))
	n.AddChild(NewValue("margin.left", "4"))
	state := n.AddChild(NewNode("state"))
	hover := state.AddChild(NewNode("hover"))
	hover.AddChild(NewValue("color", "#ff0000"))
	return n
}

func TestGetExactTagWins(t *testing.T) {
	n := buttonStyle()
	got := n.Get("margin.left")
	require.NotNil(t, got)
	assert.Equal(t, "4", got.Value())
}

func TestGetDottedPath(t *testing.T) {
	n := buttonStyle()
	got := n.Get("state.hover")
	require.NotNil(t, got)
	assert.Equal(t, "hover", got.Tag())
	assert.Nil(t, n.Get("state.pressed"))
	assert.Nil(t, n.Get(""))
}

func TestCloneIsDeep(t *testing.T) {
	n := buttonStyle()
	c := n.Clone()
	c.Get("state.hover").Child("color").SetValue("#000000")
	assert.Equal(t, "#ff0000", n.Get("state.hover").Child("color").Value())
}

func TestMergeOverrides(t *testing.T) {
	base := buttonStyle()
	override := NewNode("")
	override.AddChild(NewValue("color", "#00ff00"))
	override.AddChild(NewValue("opacity", "128"))

	base.Merge(override)
	assert.Equal(t, "#00ff00", base.Child("color").Value())
	assert.Equal(t, "128", base.Child("opacity").Value())

	// merged children are copies
	override.Child("opacity").SetValue("1")
	assert.Equal(t, "128", base.Child("opacity").Value())
}

func TestTypedValues(t *testing.T) {
	size, err := NewValue("size", "80 20").AsSize()
	require.NoError(t, err)
	assert.Equal(t, graphics.Size{Width: 80, Height: 20}, size)

	pos, err := NewValue("position", " 3  -4 ").AsPoint()
	require.NoError(t, err)
	assert.Equal(t, graphics.Point{X: 3, Y: -4}, pos)

	b, err := NewValue("focusable", "false").AsBool()
	require.NoError(t, err)
	assert.False(t, b)

	c, err := NewValue("color", "#0000ff").AsColor()
	require.NoError(t, err)
	assert.Equal(t, graphics.Blue, c)
}

func TestTypedValueErrorsNameTheNode(t *testing.T) {
	n := NewValue("width", "wide")
	_, err := n.AsInt()
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Same(t, n, se.Node)
	assert.Contains(t, err.Error(), `"width"`)

	_, err = NewNode("size").AsSize()
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	src := `
Button:
  size: 80 20
  color: "#ffffff"
  state.hover:
    color: "#ff0000"
  state:
    pressed:
      opacity: 100
Panel:
  children:
    - Button:
        id: ok
    - Button:
        id: cancel
`
	root, err := Decode([]byte(src))
	require.NoError(t, err)
	require.Len(t, root.Children(), 2)

	button := root.Child("Button")
	require.NotNil(t, button)
	assert.Equal(t, "80 20", button.Child("size").Value())
	assert.Equal(t, "#ff0000", button.Get("state.hover").Child("color").Value())
	assert.Equal(t, "100", button.Get("state.pressed").Child("opacity").Value())

	items := root.Get("Panel.children").Children()
	require.Len(t, items, 2)
	assert.Equal(t, "Button", items[0].Tag())
	assert.Equal(t, "cancel", items[1].Child("id").Value())
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte("a: [unclosed"))
	assert.Error(t, err)
}
