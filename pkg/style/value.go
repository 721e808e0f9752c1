package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/anchorui/pkg/graphics"
)

// Error is a style declaration that could not be interpreted. It keeps the
// offending node so reports can name it.
type Error struct {
	Node *Node
	Msg  string
}

func (e *Error) Error() string {
	if e.Node == nil {
		return e.Msg
	}
	if e.Node.hasValue {
		return fmt.Sprintf("%s (at %q: %q)", e.Msg, e.Node.tag, e.Node.value)
	}
	return fmt.Sprintf("%s (at %q)", e.Msg, e.Node.tag)
}

// Errorf builds an Error for node.
func Errorf(node *Node, format string, args ...any) *Error {
	return &Error{Node: node, Msg: fmt.Sprintf(format, args...)}
}

// AsString returns the trimmed scalar value.
func (n *Node) AsString() (string, error) {
	if !n.hasValue {
		return "", Errorf(n, "expected a value")
	}
	return strings.TrimSpace(n.value), nil
}

// AsInt parses the value as a decimal integer.
func (n *Node) AsInt() (int, error) {
	s, err := n.AsString()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, Errorf(n, "expected an integer")
	}
	return v, nil
}

// AsBool parses the value as a boolean ("true", "false", "1", "0").
func (n *Node) AsBool() (bool, error) {
	s, err := n.AsString()
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, Errorf(n, "expected a boolean")
	}
	return v, nil
}

// AsColor parses the value with graphics.ParseColor.
func (n *Node) AsColor() (graphics.Color, error) {
	s, err := n.AsString()
	if err != nil {
		return graphics.Color{}, err
	}
	c, err := graphics.ParseColor(s)
	if err != nil {
		return graphics.Color{}, Errorf(n, "%v", err)
	}
	return c, nil
}

// AsPoint parses "x y".
func (n *Node) AsPoint() (graphics.Point, error) {
	a, b, err := n.intPair()
	if err != nil {
		return graphics.Point{}, err
	}
	return graphics.Point{X: a, Y: b}, nil
}

// AsSize parses "width height".
func (n *Node) AsSize() (graphics.Size, error) {
	a, b, err := n.intPair()
	if err != nil {
		return graphics.Size{}, err
	}
	return graphics.Size{Width: a, Height: b}, nil
}

func (n *Node) intPair() (int, int, error) {
	s, err := n.AsString()
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, Errorf(n, "expected two integers")
	}
	a, errA := strconv.Atoi(fields[0])
	b, errB := strconv.Atoi(fields[1])
	if errA != nil || errB != nil {
		return 0, 0, Errorf(n, "expected two integers")
	}
	return a, b, nil
}
