// Package style holds parsed style declarations.
//
// A style is a tree of [Node] values. Each node has a tag (a path segment such
// as "margin.left", "state" or "hover"), an optional scalar value and ordered
// children. Widgets read nodes and derive their own snapshots by cloning and
// merging; source declarations are never modified.
package style

import (
	"strings"
)

// Node is one declaration in a style tree.
type Node struct {
	tag      string
	value    string
	hasValue bool
	children []*Node
}

// NewNode creates an empty node with the given tag.
func NewNode(tag string) *Node {
	return &Node{tag: tag}
}

// NewValue creates a leaf node holding a scalar value.
func NewValue(tag, value string) *Node {
	return &Node{tag: tag, value: value, hasValue: true}
}

// Tag returns the node tag.
func (n *Node) Tag() string { return n.tag }

// Value returns the raw scalar value, or "" if the node has none.
func (n *Node) Value() string { return n.value }

// HasValue reports whether the node carries a scalar value.
func (n *Node) HasValue() bool { return n.hasValue }

// SetValue sets the scalar value.
func (n *Node) SetValue(v string) {
	n.value = v
	n.hasValue = true
}

// Children returns the child nodes in declaration order. The slice must not
// be modified.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// AddChild appends a child and returns it.
func (n *Node) AddChild(child *Node) *Node {
	n.children = append(n.children, child)
	return child
}

// Child returns the first child whose tag is exactly tag.
func (n *Node) Child(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.children {
		if c.tag == tag {
			return c
		}
	}
	return nil
}

// Get looks up a declaration by path. An exact tag match wins; otherwise the
// path is split on dots and resolved one segment at a time, so both
// "state.hover" and a nested state { hover } block are found.
func (n *Node) Get(path string) *Node {
	if n == nil || path == "" {
		return nil
	}
	if c := n.Child(path); c != nil {
		return c
	}
	for i := strings.IndexByte(path, '.'); i > 0; i = nextDot(path, i) {
		if c := n.Child(path[:i]); c != nil {
			if found := c.Get(path[i+1:]); found != nil {
				return found
			}
		}
	}
	return nil
}

func nextDot(path string, from int) int {
	j := strings.IndexByte(path[from+1:], '.')
	if j < 0 {
		return -1
	}
	return from + 1 + j
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{tag: n.tag, value: n.value, hasValue: n.hasValue}
	if len(n.children) > 0 {
		c.children = make([]*Node, len(n.children))
		for i, child := range n.children {
			c.children[i] = child.Clone()
		}
	}
	return c
}

// Merge overrides n with other: a child of other replaces the child of n
// with the same tag, new tags are appended, and other's scalar value wins
// when it has one. Children are cloned, so other is never aliased.
func (n *Node) Merge(other *Node) {
	if other == nil {
		return
	}
	if other.hasValue {
		n.SetValue(other.value)
	}
	for _, oc := range other.children {
		replaced := false
		for i, c := range n.children {
			if c.tag == oc.tag && oc.tag != "" {
				n.children[i] = oc.Clone()
				replaced = true
				break
			}
		}
		if !replaced {
			n.children = append(n.children, oc.Clone())
		}
	}
}

// String renders the node and its children as indented text, mainly for
// diagnostics.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.tag)
	if n.hasValue {
		sb.WriteString(": ")
		sb.WriteString(n.value)
	}
	sb.WriteByte('\n')
	for _, c := range n.children {
		c.write(sb, depth+1)
	}
}
