package widget

import (
	"github.com/go-drift/anchorui/pkg/graphics"
)

// The routing methods below work on a filtered snapshot of the children,
// because handlers are free to restructure the tree while an event is in
// flight. Routing stops at the first child that reports the event handled.

// routable collects the enabled, visible children accepted by keep.
func (w *Base) routable(keep func(c *Base) bool) []Widget {
	var targets []Widget
	for _, child := range w.children {
		c := child.AsWidget()
		if !c.enabled || !c.visible {
			continue
		}
		if keep == nil || keep(c) {
			targets = append(targets, child)
		}
	}
	return targets
}

// focusChain keeps the children in the Focus state.
func focusChain(c *Base) bool { return c.states.Has(FocusState) }

// hitTarget keeps the topmost child under pos.
func (w *Base) hitTarget(pos graphics.Point) func(c *Base) bool {
	return func(c *Base) bool {
		return c.rect.Contains(pos) && same(w.ChildByPos(pos), c)
	}
}

// OnKeyPress routes a key press down the focus chain.
func (w *Base) OnKeyPress(key KeyCode, ch rune, mods Modifiers) bool {
	for _, child := range w.routable(focusChain) {
		if child.OnKeyPress(key, ch, mods) {
			return true
		}
	}
	return false
}

// OnKeyRelease routes a key release down the focus chain.
func (w *Base) OnKeyRelease(key KeyCode, ch rune, mods Modifiers) bool {
	for _, child := range w.routable(focusChain) {
		if child.OnKeyRelease(key, ch, mods) {
			return true
		}
	}
	return false
}

// OnMousePress routes a press to the child under the pointer. A focusable
// target is focused before it sees the event, and is marked pressed when
// the press did not land on one of its own children.
func (w *Base) OnMousePress(pos graphics.Point, button MouseButton) bool {
	for _, child := range w.routable(w.hitTarget(pos)) {
		c := child.AsWidget()
		if c.focusable {
			w.FocusChild(child, MouseFocusReason)
		}

		handled := child.OnMousePress(pos, button)

		if c.ChildByPos(pos) == nil && !c.pressed {
			c.SetPressed(true)
		}
		if handled {
			return true
		}
	}
	return false
}

// OnMouseRelease offers a release to every child, so a press always gets
// its release even when the pointer has left. Pressed children are
// released whether or not they handled it.
func (w *Base) OnMouseRelease(pos graphics.Point, button MouseButton) bool {
	for _, child := range w.routable(nil) {
		handled := child.OnMouseRelease(pos, button)

		if c := child.AsWidget(); c.pressed {
			c.SetPressed(false)
		}
		if handled {
			return true
		}
	}
	return false
}

// OnMouseMove offers pointer motion to every child.
func (w *Base) OnMouseMove(pos, moved graphics.Point) bool {
	for _, child := range w.routable(nil) {
		if child.OnMouseMove(pos, moved) {
			return true
		}
	}
	return false
}

// OnMouseWheel routes a wheel step to the child under the pointer.
func (w *Base) OnMouseWheel(pos graphics.Point, dir WheelDirection) bool {
	for _, child := range w.routable(w.hitTarget(pos)) {
		if child.OnMouseWheel(pos, dir) {
			return true
		}
	}
	return false
}
