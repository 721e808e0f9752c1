package widget

import (
	"slices"

	"github.com/go-drift/anchorui/pkg/errors"
	"github.com/go-drift/anchorui/pkg/graphics"
	"github.com/go-drift/anchorui/pkg/layout"
)

func (w *Base) indexOf(child Widget) int {
	return slices.IndexFunc(w.children, func(c Widget) bool { return same(c, child) })
}

// HasChild reports whether child is a direct child.
func (w *Base) HasChild(child Widget) bool {
	return !isNil(child) && w.indexOf(child) >= 0
}

// isSelfOrAncestor reports whether c is w or one of its ancestors.
func (w *Base) isSelfOrAncestor(c Widget) bool {
	for cur := w; cur != nil; {
		if same(c, cur) {
			return true
		}
		if cur.parent == nil {
			return false
		}
		cur = cur.parent.AsWidget()
	}
	return false
}

// SetParent moves the widget under parent, detaching it from its current
// parent first. A nil parent only detaches.
func (w *Base) SetParent(parent Widget) {
	self := w.self
	parent = outer(parent)
	if parent != nil && same(w.parent, parent) && parent.AsWidget().HasChild(self) {
		return
	}
	if parent != nil && parent.AsWidget().isSelfOrAncestor(self) {
		errors.Misuse("widget.SetParent", w.id, "attempt to move a widget under itself or a descendant")
		return
	}

	if old := w.parent; old != nil && old.AsWidget().HasChild(self) {
		old.AsWidget().RemoveChild(self)
	}
	w.parent = nil

	if parent == nil {
		return
	}
	w.parent = parent
	if !parent.AsWidget().HasChild(self) {
		parent.AsWidget().AddChild(self)
	}
}

// AddChild appends child on top of its siblings.
func (w *Base) AddChild(child Widget) {
	const op = "widget.AddChild"
	if isNil(child) {
		errors.Warn(op, w.id, "attempt to add a null child")
		return
	}
	child = outer(child)
	if w.HasChild(child) {
		errors.Warn(op, w.id, "attempt to add child %q again", child.AsWidget().id)
		return
	}
	if w.isSelfOrAncestor(child) {
		errors.Misuse(op, w.id, "attempt to add an ancestor as a child")
		return
	}
	w.children = append(w.children, child)
	w.adopt(child)
}

// InsertChild inserts child at a position. A positive index counts from
// the front starting at 1; zero or a negative index counts back from the
// end, so 0 appends and -1 inserts before the last child. An index outside
// the children is a contract violation.
func (w *Base) InsertChild(index int, child Widget) {
	const op = "widget.InsertChild"
	if isNil(child) {
		errors.Warn(op, w.id, "attempt to insert a null child")
		return
	}
	child = outer(child)
	if w.HasChild(child) {
		errors.Warn(op, w.id, "attempt to insert child %q again", child.AsWidget().id)
		return
	}
	if w.isSelfOrAncestor(child) {
		errors.Misuse(op, w.id, "attempt to add an ancestor as a child")
		return
	}

	pos := index - 1
	if index <= 0 {
		pos = len(w.children) + index
	}
	if pos < 0 || pos > len(w.children) {
		errors.Contract(op, "index %d out of range for %d children", index, len(w.children))
	}
	w.children = slices.Insert(w.children, pos, child)
	w.adopt(child)
}

// adopt finishes attaching a child already placed in the children list.
func (w *Base) adopt(child Widget) {
	cw := child.AsWidget()
	cw.SetParent(w.self)

	if cw.focusable && cw.visible && cw.enabled {
		w.FocusChild(child, ActiveFocusReason)
	}

	if w.layout == nil {
		w.layout = layout.NewAnchorLayout(w)
	}
	w.layout.AddWidget(cw)

	cw.UpdateStates()
}

// RemoveChild detaches child. The child loses focus and its lock first,
// and afterwards settles into the detached states.
func (w *Base) RemoveChild(child Widget) {
	const op = "widget.RemoveChild"
	if !w.HasChild(child) {
		errors.Misuse(op, w.id, "attempt to remove an unknown child")
		return
	}
	child = outer(child)
	cw := child.AsWidget()
	if !same(cw.parent, w) {
		errors.Contract(op, "child %q records a different parent", cw.id)
	}

	if same(w.focusedChild, child) {
		w.FocusChild(nil, ActiveFocusReason)
	}
	w.UnlockChild(child)

	// Focus callbacks may have already detached it.
	i := w.indexOf(child)
	if i < 0 {
		return
	}
	w.children = slices.Delete(w.children, i, i+1)
	cw.SetParent(nil)

	if w.layout != nil {
		w.layout.RemoveWidget(cw)
	}
	cw.UpdateStates()
}

// MoveChildToTop re-seats child at the end of the children, where it is
// drawn last and hit first.
func (w *Base) MoveChildToTop(child Widget) {
	if isNil(child) {
		return
	}
	i := w.indexOf(child)
	if i < 0 {
		errors.Misuse("widget.MoveChildToTop", w.id, "attempt to raise an unknown child")
		return
	}
	c := w.children[i]
	w.children = append(slices.Delete(w.children, i, i+1), c)
}

// LockChild gives child exclusive input: every sibling is disabled, child
// is enabled, raised and focused. Locks nest; the most recent one wins.
func (w *Base) LockChild(child Widget) {
	if isNil(child) {
		return
	}
	if !w.HasChild(child) {
		errors.Misuse("widget.LockChild", w.id, "attempt to lock an unknown child")
		return
	}
	child = outer(child)

	w.UnlockChild(child)
	w.enableOnly(child)
	w.lockedChildren = append(w.lockedChildren, child)

	if child.AsWidget().focusable {
		w.FocusChild(child, ActiveFocusReason)
	}
	w.MoveChildToTop(child)
}

// UnlockChild drops child from the lock stack. The next most recent lock
// takes over; with no lock left every child is enabled again.
func (w *Base) UnlockChild(child Widget) {
	if isNil(child) {
		return
	}
	if !w.HasChild(child) {
		errors.Misuse("widget.UnlockChild", w.id, "attempt to unlock an unknown child")
		return
	}
	i := slices.IndexFunc(w.lockedChildren, func(c Widget) bool { return same(c, child) })
	if i < 0 {
		return
	}
	w.lockedChildren = slices.Delete(w.lockedChildren, i, i+1)

	if n := len(w.lockedChildren); n > 0 {
		w.enableOnly(w.lockedChildren[n-1])
		return
	}
	for _, c := range w.Children() {
		c.AsWidget().SetEnabled(true)
	}
}

func (w *Base) enableOnly(locked Widget) {
	for _, c := range w.Children() {
		c.AsWidget().SetEnabled(same(c, locked))
	}
}

// Destroy detaches the widget, destroys its children and drops every
// reference it holds.
func (w *Base) Destroy() {
	if w.destroyed {
		return
	}
	if w.parent != nil {
		w.parent.AsWidget().RemoveChild(w.self)
	}
	for _, child := range w.Children() {
		child.AsWidget().Destroy()
	}
	w.SetImage(nil)

	w.focusedChild = nil
	w.lockedChildren = nil
	w.children = nil
	w.layout = nil
	w.parent = nil
	w.style = nil
	w.stateStyle = nil
	w.destroyed = true
}

// RootParent returns the top of the widget's tree.
func (w *Base) RootParent() Widget {
	if w.parent != nil {
		return w.parent.AsWidget().RootParent()
	}
	return w.self
}

// ChildByID returns the first direct child with the given id.
func (w *Base) ChildByID(id string) Widget {
	for _, c := range w.children {
		if c.AsWidget().id == id {
			return c
		}
	}
	return nil
}

// ChildByPos returns the topmost explicitly visible child containing pos.
func (w *Base) ChildByPos(pos graphics.Point) Widget {
	for i := len(w.children) - 1; i >= 0; i-- {
		c := w.children[i].AsWidget()
		if c.visible && c.rect.Contains(pos) {
			return w.children[i]
		}
	}
	return nil
}

// ChildByIndex returns the child at a 1-based position. Negative indexes
// count back from the end, so -1 is the last child. Out of range, including
// 0, yields nil.
func (w *Base) ChildByIndex(index int) Widget {
	pos := index - 1
	if index <= 0 {
		pos = len(w.children) + index
	}
	if pos < 0 || pos >= len(w.children) {
		return nil
	}
	return w.children[pos]
}

// ChildBefore returns the sibling preceding child, or nil.
func (w *Base) ChildBefore(child Widget) Widget {
	if i := w.indexOf(child); i > 0 {
		return w.children[i-1]
	}
	return nil
}

// ChildAfter returns the sibling following child, or nil.
func (w *Base) ChildAfter(child Widget) Widget {
	if i := w.indexOf(child); i >= 0 && i+1 < len(w.children) {
		return w.children[i+1]
	}
	return nil
}

// RecursiveChildByID searches the subtree, direct children first.
func (w *Base) RecursiveChildByID(id string) Widget {
	if c := w.ChildByID(id); c != nil {
		return c
	}
	for _, c := range w.children {
		if found := c.AsWidget().RecursiveChildByID(id); found != nil {
			return found
		}
	}
	return nil
}

// RecursiveChildByPos returns the deepest descendant containing pos.
func (w *Base) RecursiveChildByPos(pos graphics.Point) Widget {
	for i := len(w.children) - 1; i >= 0; i-- {
		c := w.children[i]
		if !c.AsWidget().visible || !c.AsWidget().rect.Contains(pos) {
			continue
		}
		if sub := c.AsWidget().RecursiveChildByPos(pos); sub != nil {
			return sub
		}
		return c
	}
	return nil
}

// BackwardsWidgetByID looks for id among the children, then among the
// children of each ancestor.
func (w *Base) BackwardsWidgetByID(id string) Widget {
	if c := w.ChildByID(id); c != nil {
		return c
	}
	if w.parent != nil {
		return w.parent.AsWidget().BackwardsWidgetByID(id)
	}
	return nil
}
