package widget

import (
	"slices"

	"github.com/go-drift/anchorui/pkg/errors"
)

// FocusChild makes child the focused child, or clears the focus when child
// is nil. Both the new and the previous focused child re-derive their Focus
// and Active states and see reason in OnFocusChange.
func (w *Base) FocusChild(child Widget, reason FocusReason) {
	child = outer(child)
	if child != nil && !w.HasChild(child) {
		errors.Misuse("widget.FocusChild", w.id, "attempt to focus unknown child %q", child.AsWidget().id)
		return
	}
	if same(child, w.focusedChild) {
		return
	}

	old := w.focusedChild
	w.focusedChild = child

	if child != nil {
		cw := child.AsWidget()
		cw.lastFocusReason = reason
		cw.UpdateState(FocusState)
		cw.UpdateState(ActiveState)
	}
	if old != nil {
		ow := old.AsWidget()
		ow.lastFocusReason = reason
		ow.UpdateState(FocusState)
		ow.UpdateState(ActiveState)
	}
}

// FocusNextChild focuses the first focusable child after the focused one,
// wrapping around. Nothing happens when no other child is focusable.
func (w *Base) FocusNextChild(reason FocusReason) {
	candidates := w.Children()
	if w.focusedChild != nil {
		if i := w.indexOf(w.focusedChild); i >= 0 {
			candidates = slices.Concat(candidates[i+1:], candidates[:i])
		}
	}
	for _, c := range candidates {
		if c.AsWidget().focusable {
			w.FocusChild(c, reason)
			return
		}
	}
}
