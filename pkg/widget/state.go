package widget

import (
	"strings"

	"github.com/go-drift/anchorui/pkg/style"
)

// State is a bitset of derived visual states.
type State uint8

const DefaultState State = 0

const (
	ActiveState State = 1 << iota
	FocusState
	HoverState
	PressedState
	DisabledState
)

var stateNames = []struct {
	state State
	name  string
}{
	{ActiveState, "active"},
	{FocusState, "focus"},
	{HoverState, "hover"},
	{PressedState, "pressed"},
	{DisabledState, "disabled"},
}

// Has reports whether every bit of s2 is set in s.
func (s State) Has(s2 State) bool {
	return s2 != 0 && s&s2 == s2
}

func (s State) String() string {
	if s == DefaultState {
		return "default"
	}
	var parts []string
	for _, sn := range stateNames {
		if s.Has(sn.state) {
			parts = append(parts, sn.name)
		}
	}
	return strings.Join(parts, "|")
}

// States returns the current state bits.
func (w *Base) States() State { return w.states }

// UpdateState re-derives one state bit from the widget's position in the
// tree. Active, Hover and Disabled are re-derived for the whole subtree.
// When the bit changes the state style is rebuilt, and Focus and Hover
// changes are reported through OnFocusChange and OnHoverChange.
func (w *Base) UpdateState(state State) {
	var now, cascade bool
	switch state {
	case ActiveState:
		now = w.derivedActive()
		cascade = true
	case FocusState:
		now = w.parent != nil && same(w.parent.AsWidget().focusedChild, w)
	case HoverState:
		now = w.derivedHover()
		cascade = true
	case PressedState:
		now = w.pressed
	case DisabledState:
		now = w.derivedDisabled()
		cascade = true
	default:
		return
	}

	if cascade {
		for _, child := range w.Children() {
			child.AsWidget().UpdateState(state)
		}
	}

	if now == w.states.Has(state) {
		return
	}
	if now {
		w.states |= state
	} else {
		w.states &^= state
	}
	w.updateStyle()

	switch state {
	case FocusState:
		w.self.OnFocusChange(now, w.lastFocusReason)
	case HoverState:
		w.self.OnHoverChange(now)
	}
}

// UpdateStates re-derives Active, Focus, Disabled and Hover, in that order.
func (w *Base) UpdateStates() {
	w.UpdateState(ActiveState)
	w.UpdateState(FocusState)
	w.UpdateState(DisabledState)
	w.UpdateState(HoverState)
}

// derivedActive walks to the root: every widget on the way must be enabled
// and the focused child of its parent.
func (w *Base) derivedActive() bool {
	cur := w
	for {
		if !cur.enabled {
			return false
		}
		if cur.parent == nil {
			return cur.isRoot()
		}
		parent := cur.parent.AsWidget()
		if !same(parent.focusedChild, cur) {
			return false
		}
		cur = parent
	}
}

// derivedHover walks to the root: the pointer must be inside every widget
// on the way, and each must be the topmost child under the pointer.
func (w *Base) derivedHover() bool {
	pos := w.manager.PointerPosition()
	cur := w
	for {
		if !cur.rect.Contains(pos) {
			return false
		}
		if cur.parent == nil {
			return cur.isRoot()
		}
		parent := cur.parent.AsWidget()
		if !same(parent.ChildByPos(pos), cur) {
			return false
		}
		cur = parent
	}
}

func (w *Base) derivedDisabled() bool {
	for cur := w; cur != nil; {
		if !cur.enabled {
			return true
		}
		if cur.parent == nil {
			break
		}
		cur = cur.parent.AsWidget()
	}
	return false
}

var stateBlocks = []struct {
	state State
	path  string
}{
	{ActiveState, "state.active"},
	{FocusState, "state.focus"},
	{HoverState, "state.hover"},
	{PressedState, "state.pressed"},
	{DisabledState, "state.disabled"},
}

// updateStyle rebuilds the state style. Declarations a previous state
// overrode are restored from the base style, then the blocks of the set
// states are merged in priority order so later states win.
func (w *Base) updateStyle() {
	if w.style == nil {
		return
	}

	next := style.NewNode("")
	if w.stateStyle != nil {
		for _, n := range w.stateStyle.Children() {
			if base := w.style.Get(n.Tag()); base != nil {
				next.AddChild(base.Clone())
			}
		}
	}

	for _, block := range stateBlocks {
		if !w.states.Has(block.state) {
			continue
		}
		if n := w.style.Get(block.path); n != nil {
			next.Merge(n)
		}
	}

	w.ApplyStyle(next)
	w.stateStyle = next
}
