// Package widget implements the retained widget tree: ownership, focus,
// cascading visual state, declarative styling, geometry and input routing.
//
// Every widget embeds [Base] and is addressed through the [Widget]
// interface. Base carries a back-pointer to the outermost value (self) so
// that overridden hooks such as Render or OnMousePress are reached even
// when the tree calls them from Base's own methods:
//
//	type Button struct {
//	    widget.Base
//	}
//
//	func NewButton(m widget.Manager) *Button {
//	    b := &Button{}
//	    b.Init(m, b)
//	    return b
//	}
//
// All methods must be called from the goroutine that polls the manager's
// event queue. The tree is not safe for concurrent use.
package widget

import (
	"slices"

	"golang.org/x/image/font"

	"github.com/go-drift/anchorui/pkg/assets"
	"github.com/go-drift/anchorui/pkg/graphics"
	"github.com/go-drift/anchorui/pkg/layout"
	"github.com/go-drift/anchorui/pkg/render"
	"github.com/go-drift/anchorui/pkg/style"
)

// Widget is the overridable capability set of a tree node. Base provides
// the default behavior of every method.
type Widget interface {
	// AsWidget returns the embedded Base.
	AsWidget() *Base

	Render(p render.Painter)

	// OnStyleApply interprets declarations. A returned error aborts the
	// remaining declarations; the ones already applied stay in effect.
	OnStyleApply(node *style.Node) error
	OnGeometryUpdate(oldRect, newRect graphics.Rect)
	OnFocusChange(focused bool, reason FocusReason)
	OnHoverChange(hovered bool)

	OnKeyPress(key KeyCode, ch rune, mods Modifiers) bool
	OnKeyRelease(key KeyCode, ch rune, mods Modifiers) bool
	OnMousePress(pos graphics.Point, button MouseButton) bool
	OnMouseRelease(pos graphics.Point, button MouseButton) bool
	OnMouseMove(pos, moved graphics.Point) bool
	OnMouseWheel(pos graphics.Point, dir WheelDirection) bool
}

// FontSource resolves font faces by name.
type FontSource interface {
	Font(name string) (font.Face, bool)
	DefaultFont() font.Face
}

// ImageSource loads shared images from image declarations.
type ImageSource interface {
	LoadImage(node *style.Node) (assets.Image, error)
	LoadBorderImage(node *style.Node) (assets.Image, error)
}

// Manager is what widgets need from the subsystem that owns the tree.
type Manager interface {
	// Style returns a registered style or nil.
	Style(name string) *style.Node
	// RootWidget returns the top of the tree. Only widgets attached below
	// it can become active or hovered.
	RootWidget() Widget
	// PointerPosition returns the last known pointer position.
	PointerPosition() graphics.Point
	// Post schedules fn on the next turn of the event loop.
	Post(fn func()) bool
	// NextID allocates a widget id.
	NextID() string
	Fonts() FontSource
	Images() ImageSource
}

// FocusReason tells focus observers what moved the focus.
type FocusReason int

const (
	MouseFocusReason FocusReason = iota
	TabFocusReason
	ActiveFocusReason
	OtherFocusReason
)

func (r FocusReason) String() string {
	switch r {
	case MouseFocusReason:
		return "mouse"
	case TabFocusReason:
		return "tab"
	case ActiveFocusReason:
		return "active"
	}
	return "other"
}

// Base is the default widget implementation.
type Base struct {
	self    Widget
	manager Manager

	id             string
	parent         Widget
	children       []Widget
	focusedChild   Widget
	lockedChildren []Widget // last element is the active lock
	layout         layout.Layout

	rect      graphics.Rect
	margins   graphics.Margins
	sizeFixed bool

	visible   bool
	enabled   bool
	focusable bool
	pressed   bool

	image           assets.Image
	font            font.Face
	foregroundColor graphics.Color
	backgroundColor graphics.Color
	opacity         uint8

	states          State
	lastFocusReason FocusReason

	style      *style.Node
	styleName  string
	stateStyle *style.Node

	updateEventScheduled bool
	destroyed            bool
}

// New creates a plain detached widget.
func New(m Manager) *Base {
	w := &Base{}
	w.Init(m, w)
	return w
}

// Init prepares an embedded Base. self must be the outermost value that
// embeds w; m must not be nil.
func (w *Base) Init(m Manager, self Widget) {
	w.self = self
	w.manager = m
	w.id = m.NextID()
	w.visible = true
	w.enabled = true
	w.focusable = true
	w.foregroundColor = graphics.White
	w.backgroundColor = graphics.White
	w.opacity = 255
	if fonts := m.Fonts(); fonts != nil {
		w.font = fonts.DefaultFont()
	}
}

func (w *Base) AsWidget() *Base { return w }

// Self returns the outermost widget value.
func (w *Base) Self() Widget { return w.self }

// Manager returns the manager the widget was created with.
func (w *Base) Manager() Manager { return w.manager }

func (w *Base) ID() string { return w.id }

func (w *Base) SetID(id string) { w.id = id }

// Parent returns the parent widget or nil.
func (w *Base) Parent() Widget { return w.parent }

// Children returns a snapshot of the children in render order.
func (w *Base) Children() []Widget { return slices.Clone(w.children) }

// ChildCount returns the number of children.
func (w *Base) ChildCount() int { return len(w.children) }

// FocusedChild returns the focused child or nil.
func (w *Base) FocusedChild() Widget { return w.focusedChild }

// LockedChildren returns the lock stack, most recent lock last.
func (w *Base) LockedChildren() []Widget { return slices.Clone(w.lockedChildren) }

// Layout returns the layout positioning the children, or nil before the
// first child is added.
func (w *Base) Layout() layout.Layout { return w.layout }

// Style returns the declarations the widget was configured from.
func (w *Base) Style() *style.Node { return w.style }

// StyleName returns the registered style name set with SetStyle.
func (w *Base) StyleName() string { return w.styleName }

// StateStyle returns the declarations derived from the current states.
func (w *Base) StateStyle() *style.Node { return w.stateStyle }

func (w *Base) IsExplicitlyVisible() bool { return w.visible }
func (w *Base) IsExplicitlyEnabled() bool { return w.enabled }
func (w *Base) IsFocusable() bool         { return w.focusable }
func (w *Base) IsPressed() bool           { return w.pressed }
func (w *Base) IsSizeFixed() bool         { return w.sizeFixed }
func (w *Base) IsDestroyed() bool         { return w.destroyed }

func (w *Base) IsActive() bool   { return w.states.Has(ActiveState) }
func (w *Base) IsFocused() bool  { return w.states.Has(FocusState) }
func (w *Base) IsHovered() bool  { return w.states.Has(HoverState) }
func (w *Base) IsDisabled() bool { return w.states.Has(DisabledState) }

func (w *Base) Image() assets.Image                 { return w.image }
func (w *Base) Font() font.Face                     { return w.font }
func (w *Base) ForegroundColor() graphics.Color     { return w.foregroundColor }
func (w *Base) BackgroundColor() graphics.Color     { return w.backgroundColor }
func (w *Base) Opacity() uint8                      { return w.opacity }
func (w *Base) LastFocusReason() FocusReason        { return w.lastFocusReason }
func (w *Base) SetFont(face font.Face)              { w.font = face }
func (w *Base) SetForegroundColor(c graphics.Color) { w.foregroundColor = c }
func (w *Base) SetBackgroundColor(c graphics.Color) { w.backgroundColor = c }
func (w *Base) SetOpacity(opacity uint8)            { w.opacity = opacity }
func (w *Base) SetFocusable(focusable bool)         { w.focusable = focusable }

// SetImage replaces the background image and releases the previous one.
func (w *Base) SetImage(img assets.Image) {
	if w.image != nil && w.image != img {
		w.image.Release()
	}
	w.image = img
}

// SetEnabled changes the explicit enabled flag and re-derives the Active
// and Disabled states of the subtree.
func (w *Base) SetEnabled(enabled bool) {
	w.enabled = enabled
	w.UpdateState(ActiveState)
	w.UpdateState(DisabledState)
}

// SetVisible changes the explicit visibility flag.
func (w *Base) SetVisible(visible bool) {
	if w.visible == visible {
		return
	}
	w.visible = visible
	w.UpdateParentLayout()
}

// SetPressed changes the pressed flag and re-derives the Pressed state.
func (w *Base) SetPressed(pressed bool) {
	w.pressed = pressed
	w.UpdateState(PressedState)
}

// IsVisible reports whether the widget and all its ancestors are visible
// and the chain ends at the manager's root widget.
func (w *Base) IsVisible() bool {
	if !w.visible {
		return false
	}
	if w.parent != nil {
		return w.parent.AsWidget().IsVisible()
	}
	return w.isRoot()
}

func (w *Base) isRoot() bool {
	root := w.manager.RootWidget()
	return root != nil && root.AsWidget() == w
}

func (w *Base) OnGeometryUpdate(oldRect, newRect graphics.Rect) {}

func (w *Base) OnFocusChange(focused bool, reason FocusReason) {}

func (w *Base) OnHoverChange(hovered bool) {}

// isNil reports whether w is nil or wraps a nil Base.
func isNil(w Widget) bool {
	return w == nil || w.AsWidget() == nil
}

// same compares widgets by identity of their Base.
func same(a, b Widget) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	return a.AsWidget() == b.AsWidget()
}

// outer normalizes w to the value registered with Init.
func outer(w Widget) Widget {
	if isNil(w) {
		return nil
	}
	return w.AsWidget().self
}
