// Package layout computes widget rectangles.
//
// A Layout is bound to exactly one host widget and positions the host's
// children. Widgets are seen through the [Item] and [Host] interfaces so the
// layout engines do not depend on the widget package.
package layout

import (
	"github.com/go-drift/anchorui/pkg/graphics"
)

// Item is the geometry view of a widget managed by a layout.
type Item interface {
	ID() string
	Rect() graphics.Rect
	SetRect(graphics.Rect)
	Margins() graphics.Margins
	IsSizeFixed() bool
	IsExplicitlyVisible() bool
}

// Host is the widget that owns a layout.
type Host interface {
	Item
	// ChildItems returns the host's children in order.
	ChildItems() []Item
	// ResolveItem finds the item an anchor of from refers to. It understands
	// "parent", "prev" and "next" in addition to widget ids.
	ResolveItem(from Item, id string) Item
}

// Layout positions the children of its host.
type Layout interface {
	// Host returns the widget the layout belongs to.
	Host() Host
	// AddWidget registers a child and recomputes the layout.
	AddWidget(item Item)
	// RemoveWidget drops a child and recomputes the layout.
	RemoveWidget(item Item)
	// Update recomputes the rectangles of all members.
	Update()
}
