package widget

import (
	"github.com/go-drift/anchorui/pkg/errors"
	"github.com/go-drift/anchorui/pkg/graphics"
	"github.com/go-drift/anchorui/pkg/layout"
)

func (w *Base) Rect() graphics.Rect       { return w.rect }
func (w *Base) Position() graphics.Point  { return w.rect.Position() }
func (w *Base) Size() graphics.Size       { return w.rect.Size() }
func (w *Base) X() int                    { return w.rect.X }
func (w *Base) Y() int                    { return w.rect.Y }
func (w *Base) Width() int                { return w.rect.Width }
func (w *Base) Height() int               { return w.rect.Height }
func (w *Base) Margins() graphics.Margins { return w.margins }

// SetRect moves and resizes the widget and lays out its children right
// away. Observers hear about it later: one OnGeometryUpdate per turn of the
// event loop, carrying the rectangle from before the first change of the
// turn and the rectangle current when it runs.
func (w *Base) SetRect(r graphics.Rect) {
	old := w.rect
	if r == old {
		return
	}
	w.rect = r
	w.UpdateLayout()

	if w.updateEventScheduled {
		return
	}
	self := w.self
	w.updateEventScheduled = w.manager.Post(func() {
		b := self.AsWidget()
		b.updateEventScheduled = false
		if b.destroyed {
			return
		}
		self.OnGeometryUpdate(old, b.rect)
	})
}

func (w *Base) Resize(s graphics.Size)  { w.SetRect(w.rect.Resize(s)) }
func (w *Base) MoveTo(p graphics.Point) { w.SetRect(w.rect.MoveTo(p)) }

func (w *Base) SetWidth(width int) {
	r := w.rect
	r.Width = width
	w.SetRect(r)
}

func (w *Base) SetHeight(height int) {
	r := w.rect
	r.Height = height
	w.SetRect(r)
}

func (w *Base) SetX(x int) {
	r := w.rect
	r.X = x
	w.SetRect(r)
}

func (w *Base) SetY(y int) {
	r := w.rect
	r.Y = y
	w.SetRect(r)
}

// SetMargins replaces all four margins and re-runs the parent layout.
func (w *Base) SetMargins(m graphics.Margins) {
	if w.margins == m {
		return
	}
	w.margins = m
	w.UpdateParentLayout()
}

func (w *Base) SetMarginTop(v int) {
	m := w.margins
	m.Top = v
	w.SetMargins(m)
}

func (w *Base) SetMarginRight(v int) {
	m := w.margins
	m.Right = v
	w.SetMargins(m)
}

func (w *Base) SetMarginBottom(v int) {
	m := w.margins
	m.Bottom = v
	w.SetMargins(m)
}

func (w *Base) SetMarginLeft(v int) {
	m := w.margins
	m.Left = v
	w.SetMargins(m)
}

// SetSizeFixed stops layouts from resizing the widget.
func (w *Base) SetSizeFixed(fixed bool) {
	if w.sizeFixed == fixed {
		return
	}
	w.sizeFixed = fixed
	w.UpdateParentLayout()
}

// SetLayout installs the layout for the children. A widget gets exactly
// one layout; installing a second one is a contract violation.
func (w *Base) SetLayout(l layout.Layout) {
	if w.layout != nil {
		errors.Contract("widget.SetLayout", "widget %q already has a layout", w.id)
	}
	w.layout = l
	for _, c := range w.children {
		l.AddWidget(c.AsWidget())
	}
	l.Update()
}

// UpdateLayout recomputes the children's rectangles.
func (w *Base) UpdateLayout() {
	if w.layout != nil {
		w.layout.Update()
	}
}

// UpdateParentLayout recomputes the layout the widget is a member of, or
// its own layout when it has no parent.
func (w *Base) UpdateParentLayout() {
	if w.parent != nil {
		w.parent.AsWidget().UpdateLayout()
		return
	}
	w.UpdateLayout()
}

// ChildItems returns the children as layout items.
func (w *Base) ChildItems() []layout.Item {
	items := make([]layout.Item, len(w.children))
	for i, c := range w.children {
		items[i] = c.AsWidget()
	}
	return items
}

// ResolveItem finds the widget an anchor of from refers to: "parent" is
// this widget, "prev" and "next" are the siblings of from, and any other
// name is looked up among the children and then the ancestors' children.
func (w *Base) ResolveItem(from layout.Item, id string) layout.Item {
	var found Widget
	switch id {
	case "parent":
		return w
	case "prev", "next":
		fw, ok := from.(*Base)
		if !ok {
			return nil
		}
		if id == "prev" {
			found = w.ChildBefore(fw)
		} else {
			found = w.ChildAfter(fw)
		}
	default:
		found = w.BackwardsWidgetByID(id)
	}
	if found == nil {
		return nil
	}
	return found.AsWidget()
}
