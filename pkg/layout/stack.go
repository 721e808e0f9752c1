package layout

// Orientation is the main axis of a StackLayout.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// StackLayout arranges the host's visible children one after another along
// a single axis, in child order. On the cross axis children are stretched to
// the host, minus margins, unless their size is fixed.
type StackLayout struct {
	host        Host
	orientation Orientation
}

// NewStackLayout creates a stack layout for host.
func NewStackLayout(host Host, orientation Orientation) *StackLayout {
	return &StackLayout{host: host, orientation: orientation}
}

// Host returns the widget the layout belongs to.
func (l *StackLayout) Host() Host {
	return l.host
}

// Orientation returns the main axis.
func (l *StackLayout) Orientation() Orientation {
	return l.orientation
}

// AddWidget recomputes the layout; members are the host's children.
func (l *StackLayout) AddWidget(Item) {
	l.Update()
}

// RemoveWidget recomputes the layout.
func (l *StackLayout) RemoveWidget(Item) {
	l.Update()
}

// Update positions every visible child of the host.
func (l *StackLayout) Update() {
	hr := l.host.Rect()
	next := hr.Y
	if l.orientation == Horizontal {
		next = hr.X
	}
	for _, item := range l.host.ChildItems() {
		if !item.IsExplicitlyVisible() {
			continue
		}
		r := item.Rect()
		m := item.Margins()
		fixed := item.IsSizeFixed()
		if l.orientation == Vertical {
			r.X = hr.X + m.Left
			r.Y = next + m.Top
			if !fixed {
				r.Width = max(0, hr.Width-m.Left-m.Right)
			}
			next = r.Bottom() + m.Bottom
		} else {
			r.X = next + m.Left
			r.Y = hr.Y + m.Top
			if !fixed {
				r.Height = max(0, hr.Height-m.Top-m.Bottom)
			}
			next = r.Right() + m.Right
		}
		item.SetRect(r)
	}
}
