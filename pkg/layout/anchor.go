package layout

import (
	"fmt"
	"slices"

	"github.com/go-drift/anchorui/pkg/errors"
	"github.com/go-drift/anchorui/pkg/graphics"
)

// Edge names one side or center line of a rectangle.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeTop
	EdgeBottom
	EdgeLeft
	EdgeRight
	EdgeHorizontalCenter
	EdgeVerticalCenter
)

var edgeNames = map[string]Edge{
	"top":              EdgeTop,
	"bottom":           EdgeBottom,
	"left":             EdgeLeft,
	"right":            EdgeRight,
	"horizontalCenter": EdgeHorizontalCenter,
	"verticalCenter":   EdgeVerticalCenter,
}

// ParseEdge translates an edge name. Unknown names yield EdgeNone.
func ParseEdge(name string) Edge {
	return edgeNames[name]
}

func (e Edge) String() string {
	for name, edge := range edgeNames {
		if edge == e {
			return name
		}
	}
	return "none"
}

func (e Edge) horizontal() bool {
	return e == EdgeLeft || e == EdgeRight || e == EdgeHorizontalCenter
}

// position returns the coordinate of the edge on r.
func (e Edge) position(r graphics.Rect) int {
	switch e {
	case EdgeTop:
		return r.Top()
	case EdgeBottom:
		return r.Bottom()
	case EdgeLeft:
		return r.Left()
	case EdgeRight:
		return r.Right()
	case EdgeHorizontalCenter:
		return r.HorizontalCenter()
	case EdgeVerticalCenter:
		return r.VerticalCenter()
	}
	return 0
}

// Anchor hooks one edge of a widget to an edge of another widget.
type Anchor struct {
	Edge       Edge
	HookedID   string
	HookedEdge Edge
}

// AnchorLayout places children by attaching their edges to edges of the
// host, their siblings or other widgets resolvable from the host.
type AnchorLayout struct {
	host     Host
	members  []Item
	anchors  map[Item][]Anchor
	updating bool
	dirty    bool
}

// NewAnchorLayout creates an anchor layout for host.
func NewAnchorLayout(host Host) *AnchorLayout {
	return &AnchorLayout{host: host, anchors: make(map[Item][]Anchor)}
}

// Host returns the widget the layout belongs to.
func (l *AnchorLayout) Host() Host {
	return l.host
}

// AddWidget registers item and recomputes the layout.
func (l *AnchorLayout) AddWidget(item Item) {
	if !slices.Contains(l.members, item) {
		l.members = append(l.members, item)
	}
	l.Update()
}

// RemoveWidget drops item and its anchors and recomputes the layout.
func (l *AnchorLayout) RemoveWidget(item Item) {
	l.members = slices.DeleteFunc(l.members, func(m Item) bool { return m == item })
	delete(l.anchors, item)
	l.Update()
}

// AddAnchor hooks edge of item to hookedEdge of the widget named hookedID.
// An existing anchor on the same edge is replaced.
func (l *AnchorLayout) AddAnchor(item Item, edge Edge, hookedID string, hookedEdge Edge) error {
	if edge == EdgeNone {
		return fmt.Errorf("invalid anchor edge")
	}
	if hookedEdge == EdgeNone {
		return fmt.Errorf("invalid anchor target edge")
	}
	if edge.horizontal() != hookedEdge.horizontal() {
		return fmt.Errorf("cannot hook %s edge to %s edge", edge, hookedEdge)
	}
	l.setAnchor(item, Anchor{Edge: edge, HookedID: hookedID, HookedEdge: hookedEdge})
	l.Update()
	return nil
}

// Fill anchors all four edges of item to the same edges of hookedID.
func (l *AnchorLayout) Fill(item Item, hookedID string) {
	for _, e := range []Edge{EdgeLeft, EdgeRight, EdgeTop, EdgeBottom} {
		l.setAnchor(item, Anchor{Edge: e, HookedID: hookedID, HookedEdge: e})
	}
	l.Update()
}

// CenterIn anchors both center lines of item to those of hookedID.
func (l *AnchorLayout) CenterIn(item Item, hookedID string) {
	for _, e := range []Edge{EdgeHorizontalCenter, EdgeVerticalCenter} {
		l.setAnchor(item, Anchor{Edge: e, HookedID: hookedID, HookedEdge: e})
	}
	l.Update()
}

// RemoveAnchors forgets every anchor of item.
func (l *AnchorLayout) RemoveAnchors(item Item) {
	delete(l.anchors, item)
}

// Anchors returns a copy of the anchors of item.
func (l *AnchorLayout) Anchors(item Item) []Anchor {
	return slices.Clone(l.anchors[item])
}

func (l *AnchorLayout) setAnchor(item Item, a Anchor) {
	list := l.anchors[item]
	for i := range list {
		if list[i].Edge == a.Edge {
			list[i] = a
			return
		}
	}
	l.anchors[item] = append(list, a)
}

// maxPasses bounds how often an update restarts when a member geometry
// change requests another update while one is running.
const maxPasses = 8

// Update recomputes the rectangles of all anchored members.
func (l *AnchorLayout) Update() {
	if l.updating {
		l.dirty = true
		return
	}
	l.updating = true
	defer func() { l.updating = false }()

	for pass := 0; pass < maxPasses; pass++ {
		l.dirty = false
		done := make(map[Item]bool, len(l.members))
		visiting := make(map[Item]bool)
		for _, item := range slices.Clone(l.members) {
			l.updateItem(item, done, visiting)
		}
		if !l.dirty {
			return
		}
	}
}

// span collects the anchored coordinates of one axis.
type span struct {
	start, end, center          int
	hasStart, hasEnd, hasCenter bool
}

func (l *AnchorLayout) updateItem(item Item, done, visiting map[Item]bool) {
	if done[item] {
		return
	}
	anchors := l.anchors[item]
	if len(anchors) == 0 {
		done[item] = true
		return
	}
	visiting[item] = true

	var h, v span
	for _, a := range anchors {
		hooked := l.host.ResolveItem(item, a.HookedID)
		if hooked == nil || hooked == item {
			continue
		}
		if hooked != Item(l.host) {
			if visiting[hooked] {
				errors.Report(&errors.UIError{
					Op:     "layout.AnchorLayout.Update",
					Kind:   errors.KindStyle,
					Widget: item.ID(),
					Err:    fmt.Errorf("anchor cycle through %q", hooked.ID()),
				})
			} else if _, anchored := l.anchors[hooked]; anchored {
				l.updateItem(hooked, done, visiting)
			}
		}
		pos := a.HookedEdge.position(hooked.Rect())
		switch a.Edge {
		case EdgeLeft:
			h.start, h.hasStart = pos, true
		case EdgeRight:
			h.end, h.hasEnd = pos, true
		case EdgeHorizontalCenter:
			h.center, h.hasCenter = pos, true
		case EdgeTop:
			v.start, v.hasStart = pos, true
		case EdgeBottom:
			v.end, v.hasEnd = pos, true
		case EdgeVerticalCenter:
			v.center, v.hasCenter = pos, true
		}
	}

	r := item.Rect()
	m := item.Margins()
	fixed := item.IsSizeFixed()
	r.X, r.Width = h.solve(r.X, r.Width, m.Left, m.Right, fixed)
	r.Y, r.Height = v.solve(r.Y, r.Height, m.Top, m.Bottom, fixed)

	delete(visiting, item)
	done[item] = true
	item.SetRect(r)
}

// solve returns the new position and length on one axis. A center anchor
// wins; two opposite anchors stretch unless the size is fixed, in which case
// the start anchor wins.
func (s span) solve(pos, length, startMargin, endMargin int, fixed bool) (int, int) {
	switch {
	case s.hasCenter:
		pos = s.center + startMargin - endMargin - length/2
	case s.hasStart && s.hasEnd:
		pos = s.start + startMargin
		if !fixed {
			length = max(0, s.end-endMargin-pos)
		}
	case s.hasStart:
		pos = s.start + startMargin
	case s.hasEnd:
		pos = s.end - endMargin - length
	}
	return pos, length
}
