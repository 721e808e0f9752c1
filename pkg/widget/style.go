package widget

import (
	"maps"
	"slices"
	"strings"

	"github.com/go-drift/anchorui/pkg/errors"
	"github.com/go-drift/anchorui/pkg/layout"
	"github.com/go-drift/anchorui/pkg/style"
)

// SetStyle configures the widget from a style registered with the manager.
func (w *Base) SetStyle(name string) {
	node := w.manager.Style(name)
	if node == nil {
		errors.Misuse("widget.SetStyle", w.id, "unknown style %q", name)
		return
	}
	w.styleName = name
	w.SetStyleFromNode(node)
}

// SetNamedStyle configures the widget from node, a style derived from the
// registered style name with per-instance declarations merged in.
func (w *Base) SetNamedStyle(name string, node *style.Node) {
	w.styleName = name
	w.SetStyleFromNode(node)
}

// SetStyleFromNode applies node and keeps it as the base style that state
// blocks are derived from.
func (w *Base) SetStyleFromNode(node *style.Node) {
	w.ApplyStyle(node)
	w.style = node
	w.updateStyle()
}

// ApplyStyle runs OnStyleApply and reports a failure against the widget
// instead of returning it. Declarations applied before the failure stay.
func (w *Base) ApplyStyle(node *style.Node) {
	if node == nil {
		return
	}
	if err := w.self.OnStyleApply(node); err != nil {
		errors.Report(&errors.UIError{
			Op:     "widget.ApplyStyle",
			Kind:   errors.KindStyle,
			Widget: w.id,
			Err:    err,
		})
	}
}

// OnStyleApply interprets the declarations every widget understands. The
// id is applied first; unknown tags are left to embedding widgets.
func (w *Base) OnStyleApply(node *style.Node) error {
	if n := node.Child("id"); n != nil {
		id, err := n.AsString()
		if err != nil {
			return err
		}
		w.SetID(id)
	}

	for _, n := range node.Children() {
		apply := lookupDeclaration(n.Tag())
		if apply == nil {
			continue
		}
		if err := apply(w, n); err != nil {
			return err
		}
	}
	return nil
}

type declaration func(w *Base, n *style.Node) error

const anchorPrefix = "anchors."

var declarations = map[string]declaration{
	"image":            declImage,
	"border-image":     declBorderImage,
	"font":             declFont,
	"color":            declColor,
	"background-color": declBackgroundColor,
	"opacity":          declOpacity,
	"focusable":        declFocusable,
	"size":             declSize,
	"width":            intDecl((*Base).SetWidth),
	"height":           intDecl((*Base).SetHeight),
	"size fixed":       declSizeFixed,
	"position":         declPosition,
	"x":                intDecl((*Base).SetX),
	"y":                intDecl((*Base).SetY),
	"margin.left":      intDecl((*Base).SetMarginLeft),
	"margin.right":     intDecl((*Base).SetMarginRight),
	"margin.top":       intDecl((*Base).SetMarginTop),
	"margin.bottom":    intDecl((*Base).SetMarginBottom),
	"layout":           declLayout,
}

func lookupDeclaration(tag string) declaration {
	if d, ok := declarations[tag]; ok {
		return d
	}
	if strings.HasPrefix(tag, anchorPrefix) {
		return declAnchor
	}
	return nil
}

// Declarations lists the tags OnStyleApply of Base recognizes, sorted.
// Anchors appear as "anchors.*".
func Declarations() []string {
	tags := slices.Collect(maps.Keys(declarations))
	tags = append(tags, "id", anchorPrefix+"*")
	slices.Sort(tags)
	return tags
}

func intDecl(set func(*Base, int)) declaration {
	return func(w *Base, n *style.Node) error {
		v, err := n.AsInt()
		if err != nil {
			return err
		}
		set(w, v)
		return nil
	}
}

func declImage(w *Base, n *style.Node) error {
	img, err := w.manager.Images().LoadImage(n)
	if err != nil {
		return err
	}
	w.SetImage(img)
	return nil
}

func declBorderImage(w *Base, n *style.Node) error {
	img, err := w.manager.Images().LoadBorderImage(n)
	if err != nil {
		return err
	}
	w.SetImage(img)
	return nil
}

func declFont(w *Base, n *style.Node) error {
	name, err := n.AsString()
	if err != nil {
		return err
	}
	face, ok := w.manager.Fonts().Font(name)
	if !ok {
		return style.Errorf(n, "unknown font %q", name)
	}
	w.SetFont(face)
	return nil
}

func declColor(w *Base, n *style.Node) error {
	c, err := n.AsColor()
	if err != nil {
		return err
	}
	w.SetForegroundColor(c)
	return nil
}

func declBackgroundColor(w *Base, n *style.Node) error {
	c, err := n.AsColor()
	if err != nil {
		return err
	}
	w.SetBackgroundColor(c)
	return nil
}

func declOpacity(w *Base, n *style.Node) error {
	v, err := n.AsInt()
	if err != nil {
		return err
	}
	if v < 0 || v > 255 {
		return style.Errorf(n, "opacity must be between 0 and 255")
	}
	w.SetOpacity(uint8(v))
	return nil
}

func declFocusable(w *Base, n *style.Node) error {
	v, err := n.AsBool()
	if err != nil {
		return err
	}
	w.SetFocusable(v)
	return nil
}

func declSize(w *Base, n *style.Node) error {
	s, err := n.AsSize()
	if err != nil {
		return err
	}
	w.Resize(s)
	return nil
}

func declSizeFixed(w *Base, n *style.Node) error {
	v, err := n.AsBool()
	if err != nil {
		return err
	}
	w.SetSizeFixed(v)
	return nil
}

func declPosition(w *Base, n *style.Node) error {
	p, err := n.AsPoint()
	if err != nil {
		return err
	}
	w.MoveTo(p)
	return nil
}

func declLayout(w *Base, n *style.Node) error {
	kind, err := n.AsString()
	if err != nil {
		return err
	}
	var l layout.Layout
	switch kind {
	case "anchor":
		l = layout.NewAnchorLayout(w)
	case "verticalBox":
		l = layout.NewStackLayout(w, layout.Vertical)
	case "horizontalBox":
		l = layout.NewStackLayout(w, layout.Horizontal)
	default:
		return style.Errorf(n, "unknown layout %q", kind)
	}
	w.SetLayout(l)
	return nil
}

// declAnchor hooks the widget into its parent's anchor layout. fill and
// centerIn name a widget; an edge names "<id>.<edge>".
func declAnchor(w *Base, n *style.Node) error {
	if w.parent == nil {
		return style.Errorf(n, "cannot create anchor, there is no parent widget")
	}
	anchors, ok := w.parent.AsWidget().layout.(*layout.AnchorLayout)
	if !ok {
		return style.Errorf(n, "cannot create anchor, the parent widget doesn't use anchor layout")
	}
	value, err := n.AsString()
	if err != nil {
		return err
	}

	what := strings.TrimPrefix(n.Tag(), anchorPrefix)
	if value == "" {
		return style.Errorf(n, "invalid anchor description")
	}

	switch what {
	case "fill":
		anchors.Fill(w, value)
	case "centerIn":
		anchors.CenterIn(w, value)
	default:
		parts := strings.Split(value, ".")
		if len(parts) != 2 || parts[0] == "" {
			return style.Errorf(n, "invalid anchor description")
		}
		edge := layout.ParseEdge(what)
		if edge == layout.EdgeNone {
			return style.Errorf(n, "invalid anchor edge")
		}
		hookedEdge := layout.ParseEdge(parts[1])
		if hookedEdge == layout.EdgeNone {
			return style.Errorf(n, "invalid anchor target edge")
		}
		if err := anchors.AddAnchor(w, edge, parts[0], hookedEdge); err != nil {
			return style.Errorf(n, "%v", err)
		}
	}
	return nil
}
