package ui

import (
	stderrors "errors"
	"unicode"
	"unicode/utf8"

	"github.com/go-drift/anchorui/pkg/style"
	"github.com/go-drift/anchorui/pkg/widget"
)

const childrenTag = "children"

// instance remembers how a loaded widget was declared so it can be
// restyled when its style changes.
type instance struct {
	w         widget.Widget
	styleName string
	decl      *style.Node
}

// isWidgetTag reports whether tag names a style to instantiate rather than
// a declaration. Style names are capitalized.
func isWidgetTag(tag string) bool {
	r, _ := utf8.DecodeRuneInString(tag)
	return unicode.IsUpper(r)
}

// LoadUI creates a widget for every widget declaration among the children
// of node and attaches them to parent, or to the root when parent is nil.
// Widget declarations are capitalized tags naming a registered style, and
// the items of a "children" list.
//
// The returned error joins every declaration that could not be created;
// the widgets that could are still attached and returned.
func (m *Manager) LoadUI(node *style.Node, parent widget.Widget) ([]widget.Widget, error) {
	if parent == nil {
		parent = m.RootWidget()
	}
	var created []widget.Widget
	var errs []error
	for _, decl := range widgetDecls(node) {
		w, err := m.CreateWidget(decl, parent)
		if w != nil {
			created = append(created, w)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return created, stderrors.Join(errs...)
}

// LoadUIFile decodes a YAML file and loads it with LoadUI.
func (m *Manager) LoadUIFile(path string, parent widget.Widget) ([]widget.Widget, error) {
	node, err := style.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return m.LoadUI(node, parent)
}

func widgetDecls(node *style.Node) []*style.Node {
	var decls []*style.Node
	for _, n := range node.Children() {
		switch {
		case n.Tag() == childrenTag:
			decls = append(decls, n.Children()...)
		case isWidgetTag(n.Tag()):
			decls = append(decls, n)
		}
	}
	return decls
}

// CreateWidget instantiates one widget declaration under parent. The tag
// of decl names the style; its declarations override the style's. The
// widget is attached before the declarations are applied so anchors can
// resolve against its siblings, and its own children are created after.
func (m *Manager) CreateWidget(decl *style.Node, parent widget.Widget) (widget.Widget, error) {
	name := decl.Tag()
	base := m.styles[name]
	if base == nil {
		return nil, style.Errorf(decl, "unknown style %q", name)
	}
	if parent == nil {
		parent = m.RootWidget()
	}

	w := m.factory(name)(m)
	parent.AsWidget().AddChild(w)

	merged := base.Clone()
	merged.Merge(decl)
	w.AsWidget().SetNamedStyle(name, merged)
	m.instances = append(m.instances, instance{w: w, styleName: name, decl: decl.Clone()})
	m.metrics.WidgetsCreated.Inc()

	_, err := m.LoadUI(merged, w)
	return w, err
}

// restyle re-applies the current style to the loaded widgets whose style
// is in names. Declarations that may only be applied once are skipped.
func (m *Manager) restyle(names map[string]bool) {
	live := m.instances[:0]
	for _, in := range m.instances {
		b := in.w.AsWidget()
		if b.IsDestroyed() {
			continue
		}
		live = append(live, in)
		if !names[in.styleName] {
			continue
		}
		merged := m.styles[in.styleName].Clone()
		merged.Merge(in.decl)
		b.SetNamedStyle(in.styleName, reapplicable(merged))
	}
	clear(m.instances[len(live):])
	m.instances = live
}

// reapplicable drops the id, the layout and nested widget declarations.
func reapplicable(n *style.Node) *style.Node {
	out := style.NewNode(n.Tag())
	for _, c := range n.Children() {
		switch tag := c.Tag(); {
		case tag == "id", tag == "layout", tag == childrenTag, isWidgetTag(tag):
		default:
			out.AddChild(c)
		}
	}
	return out
}
