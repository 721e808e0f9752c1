package ui

import (
	stderrors "errors"
	"maps"
	"slices"
	"strings"

	"github.com/go-drift/anchorui/pkg/style"
	"github.com/go-drift/anchorui/pkg/widget"
)

// Factory creates the widget for a style.
type Factory func(m widget.Manager) widget.Widget

// styleDef is a style as declared, before inheritance is resolved.
type styleDef struct {
	base string
	decl *style.Node
}

// RegisterFactory makes styles named name, and styles inheriting from it,
// create their widgets with f.
func (m *Manager) RegisterFactory(name string, f Factory) {
	m.factories[name] = f
}

func (m *Manager) factory(name string) Factory {
	seen := make(map[string]bool)
	for name != "" && !seen[name] {
		if f, ok := m.factories[name]; ok {
			return f
		}
		seen[name] = true
		name = m.defs[name].base
	}
	return func(wm widget.Manager) widget.Widget { return widget.New(wm) }
}

// Style returns the registered style name, with its base styles merged in,
// or nil.
func (m *Manager) Style(name string) *style.Node { return m.styles[name] }

// StyleNames returns the registered style names, sorted.
func (m *Manager) StyleNames() []string {
	return slices.Sorted(maps.Keys(m.styles))
}

// parseStyleTag splits "Name < Base".
func parseStyleTag(tag string) (name, base string) {
	name, base, _ = strings.Cut(tag, "<")
	return strings.TrimSpace(name), strings.TrimSpace(base)
}

// ImportStyles registers every child of node as a style. A tag of the form
// "Name < Base" derives the style from a registered one: the base
// declarations are copied and the child's declarations override them.
//
// Redefining a style also re-derives the styles inheriting from it. Styles
// that fail to import are skipped and reported in the returned error.
func (m *Manager) ImportStyles(node *style.Node) error {
	_, err := m.importStyles(node)
	return err
}

// importStyles returns the names of the styles it registered or re-derived.
func (m *Manager) importStyles(node *style.Node) (map[string]bool, error) {
	var errs []error
	changed := make(map[string]bool)
	for _, n := range node.Children() {
		name, base := parseStyleTag(n.Tag())
		switch {
		case name == "":
			errs = append(errs, style.Errorf(n, "style without a name"))
			continue
		case base == name || m.inherits(base, name):
			errs = append(errs, style.Errorf(n, "style %q cannot inherit from itself", name))
			continue
		case base != "" && m.styles[base] == nil:
			errs = append(errs, style.Errorf(n, "style %q inherits from unknown style %q", name, base))
			continue
		}
		m.defs[name] = styleDef{base: base, decl: n.Clone()}
		m.styles[name] = m.derive(name)
		changed[name] = true
		m.metrics.StylesLoaded.Inc()
	}
	m.rederive(changed)
	return changed, stderrors.Join(errs...)
}

// inherits reports whether name has base somewhere up its chain.
func (m *Manager) inherits(name, base string) bool {
	seen := make(map[string]bool)
	for name != "" && !seen[name] {
		if name == base {
			return true
		}
		seen[name] = true
		name = m.defs[name].base
	}
	return false
}

func (m *Manager) derive(name string) *style.Node {
	def := m.defs[name]
	n := style.NewNode(name)
	if def.base != "" {
		n.Merge(m.styles[def.base])
	}
	n.Merge(def.decl)
	return n
}

// rederive rebuilds the styles inheriting from a changed one, bases first,
// and adds them to changed.
func (m *Manager) rederive(changed map[string]bool) {
	depth := func(name string) int {
		d := 0
		for seen := map[string]bool{}; name != "" && !seen[name]; name = m.defs[name].base {
			seen[name] = true
			d++
		}
		return d
	}

	var stale []string
	for name := range m.defs {
		if changed[name] {
			continue
		}
		for c := range changed {
			if m.inherits(name, c) {
				stale = append(stale, name)
				break
			}
		}
	}
	slices.SortFunc(stale, func(a, b string) int { return depth(a) - depth(b) })
	for _, name := range stale {
		m.styles[name] = m.derive(name)
		changed[name] = true
	}
}

// LoadStyleFile imports the styles declared in a YAML file.
func (m *Manager) LoadStyleFile(path string) error {
	node, err := style.DecodeFile(path)
	if err != nil {
		return err
	}
	return m.ImportStyles(node)
}
