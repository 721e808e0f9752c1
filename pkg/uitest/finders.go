package uitest

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/anchorui/pkg/widget"
)

// Finder locates widgets in the tree.
type Finder interface {
	// Evaluate returns all matching widgets under root, root included,
	// in depth-first pre-order.
	Evaluate(root widget.Widget) []widget.Widget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []widget.Widget
	finder  Finder
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() widget.Widget {
	if len(r.widgets) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.description()))
	}
	return r.widgets[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() widget.Widget {
	if len(r.widgets) == 0 {
		return nil
	}
	return r.widgets[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) widget.Widget {
	if index < 0 || index >= len(r.widgets) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.widgets), r.description()))
	}
	return r.widgets[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []widget.Widget { return r.widgets }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.widgets) }

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool { return len(r.widgets) > 0 }

func collectMatches(root widget.Widget, match func(w widget.Widget) bool) []widget.Widget {
	var out []widget.Widget
	var visit func(w widget.Widget)
	visit = func(w widget.Widget) {
		if match(w) {
			out = append(out, w)
		}
		for _, c := range w.AsWidget().Children() {
			visit(c)
		}
	}
	visit(root)
	return out
}

// predicateFinder matches widgets satisfying a predicate.
type predicateFinder struct {
	fn   func(widget.Widget) bool
	desc string
}

func (f *predicateFinder) Evaluate(root widget.Widget) []widget.Widget {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string { return f.desc }

// ByPredicate returns a finder that matches widgets satisfying fn.
func ByPredicate(fn func(widget.Widget) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// ByID matches widgets with the given id.
func ByID(id string) Finder {
	return &predicateFinder{
		fn:   func(w widget.Widget) bool { return w.AsWidget().ID() == id },
		desc: fmt.Sprintf("ByID(%q)", id),
	}
}

// ByStyle matches widgets created from the named style.
func ByStyle(name string) Finder {
	return &predicateFinder{
		fn:   func(w widget.Widget) bool { return w.AsWidget().StyleName() == name },
		desc: fmt.Sprintf("ByStyle(%q)", name),
	}
}

// ByType matches widgets whose concrete type is T.
func ByType[T widget.Widget]() Finder {
	t := reflect.TypeFor[T]()
	return &predicateFinder{
		fn:   func(w widget.Widget) bool { return reflect.TypeOf(w) == t },
		desc: fmt.Sprintf("ByType(%s)", t),
	}
}

// ByText matches labels showing exactly text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(w widget.Widget) bool {
			l, ok := w.(*widget.Label)
			return ok && l.Text() == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining matches labels whose text contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(w widget.Widget) bool {
			l, ok := w.(*widget.Label)
			return ok && strings.Contains(l.Text(), substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByState matches widgets with every bit of state set.
func ByState(state widget.State) Finder {
	return &predicateFinder{
		fn:   func(w widget.Widget) bool { return w.AsWidget().States().Has(state) },
		desc: fmt.Sprintf("ByState(%s)", state),
	}
}

// descendantFinder finds widgets matching 'matching' below widgets
// matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root widget.Widget) []widget.Widget {
	var results []widget.Widget
	seen := make(map[*widget.Base]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, child := range ancestor.AsWidget().Children() {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match.AsWidget()] {
					seen[match.AsWidget()] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches widgets satisfying 'matching'
// that are descendants of widgets matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}
