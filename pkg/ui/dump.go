package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-drift/anchorui/pkg/widget"
)

// Dump writes one line per widget of the subtree at w, children indented
// below their parent: id, style, rectangle and states.
func Dump(out io.Writer, w widget.Widget) error {
	return dump(out, w, 0)
}

func dump(out io.Writer, w widget.Widget, depth int) error {
	b := w.AsWidget()
	name := b.StyleName()
	if name == "" {
		name = "-"
	}
	line := fmt.Sprintf("%s%s (%s) [%s] %s", strings.Repeat("  ", depth), b.ID(), name, b.Rect(), b.States())
	if !b.IsExplicitlyVisible() {
		line += " hidden"
	}
	if _, err := fmt.Fprintln(out, line); err != nil {
		return err
	}
	for _, c := range b.Children() {
		if err := dump(out, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
