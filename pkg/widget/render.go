package widget

import (
	"github.com/go-drift/anchorui/pkg/render"
)

// Render draws the background image tinted by the background color, then
// the children.
func (w *Base) Render(p render.Painter) {
	if w.image != nil {
		p.BindColor(w.backgroundColor)
		w.image.Draw(p, w.rect)
	}
	w.RenderChildren(p)
}

// RenderChildren draws the visible children with a valid rectangle in
// order, so later children end up on top. A child less opaque than the
// current ambient opacity lowers it for its subtree.
func (w *Base) RenderChildren(p render.Painter) {
	for _, child := range w.Children() {
		c := child.AsWidget()
		if !c.visible || !c.rect.IsValid() {
			continue
		}
		render.WithOpacity(p, c.opacity, func() {
			child.Render(p)
		})
	}
}
