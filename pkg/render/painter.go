// Package render defines the drawing surface widgets render into.
//
// Widgets never talk to a graphics backend directly. They draw through a
// [Painter], which carries the ambient opacity and the bound color that
// tints images and fills.
package render

import (
	"image"

	"golang.org/x/image/font"

	"github.com/go-drift/anchorui/pkg/graphics"
)

// Painter is the drawing collaborator of the widget tree.
type Painter interface {
	// Opacity returns the ambient opacity applied to everything drawn.
	Opacity() uint8
	// SetOpacity replaces the ambient opacity.
	SetOpacity(opacity uint8)
	// BindColor sets the color used to tint images, fill rects and draw text.
	BindColor(c graphics.Color)
	// DrawImage draws the src region of img scaled into dst.
	DrawImage(img image.Image, src image.Rectangle, dst graphics.Rect)
	// DrawFilledRect fills dst with the bound color.
	DrawFilledRect(dst graphics.Rect)
	// DrawText draws text with its top-left corner at pos.
	DrawText(face font.Face, text string, pos graphics.Point)
}

// WithOpacity lowers the ambient opacity to opacity for the duration of fn
// when it is lower than the current one, and restores it afterwards.
func WithOpacity(p Painter, opacity uint8, fn func()) {
	old := p.Opacity()
	if opacity < old {
		p.SetOpacity(opacity)
	}
	defer p.SetOpacity(old)
	fn()
}
