// Package raster implements render.Painter on top of an in-memory RGBA
// canvas driven by gg.
package raster

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/go-drift/anchorui/pkg/graphics"
)

// Canvas is a software Painter.
type Canvas struct {
	dc      *gg.Context
	opacity uint8
	color   graphics.Color
}

// New creates a transparent canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{
		dc:      gg.NewContext(width, height),
		opacity: 255,
		color:   graphics.White,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// Size returns the canvas dimensions.
func (c *Canvas) Size() graphics.Size {
	return graphics.Size{Width: c.dc.Width(), Height: c.dc.Height()}
}

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

// Clear fills the whole canvas with col, ignoring opacity.
func (c *Canvas) Clear(col graphics.Color) {
	c.dc.SetColor(col.NRGBA())
	c.dc.Clear()
}

func (c *Canvas) Opacity() uint8               { return c.opacity }
func (c *Canvas) SetOpacity(opacity uint8)     { c.opacity = opacity }
func (c *Canvas) BindColor(col graphics.Color) { c.color = col }

// effective combines the bound color with the ambient opacity.
func (c *Canvas) effective() color.NRGBA {
	n := c.color.NRGBA()
	n.A = uint8(uint16(n.A) * uint16(c.opacity) / 255)
	return n
}

func (c *Canvas) DrawFilledRect(dst graphics.Rect) {
	if !dst.IsValid() {
		return
	}
	c.dc.SetColor(c.effective())
	c.dc.DrawRectangle(float64(dst.X), float64(dst.Y), float64(dst.Width), float64(dst.Height))
	c.dc.Fill()
}

func (c *Canvas) DrawText(face font.Face, text string, pos graphics.Point) {
	if face == nil || text == "" {
		return
	}
	c.dc.SetFontFace(face)
	c.dc.SetColor(c.effective())
	ascent := face.Metrics().Ascent.Ceil()
	c.dc.DrawString(text, float64(pos.X), float64(pos.Y+ascent))
}

// DrawImage scales the src region of img into dst, multiplies it by the
// bound color and composites it with the ambient opacity.
func (c *Canvas) DrawImage(img image.Image, src image.Rectangle, dst graphics.Rect) {
	if img == nil || !dst.IsValid() || src.Empty() {
		return
	}
	scaled := image.NewNRGBA(image.Rect(0, 0, dst.Width, dst.Height))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, src, draw.Src, nil)
	tint(scaled, c.color)

	target, ok := c.dc.Image().(*image.RGBA)
	if !ok {
		return
	}
	mask := image.NewUniform(color.Alpha{A: c.opacity})
	draw.DrawMask(target, dst.Image(), scaled, image.Point{}, mask, image.Point{}, draw.Over)
}

func tint(img *image.NRGBA, col graphics.Color) {
	if col == graphics.White {
		return
	}
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i] = mul(img.Pix[i], col.R)
		img.Pix[i+1] = mul(img.Pix[i+1], col.G)
		img.Pix[i+2] = mul(img.Pix[i+2], col.B)
		img.Pix[i+3] = mul(img.Pix[i+3], col.A)
	}
}

func mul(a, b uint8) uint8 {
	return uint8(uint16(a) * uint16(b) / 255)
}
