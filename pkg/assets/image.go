// Package assets holds the shared, read-only resources widgets draw with:
// decoded images and font faces.
package assets

import (
	"image"

	"github.com/go-drift/anchorui/pkg/graphics"
	"github.com/go-drift/anchorui/pkg/render"
)

// Image is a drawable shared image reference. Holders call Release once
// they no longer draw it.
type Image interface {
	Draw(p render.Painter, dst graphics.Rect)
	Size() graphics.Size
	Release()
}

// Texture draws a whole image stretched into the destination rectangle.
type Texture struct {
	path  string
	img   image.Image
	cache *ImageCache
}

// NewTexture wraps img without a cache. Release is a no-op.
func NewTexture(img image.Image) *Texture {
	return &Texture{img: img}
}

// Path returns the cache key the texture was acquired with.
func (t *Texture) Path() string { return t.path }

// Image returns the decoded pixels.
func (t *Texture) Image() image.Image { return t.img }

func (t *Texture) Size() graphics.Size {
	b := t.img.Bounds()
	return graphics.Size{Width: b.Dx(), Height: b.Dy()}
}

func (t *Texture) Draw(p render.Painter, dst graphics.Rect) {
	p.DrawImage(t.img, t.img.Bounds(), dst)
}

func (t *Texture) Release() {
	if t.cache != nil {
		t.cache.Release(t.path)
		t.cache = nil
	}
}

// BorderImage is a nine-slice image: corners keep their size, edges stretch
// along one axis and the center stretches along both.
type BorderImage struct {
	*Texture
	Border graphics.Margins
}

func (b *BorderImage) Draw(p render.Painter, dst graphics.Rect) {
	bounds := b.img.Bounds()
	m := b.Border

	// Shrink the border when the destination is too small to hold it.
	left, right := fit(m.Left, m.Right, dst.Width)
	top, bottom := fit(m.Top, m.Bottom, dst.Height)

	srcX := [4]int{bounds.Min.X, bounds.Min.X + m.Left, bounds.Max.X - m.Right, bounds.Max.X}
	srcY := [4]int{bounds.Min.Y, bounds.Min.Y + m.Top, bounds.Max.Y - m.Bottom, bounds.Max.Y}
	dstX := [4]int{dst.Left(), dst.Left() + left, dst.Right() - right, dst.Right()}
	dstY := [4]int{dst.Top(), dst.Top() + top, dst.Bottom() - bottom, dst.Bottom()}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(srcX[col], srcY[row], srcX[col+1], srcY[row+1])
			to := graphics.RectFromLTWH(dstX[col], dstY[row], dstX[col+1]-dstX[col], dstY[row+1]-dstY[row])
			if src.Empty() || !to.IsValid() {
				continue
			}
			p.DrawImage(b.img, src, to)
		}
	}
}

func fit(a, b, total int) (int, int) {
	if a+b <= total || a+b == 0 {
		return a, b
	}
	a = a * total / (a + b)
	return a, total - a
}
