package graphics

import (
	"fmt"
	"image"
)

// Point is a position in window pixels.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("%d %d", p.X, p.Y)
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width, Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%d %d", s.Width, s.Height)
}

// Rect is a window-absolute rectangle. Right and Bottom are exclusive.
type Rect struct {
	X, Y          int
	Width, Height int
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height int) Rect {
	return Rect{X: left, Y: top, Width: width, Height: height}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// HorizontalCenter returns the x coordinate of the center.
func (r Rect) HorizontalCenter() int { return r.X + r.Width/2 }

// VerticalCenter returns the y coordinate of the center.
func (r Rect) VerticalCenter() int { return r.Y + r.Height/2 }

// Position returns the top-left corner.
func (r Rect) Position() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.HorizontalCenter(), Y: r.VerticalCenter()}
}

// IsValid reports whether the rectangle has a positive area.
func (r Rect) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// MoveTo returns the rectangle moved so its top-left corner is p.
func (r Rect) MoveTo(p Point) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// Resize returns the rectangle with the given size and the same origin.
func (r Rect) Resize(s Size) Rect {
	r.Width, r.Height = s.Width, s.Height
	return r
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Image converts the rectangle to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

func (r Rect) String() string {
	return fmt.Sprintf("%d %d %dx%d", r.X, r.Y, r.Width, r.Height)
}

// Margins are the insets a layout keeps around a widget.
type Margins struct {
	Top, Right, Bottom, Left int
}
