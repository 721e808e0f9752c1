package render

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/font"

	"github.com/go-drift/anchorui/pkg/graphics"
)

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpImage OpKind = iota
	OpFill
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpImage:
		return "image"
	case OpFill:
		return "fill"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Op is one recorded drawing call with the painter state at that moment.
type Op struct {
	Kind    OpKind
	Rect    graphics.Rect
	Src     image.Rectangle
	Color   graphics.Color
	Opacity uint8
	Text    string
}

func (op Op) String() string {
	s := fmt.Sprintf("%s %s color=%s opacity=%d", op.Kind, op.Rect, op.Color, op.Opacity)
	if op.Text != "" {
		s += fmt.Sprintf(" text=%q", op.Text)
	}
	return s
}

// Recorder is a Painter that keeps a display list instead of drawing.
type Recorder struct {
	Ops     []Op
	opacity uint8
	color   graphics.Color
}

// NewRecorder returns a recorder with full opacity and white bound color.
func NewRecorder() *Recorder {
	return &Recorder{opacity: 255, color: graphics.White}
}

func (r *Recorder) Opacity() uint8                   { return r.opacity }
func (r *Recorder) SetOpacity(opacity uint8)         { r.opacity = opacity }
func (r *Recorder) BindColor(c graphics.Color)       { r.color = c }
func (r *Recorder) DrawFilledRect(dst graphics.Rect) { r.add(Op{Kind: OpFill, Rect: dst}) }

func (r *Recorder) DrawImage(_ image.Image, src image.Rectangle, dst graphics.Rect) {
	r.add(Op{Kind: OpImage, Rect: dst, Src: src})
}

func (r *Recorder) DrawText(_ font.Face, text string, pos graphics.Point) {
	r.add(Op{Kind: OpText, Rect: graphics.Rect{X: pos.X, Y: pos.Y}, Text: text})
}

func (r *Recorder) add(op Op) {
	op.Color = r.color
	op.Opacity = r.opacity
	r.Ops = append(r.Ops, op)
}

// Reset clears the display list.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// String renders the display list one op per line.
func (r *Recorder) String() string {
	var sb strings.Builder
	for _, op := range r.Ops {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
