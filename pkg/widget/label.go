package widget

import (
	"github.com/go-drift/anchorui/pkg/graphics"
	"github.com/go-drift/anchorui/pkg/render"
	"github.com/go-drift/anchorui/pkg/style"
)

// Label is a widget that draws a line of text over its background.
//
// In addition to the common declarations it understands "text" and
// "text-offset" ("x y", relative to the top-left corner).
type Label struct {
	Base
	text       string
	textOffset graphics.Point
}

// NewLabel creates a detached label.
func NewLabel(m Manager) *Label {
	l := &Label{}
	l.Init(m, l)
	return l
}

func (l *Label) Text() string { return l.text }

func (l *Label) SetText(text string) { l.text = text }

func (l *Label) TextOffset() graphics.Point { return l.textOffset }

func (l *Label) SetTextOffset(p graphics.Point) { l.textOffset = p }

func (l *Label) OnStyleApply(node *style.Node) error {
	if err := l.Base.OnStyleApply(node); err != nil {
		return err
	}
	if n := node.Child("text"); n != nil {
		// An empty scalar clears the text.
		l.text = n.Value()
	}
	if n := node.Child("text-offset"); n != nil {
		p, err := n.AsPoint()
		if err != nil {
			return err
		}
		l.textOffset = p
	}
	return nil
}

func (l *Label) Render(p render.Painter) {
	l.Base.Render(p)
	if l.text == "" || l.Font() == nil {
		return
	}
	p.BindColor(l.ForegroundColor())
	p.DrawText(l.Font(), l.text, l.Position().Add(l.textOffset))
}
