package widget

import (
	"testing"

	"github.com/go-drift/anchorui/pkg/assets"
	"github.com/go-drift/anchorui/pkg/dispatch"
	"github.com/go-drift/anchorui/pkg/errors"
	"github.com/go-drift/anchorui/pkg/graphics"
	"github.com/go-drift/anchorui/pkg/style"
)

var screen = graphics.Rect{Width: 800, Height: 600}

type testManager struct {
	root    *Base
	pointer graphics.Point
	queue   *dispatch.Queue
	ids     SequentialIDs
	styles  map[string]*style.Node
	fonts   *assets.FontRegistry
	images  *assets.ImageCache
}

func newTestManager() *testManager {
	m := &testManager{
		queue:  dispatch.NewQueue(),
		styles: make(map[string]*style.Node),
		fonts:  assets.NewFontRegistry(),
		images: assets.NewImageCache(""),
	}
	m.root = New(m)
	m.root.SetID("root")
	m.root.SetRect(screen)
	m.root.UpdateStates()
	m.queue.Poll()
	return m
}

func (m *testManager) Style(name string) *style.Node   { return m.styles[name] }
func (m *testManager) PointerPosition() graphics.Point { return m.pointer }
func (m *testManager) Post(fn func()) bool             { return m.queue.Post(fn) }
func (m *testManager) NextID() string                  { return m.ids.NextID() }
func (m *testManager) Fonts() FontSource               { return m.fonts }
func (m *testManager) Images() ImageSource             { return m.images }

func (m *testManager) RootWidget() Widget {
	if m.root == nil {
		return nil
	}
	return m.root
}

// movePointer updates the pointer and re-derives hover from the root.
func (m *testManager) movePointer(x, y int) {
	m.pointer = graphics.Point{X: x, Y: y}
	m.root.UpdateState(HoverState)
}

// spy records the hooks the tree invokes on it.
type spy struct {
	Base

	handle   bool
	geometry [][2]graphics.Rect
	focus    []bool
	reasons  []FocusReason
	hover    []bool
	presses  int
	releases int
	moves    int
	wheels   int
	keys     int

	onFocusChange func(focused bool)
	onMove        func()
}

func newSpy(m Manager, id string, r graphics.Rect) *spy {
	p := &spy{}
	p.Init(m, p)
	p.SetID(id)
	p.SetRect(r)
	return p
}

func (p *spy) OnGeometryUpdate(oldRect, newRect graphics.Rect) {
	p.geometry = append(p.geometry, [2]graphics.Rect{oldRect, newRect})
}

func (p *spy) OnFocusChange(focused bool, reason FocusReason) {
	p.focus = append(p.focus, focused)
	p.reasons = append(p.reasons, reason)
	if p.onFocusChange != nil {
		p.onFocusChange(focused)
	}
}

func (p *spy) OnHoverChange(hovered bool) {
	p.hover = append(p.hover, hovered)
}

func (p *spy) OnKeyPress(key KeyCode, ch rune, mods Modifiers) bool {
	p.keys++
	return p.Base.OnKeyPress(key, ch, mods) || p.handle
}

func (p *spy) OnMousePress(pos graphics.Point, button MouseButton) bool {
	p.presses++
	return p.Base.OnMousePress(pos, button) || p.handle
}

func (p *spy) OnMouseRelease(pos graphics.Point, button MouseButton) bool {
	p.releases++
	return p.Base.OnMouseRelease(pos, button) || p.handle
}

func (p *spy) OnMouseMove(pos, moved graphics.Point) bool {
	p.moves++
	if p.onMove != nil {
		p.onMove()
	}
	return p.Base.OnMouseMove(pos, moved) || p.handle
}

func (p *spy) OnMouseWheel(pos graphics.Point, dir WheelDirection) bool {
	p.wheels++
	return p.Base.OnMouseWheel(pos, dir) || p.handle
}

// errorLog captures reported errors for the duration of a test.
type errorLog struct {
	errs []*errors.UIError
}

func (l *errorLog) HandleError(err *errors.UIError) { l.errs = append(l.errs, err) }
func (l *errorLog) HandlePanic(*errors.PanicError)  {}

func captureErrors(t *testing.T) *errorLog {
	t.Helper()
	log := &errorLog{}
	prev := errors.SetHandler(log)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return log
}

func ids(ws []Widget) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.AsWidget().ID()
	}
	return out
}

func rect(x, y, w, h int) graphics.Rect {
	return graphics.Rect{X: x, Y: y, Width: w, Height: h}
}

func pt(x, y int) graphics.Point {
	return graphics.Point{X: x, Y: y}
}
