package uitest

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/anchorui/pkg/errors"
	"github.com/go-drift/anchorui/pkg/graphics"
	"github.com/go-drift/anchorui/pkg/widget"
)

const sceneStyles = `
Label:
  height: 20
Toggle:
  height: 40
Panel:
  layout: verticalBox
`

const sceneUI = `
Panel:
  id: main
  anchors.fill: parent
  children:
    - Label: {id: greeting, text: Hello}
    - Label: {id: farewell, text: Hello world}
    - Toggle: {id: b}
`

// toggle flips on every press and records what else reaches it.
type toggle struct {
	widget.Base
	on     bool
	typed  []rune
	moves  int
	wheels int
}

func (t *toggle) OnMousePress(pos graphics.Point, button widget.MouseButton) bool {
	t.on = !t.on
	t.Base.OnMousePress(pos, button)
	return true
}

func (t *toggle) OnKeyPress(key widget.KeyCode, ch rune, mods widget.Modifiers) bool {
	t.typed = append(t.typed, ch)
	return true
}

func (t *toggle) OnMouseMove(pos, moved graphics.Point) bool {
	t.moves++
	return false
}

func (t *toggle) OnMouseWheel(pos graphics.Point, dir widget.WheelDirection) bool {
	t.wheels++
	return true
}

func newScene(t *testing.T) (*Harness, *toggle) {
	t.Helper()
	h := New(t, nil)
	h.Manager().RegisterFactory("Toggle", func(m widget.Manager) widget.Widget {
		tg := &toggle{}
		tg.Init(m, tg)
		return tg
	})
	h.MustLoadStyles(sceneStyles)
	h.MustLoadUI(sceneUI)
	tg, ok := h.Find(ByID("b")).First().(*toggle)
	require.True(t, ok)
	return h, tg
}

type fakeT struct {
	errors []string
	fatals []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return "TestFake" }

func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}

func TestFinders(t *testing.T) {
	h, _ := newScene(t)

	assert.Equal(t, "greeting", h.Find(ByText("Hello")).First().AsWidget().ID())
	assert.Equal(t, 2, h.Find(ByTextContaining("Hello")).Count())
	assert.Equal(t, 2, h.Find(ByType[*widget.Label]()).Count())
	assert.Equal(t, 1, h.Find(ByType[*toggle]()).Count())
	assert.Equal(t, "main", h.Find(ByStyle("Panel")).First().AsWidget().ID())
	assert.Equal(t, "farewell", h.Find(Descendant(ByID("main"), ByType[*widget.Label]())).At(1).AsWidget().ID())
	assert.Equal(t, []string{"main", "b"}, idsOf(h.Find(ByState(widget.FocusState)).All()))
	assert.Equal(t, "root", h.Find(ByPredicate(func(w widget.Widget) bool { return w.AsWidget().Parent() == nil })).First().AsWidget().ID())

	missing := h.Find(ByID("nope"))
	assert.False(t, missing.Exists())
	assert.Nil(t, missing.FirstOrNil())
	assert.PanicsWithValue(t, `Finder found no widgets: ByID("nope")`, func() { missing.First() })
	assert.PanicsWithValue(t, `Finder index 3 out of range (found 2): ByType(*widget.Label)`, func() {
		h.Find(ByType[*widget.Label]()).At(3)
	})
}

func TestLoadUIPositionsWidgets(t *testing.T) {
	h, tg := newScene(t)
	assert.Equal(t, graphics.Rect{Y: 20, Width: 800, Height: 20}, h.Find(ByID("farewell")).First().AsWidget().Rect())
	assert.Equal(t, graphics.Rect{Y: 40, Width: 800, Height: 40}, tg.Rect())
	h.RequireNoErrors()
}

func TestTap(t *testing.T) {
	h, tg := newScene(t)

	require.NoError(t, h.Tap(ByID("greeting")))
	assert.True(t, h.Find(ByID("greeting")).First().AsWidget().IsFocused())
	assert.False(t, tg.IsFocused())

	require.NoError(t, h.Tap(ByID("b")))
	assert.True(t, tg.on)
	assert.True(t, tg.IsFocused())
	assert.False(t, tg.IsPressed(), "released after the tap")
	assert.True(t, tg.IsHovered())

	err := h.Tap(ByID("nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tap: finder matched no widgets")

	h.Find(ByID("b")).First().AsWidget().SetVisible(false)
	err = h.Tap(ByID("b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not on screen")
}

func TestTapAtReportsHandling(t *testing.T) {
	h, _ := newScene(t)
	assert.True(t, h.TapAt(graphics.Point{X: 10, Y: 50}))
	assert.False(t, h.TapAt(graphics.Point{X: 10, Y: 5}))
	assert.False(t, h.TapAt(graphics.Point{X: 10, Y: 500}))
}

func TestKeysFollowFocus(t *testing.T) {
	h, tg := newScene(t)

	h.TypeText("hi")
	assert.Equal(t, []rune("hi"), tg.typed)

	require.NoError(t, h.Tap(ByID("greeting")))
	assert.False(t, h.PressKey(widget.KeyEnter, '\r', 0))
	assert.Equal(t, []rune("hi"), tg.typed)
}

func TestDragAndScroll(t *testing.T) {
	h, tg := newScene(t)

	require.NoError(t, h.Drag(ByID("b"), graphics.Point{X: 40, Y: 0}))
	assert.Equal(t, 5, tg.moves, "the hover move plus four steps")
	assert.Equal(t, graphics.Point{X: 440, Y: 60}, h.Manager().PointerPosition())

	require.NoError(t, h.Scroll(ByID("b"), widget.WheelDown))
	assert.Equal(t, 1, tg.wheels)
	assert.Error(t, h.Scroll(ByID("nope"), widget.WheelUp))
}

func TestHover(t *testing.T) {
	h, tg := newScene(t)
	require.NoError(t, h.Hover(ByID("farewell")))
	assert.True(t, h.Find(ByID("farewell")).First().AsWidget().IsHovered())
	assert.False(t, tg.IsHovered())
}

func TestErrorsAreCaptured(t *testing.T) {
	h, _ := newScene(t)

	h.Root().AddChild(nil)
	errs := h.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "widget.AddChild", errs[0].Op)
	assert.Equal(t, errors.SeverityWarning, errs[0].Severity)

	h.Manager().Post(func() { panic("boom") })
	h.Pump()
	require.Len(t, h.Panics(), 1)
	assert.Equal(t, "boom", h.Panics()[0].Value)

	h.ClearErrors()
	assert.Empty(t, h.Errors())
	assert.Empty(t, h.Panics())
}

func TestStyleErrorsAreCaptured(t *testing.T) {
	h, _ := newScene(t)
	_, err := h.LoadUI("Label:\n  id: bad\n  height: tall\n")
	require.NoError(t, err)

	errs := h.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, errors.KindStyle, errs[0].Kind)
	assert.Equal(t, "bad", errs[0].Widget)
}

func TestSnapshotRoundTrip(t *testing.T) {
	h, _ := newScene(t)
	path := filepath.Join(t.TempDir(), "scene.snapshot.json")

	snap := h.CaptureSnapshot()
	require.NotNil(t, snap.Tree)
	assert.Equal(t, "root", snap.Tree.ID)
	assert.Equal(t, "Base", snap.Tree.Type)
	require.Len(t, snap.Tree.Children, 1)
	assert.Equal(t, "Panel", snap.Tree.Children[0].Style)
	assert.Equal(t, "toggle", snap.Tree.Children[0].Children[2].Type)
	assert.Len(t, snap.DisplayOps, 2, "one text op per label")

	require.NoError(t, snap.UpdateFile(path))
	ft := &fakeT{}
	h.CaptureSnapshot().MatchesFile(ft, path)
	assert.Empty(t, ft.errors)
	assert.Empty(t, ft.fatals)

	h.Find(ByID("greeting")).First().(*widget.Label).SetText("Bye")
	h.CaptureSnapshot().MatchesFile(ft, path)
	require.Len(t, ft.errors, 1)
	assert.Contains(t, ft.errors[0], "snapshot mismatch")
	assert.Contains(t, ft.errors[0], `text=\"Bye\"`)
}

func TestSnapshotMissingFile(t *testing.T) {
	h, _ := newScene(t)
	ft := &fakeT{}
	h.CaptureSnapshot().MatchesFile(ft, filepath.Join(t.TempDir(), "missing.json"))
	require.Len(t, ft.fatals, 1)
	assert.Contains(t, ft.fatals[0], "snapshot file missing")
	assert.Contains(t, ft.fatals[0], UpdateSnapshotsEnv+"=1 go test -run TestFake")
}

func idsOf(ws []widget.Widget) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.AsWidget().ID()
	}
	return out
}
