package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// overlapping adds three spies; only the last one covers (150, 150).
func overlapping(m *testManager) (a, b, c *spy) {
	a = newSpy(m, "a", rect(0, 0, 100, 100))
	b = newSpy(m, "b", rect(20, 20, 100, 100))
	c = newSpy(m, "c", rect(40, 40, 120, 120))
	m.root.AddChild(a)
	m.root.AddChild(b)
	m.root.AddChild(c)
	return a, b, c
}

func TestPressGoesToTopmostOnly(t *testing.T) {
	m := newTestManager()
	a, b, c := overlapping(m)
	c.handle = true

	assert.True(t, m.root.OnMousePress(pt(150, 150), MouseLeftButton))
	assert.Equal(t, 1, c.presses)
	assert.Zero(t, a.presses)
	assert.Zero(t, b.presses)

	// Where all three overlap only the topmost is offered the press.
	c.handle = false
	assert.False(t, m.root.OnMousePress(pt(50, 50), MouseLeftButton))
	assert.Equal(t, 2, c.presses)
	assert.Zero(t, a.presses)
	assert.Zero(t, b.presses)
}

func TestPressFocusesAndPresses(t *testing.T) {
	m := newTestManager()
	a, _, c := overlapping(m)
	m.root.FocusChild(a, OtherFocusReason)

	m.root.OnMousePress(pt(150, 150), MouseLeftButton)
	assert.Same(t, &c.Base, m.root.FocusedChild().AsWidget())
	assert.Equal(t, MouseFocusReason, c.LastFocusReason())
	assert.True(t, c.IsPressed())
	assert.True(t, c.States().Has(PressedState))

	m.root.OnMouseRelease(pt(500, 500), MouseLeftButton)
	assert.False(t, c.IsPressed())
	assert.Equal(t, 1, a.releases)
	assert.Equal(t, 1, c.releases)
}

func TestPressOnGrandchildDoesNotPressParent(t *testing.T) {
	m := newTestManager()
	p := newSpy(m, "p", rect(0, 0, 100, 100))
	m.root.AddChild(p)
	inner := newSpy(m, "inner", rect(10, 10, 10, 10))
	p.AddChild(inner)

	m.root.OnMousePress(pt(15, 15), MouseLeftButton)
	assert.True(t, inner.IsPressed())
	assert.False(t, p.IsPressed())
	assert.Equal(t, 1, p.presses)
	assert.Equal(t, 1, inner.presses)
}

func TestDisabledAndHiddenChildrenAreSkipped(t *testing.T) {
	m := newTestManager()
	a, b, c := overlapping(m)
	c.SetEnabled(false)
	b.SetVisible(false)

	// c is still the topmost visible child, so nothing below it is hit.
	m.root.OnMousePress(pt(50, 50), MouseLeftButton)
	assert.Zero(t, a.presses+b.presses+c.presses)

	m.root.OnMouseMove(pt(1, 1), pt(1, 1))
	assert.Equal(t, 1, a.moves)
	assert.Zero(t, b.moves)
	assert.Zero(t, c.moves)
}

func TestReleaseStopsAtHandledButUnpresses(t *testing.T) {
	m := newTestManager()
	a, b, _ := overlapping(m)
	a.SetPressed(true)
	b.SetPressed(true)
	a.handle = true

	assert.True(t, m.root.OnMouseRelease(pt(0, 0), MouseLeftButton))
	assert.False(t, a.IsPressed())
	assert.True(t, b.IsPressed())
	assert.Zero(t, b.releases)
}

func TestKeysFollowFocus(t *testing.T) {
	m := newTestManager()
	a, b, c := overlapping(m)
	m.root.FocusChild(b, TabFocusReason)
	inner := newSpy(m, "inner", rect(0, 0, 1, 1))
	b.AddChild(inner)
	inner.handle = true

	assert.True(t, m.root.OnKeyPress(KeyEnter, '\n', 0))
	assert.Equal(t, 1, b.keys)
	assert.Equal(t, 1, inner.keys)
	assert.Zero(t, a.keys+c.keys)

	m.root.FocusChild(nil, OtherFocusReason)
	assert.False(t, m.root.OnKeyPress(KeyEnter, '\n', 0))
	assert.False(t, m.root.OnKeyRelease(KeyEnter, '\n', 0))
}

func TestWheelGoesToHitChild(t *testing.T) {
	m := newTestManager()
	a, _, c := overlapping(m)

	m.root.OnMouseWheel(pt(5, 5), WheelDown)
	assert.Equal(t, 1, a.wheels)
	assert.Zero(t, c.wheels)
}

func TestRoutingSurvivesTreeChanges(t *testing.T) {
	m := newTestManager()
	a, b, c := overlapping(m)
	a.onMove = func() {
		m.root.RemoveChild(b)
		m.root.RemoveChild(c)
	}

	assert.False(t, m.root.OnMouseMove(pt(1, 1), pt(0, 0)))
	assert.Equal(t, 1, a.moves)
	// Snapshot routing still delivers to children removed mid-route.
	assert.Equal(t, 1, b.moves)
	assert.Equal(t, 1, c.moves)
	assert.Equal(t, 1, m.root.ChildCount())
}

func TestModifiers(t *testing.T) {
	mods := ModShift | ModCtrl
	assert.True(t, mods.Has(ModShift))
	assert.False(t, mods.Has(ModAlt))
	require.True(t, mods.Has(ModShift|ModCtrl))
}
