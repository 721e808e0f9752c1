package uitest

import (
	"fmt"

	"github.com/go-drift/anchorui/pkg/graphics"
	"github.com/go-drift/anchorui/pkg/widget"
)

func (h *Harness) center(op string, finder Finder) (graphics.Point, error) {
	result := h.Find(finder)
	if !result.Exists() {
		return graphics.Point{}, fmt.Errorf("%s: finder matched no widgets: %s", op, finder.Description())
	}
	w := result.First().AsWidget()
	if !w.IsVisible() || !w.Rect().IsValid() {
		return graphics.Point{}, fmt.Errorf("%s: widget %q is not on screen: %s", op, w.ID(), finder.Description())
	}
	return w.Rect().Center(), nil
}

// MoveTo moves the pointer to pos and pumps the queue. It reports whether
// a widget handled the motion.
func (h *Harness) MoveTo(pos graphics.Point) bool {
	handled := h.m.MouseMove(pos)
	h.Pump()
	return handled
}

// Hover moves the pointer to the center of the first widget matched by
// finder.
func (h *Harness) Hover(finder Finder) error {
	pos, err := h.center("Hover", finder)
	if err != nil {
		return err
	}
	h.MoveTo(pos)
	return nil
}

// Tap simulates a left click at the center of the first widget matched by
// finder.
func (h *Harness) Tap(finder Finder) error {
	pos, err := h.center("Tap", finder)
	if err != nil {
		return err
	}
	h.TapAt(pos)
	return nil
}

// TapAt moves the pointer to pos and clicks the left button there. It
// reports whether the press was handled.
func (h *Harness) TapAt(pos graphics.Point) bool {
	h.MoveTo(pos)
	handled := h.m.MousePress(pos, widget.MouseLeftButton)
	h.m.MouseRelease(pos, widget.MouseLeftButton)
	h.Pump()
	return handled
}

// Drag simulates a left-button drag from the center of the first widget
// matched by finder.
func (h *Harness) Drag(finder Finder, delta graphics.Point) error {
	start, err := h.center("Drag", finder)
	if err != nil {
		return err
	}
	h.DragFrom(start, delta)
	return nil
}

// DragFrom presses at start, moves by delta in a few steps and releases.
func (h *Harness) DragFrom(start, delta graphics.Point) {
	const steps = 4
	h.MoveTo(start)
	h.m.MousePress(start, widget.MouseLeftButton)
	for i := 1; i <= steps; i++ {
		h.m.MouseMove(graphics.Point{X: start.X + delta.X*i/steps, Y: start.Y + delta.Y*i/steps})
	}
	end := start.Add(delta)
	h.m.MouseRelease(end, widget.MouseLeftButton)
	h.Pump()
}

// Scroll sends one wheel step over the first widget matched by finder.
func (h *Harness) Scroll(finder Finder, dir widget.WheelDirection) error {
	pos, err := h.center("Scroll", finder)
	if err != nil {
		return err
	}
	h.MoveTo(pos)
	h.m.MouseWheel(pos, dir)
	h.Pump()
	return nil
}

// PressKey sends a key press and release. It reports whether the press was
// handled.
func (h *Harness) PressKey(key widget.KeyCode, ch rune, mods widget.Modifiers) bool {
	handled := h.m.KeyPress(key, ch, mods)
	h.m.KeyRelease(key, ch, mods)
	h.Pump()
	return handled
}

// TypeText presses a key for every rune of text.
func (h *Harness) TypeText(text string) {
	for _, r := range text {
		h.PressKey(widget.KeyUnknown, r, 0)
	}
}
