package ui

import (
	"github.com/go-drift/anchorui/pkg/graphics"
	"github.com/go-drift/anchorui/pkg/widget"
)

// Input entry points. Each one routes the event from the root widget and
// reports whether a widget handled it.

func (m *Manager) KeyPress(key widget.KeyCode, ch rune, mods widget.Modifiers) bool {
	if m.root == nil {
		return false
	}
	return m.metrics.event(eventKeyPress, m.root.Self().OnKeyPress(key, ch, mods))
}

func (m *Manager) KeyRelease(key widget.KeyCode, ch rune, mods widget.Modifiers) bool {
	if m.root == nil {
		return false
	}
	return m.metrics.event(eventKeyRelease, m.root.Self().OnKeyRelease(key, ch, mods))
}

func (m *Manager) MousePress(pos graphics.Point, button widget.MouseButton) bool {
	if m.root == nil {
		return false
	}
	return m.metrics.event(eventMousePress, m.root.Self().OnMousePress(pos, button))
}

func (m *Manager) MouseRelease(pos graphics.Point, button widget.MouseButton) bool {
	if m.root == nil {
		return false
	}
	return m.metrics.event(eventMouseRelease, m.root.Self().OnMouseRelease(pos, button))
}

// MouseMove records the new pointer position and re-derives the hover
// states before routing, so handlers observe the updated hover chain.
func (m *Manager) MouseMove(pos graphics.Point) bool {
	if m.root == nil {
		return false
	}
	moved := pos.Sub(m.pointer)
	m.pointer = pos
	m.root.UpdateState(widget.HoverState)
	return m.metrics.event(eventMouseMove, m.root.Self().OnMouseMove(pos, moved))
}

func (m *Manager) MouseWheel(pos graphics.Point, dir widget.WheelDirection) bool {
	if m.root == nil {
		return false
	}
	return m.metrics.event(eventMouseWheel, m.root.Self().OnMouseWheel(pos, dir))
}
