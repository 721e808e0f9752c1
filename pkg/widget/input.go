package widget

// KeyCode identifies a physical key.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyTab
	KeyBackspace
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyDelete
	KeyHome
	KeyEnd
)

// Modifiers is a bitset of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether all of m2 are held.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseNoButton MouseButton = iota
	MouseLeftButton
	MouseRightButton
	MouseMidButton
)

// WheelDirection is the direction of a wheel step.
type WheelDirection int

const (
	WheelUp WheelDirection = iota
	WheelDown
)
