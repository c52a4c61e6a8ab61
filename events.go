package radial

import "time"

// PointerEvent is a pointer press, move or release in screen coordinates.
type PointerEvent struct {
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
	// At is the event timestamp relative to any fixed origin. Velocity is
	// derived from the difference between consecutive events.
	At time.Duration
	// PointerID distinguishes touch contacts; 0 is the mouse.
	PointerID int
}

// Pos returns the event position.
func (e PointerEvent) Pos() Vec2 {
	return Vec2{X: e.X, Y: e.Y}
}

// WheelEvent is a scroll step. DeltaY > 0 scrolls down (zoom out).
type WheelEvent struct {
	X, Y      float64
	DeltaY    float64
	Modifiers KeyModifiers
}

// KeyEvent is a key press.
type KeyEvent struct {
	Key       Key
	Modifiers KeyModifiers
}
