package ebitenwheel

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/radial"
)

// frame is one tick of polled input.
type frame struct {
	at      time.Duration
	x, y    float64
	inside  bool
	pressed bool
	button  radial.MouseButton
	mods    radial.KeyModifiers
	wheelY  float64 // DOM convention: positive scrolls down
	keys    []ebiten.Key

	capture bool
}

// inputState tracks the pointer across ticks so presses, releases and
// leaves become discrete events.
type inputState struct {
	down   bool
	button radial.MouseButton
	inside bool
	lastX  float64
	lastY  float64
}

// keyMap maps Ebitengine keys to wheel keys.
var keyMap = map[ebiten.Key]radial.Key{
	ebiten.KeyArrowLeft:      radial.KeyArrowLeft,
	ebiten.KeyArrowRight:     radial.KeyArrowRight,
	ebiten.KeyArrowUp:        radial.KeyArrowUp,
	ebiten.KeyArrowDown:      radial.KeyArrowDown,
	ebiten.KeyHome:           radial.KeyHome,
	ebiten.KeyEnd:            radial.KeyEnd,
	ebiten.KeyEnter:          radial.KeyEnter,
	ebiten.KeyNumpadEnter:    radial.KeyEnter,
	ebiten.KeySpace:          radial.KeySpace,
	ebiten.KeyEscape:         radial.KeyEscape,
	ebiten.KeyEqual:          radial.KeyPlus,
	ebiten.KeyNumpadAdd:      radial.KeyPlus,
	ebiten.KeyMinus:          radial.KeyMinus,
	ebiten.KeyNumpadSubtract: radial.KeyMinus,
	ebiten.KeyDigit0:         radial.KeyZero,
	ebiten.KeyNumpad0:        radial.KeyZero,
	ebiten.KeyR:              radial.KeyR,
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() radial.KeyModifiers {
	var mods radial.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= radial.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= radial.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= radial.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= radial.ModMeta
	}
	return mods
}

// readFrame polls Ebitengine for this tick's input.
func readFrame(at time.Duration) frame {
	mx, my := ebiten.CursorPosition()
	f := frame{at: at, x: float64(mx), y: float64(my), mods: readModifiers()}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	switch {
	case left:
		f.pressed, f.button = true, radial.MouseButtonLeft
	case right:
		f.pressed, f.button = true, radial.MouseButtonRight
	case middle:
		f.pressed, f.button = true, radial.MouseButtonMiddle
	}

	_, wy := ebiten.Wheel()
	f.wheelY = -wy
	f.keys = inpututil.AppendJustPressedKeys(nil)
	f.capture = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	return f
}

// apply feeds one frame into the wheel and collects the effects.
func (g *Game) apply(f frame) radial.Effects {
	w := g.wheel
	s := &g.input
	var out radial.Effects
	ev := radial.PointerEvent{X: f.x, Y: f.y, Button: f.button, Modifiers: f.mods, At: f.at}

	switch {
	case !f.inside && !s.down:
		if s.inside {
			out = append(out, w.HandlePointerLeave(ev)...)
		}
		s.inside = false
		return append(out, g.applyKeys(f)...)
	case f.pressed && !s.down:
		s.down, s.button = true, f.button
		out = append(out, w.HandlePointerDown(ev)...)
	case !f.pressed && s.down:
		ev.Button = s.button
		s.down = false
		out = append(out, w.HandlePointerUp(ev)...)
	case f.x != s.lastX || f.y != s.lastY || !s.inside:
		if s.down {
			ev.Button = s.button
		}
		out = append(out, w.HandlePointerMove(ev)...)
	}
	s.inside = true
	s.lastX, s.lastY = f.x, f.y

	if f.wheelY != 0 {
		out = append(out, w.HandleWheel(radial.WheelEvent{X: f.x, Y: f.y, DeltaY: f.wheelY, Modifiers: f.mods})...)
	}
	return append(out, g.applyKeys(f)...)
}

func (g *Game) applyKeys(f frame) radial.Effects {
	var out radial.Effects
	for _, k := range f.keys {
		key, ok := keyMap[k]
		if !ok {
			continue
		}
		out = append(out, g.wheel.HandleKey(radial.KeyEvent{Key: key, Modifiers: f.mods})...)
	}
	return out
}

// cursorShape maps a wheel cursor to the nearest Ebitengine shape.
func cursorShape(c radial.Cursor) ebiten.CursorShapeType {
	switch c {
	case radial.CursorPointer:
		return ebiten.CursorShapePointer
	case radial.CursorNotAllowed:
		return ebiten.CursorShapeNotAllowed
	case radial.CursorGrab, radial.CursorGrabbing:
		return ebiten.CursorShapeMove
	}
	return ebiten.CursorShapeDefault
}
