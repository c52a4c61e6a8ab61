package radial

import (
	"math"
	"time"
)

// ViewMode is the interaction state of a ViewController.
type ViewMode uint8

const (
	ViewIdle     ViewMode = iota // no gesture in progress
	ViewDragging                 // primary button held, rotating
	ViewPanning                  // secondary or middle button held, panning
	ViewCoasting                 // released with velocity, inertia running
)

func (m ViewMode) String() string {
	switch m {
	case ViewDragging:
		return "dragging"
	case ViewPanning:
		return "panning"
	case ViewCoasting:
		return "coasting"
	default:
		return "idle"
	}
}

// Defaults applied by ViewOptions when a field is left zero.
const (
	DefaultMinScale          = 0.5
	DefaultMaxScale          = 3.0
	DefaultSnapToleranceDeg  = 5.0
	DefaultRotateStepDeg     = 5.0
	DefaultZoomFactor        = 0.1
	DefaultPanStep           = 10.0
	DefaultFriction          = 0.95
	DefaultVelocityThreshold = 0.1 // deg/ms
	DefaultFrameInterval     = 16 * time.Millisecond
)

// velocityStaleAfter drops the release velocity when the pointer rested
// this long before letting go.
const velocityStaleAfter = 100 * time.Millisecond

// ViewOptions configures a ViewController. Zero numeric fields take the
// Default* values.
type ViewOptions struct {
	// Center is the wheel centre in screen coordinates before panning.
	Center Vec2

	MinScale float64
	MaxScale float64

	SnapToSectors    bool
	SnapToleranceDeg float64
	// SnapTargets overrides the default targets. Angles are view rotations.
	SnapTargets []float64
	// SectorCenters are the primary mid-angles used to derive the default
	// snap targets. NewWheel fills it from the layout.
	SectorCenters []float64

	Inertia           bool
	Friction          float64
	VelocityThreshold float64 // deg/ms
	FrameInterval     time.Duration
	// Scheduler drives coasting. Defaults to a ManualScheduler.
	Scheduler Scheduler

	Disabled        bool
	ReadOnly        bool
	DisableRotation bool
	DisableZoom     bool
	DisableKeyboard bool
	EnablePan       bool

	RotateStepDeg float64
	ZoomFactor    float64
	PanStep       float64

	// Controlled makes the owner authoritative: changes are proposed through
	// OnViewChange and only SetView writes the state.
	Controlled bool
}

func (o ViewOptions) withDefaults() (ViewOptions, error) {
	if o.MinScale < 0 || o.MaxScale < 0 {
		return o, configError("scale", "scale bounds must be positive, got [%v, %v]", o.MinScale, o.MaxScale)
	}
	if o.MinScale == 0 {
		o.MinScale = DefaultMinScale
	}
	if o.MaxScale == 0 {
		o.MaxScale = DefaultMaxScale
	}
	if o.MinScale > o.MaxScale {
		return o, configError("scale", "min scale %v exceeds max scale %v", o.MinScale, o.MaxScale)
	}
	if o.SnapToleranceDeg < 0 {
		return o, configError("snap tolerance", "must not be negative, got %v", o.SnapToleranceDeg)
	}
	if o.SnapToleranceDeg == 0 {
		o.SnapToleranceDeg = DefaultSnapToleranceDeg
	}
	if o.Friction == 0 {
		o.Friction = DefaultFriction
	}
	if o.Friction < 0 || o.Friction >= 1 {
		return o, configError("friction", "must be in (0, 1), got %v", o.Friction)
	}
	if o.VelocityThreshold <= 0 {
		o.VelocityThreshold = DefaultVelocityThreshold
	}
	if o.FrameInterval <= 0 {
		o.FrameInterval = DefaultFrameInterval
	}
	if o.Scheduler == nil {
		o.Scheduler = NewManualScheduler()
	}
	if o.RotateStepDeg == 0 {
		o.RotateStepDeg = DefaultRotateStepDeg
	}
	if o.ZoomFactor == 0 {
		o.ZoomFactor = DefaultZoomFactor
	}
	if o.ZoomFactor < 0 || o.ZoomFactor >= 1 {
		return o, configError("zoom factor", "must be in (0, 1), got %v", o.ZoomFactor)
	}
	if o.PanStep == 0 {
		o.PanStep = DefaultPanStep
	}
	return o, nil
}

// ViewController owns the rotation, zoom and pan of a wheel and turns
// pointer, wheel and key input into view changes.
type ViewController struct {
	opts    ViewOptions
	view    ViewState
	mode    ViewMode
	targets []float64

	// drag
	baseAngle    float64
	cumulative   float64
	pointerAngle float64
	lastAt       time.Duration
	velocity     float64 // deg/ms

	// pan
	lastPan Vec2

	coast      inertia
	coastAngle float64

	disposed     bool
	onViewChange observers[ViewState]
}

// NewViewController validates opts and returns a controller starting from
// initial, or DefaultViewState when initial is nil.
func NewViewController(initial *ViewState, opts ViewOptions) (*ViewController, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	c := &ViewController{opts: opts, view: DefaultViewState}
	if initial != nil {
		c.view = *initial
		if c.view.Scale == 0 {
			c.view.Scale = 1
		}
	}
	c.view.Scale = c.clampScale(c.view.Scale)
	c.targets = snapTargets(opts)
	return c, nil
}

// snapTargets returns the explicit targets or the rotations that bring each
// sector centre to 12 o'clock.
func snapTargets(opts ViewOptions) []float64 {
	if len(opts.SnapTargets) > 0 {
		out := make([]float64, len(opts.SnapTargets))
		for i, t := range opts.SnapTargets {
			out[i] = NormalizeAngle(t)
		}
		return out
	}
	out := make([]float64, len(opts.SectorCenters))
	for i, mid := range opts.SectorCenters {
		out[i] = NormalizeAngle(-mid)
	}
	return out
}

// OnViewChange registers a callback receiving a copy of the view after
// every change.
func (c *ViewController) OnViewChange(fn func(ViewState)) CallbackHandle {
	return c.onViewChange.add(fn)
}

// View returns a copy of the current view.
func (c *ViewController) View() ViewState {
	return c.view
}

// Mode returns the interaction state.
func (c *ViewController) Mode() ViewMode {
	return c.mode
}

// Velocity returns the last measured angular velocity in deg/ms.
func (c *ViewController) Velocity() float64 {
	if c.mode == ViewCoasting {
		return c.coast.velocity
	}
	return c.velocity
}

// Transform returns the wheel-to-screen transform for the current view.
func (c *ViewController) Transform() ViewTransform {
	return ViewTransformFor(c.opts.Center, c.view)
}

// Center returns the pivot given at construction.
func (c *ViewController) Center() Vec2 {
	return c.opts.Center
}

// Scheduler returns the scheduler driving inertia.
func (c *ViewController) Scheduler() Scheduler {
	return c.opts.Scheduler
}

// SetView replaces the view with one supplied by the owner. Scale is
// clamped. It does not emit.
func (c *ViewController) SetView(v ViewState) {
	if v.Scale == 0 {
		v.Scale = 1
	}
	v.Scale = c.clampScale(v.Scale)
	c.view = v
}

// SetDisabled toggles the disabled flag. Disabling cancels any gesture and
// any coasting.
func (c *ViewController) SetDisabled(disabled bool) {
	c.opts.Disabled = disabled
	if disabled {
		c.coast.stop()
		c.mode = ViewIdle
	}
}

// SetReadOnly toggles read-only mode: input no longer changes the view.
func (c *ViewController) SetReadOnly(readOnly bool) {
	c.opts.ReadOnly = readOnly
	if readOnly {
		c.coast.stop()
		c.mode = ViewIdle
	}
}

// Disabled reports whether the controller ignores input.
func (c *ViewController) Disabled() bool {
	return c.opts.Disabled
}

// Dispose cancels coasting and drops all observers. A disposed controller
// ignores input.
func (c *ViewController) Dispose() {
	c.coast.stop()
	c.mode = ViewIdle
	c.disposed = true
	c.onViewChange = observers[ViewState]{}
}

// Stop cancels coasting without snapping. A press that may become a drag
// calls it so the wheel stops under the pointer.
func (c *ViewController) Stop() {
	if c.mode == ViewCoasting {
		debugf("view: coasting stopped")
		c.coast.stop()
		c.mode = ViewIdle
	}
}

func (c *ViewController) accepting() bool {
	return !c.disposed && !c.opts.Disabled && !c.opts.ReadOnly
}

// pivot is the wheel centre on screen, where rotation is measured around.
func (c *ViewController) pivot() Vec2 {
	return c.opts.Center.Add(c.view.Translate)
}

// HandlePointerDown starts a rotate or pan gesture. It reports whether the
// event was consumed.
func (c *ViewController) HandlePointerDown(ev PointerEvent) bool {
	if !c.accepting() {
		return false
	}
	c.Stop()
	switch {
	case ev.Button == MouseButtonLeft && !c.opts.DisableRotation:
		p := c.pivot()
		c.mode = ViewDragging
		c.baseAngle = c.view.AngleDeg
		c.cumulative = 0
		c.pointerAngle = AngleFromPoint(p.X, p.Y, ev.X, ev.Y)
		c.lastAt = ev.At
		c.velocity = 0
		return true
	case (ev.Button == MouseButtonRight || ev.Button == MouseButtonMiddle) && c.opts.EnablePan:
		c.mode = ViewPanning
		c.lastPan = ev.Pos()
		return true
	}
	return false
}

// HandlePointerMove advances the current gesture.
func (c *ViewController) HandlePointerMove(ev PointerEvent) bool {
	if !c.accepting() {
		return false
	}
	switch c.mode {
	case ViewDragging:
		p := c.pivot()
		a := AngleFromPoint(p.X, p.Y, ev.X, ev.Y)
		step := ShortestAngleDelta(c.pointerAngle, a)
		c.cumulative += step
		c.pointerAngle = a
		if dt := ev.At - c.lastAt; dt > 0 {
			c.velocity = step / durationMillis(dt)
			c.lastAt = ev.At
		}
		next := c.view
		next.AngleDeg = c.baseAngle + c.cumulative
		c.set(next)
		return true
	case ViewPanning:
		delta := ev.Pos().Sub(c.lastPan)
		c.lastPan = ev.Pos()
		next := c.view
		next.Translate = next.Translate.Add(delta)
		c.set(next)
		return true
	}
	return false
}

// HandlePointerUp ends the current gesture. A fast rotate release starts
// coasting when inertia is on; otherwise the angle snaps.
func (c *ViewController) HandlePointerUp(ev PointerEvent) bool {
	switch c.mode {
	case ViewDragging:
		angle := c.baseAngle + c.cumulative
		v := c.velocity
		if ev.At > c.lastAt && ev.At-c.lastAt > velocityStaleAfter {
			v = 0
		}
		if c.accepting() && c.opts.Inertia && math.Abs(v) > c.opts.VelocityThreshold {
			c.startCoasting(angle, v)
			return true
		}
		c.mode = ViewIdle
		c.snap(angle)
		return true
	case ViewPanning:
		c.mode = ViewIdle
		return true
	}
	return false
}

// HandleWheel zooms by ZoomFactor per step, clamped to the scale bounds.
// Legal in any state.
func (c *ViewController) HandleWheel(ev WheelEvent) bool {
	if !c.accepting() || c.opts.DisableZoom || ev.DeltaY == 0 {
		return false
	}
	if ev.DeltaY > 0 {
		c.zoom(1 - c.opts.ZoomFactor)
	} else {
		c.zoom(1 + c.opts.ZoomFactor)
	}
	return true
}

// HandleKey applies the view shortcuts. Unmodified arrows are left for
// focus navigation and return false.
func (c *ViewController) HandleKey(ev KeyEvent) bool {
	if !c.accepting() || c.opts.DisableKeyboard {
		return false
	}
	shift := ev.Modifiers.Has(ModShift)
	alt := ev.Modifiers.Has(ModAlt)
	step := c.opts.PanStep

	switch ev.Key {
	case KeyArrowLeft, KeyArrowRight:
		switch {
		case shift && !c.opts.DisableRotation:
			d := c.opts.RotateStepDeg
			if ev.Key == KeyArrowLeft {
				d = -d
			}
			c.rotateBy(d)
			return true
		case alt && c.opts.EnablePan:
			if ev.Key == KeyArrowLeft {
				step = -step
			}
			c.panBy(Vec2{X: step})
			return true
		}
	case KeyArrowUp, KeyArrowDown:
		if alt && c.opts.EnablePan {
			if ev.Key == KeyArrowUp {
				step = -step
			}
			c.panBy(Vec2{Y: step})
			return true
		}
	case KeyPlus:
		if !c.opts.DisableZoom {
			c.zoom(1 + c.opts.ZoomFactor)
			return true
		}
	case KeyMinus:
		if !c.opts.DisableZoom {
			c.zoom(1 - c.opts.ZoomFactor)
			return true
		}
	case KeyZero:
		if !c.opts.DisableZoom {
			next := c.view
			next.Scale = c.clampScale(1)
			c.set(next)
			return true
		}
	case KeyR:
		if !c.opts.DisableRotation {
			c.Stop()
			next := c.view
			next.AngleDeg = 0
			c.set(next)
			return true
		}
	}
	return false
}

func (c *ViewController) rotateBy(deg float64) {
	c.Stop()
	next := c.view
	next.AngleDeg += deg
	c.set(next)
}

func (c *ViewController) panBy(d Vec2) {
	next := c.view
	next.Translate = next.Translate.Add(d)
	c.set(next)
}

func (c *ViewController) zoom(factor float64) {
	next := c.view
	next.Scale = c.clampScale(next.Scale * factor)
	c.set(next)
}

func (c *ViewController) clampScale(s float64) float64 {
	return math.Max(c.opts.MinScale, math.Min(c.opts.MaxScale, s))
}

// snap moves angle to the nearest snap target within tolerance, keeping
// accumulated turns, and applies it.
func (c *ViewController) snap(angle float64) {
	if c.opts.SnapToSectors && len(c.targets) > 0 {
		target := SnapAngle(angle, c.targets, c.opts.SnapToleranceDeg)
		if d := ShortestAngleDelta(angle, target); d != 0 {
			debugf("view: snap %.3f -> %.3f", angle, angle+d)
			angle += d
		}
	}
	next := c.view
	next.AngleDeg = angle
	c.set(next)
}

func (c *ViewController) startCoasting(angle, velocity float64) {
	c.mode = ViewCoasting
	c.coastAngle = angle
	c.coast.velocity = velocity
	debugf("view: coasting at %.4f deg/ms", velocity)
	c.coast.cancel = c.opts.Scheduler.Every(c.opts.FrameInterval, c.coastStep)
}

// coastStep is one inertia frame.
func (c *ViewController) coastStep() {
	if c.mode != ViewCoasting {
		return
	}
	c.coastAngle += c.coast.velocity * durationMillis(c.opts.FrameInterval)
	c.coast.velocity *= c.opts.Friction
	if math.Abs(c.coast.velocity) < c.opts.VelocityThreshold {
		angle := c.coastAngle
		c.coast.stop()
		c.mode = ViewIdle
		c.snap(angle)
		return
	}
	next := c.view
	next.AngleDeg = c.coastAngle
	c.set(next)
}

// set applies next (unless controlled) and emits it when it differs from
// the current view.
func (c *ViewController) set(next ViewState) {
	if next == c.view {
		return
	}
	if !c.opts.Controlled {
		c.view = next
	}
	c.onViewChange.emit(next)
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
