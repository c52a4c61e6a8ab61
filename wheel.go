package radial

import "math"

// defaultDragDeadZone is how far, in pixels, a press may travel and still
// count as a click.
const defaultDragDeadZone = 4.0

// DefaultRadius is the outer radius used when neither Rings nor Radius is
// set. It fits a 400x400 view box with a margin.
const DefaultRadius = 190.0

// WheelOptions configures a Wheel. Zero values take documented defaults.
type WheelOptions struct {
	Layout    LayoutOptions
	Selection SelectionOptions
	// View.Center defaults to (Outer+10, Outer+10), the centre of the
	// wheel's SVG view box.
	View        ViewOptions
	InitialView *ViewState

	// Rings places the levels. Zero means DefaultRings(Radius).
	Rings  Rings
	Radius float64

	// DragDeadZone is the click tolerance in pixels. Default 4.
	DragDeadZone float64

	DisableEscapeClear bool

	// LabelFormatter rewrites display labels.
	LabelFormatter func(label string) string
	// ItemLabel overrides the accessible label of each item.
	ItemLabel func(c Category) string
	// AriaLabel names the whole wheel. Default DefaultAriaLabel.
	AriaLabel string
}

// press is the pointer press being tracked for click-versus-drag.
type press struct {
	active    bool
	event     PointerEvent
	segmentID string
	dragging  bool
}

// Wheel binds a layout, a selection and a view controller behind one event
// API. Hosts forward raw input to the Handle* methods and perform the
// returned effects.
type Wheel struct {
	opts      WheelOptions
	layout    *Layout
	selection *Selection
	view      *ViewController
	hit       hitTester
	focus     focusRing

	press    press
	hovered  string
	disabled bool
	disposed bool

	onHover observers[string]
	onFocus observers[string]
}

// NewWheel lays out ds and builds its controllers.
func NewWheel(ds Dataset, opts WheelOptions) (*Wheel, error) {
	layout, err := NewLayout(ds, opts.Layout)
	if err != nil {
		return nil, err
	}
	return NewWheelFromLayout(layout, opts)
}

// NewWheelFromLayout builds a wheel over an existing layout.
func NewWheelFromLayout(layout *Layout, opts WheelOptions) (*Wheel, error) {
	if opts.Radius < 0 {
		return nil, configError("radius", "must not be negative, got %v", opts.Radius)
	}
	if opts.Radius == 0 {
		opts.Radius = DefaultRadius
	}
	if opts.Rings == (Rings{}) {
		opts.Rings = DefaultRings(opts.Radius)
	}
	if err := opts.Rings.validate(); err != nil {
		return nil, err
	}
	if opts.DragDeadZone <= 0 {
		opts.DragDeadZone = defaultDragDeadZone
	}
	if opts.AriaLabel == "" {
		opts.AriaLabel = DefaultAriaLabel
	}
	if opts.View.Center == (Vec2{}) {
		m := opts.Rings.Outer() + svgMargin
		opts.View.Center = Vec2{X: m, Y: m}
	}
	if len(opts.View.SectorCenters) == 0 {
		opts.View.SectorCenters = layout.SectorCenters()
	}

	sel, err := NewSelection(layout, opts.Selection)
	if err != nil {
		return nil, err
	}
	view, err := NewViewController(opts.InitialView, opts.View)
	if err != nil {
		return nil, err
	}
	w := &Wheel{
		opts:      opts,
		layout:    layout,
		selection: sel,
		view:      view,
		hit:       hitTester{layout: layout, rings: opts.Rings},
		focus:     focusRing{layout: layout},
		disabled:  opts.Selection.Disabled || opts.View.Disabled,
	}
	return w, nil
}

// Layout returns the wheel's layout.
func (w *Wheel) Layout() *Layout { return w.layout }

// Selection returns the selection controller.
func (w *Wheel) Selection() *Selection { return w.selection }

// View returns the view controller.
func (w *Wheel) View() *ViewController { return w.view }

// Rings returns the ring bands.
func (w *Wheel) Rings() Rings { return w.opts.Rings }

// Hovered returns the hovered segment id, or "".
func (w *Wheel) Hovered() string { return w.hovered }

// Focused returns the focused segment id, or "".
func (w *Wheel) Focused() string { return w.focus.id }

// Disabled reports whether the wheel ignores input.
func (w *Wheel) Disabled() bool { return w.disabled }

// Label returns the display label for id after LabelFormatter.
func (w *Wheel) Label(id string) string {
	c, ok := w.layout.Category(id)
	if !ok {
		return id
	}
	label := c.Label
	if label == "" {
		label = c.ID
	}
	if w.opts.LabelFormatter != nil {
		label = w.opts.LabelFormatter(label)
	}
	return label
}

// OnChange registers a selection observer.
func (w *Wheel) OnChange(fn func(ids []string)) CallbackHandle {
	return w.selection.OnChange(fn)
}

// OnViewChange registers a view observer.
func (w *Wheel) OnViewChange(fn func(ViewState)) CallbackHandle {
	return w.view.OnViewChange(fn)
}

// OnHover registers a callback receiving the hovered id, "" on leave.
func (w *Wheel) OnHover(fn func(id string)) CallbackHandle {
	return w.onHover.add(fn)
}

// OnFocus registers a callback receiving the focused id.
func (w *Wheel) OnFocus(fn func(id string)) CallbackHandle {
	return w.onFocus.add(fn)
}

// SegmentAt returns the segment under the screen point (x, y).
func (w *Wheel) SegmentAt(x, y float64) (Segment, bool) {
	return w.hit.segmentAt(w.view.Transform(), x, y)
}

// SetFocus moves keyboard focus to id. "" clears focus.
func (w *Wheel) SetFocus(id string) bool {
	if !w.focus.set(id) {
		return false
	}
	w.onFocus.emit(id)
	return true
}

// SetDisabled disables or enables every interaction. Disabling mid-drag
// returns the release of the pointer capture and scroll lock the drag took.
func (w *Wheel) SetDisabled(disabled bool) Effects {
	w.disabled = disabled
	w.selection.SetDisabled(disabled)
	w.view.SetDisabled(disabled)
	if !disabled {
		return nil
	}
	return w.abandonPress()
}

// SetReadOnly freezes the selection while keeping the view interactive.
func (w *Wheel) SetReadOnly(readOnly bool) {
	w.selection.SetReadOnly(readOnly)
}

// Dispose cancels coasting and detaches every observer. Like SetDisabled it
// returns the release effects of a drag still in progress.
func (w *Wheel) Dispose() Effects {
	if w.disposed {
		return nil
	}
	out := w.abandonPress()
	w.view.Dispose()
	w.onHover = observers[string]{}
	w.onFocus = observers[string]{}
	w.disposed = true
	return out
}

// abandonPress drops the tracked press. A press that became a drag still
// holds the pointer and the scroll lock, so their release is returned.
func (w *Wheel) abandonPress() Effects {
	p := w.press
	w.press = press{}
	if !p.dragging {
		return nil
	}
	return Effects{}.release(p.event.PointerID).cursor(CursorDefault)
}

// Tick advances inertia by one frame when the view runs on a
// ManualScheduler.
func (w *Wheel) Tick() {
	if m, ok := w.view.Scheduler().(*ManualScheduler); ok {
		m.Tick()
	}
}

func (w *Wheel) accepting(op string) bool {
	debugCheckDisposed(w.disposed, op)
	return !w.disposed && !w.disabled
}

// HandlePointerDown records a press. Rotation or panning starts only once
// the pointer leaves the dead zone.
func (w *Wheel) HandlePointerDown(ev PointerEvent) Effects {
	if !w.accepting("HandlePointerDown") {
		return nil
	}
	w.view.Stop()
	seg, _ := w.SegmentAt(ev.X, ev.Y)
	w.press = press{active: true, event: ev, segmentID: seg.ID}
	return Effects{}.preventDefault()
}

// HandlePointerMove updates hover, or drives a drag once the dead zone is
// exceeded.
func (w *Wheel) HandlePointerMove(ev PointerEvent) Effects {
	if !w.accepting("HandlePointerMove") {
		return nil
	}
	var out Effects
	if !w.press.active {
		return w.updateHover(ev.X, ev.Y)
	}
	if !w.press.dragging {
		start := w.press.event
		if math.Hypot(ev.X-start.X, ev.Y-start.Y) <= w.opts.DragDeadZone {
			return nil
		}
		if !w.view.HandlePointerDown(start) {
			return nil
		}
		w.press.dragging = true
		out = out.capture(ev.PointerID).cursor(CursorGrabbing)
	}
	if w.view.HandlePointerMove(ev) {
		out = out.preventDefault()
	}
	return out
}

// HandlePointerUp ends a drag, or toggles the pressed segment when the
// pointer never left the dead zone and is still over it.
func (w *Wheel) HandlePointerUp(ev PointerEvent) Effects {
	if !w.accepting("HandlePointerUp") {
		return nil
	}
	p := w.press
	w.press = press{}
	if !p.active {
		return nil
	}
	if p.dragging {
		w.view.HandlePointerUp(ev)
		out := Effects{}.release(ev.PointerID).cursor(CursorGrab)
		return out.preventDefault()
	}
	if p.event.Button != MouseButtonLeft || p.segmentID == "" {
		return nil
	}
	if seg, ok := w.SegmentAt(ev.X, ev.Y); !ok || seg.ID != p.segmentID {
		return nil
	}
	return w.toggle(p.segmentID)
}

// HandlePointerLeave clears hover and ends any drag.
func (w *Wheel) HandlePointerLeave(ev PointerEvent) Effects {
	if !w.accepting("HandlePointerLeave") {
		return nil
	}
	var out Effects
	if w.press.dragging {
		w.view.HandlePointerUp(ev)
		out = out.release(ev.PointerID)
	}
	w.press = press{}
	if w.hovered != "" {
		w.hovered = ""
		w.onHover.emit("")
		out = out.cursor(CursorDefault)
	}
	return out
}

// HandleWheel zooms the view.
func (w *Wheel) HandleWheel(ev WheelEvent) Effects {
	if !w.accepting("HandleWheel") {
		return nil
	}
	if !w.view.HandleWheel(ev) {
		return nil
	}
	return Effects{}.preventDefault()
}

// HandleKey routes a key press to selection, focus or the view.
func (w *Wheel) HandleKey(ev KeyEvent) Effects {
	if !w.accepting("HandleKey") || w.opts.View.DisableKeyboard {
		return nil
	}
	switch ev.Key {
	case KeyEscape:
		if w.opts.DisableEscapeClear || !w.selection.Clear() {
			return nil
		}
		return Effects{}.announce("selection cleared").preventDefault()
	case KeyEnter, KeySpace:
		id := w.focus.id
		if id == "" {
			id = w.hovered
		}
		if id == "" {
			return nil
		}
		return w.toggle(id).preventDefault()
	}
	if ev.Modifiers == 0 {
		if id, ok := w.focus.move(ev.Key); ok {
			if id == "" {
				return nil
			}
			w.onFocus.emit(id)
			return Effects{}.focus(id).preventDefault()
		}
	}
	if w.view.HandleKey(ev) {
		return Effects{}.preventDefault()
	}
	return nil
}

// toggle flips id and announces the selection it produced.
func (w *Wheel) toggle(id string) Effects {
	next, ok := w.selection.toggle(id)
	if !ok {
		return nil
	}
	return Effects{}.announce(w.announcement(id, next))
}

// updateHover recomputes the hovered segment and returns a cursor effect
// when it changed.
func (w *Wheel) updateHover(x, y float64) Effects {
	seg, ok := w.SegmentAt(x, y)
	id := ""
	if ok {
		id = seg.ID
	}
	if id == w.hovered {
		return nil
	}
	w.hovered = id
	w.onHover.emit(id)
	return Effects{}.cursor(w.cursorFor(id))
}

func (w *Wheel) cursorFor(id string) Cursor {
	switch {
	case id == "":
		return CursorGrab
	case w.selection.ItemDisabled(id):
		return CursorNotAllowed
	case w.selection.ReadOnly():
		return CursorDefault
	default:
		return CursorPointer
	}
}
