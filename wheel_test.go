package radial

import (
	"slices"
	"strings"
	"testing"
)

func newTestWheel(t *testing.T, opts WheelOptions) *Wheel {
	t.Helper()
	opts.View.Center = testCenter
	w, err := NewWheel(emotionDataset(), opts)
	if err != nil {
		t.Fatalf("NewWheel: %v", err)
	}
	return w
}

// ringPoint returns the screen point at angle deg in the middle of lvl's
// band for an unrotated wheel.
func ringPoint(w *Wheel, lvl Level, deg float64) PointerEvent {
	p := PolarToCartesian(testCenter.X, testCenter.Y, w.Rings().Band(lvl).Mid(), deg)
	return PointerEvent{X: p.X, Y: p.Y}
}

func TestWheelSegmentAt(t *testing.T) {
	w := newTestWheel(t, WheelOptions{})
	tests := []struct {
		lvl  Level
		deg  float64
		want string
	}{
		{LevelPrimary, 90, "joy"},
		{LevelPrimary, 270, "fear"},
		{LevelSecondary, 45, "optimism"},
		{LevelSecondary, 135, "pride"},
		{LevelTertiary, 20, "hope"},
		{LevelTertiary, 60, "eagerness"},
	}
	for _, tt := range tests {
		ev := ringPoint(w, tt.lvl, tt.deg)
		seg, ok := w.SegmentAt(ev.X, ev.Y)
		if !ok || seg.ID != tt.want {
			t.Errorf("SegmentAt(%s, %f) = %q, %v, want %q", tt.lvl, tt.deg, seg.ID, ok, tt.want)
		}
	}
	// Tertiary ring over pride is empty.
	ev := ringPoint(w, LevelTertiary, 135)
	if seg, ok := w.SegmentAt(ev.X, ev.Y); ok {
		t.Errorf("SegmentAt over empty tertiary = %q", seg.ID)
	}
	if _, ok := w.SegmentAt(testCenter.X, testCenter.Y); ok {
		t.Error("centre hole hit a segment")
	}
}

func TestWheelSegmentAtRotated(t *testing.T) {
	w := newTestWheel(t, WheelOptions{})
	w.View().SetView(ViewState{AngleDeg: 180, Scale: 1})
	ev := ringPoint(w, LevelPrimary, 90)
	seg, ok := w.SegmentAt(ev.X, ev.Y)
	if !ok || seg.ID != "fear" {
		t.Errorf("SegmentAt after half turn = %q, want fear", seg.ID)
	}
}

func TestWheelClickToggles(t *testing.T) {
	w := newTestWheel(t, WheelOptions{})
	var changes [][]string
	w.OnChange(func(ids []string) { changes = append(changes, ids) })

	ev := ringPoint(w, LevelPrimary, 90)
	w.HandlePointerDown(ev)
	ev.X += 2 // inside the dead zone
	out := w.HandlePointerUp(ev)
	if !slices.Equal(w.Selection().Selected(), []string{"joy"}) {
		t.Fatalf("Selected = %v, want [joy]", w.Selection().Selected())
	}
	a, ok := out.Find(EffectAnnounce)
	if !ok || !strings.Contains(a.Message, "Joy selected") {
		t.Errorf("announce = %+v, %v", a, ok)
	}
	if len(changes) != 1 {
		t.Errorf("OnChange fired %d times, want 1", len(changes))
	}
}

func TestWheelControlledAnnouncesProposal(t *testing.T) {
	w := newTestWheel(t, WheelOptions{Selection: SelectionOptions{Controlled: true}})
	var proposed []string
	w.OnChange(func(ids []string) { proposed = ids })

	ev := ringPoint(w, LevelPrimary, 90)
	w.HandlePointerDown(ev)
	out := w.HandlePointerUp(ev)
	if !slices.Equal(proposed, []string{"joy"}) {
		t.Fatalf("proposed = %v, want [joy]", proposed)
	}
	if w.Selection().Len() != 0 {
		t.Errorf("controlled selection changed locally: %v", w.Selection().Selected())
	}
	if a, _ := out.Find(EffectAnnounce); a.Message != "Joy selected, 1 selected" {
		t.Errorf("announce = %q, want %q", a.Message, "Joy selected, 1 selected")
	}

	// The owner accepts, then the next click proposes removal.
	w.Selection().SetSelected(proposed)
	w.HandlePointerDown(ev)
	out = w.HandlePointerUp(ev)
	if len(proposed) != 0 {
		t.Errorf("proposed = %v, want empty", proposed)
	}
	if a, _ := out.Find(EffectAnnounce); a.Message != "Joy deselected, 0 selected" {
		t.Errorf("announce = %q, want %q", a.Message, "Joy deselected, 0 selected")
	}
}

func TestWheelDragDoesNotToggle(t *testing.T) {
	w := newTestWheel(t, WheelOptions{})
	down := ringPoint(w, LevelPrimary, 80)
	w.HandlePointerDown(down)
	move := ringPoint(w, LevelPrimary, 100)
	move.At = 16_000_000
	out := w.HandlePointerMove(move)
	if !out.Has(EffectCapturePointer) || !out.Has(EffectLockScroll) {
		t.Errorf("drag start effects = %v", out)
	}
	if c, _ := out.Find(EffectSetCursor); c.Cursor != CursorGrabbing {
		t.Errorf("cursor = %q, want grabbing", c.Cursor)
	}
	up := w.HandlePointerUp(move)
	if !up.Has(EffectReleasePointer) || !up.Has(EffectUnlockScroll) {
		t.Errorf("drag end effects = %v", up)
	}
	if w.Selection().Len() != 0 {
		t.Errorf("drag toggled %v", w.Selection().Selected())
	}
	if got := w.View().View().AngleDeg; !approxEqual(got, 20, 1e-9) {
		t.Errorf("AngleDeg = %f, want 20", got)
	}
}

func TestWheelClickOnDisabledSegment(t *testing.T) {
	w := newTestWheel(t, WheelOptions{Selection: SelectionOptions{DisabledIDs: []string{"fear"}}})
	ev := ringPoint(w, LevelPrimary, 270)
	out := w.HandlePointerMove(ev)
	if c, _ := out.Find(EffectSetCursor); c.Cursor != CursorNotAllowed {
		t.Errorf("cursor = %q, want not-allowed", c.Cursor)
	}
	w.HandlePointerDown(ev)
	w.HandlePointerUp(ev)
	if w.Selection().Len() != 0 {
		t.Error("disabled segment was selected")
	}
}

func TestWheelHover(t *testing.T) {
	w := newTestWheel(t, WheelOptions{})
	var hovered []string
	w.OnHover(func(id string) { hovered = append(hovered, id) })

	out := w.HandlePointerMove(ringPoint(w, LevelSecondary, 10))
	if c, _ := out.Find(EffectSetCursor); c.Cursor != CursorPointer {
		t.Errorf("cursor = %q, want pointer", c.Cursor)
	}
	if out := w.HandlePointerMove(ringPoint(w, LevelSecondary, 20)); out != nil {
		t.Errorf("same-segment move returned %v", out)
	}
	w.HandlePointerMove(PointerEvent{X: testCenter.X, Y: testCenter.Y})
	w.HandlePointerMove(ringPoint(w, LevelPrimary, 200))
	w.HandlePointerLeave(PointerEvent{})

	want := []string{"optimism", "", "fear", ""}
	if !slices.Equal(hovered, want) {
		t.Errorf("hover sequence = %q, want %q", hovered, want)
	}
}

func TestWheelFocusNavigation(t *testing.T) {
	w := newTestWheel(t, WheelOptions{})
	var focused []string
	w.OnFocus(func(id string) { focused = append(focused, id) })

	keys := []Key{KeyArrowRight, KeyArrowRight, KeyArrowRight, KeyArrowDown, KeyArrowRight, KeyArrowDown, KeyArrowUp, KeyArrowUp, KeyEnd, KeyHome, KeyArrowLeft}
	for _, k := range keys {
		out := w.HandleKey(KeyEvent{Key: k})
		if !out.Has(EffectFocusSegment) || !out.Has(EffectPreventDefault) {
			t.Errorf("%v: effects = %v", k, out)
		}
	}
	want := []string{"joy", "fear", "joy", "optimism", "pride", "pride", "joy", "joy", "fear", "joy", "fear"}
	if !slices.Equal(focused, want) {
		t.Errorf("focus sequence = %q\nwant %q", focused, want)
	}
}

func TestWheelEnterTogglesFocused(t *testing.T) {
	w := newTestWheel(t, WheelOptions{})
	w.SetFocus("pride")
	out := w.HandleKey(KeyEvent{Key: KeyEnter})
	if !out.Has(EffectAnnounce) || !w.Selection().IsSelected("pride") {
		t.Errorf("Enter did not select pride: %v", out)
	}
	w.HandleKey(KeyEvent{Key: KeySpace})
	if w.Selection().IsSelected("pride") {
		t.Error("Space did not deselect pride")
	}
}

func TestWheelEnterFallsBackToHover(t *testing.T) {
	w := newTestWheel(t, WheelOptions{})
	w.HandlePointerMove(ringPoint(w, LevelPrimary, 300))
	w.HandleKey(KeyEvent{Key: KeyEnter})
	if !w.Selection().IsSelected("fear") {
		t.Error("Enter did not toggle the hovered segment")
	}
}

func TestWheelEscape(t *testing.T) {
	w := newTestWheel(t, WheelOptions{Selection: SelectionOptions{Initial: []string{"joy", "hope"}}})
	out := w.HandleKey(KeyEvent{Key: KeyEscape})
	if w.Selection().Len() != 0 || !out.Has(EffectAnnounce) {
		t.Errorf("Escape left %v", w.Selection().Selected())
	}

	keep := newTestWheel(t, WheelOptions{
		Selection:          SelectionOptions{Initial: []string{"joy"}},
		DisableEscapeClear: true,
	})
	if out := keep.HandleKey(KeyEvent{Key: KeyEscape}); out != nil {
		t.Errorf("Escape with DisableEscapeClear returned %v", out)
	}
	if keep.Selection().Len() != 1 {
		t.Error("Escape cleared with DisableEscapeClear")
	}
}

func TestWheelViewKeysPassThrough(t *testing.T) {
	w := newTestWheel(t, WheelOptions{})
	out := w.HandleKey(KeyEvent{Key: KeyArrowRight, Modifiers: ModShift})
	if !out.Has(EffectPreventDefault) || out.Has(EffectFocusSegment) {
		t.Errorf("effects = %v", out)
	}
	if got := w.View().View().AngleDeg; got != 5 {
		t.Errorf("AngleDeg = %f, want 5", got)
	}
	if out := w.HandleWheel(WheelEvent{DeltaY: -1}); !out.Has(EffectPreventDefault) {
		t.Errorf("wheel effects = %v", out)
	}
}

func TestWheelDisabled(t *testing.T) {
	w := newTestWheel(t, WheelOptions{})
	w.SetDisabled(true)
	ev := ringPoint(w, LevelPrimary, 90)
	if w.HandlePointerDown(ev) != nil || w.HandlePointerUp(ev) != nil ||
		w.HandleKey(KeyEvent{Key: KeyArrowRight}) != nil || w.HandleWheel(WheelEvent{DeltaY: 1}) != nil {
		t.Error("disabled wheel returned effects")
	}
	if w.Selection().Len() != 0 {
		t.Error("disabled wheel selected")
	}
	if !w.Accessibility().Disabled {
		t.Error("report not disabled")
	}
}

// scrollLocks is the number of LockScroll effects not yet matched by an
// UnlockScroll.
func scrollLocks(batches ...Effects) int {
	n := 0
	for _, es := range batches {
		for _, e := range es {
			switch e.Kind {
			case EffectLockScroll:
				n++
			case EffectUnlockScroll:
				n--
			}
		}
	}
	return n
}

func TestWheelDisableMidDragReleases(t *testing.T) {
	tests := []struct {
		name string
		stop func(w *Wheel) Effects
	}{
		{"disable", func(w *Wheel) Effects { return w.SetDisabled(true) }},
		{"dispose", func(w *Wheel) Effects { return w.Dispose() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWheel(t, WheelOptions{})
			down := ringPoint(w, LevelPrimary, 10)
			down.PointerID = 3
			var got []Effects
			got = append(got, w.HandlePointerDown(down))
			for _, deg := range []float64{40, 80} {
				ev := ringPoint(w, LevelPrimary, deg)
				ev.PointerID = 3
				got = append(got, w.HandlePointerMove(ev))
			}
			if n := scrollLocks(got...); n != 1 {
				t.Fatalf("locks after drag start = %d, want 1", n)
			}

			out := tt.stop(w)
			got = append(got, out)
			if n := scrollLocks(got...); n != 0 {
				t.Errorf("locks after %s = %d, want 0 (effects %v)", tt.name, n, out)
			}
			if r, ok := out.Find(EffectReleasePointer); !ok || r.PointerID != 3 {
				t.Errorf("release = %+v, %v, want pointer 3", r, ok)
			}
			if tt.name == "disable" {
				w.SetDisabled(false)
			}
			if out := w.HandlePointerUp(ringPoint(w, LevelPrimary, 80)); out != nil {
				t.Errorf("up after %s = %v, want nothing", tt.name, out)
			}
		})
	}
}

func TestWheelDisableWithoutDrag(t *testing.T) {
	w := newTestWheel(t, WheelOptions{})
	w.HandlePointerDown(ringPoint(w, LevelPrimary, 90))
	if out := w.SetDisabled(true); out != nil {
		t.Errorf("SetDisabled after a plain press = %v, want nothing", out)
	}
	if out := w.SetDisabled(false); out != nil {
		t.Errorf("SetDisabled(false) = %v", out)
	}
}

func TestWheelReadOnly(t *testing.T) {
	w := newTestWheel(t, WheelOptions{})
	w.SetReadOnly(true)
	ev := ringPoint(w, LevelPrimary, 90)
	w.HandlePointerDown(ev)
	w.HandlePointerUp(ev)
	if w.Selection().Len() != 0 {
		t.Error("read-only wheel selected")
	}
	w.HandleKey(KeyEvent{Key: KeyArrowRight, Modifiers: ModShift})
	if w.View().View().AngleDeg != 5 {
		t.Error("read-only wheel stopped rotating")
	}
}

func TestWheelDispose(t *testing.T) {
	w := newTestWheel(t, WheelOptions{View: ViewOptions{Inertia: true}})
	hovered := 0
	w.OnHover(func(string) { hovered++ })
	w.Dispose()
	if w.HandlePointerMove(ringPoint(w, LevelPrimary, 90)) != nil {
		t.Error("disposed wheel returned effects")
	}
	if hovered != 0 {
		t.Error("hover fired after Dispose")
	}
}

func TestWheelAccessibility(t *testing.T) {
	w := newTestWheel(t, WheelOptions{
		Selection:      SelectionOptions{Initial: []string{"pride"}, DisabledIDs: []string{"hope"}},
		LabelFormatter: strings.ToUpper,
	})
	w.SetFocus("anxiety")
	r := w.Accessibility()
	if r.Label != DefaultAriaLabel || !r.Multiselectable || r.MaxSelected != 0 || r.ActiveDescendant != "anxiety" {
		t.Errorf("report header = %+v", r)
	}
	if len(r.Items) != 7 {
		t.Fatalf("items = %d, want 7", len(r.Items))
	}
	pride, _ := r.Item("pride")
	if !pride.Selected || pride.PosInSet != 2 || pride.SetSize != 3 || pride.Label != "PRIDE, secondary" {
		t.Errorf("pride = %+v", pride)
	}
	hope, _ := r.Item("hope")
	if !hope.Disabled || hope.Level != LevelTertiary {
		t.Errorf("hope = %+v", hope)
	}
}

func TestWheelItemLabelOverride(t *testing.T) {
	w := newTestWheel(t, WheelOptions{
		AriaLabel: "Feelings",
		ItemLabel: func(c Category) string { return "emotion " + c.ID },
		Selection: SelectionOptions{Mode: SelectionSingle},
	})
	r := w.Accessibility()
	if r.Label != "Feelings" || r.Multiselectable || r.MaxSelected != 1 {
		t.Errorf("report header = %+v", r)
	}
	if it, _ := r.Item("joy"); it.Label != "emotion joy" {
		t.Errorf("joy label = %q", it.Label)
	}
}

func TestWheelConfigErrors(t *testing.T) {
	_, err := NewWheel(emotionDataset(), WheelOptions{Rings: Rings{{Inner: 10, Outer: 5}}})
	if err == nil {
		t.Error("inverted ring accepted")
	}
	_, err = NewWheel(emotionDataset(), WheelOptions{Radius: -1})
	if err == nil {
		t.Error("negative radius accepted")
	}
}
