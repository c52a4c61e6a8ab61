package radial

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ScriptStep is one action of a gesture script.
type ScriptStep struct {
	Action    string   `json:"action"`
	Label     string   `json:"label,omitempty"`
	X         float64  `json:"x,omitempty"`
	Y         float64  `json:"y,omitempty"`
	FromX     float64  `json:"fromX,omitempty"`
	FromY     float64  `json:"fromY,omitempty"`
	ToX       float64  `json:"toX,omitempty"`
	ToY       float64  `json:"toY,omitempty"`
	Button    string   `json:"button,omitempty"`
	DeltaY    float64  `json:"deltaY,omitempty"`
	Key       string   `json:"key,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
	Frames    int      `json:"frames,omitempty"`
}

// Script is a deterministic sequence of input events for a Wheel. Every
// pointer event and tick advances a virtual clock by FrameInterval, so
// velocity and inertia replay identically.
type Script struct {
	Steps         []ScriptStep  `json:"steps"`
	FrameInterval time.Duration `json:"-"`
}

// ScriptTrace records what one step produced.
type ScriptTrace struct {
	Step    int
	Action  string
	Label   string
	Effects Effects
	View    ViewState
}

// LoadScript parses a JSON gesture script:
//
//	{"steps": [{"action": "drag", "fromX": 200, "fromY": 40, "toX": 360, "toY": 200, "frames": 8}]}
func LoadScript(jsonData []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
		}
	}
	s.FrameInterval = DefaultFrameInterval
	return &s, nil
}

func (st ScriptStep) validate() error {
	switch st.Action {
	case "press", "move", "release", "click", "drag", "wheel", "tick", "leave":
	case "key":
		if ParseKey(st.Key) == KeyUnknown {
			return fmt.Errorf("unknown key %q", st.Key)
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	if _, err := parseButton(st.Button); err != nil {
		return err
	}
	_, err := parseModifiers(st.Modifiers)
	return err
}

func parseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown button %q", s)
}

func parseModifiers(names []string) (KeyModifiers, error) {
	var m KeyModifiers
	for _, n := range names {
		switch strings.ToLower(n) {
		case "shift":
			m |= ModShift
		case "ctrl", "control":
			m |= ModCtrl
		case "alt", "option":
			m |= ModAlt
		case "meta", "cmd", "command":
			m |= ModMeta
		default:
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
	}
	return m, nil
}

// scriptRun is the replay state of one Run call.
type scriptRun struct {
	w     *Wheel
	clock time.Duration
	frame time.Duration
}

func (r *scriptRun) pointer(x, y float64, b MouseButton, m KeyModifiers) PointerEvent {
	r.clock += r.frame
	return PointerEvent{X: x, Y: y, Button: b, Modifiers: m, At: r.clock}
}

// Run replays the script into w and returns one trace entry per step.
func (s *Script) Run(w *Wheel) ([]ScriptTrace, error) {
	r := &scriptRun{w: w, frame: s.FrameInterval}
	if r.frame <= 0 {
		r.frame = DefaultFrameInterval
	}
	traces := make([]ScriptTrace, 0, len(s.Steps))
	for i, st := range s.Steps {
		effects, err := r.step(st)
		if err != nil {
			return traces, fmt.Errorf("gesture script step %d (%s): %w", i, st.Action, err)
		}
		traces = append(traces, ScriptTrace{
			Step:    i,
			Action:  st.Action,
			Label:   st.Label,
			Effects: effects,
			View:    w.View().View(),
		})
	}
	return traces, nil
}

func (r *scriptRun) step(st ScriptStep) (Effects, error) {
	btn, err := parseButton(st.Button)
	if err != nil {
		return nil, err
	}
	mods, err := parseModifiers(st.Modifiers)
	if err != nil {
		return nil, err
	}
	w := r.w
	switch st.Action {
	case "press":
		return w.HandlePointerDown(r.pointer(st.X, st.Y, btn, mods)), nil
	case "move":
		return w.HandlePointerMove(r.pointer(st.X, st.Y, btn, mods)), nil
	case "release":
		return w.HandlePointerUp(r.pointer(st.X, st.Y, btn, mods)), nil
	case "leave":
		return w.HandlePointerLeave(r.pointer(st.X, st.Y, btn, mods)), nil
	case "click":
		out := w.HandlePointerDown(r.pointer(st.X, st.Y, btn, mods))
		return append(out, w.HandlePointerUp(r.pointer(st.X, st.Y, btn, mods))...), nil
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		out := w.HandlePointerDown(r.pointer(st.FromX, st.FromY, btn, mods))
		steps := frames - 1
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps)
			x := st.FromX + (st.ToX-st.FromX)*t
			y := st.FromY + (st.ToY-st.FromY)*t
			out = append(out, w.HandlePointerMove(r.pointer(x, y, btn, mods))...)
		}
		out = append(out, w.HandlePointerUp(r.pointer(st.ToX, st.ToY, btn, mods))...)
		return out, nil
	case "wheel":
		return w.HandleWheel(WheelEvent{X: st.X, Y: st.Y, DeltaY: st.DeltaY, Modifiers: mods}), nil
	case "key":
		return w.HandleKey(KeyEvent{Key: ParseKey(st.Key), Modifiers: mods}), nil
	case "tick":
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		for range frames {
			r.clock += r.frame
			w.Tick()
		}
		return nil, nil
	}
	return nil, fmt.Errorf("unknown action %q", st.Action)
}
