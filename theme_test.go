package radial

import (
	"errors"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ffffff", Color{1, 1, 1, 1}},
		{"000", Color{0, 0, 0, 1}},
		{"#f00", Color{1, 0, 0, 1}},
		{"#00ff0080", Color{0, 1, 0, 128.0 / 255}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if !approxEqual(got.R, tt.want.R, epsilon) || !approxEqual(got.G, tt.want.G, epsilon) ||
			!approxEqual(got.B, tt.want.B, epsilon) || !approxEqual(got.A, tt.want.A, epsilon) {
			t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "#12", "#zzzzzz", "#12345"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) succeeded", bad)
		}
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#3b82f6", "#000000", "#fbbf24"} {
		c, _ := ParseHexColor(s)
		if got := c.Hex(); got != s {
			t.Errorf("Hex = %q, want %q", got, s)
		}
	}
	r, g, b, a := Color{R: 2, G: -1, B: 0.5, A: 1}.RGBA8()
	if r != 255 || g != 0 || b != 128 || a != 255 {
		t.Errorf("RGBA8 = %d %d %d %d", r, g, b, a)
	}
}

func TestThemeByName(t *testing.T) {
	for name, want := range map[string]string{"": "default", "Dark": "dark", "colourful": "colorful"} {
		th, err := ThemeByName(name)
		if err != nil || th.Name != want {
			t.Errorf("ThemeByName(%q) = %q, %v, want %q", name, th.Name, err, want)
		}
	}
	if _, err := ThemeByName("neon"); !errors.Is(err, ErrConfiguration) {
		t.Errorf("ThemeByName(neon) err = %v, want ErrConfiguration", err)
	}
}

func TestSegmentFillPrecedence(t *testing.T) {
	th := DefaultTheme
	base := ColorWhite
	tests := []struct {
		name  string
		state SegmentState
		want  Color
	}{
		{"rest", 0, base},
		{"hovered", StateHovered, th.Hover.WithAlpha(th.HoverOpacity)},
		{"selected beats hover", StateSelected | StateHovered, th.Selected},
		{"disabled beats all", StateDisabled | StateSelected | StateHovered, th.Disabled.WithAlpha(th.DisabledOpacity)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := th.SegmentFill(base, tt.state); got != tt.want {
				t.Errorf("SegmentFill = %+v, want %+v", got, tt.want)
			}
		})
	}
	if _, w := th.Stroke(StateFocused | StateSelected); w != 3 {
		t.Errorf("focused stroke width = %f, want 3", w)
	}
}

func TestBaseFill(t *testing.T) {
	th := DefaultTheme
	if got := th.BaseFill(Primary("a", "")); got != th.Primary {
		t.Errorf("primary base = %+v", got)
	}
	c := Secondary("b", "", "a")
	c.Color = "#ff0000"
	if got := th.BaseFill(c).Hex(); got != "#ff0000" {
		t.Errorf("own colour = %s, want #ff0000", got)
	}
	c.Color = "not-a-colour"
	if got := th.BaseFill(c); got != th.Secondary {
		t.Errorf("bad colour falls back to %+v, want secondary", got)
	}
}

func TestWheelSegmentStateOf(t *testing.T) {
	w := newTestWheel(t, WheelOptions{Selection: SelectionOptions{DisabledIDs: []string{"fear"}}})
	w.Selection().Toggle("joy")
	w.SetFocus("joy")
	w.HandlePointerMove(ringPoint(w, LevelPrimary, 90))

	got := w.SegmentStateOf("joy")
	if !got.Has(StateSelected | StateFocused | StateHovered) {
		t.Errorf("joy state = %b", got)
	}
	if got := w.SegmentStateOf("fear"); got != StateDisabled {
		t.Errorf("fear state = %b, want disabled", got)
	}
	if got := w.SegmentStateOf(""); got != 0 {
		t.Errorf("empty id state = %b", got)
	}
}
