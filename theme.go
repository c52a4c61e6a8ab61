package radial

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a non-premultiplied RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// Hex returns the colour as a CSS hex string, dropping alpha.
func (c Color) Hex() string {
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
}

// RGBA8 returns the components scaled to 0-255.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// WithAlpha returns c with alpha a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Mix blends c toward o by t in [0, 1].
func (c Color) Mix(o Color, t float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func hexByte(v float64) string {
	const hex = "0123456789abcdef"
	b := to8(v)
	return string([]byte{hex[b>>4], hex[b&0x0f]})
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#'
// is optional.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 3, 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// mustHex is ParseHexColor for package-level literals.
func mustHex(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// SegmentState is a bitmask of the interaction states of one segment.
type SegmentState uint8

const (
	StateHovered SegmentState = 1 << iota
	StateSelected
	StateDisabled
	StateFocused
)

// Has reports whether every bit of o is set.
func (s SegmentState) Has(o SegmentState) bool {
	return s&o == o
}

// Theme holds the presentation tokens handed to renderers.
type Theme struct {
	Name string

	Primary    Color
	Secondary  Color
	Background Color
	Text       Color
	Border     Color
	Hover      Color
	Selected   Color
	Disabled   Color
	// FocusOutline strokes the keyboard-focused segment.
	FocusOutline Color

	DisabledOpacity float64
	HoverOpacity    float64
	// HoverScale is the emphasis applied to the hovered segment.
	HoverScale float64
	// HoverDuration is the emphasis tween length in seconds.
	HoverDuration float32

	// LabelSizes are the label font sizes in pixels, indexed by Level.
	LabelSizes [3]float64
	FontFamily string
}

// DefaultTheme is the light theme.
var DefaultTheme = Theme{
	Name:            "default",
	Primary:         mustHex("#3b82f6"),
	Secondary:       mustHex("#8b5cf6"),
	Background:      mustHex("#ffffff"),
	Text:            mustHex("#1f2937"),
	Border:          mustHex("#e5e7eb"),
	Hover:           mustHex("#f3f4f6"),
	Selected:        mustHex("#dbeafe"),
	Disabled:        mustHex("#9ca3af"),
	FocusOutline:    mustHex("#2563eb"),
	DisabledOpacity: 0.5,
	HoverOpacity:    0.9,
	HoverScale:      1.05,
	HoverDuration:   0.2,
	LabelSizes:      [3]float64{16, 14, 12},
	FontFamily:      "Inter, system-ui, sans-serif",
}

// DarkTheme is the dark theme.
var DarkTheme = Theme{
	Name:            "dark",
	Primary:         mustHex("#60a5fa"),
	Secondary:       mustHex("#a78bfa"),
	Background:      mustHex("#1f2937"),
	Text:            mustHex("#f9fafb"),
	Border:          mustHex("#374151"),
	Hover:           mustHex("#374151"),
	Selected:        mustHex("#1e40af"),
	Disabled:        mustHex("#6b7280"),
	FocusOutline:    mustHex("#93c5fd"),
	DisabledOpacity: 0.5,
	HoverOpacity:    0.9,
	HoverScale:      1.05,
	HoverDuration:   0.2,
	LabelSizes:      [3]float64{16, 14, 12},
	FontFamily:      "Inter, system-ui, sans-serif",
}

// ColorfulTheme is the high-saturation theme.
var ColorfulTheme = Theme{
	Name:            "colorful",
	Primary:         mustHex("#ff6b6b"),
	Secondary:       mustHex("#4ecdc4"),
	Background:      mustHex("#ffeaa7"),
	Text:            mustHex("#2d3436"),
	Border:          mustHex("#dddddd"),
	Hover:           mustHex("#fab1a0"),
	Selected:        mustHex("#fd79a8"),
	Disabled:        mustHex("#b2bec3"),
	FocusOutline:    mustHex("#6c5ce7"),
	DisabledOpacity: 0.5,
	HoverOpacity:    0.9,
	HoverScale:      1.05,
	HoverDuration:   0.2,
	LabelSizes:      [3]float64{20, 16, 12},
	FontFamily:      "Comic Sans MS, cursive, sans-serif",
}

// ThemeByName returns one of the built-in themes.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "", "default", "light":
		return DefaultTheme, nil
	case "dark":
		return DarkTheme, nil
	case "colorful", "colourful":
		return ColorfulTheme, nil
	}
	return Theme{}, configError("theme", "unknown theme %q", name)
}

// BaseFill is the resting colour of c: its own Color token when it parses,
// otherwise a level colour from the theme.
func (t Theme) BaseFill(c Category) Color {
	if c.Color != "" {
		if col, err := ParseHexColor(c.Color); err == nil {
			return col
		}
		debugf("theme: ignoring bad color %q on %q", c.Color, c.ID)
	}
	switch c.Level {
	case LevelPrimary:
		return t.Primary
	case LevelSecondary:
		return t.Secondary
	default:
		return t.Secondary.Mix(t.Background, 0.45)
	}
}

// SegmentFill resolves the fill for a segment in state. Precedence is
// disabled, then selected, then hovered, then base.
func (t Theme) SegmentFill(base Color, state SegmentState) Color {
	switch {
	case state.Has(StateDisabled):
		return t.Disabled.WithAlpha(t.DisabledOpacity)
	case state.Has(StateSelected):
		return t.Selected
	case state.Has(StateHovered):
		return t.Hover.WithAlpha(t.HoverOpacity)
	}
	return base
}

// Stroke returns the outline colour and width for a segment in state.
func (t Theme) Stroke(state SegmentState) (Color, float64) {
	if state.Has(StateFocused) {
		return t.FocusOutline, 3
	}
	if state.Has(StateSelected) {
		return t.Text, 2
	}
	return t.Border, 1
}

// LabelSize returns the label font size for lvl.
func (t Theme) LabelSize(lvl Level) float64 {
	if !lvl.Valid() {
		return t.LabelSizes[LevelTertiary]
	}
	return t.LabelSizes[lvl]
}

// SegmentStateOf collects the interaction state of id on w.
func (w *Wheel) SegmentStateOf(id string) SegmentState {
	var s SegmentState
	if id != "" && w.hovered == id {
		s |= StateHovered
	}
	if w.selection.IsSelected(id) {
		s |= StateSelected
	}
	if w.disabled || w.selection.ItemDisabled(id) {
		s |= StateDisabled
	}
	if id != "" && w.focus.id == id {
		s |= StateFocused
	}
	return s
}
