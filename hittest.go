package radial

import "math"

// RingBand is the radial extent of one ring in wheel units.
type RingBand struct {
	Inner, Outer float64
}

// Contains reports whether r lies in [Inner, Outer).
func (b RingBand) Contains(r float64) bool {
	return r >= b.Inner && r < b.Outer
}

// Mid returns the radius halfway through the band, where labels sit.
func (b RingBand) Mid() float64 {
	return (b.Inner + b.Outer) / 2
}

// Rings holds one band per level, indexed by Level. Primary is innermost.
type Rings [3]RingBand

// DefaultRings splits radius into three bands with a hole in the middle:
// primary 20-45%, secondary 45-72%, tertiary 72-100%.
func DefaultRings(radius float64) Rings {
	return Rings{
		LevelPrimary:   {Inner: radius * 0.20, Outer: radius * 0.45},
		LevelSecondary: {Inner: radius * 0.45, Outer: radius * 0.72},
		LevelTertiary:  {Inner: radius * 0.72, Outer: radius},
	}
}

// Band returns the band for lvl.
func (r Rings) Band(lvl Level) RingBand {
	if !lvl.Valid() {
		return RingBand{}
	}
	return r[lvl]
}

// Outer returns the outermost radius.
func (r Rings) Outer() float64 {
	return math.Max(r[LevelPrimary].Outer, math.Max(r[LevelSecondary].Outer, r[LevelTertiary].Outer))
}

// LevelAt returns the level whose band contains radius r.
func (r Rings) LevelAt(radius float64) (Level, bool) {
	for lvl := LevelPrimary; lvl <= LevelTertiary; lvl++ {
		if r[lvl].Contains(radius) {
			return lvl, true
		}
	}
	return 0, false
}

func (r Rings) validate() error {
	for lvl := LevelPrimary; lvl <= LevelTertiary; lvl++ {
		b := r[lvl]
		if b.Inner < 0 || b.Outer <= b.Inner {
			return configError("rings", "%s band [%v, %v] is empty or negative", lvl, b.Inner, b.Outer)
		}
	}
	return nil
}

// hitTester resolves screen points to segments of a layout.
type hitTester struct {
	layout *Layout
	rings  Rings
}

// segmentAt maps a screen point through the inverse view transform to
// wheel polar coordinates and returns the segment under it.
func (h hitTester) segmentAt(t ViewTransform, x, y float64) (Segment, bool) {
	wx, wy, ok := t.Inverse(x, y)
	if !ok {
		return Segment{}, false
	}
	c := t.Center
	dx, dy := wx-c.X, wy-c.Y
	lvl, ok := h.rings.LevelAt(math.Hypot(dx, dy))
	if !ok {
		return Segment{}, false
	}
	angle := AngleFromPoint(c.X, c.Y, wx, wy)
	for _, s := range h.layout.Level(lvl) {
		if s.Contains(angle) {
			return s, true
		}
	}
	return Segment{}, false
}
