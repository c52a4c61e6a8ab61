package radial

import (
	"math"
	"strconv"
	"strings"
)

// All angles in this package are degrees, 0 at 12 o'clock, increasing
// clockwise in screen space (Y grows downward).

// NormalizeAngle maps any real angle into [0, 360). NaN and Inf map to 0.
func NormalizeAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	// -1e-15 + 360 rounds to 360.
	if a >= 360 {
		a = 0
	}
	return a
}

// ShortestAngleDelta returns the signed rotation in (-180, 180] that takes
// from to to along the shorter way around the circle.
func ShortestAngleDelta(from, to float64) float64 {
	d := NormalizeAngle(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// circularDistance returns |ShortestAngleDelta(a, b)|.
func circularDistance(a, b float64) float64 {
	return math.Abs(ShortestAngleDelta(a, b))
}

// PolarToCartesian returns the point at radius and angle from (cx, cy).
func PolarToCartesian(cx, cy, radius, angleDeg float64) Vec2 {
	sin, cos := math.Sincos(angleDeg * math.Pi / 180)
	return Vec2{X: cx + radius*sin, Y: cy - radius*cos}
}

// AngleFromPoint is the inverse of PolarToCartesian: the angle of (x, y)
// around (cx, cy). The centre itself maps to 0.
func AngleFromPoint(cx, cy, x, y float64) float64 {
	dx := x - cx
	dy := y - cy
	if dx == 0 && dy == 0 {
		return 0
	}
	return NormalizeAngle(math.Atan2(dx, -dy) * 180 / math.Pi)
}

// ArcPath is an annular wedge between two radii and two angles.
//
//	OuterEnd --outer arc--> OuterStart
//	    |                       |
//	InnerEnd <--inner arc-- InnerStart
//
// The outer arc is walked from the end angle back to the start angle and the
// inner arc forward again, so the outline closes without self-intersection.
type ArcPath struct {
	Center      Vec2
	InnerRadius float64
	OuterRadius float64
	StartDeg    float64
	EndDeg      float64

	OuterStart, OuterEnd Vec2
	InnerStart, InnerEnd Vec2

	// LargeArc is set when the span exceeds 180 degrees; without it an SVG
	// renderer draws the complementary wedge.
	LargeArc bool
	// Full is set for a 360 degree span, whose start and end points coincide.
	Full bool
}

// CreateArcPath builds the wedge for [startAngle, endAngle] between
// innerRadius and outerRadius around (cx, cy). An innerRadius of 0 yields a
// pie slice.
func CreateArcPath(cx, cy, innerRadius, outerRadius, startAngle, endAngle float64) ArcPath {
	span := endAngle - startAngle
	return ArcPath{
		Center:      Vec2{X: cx, Y: cy},
		InnerRadius: innerRadius,
		OuterRadius: outerRadius,
		StartDeg:    startAngle,
		EndDeg:      endAngle,
		OuterStart:  PolarToCartesian(cx, cy, outerRadius, startAngle),
		OuterEnd:    PolarToCartesian(cx, cy, outerRadius, endAngle),
		InnerStart:  PolarToCartesian(cx, cy, innerRadius, startAngle),
		InnerEnd:    PolarToCartesian(cx, cy, innerRadius, endAngle),
		LargeArc:    span > 180,
		Full:        span >= 360-AngleEpsilon,
	}
}

// Span returns the angular extent of the wedge.
func (p ArcPath) Span() float64 {
	return p.EndDeg - p.StartDeg
}

// String renders the wedge as SVG path data.
func (p ArcPath) String() string {
	var b strings.Builder
	if p.Full {
		p.writeFull(&b)
		return b.String()
	}
	large := "0"
	if p.LargeArc {
		large = "1"
	}
	b.WriteString("M ")
	writePoint(&b, p.OuterEnd)
	b.WriteString(" A ")
	writeRadii(&b, p.OuterRadius)
	b.WriteString(" 0 " + large + " 0 ")
	writePoint(&b, p.OuterStart)
	b.WriteString(" L ")
	writePoint(&b, p.InnerStart)
	if p.InnerRadius > 0 {
		b.WriteString(" A ")
		writeRadii(&b, p.InnerRadius)
		b.WriteString(" 0 " + large + " 1 ")
		writePoint(&b, p.InnerEnd)
	}
	b.WriteString(" Z")
	return b.String()
}

// writeFull emits a ring (or disc) as two half arcs per edge, using the
// evenodd-friendly reverse winding for the hole.
func (p ArcPath) writeFull(b *strings.Builder) {
	mid := p.StartDeg + 180
	outerMid := PolarToCartesian(p.Center.X, p.Center.Y, p.OuterRadius, mid)
	b.WriteString("M ")
	writePoint(b, p.OuterStart)
	for _, pt := range []Vec2{outerMid, p.OuterStart} {
		b.WriteString(" A ")
		writeRadii(b, p.OuterRadius)
		b.WriteString(" 0 1 1 ")
		writePoint(b, pt)
	}
	b.WriteString(" Z")
	if p.InnerRadius <= 0 {
		return
	}
	innerMid := PolarToCartesian(p.Center.X, p.Center.Y, p.InnerRadius, mid)
	b.WriteString(" M ")
	writePoint(b, p.InnerStart)
	for _, pt := range []Vec2{innerMid, p.InnerStart} {
		b.WriteString(" A ")
		writeRadii(b, p.InnerRadius)
		b.WriteString(" 0 1 0 ")
		writePoint(b, pt)
	}
	b.WriteString(" Z")
}

func writePoint(b *strings.Builder, v Vec2) {
	b.WriteString(formatFloat(v.X))
	b.WriteByte(' ')
	b.WriteString(formatFloat(v.Y))
}

func writeRadii(b *strings.Builder, r float64) {
	s := formatFloat(r)
	b.WriteString(s)
	b.WriteByte(' ')
	b.WriteString(s)
}

// formatFloat trims values to 4 decimals so path strings stay stable across
// platforms and readable in tests.
func formatFloat(f float64) string {
	f = math.Round(f*1e4) / 1e4
	if f == 0 {
		f = 0 // drop negative zero
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// TextPosition is a label anchor and its rotation in degrees.
type TextPosition struct {
	X, Y     float64
	Rotation float64
}

// CalculateTextPosition anchors a label at the segment's mid-angle on the
// given radius. Rotation equals the mid-angle.
func CalculateTextPosition(cx, cy, radius, startAngle, endAngle float64) TextPosition {
	mid := (startAngle + endAngle) / 2
	p := PolarToCartesian(cx, cy, radius, mid)
	return TextPosition{X: p.X, Y: p.Y, Rotation: mid}
}

// FlipConvention selects how labels are turned to stay readable.
type FlipConvention uint8

const (
	// FlipThresholdBand flips labels whose mid-angle lies strictly inside
	// (180+threshold, 360-threshold). The bands next to 180 and 360 stay
	// unflipped so a label crossing the boundary while the wheel turns does
	// not flicker.
	FlipThresholdBand FlipConvention = iota
	// FlipLowerHalf flips every label whose mid-angle lies in (90, 270),
	// the half below the horizontal diameter, with no dead band.
	FlipLowerHalf
)

// CalculateLabelTransformAngle returns the label rotation for the segment
// [startAngle, endAngle] under FlipThresholdBand. The result is normalized.
func CalculateLabelTransformAngle(startAngle, endAngle, thresholdDeg float64) float64 {
	return LabelTransformAngleFor(FlipThresholdBand, startAngle, endAngle, thresholdDeg)
}

// LabelTransformAngleFor is CalculateLabelTransformAngle with an explicit
// convention. thresholdDeg is ignored by FlipLowerHalf.
func LabelTransformAngleFor(conv FlipConvention, startAngle, endAngle, thresholdDeg float64) float64 {
	mid := NormalizeAngle((startAngle + endAngle) / 2)
	var flip bool
	switch conv {
	case FlipLowerHalf:
		flip = mid > 90 && mid < 270
	default:
		flip = mid > 180+thresholdDeg && mid < 360-thresholdDeg
	}
	if flip {
		return NormalizeAngle(mid + 180)
	}
	return mid
}

// SnapAngle returns the target nearest to angleDeg by circular distance when
// that distance is within toleranceDeg, otherwise the normalized input.
// On a tie the earlier target wins.
func SnapAngle(angleDeg float64, targets []float64, toleranceDeg float64) float64 {
	a := NormalizeAngle(angleDeg)
	best := -1
	bestDist := math.Inf(1)
	for i, t := range targets {
		d := circularDistance(a, t)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist > toleranceDeg {
		return a
	}
	return NormalizeAngle(targets[best])
}
