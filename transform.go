package radial

import (
	"fmt"
	"math"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// ViewTransform maps wheel space to screen space for a ViewState.
//
// Composition order, applied to a point from right to left:
//
//	Translate(T) * Translate(C) * Rotate(angle) * Scale(s) * Translate(-C)
//
// Rotation and scale pivot on the fixed wheel centre C, never on the pan
// offset, and the pan offset is applied last.
type ViewTransform struct {
	Center    Vec2
	AngleDeg  float64
	Scale     float64
	Translate Vec2
	// Matrix is [a, b, c, d, tx, ty]:
	//
	//	| a  c  tx |
	//	| b  d  ty |
	//	| 0  0   1 |
	Matrix [6]float64
}

// ComposeViewTransform builds the transform for a view centred on (cx, cy).
func ComposeViewTransform(cx, cy, angleDeg, scale float64, translate Vec2) ViewTransform {
	m := translateAffine(-cx, -cy)
	m = multiplyAffine(scaleAffine(scale), m)
	m = multiplyAffine(rotateAffine(angleDeg), m)
	m = multiplyAffine(translateAffine(cx+translate.X, cy+translate.Y), m)
	return ViewTransform{
		Center:    Vec2{X: cx, Y: cy},
		AngleDeg:  angleDeg,
		Scale:     scale,
		Translate: translate,
		Matrix:    m,
	}
}

// ViewTransformFor is ComposeViewTransform for a ViewState.
func ViewTransformFor(center Vec2, v ViewState) ViewTransform {
	return ComposeViewTransform(center.X, center.Y, v.AngleDeg, v.Scale, v.Translate)
}

// Apply maps a wheel-space point to screen space.
func (t ViewTransform) Apply(x, y float64) (float64, float64) {
	return transformPoint(t.Matrix, x, y)
}

// Inverse maps a screen-space point back to wheel space. ok is false when
// the transform is singular (scale 0).
func (t ViewTransform) Inverse(x, y float64) (wx, wy float64, ok bool) {
	inv, ok := invertAffine(t.Matrix)
	if !ok {
		return x, y, false
	}
	wx, wy = transformPoint(inv, x, y)
	return wx, wy, true
}

// Invert returns the transform that maps screen space back to wheel space.
// ok is false when the transform is singular.
func (t ViewTransform) Invert() (ViewTransform, bool) {
	inv, ok := invertAffine(t.Matrix)
	if !ok {
		return t, false
	}
	out := t
	out.Matrix = inv
	return out, true
}

// ScreenCenter returns where the wheel centre lands on screen.
func (t ViewTransform) ScreenCenter() Vec2 {
	return t.Center.Add(t.Translate)
}

// String renders the transform as an SVG transform attribute in the same
// order the matrix is composed.
func (t ViewTransform) String() string {
	return fmt.Sprintf("translate(%s %s) rotate(%s %s %s) translate(%s %s) scale(%s) translate(%s %s)",
		formatFloat(t.Translate.X), formatFloat(t.Translate.Y),
		formatFloat(t.AngleDeg), formatFloat(t.Center.X), formatFloat(t.Center.Y),
		formatFloat(t.Center.X), formatFloat(t.Center.Y),
		formatFloat(t.Scale),
		formatFloat(-t.Center.X), formatFloat(-t.Center.Y))
}

func translateAffine(x, y float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, x, y}
}

func scaleAffine(s float64) [6]float64 {
	return [6]float64{s, 0, 0, s, 0, 0}
}

// rotateAffine rotates clockwise on screen for positive degrees.
func rotateAffine(deg float64) [6]float64 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return [6]float64{cos, sin, -sin, cos, 0, 0}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity and false if the matrix is singular.
func invertAffine(m [6]float64) ([6]float64, bool) {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform, false
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
