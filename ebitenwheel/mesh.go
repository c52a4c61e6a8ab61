package ebitenwheel

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/radial"
)

// arcStepDeg is the widest angle one wedge slice may cover.
const arcStepDeg = 4.0

// maxBatchVertices keeps indices within uint16.
const maxBatchVertices = math.MaxUint16

var whitePixelImage *ebiten.Image

// whitePixel returns a shared 1x1 white image for untextured triangles.
func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// triangleBuffer accumulates wedge triangles between flushes. Backing arrays
// are reused across frames.
type triangleBuffer struct {
	verts []ebiten.Vertex
	inds  []uint16
}

func (b *triangleBuffer) reset() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}

// wedge describes one ring segment to tessellate.
type wedge struct {
	cx, cy       float64
	inner, outer float64
	startDeg     float64
	endDeg       float64
	transform    radial.ViewTransform
	fill         radial.Color
}

// slices returns how many slices the wedge is cut into.
func (w wedge) slices() int {
	return max(1, int(math.Ceil((w.endDeg-w.startDeg)/arcStepDeg)))
}

// points returns the outer and inner arc points in screen space.
func (w wedge) points() (outer, inner []radial.Vec2) {
	n := w.slices()
	outer = make([]radial.Vec2, n+1)
	inner = make([]radial.Vec2, n+1)
	for i := 0; i <= n; i++ {
		deg := w.startDeg + (w.endDeg-w.startDeg)*float64(i)/float64(n)
		o := radial.PolarToCartesian(w.cx, w.cy, w.outer, deg)
		in := radial.PolarToCartesian(w.cx, w.cy, w.inner, deg)
		ox, oy := w.transform.Apply(o.X, o.Y)
		ix, iy := w.transform.Apply(in.X, in.Y)
		outer[i] = radial.Vec2{X: ox, Y: oy}
		inner[i] = radial.Vec2{X: ix, Y: iy}
	}
	return outer, inner
}

// append tessellates w as a quad strip along its arcs. Colours are
// premultiplied. It reports false when the batch would overflow.
func (b *triangleBuffer) append(w wedge) bool {
	outer, inner := w.points()
	if len(b.verts)+2*len(outer) > maxBatchVertices {
		return false
	}
	a := float32(w.fill.A)
	r, g, bl := float32(w.fill.R)*a, float32(w.fill.G)*a, float32(w.fill.B)*a
	vertex := func(p radial.Vec2) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r, ColorG: g, ColorB: bl, ColorA: a,
		}
	}
	base := uint16(len(b.verts))
	for i := range outer {
		b.verts = append(b.verts, vertex(outer[i]), vertex(inner[i]))
	}
	for i := 0; i < len(outer)-1; i++ {
		o0 := base + uint16(2*i)
		i0 := o0 + 1
		o1 := o0 + 2
		i1 := o0 + 3
		b.inds = append(b.inds, o0, i0, o1, i0, i1, o1)
	}
	return true
}

func (b *triangleBuffer) flush(dst *ebiten.Image) {
	if len(b.inds) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(b.verts, b.inds, whitePixel(), op)
	b.reset()
}

// wedgeFor builds the wedge of seg. Hover emphasis grows the outer edge
// only, so the wedge stays attached to the ring inside it.
func (g *Game) wedgeFor(seg radial.Segment) wedge {
	w := g.wheel
	band := w.Rings().Band(seg.Level)
	c := w.View().Center()
	s := g.hover.scaleFor(seg.ID)
	cat, _ := w.Layout().Category(seg.ID)
	theme := g.cfg.Theme
	return wedge{
		cx:        c.X,
		cy:        c.Y,
		inner:     band.Inner,
		outer:     band.Outer * s,
		startDeg:  seg.StartDeg,
		endDeg:    seg.EndDeg,
		transform: w.View().Transform(),
		fill:      theme.SegmentFill(theme.BaseFill(cat), w.SegmentStateOf(seg.ID)),
	}
}

// drawWheel fills every segment, then strokes the outlines on top.
func (g *Game) drawWheel(screen *ebiten.Image) {
	segs := g.wheel.Layout().Segments()
	g.tris.reset()
	wedges := make([]wedge, len(segs))
	for i, seg := range segs {
		wedges[i] = g.wedgeFor(seg)
		if !g.tris.append(wedges[i]) {
			g.tris.flush(screen)
			g.tris.append(wedges[i])
		}
	}
	g.tris.flush(screen)

	for i, seg := range segs {
		col, width := g.cfg.Theme.Stroke(g.wheel.SegmentStateOf(seg.ID))
		strokeWedge(screen, wedges[i], col, float32(width))
	}
}

// strokeWedge outlines w with straight lines between its arc points.
func strokeWedge(dst *ebiten.Image, w wedge, col radial.Color, width float32) {
	r, g, b, a := col.RGBA8()
	clr := color.NRGBA{R: r, G: g, B: b, A: a}
	outer, inner := w.points()
	line := func(p, q radial.Vec2) {
		vector.StrokeLine(dst, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), width, clr, true)
	}
	for i := 0; i < len(outer)-1; i++ {
		line(outer[i], outer[i+1])
		line(inner[i], inner[i+1])
	}
	line(outer[0], inner[0])
	last := len(outer) - 1
	line(outer[last], inner[last])
}

// drawLabels prints each label centred on its segment. The debug font has
// fixed 6x16 glyphs and cannot rotate.
func (g *Game) drawLabels(screen *ebiten.Image) {
	const glyphW, glyphH = 6, 16
	w := g.wheel
	t := w.View().Transform()
	c := w.View().Center()
	for _, seg := range w.Layout().Segments() {
		if seg.Span() < 2 {
			continue
		}
		label := w.Label(seg.ID)
		band := w.Rings().Band(seg.Level)
		pos := radial.CalculateTextPosition(c.X, c.Y, band.Mid(), seg.StartDeg, seg.EndDeg)
		x, y := t.Apply(pos.X, pos.Y)
		ebitenutil.DebugPrintAt(screen, label, int(x)-len(label)*glyphW/2, int(y)-glyphH/2)
	}
}
