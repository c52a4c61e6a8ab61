package radial

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// DefaultSVGSize is the view box edge used when SVGOptions.Size is zero.
const DefaultSVGSize = 400.0

// svgMargin is the gap between the outer ring and the view box edge.
const svgMargin = 10.0

// SVGOptions controls WriteSVG.
type SVGOptions struct {
	// Size is the edge of the square view box. Default 400.
	Size float64
	// Rings places the levels. Zero means DefaultRings(Size/2 - 10).
	Rings Rings
	Theme Theme
	// View rotates, scales and pans the wheel group. Nil is the identity.
	View *ViewState

	ShowLabels     bool
	Flip           FlipConvention
	FlipThreshold  float64
	LabelFormatter func(label string) string

	// State reports the interaction state of each segment. Nil means every
	// segment is at rest.
	State func(id string) SegmentState
}

// svgWriter prints SVG elements and keeps the first write error.
type svgWriter struct {
	w   io.Writer
	err error
}

func (s *svgWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func escapeText(str string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(str))
	return b.String()
}

func svgColor(c Color) string {
	return c.Hex()
}

// WriteSVG renders layout as a standalone SVG document with one path per
// segment, primaries first.
func WriteSVG(w io.Writer, layout *Layout, opts SVGOptions) error {
	if opts.Size <= 0 {
		opts.Size = DefaultSVGSize
	}
	if opts.Rings == (Rings{}) {
		opts.Rings = DefaultRings(opts.Size/2 - svgMargin)
	}
	if err := opts.Rings.validate(); err != nil {
		return err
	}
	if opts.Theme.Name == "" {
		opts.Theme = DefaultTheme
	}
	view := DefaultViewState
	if opts.View != nil {
		view = *opts.View
		if view.Scale == 0 {
			view.Scale = 1
		}
	}

	sw := &svgWriter{w: w}
	c := opts.Size / 2
	t := ComposeViewTransform(c, c, view.AngleDeg, view.Scale, view.Translate)
	theme := opts.Theme

	sw.printf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="0 0 %s %s" role="img">
`, formatFloat(opts.Size), formatFloat(opts.Size))
	sw.printf("<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", svgColor(theme.Background))
	sw.printf("<g transform=\"%s\">\n", t.String())

	for _, seg := range layout.segments {
		cat, _ := layout.Category(seg.ID)
		band := opts.Rings.Band(seg.Level)
		var state SegmentState
		if opts.State != nil {
			state = opts.State(seg.ID)
		}
		fill := theme.SegmentFill(theme.BaseFill(cat), state)
		stroke, width := theme.Stroke(state)
		path := CreateArcPath(c, c, band.Inner, band.Outer, seg.StartDeg, seg.EndDeg)
		sw.printf("<path id=\"%s\" d=\"%s\" fill=\"%s\" fill-opacity=\"%s\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
			escapeText(seg.ID), path.String(), svgColor(fill), formatFloat(fill.A),
			svgColor(stroke), formatFloat(width))
	}

	if opts.ShowLabels {
		for _, seg := range layout.segments {
			cat, _ := layout.Category(seg.ID)
			label := cat.Label
			if label == "" {
				label = cat.ID
			}
			if opts.LabelFormatter != nil {
				label = opts.LabelFormatter(label)
			}
			band := opts.Rings.Band(seg.Level)
			pos := CalculateTextPosition(c, c, band.Mid(), seg.StartDeg, seg.EndDeg)
			rot := LabelTransformAngleFor(opts.Flip, seg.StartDeg, seg.EndDeg, opts.FlipThreshold)
			sw.printf("<text x=\"%s\" y=\"%s\" transform=\"rotate(%s %s %s)\" font-size=\"%s\" fill=\"%s\" text-anchor=\"middle\" dominant-baseline=\"middle\">%s</text>\n",
				formatFloat(pos.X), formatFloat(pos.Y),
				formatFloat(rot), formatFloat(pos.X), formatFloat(pos.Y),
				formatFloat(theme.LabelSize(seg.Level)), svgColor(theme.Text), escapeText(label))
		}
	}

	sw.printf("</g>\n</svg>\n")
	return sw.err
}

// WriteSVG renders the wheel with its current view, selection, hover and
// focus.
func (w *Wheel) WriteSVG(out io.Writer, theme Theme, showLabels bool) error {
	view := w.view.View()
	return WriteSVG(out, w.layout, SVGOptions{
		Size:           (w.opts.Rings.Outer() + svgMargin) * 2,
		Rings:          w.opts.Rings,
		Theme:          theme,
		View:           &view,
		ShowLabels:     showLabels,
		LabelFormatter: w.opts.LabelFormatter,
		State:          w.SegmentStateOf,
	})
}
