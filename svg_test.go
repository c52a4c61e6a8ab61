package radial

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func svgLine(doc, prefix string) string {
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, prefix) {
			return line
		}
	}
	return ""
}

func TestWriteSVGPaths(t *testing.T) {
	l := mustLayout(t, emotionDataset())
	var buf bytes.Buffer
	if err := WriteSVG(&buf, l, SVGOptions{}); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	doc := buf.String()
	if !strings.HasPrefix(doc, "<?xml") || !strings.HasSuffix(doc, "</svg>\n") {
		t.Errorf("document not framed:\n%s", doc)
	}
	if !strings.Contains(doc, `viewBox="0 0 400 400"`) {
		t.Error("missing default view box")
	}
	if n := strings.Count(doc, "<path "); n != l.Len() {
		t.Errorf("paths = %d, want %d", n, l.Len())
	}
	if strings.Contains(doc, "<text") {
		t.Error("labels written without ShowLabels")
	}
	joy := svgLine(doc, `<path id="joy"`)
	if !strings.Contains(joy, `fill="`+DefaultTheme.Primary.Hex()+`"`) {
		t.Errorf("joy path = %s", joy)
	}
}

func TestWriteSVGLabels(t *testing.T) {
	ds := NewDataset(Primary("a", "Rock & Roll"), Primary("b", "<b>"))
	l := mustLayout(t, ds)
	var buf bytes.Buffer
	err := WriteSVG(&buf, l, SVGOptions{
		ShowLabels:     true,
		LabelFormatter: strings.ToUpper,
	})
	if err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	doc := buf.String()
	if n := strings.Count(doc, "<text "); n != 2 {
		t.Errorf("labels = %d, want 2", n)
	}
	if !strings.Contains(doc, ">ROCK &amp; ROLL</text>") || !strings.Contains(doc, ">&lt;B&gt;</text>") {
		t.Errorf("labels not escaped:\n%s", doc)
	}
	// a spans 0-180, mid 90: the label sits on the positive x axis.
	if !strings.Contains(doc, `transform="rotate(90 `) {
		t.Errorf("missing tangential rotation:\n%s", doc)
	}
}

func TestWriteSVGView(t *testing.T) {
	l := mustLayout(t, emotionDataset())
	var buf bytes.Buffer
	if err := WriteSVG(&buf, l, SVGOptions{View: &ViewState{AngleDeg: 30}}); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	g := svgLine(buf.String(), "<g ")
	if !strings.Contains(g, "rotate(30 200 200)") || !strings.Contains(g, "scale(1)") {
		t.Errorf("group = %s", g)
	}
}

func TestWriteSVGWriteError(t *testing.T) {
	l := mustLayout(t, emotionDataset())
	if err := WriteSVG(failingWriter{}, l, SVGOptions{}); err == nil {
		t.Error("WriteSVG to a failing writer returned nil")
	}
}

func TestWheelWriteSVGState(t *testing.T) {
	w := newTestWheel(t, WheelOptions{})
	w.Selection().Toggle("joy")
	var buf bytes.Buffer
	if err := w.WriteSVG(&buf, DefaultTheme, true); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	doc := buf.String()
	joy := svgLine(doc, `<path id="joy"`)
	if !strings.Contains(joy, `fill="`+DefaultTheme.Selected.Hex()+`"`) {
		t.Errorf("selected joy path = %s", joy)
	}
	fear := svgLine(doc, `<path id="fear"`)
	if strings.Contains(fear, DefaultTheme.Selected.Hex()) {
		t.Errorf("unselected fear path = %s", fear)
	}
}
