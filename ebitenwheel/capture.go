package ebitenwheel

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/radial"
)

// Capture queues a snapshot of the next drawn frame. Each snapshot is a PNG
// of the window plus the wheel's SVG in the same state, named after the
// label, the view and the selection, e.g.
// 20260102_150405_after-drag_r090_z1.10_joy+fear.png.
func (g *Game) Capture(label string) {
	g.captures = append(g.captures, label)
}

// flushCaptures writes every queued snapshot of screen. Called at the end
// of Draw so the PNG and the SVG agree.
func (g *Game) flushCaptures(screen *ebiten.Image) {
	if len(g.captures) == 0 {
		return
	}
	labels := g.captures
	g.captures = g.captures[:0]

	if err := os.MkdirAll(g.cfg.CaptureDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "[radial] capture: %v\n", err)
		return
	}
	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := straightAlpha(pixels, b.Dx(), b.Dy())

	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		base := filepath.Join(g.cfg.CaptureDir, stamp+"_"+g.captureName(label))
		if err := g.saveCapture(base, img); err != nil {
			fmt.Fprintf(os.Stderr, "[radial] capture: %v\n", err)
		}
	}
}

// captureName encodes label, view rotation and zoom, and the canonical
// selection.
func (g *Game) captureName(label string) string {
	v := g.wheel.View().View()
	sel := g.wheel.Selection().CanonicalOrder()
	ids := "none"
	if len(sel) > 0 {
		parts := make([]string, len(sel))
		for i, id := range sel {
			parts[i] = slug(id, "item")
		}
		ids = strings.Join(parts, "+")
	}
	angle := math.Round(radial.NormalizeAngle(v.AngleDeg))
	if angle == 360 {
		angle = 0
	}
	return fmt.Sprintf("%s_r%03.0f_z%.2f_%s", slug(label, "capture"), angle, v.Scale, ids)
}

// saveCapture writes base.png from img and base.svg from the wheel.
func (g *Game) saveCapture(base string, img image.Image) error {
	if err := createFile(base+".png", func(w io.Writer) error { return png.Encode(w, img) }); err != nil {
		return err
	}
	return createFile(base+".svg", func(w io.Writer) error {
		return g.wheel.WriteSVG(w, g.cfg.Theme, g.cfg.ShowLabels)
	})
}

func createFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// straightAlpha converts the premultiplied pixels ReadPixels returns into a
// straight-alpha image, which is what PNG stores.
func straightAlpha(pixels []byte, w, h int) *image.NRGBA {
	src := &image.RGBA{Pix: pixels, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	dst := image.NewNRGBA(src.Rect)
	draw.Draw(dst, dst.Rect, src, image.Point{}, draw.Src)
	return dst
}

// slug lowercases s and joins its letter and digit runs with '-'. An empty
// result becomes fallback.
func slug(s, fallback string) string {
	var b strings.Builder
	pending := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pending = true
	}
	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}
