// Package ebitenwheel hosts a radial.Wheel in an Ebitengine window. It polls
// mouse, wheel and keyboard input each tick, forwards it to the wheel,
// performs the returned effects and draws the rings with DrawTriangles.
package ebitenwheel

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/radial"
)

// RunConfig configures the window opened by Run. Zero values take defaults:
// the window is sized to the wheel's SVG box and the theme is
// radial.DefaultTheme.
type RunConfig struct {
	Title         string
	Width, Height int
	Theme         radial.Theme
	ShowLabels    bool
	ShowFPS       bool
	// CaptureDir receives the PNG and SVG pairs queued by Game.Capture or
	// the F12 key. Default "captures".
	CaptureDir string
}

func (c RunConfig) withDefaults(w *radial.Wheel) RunConfig {
	if c.Title == "" {
		c.Title = radial.DefaultAriaLabel
	}
	side := int(2*(w.Rings().Outer()+10) + 0.5)
	if c.Width <= 0 {
		c.Width = side
	}
	if c.Height <= 0 {
		c.Height = side
	}
	if c.Theme.Name == "" {
		c.Theme = radial.DefaultTheme
	}
	if c.CaptureDir == "" {
		c.CaptureDir = "captures"
	}
	return c
}

// Game implements ebiten.Game for one wheel.
type Game struct {
	wheel *radial.Wheel
	cfg   RunConfig

	input    inputState
	hover    emphasis
	clock    time.Duration
	status   string
	tris     triangleBuffer
	captures []string
	fpsTimer float64
	fpsText  string
}

// NewGame wraps w. The wheel keeps receiving input until the game is
// dropped; call w.Dispose afterwards to release its observers.
func NewGame(w *radial.Wheel, cfg RunConfig) *Game {
	cfg = cfg.withDefaults(w)
	g := &Game{wheel: w, cfg: cfg}
	g.hover.reset(cfg.Theme)
	w.OnHover(func(id string) { g.hover.retarget(id) })
	return g
}

// Wheel returns the hosted wheel.
func (g *Game) Wheel() *radial.Wheel { return g.wheel }

// Status returns the latest announcement.
func (g *Game) Status() string { return g.status }

// Update polls input, advances inertia and the hover tween.
func (g *Game) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	dt := time.Second / time.Duration(tps)
	g.clock += dt

	in := readFrame(g.clock)
	in.inside = in.x >= 0 && in.y >= 0 && in.x < float64(g.cfg.Width) && in.y < float64(g.cfg.Height)
	effects := g.apply(in)
	g.perform(effects)
	if in.capture {
		g.Capture("manual")
	}

	g.wheel.Tick()
	g.hover.update(float32(dt.Seconds()))

	if g.cfg.ShowFPS {
		g.fpsTimer += dt.Seconds()
		if g.fpsTimer >= 0.5 {
			g.fpsTimer = 0
			g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
	}
	return nil
}

// perform carries out the effects that have an Ebitengine counterpart.
func (g *Game) perform(effects radial.Effects) {
	for _, e := range effects {
		switch e.Kind {
		case radial.EffectSetCursor:
			ebiten.SetCursorShape(cursorShape(e.Cursor))
		case radial.EffectAnnounce:
			g.status = e.Message
		}
	}
}

// Draw renders the wheel, labels, status line and pending captures.
func (g *Game) Draw(screen *ebiten.Image) {
	r, gr, b, a := g.cfg.Theme.Background.RGBA8()
	screen.Fill(color.NRGBA{R: r, G: gr, B: b, A: a})

	g.drawWheel(screen)
	if g.cfg.ShowLabels {
		g.drawLabels(screen)
	}
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, 8, g.cfg.Height-20)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, g.fpsText)
	}
	g.flushCaptures(screen)
}

// Layout reports the configured logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window hosting w and blocks until it is closed.
func Run(w *radial.Wheel, cfg RunConfig) error {
	g := NewGame(w, cfg)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run wheel: %w", err)
	}
	return nil
}
