package ebitenwheel

import (
	"github.com/phanxgames/radial"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scaleTween eases one segment's scale toward a target.
type scaleTween struct {
	id    string
	tween *gween.Tween
	value float64
	done  bool
}

func (s *scaleTween) update(dt float32) {
	if s.done || s.tween == nil {
		return
	}
	v, finished := s.tween.Update(dt)
	s.value = float64(v)
	s.done = finished
}

// emphasis grows the hovered segment to Theme.HoverScale and shrinks the
// previously hovered one back to 1.
type emphasis struct {
	scale    float64
	duration float32
	fn       ease.TweenFunc

	entering scaleTween
	leaving  scaleTween
}

func (e *emphasis) reset(theme radial.Theme) {
	e.scale = theme.HoverScale
	if e.scale <= 0 {
		e.scale = 1
	}
	e.duration = theme.HoverDuration
	e.fn = ease.OutQuad
	e.entering = scaleTween{}
	e.leaving = scaleTween{}
}

// retarget starts the tweens for a hover change to id ("" for none).
func (e *emphasis) retarget(id string) {
	if id == e.entering.id {
		return
	}
	from := 1.0
	if e.leaving.id == id && id != "" {
		from = e.leaving.value
	}
	if e.entering.id != "" {
		e.leaving = e.start(e.entering.id, e.entering.value, 1)
	}
	e.entering = scaleTween{}
	if id != "" {
		e.entering = e.start(id, from, e.scale)
	}
}

// start returns a tween of id from from to to. A non-positive duration
// jumps straight to the target.
func (e *emphasis) start(id string, from, to float64) scaleTween {
	if e.duration <= 0 {
		return scaleTween{id: id, value: to, done: true}
	}
	return scaleTween{id: id, value: from, tween: gween.New(float32(from), float32(to), e.duration, e.fn)}
}

// update advances both tweens by dt seconds.
func (e *emphasis) update(dt float32) {
	e.entering.update(dt)
	e.leaving.update(dt)
	if e.leaving.done {
		e.leaving = scaleTween{}
	}
}

// scaleFor returns the current scale of id.
func (e *emphasis) scaleFor(id string) float64 {
	switch id {
	case "":
		return 1
	case e.entering.id:
		return e.entering.value
	case e.leaving.id:
		return e.leaving.value
	}
	return 1
}
