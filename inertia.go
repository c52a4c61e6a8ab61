package radial

import "time"

// Scheduler runs a callback periodically until the returned cancel function
// is called. Cancel must be safe to call more than once.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// ManualScheduler fires its callbacks only when the host calls Tick, once per
// frame. It is the scheduler used by the Ebitengine adapter and by tests.
type ManualScheduler struct {
	tasks  []*manualTask
	nextID uint32
}

type manualTask struct {
	id       uint32
	interval time.Duration
	fn       func()
	canceled bool
}

// NewManualScheduler returns an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Every registers fn. The interval is recorded but each Tick fires every
// live task once.
func (s *ManualScheduler) Every(interval time.Duration, fn func()) func() {
	s.nextID++
	t := &manualTask{id: s.nextID, interval: interval, fn: fn}
	s.tasks = append(s.tasks, t)
	return func() {
		if t.canceled {
			return
		}
		t.canceled = true
		s.remove(t.id)
	}
}

func (s *ManualScheduler) remove(id uint32) {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Tick fires every registered task once. Tasks cancelled during the tick
// (including by themselves) do not fire afterwards.
func (s *ManualScheduler) Tick() {
	if len(s.tasks) == 0 {
		return
	}
	snapshot := make([]*manualTask, len(s.tasks))
	copy(snapshot, s.tasks)
	for _, t := range snapshot {
		if !t.canceled {
			t.fn()
		}
	}
}

// Pending returns the number of live tasks.
func (s *ManualScheduler) Pending() int {
	return len(s.tasks)
}

// inertia is the coasting state of a ViewController. The angle advances by
// velocity * interval each tick and velocity decays geometrically.
type inertia struct {
	velocity float64 // deg/ms
	cancel   func()
}

func (in *inertia) stop() {
	if in.cancel != nil {
		in.cancel()
		in.cancel = nil
	}
	in.velocity = 0
}
