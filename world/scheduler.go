package world

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Scheduler advances a world one tick at a time.
//
// Each tick every Updatable registered when the tick starts is updated
// exactly once, in registration order. Objects added during a tick are
// first updated on the next tick; objects removed during a tick are not
// updated again, even later in the same tick.
type Scheduler struct {
	World *World

	ticks int
}

// NewScheduler creates a scheduler for a world.
func NewScheduler(w *World) *Scheduler {
	return &Scheduler{World: w}
}

// Ticks is the number of completed ticks.
func (s *Scheduler) Ticks() int {
	return s.ticks
}

// Tick runs a single tick.
func (s *Scheduler) Tick() {
	w := s.World

	for _, up := range w.Updatables() {
		if _, alive := w.Object(up.ObjectID()); !alive {
			continue
		}
		up.Update(w)
	}

	s.ticks++

	logrus.Debugf("[tick %07d] %d objects", s.ticks, w.ObjectCount())
}

// Run runs count ticks, stopping early if the context is done.
func (s *Scheduler) Run(ctx context.Context, count int) (err error) {
	for range count {
		if err = ctx.Err(); err != nil {
			return
		}
		s.Tick()
	}

	return
}
