package encoder

import (
	"sync/atomic"
	"time"

	"easelprint/internal/easel"
)

// DefaultPoll is how often a paused Gate checks whether it was resumed.
const DefaultPoll = 50 * time.Millisecond

// Gate is a pause flag shared between the drawing loop and a listener
// goroutine. The listener calls Toggle; the loop calls Wait between
// strokes, so a pause never interrupts a stroke. A nil *Gate never pauses.
type Gate struct {
	// Poll is the interval between checks while paused. Zero means
	// DefaultPoll.
	Poll time.Duration

	paused atomic.Bool
}

// Toggle flips the pause flag and returns the new value.
func (g *Gate) Toggle() bool {
	for {
		old := g.paused.Load()
		if g.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Paused reports whether the gate is closed.
func (g *Gate) Paused() bool {
	return g != nil && g.paused.Load()
}

// Wait blocks while the gate is paused.
func (g *Gate) Wait() {
	if !g.Paused() {
		return
	}
	poll := g.Poll
	if poll <= 0 {
		poll = DefaultPoll
	}
	easel.Logger().Warn("drawing paused")
	for g.Paused() {
		time.Sleep(poll)
	}
	easel.Logger().Warn("drawing resumed")
}
