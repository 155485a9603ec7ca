package pointer

import "fmt"

// Kind is the type of a recorded pointer event.
type Kind int

// Event kinds.
const (
	Move Kind = iota
	Press
	Release
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Press:
		return "press"
	case Release:
		return "release"
	default:
		return "unknown"
	}
}

// Event is one recorded driver call. X and Y are only meaningful for Move.
type Event struct {
	Kind   Kind
	X, Y   int
	Button Button
}

func (e Event) String() string {
	if e.Kind == Move {
		return fmt.Sprintf("move(%d,%d)", e.X, e.Y)
	}
	return fmt.Sprintf("%v(%v)", e.Kind, e.Button)
}

// Recorder is a Driver that remembers every call. It is used for dry runs
// and in tests.
type Recorder struct {
	Events []Event
}

func (r *Recorder) MoveTo(x, y int) {
	r.Events = append(r.Events, Event{Kind: Move, X: x, Y: y})
}

func (r *Recorder) Press(b Button) {
	r.Events = append(r.Events, Event{Kind: Press, Button: b})
}

func (r *Recorder) Release(b Button) {
	r.Events = append(r.Events, Event{Kind: Release, Button: b})
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// Count returns the number of recorded events of kind k.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Strokes splits the recording into press-to-release sequences and returns
// the positions the pointer visited while pressed, starting with where it
// was when the button went down.
func (r *Recorder) Strokes() [][]Event {
	var (
		out     [][]Event
		cur     []Event
		last    Event
		hasLast bool
		down    bool
	)
	for _, e := range r.Events {
		switch e.Kind {
		case Move:
			last, hasLast = e, true
			if down {
				cur = append(cur, e)
			}
		case Press:
			down = true
			cur = nil
			if hasLast {
				cur = append(cur, last)
			}
		case Release:
			if down {
				out = append(out, cur)
			}
			down = false
		}
	}
	return out
}
