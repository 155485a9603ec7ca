// Package easel models the in-game easel: where its controls are, which
// color, tool and brush size are active, and how to draw shapes on it by
// driving the pointer.
//
// The game keeps its own state between operations and offers no way to
// read it back, so the Easel tracks it and must be the only thing that
// clicks on the easel's controls during a session.
package easel

import (
	"time"

	"easelprint/internal/geom"
	"easelprint/internal/palette"
	"easelprint/internal/pointer"
)

// Orientation is the layout of the canvas.
type Orientation int

// Orientations.
const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Tool is a drawing tool.
type Tool int

// Tools.
const (
	Paintbrush Tool = iota
	Pen
	SprayCan
)

func (t Tool) String() string {
	switch t {
	case Paintbrush:
		return "paintbrush"
	case Pen:
		return "pen"
	case SprayCan:
		return "spray_can"
	default:
		return "unknown"
	}
}

const (
	// MaxBrushStep is the largest brush size the game supports.
	MaxBrushStep = 16

	// BrushSettle is the delay used between repeated brush size clicks.
	// The game drops brush clicks that arrive faster than this, whatever
	// the normal settle delay is.
	BrushSettle = 32 * time.Millisecond

	// DefaultSettle is the delay after each pointer primitive. Below about
	// 6ms the game misses button releases.
	DefaultSettle = 7 * time.Millisecond
)

// State as it is after the game starts.
const (
	StartBrushStep = 9
	StartColor     = palette.Black
	StartTool      = Paintbrush
)

// State is the easel state the game retains between operations.
type State struct {
	Orientation Orientation
	Color       palette.Color
	Tool        Tool
	BrushStep   int
}

// Easel draws on the game's easel through a pointer driver. It is not safe
// for concurrent use; the pointer can only do one thing at a time.
type Easel struct {
	coords *Coords
	drv    pointer.Driver
	settle time.Duration
	sleep  func(time.Duration)
	state  State
}

// Option configures an Easel.
type Option func(*Easel)

// WithSettle sets the delay after each pointer primitive.
func WithSettle(d time.Duration) Option {
	return func(e *Easel) { e.settle = d }
}

// WithSleep replaces time.Sleep, so tests can run without waiting.
func WithSleep(fn func(time.Duration)) Option {
	return func(e *Easel) { e.sleep = fn }
}

// WithState sets the assumed starting state, for sessions that do not
// begin on a freshly started game.
func WithState(s State) Option {
	return func(e *Easel) { e.state = s }
}

// New returns an Easel that clicks on the controls described by coords
// using drv.
func New(coords *Coords, drv pointer.Driver, opts ...Option) *Easel {
	e := &Easel{
		coords: coords,
		drv:    drv,
		settle: DefaultSettle,
		sleep:  time.Sleep,
		state: State{
			Orientation: Portrait,
			Color:       StartColor,
			Tool:        StartTool,
			BrushStep:   StartBrushStep,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the tracked easel state.
func (e *Easel) State() State {
	return e.state
}

// Coords returns the control coordinates the easel was created with.
func (e *Easel) Coords() *Coords {
	return e.coords
}

// Bounds returns the screen rectangle of the canvas in the current
// orientation.
func (e *Easel) Bounds() geom.Bounds {
	return e.coords.BoundsFor(e.state.Orientation)
}

// Size returns the drawable extent of the canvas in the current
// orientation.
func (e *Easel) Size() (cols, rows int) {
	b := e.Bounds()
	return b.Dx(), b.Dy()
}

// BoundsFor returns the canvas rectangle for orientation o.
func (c *Coords) BoundsFor(o Orientation) geom.Bounds {
	if o == Landscape {
		return c.LandscapeBounds
	}
	return c.PortraitBounds
}

// SetOrientation clicks the orientation button and records the new
// orientation. The button toggles, so it is clicked even if o is already
// active; callers check State first.
func (e *Easel) SetOrientation(o Orientation) {
	p := e.coords.ChangeOrientation
	e.moveAndClick(p.X, p.Y)
	if e.state.Orientation == Portrait {
		e.state.Orientation = Landscape
	} else {
		e.state.Orientation = Portrait
	}
	if e.state.Orientation != o {
		Logger().Warn("orientation toggle did not reach the requested orientation",
			"want", o.String(), "have", e.state.Orientation.String())
	}
	Logger().Info("orientation changed", "orientation", e.state.Orientation.String())
}

// ToggleOrientation flips between portrait and landscape.
func (e *Easel) ToggleOrientation() {
	if e.state.Orientation == Portrait {
		e.SetOrientation(Landscape)
	} else {
		e.SetOrientation(Portrait)
	}
}

// SetTool selects t.
func (e *Easel) SetTool(t Tool) {
	var p geom.Coord
	switch t {
	case Pen:
		p = e.coords.Pen
	case SprayCan:
		p = e.coords.SprayCan
	default:
		p = e.coords.Paintbrush
	}
	e.moveAndClick(p.X, p.Y)
	e.state.Tool = t
	Logger().Debug("tool changed", "tool", t.String())
}

// SetColor selects c. Nothing is clicked if c is already active; clicking
// an active swatch again is not reliably a no-op in the game.
func (e *Easel) SetColor(c palette.Color) {
	if c == e.state.Color {
		return
	}
	row, col := c.Grid()
	p := e.coords.ColorStart.Add(geom.C(row*e.coords.ColorRowStep, col*e.coords.ColorColStep))
	e.moveAndClick(p.X, p.Y)
	e.state.Color = c
	if o, ok := e.drv.(pointer.Observer); ok {
		o.ColorChanged(c)
	}
}

// SetBrushStep changes the brush size to step, clamped to
// [0, MaxBrushStep], by clicking the increase or decrease button once per
// step of difference.
func (e *Easel) SetBrushStep(step int) {
	step = max(0, min(step, MaxBrushStep))
	delta := step - e.state.BrushStep
	if delta != 0 {
		p := e.coords.DecreaseBrush
		if delta > 0 {
			p = e.coords.IncreaseBrush
		}
		e.moveAndClick(p.X, p.Y)
		for i := 1; i < abs(delta); i++ {
			e.click(BrushSettle)
			e.sleep(BrushSettle)
		}
	}
	e.state.BrushStep = step
	if o, ok := e.drv.(pointer.Observer); ok {
		o.BrushChanged(step)
	}
}

func (e *Easel) move(x, y int) {
	e.drv.MoveTo(x, y)
	e.sleep(e.settle)
}

func (e *Easel) press() {
	e.drv.Press(pointer.Left)
	e.sleep(e.settle)
}

func (e *Easel) release() {
	e.drv.Release(pointer.Left)
	e.sleep(e.settle)
}

func (e *Easel) click(wait time.Duration) {
	e.drv.Press(pointer.Left)
	e.sleep(wait)
	e.drv.Release(pointer.Left)
	e.sleep(wait)
}

func (e *Easel) moveAndClick(x, y int) {
	e.move(x, y)
	e.click(e.settle)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
