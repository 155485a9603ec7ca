// Package preview records the strokes an easel session would draw and
// renders them to PNG or PDF, so a session can be checked without the
// game running.
package preview

import (
	"easelprint/internal/geom"
	"easelprint/internal/palette"
	"easelprint/internal/pointer"
)

// Segment is a straight piece of a stroke in screen coordinates.
type Segment struct {
	From, To geom.Coord
	Color    palette.Color
	Brush    int
}

// Sketch is a pointer.Driver and pointer.Observer that keeps every segment
// the pointer travels while its left button is down. Clicks without
// movement, such as those on the easel's buttons, leave no trace.
type Sketch struct {
	// Origin is subtracted from every screen coordinate, usually the
	// upper left corner of the canvas.
	Origin geom.Coord

	Segments []Segment

	pos   geom.Coord
	down  bool
	color palette.Color
	brush int
}

// NewSketch returns a Sketch for an easel in its start-of-game state.
func NewSketch(origin geom.Coord, c palette.Color, brush int) *Sketch {
	return &Sketch{Origin: origin, color: c, brush: brush}
}

func (s *Sketch) MoveTo(x, y int) {
	p := geom.C(x, y).Sub(s.Origin)
	if s.down {
		s.Segments = append(s.Segments, Segment{From: s.pos, To: p, Color: s.color, Brush: s.brush})
	}
	s.pos = p
}

func (s *Sketch) Press(b pointer.Button) {
	if b == pointer.Left {
		s.down = true
	}
}

func (s *Sketch) Release(b pointer.Button) {
	if b == pointer.Left {
		s.down = false
	}
}

func (s *Sketch) ColorChanged(c palette.Color) { s.color = c }

func (s *Sketch) BrushChanged(step int) { s.brush = step }

// Extent returns the smallest size that holds every segment.
func (s *Sketch) Extent() (w, h int) {
	for _, seg := range s.Segments {
		w = max(w, seg.From.X+1, seg.To.X+1)
		h = max(h, seg.From.Y+1, seg.To.Y+1)
	}
	return w, h
}

// lineWidth is the rendered width of a segment drawn with brush step.
func lineWidth(step int) float64 {
	return float64(step) + 1
}

var (
	_ pointer.Driver   = (*Sketch)(nil)
	_ pointer.Observer = (*Sketch)(nil)
)
