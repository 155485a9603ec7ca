package easel

import (
	"errors"
	"fmt"
	"image/color"

	"easelprint/internal/geom"
	"easelprint/internal/palette"
)

var (
	// ErrOutOfBounds is returned when a point falls outside the canvas.
	ErrOutOfBounds = errors.New("out of bounds drawing to the easel")

	// ErrNoCoordinates is returned when a shape has no points.
	ErrNoCoordinates = errors.New("drawing requires at least one point")
)

// pixelInset is how far DrawPixel keeps single clicks from the canvas
// edge, in addition to the brush step.
const pixelInset = 12

// Draw draws points, given relative to the canvas origin, as one
// continuous stroke in color c. If closeShape is set the stroke returns to
// the first point. fill implies closeShape and fills the polygon after the
// outline is drawn.
//
// All points are checked before anything is drawn. Gestures issued by
// earlier calls are not undone when a later call fails.
func (e *Easel) Draw(points []geom.Coord, c palette.Color, closeShape, fill bool) error {
	if len(points) == 0 {
		return ErrNoCoordinates
	}
	e.SetColor(c)

	b := e.Bounds()
	screen := make([]geom.Coord, len(points))
	for i, p := range points {
		s := p.Add(b.UL)
		if b.Exceeds(s) {
			return fmt.Errorf("%w: %v maps to %v beyond %v", ErrOutOfBounds, p, s, b.LR)
		}
		screen[i] = s
	}

	e.move(screen[0].X, screen[0].Y)
	e.press()
	for _, s := range screen[1:] {
		e.move(s.X, s.Y)
	}
	if closeShape || fill {
		e.move(screen[0].X, screen[0].Y)
	}
	e.release()

	if fill {
		return e.fill(points, c)
	}
	return nil
}

// DrawLine draws a straight line from p1 to p2.
func (e *Easel) DrawLine(p1, p2 geom.Coord, c palette.Color) error {
	return e.Draw([]geom.Coord{p1, p2}, c, false, false)
}

// DrawPixel clicks once at p in the palette color nearest to c. The point
// is inset by the brush footprint.
func (e *Easel) DrawPixel(p geom.Coord, c color.Color) error {
	b := e.Bounds()
	inset := e.state.BrushStep + pixelInset
	s := p.Add(b.UL).Add(geom.C(inset, inset))
	if b.Exceeds(s) {
		return fmt.Errorf("%w: pixel %v maps to %v beyond %v", ErrOutOfBounds, p, s, b.LR)
	}
	e.SetColor(palette.Nearest(c))
	e.moveAndClick(s.X, s.Y)
	return nil
}
