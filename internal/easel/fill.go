package easel

import (
	"easelprint/internal/geom"
	"easelprint/internal/palette"
)

// fillStep is the distance between scanlines. It is half the footprint of
// the smallest brush.
const fillStep = 6

type edge struct {
	p0, p1 geom.Coord
	slope  float64 // dy/dx; 0 marks a vertical edge
}

// fill paints the interior of the polygon with horizontal lines using the
// smallest brush. The brush size in effect before the call is restored on
// return, including when an error stops the fill early.
//
// Intersections on a scanline are paired in edge order and are not sorted
// by x. This is correct for convex polygons and for shapes whose edges are
// listed so that they already alternate, such as the star outlines drawn by
// the shapes mode. Callers depend on that pairing.
func (e *Easel) fill(points []geom.Coord, c palette.Color) error {
	if len(points) == 0 {
		return ErrNoCoordinates
	}
	edges := make([]edge, 0, len(points))
	for i := 0; i+1 < len(points); i++ {
		edges = append(edges, newEdge(points[i], points[i+1]))
	}
	edges = append(edges, newEdge(points[len(points)-1], points[0]))

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	prev := e.state.BrushStep
	e.SetBrushStep(0)
	defer e.SetBrushStep(prev)

	xs := make([]int, 0, len(edges))
	for y := minY; y < maxY; y += fillStep {
		xs = xs[:0]
		for _, ed := range edges {
			lo, hi := min(ed.p0.Y, ed.p1.Y), max(ed.p0.Y, ed.p1.Y)
			if lo == hi || y <= lo || y >= hi {
				continue
			}
			xs = append(xs, ed.xAt(y))
		}

		inside := true
		for i := 0; i+1 < len(xs); i++ {
			if inside && xs[i] != xs[i+1] {
				if err := e.DrawLine(geom.C(xs[i], y), geom.C(xs[i+1], y), c); err != nil {
					return err
				}
			}
			inside = !inside
		}
	}
	Logger().Debug("polygon filled", "points", len(points), "color", c.String())
	return nil
}

func newEdge(p0, p1 geom.Coord) edge {
	ed := edge{p0: p0, p1: p1}
	if dx := p1.X - p0.X; dx != 0 {
		ed.slope = float64(p1.Y-p0.Y) / float64(dx)
	}
	return ed
}

// xAt returns where the edge crosses scanline y, truncated toward zero.
func (ed edge) xAt(y int) int {
	if ed.slope == 0 {
		return ed.p0.X
	}
	return int(float64(ed.p0.X) + float64(y-ed.p0.Y)/ed.slope)
}
