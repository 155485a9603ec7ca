// Package geom holds the integer coordinate types shared by the easel and
// the stroke encoder.
package geom

import (
	"encoding/json"
	"fmt"
)

// Coord is an integer point. A Coord is either relative to the upper left
// corner of the easel or absolute in screen space; Easel.Draw converts the
// former into the latter exactly once.
type Coord struct {
	X, Y int
}

// C is a convenience function to create a Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Coords builds a slice of Coords from x, y pairs.
func Coords(pairs ...[2]int) []Coord {
	out := make([]Coord, len(pairs))
	for i, p := range pairs {
		out[i] = Coord{X: p[0], Y: p[1]}
	}
	return out
}

// Add returns the sum of two coordinates.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns the difference of two coordinates.
func (c Coord) Sub(d Coord) Coord {
	return Coord{X: c.X - d.X, Y: c.Y - d.Y}
}

// Mul returns the coordinate scaled by s.
func (c Coord) Mul(s int) Coord {
	return Coord{X: c.X * s, Y: c.Y * s}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// MarshalJSON encodes the coordinate as a two element array.
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.X, c.Y})
}

// UnmarshalJSON decodes a two element array.
func (c *Coord) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coordinate must be [x, y]: %w", err)
	}
	c.X, c.Y = pair[0], pair[1]
	return nil
}
