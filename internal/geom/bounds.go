package geom

import (
	"encoding/json"
	"fmt"
)

// Bounds is the rectangle spanned by an upper left and a lower right
// corner, both inclusive.
type Bounds struct {
	UL, LR Coord
}

// B is a convenience function to create Bounds.
func B(ulx, uly, lrx, lry int) Bounds {
	return Bounds{UL: Coord{ulx, uly}, LR: Coord{lrx, lry}}
}

// Valid reports whether the upper left corner is above and to the left of
// the lower right corner.
func (b Bounds) Valid() bool {
	return b.UL.X <= b.LR.X && b.UL.Y <= b.LR.Y
}

// Dx returns the horizontal extent.
func (b Bounds) Dx() int { return b.LR.X - b.UL.X }

// Dy returns the vertical extent.
func (b Bounds) Dy() int { return b.LR.Y - b.UL.Y }

// Exceeds reports whether p lies to the right of or below the lower right
// corner. Only the lower right corner is checked; points are produced by
// adding the upper left corner to non-negative offsets.
func (b Bounds) Exceeds(p Coord) bool {
	return p.X > b.LR.X || p.Y > b.LR.Y
}

func (b Bounds) String() string {
	return fmt.Sprintf("%v-%v", b.UL, b.LR)
}

// MarshalJSON encodes the bounds as [[x, y], [x, y]].
func (b Bounds) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]Coord{b.UL, b.LR})
}

// UnmarshalJSON decodes [[x, y], [x, y]].
func (b *Bounds) UnmarshalJSON(data []byte) error {
	var pair [2]Coord
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("bounds must be [[x, y], [x, y]]: %w", err)
	}
	b.UL, b.LR = pair[0], pair[1]
	return nil
}
