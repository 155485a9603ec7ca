package encoder

import "easelprint/internal/geom"

// borders paints the canvas area outside the image: full rows above and
// below it, and the gaps to its left and right.
func (enc *Encoder) borders() error {
	last := enc.cols - 1
	for y := 0; y < enc.offsetY; y++ {
		if err := enc.line(0, last, y); err != nil {
			return err
		}
	}

	top, bottom := enc.offsetY, enc.offsetY+enc.height
	if enc.offsetX > 0 {
		for y := top; y < bottom; y++ {
			if err := enc.line(0, enc.offsetX-1, y); err != nil {
				return err
			}
		}
	}
	if right := enc.offsetX + enc.width; right < enc.cols {
		for y := top; y < bottom; y++ {
			if err := enc.line(right, last, y); err != nil {
				return err
			}
		}
	}

	for y := bottom; y < enc.rows; y++ {
		if err := enc.line(0, last, y); err != nil {
			return err
		}
	}
	return nil
}

func (enc *Encoder) line(x0, x1, y int) error {
	return enc.stroke(geom.C(x0, y), geom.C(x1, y), enc.background)
}
