package palette

import "image/color"

// Nearest returns the palette entry closest to c.
//
// The distance is the sum of squared channel differences. For translucent
// input, each channel difference is the larger of the difference against
// the color composited over black and over white, so a pixel is matched
// as it could appear over any opaque background. Ties go to the entry that
// comes first in swatch order.
func Nearest(c color.Color) Color {
	best := Black
	bestDist := int64(-1)
	for i := range swatches {
		d := Distance(c, Color(i))
		if bestDist < 0 || d < bestDist {
			best = Color(i)
			bestDist = d
		}
	}
	return best
}

// Distance returns the distance used by Nearest between c and the palette
// entry p.
func Distance(c color.Color, p Color) int64 {
	// RGBA is alpha-premultiplied, which is the color over black.
	r, g, b, a := c.RGBA()
	in := [3]int64{int64(r >> 8), int64(g >> 8), int64(b >> 8)}
	gap := 0xff - int64(a>>8)

	ref := swatches[p].rgb
	var sum int64
	for i, v := range in {
		black := v - int64(ref[i])
		white := black + gap
		sum += max(black*black, white*white)
	}
	return sum
}

// Quantizer maps arbitrary colors onto the palette. It implements
// color.Model so it can be passed wherever a model is expected.
type Quantizer struct{}

// Convert returns the canonical color of the nearest palette entry.
func (Quantizer) Convert(c color.Color) color.Color {
	return Nearest(c).NRGBA()
}

var _ color.Model = Quantizer{}
