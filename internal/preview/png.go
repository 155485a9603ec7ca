package preview

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// captionHeight is the strip reserved under the drawing for the caption.
const captionHeight = 20

// SavePNG renders the sketch onto a w by h canvas and writes it to path.
// A non-empty caption is printed in a strip below the canvas. If w or h is
// zero, the sketch's extent is used.
func (s *Sketch) SavePNG(path string, w, h int, caption string) error {
	if w <= 0 || h <= 0 {
		w, h = s.Extent()
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("nothing to render")
	}

	imgH := h
	if caption != "" {
		imgH += captionHeight
	}
	dc := gg.NewContext(w, imgH)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetLineCapRound()

	for _, seg := range s.Segments {
		dc.SetColor(seg.Color.NRGBA())
		dc.SetLineWidth(lineWidth(seg.Brush))
		if seg.From == seg.To {
			dc.DrawPoint(float64(seg.From.X)+0.5, float64(seg.From.Y)+0.5, lineWidth(seg.Brush)/2)
			dc.Fill()
			continue
		}
		dc.DrawLine(float64(seg.From.X)+0.5, float64(seg.From.Y)+0.5,
			float64(seg.To.X)+0.5, float64(seg.To.Y)+0.5)
		dc.Stroke()
	}

	if caption != "" {
		ttf, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return fmt.Errorf("failed to parse font: %v", err)
		}
		dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
			Size:    11,
			DPI:     72,
			Hinting: font.HintingFull,
		}))
		dc.SetColor(color.Black)
		dc.DrawString(caption, 4, float64(h)+captionHeight-6)
	}

	return dc.SavePNG(path)
}
