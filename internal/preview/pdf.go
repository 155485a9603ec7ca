package preview

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// SavePDF writes the sketch as a single page PDF with one point per screen
// pixel. If w or h is zero, the sketch's extent is used.
func (s *Sketch) SavePDF(path string, w, h int) error {
	if w <= 0 || h <= 0 {
		w, h = s.Extent()
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("nothing to render")
	}

	// Portrait keeps Wd and Ht as given; landscape would swap them.
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(w), Ht: float64(h)},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetLineCapStyle("round")

	for _, seg := range s.Segments {
		c := seg.Color.NRGBA()
		p.SetDrawColor(int(c.R), int(c.G), int(c.B))
		p.SetLineWidth(lineWidth(seg.Brush))
		p.Line(float64(seg.From.X), float64(seg.From.Y), float64(seg.To.X), float64(seg.To.Y))
	}
	return p.OutputFileAndClose(path)
}
