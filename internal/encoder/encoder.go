// Package encoder turns a raster image into horizontal strokes on the
// easel, merging runs of pixels that map to the same palette entry.
package encoder

import (
	"fmt"
	"image"
	"image/color"

	"easelprint/internal/easel"
	"easelprint/internal/geom"
	"easelprint/internal/palette"
)

// Encoder draws an image row by row. Each row is flushed on its own; runs
// are never merged across rows.
type Encoder struct {
	easel      *easel.Easel
	background palette.Color
	gate       *Gate
	progress   func(done, total int)

	cols, rows       int // canvas extent in the chosen orientation
	width, height    int // image size
	offsetX, offsetY int // centering offsets

	started  bool
	runStart geom.Coord
	runColor palette.Color
	strokes  int
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithBackground sets the color of the letterbox borders. The default is
// white.
func WithBackground(c palette.Color) Option {
	return func(enc *Encoder) { enc.background = c }
}

// WithGate makes Encode wait on g between pixels.
func WithGate(g *Gate) Option {
	return func(enc *Encoder) { enc.gate = g }
}

// WithProgress registers fn to be called after each pixel Encode handles.
func WithProgress(fn func(done, total int)) Option {
	return func(enc *Encoder) { enc.progress = fn }
}

// New prepares e for drawing an image of the given size: it selects the
// paintbrush at its smallest size and the orientation matching the image's
// aspect, then centers the image on the canvas.
func New(e *easel.Easel, width, height int, opts ...Option) *Encoder {
	enc := &Encoder{
		easel:      e,
		background: palette.White,
		width:      width,
		height:     height,
	}
	for _, opt := range opts {
		opt(enc)
	}

	e.SetBrushStep(0)
	e.SetTool(easel.Paintbrush)
	o := e.State().Orientation
	if (width > height && o == easel.Portrait) || (height > width && o == easel.Landscape) {
		e.ToggleOrientation()
	}

	enc.cols, enc.rows = e.Size()
	enc.offsetX = max(0, (enc.cols-width)/2)
	enc.offsetY = max(0, (enc.rows-height)/2)
	easel.Logger().Info("encoder ready",
		"image", fmt.Sprintf("%dx%d", width, height),
		"canvas", fmt.Sprintf("%dx%d", enc.cols, enc.rows),
		"orientation", e.State().Orientation.String(),
		"offset", geom.C(enc.offsetX, enc.offsetY).String())
	return enc
}

// Offset returns the centering offset applied to image coordinates.
func (enc *Encoder) Offset() geom.Coord {
	return geom.C(enc.offsetX, enc.offsetY)
}

// Strokes returns the number of strokes drawn so far.
func (enc *Encoder) Strokes() int {
	return enc.strokes
}

// HandlePixel processes the pixel at image coordinates (x, y). Pixels must
// arrive in row-major order. Nothing is drawn until the row ends or the
// quantized color changes.
func (enc *Encoder) HandlePixel(c color.Color, x, y int) error {
	p := geom.C(x+enc.offsetX, y+enc.offsetY)
	q := palette.Nearest(c)

	if !enc.started {
		enc.started = true
		enc.runStart, enc.runColor = p, q
		return nil
	}

	if p.Y > enc.runStart.Y {
		if err := enc.flushRow(); err != nil {
			return err
		}
		enc.runStart, enc.runColor = p, q
	}

	if q != enc.runColor {
		if err := enc.stroke(enc.runStart, geom.C(p.X-1, p.Y), enc.runColor); err != nil {
			return err
		}
		enc.runStart, enc.runColor = p, q
	}
	return nil
}

// Finish draws the pending run and then fills the letterbox around the
// image with the background color.
func (enc *Encoder) Finish() error {
	if enc.started {
		if err := enc.flushRow(); err != nil {
			return err
		}
		enc.started = false
	}
	return enc.borders()
}

// Encode draws img, then finishes. If a gate is configured, it is checked
// before every pixel.
func (enc *Encoder) Encode(img image.Image) error {
	b := img.Bounds()
	total := b.Dx() * b.Dy()
	done := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			enc.gate.Wait()
			if err := enc.HandlePixel(img.At(x, y), x-b.Min.X, y-b.Min.Y); err != nil {
				return fmt.Errorf("pixel (%d,%d): %w", x, y, err)
			}
			done++
			if enc.progress != nil {
				enc.progress(done, total)
			}
		}
	}
	enc.gate.Wait()
	return enc.Finish()
}

func (enc *Encoder) flushRow() error {
	end := geom.C(enc.offsetX+enc.width-1, enc.runStart.Y)
	return enc.stroke(enc.runStart, end, enc.runColor)
}

func (enc *Encoder) stroke(from, to geom.Coord, c palette.Color) error {
	easel.Logger().Debug("stroke", "from", from.String(), "to", to.String(), "color", c.String())
	enc.strokes++
	return enc.easel.DrawLine(from, to, c)
}
