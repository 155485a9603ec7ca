package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"easelprint/internal/easel"
	"easelprint/internal/encoder"
	"easelprint/internal/geom"
	"easelprint/internal/palette"
)

var errNoShapes = errors.New("no shapes to draw")

// Shape is one entry of a shapes document. Points are canvas relative.
type Shape struct {
	Points []geom.Coord  `json:"points"`
	Color  palette.Color `json:"color"`
	Close  bool          `json:"close,omitempty"`
	Fill   bool          `json:"fill,omitempty"`
	Brush  *int          `json:"brush,omitempty"`
}

// houseShapes is drawn when the shapes document is "house": a red wall, a
// blue roof and a yellow star, all with the smallest brush.
var houseShapes = []Shape{
	{Points: geom.Coords([2]int{100, 100}, [2]int{100, 150}, [2]int{150, 150}, [2]int{150, 100}), Color: palette.Red, Close: true, Fill: true, Brush: new(int)},
	{Points: geom.Coords([2]int{125, 50}, [2]int{100, 100}, [2]int{150, 100}), Color: palette.Blue, Close: true, Fill: true},
	{Points: geom.Coords(
		[2]int{200, 200}, [2]int{150, 250}, [2]int{100, 250}, [2]int{150, 300}, [2]int{125, 350},
		[2]int{200, 300}, [2]int{250, 350}, [2]int{225, 300}, [2]int{300, 250}, [2]int{250, 250},
	), Color: palette.Yellow, Close: true, Fill: true},
}

func parseShapes(r io.Reader) ([]Shape, error) {
	var shapes []Shape
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&shapes); err != nil {
		return nil, fmt.Errorf("parse shapes: %w", err)
	}
	if len(shapes) == 0 {
		return nil, errNoShapes
	}
	for i, s := range shapes {
		if len(s.Points) == 0 {
			return nil, fmt.Errorf("shape %d: %w", i, easel.ErrNoCoordinates)
		}
		if s.Brush != nil && (*s.Brush < 0 || *s.Brush > easel.MaxBrushStep) {
			return nil, fmt.Errorf("shape %d: brush %d out of range 0-%d", i, *s.Brush, easel.MaxBrushStep)
		}
	}
	return shapes, nil
}

func loadShapes(settings *Settings) ([]Shape, error) {
	switch settings.Source {
	case SourceClipboard:
		text, err := readClipboardText()
		if err != nil {
			return nil, fmt.Errorf("read clipboard: %w", err)
		}
		return parseShapes(strings.NewReader(cleanClipboardText(text)))
	default:
		if settings.ShapesFile == "house" {
			return houseShapes, nil
		}
		f, err := os.Open(settings.ShapesFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return parseShapes(f)
	}
}

// drawShapes draws shapes in order, waiting on gate before each one.
func drawShapes(e *easel.Easel, shapes []Shape, gate *encoder.Gate, progress func(done, total int)) error {
	for i, s := range shapes {
		gate.Wait()
		if s.Brush != nil {
			e.SetBrushStep(*s.Brush)
		}
		if err := e.Draw(s.Points, s.Color, s.Close, s.Fill); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		if progress != nil {
			progress(i+1, len(shapes))
		}
	}
	return nil
}
