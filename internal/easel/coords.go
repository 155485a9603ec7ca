package easel

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"easelprint/internal/geom"
)

// ErrInvalidBounds is returned by LoadCoords when a bounds rectangle has
// its corners the wrong way round.
var ErrInvalidBounds = errors.New("invalid easel bounds")

// Coords records where the easel's controls are on screen. It is produced
// once by calibration and loaded at the start of every session.
type Coords struct {
	PortraitBounds    geom.Bounds `json:"portrait_bounds"`
	LandscapeBounds   geom.Bounds `json:"landscape_bounds"`
	Paintbrush        geom.Coord  `json:"paintbrush"`
	SprayCan          geom.Coord  `json:"spray_can"`
	Pen               geom.Coord  `json:"pen"`
	DecreaseBrush     geom.Coord  `json:"decrease_brush"`
	IncreaseBrush     geom.Coord  `json:"increase_brush"`
	ChangeOrientation geom.Coord  `json:"change_orientation"`
	ColorStart        geom.Coord  `json:"color_start"`
	ColorRowStep      int         `json:"color_row_step"`
	ColorColStep      int         `json:"color_col_step"`
}

// LoadCoords reads and validates a coordinates document.
func LoadCoords(path string) (*Coords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading easel coordinates: %w", err)
	}
	var c Coords
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing easel coordinates %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &c, nil
}

// Validate checks the invariants of the document.
func (c *Coords) Validate() error {
	if !c.PortraitBounds.Valid() {
		return fmt.Errorf("%w: portrait %v", ErrInvalidBounds, c.PortraitBounds)
	}
	if !c.LandscapeBounds.Valid() {
		return fmt.Errorf("%w: landscape %v", ErrInvalidBounds, c.LandscapeBounds)
	}
	return nil
}

// Save writes the document as indented JSON.
func (c *Coords) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// Template returns a placeholder document for a 1920x1080 screen, meant to
// be edited by hand when no calibration has been done yet.
func Template() *Coords {
	return &Coords{
		PortraitBounds:    geom.B(760, 140, 1160, 940),
		LandscapeBounds:   geom.B(560, 290, 1360, 790),
		Paintbrush:        geom.C(1500, 300),
		SprayCan:          geom.C(1500, 360),
		Pen:               geom.C(1500, 420),
		DecreaseBrush:     geom.C(1460, 520),
		IncreaseBrush:     geom.C(1540, 520),
		ChangeOrientation: geom.C(960, 1000),
		ColorStart:        geom.C(300, 300),
		ColorRowStep:      40,
		ColorColStep:      40,
	}
}
