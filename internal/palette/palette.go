// Package palette describes the fixed set of colors the easel offers and
// maps arbitrary colors onto it.
package palette

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is one of the easel's palette entries. The zero value is Black.
type Color uint8

// Palette entries in swatch order.
const (
	Black Color = iota
	Grey
	White
	DarkBrown
	Brown
	LightBrown
	DarkRed
	Red
	Pink
	Orange
	DarkYellow
	Yellow
	DarkGreen
	Green
	LightGreen
	DarkBlue
	Blue
	LightBlue
	DarkIndigo
	Indigo
	LightIndigo
	DarkViolet
	Violet
	LightViolet

	numColors
)

// swatch holds the static facts about a palette entry: its canonical color
// and where its button sits in the palette grid.
type swatch struct {
	name     string
	rgb      [3]uint8
	row, col int
}

var swatches = [numColors]swatch{
	Black:       {"black", [3]uint8{0x0d, 0x0d, 0x0d}, 0, 0},
	Grey:        {"grey", [3]uint8{0x76, 0x76, 0x76}, 0, 1},
	White:       {"white", [3]uint8{0xe5, 0xe5, 0xe5}, 0, 2},
	DarkBrown:   {"dark_brown", [3]uint8{0x62, 0x32, 0x00}, 1, 0},
	Brown:       {"brown", [3]uint8{0xb9, 0x7a, 0x56}, 1, 1},
	LightBrown:  {"light_brown", [3]uint8{0xef, 0xe4, 0xb0}, 1, 2},
	DarkRed:     {"dark_red", [3]uint8{0x7e, 0x0d, 0x0d}, 2, 0},
	Red:         {"red", [3]uint8{0xed, 0x1c, 0x22}, 2, 1},
	Pink:        {"pink", [3]uint8{0xff, 0xae, 0xc9}, 2, 2},
	Orange:      {"orange", [3]uint8{0xff, 0x7f, 0x26}, 3, 0},
	DarkYellow:  {"dark_yellow", [3]uint8{0xff, 0xc9, 0x0d}, 3, 1},
	Yellow:      {"yellow", [3]uint8{0xfa, 0xed, 0x16}, 3, 2},
	DarkGreen:   {"dark_green", [3]uint8{0x26, 0x5d, 0x38}, 4, 0},
	Green:       {"green", [3]uint8{0x35, 0xab, 0x55}, 4, 1},
	LightGreen:  {"light_green", [3]uint8{0xb5, 0xe6, 0x1c}, 4, 2},
	DarkBlue:    {"dark_blue", [3]uint8{0x00, 0x65, 0x91}, 5, 0},
	Blue:        {"blue", [3]uint8{0x00, 0xa2, 0xe8}, 5, 1},
	LightBlue:   {"light_blue", [3]uint8{0x99, 0xd9, 0xea}, 5, 2},
	DarkIndigo:  {"dark_indigo", [3]uint8{0x1c, 0x22, 0x63}, 6, 0},
	Indigo:      {"indigo", [3]uint8{0x30, 0x39, 0xcc}, 6, 1},
	LightIndigo: {"light_indigo", [3]uint8{0x70, 0x92, 0xbe}, 6, 2},
	DarkViolet:  {"dark_violet", [3]uint8{0x95, 0x35, 0x96}, 7, 0},
	Violet:      {"violet", [3]uint8{0xd5, 0x5f, 0xd7}, 7, 1},
	LightViolet: {"light_violet", [3]uint8{0xc1, 0xa7, 0xd7}, 7, 2},
}

// All returns every palette entry in swatch order.
func All() []Color {
	out := make([]Color, numColors)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// Valid reports whether c is a palette entry.
func (c Color) Valid() bool {
	return c < numColors
}

// RGBA returns the canonical, fully opaque color of the entry.
// Color therefore satisfies color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the canonical color of the entry.
func (c Color) NRGBA() color.NRGBA {
	v := swatches[c].rgb
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: 0xff}
}

// Grid returns the row and column of the entry's swatch button.
func (c Color) Grid() (row, col int) {
	s := swatches[c]
	return s.row, s.col
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return swatches[c].name
}

// Parse looks up a palette entry by name. Matching ignores case and treats
// spaces and dashes like underscores, so "Dark Red" and "dark-red" work.
func Parse(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	for i, s := range swatches {
		if s.name == key {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown palette color %q", name)
}

// MarshalText encodes the entry by name.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid palette color %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes an entry name.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Palette returns the entries as a color.Palette in swatch order, for use
// with Floyd-Steinberg dithering and paletted images.
func Palette() color.Palette {
	p := make(color.Palette, numColors)
	for i := range p {
		p[i] = Color(i).NRGBA()
	}
	return p
}
