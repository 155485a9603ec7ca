// Package pointer abstracts the device that moves the on-screen cursor and
// presses its buttons.
package pointer

import "easelprint/internal/palette"

// Button identifies a pointer button.
type Button int

// Supported buttons.
const (
	Left Button = iota
	Right
)

func (b Button) String() string {
	switch b {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Driver is the capability the easel needs from a pointing device. Calls
// are synchronous; the caller waits for the device to settle after each
// one.
type Driver interface {
	MoveTo(x, y int)
	Press(b Button)
	Release(b Button)
}

// Observer is implemented by drivers that want to know about easel state
// changes, such as previews that render strokes in their real color.
type Observer interface {
	ColorChanged(c palette.Color)
	BrushChanged(step int)
}

// Tee returns a Driver that forwards every call to each of drivers in
// order. If any of them implements Observer, so does the result.
func Tee(drivers ...Driver) Driver {
	return tee(drivers)
}

type tee []Driver

func (t tee) MoveTo(x, y int) {
	for _, d := range t {
		d.MoveTo(x, y)
	}
}

func (t tee) Press(b Button) {
	for _, d := range t {
		d.Press(b)
	}
}

func (t tee) Release(b Button) {
	for _, d := range t {
		d.Release(b)
	}
}

func (t tee) ColorChanged(c palette.Color) {
	for _, d := range t {
		if o, ok := d.(Observer); ok {
			o.ColorChanged(c)
		}
	}
}

func (t tee) BrushChanged(step int) {
	for _, d := range t {
		if o, ok := d.(Observer); ok {
			o.BrushChanged(step)
		}
	}
}
