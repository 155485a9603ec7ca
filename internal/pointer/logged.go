package pointer

import (
	"log/slog"

	"easelprint/internal/palette"
)

// Logged wraps d so that every call is logged at debug level. Observer
// calls are forwarded, so wrapping does not hide a preview.
func Logged(d Driver, logger *slog.Logger) Driver {
	return &logged{d: d, log: logger}
}

type logged struct {
	d   Driver
	log *slog.Logger
}

func (l *logged) MoveTo(x, y int) {
	l.log.Debug("pointer move", "x", x, "y", y)
	l.d.MoveTo(x, y)
}

func (l *logged) Press(b Button) {
	l.log.Debug("pointer press", "button", b.String())
	l.d.Press(b)
}

func (l *logged) Release(b Button) {
	l.log.Debug("pointer release", "button", b.String())
	l.d.Release(b)
}

func (l *logged) ColorChanged(c palette.Color) {
	l.log.Debug("color changed", "color", c.String())
	if o, ok := l.d.(Observer); ok {
		o.ColorChanged(c)
	}
}

func (l *logged) BrushChanged(step int) {
	l.log.Debug("brush changed", "step", step)
	if o, ok := l.d.(Observer); ok {
		o.BrushChanged(step)
	}
}
