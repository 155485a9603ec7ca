package pointer

import (
	"fmt"
	"os/exec"
	"strconv"
)

// Xdotool drives the X11 cursor by running the xdotool command. Failures
// are reported through OnError, since the Driver methods cannot return
// them; a nil OnError ignores them.
type Xdotool struct {
	Path    string // defaults to "xdotool" on $PATH
	OnError func(error)

	run func(name string, args ...string) error
}

// NewXdotool locates xdotool and returns a driver for it.
func NewXdotool() (*Xdotool, error) {
	path, err := exec.LookPath("xdotool")
	if err != nil {
		return nil, fmt.Errorf("xdotool not found: %w", err)
	}
	return &Xdotool{Path: path}, nil
}

func (x *Xdotool) MoveTo(px, py int) {
	x.exec("mousemove", strconv.Itoa(px), strconv.Itoa(py))
}

func (x *Xdotool) Press(b Button) {
	x.exec("mousedown", xButton(b))
}

func (x *Xdotool) Release(b Button) {
	x.exec("mouseup", xButton(b))
}

func (x *Xdotool) exec(args ...string) {
	run := x.run
	if run == nil {
		run = func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		}
	}
	name := x.Path
	if name == "" {
		name = "xdotool"
	}
	if err := run(name, args...); err != nil && x.OnError != nil {
		x.OnError(fmt.Errorf("xdotool %v: %w", args, err))
	}
}

// xButton maps a Button onto X11 button numbers.
func xButton(b Button) string {
	if b == Right {
		return "3"
	}
	return "1"
}
