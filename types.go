package main

import (
	"time"

	"easelprint/internal/encoder"
)

type model struct {
	width    int
	height   int
	mode     Mode
	title    string
	gate     *encoder.Gate
	done     int
	total    int
	strokes  int
	started  time.Time
	finished time.Duration
	err      error
	help     bool
}

type progressMsg struct {
	done  int
	total int
}

type doneMsg struct {
	strokes int
	err     error
}

// Settings is the merged result of the rc file and command-line flags.
type Settings struct {
	Config
	Source      Source
	ImageFile   string
	ShapesFile  string
	PreviewFile string
	Configure   string
	Verbose     bool
}
