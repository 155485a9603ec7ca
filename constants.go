package main

type Mode int

const (
	ModeDrawing Mode = iota
	ModePaused
	ModeDone
	ModeFailed
)

type Source int

const (
	SourceImage Source = iota
	SourceShapes
	SourceClipboard
)

const (
	rcFileName        = ".easelprintrc"
	defaultCoordsFile = "coords.json"
	defaultLogFile    = "easelprint.log"
	defaultMouseWait  = 7 // milliseconds

	driverXdotool = "xdotool"
	driverDryRun  = "dry-run"

	progressSteps = 200 // progress messages sent to the TUI per session
)
