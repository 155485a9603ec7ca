package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"easelprint/internal/easel"
	"easelprint/internal/encoder"
	"easelprint/internal/imageprep"
	"easelprint/internal/palette"
	"easelprint/internal/pointer"
	"easelprint/internal/preview"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	doneStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

const barWidth = 40

func main() {
	settings, err := parseFlags(os.Args[1:], loadConfig(), os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		os.Exit(2)
	}
	if err := run(settings); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

// parseFlags layers command-line flags over config.
func parseFlags(args []string, config *Config, output io.Writer) (*Settings, error) {
	fs := flag.NewFlagSet("easelprint", flag.ContinueOnError)
	fs.SetOutput(output)

	s := &Settings{Config: *config}
	var (
		noScale    bool
		noTUI      bool
		clip       bool
		background string
	)
	fs.StringVar(&s.ImageFile, "i", "", "image file to draw")
	fs.StringVar(&s.ImageFile, "image", "", "image file to draw")
	fs.StringVar(&s.ShapesFile, "shapes", "", `JSON shapes document to draw, or "house"`)
	fs.BoolVar(&clip, "shapes-clipboard", false, "read the shapes document from the clipboard")
	fs.StringVar(&s.CoordsFile, "coords", config.CoordsFile, "easel coordinates file")
	fs.StringVar(&s.Configure, "configure", "", "write a template coordinates file and exit")
	fs.IntVar(&s.MouseWait, "w", config.MouseWait, "delay after each mouse action in milliseconds")
	fs.IntVar(&s.MouseWait, "mouse-wait", config.MouseWait, "delay after each mouse action in milliseconds")
	fs.BoolVar(&s.Dither, "enable-dither", config.Dither, "dither the image to the palette before drawing")
	fs.BoolVar(&noScale, "no-scale", false, "draw the image at its own size")
	fs.StringVar(&background, "background", config.Background.String(), "letterbox color")
	fs.StringVar(&s.Driver, "driver", config.Driver, "pointer driver: xdotool or dry-run")
	fs.StringVar(&s.PreviewFile, "preview", "", "write the drawn strokes to a .png or .pdf file")
	fs.BoolVar(&noTUI, "no-tui", false, "log progress instead of showing the terminal UI")
	fs.StringVar(&s.LogFile, "log", config.LogFile, "log file used while the terminal UI is active")
	fs.BoolVar(&s.Verbose, "v", false, "log every pointer action")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	s.Scale = config.Scale && !noScale
	s.TUI = config.TUI && !noTUI

	bg, err := palette.Parse(background)
	if err != nil {
		return nil, err
	}
	s.Background = bg

	if s.MouseWait < 0 {
		return nil, fmt.Errorf("mouse wait must not be negative, got %d", s.MouseWait)
	}
	switch s.Driver {
	case driverXdotool, driverDryRun:
	default:
		return nil, fmt.Errorf("unknown driver %q", s.Driver)
	}

	if s.Configure != "" {
		return s, nil
	}
	sources := 0
	if s.ImageFile != "" {
		sources++
		s.Source = SourceImage
	}
	if s.ShapesFile != "" {
		sources++
		s.Source = SourceShapes
	}
	if clip {
		sources++
		s.Source = SourceClipboard
	}
	if sources != 1 {
		return nil, errors.New("choose exactly one of -i, -shapes or -shapes-clipboard")
	}
	return s, nil
}

// job draws one session and returns the number of strokes it made.
type job func(gate *encoder.Gate, progress func(done, total int)) (int, error)

func run(settings *Settings) error {
	if settings.Configure != "" {
		if err := easel.Template().Save(settings.Configure); err != nil {
			return err
		}
		fmt.Println(doneStyle.Render("wrote ") + settings.Configure)
		fmt.Println(statusStyle.Render("edit it to match your screen, then pass it with -coords"))
		return nil
	}

	logOutput := io.Writer(os.Stderr)
	if settings.TUI {
		f, err := tea.LogToFile(settings.LogFile, "easelprint")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOutput = f
	}
	logger := newLogger(logOutput, settings.Verbose)
	easel.SetLogger(logger)

	coords, err := easel.LoadCoords(settings.CoordsFile)
	if err != nil {
		return fmt.Errorf("%w (create one with -configure)", err)
	}

	drv, sketch, err := newDriver(settings, coords, logger)
	if err != nil {
		return err
	}

	opts := []easel.Option{easel.WithSettle(time.Duration(settings.MouseWait) * time.Millisecond)}
	if settings.Driver == driverDryRun {
		opts = append(opts, easel.WithSleep(func(time.Duration) {}))
	}
	e := easel.New(coords, drv, opts...)

	draw, err := prepareJob(settings, e)
	if err != nil {
		return err
	}

	gate := &encoder.Gate{}
	var strokes int
	if settings.TUI {
		strokes, err = runTUI(settings, gate, draw)
	} else {
		strokes, err = draw(gate, logProgress(logger))
	}
	if err != nil {
		return err
	}
	logger.Info("session finished", "strokes", strokes)

	if sketch != nil {
		area := screenArea(coords)
		caption := previewCaption(settings, strokes)
		if err := exportPreview(sketch, settings.PreviewFile, area.Dx()+1, area.Dy()+1, caption); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		logger.Info("preview written", "path", settings.PreviewFile)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("session", uuid.NewString())
}

// newDriver assembles the pointer pipeline: the selected backend, plus a
// preview sketch when one is requested, behind a logging wrapper.
func newDriver(settings *Settings, coords *easel.Coords, logger *slog.Logger) (pointer.Driver, *preview.Sketch, error) {
	var drivers []pointer.Driver
	switch settings.Driver {
	case driverXdotool:
		x, err := pointer.NewXdotool()
		if err != nil {
			return nil, nil, err
		}
		x.OnError = func(err error) { logger.Error("pointer", "err", err) }
		drivers = append(drivers, x)
	case driverDryRun:
		drivers = append(drivers, &pointer.Recorder{})
	}

	var sketch *preview.Sketch
	if settings.PreviewFile != "" {
		sketch = preview.NewSketch(screenArea(coords).UL, easel.StartColor, easel.StartBrushStep)
		drivers = append(drivers, sketch)
	}
	return pointer.Logged(pointer.Tee(drivers...), logger), sketch, nil
}

// prepareJob loads the session's input up front so that bad input is
// reported before any pointer action.
func prepareJob(settings *Settings, e *easel.Easel) (job, error) {
	if settings.Source == SourceImage {
		img, err := imageprep.Load(settings.ImageFile)
		if err != nil {
			return nil, err
		}
		if settings.Scale {
			img = imageprep.ScaleToEasel(img, e.Coords())
		}
		if settings.Dither {
			img = imageprep.Dither(img)
		}
		return func(gate *encoder.Gate, progress func(done, total int)) (int, error) {
			b := img.Bounds()
			enc := encoder.New(e, b.Dx(), b.Dy(),
				encoder.WithBackground(settings.Background),
				encoder.WithGate(gate),
				encoder.WithProgress(progress))
			err := enc.Encode(img)
			return enc.Strokes(), err
		}, nil
	}

	shapes, err := loadShapes(settings)
	if err != nil {
		return nil, err
	}
	return func(gate *encoder.Gate, progress func(done, total int)) (int, error) {
		err := drawShapes(e, shapes, gate, progress)
		return len(shapes), err
	}, nil
}

// logProgress logs every tenth of the way through a session.
func logProgress(logger *slog.Logger) func(done, total int) {
	last := -1
	return func(done, total int) {
		if total == 0 {
			return
		}
		if tenth := done * 10 / total; tenth != last {
			last = tenth
			logger.Info("progress", "done", done, "total", total)
		}
	}
}

func runTUI(settings *Settings, gate *encoder.Gate, draw job) (int, error) {
	p := tea.NewProgram(initialModel(settings, gate))

	go func() {
		last := -1
		strokes, err := draw(gate, func(done, total int) {
			if total == 0 {
				return
			}
			if step := done * progressSteps / total; step != last {
				last = step
				p.Send(progressMsg{done: done, total: total})
			}
		})
		p.Send(doneMsg{strokes: strokes, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	m := final.(model)
	if m.mode != ModeDone && m.mode != ModeFailed {
		return m.strokes, errors.New("interrupted")
	}
	return m.strokes, m.err
}

func initialModel(settings *Settings, gate *encoder.Gate) model {
	return model{
		mode:    ModeDrawing,
		title:   previewCaption(settings, 0),
		gate:    gate,
		started: time.Now(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		next, cmd := m.handleKey(msg.String())
		return next, cmd

	case progressMsg:
		m.done, m.total = msg.done, msg.total
		return m, nil

	case doneMsg:
		m.strokes = msg.strokes
		m.err = msg.err
		m.finished = time.Since(m.started)
		if msg.err != nil {
			m.mode = ModeFailed
		} else {
			m.mode = ModeDone
			m.done = m.total
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("easelprint") + "  " + statusStyle.Render(m.title) + "\n\n")
	b.WriteString(m.progressBar() + "\n\n")

	switch m.mode {
	case ModeDrawing:
		b.WriteString(statusStyle.Render(m.modeString()))
	case ModePaused:
		b.WriteString(pausedStyle.Render(m.modeString()))
	case ModeDone:
		b.WriteString(doneStyle.Render(fmt.Sprintf("%s: %d strokes in %s", m.modeString(), m.strokes, m.finished.Round(time.Second))))
	case ModeFailed:
		b.WriteString(errorStyle.Render(m.modeString()+": ") + m.err.Error())
	}
	b.WriteString("\n")

	if m.help {
		b.WriteString("\n" + m.helpView())
	} else {
		b.WriteString(statusStyle.Render("? help") + "\n")
	}
	return b.String()
}

func (m model) progressBar() string {
	filled := 0
	pct := 0.0
	if m.total > 0 {
		filled = m.done * barWidth / m.total
		pct = float64(m.done) * 100 / float64(m.total)
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return barStyle.Render(bar) + fmt.Sprintf(" %5.1f%%", pct)
}

func (m model) modeString() string {
	switch m.mode {
	case ModeDrawing:
		return "DRAWING"
	case ModePaused:
		return "PAUSED"
	case ModeDone:
		return "DONE"
	case ModeFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	helpLines := []string{
		"  ctrl+space, space, p  Pause or resume between strokes",
		"  ctrl+c                Quit at once",
		"  q, esc                Quit after the drawing is done",
		"  ?                     Toggle this help",
	}
	return statusStyle.Render(strings.Join(helpLines, "\n")) + "\n"
}
