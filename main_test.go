package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"easelprint/internal/easel"
	"easelprint/internal/encoder"
	"easelprint/internal/geom"
	"easelprint/internal/palette"
	"easelprint/internal/pointer"
	"easelprint/internal/preview"
)

func TestParseConfig(t *testing.T) {
	rc := `
# easelprint settings
coords = /tmp/easel.json
mousewait = 12
dither = true
scale = false
background = Light Blue
driver = DRY-RUN
tui = false
bogus line
mousewait = -4
background = mauve
`
	config := defaultConfig()
	parseConfig(strings.NewReader(rc), config, "/home/u")

	want := Config{
		CoordsFile: "/tmp/easel.json",
		MouseWait:  12,
		Dither:     true,
		Scale:      false,
		Background: palette.LightBlue,
		Driver:     driverDryRun,
		TUI:        false,
		LogFile:    defaultLogFile,
	}
	if *config != want {
		t.Errorf("config = %+v, want %+v", *config, want)
	}
}

func TestParseConfig_HomePath(t *testing.T) {
	config := defaultConfig()
	parseConfig(strings.NewReader("coords = ~/easel/coords.json\n"), config, "/home/u")
	if want := "/home/u/easel/coords.json"; config.CoordsFile != want {
		t.Errorf("CoordsFile = %q, want %q", config.CoordsFile, want)
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(*Settings) bool
		wantErr bool
	}{
		{
			name:  "image with defaults",
			args:  []string{"-i", "cat.png"},
			check: func(s *Settings) bool { return s.Source == SourceImage && s.MouseWait == defaultMouseWait && s.Scale && s.TUI },
		},
		{
			name:  "long flags",
			args:  []string{"-image", "cat.png", "-mouse-wait", "9", "-no-scale", "-no-tui", "-enable-dither"},
			check: func(s *Settings) bool { return s.MouseWait == 9 && !s.Scale && !s.TUI && s.Dither },
		},
		{
			name:  "shapes file",
			args:  []string{"-shapes", "house", "-background", "dark green"},
			check: func(s *Settings) bool { return s.Source == SourceShapes && s.Background == palette.DarkGreen },
		},
		{
			name:  "clipboard",
			args:  []string{"-shapes-clipboard", "-driver", "dry-run"},
			check: func(s *Settings) bool { return s.Source == SourceClipboard && s.Driver == driverDryRun },
		},
		{
			name:  "configure needs no source",
			args:  []string{"-configure", "coords.json"},
			check: func(s *Settings) bool { return s.Configure == "coords.json" },
		},
		{name: "no source", args: nil, wantErr: true},
		{name: "two sources", args: []string{"-i", "a.png", "-shapes", "b.json"}, wantErr: true},
		{name: "bad driver", args: []string{"-i", "a.png", "-driver", "x11"}, wantErr: true},
		{name: "bad background", args: []string{"-i", "a.png", "-background", "mauve"}, wantErr: true},
		{name: "negative wait", args: []string{"-i", "a.png", "-w", "-1"}, wantErr: true},
		{name: "stray argument", args: []string{"-i", "a.png", "extra"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := parseFlags(tt.args, defaultConfig(), io.Discard)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseFlags(%v) succeeded, want error", tt.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags(%v): %v", tt.args, err)
			}
			if !tt.check(s) {
				t.Errorf("parseFlags(%v) = %+v", tt.args, *s)
			}
		})
	}
}

func TestParseFlags_RCValuesAreDefaults(t *testing.T) {
	config := defaultConfig()
	config.MouseWait = 20
	config.Scale = false

	s, err := parseFlags([]string{"-i", "a.png"}, config, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if s.MouseWait != 20 || s.Scale {
		t.Errorf("settings = %+v, want rc values kept", *s)
	}

	s, err = parseFlags([]string{"-i", "a.png", "-w", "3"}, config, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if s.MouseWait != 3 {
		t.Errorf("MouseWait = %d, want flag value 3", s.MouseWait)
	}
}

func TestParseFlags_Help(t *testing.T) {
	var out bytes.Buffer
	_, err := parseFlags([]string{"-h"}, defaultConfig(), &out)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(out.String(), "-shapes-clipboard") {
		t.Errorf("usage output missing flags:\n%s", out.String())
	}
}

func TestParseShapes(t *testing.T) {
	doc := `[
		{"points": [[10, 10], [40, 10], [25, 30]], "color": "red", "close": true, "fill": true},
		{"points": [[0, 0], [5, 5]], "color": "Dark Blue", "brush": 4}
	]`
	shapes, err := parseShapes(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(shapes) != 2 {
		t.Fatalf("got %d shapes, want 2", len(shapes))
	}
	first := shapes[0]
	if first.Color != palette.Red || !first.Close || !first.Fill || len(first.Points) != 3 || first.Points[2] != geom.C(25, 30) {
		t.Errorf("shape 0 = %+v", first)
	}
	second := shapes[1]
	if second.Color != palette.DarkBlue || second.Brush == nil || *second.Brush != 4 || second.Close {
		t.Errorf("shape 1 = %+v", second)
	}
}

func TestParseShapes_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `points`},
		{"empty", `[]`},
		{"no points", `[{"points": [], "color": "red"}]`},
		{"bad color", `[{"points": [[0,0]], "color": "mauve"}]`},
		{"bad brush", `[{"points": [[0,0]], "color": "red", "brush": 17}]`},
		{"unknown field", `[{"points": [[0,0]], "colour": "red"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseShapes(strings.NewReader(tt.doc)); err == nil {
				t.Errorf("parseShapes(%s) succeeded, want error", tt.doc)
			}
		})
	}
}

func TestCleanClipboardText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"  [1, 2]\r\n", "[1, 2]"},
		{"\ufeff[]", "[]"},
		{"a\x00b", "ab"},
		{`{\rtf1\ansi \[\{"color": "red"\}\]}`, `[{"color": "red"}]`},
	}
	for _, tt := range tests {
		if got := cleanClipboardText(tt.in); got != tt.want {
			t.Errorf("cleanClipboardText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDrawShapes_House(t *testing.T) {
	rec := &pointer.Recorder{}
	e := easel.New(easel.Template(), rec, easel.WithSleep(func(time.Duration) {}))

	var calls []int
	err := drawShapes(e, houseShapes, &encoder.Gate{}, func(done, total int) {
		if total != len(houseShapes) {
			t.Errorf("total = %d, want %d", total, len(houseShapes))
		}
		calls = append(calls, done)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != len(houseShapes) || calls[len(calls)-1] != len(houseShapes) {
		t.Errorf("progress calls = %v", calls)
	}
	if got := e.State().Color; got != palette.Yellow {
		t.Errorf("final color = %v, want yellow", got)
	}
	if len(rec.Strokes()) <= len(houseShapes) {
		t.Errorf("got %d strokes, want outlines plus fill lines", len(rec.Strokes()))
	}
}

func TestDrawShapes_Brush(t *testing.T) {
	rec := &pointer.Recorder{}
	e := easel.New(easel.Template(), rec, easel.WithSleep(func(time.Duration) {}))
	brush := 2
	shapes := []Shape{{Points: geom.Coords([2]int{0, 0}, [2]int{10, 0}), Color: palette.Blue, Brush: &brush}}
	if err := drawShapes(e, shapes, nil, nil); err != nil {
		t.Fatal(err)
	}
	if got := e.State().BrushStep; got != brush {
		t.Errorf("BrushStep = %d, want %d", got, brush)
	}
}

func TestDrawShapes_OutOfBounds(t *testing.T) {
	e := easel.New(easel.Template(), &pointer.Recorder{}, easel.WithSleep(func(time.Duration) {}))
	shapes := []Shape{{Points: geom.Coords([2]int{0, 0}, [2]int{5000, 0}), Color: palette.Red}}
	err := drawShapes(e, shapes, nil, nil)
	if !errors.Is(err, easel.ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestScreenArea(t *testing.T) {
	got := screenArea(easel.Template())
	want := geom.B(560, 140, 1360, 940)
	if got != want {
		t.Errorf("screenArea = %v, want %v", got, want)
	}
}

func TestExportPreview(t *testing.T) {
	s := preview.NewSketch(geom.C(0, 0), palette.Black, 3)
	s.MoveTo(2, 2)
	s.Press(pointer.Left)
	s.MoveTo(20, 20)
	s.Release(pointer.Left)

	dir := t.TempDir()
	for _, name := range []string{"out.png", "OUT.PDF"} {
		path := filepath.Join(dir, name)
		if err := exportPreview(s, path, 32, 32, "test"); err != nil {
			t.Fatalf("exportPreview(%s): %v", name, err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	if err := exportPreview(s, filepath.Join(dir, "out.bmp"), 32, 32, ""); err == nil {
		t.Error("exportPreview(.bmp) succeeded, want error")
	}
}

func TestPreviewCaption(t *testing.T) {
	tests := []struct {
		settings Settings
		want     string
	}{
		{Settings{Source: SourceImage, ImageFile: "/pics/cat.png"}, "cat.png  12 strokes"},
		{Settings{Source: SourceShapes, ShapesFile: "house"}, "house  12 strokes"},
		{Settings{Source: SourceClipboard}, "clipboard  12 strokes"},
	}
	for _, tt := range tests {
		if got := previewCaption(&tt.settings, 12); got != tt.want {
			t.Errorf("previewCaption = %q, want %q", got, tt.want)
		}
	}
}

func TestModel_PauseToggle(t *testing.T) {
	gate := &encoder.Gate{}
	m := initialModel(&Settings{Source: SourceShapes, ShapesFile: "house"}, gate)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlAt},
		{Type: tea.KeySpace, Runes: []rune{' '}},
		{Type: tea.KeyRunes, Runes: []rune{'p'}},
	} {
		was := m.mode
		next, _ := m.Update(key)
		m = next.(model)
		if m.mode == was {
			t.Errorf("key %q left mode at %s", key.String(), m.modeString())
		}
		if gate.Paused() != (m.mode == ModePaused) {
			t.Errorf("key %q: gate paused = %v, mode = %s", key.String(), gate.Paused(), m.modeString())
		}
	}
}

func TestModel_Progress(t *testing.T) {
	m := initialModel(&Settings{Source: SourceImage, ImageFile: "cat.png"}, nil)
	next, _ := m.Update(progressMsg{done: 50, total: 200})
	m = next.(model)
	if !strings.Contains(m.View(), "25.0%") {
		t.Errorf("view missing progress:\n%s", m.View())
	}

	next, cmd := m.Update(doneMsg{strokes: 7})
	m = next.(model)
	if m.mode != ModeDone || m.strokes != 7 || m.done != m.total {
		t.Errorf("after done: mode=%s strokes=%d done=%d/%d", m.modeString(), m.strokes, m.done, m.total)
	}
	if cmd == nil {
		t.Error("done should quit the program")
	}

	// Pausing after the drawing finished is ignored.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if next.(model).mode != ModeDone {
		t.Errorf("mode = %s, want DONE", next.(model).modeString())
	}
}

func TestModel_Failed(t *testing.T) {
	m := initialModel(&Settings{Source: SourceClipboard}, nil)
	next, _ := m.Update(doneMsg{err: easel.ErrOutOfBounds})
	m = next.(model)
	if m.mode != ModeFailed {
		t.Fatalf("mode = %s, want FAILED", m.modeString())
	}
	if !strings.Contains(m.View(), easel.ErrOutOfBounds.Error()) {
		t.Errorf("view missing error:\n%s", m.View())
	}
}

func TestLogProgress(t *testing.T) {
	var buf bytes.Buffer
	report := logProgress(newLogger(&buf, false))
	for i := 1; i <= 100; i++ {
		report(i, 100)
	}
	// The first report and then one per tenth.
	if n := strings.Count(buf.String(), "msg=progress"); n != 11 {
		t.Errorf("logged %d progress lines, want 11:\n%s", n, buf.String())
	}
	if !strings.Contains(buf.String(), "session=") {
		t.Error("log lines missing session attribute")
	}
}
