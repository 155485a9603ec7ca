package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"easelprint/internal/palette"
)

type Config struct {
	CoordsFile string
	MouseWait  int
	Dither     bool
	Scale      bool
	Background palette.Color
	Driver     string
	TUI        bool
	LogFile    string
}

func defaultConfig() *Config {
	return &Config{
		CoordsFile: defaultCoordsFile,
		MouseWait:  defaultMouseWait,
		Dither:     false,
		Scale:      true,
		Background: palette.White,
		Driver:     driverXdotool,
		TUI:        true,
		LogFile:    defaultLogFile,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	file, err := os.Open(filepath.Join(homeDir, rcFileName))
	if err != nil {
		return config
	}
	defer file.Close()

	parseConfig(file, config, homeDir)
	return config
}

// parseConfig applies key = value lines from r to config. Unknown keys and
// malformed values are skipped.
func parseConfig(r io.Reader, config *Config, homeDir string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "coords", "coords_file", "coordsfile":
			config.CoordsFile = expandPath(value, homeDir)
		case "mousewait", "mouse_wait", "wait":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				config.MouseWait = n
			}
		case "dither":
			config.Dither = strings.ToLower(value) == "true"
		case "scale":
			config.Scale = strings.ToLower(value) == "true"
		case "background", "background_color":
			if c, err := palette.Parse(value); err == nil {
				config.Background = c
			}
		case "driver":
			config.Driver = strings.ToLower(value)
		case "tui":
			config.TUI = strings.ToLower(value) == "true"
		case "logfile", "log_file":
			config.LogFile = expandPath(value, homeDir)
		}
	}
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}
