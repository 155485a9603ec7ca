package main

import tea "github.com/charmbracelet/bubbletea"

func (m model) handleKey(key string) (model, tea.Cmd) {
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		if m.mode == ModeDone || m.mode == ModeFailed {
			return m, tea.Quit
		}
	case "ctrl+@", " ", "p":
		m.togglePause()
	case "?":
		m.help = !m.help
	}
	return m, nil
}

func (m *model) togglePause() {
	if m.gate == nil {
		return
	}
	switch m.mode {
	case ModeDrawing, ModePaused:
	default:
		return
	}
	if m.gate.Toggle() {
		m.mode = ModePaused
	} else {
		m.mode = ModeDrawing
	}
}
