package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"

	"easelprint/internal/easel"
	"easelprint/internal/geom"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// screenArea returns the smallest rectangle holding the canvas in both
// orientations, so a preview stays aligned when the orientation changes.
func screenArea(c *easel.Coords) geom.Bounds {
	p, l := c.BoundsFor(easel.Portrait), c.BoundsFor(easel.Landscape)
	return geom.Bounds{
		UL: geom.C(min(p.UL.X, l.UL.X), min(p.UL.Y, l.UL.Y)),
		LR: geom.C(max(p.LR.X, l.LR.X), max(p.LR.Y, l.LR.Y)),
	}
}

// cleanClipboardText reduces clipboard contents to the plain text a shapes
// document is parsed from.
func cleanClipboardText(text string) string {
	text = strings.TrimPrefix(stripRTF(text), "\ufeff")
	text = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r >= 32 {
			return r
		}
		if r == '\r' {
			return '\n'
		}
		return -1
	}, text)
	return strings.TrimSpace(text)
}

func stripRTF(text string) string {
	if !strings.HasPrefix(text, "{\\rtf") && !strings.Contains(text, "\\rtf") {
		return text
	}
	var result strings.Builder
	result.Grow(len(text))
	runes := []rune(text)
	braceDepth := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '{' {
			braceDepth++
			continue
		}
		if r == '}' {
			braceDepth--
			continue
		}
		if r == '\\' {
			if i+1 < len(runes) {
				next := runes[i+1]
				if (next >= 'a' && next <= 'z') || (next >= 'A' && next <= 'Z') {
					i++
					for i < len(runes) {
						if runes[i] == ' ' || runes[i] == '\\' || runes[i] == '{' || runes[i] == '}' {
							if runes[i] == ' ' {
								i++
							}
							break
						}
						i++
					}
					i--
					continue
				} else if next == '\\' || next == '{' || next == '}' {
					result.WriteRune(next)
					i++
					continue
				} else if next == '\n' || next == '\r' || next == '\t' {
					result.WriteRune(next)
					i++
					continue
				}
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

