package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"easelprint/internal/preview"
)

// exportPreview writes the sketch to filename, choosing the format by its
// extension.
func exportPreview(s *preview.Sketch, filename string, w, h int, caption string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return s.SavePNG(filename, w, h, caption)
	case ".pdf":
		return s.SavePDF(filename, w, h)
	default:
		return fmt.Errorf("unsupported preview format %q (want .png or .pdf)", ext)
	}
}

func previewCaption(settings *Settings, strokes int) string {
	name := "clipboard"
	switch settings.Source {
	case SourceImage:
		name = filepath.Base(settings.ImageFile)
	case SourceShapes:
		name = filepath.Base(settings.ShapesFile)
	}
	return fmt.Sprintf("%s  %d strokes", name, strokes)
}
