package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer is the interface for presentation writers.
type Writer interface {
	Save(path string) error
	WriteTo(w io.Writer) error
}

// WriterType represents the output format.
type WriterType string

const (
	WriterPowerPoint2007 WriterType = "PowerPoint2007"
)

// NewWriter creates a writer for the given format.
func NewWriter(p *Presentation, format WriterType) (Writer, error) {
	switch format {
	case WriterPowerPoint2007:
		return &PPTXWriter{presentation: p}, nil
	default:
		return nil, fmt.Errorf("unsupported writer format: %s", format)
	}
}

// PPTXWriter writes presentations in PPTX format.
type PPTXWriter struct {
	presentation *Presentation
}

// Save writes the presentation to a file.
func (w *PPTXWriter) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	writeErr := w.WriteTo(f)
	closeErr := f.Close()

	if writeErr != nil {
		// Attempt cleanup on write failure
		os.Remove(path)
		return writeErr
	}
	return closeErr
}

// WriteTo writes the presentation to a writer.
func (w *PPTXWriter) WriteTo(writer io.Writer) error {
	if w.presentation == nil {
		return fmt.Errorf("presentation is nil")
	}

	zw := zip.NewWriter(writer)

	steps := []func(*zip.Writer) error{
		w.writeContentTypes,
		w.writeRootRels,
		w.writeAppProperties,
		w.writeCoreProperties,
		w.writePresentation,
		w.writePresentationRels,
		w.writePresProps,
		w.writeViewProps,
		w.writeTableStyles,
		w.writeSlideMaster,
		w.writeSlideLayout,
		w.writeTheme,
	}
	for _, step := range steps {
		if err := step(zw); err != nil {
			return err
		}
	}

	var all []slidePicture
	media := 1
	for i, slide := range w.presentation.slides {
		var pics []slidePicture
		pics, media = pictures(slide, media)
		if err := w.writeSlide(zw, i+1, pics); err != nil {
			return err
		}
		if err := w.writeSlideRels(zw, i+1, pics); err != nil {
			return err
		}
		all = append(all, pics...)
	}
	if err := w.writeMedia(zw, all); err != nil {
		return err
	}

	return zw.Close()
}
