package logogrid

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrDecode is returned for a source file that is not a readable image.
var ErrDecode = errors.New("cannot decode image")

// ProcessedLogo is a source image after background removal, cropping and
// resizing.
type ProcessedLogo struct {
	Name       string
	SourcePath string
	Image      *image.NRGBA
	Width      int
	Height     int
}

// Normalizer runs the per-image stage chain and optionally persists the
// result.
type Normalizer struct {
	Threshold  uint8
	CellWidth  int
	CellHeight int

	// OutDir receives a PNG copy of every processed image under the source
	// file name. Ignored when InPlace is set.
	OutDir string
	// InPlace overwrites each source file with PNG bytes of the processed
	// image, whatever its extension.
	InPlace bool

	Logger zerolog.Logger
}

// NewNormalizer builds a Normalizer from cfg and the cell budget of plan.
func NewNormalizer(cfg Config, plan *GridPlan, logger zerolog.Logger) *Normalizer {
	return &Normalizer{
		Threshold:  uint8(cfg.Threshold),
		CellWidth:  plan.CellWidthPx,
		CellHeight: plan.CellHeightPx,
		OutDir:     cfg.Normalized.Dir,
		InPlace:    cfg.Normalized.InPlace,
		Logger:     logger.With().Str("component", "normalizer").Logger(),
	}
}

// Normalize applies RemoveBackground, AutoCrop and Resize to img.
func (n *Normalizer) Normalize(name string, img image.Image) *ProcessedLogo {
	keyed := RemoveBackground(img, n.Threshold)
	cropped := AutoCrop(keyed)
	out, w, h := Resize(cropped, n.CellHeight, n.CellWidth)
	return &ProcessedLogo{Name: name, Image: out, Width: w, Height: h}
}

// NormalizeFile decodes src, normalizes it and persists the result when
// configured. Decode failures wrap ErrDecode.
func (n *Normalizer) NormalizeFile(src Source) (*ProcessedLogo, error) {
	img, err := imaging.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", src.Path, ErrDecode, err)
	}
	logo := n.Normalize(src.Name, img)
	logo.SourcePath = src.Path
	n.Logger.Debug().
		Str("file", src.Name).
		Int("src_width", img.Bounds().Dx()).
		Int("src_height", img.Bounds().Dy()).
		Int("width", logo.Width).
		Int("height", logo.Height).
		Msg("normalized")

	switch {
	case n.InPlace:
		err = writePNG(src.Path, logo.Image)
	case n.OutDir != "":
		if err = os.MkdirAll(n.OutDir, 0750); err == nil {
			err = writePNG(filepath.Join(n.OutDir, src.Name), logo.Image)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("persist %s: %w", src.Name, err)
	}
	return logo, nil
}

// writePNG encodes img into a temporary file beside path and renames it
// over path.
func writePNG(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".logogrid-*")
	if err != nil {
		return err
	}
	if err := imaging.Encode(tmp, img, imaging.PNG); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
