package logogrid

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"

	"github.com/VantageDataChat/logogrid/pptx"
)

// Composer lays processed logos onto a single blank slide.
type Composer struct {
	Canvas SlideCanvas
	Plan   *GridPlan
	DPI    float64
	Deck   DeckConfig
	Logger zerolog.Logger
}

// Composition is a composed deck and where each logo went.
type Composition struct {
	Presentation *pptx.Presentation
	Placements   []Placement
	Dropped      int
}

func NewComposer(cfg Config, plan *GridPlan, logger zerolog.Logger) *Composer {
	return &Composer{
		Canvas: cfg.Canvas,
		Plan:   plan,
		DPI:    cfg.Layout.DPI,
		Deck:   cfg.Deck,
		Logger: logger.With().Str("component", "composer").Logger(),
	}
}

// Compose places logos in order, row-major. Logos past the last row are
// dropped and counted; that is not an error.
func (c *Composer) Compose(logos []*ProcessedLogo) (*Composition, error) {
	pres := pptx.New()
	pres.GetLayout().SetCustomLayout(pptx.Inch(c.Canvas.Width), pptx.Inch(c.Canvas.Height))
	props := pres.GetDocumentProperties()
	props.Title = c.Deck.Title
	if c.Deck.Creator != "" {
		props.Creator = c.Deck.Creator
		props.LastModifiedBy = c.Deck.Creator
	}
	slide := pres.GetActiveSlide()

	comp := &Composition{Presentation: pres}
	for i, logo := range logos {
		pl, ok := c.Plan.Place(i, logo.Width, logo.Height, c.DPI)
		if !ok {
			comp.Dropped = len(logos) - i
			break
		}
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, logo.Image, imaging.PNG); err != nil {
			return nil, fmt.Errorf("encode %s: %w", logo.Name, err)
		}
		shape := slide.CreateDrawingShape()
		shape.SetImageData(buf.Bytes(), "image/png")
		shape.SetName(pictureName(logo.Name))
		shape.SetDescription(logo.Name)
		shape.SetBounds(pl.X, pl.Y, pl.Width, pl.Height)
		comp.Placements = append(comp.Placements, pl)

		c.Logger.Debug().
			Str("file", logo.Name).
			Int("column", pl.Column).
			Int("row", pl.Row).
			Msg("placed")
	}
	if comp.Dropped > 0 {
		c.Logger.Warn().
			Int("dropped", comp.Dropped).
			Int("capacity", len(c.Plan.ColumnCenters)*len(c.Plan.RowCenters)).
			Msg("grid is full, remaining logos not placed")
	}
	return comp, nil
}

// Save validates the deck and writes it to path, replacing any existing
// file.
func (c *Composition) Save(path string) error {
	if err := c.Presentation.Validate(); err != nil {
		return err
	}
	if err := c.Presentation.Save(path); err != nil {
		return fmt.Errorf("write deck: %w", err)
	}
	return nil
}

// pictureName derives the picture name shown in PowerPoint's selection
// pane from a file name.
func pictureName(file string) string {
	return norm.NFC.String(strings.TrimSuffix(file, filepath.Ext(file)))
}
