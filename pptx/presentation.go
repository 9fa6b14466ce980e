// Package pptx writes and reads the small subset of PowerPoint (.pptx,
// Office Open XML) needed to publish picture-only slides: a custom slide
// size, blank slides and embedded raster pictures positioned in EMU.
//
// See the Version variable for the current writer version.
package pptx

import (
	"errors"
	"io"
)

// Presentation represents an in-memory PowerPoint presentation.
type Presentation struct {
	properties       *DocumentProperties
	slides           []*Slide
	activeSlideIndex int
	layout           *DocumentLayout
}

// New creates a new Presentation with one default blank slide.
func New() *Presentation {
	p := &Presentation{
		properties: NewDocumentProperties(),
		slides:     make([]*Slide, 0),
		layout:     NewDocumentLayout(),
	}
	p.CreateSlide()
	return p
}

// GetDocumentProperties returns the document properties.
func (p *Presentation) GetDocumentProperties() *DocumentProperties {
	return p.properties
}

// GetLayout returns the document layout.
func (p *Presentation) GetLayout() *DocumentLayout {
	return p.layout
}

// CreateSlide creates a new slide and adds it to the presentation.
func (p *Presentation) CreateSlide() *Slide {
	slide := newSlide()
	p.slides = append(p.slides, slide)
	return slide
}

// GetActiveSlide returns the currently active slide.
func (p *Presentation) GetActiveSlide() *Slide {
	if len(p.slides) == 0 {
		return nil
	}
	if p.activeSlideIndex >= len(p.slides) {
		p.activeSlideIndex = 0
	}
	return p.slides[p.activeSlideIndex]
}

// GetSlide returns a slide by index.
func (p *Presentation) GetSlide(index int) (*Slide, error) {
	if index < 0 || index >= len(p.slides) {
		return nil, errors.New("slide index out of range")
	}
	return p.slides[index], nil
}

// GetAllSlides returns all slides.
func (p *Presentation) GetAllSlides() []*Slide {
	return p.slides
}

// GetSlideCount returns the number of slides.
func (p *Presentation) GetSlideCount() int {
	return len(p.slides)
}

// Save writes the presentation to a PPTX file, replacing any existing file.
func (p *Presentation) Save(path string) error {
	writer, err := NewWriter(p, WriterPowerPoint2007)
	if err != nil {
		return err
	}
	return writer.Save(path)
}

// WriteTo writes the presentation to a writer in PPTX format.
func (p *Presentation) WriteTo(w io.Writer) error {
	writer, err := NewWriter(p, WriterPowerPoint2007)
	if err != nil {
		return err
	}
	return writer.WriteTo(w)
}
