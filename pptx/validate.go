package pptx

import (
	"fmt"
	"strings"
)

// Slide size limits accepted by PowerPoint for p:sldSz, in EMU.
const (
	MinSlideSize = 914400   // 1 inch
	MaxSlideSize = 51206400 // 56 inches
)

// Validate checks the presentation for structural issues and returns an error
// describing all problems found, or nil if the presentation is valid.
func (p *Presentation) Validate() error {
	var errs []string

	if p.properties == nil {
		errs = append(errs, "document properties are nil")
	}
	if p.layout == nil {
		errs = append(errs, "document layout is nil")
	} else {
		if p.layout.CX < MinSlideSize || p.layout.CX > MaxSlideSize {
			errs = append(errs, fmt.Sprintf("layout width (CX) %d outside [%d, %d]", p.layout.CX, MinSlideSize, MaxSlideSize))
		}
		if p.layout.CY < MinSlideSize || p.layout.CY > MaxSlideSize {
			errs = append(errs, fmt.Sprintf("layout height (CY) %d outside [%d, %d]", p.layout.CY, MinSlideSize, MaxSlideSize))
		}
	}
	if len(p.slides) == 0 {
		errs = append(errs, "presentation must have at least one slide")
	}

	for i, slide := range p.slides {
		prefix := fmt.Sprintf("slide %d", i+1)
		for _, e := range validateSlide(slide) {
			errs = append(errs, prefix+": "+e)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func validateSlide(s *Slide) []string {
	var errs []string
	for j, shape := range s.shapes {
		prefix := fmt.Sprintf("shape %d", j+1)
		if shape == nil {
			errs = append(errs, prefix+": shape is nil")
			continue
		}
		if shape.GetWidth() < 0 {
			errs = append(errs, prefix+": width is negative")
		}
		if shape.GetHeight() < 0 {
			errs = append(errs, prefix+": height is negative")
		}

		if sh, ok := shape.(*DrawingShape); ok {
			if !sh.hasImage() {
				errs = append(errs, prefix+": drawing shape has no image data or path")
			}
			if sh.mimeType != "" && !isValidImageMime(sh.mimeType) {
				errs = append(errs, prefix+": unsupported image MIME type: "+sh.mimeType)
			}
		}
	}
	return errs
}

// isValidImageMime checks if a MIME type is a supported image format.
func isValidImageMime(mime string) bool {
	switch mime {
	case "image/png", "image/jpeg", "image/gif", "image/bmp":
		return true
	}
	return false
}
