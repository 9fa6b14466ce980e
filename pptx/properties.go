package pptx

import "time"

// DocumentProperties holds the core document properties.
type DocumentProperties struct {
	Creator        string
	LastModifiedBy string
	Created        time.Time
	Modified       time.Time
	Title          string
	Description    string
	Subject        string
	Keywords       string
	Company        string
}

// NewDocumentProperties creates new document properties with defaults.
func NewDocumentProperties() *DocumentProperties {
	now := time.Now()
	return &DocumentProperties{
		Creator:        "logogrid",
		LastModifiedBy: "logogrid",
		Created:        now,
		Modified:       now,
	}
}

// DocumentLayout represents the slide dimensions.
type DocumentLayout struct {
	CX   int64 // width in EMU
	CY   int64 // height in EMU
	Name string
}

// Standard layout names.
const (
	LayoutScreen4x3  = "screen4x3"
	LayoutScreen16x9 = "screen16x9"
	LayoutCustom     = "custom"
)

// NewDocumentLayout creates a default 4:3 layout.
func NewDocumentLayout() *DocumentLayout {
	return &DocumentLayout{
		CX:   9144000, // 10 inches
		CY:   6858000, // 7.5 inches
		Name: LayoutScreen4x3,
	}
}

// SetCustomLayout sets custom dimensions in EMU. Non-positive values fall
// back to the 4:3 defaults.
func (dl *DocumentLayout) SetCustomLayout(cx, cy int64) {
	if cx <= 0 {
		cx = 9144000
	}
	if cy <= 0 {
		cy = 6858000
	}
	dl.CX = cx
	dl.CY = cy
	dl.Name = LayoutCustom
}

// presentationSizeType maps the layout name to the sldSz type attribute.
func (dl *DocumentLayout) presentationSizeType() string {
	switch dl.Name {
	case LayoutScreen4x3:
		return "screen4x3"
	case LayoutScreen16x9:
		return "screen16x9"
	default:
		return "custom"
	}
}
