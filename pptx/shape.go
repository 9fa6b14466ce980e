package pptx

import (
	"path"
	"strings"
)

// Shape is an element placed on a slide. Geometry is in EMU.
type Shape interface {
	GetType() ShapeType
	GetOffsetX() int64
	GetOffsetY() int64
	GetWidth() int64
	GetHeight() int64
	GetName() string
	base() *BaseShape
}

type ShapeType int

const (
	ShapeTypeDrawing ShapeType = iota
)

// BaseShape holds the name and frame shared by every shape.
type BaseShape struct {
	name        string
	description string
	offsetX     int64
	offsetY     int64
	width       int64
	height      int64
}

func (b *BaseShape) GetOffsetX() int64       { return b.offsetX }
func (b *BaseShape) GetOffsetY() int64       { return b.offsetY }
func (b *BaseShape) GetWidth() int64         { return b.width }
func (b *BaseShape) GetHeight() int64        { return b.height }
func (b *BaseShape) GetName() string         { return b.name }
func (b *BaseShape) GetDescription() string  { return b.description }
func (b *BaseShape) SetDescription(d string) { b.description = d }
func (b *BaseShape) base() *BaseShape        { return b }

// SetName sets the name shown in PowerPoint's selection pane.
func (b *BaseShape) SetName(n string) *BaseShape { b.name = n; return b }

// SetPosition moves the top-left corner.
func (b *BaseShape) SetPosition(x, y int64) *BaseShape {
	b.offsetX, b.offsetY = x, y
	return b
}

// SetSize sets the displayed width and height.
func (b *BaseShape) SetSize(w, h int64) *BaseShape {
	b.width, b.height = w, h
	return b
}

// DrawingShape is an embedded raster picture. Its bytes come either from
// SetImageData or, at write time, from the file given to SetPath.
type DrawingShape struct {
	BaseShape
	path     string
	data     []byte
	mimeType string
}

func NewDrawingShape() *DrawingShape { return &DrawingShape{} }

func (d *DrawingShape) GetType() ShapeType { return ShapeTypeDrawing }

// SetBounds places the picture with its top-left corner at (x, y).
func (d *DrawingShape) SetBounds(x, y, w, h int64) *DrawingShape {
	d.SetPosition(x, y)
	d.SetSize(w, h)
	return d
}

// SetPath makes the writer embed the file at p. The MIME type is taken from
// its extension.
func (d *DrawingShape) SetPath(p string) *DrawingShape {
	d.path = p
	d.mimeType = mimeFromName(p)
	return d
}

// SetImageData embeds data directly.
func (d *DrawingShape) SetImageData(data []byte, mimeType string) *DrawingShape {
	d.data = data
	d.mimeType = mimeType
	return d
}

func (d *DrawingShape) GetImageData() []byte { return d.data }
func (d *DrawingShape) GetMimeType() string  { return d.mimeType }

func (d *DrawingShape) hasImage() bool {
	return d.data != nil || d.path != ""
}

// maxImageFileSize caps pictures embedded by path.
const maxImageFileSize = 50 << 20

func mimeFromName(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	default:
		return "image/png"
	}
}
