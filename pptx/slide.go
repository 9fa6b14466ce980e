package pptx

// Slide is a single slide holding an ordered list of shapes.
type Slide struct {
	name   string
	shapes []Shape
}

func newSlide() *Slide {
	return &Slide{shapes: make([]Shape, 0)}
}

// GetName returns the slide name.
func (s *Slide) GetName() string { return s.name }

// SetName sets the slide name.
func (s *Slide) SetName(name string) { s.name = name }

// CreateDrawingShape creates a picture shape and appends it to the slide.
func (s *Slide) CreateDrawingShape() *DrawingShape {
	ds := NewDrawingShape()
	s.shapes = append(s.shapes, ds)
	return ds
}

// GetShapes returns all shapes in drawing order.
func (s *Slide) GetShapes() []Shape {
	return s.shapes
}

// GetShapeCount returns the number of shapes on the slide.
func (s *Slide) GetShapeCount() int {
	return len(s.shapes)
}
