package physics

// Shape is an axis-aligned collision outline centred on the body position
// Implemented only by Circle and Ellipse
type Shape interface {
	shape()
}

// Circle with non-negative radius
type Circle struct {
	Radius float64
}

// Ellipse with horizontal radius H and vertical radius V
type Ellipse struct {
	H, V float64
}

func (Circle) shape()  {}
func (Ellipse) shape() {}
