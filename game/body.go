package game

// Body is one simulated circle. ID is its index in World.Bodies and never changes.
type Body struct {
	ID     int
	X, Y   float64
	VX, VY float64

	Radius float64
	Mass   float64
	Color  string

	// Dragged bodies are skipped by Advance and Resolve.
	Dragged bool
}

// NewBody builds a body at rest. Mass is fixed here as radius squared.
func NewBody(id int, x, y, radius float64, color string) Body {
	return Body{
		ID:     id,
		X:      x,
		Y:      y,
		Radius: radius,
		Mass:   radius * radius,
		Color:  color,
	}
}
