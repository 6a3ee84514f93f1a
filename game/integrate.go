package game

// Params are the per-tick physics inputs shared by every body.
type Params struct {
	Gravity     float64
	Restitution float64
	Width       float64
	Height      float64
}

func DefaultParams() Params {
	return Params{
		Gravity:     Gravity,
		Restitution: Restitution,
		Width:       WorldWidth,
		Height:      WorldHeight,
	}
}

// Advance moves one body forward a single tick and reflects it off the walls.
// Edges are checked floor, ceiling, right, left; more than one may fire.
func Advance(b *Body, p Params) {
	if b.Dragged {
		return
	}

	b.VY += p.Gravity

	b.X += b.VX
	b.Y += b.VY

	if b.Y+b.Radius > p.Height {
		b.Y = p.Height - b.Radius
		b.VY *= -p.Restitution
	}
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.VY *= -p.Restitution
	}
	if b.X+b.Radius > p.Width {
		b.X = p.Width - b.Radius
		b.VX *= -p.Restitution
	}
	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.VX *= -p.Restitution
	}
}
