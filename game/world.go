package game

import "math/rand/v2"

// World owns a fixed set of bodies inside a Width x Height box.
// Bodies is never resized after NewWorld.
type World struct {
	Tick   int
	Bodies []Body
	Params Params
}

// NewWorld spawns n bodies with random size, colour and velocity. Each body
// fits inside the width and starts in the top half of the height.
func NewWorld(n int, p Params, rng *rand.Rand) *World {
	w := &World{
		Bodies: make([]Body, n),
		Params: p,
	}
	for i := range w.Bodies {
		radius := rng.Float64()*RadiusSpread + MinRadius
		x := rng.Float64()*(p.Width-2*radius) + radius
		y := rng.Float64()*(p.Height/2-2*radius) + radius
		b := NewBody(i, x, y, radius, RandomColor(rng))
		b.VX = (rng.Float64() - 0.5) * SpawnSpeedX
		b.VY = (rng.Float64() - 0.5) * SpawnSpeedY
		w.Bodies[i] = b
	}
	return w
}

// Step advances every body, then resolves collisions once.
func (w *World) Step() {
	w.Tick++
	for i := range w.Bodies {
		Advance(&w.Bodies[i], w.Params)
	}
	Resolve(w.Bodies)
}

// Body returns the body with the given id, or false if there is none.
func (w *World) Body(id int) (*Body, bool) {
	if id < 0 || id >= len(w.Bodies) {
		return nil, false
	}
	return &w.Bodies[id], true
}

// StartDrag freezes a body and discards its velocity.
func (w *World) StartDrag(id int) bool {
	b, ok := w.Body(id)
	if !ok {
		return false
	}
	b.Dragged = true
	b.VX, b.VY = 0, 0
	return true
}

// DragTo moves a dragged body. Bodies not being dragged are left alone.
func (w *World) DragTo(id int, x, y float64) bool {
	b, ok := w.Body(id)
	if !ok || !b.Dragged {
		return false
	}
	b.X, b.Y = x, y
	return true
}

// EndDrag hands the body back to the physics step.
func (w *World) EndDrag(id int) bool {
	b, ok := w.Body(id)
	if !ok {
		return false
	}
	b.Dragged = false
	return true
}

// NumDragged counts bodies currently held by a viewer.
func (w *World) NumDragged() int {
	n := 0
	for i := range w.Bodies {
		if w.Bodies[i].Dragged {
			n++
		}
	}
	return n
}

// RandomColor returns "#" plus six digits from the bright half of the hex range.
func RandomColor(rng *rand.Rand) string {
	b := make([]byte, 7)
	b[0] = '#'
	for i := 1; i < len(b); i++ {
		b[i] = colorDigits[rng.IntN(len(colorDigits))]
	}
	return string(b)
}
