package game

import "math"

// Resolve checks every pair (i, j), i < j, in ascending order and resolves
// overlaps in place. A pair sees the writes of every pair before it.
func Resolve(bodies []Body) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := &bodies[i], &bodies[j]
			if a.Dragged || b.Dragged {
				continue
			}

			dx := b.X - a.X
			dy := b.Y - a.Y
			dist := math.Hypot(dx, dy)
			minDist := a.Radius + b.Radius
			if dist < minDist {
				collide(a, b, dx, dy, dist, minDist)
			}
		}
	}
}

// collide works in a frame where the line of centres is the x axis: a sits at
// the origin and b at (dist, 0). Only the x components take part.
func collide(a, b *Body, dx, dy, dist, minDist float64) {
	sin, cos := math.Sincos(math.Atan2(dy, dx))

	v0x, v0y := rotate(a.VX, a.VY, sin, cos)
	v1x, v1y := rotate(b.VX, b.VY, sin, cos)

	rel := v0x - v1x
	v0x = ((a.Mass-b.Mass)*v0x + 2*b.Mass*v1x) / (a.Mass + b.Mass)
	v1x = rel + v0x

	p0x, p1x := 0.0, dist
	if sum := math.Abs(v0x) + math.Abs(v1x); sum > SeparationEpsilon {
		overlap := minDist - dist
		p0x -= math.Abs(v0x) / sum * overlap
		p1x += math.Abs(v1x) / sum * overlap
	}

	ox0, oy0 := unrotate(p0x, 0, sin, cos)
	ox1, oy1 := unrotate(p1x, 0, sin, cos)
	b.X = a.X + ox1
	b.Y = a.Y + oy1
	a.X += ox0
	a.Y += oy0

	a.VX, a.VY = unrotate(v0x, v0y, sin, cos)
	b.VX, b.VY = unrotate(v1x, v1y, sin, cos)
}

func rotate(x, y, sin, cos float64) (float64, float64) {
	return x*cos + y*sin, y*cos - x*sin
}

func unrotate(x, y, sin, cos float64) (float64, float64) {
	return x*cos - y*sin, y*cos + x*sin
}
