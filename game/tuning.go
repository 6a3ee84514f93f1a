package game

const (
	WorldWidth   = 800.0
	WorldHeight  = 600.0
	NumBodies    = 25
	Gravity      = 0.5 // added to VY every tick
	Restitution  = 0.8 // fraction of speed kept after a wall bounce
	MinRadius    = 10.0
	RadiusSpread = 15.0 // radius drawn from [MinRadius, MinRadius+RadiusSpread)
	MaxRadius    = MinRadius + RadiusSpread
	SpawnSpeedX  = 20.0 // vx drawn from [-SpawnSpeedX/2, SpawnSpeedX/2)
	SpawnSpeedY  = 15.0

	// below this combined rotated speed a colliding pair is not pushed apart
	SeparationEpsilon = 1e-9

	colorDigits = "89ABCDEF"
)
