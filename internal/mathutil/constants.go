package mathutil

import "math"

// Fixed axonometric camera angles. Sin30 is stored exactly so that
// projected coordinates are reproducible bit for bit.
var (
	Cos30 = math.Sqrt(3) / 2
	Sin30 = 0.5
)

// FullTurn is one revolution in radians.
const FullTurn = 2 * math.Pi
