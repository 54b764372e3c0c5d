package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// RingAngle returns the angle of slot i when a full turn is split into n
// evenly spaced slots, starting at 0 rad.
func RingAngle(i, n int) float64 {
	return float64(i) / float64(n) * FullTurn
}

// Polar returns the 2D point at distance r from c along angle a (radians).
// Screen space: positive angles turn clockwise because Y grows downward.
func Polar(c mgl64.Vec2, r, a float64) mgl64.Vec2 {
	return mgl64.Vec2{c[0] + math.Cos(a)*r, c[1] + math.Sin(a)*r}
}
