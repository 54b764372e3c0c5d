package iso

import (
	"camper-renderer/internal/mathutil"
	"camper-renderer/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a fixed 30° axonometric camera. Model axes: X runs front to
// rear, Y runs left to right side, Z is up.
type Camera struct {
	CenterX float64
	CenterY float64
	Scale   float64
}

// Default returns the camera centred in the 800×600 viewbox at scale 2.5.
func Default() Camera {
	return Camera{
		CenterX: scene.Width / 2,
		CenterY: scene.Height / 2,
		Scale:   2.5,
	}
}

// Project maps a model-space point to scene coordinates:
//
//	x' = cx + (x − y)·cos30·s
//	y' = cy + (x + y)·sin30·s − z·s
func (c Camera) Project(p mgl64.Vec3) scene.Point {
	return scene.Point{
		X: c.CenterX + (p[0]-p[1])*mathutil.Cos30*c.Scale,
		Y: c.CenterY + (p[0]+p[1])*mathutil.Sin30*c.Scale - p[2]*c.Scale,
	}
}

// At is shorthand for Project(mgl64.Vec3{x, y, z}).
func (c Camera) At(x, y, z float64) scene.Point {
	return c.Project(mgl64.Vec3{x, y, z})
}

// ProjectAll projects every point, preserving order.
func (c Camera) ProjectAll(pts ...mgl64.Vec3) []scene.Point {
	out := make([]scene.Point, len(pts))
	for i, p := range pts {
		out[i] = c.Project(p)
	}
	return out
}
