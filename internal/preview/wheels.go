package preview

import (
	"camper-renderer/internal/mathutil"
	"camper-renderer/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	treadLines  = 16
	spokeDots   = 8
	axleHeight  = 8
	wheelMargin = 5
)

// wheels draws the axle, both wheels and, when enabled, their fenders.
// The axle sits toward the rear at length/2.5 from centre.
func (b *builder) wheels() {
	axleX := b.dim.Length / 2.5
	wheelY := b.dim.Width/2 + wheelMargin

	b.out.Add(scene.Line(scene.PartAxle, stroke(colSteel, 6),
		b.at(axleX, -wheelY, axleHeight),
		b.at(axleX, wheelY, axleHeight),
	))

	b.drawWheel(b.at(axleX, -wheelY, 0))
	b.drawWheel(b.at(axleX, wheelY, 0))

	if !b.cfg.Fenders {
		return
	}
	r := b.wheelSpec.Radius
	for _, y := range []float64{-wheelY, wheelY} {
		b.face(scene.PartFender, panelStyle(1),
			mgl64.Vec3{axleX - 8, y - 8, r + 8},
			mgl64.Vec3{axleX + r + 12, y - 8, r + 10},
			mgl64.Vec3{axleX + r + 12, y + 8, r + 10},
			mgl64.Vec3{axleX - 8, y + 8, r + 8},
		)
	}
}

// drawWheel draws one tire with its tread, rim and spoke dots around c.
func (b *builder) drawWheel(c scene.Point) {
	s := b.wheelSpec
	center := c.Vec()

	b.out.Add(scene.Circle(scene.PartWheel, fill(s.Shade), c, s.Radius))

	tread := stroke(colDark, 2)
	for i := 0; i < treadLines; i++ {
		a := mathutil.RingAngle(i, treadLines)
		b.out.Add(scene.Line(scene.PartWheel, tread,
			scene.Pt(mathutil.Polar(center, s.Radius-2, a)),
			scene.Pt(mathutil.Polar(center, s.Radius-s.TreadDepth, a)),
		))
	}

	b.out.Add(scene.Circle(scene.PartWheel, filled(colRim, colBlack, 2), c, s.RimSize))

	for i := 0; i < spokeDots; i++ {
		a := mathutil.RingAngle(i, spokeDots)
		b.out.Add(scene.Circle(scene.PartWheel, fill(colDark), scene.Pt(mathutil.Polar(center, s.RimSize-4, a)), 2))
	}
}
