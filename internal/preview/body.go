package preview

import (
	"camper-renderer/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	shadowDrop    = 180
	tongueLength  = 45
	tongueHalf    = 15
	couplerOffset = 8
	couplerRadius = 5
	hatchLines    = 15
)

func (b *builder) groundShadow() {
	c := scene.Point{X: b.cam.CenterX, Y: b.cam.CenterY + shadowDrop}
	b.out.Add(scene.Ellipse(scene.PartShadow, fill(colShadow), c, b.dim.Length*1.1, b.dim.Width*0.4))
}

// hitch draws the tow tongue ahead of the front edge and its coupler.
func (b *builder) hitch() {
	front := -b.dim.Length / 2
	tip := b.at(front-tongueLength, 0, 0)
	left := b.at(front, -tongueHalf, 0)
	right := b.at(front, tongueHalf, 0)

	b.out.Add(
		scene.Polygon(scene.PartHitch, filled(colSteel, colBlack, 2), left, right, tip),
		scene.Circle(scene.PartHitch, filled(colMid, colBlack, 1), tip.Add(-couplerOffset, 0), couplerRadius),
	)
}

func (b *builder) platform() {
	l, w := b.dim.Length/2, b.dim.Width/2

	body := colBody
	if b.cfg.DiamondPlate {
		body = colDiamond
	}
	b.face(scene.PartPlatform, filled(body, colBlack, 2), rectXY(-l, l, -w, w, 0)...)

	if !b.cfg.DiamondPlate {
		return
	}
	step := b.dim.Length / (hatchLines - 1)
	st := faded(stroke(colMid, 0.5), 0.4)
	for i := 0; i < hatchLines; i++ {
		x := -l + float64(i)*step
		b.out.Add(scene.Line(scene.PartDiamondPlate, st, b.at(x, -w, 0), b.at(x, w, 0)))
	}
}

// sidePanels draws the two long walls. The right wall is more transparent
// so it reads as the shaded side.
func (b *builder) sidePanels() {
	l, w, h := b.dim.Length/2, b.dim.Width/2, b.dim.Height
	for _, side := range []struct {
		y       float64
		opacity float64
	}{
		{-w, 0.95},
		{w, 0.85},
	} {
		b.face(scene.PartSidePanel, panelStyle(side.opacity),
			mgl64.Vec3{-l, side.y, 0},
			mgl64.Vec3{l, side.y, 0},
			mgl64.Vec3{l, side.y, h},
			mgl64.Vec3{-l, side.y, h},
		)
	}
}

// endPanel draws a wall across the full width at longitudinal position x.
func (b *builder) endPanel(part scene.Part, x float64) {
	w, h := b.dim.Width/2, b.dim.Height
	b.face(part, panelStyle(0.9),
		mgl64.Vec3{x, -w, 0},
		mgl64.Vec3{x, w, 0},
		mgl64.Vec3{x, w, h},
		mgl64.Vec3{x, -w, h},
	)
}

func (b *builder) propaneTank() {
	p := b.at(b.dim.Length/4, b.dim.Width/2-12, b.dim.Height/2)
	st := filled(colPropane, colDark, 2)
	b.out.Add(
		scene.Ellipse(scene.PartPropane, st, p.Add(0, 12), 18, 9),
		scene.Rect(scene.PartPropane, st, p.Add(-18, -22), 36, 34, 6),
		scene.Rect(scene.PartPropane, filled(colValve, colDark, 2), p.Add(-12, -30), 24, 8, 3),
	)
}
