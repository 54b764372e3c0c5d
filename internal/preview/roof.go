package preview

import (
	"camper-renderer/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	roofInset = 8

	rackInset     = 12
	rackHeight    = 8
	crossbars     = 5
	crossbarStart = 15

	tentInsetX  = 20
	tentInsetY  = 16
	tentBase    = 12
	tentPeak    = 45
	tentLabelX  = 10
	tentLabelZ  = 25
	tentLabel   = "ROAM"
	labelWidth  = 50
	labelHeight = 16
)

func (b *builder) roofPlatform() {
	l, w, h := b.dim.Length/2-roofInset, b.dim.Width/2-roofInset, b.dim.Height
	b.face(scene.PartRoofPlatform, filled(colRoof, colBlack, 2), rectXY(-l, l, -w, w, h)...)
}

// roofRack draws two longitudinal rails and evenly spaced crossbars.
func (b *builder) roofRack() {
	l, w := b.dim.Length/2-rackInset, b.dim.Width/2-rackInset
	z := b.dim.Height + rackHeight
	st := stroke(colSteel, 4)

	b.out.Add(
		scene.Line(scene.PartRoofRack, st, b.at(-l, -w, z), b.at(l, -w, z)),
		scene.Line(scene.PartRoofRack, st, b.at(-l, w, z), b.at(l, w, z)),
	)

	step := b.dim.Length / (crossbars + 1)
	for i := 0; i < crossbars; i++ {
		x := -b.dim.Length/2 + crossbarStart + float64(i)*step
		b.out.Add(scene.Line(scene.PartRoofRack, st, b.at(x, -w, z), b.at(x, w, z)))
	}
}

// roofTent draws the folded tent base, its ridge and the brand label.
func (b *builder) roofTent() {
	l, w, h := b.dim.Length/2-tentInsetX, b.dim.Width/2-tentInsetY, b.dim.Height
	z := h + tentBase

	b.face(scene.PartTent, filled(colTent, colBlack, 2), rectXY(-l, l, -w, w, z)...)
	b.face(scene.PartTent, filled(colPeak, colBlack, 2),
		mgl64.Vec3{-l, -w, z},
		mgl64.Vec3{0, 0, h + tentPeak},
		mgl64.Vec3{l, -w, z},
	)

	p := b.at(tentLabelX, -w, h+tentLabelZ)
	b.out.Add(
		scene.Rect(scene.PartTentLabel, fill(colBody), p.Add(-labelWidth/2, -labelHeight/2), labelWidth, labelHeight, 3),
		scene.Text(scene.PartTentLabel, fill(colAccent), p.Add(0, 4), tentLabel, 10, true),
	)
}
