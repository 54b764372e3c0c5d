package raster

import (
	"image"
	"image/color"

	"camper-renderer/internal/scene"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawText renders a centred label. The bitmap face is drawn at its native
// size into a tile and scaled so its ascent matches the requested size.
func (cv *Canvas) drawText(p scene.Primitive, c color.NRGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{Face: face, Src: image.NewUniform(c)}

	adv := d.MeasureString(p.Text).Ceil()
	if adv == 0 {
		return
	}
	extra := 0
	if p.Bold {
		extra = 1
	}
	tile := image.NewNRGBA(image.Rect(0, 0, adv+extra, face.Height))
	d.Dst = tile
	for dx := 0; dx <= extra; dx++ {
		d.Dot = fixed.P(dx, face.Ascent)
		d.DrawString(p.Text)
	}

	k := p.FontSize * cv.Scale / float64(face.Ascent)
	w := float64(tile.Bounds().Dx()) * k
	h := float64(face.Height) * k
	x := p.Center.X*cv.Scale - w/2
	y := p.Center.Y*cv.Scale - float64(face.Ascent)*k

	dr := image.Rect(int(x), int(y), int(x+w+0.5), int(y+h+0.5))
	xdraw.ApproxBiLinear.Scale(cv.Img, dr, tile, tile.Bounds(), xdraw.Over, nil)
}
