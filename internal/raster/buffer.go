package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// Canvas is the rendering target: a premultiplied RGBA image plus the
// scale from scene units to pixels. One rasterizer is reused for every path.
type Canvas struct {
	Width  int
	Height int
	Scale  float64
	Img    *image.RGBA

	z *vector.Rasterizer
}

// NewCanvas allocates a w×h canvas cleared to bg. A zero bg leaves it transparent.
func NewCanvas(w, h int, scale float64, bg color.NRGBA) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if bg.A > 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	return &Canvas{
		Width:  w,
		Height: h,
		Scale:  scale,
		Img:    img,
		z:      vector.NewRasterizer(w, h),
	}
}

// fillPaths rasterizes the union of paths (each implicitly closed) in c.
func (cv *Canvas) fillPaths(paths [][]pt, c color.NRGBA) {
	if c.A == 0 || len(paths) == 0 {
		return
	}
	cv.z.Reset(cv.Width, cv.Height)
	cv.z.DrawOp = draw.Over
	for _, p := range paths {
		if len(p) < 3 {
			continue
		}
		p = positive(p)
		cv.z.MoveTo(float32(p[0].x*cv.Scale), float32(p[0].y*cv.Scale))
		for _, q := range p[1:] {
			cv.z.LineTo(float32(q.x*cv.Scale), float32(q.y*cv.Scale))
		}
		cv.z.ClosePath()
	}
	cv.z.Draw(cv.Img, cv.Img.Bounds(), image.NewUniform(c), image.Point{})
}

// NRGBA returns the canvas converted to non-premultiplied colour.
func (cv *Canvas) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(cv.Img.Bounds())
	draw.Draw(out, out.Bounds(), cv.Img, image.Point{}, draw.Src)
	return out
}
