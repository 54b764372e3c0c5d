// Package raster paints a scene into a bitmap with the painter's algorithm.
package raster

import (
	"image"
	"image/color"
	"math"

	"camper-renderer/internal/postprocess"
	"camper-renderer/internal/scene"
)

// Options controls bitmap output.
type Options struct {
	Width       int         // output width in pixels; height follows the scene aspect
	Supersample int         // render at this multiple, then downsample
	Background  color.NRGBA // zero alpha keeps the background transparent
}

// DefaultOptions renders at the scene's native size with 2× supersampling.
func DefaultOptions() Options {
	return Options{Width: scene.Width, Supersample: 2}
}

// Render paints sc into an NRGBA image. Primitives are painted in slice
// order: fill first, then stroke.
func Render(sc scene.Scene, opts Options) *image.NRGBA {
	if opts.Width <= 0 {
		opts.Width = int(sc.Width)
	}
	if opts.Supersample <= 0 {
		opts.Supersample = 1
	}

	outW := opts.Width
	outH := int(math.Round(sc.Height * float64(outW) / sc.Width))

	renderW := outW * opts.Supersample
	renderH := outH * opts.Supersample
	scale := float64(renderW) / sc.Width

	cv := NewCanvas(renderW, renderH, scale, opts.Background)
	for _, p := range sc.Primitives {
		cv.Paint(p)
	}

	img := cv.NRGBA()
	if opts.Supersample > 1 {
		img = postprocess.Downsample(img, outW, outH)
	}
	return img
}

// Paint draws one primitive.
func (cv *Canvas) Paint(p scene.Primitive) {
	st := p.Style
	alpha := st.Alpha()

	if p.Kind == scene.KindText {
		if st.HasFill() {
			cv.drawText(p, fade(st.Fill, alpha))
		}
		return
	}

	path := outline(p)
	if path != nil && st.HasFill() {
		cv.fillPaths([][]pt{path}, fade(st.Fill, alpha))
	}
	if !st.HasStroke() {
		return
	}
	if p.Kind == scene.KindLine {
		cv.fillPaths(strokePaths(fromScene(p.Points), false, st.StrokeWidth), fade(st.Stroke, alpha))
		return
	}
	cv.fillPaths(strokePaths(path, true, st.StrokeWidth), fade(st.Stroke, alpha))
}

// fade multiplies c's alpha by a.
func fade(c color.NRGBA, a float64) color.NRGBA {
	if a >= 1 {
		return c
	}
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}
