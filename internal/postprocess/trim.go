package postprocess

import (
	"bytes"
	"image"
)

// Trim crops img to the bounding box of every pixel that differs from the
// top-left corner pixel, grown by margin on each side and clamped to the
// image. An image with nothing but background is returned unchanged.
func Trim(img *image.NRGBA, margin int) *image.NRGBA {
	box, ok := content(img)
	if !ok {
		return img
	}
	box = image.Rect(box.Min.X-margin, box.Min.Y-margin, box.Max.X+margin, box.Max.Y+margin).
		Intersect(img.Bounds())

	out := image.NewNRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	for y := 0; y < box.Dy(); y++ {
		src := img.PixOffset(box.Min.X, box.Min.Y+y)
		dst := y * out.Stride
		copy(out.Pix[dst:dst+box.Dx()*4], img.Pix[src:src+box.Dx()*4])
	}
	return out
}

// content returns the bounds of the non-background pixels.
func content(img *image.NRGBA) (image.Rectangle, bool) {
	b := img.Bounds()
	if b.Empty() {
		return image.Rectangle{}, false
	}
	bg := img.Pix[img.PixOffset(b.Min.X, b.Min.Y):][:4]

	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			if bytes.Equal(img.Pix[i:i+4], bg) {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
