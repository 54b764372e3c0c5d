package raster

import (
	"image"
	"image/color"
	"testing"

	"camper-renderer/internal/camper"
	"camper-renderer/internal/preview"
	"camper-renderer/internal/scene"
)

var (
	red  = color.NRGBA{255, 0, 0, 255}
	blue = color.NRGBA{0, 0, 255, 255}
)

func single(p ...scene.Primitive) scene.Scene {
	sc := scene.New()
	sc.Add(p...)
	return *sc
}

func TestRenderSize(t *testing.T) {
	tests := []struct {
		width, ss int
		want      image.Point
	}{
		{800, 1, image.Point{800, 600}},
		{400, 2, image.Point{400, 300}},
		{0, 0, image.Point{800, 600}},
	}
	for _, tt := range tests {
		img := Render(scene.Scene{Width: 800, Height: 600}, Options{Width: tt.width, Supersample: tt.ss})
		if got := img.Bounds().Size(); got != tt.want {
			t.Errorf("width=%d ss=%d: got %v, want %v", tt.width, tt.ss, got, tt.want)
		}
	}
}

func TestRenderFillsRect(t *testing.T) {
	sc := single(scene.Rect("r", scene.Style{Fill: red}, scene.Point{X: 0, Y: 0}, 400, 300, 0))
	img := Render(sc, Options{Width: 800, Supersample: 1})

	if got := img.NRGBAAt(100, 100); got != red {
		t.Fatalf("inside = %v, want %v", got, red)
	}
	if got := img.NRGBAAt(600, 500); got.A != 0 {
		t.Fatalf("outside = %v, want transparent", got)
	}
}

func TestRenderBackground(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	img := Render(scene.Scene{Width: 800, Height: 600}, Options{Width: 200, Supersample: 2, Background: white})
	if got := img.NRGBAAt(10, 10); got != white {
		t.Fatalf("got %v, want %v", got, white)
	}
}

func TestRenderPaintOrder(t *testing.T) {
	sc := single(
		scene.Rect("a", scene.Style{Fill: red}, scene.Point{X: 100, Y: 100}, 200, 200, 0),
		scene.Rect("b", scene.Style{Fill: blue}, scene.Point{X: 200, Y: 200}, 200, 200, 0),
	)
	img := Render(sc, Options{Width: 800, Supersample: 1})
	if got := img.NRGBAAt(250, 250); got != blue {
		t.Fatalf("overlap = %v, want later primitive %v", got, blue)
	}
	if got := img.NRGBAAt(150, 150); got != red {
		t.Fatalf("uncovered = %v, want %v", got, red)
	}
}

func TestRenderOpacity(t *testing.T) {
	sc := single(scene.Rect("r", scene.Style{Fill: red, Opacity: 0.5}, scene.Point{}, 800, 600, 0))
	img := Render(sc, Options{Width: 800, Supersample: 1})
	if a := img.NRGBAAt(400, 300).A; a < 120 || a > 135 {
		t.Fatalf("alpha = %d, want about 128", a)
	}
}

func TestRenderLineStroke(t *testing.T) {
	sc := single(scene.Line("l", scene.Style{Stroke: red, StrokeWidth: 4}, scene.Point{X: 0, Y: 300}, scene.Point{X: 800, Y: 300}))
	img := Render(sc, Options{Width: 800, Supersample: 1})
	if got := img.NRGBAAt(400, 300); got != red {
		t.Fatalf("on line = %v, want %v", got, red)
	}
	if got := img.NRGBAAt(400, 310); got.A != 0 {
		t.Fatalf("off line = %v, want transparent", got)
	}
}

func TestRenderOutlineOnly(t *testing.T) {
	st := scene.Style{Stroke: red, StrokeWidth: 2}
	sc := single(scene.Polygon("p", st,
		scene.Point{X: 100, Y: 100}, scene.Point{X: 500, Y: 100},
		scene.Point{X: 500, Y: 500}, scene.Point{X: 100, Y: 500},
	))
	img := Render(sc, Options{Width: 800, Supersample: 1})
	if got := img.NRGBAAt(300, 300); got.A != 0 {
		t.Fatalf("interior = %v, want unfilled", got)
	}
	if got := img.NRGBAAt(300, 100); got.A == 0 {
		t.Fatal("edge not stroked")
	}
}

func TestRenderText(t *testing.T) {
	sc := single(scene.Text("t", scene.Style{Fill: red}, scene.Point{X: 400, Y: 300}, "ROAM", 20, true))
	img := Render(sc, Options{Width: 800, Supersample: 1})

	inked := 0
	for y := 270; y < 310; y++ {
		for x := 360; x < 440; x++ {
			if img.NRGBAAt(x, y).A > 0 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Fatal("no text pixels drawn near the anchor")
	}
}

func TestRenderPreview(t *testing.T) {
	cfg := camper.Default()
	img := Render(preview.Render(cfg), DefaultOptions())
	if got := img.Bounds().Size(); got != (image.Point{800, 600}) {
		t.Fatalf("got %v, want 800x600", got)
	}
	if img.NRGBAAt(0, 0).A != 0 {
		t.Fatal("corner should stay transparent")
	}
	// The platform sits at the camera centre.
	if img.NRGBAAt(400, 300).A == 0 {
		t.Fatal("nothing painted at the scene centre")
	}
}
