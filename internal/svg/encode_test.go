package svg

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"camper-renderer/internal/camper"
	"camper-renderer/internal/preview"
	"camper-renderer/internal/scene"
)

func TestRenderDocument(t *testing.T) {
	sc := preview.Render(camper.Config{Frame: camper.FrameMinimalist, Wheels: camper.WheelsStandard})
	doc := Render(sc)

	if !strings.Contains(doc, `viewBox="0 0 800 600"`) {
		t.Fatalf("missing viewBox in:\n%s", doc[:200])
	}
	if !strings.HasSuffix(doc, "</svg>\n") {
		t.Fatalf("document not closed")
	}

	tests := []struct {
		tag  string
		want int
	}{
		{"<ellipse ", 1},
		{"<polygon ", 2}, // hitch wedge, platform
		{"<circle ", 21}, // coupler + 2×(tire, rim, 8 spokes)
		{"<line ", 33},   // axle + 2×16 tread lines
	}
	for _, tt := range tests {
		if got := strings.Count(doc, tt.tag); got != tt.want {
			t.Errorf("%s count = %d, want %d", tt.tag, got, tt.want)
		}
	}
}

func TestRenderKeepsPaintOrder(t *testing.T) {
	cfg := camper.Config{Frame: camper.FrameStandard, Wheels: camper.WheelsStandard}.
		WithOptions(camper.SidePanels, camper.SideAccessDoors, camper.RoofTent)
	doc := Render(preview.Render(cfg))

	shadow := strings.Index(doc, `class="shadow"`)
	tent := strings.Index(doc, `class="tent"`)
	lastDoor := strings.LastIndex(doc, `class="door"`)
	if !(shadow < tent && tent < lastDoor) {
		t.Fatalf("unexpected order: shadow=%d tent=%d lastDoor=%d", shadow, tent, lastDoor)
	}
	if strings.Count(doc, `class="door"`) != 8 {
		t.Fatalf("door elements = %d, want 8", strings.Count(doc, `class="door"`))
	}
}

func TestElementStyles(t *testing.T) {
	sc := scene.Scene{Width: 10, Height: 10}
	sc.Add(
		scene.Ellipse(scene.PartShadow, scene.Style{Fill: color.NRGBA{A: 77}}, scene.Point{X: 5, Y: 5}, 2, 1),
		scene.Line(scene.PartRoofRack, scene.Style{Stroke: color.NRGBA{R: 0x4a, G: 0x55, B: 0x68, A: 0xff}, StrokeWidth: 4, Opacity: 0.4},
			scene.Point{X: 0, Y: 0}, scene.Point{X: 1.5, Y: 2}),
		scene.Text(scene.PartTentLabel, scene.Style{Fill: color.NRGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff}}, scene.Point{X: 3, Y: 4}, "A&B", 10, true),
	)

	var buf bytes.Buffer
	if err := Encode(&buf, sc); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	doc := buf.String()

	for _, want := range []string{
		`fill="#000000" fill-opacity="0.30`,
		`x2="1.5" y2="2" fill="none" stroke="#4a5568" stroke-width="4" opacity="0.4"`,
		`font-weight="bold" fill="#f97316">A&amp;B</text>`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in:\n%s", want, doc)
		}
	}
}
