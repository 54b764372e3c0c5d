package iso

import (
	"math"
	"testing"

	"camper-renderer/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

func TestProjectOrigin(t *testing.T) {
	got := Default().At(0, 0, 0)
	if got != (scene.Point{X: 400, Y: 300}) {
		t.Fatalf("origin projected to %+v, want (400,300)", got)
	}
}

func TestProjectAxes(t *testing.T) {
	cam := Default()
	cos30 := math.Sqrt(3) / 2

	tests := []struct {
		name string
		p    mgl64.Vec3
		want scene.Point
	}{
		{"x axis", mgl64.Vec3{10, 0, 0}, scene.Point{X: 400 + 10*cos30*2.5, Y: 300 + 10*0.5*2.5}},
		{"y axis", mgl64.Vec3{0, 10, 0}, scene.Point{X: 400 - 10*cos30*2.5, Y: 300 + 10*0.5*2.5}},
		{"z axis", mgl64.Vec3{0, 0, 10}, scene.Point{X: 400, Y: 275}},
		{"x equals y", mgl64.Vec3{7, 7, 0}, scene.Point{X: 400, Y: 300 + 7*2.5}},
	}
	for _, tt := range tests {
		got := cam.Project(tt.p)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("%s: Project(%v) = %+v, want %+v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestProjectDeterministic(t *testing.T) {
	cam := Default()
	p := mgl64.Vec3{-72.5, 40.5, 55}
	first := cam.Project(p)
	for i := 0; i < 100; i++ {
		if got := cam.Project(p); got != first {
			t.Fatalf("call %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestProjectAllPreservesOrder(t *testing.T) {
	cam := Default()
	pts := []mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	got := cam.ProjectAll(pts...)
	if len(got) != len(pts) {
		t.Fatalf("got %d points, want %d", len(got), len(pts))
	}
	for i, p := range pts {
		if got[i] != cam.Project(p) {
			t.Errorf("point %d: got %+v, want %+v", i, got[i], cam.Project(p))
		}
	}
}
