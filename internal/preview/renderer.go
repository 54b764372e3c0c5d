// Package preview turns a camper build into an isometric schematic scene.
//
// Rendering is a pure function of the build: no state is kept between
// calls, nothing is cached, and the same build always yields the same
// primitives in the same order.
package preview

import (
	"camper-renderer/internal/camper"
	"camper-renderer/internal/iso"
	"camper-renderer/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

// Render builds the schematic for cfg with the default camera.
func Render(cfg camper.Config) scene.Scene {
	return RenderWith(iso.Default(), cfg)
}

// RenderWith builds the schematic for cfg as seen by cam.
//
// Steps run back to front; their order is the paint order.
func RenderWith(cam iso.Camera, cfg camper.Config) scene.Scene {
	b := &builder{
		cam:       cam,
		cfg:       cfg,
		dim:       camper.FrameDimensions(cfg.Frame),
		wheelSpec: camper.WheelSpecFor(cfg.Wheels),
		out:       scene.New(),
	}

	b.groundShadow()
	b.hitch()
	b.platform()

	doors := cfg.SidePanels && cfg.SideAccessDoors
	if cfg.SidePanels {
		b.sidePanels()
		if doors {
			b.door(inlineDoor)
		}
	}
	if cfg.FrontPanel {
		b.endPanel(scene.PartFrontPanel, -b.dim.Length/2)
	}
	if cfg.RearPanel {
		b.endPanel(scene.PartRearPanel, b.dim.Length/2)
	}
	if cfg.PropaneTank {
		b.propaneTank()
	}

	b.wheels()

	if cfg.RoofPlatform {
		b.roofPlatform()
	}
	if cfg.RoofRack {
		b.roofRack()
	}
	if cfg.RoofTent {
		b.roofTent()
	}

	// The door is emitted a second time, larger, so it ends up above the
	// roof assembly. The inline pass above stays: roof parts drawn in
	// between still occlude it in cropped views. Keep both.
	if doors {
		b.door(topDoor)
	}

	return *b.out
}

type builder struct {
	cam       iso.Camera
	cfg       camper.Config
	dim       camper.Dimensions
	wheelSpec camper.WheelSpec
	out       *scene.Scene
}

func (b *builder) at(x, y, z float64) scene.Point {
	return b.cam.Project(mgl64.Vec3{x, y, z})
}

// face projects 3D corners and emits them as one closed polygon.
func (b *builder) face(part scene.Part, st scene.Style, corners ...mgl64.Vec3) {
	b.out.Add(scene.Polygon(part, st, b.cam.ProjectAll(corners...)...))
}

// rectXY returns the four corners of the horizontal rectangle spanning
// [x0,x1]×[y0,y1] at height z, wound front-left, rear-left, rear-right, front-right.
func rectXY(x0, x1, y0, y1, z float64) []mgl64.Vec3 {
	return []mgl64.Vec3{{x0, y0, z}, {x1, y0, z}, {x1, y1, z}, {x0, y1, z}}
}
