package preview

import "camper-renderer/internal/scene"

// doorSpec sizes one rendering of the side access door. All lengths are
// in scene units around the door centre.
type doorSpec struct {
	width, height float64
	radius        float64
	frameStroke   float64

	inset       float64
	panelRadius float64
	panelStroke float64

	windowWidth, windowHeight float64
	windowTop                 float64 // offset of the window's top edge from centre
	windowRadius              float64
	windowStroke              float64

	handleX, handleY float64
	handleRadius     float64
	handleStroke     float64
}

var (
	inlineDoor = doorSpec{
		width: 60, height: 72, radius: 8, frameStroke: 2,
		inset: 2, panelRadius: 6, panelStroke: 1,
		windowWidth: 40, windowHeight: 32, windowTop: -24, windowRadius: 8, windowStroke: 1,
		handleX: 20, handleY: 16, handleRadius: 4,
	}

	// topDoor is inlineDoor at 1.5× with heavier outlines.
	topDoor = doorSpec{
		width: 90, height: 108, radius: 12, frameStroke: 3,
		inset: 3, panelRadius: 9, panelStroke: 2,
		windowWidth: 60, windowHeight: 48, windowTop: -36, windowRadius: 12, windowStroke: 2,
		handleX: 30, handleY: 24, handleRadius: 6, handleStroke: 1,
	}
)

// door draws the access door on the right-hand wall, a quarter length
// behind the front.
func (b *builder) door(d doorSpec) {
	c := b.at(-b.dim.Length/4, b.dim.Width/2, b.dim.Height/2)

	handle := fill(colLight)
	if d.handleStroke > 0 {
		handle = filled(colLight, colMid, d.handleStroke)
	}

	b.out.Add(
		scene.Rect(scene.PartDoor, filled(colBody, colBlack, d.frameStroke),
			c.Add(-d.width/2, -d.height/2), d.width, d.height, d.radius),
		scene.Rect(scene.PartDoor, filled(colPanel, colDark, d.panelStroke),
			c.Add(-d.width/2+d.inset, -d.height/2+d.inset), d.width-2*d.inset, d.height-2*d.inset, d.panelRadius),
		scene.Rect(scene.PartDoor, faded(filled(colWindow, colDark, d.windowStroke), 0.3),
			c.Add(-d.windowWidth/2, d.windowTop), d.windowWidth, d.windowHeight, d.windowRadius),
		scene.Circle(scene.PartDoor, handle, c.Add(d.handleX, d.handleY), d.handleRadius),
	)
}
