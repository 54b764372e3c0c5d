package scene

import (
	"math"

	"github.com/samber/lo"
)

// Part tags the sub-assembly a primitive belongs to.
type Part string

const (
	PartShadow       Part = "shadow"
	PartHitch        Part = "hitch"
	PartPlatform     Part = "platform"
	PartDiamondPlate Part = "diamond-plate"
	PartSidePanel    Part = "side-panel"
	PartDoor         Part = "door"
	PartFrontPanel   Part = "front-panel"
	PartRearPanel    Part = "rear-panel"
	PartPropane      Part = "propane"
	PartAxle         Part = "axle"
	PartWheel        Part = "wheel"
	PartFender       Part = "fender"
	PartRoofPlatform Part = "roof-platform"
	PartRoofRack     Part = "roof-rack"
	PartTent         Part = "tent"
	PartTentLabel    Part = "tent-label"
)

// Default viewbox.
const (
	Width  = 800
	Height = 600
)

// Scene is an ordered list of primitives. Slice order is paint order:
// later entries cover earlier ones.
type Scene struct {
	Width      float64
	Height     float64
	Primitives []Primitive
}

// New returns an empty scene with the default viewbox.
func New() *Scene {
	return &Scene{Width: Width, Height: Height}
}

// Add appends primitives in paint order.
func (s *Scene) Add(p ...Primitive) {
	s.Primitives = append(s.Primitives, p...)
}

// Len returns the number of primitives.
func (s Scene) Len() int { return len(s.Primitives) }

// Filter returns the primitives tagged with part, in paint order.
func (s Scene) Filter(part Part) []Primitive {
	return lo.Filter(s.Primitives, func(p Primitive, _ int) bool {
		return p.Part == part
	})
}

// Count returns how many primitives are tagged with part.
func (s Scene) Count(part Part) int {
	return lo.CountBy(s.Primitives, func(p Primitive) bool {
		return p.Part == part
	})
}

// Parts returns the distinct part tags in order of first appearance.
func (s Scene) Parts() []Part {
	return lo.Uniq(lo.Map(s.Primitives, func(p Primitive, _ int) Part {
		return p.Part
	}))
}

// Bounds returns the axis-aligned box enclosing all geometry, ignoring
// stroke width. Text contributes its anchor only.
func (s Scene) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	grow := func(x, y float64) {
		min.X = math.Min(min.X, x)
		min.Y = math.Min(min.Y, y)
		max.X = math.Max(max.X, x)
		max.Y = math.Max(max.Y, y)
	}
	for _, p := range s.Primitives {
		switch p.Kind {
		case KindPolygon, KindLine:
			for _, pt := range p.Points {
				grow(pt.X, pt.Y)
			}
		case KindCircle, KindEllipse:
			grow(p.Center.X-p.RX, p.Center.Y-p.RY)
			grow(p.Center.X+p.RX, p.Center.Y+p.RY)
		case KindRect:
			grow(p.Origin.X, p.Origin.Y)
			grow(p.Origin.X+p.Width, p.Origin.Y+p.Height)
		case KindText:
			grow(p.Center.X, p.Center.Y)
		}
	}
	return min, max
}
