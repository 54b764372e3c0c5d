package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a position in scene space: origin top-left, Y grows downward.
type Point struct {
	X, Y float64
}

// Pt converts a 2D vector into a Point.
func Pt(v mgl64.Vec2) Point { return Point{X: v[0], Y: v[1]} }

// Vec returns p as a 2D vector.
func (p Point) Vec() mgl64.Vec2 { return mgl64.Vec2{p.X, p.Y} }

// Add offsets p by (dx, dy).
func (p Point) Add(dx, dy float64) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Kind identifies the drawing primitive.
type Kind uint8

const (
	KindPolygon Kind = iota
	KindLine
	KindCircle
	KindEllipse
	KindRect
	KindText
)

var kindNames = [...]string{"polygon", "line", "circle", "ellipse", "rect", "text"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Style holds paint attributes. A zero-alpha colour means "not painted".
type Style struct {
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64
	Opacity     float64 // 0 is treated as fully opaque
}

// Alpha returns the effective opacity multiplier.
func (s Style) Alpha() float64 {
	if s.Opacity <= 0 || s.Opacity > 1 {
		return 1
	}
	return s.Opacity
}

// HasFill reports whether the interior is painted.
func (s Style) HasFill() bool { return s.Fill.A > 0 }

// HasStroke reports whether the outline is painted.
func (s Style) HasStroke() bool { return s.Stroke.A > 0 && s.StrokeWidth > 0 }

// Primitive is one drawable element. Which geometry fields are meaningful
// depends on Kind:
//
//	polygon  Points (closed)
//	line     Points[0] → Points[1]
//	circle   Center, RX
//	ellipse  Center, RX, RY
//	rect     Origin (top-left), Width, Height, RX (corner radius)
//	text     Center (anchor, baseline), Text, FontSize, Bold; centred horizontally
type Primitive struct {
	Kind Kind
	Part Part

	Points []Point
	Center Point
	Origin Point
	Width  float64
	Height float64
	RX, RY float64

	Text     string
	FontSize float64
	Bold     bool

	Style Style
}

// Polygon builds a closed polygon.
func Polygon(part Part, st Style, pts ...Point) Primitive {
	return Primitive{Kind: KindPolygon, Part: part, Points: pts, Style: st}
}

// Line builds a straight segment from a to b.
func Line(part Part, st Style, a, b Point) Primitive {
	return Primitive{Kind: KindLine, Part: part, Points: []Point{a, b}, Style: st}
}

// Circle builds a circle of radius r.
func Circle(part Part, st Style, c Point, r float64) Primitive {
	return Primitive{Kind: KindCircle, Part: part, Center: c, RX: r, RY: r, Style: st}
}

// Ellipse builds an axis-aligned ellipse.
func Ellipse(part Part, st Style, c Point, rx, ry float64) Primitive {
	return Primitive{Kind: KindEllipse, Part: part, Center: c, RX: rx, RY: ry, Style: st}
}

// Rect builds an axis-aligned rectangle with corner radius r.
func Rect(part Part, st Style, origin Point, w, h, r float64) Primitive {
	return Primitive{Kind: KindRect, Part: part, Origin: origin, Width: w, Height: h, RX: r, RY: r, Style: st}
}

// Text builds a horizontally centred label whose baseline passes through anchor.
func Text(part Part, st Style, anchor Point, s string, size float64, bold bool) Primitive {
	return Primitive{Kind: KindText, Part: part, Center: anchor, Text: s, FontSize: size, Bold: bold, Style: st}
}
