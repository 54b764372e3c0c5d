package raster

import (
	"math"

	"camper-renderer/internal/mathutil"
	"camper-renderer/internal/scene"
)

// pt is a path vertex in scene units.
type pt struct{ x, y float64 }

const (
	ellipseSegments = 64
	cornerSegments  = 8
)

func fromScene(ps []scene.Point) []pt {
	out := make([]pt, len(ps))
	for i, p := range ps {
		out[i] = pt{p.X, p.Y}
	}
	return out
}

// signedArea is positive for clockwise winding in Y-down space.
func signedArea(p []pt) float64 {
	var a float64
	for i := range p {
		j := (i + 1) % len(p)
		a += p[i].x*p[j].y - p[j].x*p[i].y
	}
	return a / 2
}

// positive returns p wound with positive area. The rasterizer sums signed
// coverage, so overlapping subpaths must agree or they cancel out.
func positive(p []pt) []pt {
	if signedArea(p) >= 0 {
		return p
	}
	r := make([]pt, len(p))
	for i := range p {
		r[i] = p[len(p)-1-i]
	}
	return r
}

func ellipsePath(cx, cy, rx, ry float64) []pt {
	out := make([]pt, ellipseSegments)
	for i := range out {
		a := mathutil.RingAngle(i, ellipseSegments)
		out[i] = pt{cx + math.Cos(a)*rx, cy + math.Sin(a)*ry}
	}
	return out
}

// roundedRectPath traces a rectangle with corner radius r, clamped to half
// the shorter side.
func roundedRectPath(x, y, w, h, r float64) []pt {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return []pt{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	}
	corners := []struct {
		cx, cy float64
		start  float64
	}{
		{x + w - r, y + r, mathutil.Deg2Rad(-90)},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, mathutil.Deg2Rad(90)},
		{x + r, y + r, mathutil.Deg2Rad(180)},
	}
	out := make([]pt, 0, 4*(cornerSegments+1))
	for _, c := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := c.start + mathutil.RingAngle(i, 4*cornerSegments)
			out = append(out, pt{c.cx + math.Cos(a)*r, c.cy + math.Sin(a)*r})
		}
	}
	return out
}

// strokePaths returns the outline of a polyline of width w as one quad per
// segment plus a round joint at every vertex.
func strokePaths(p []pt, closed bool, w float64) [][]pt {
	if len(p) < 2 || w <= 0 {
		return nil
	}
	half := w / 2
	var out [][]pt

	n := len(p) - 1
	if closed {
		n = len(p)
	}
	for i := 0; i < n; i++ {
		a, b := p[i], p[(i+1)%len(p)]
		dx, dy := b.x-a.x, b.y-a.y
		l := math.Hypot(dx, dy)
		if l < 1e-9 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		out = append(out, []pt{
			{a.x + nx, a.y + ny},
			{b.x + nx, b.y + ny},
			{b.x - nx, b.y - ny},
			{a.x - nx, a.y - ny},
		})
	}

	// Joints only matter once the stroke is visibly wide.
	if w >= 1.5 {
		for _, v := range p {
			out = append(out, ellipsePath(v.x, v.y, half, half))
		}
	}
	return out
}

// outline returns the closed fill path for prim, or nil for strokes-only kinds.
func outline(prim scene.Primitive) []pt {
	switch prim.Kind {
	case scene.KindPolygon:
		return fromScene(prim.Points)
	case scene.KindCircle, scene.KindEllipse:
		return ellipsePath(prim.Center.X, prim.Center.Y, prim.RX, prim.RY)
	case scene.KindRect:
		return roundedRectPath(prim.Origin.X, prim.Origin.Y, prim.Width, prim.Height, prim.RX)
	}
	return nil
}
