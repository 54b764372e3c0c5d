package camper

import "image/color"

// Dimensions is the body envelope in model units.
type Dimensions struct {
	Width  float64
	Length float64
	Height float64
}

// WheelSpec describes how a wheel package is drawn. Only tread depth and
// shade vary between packages.
type WheelSpec struct {
	Radius     float64
	TreadDepth float64
	RimSize    float64
	Shade      color.NRGBA
}

const (
	frameWidth  = 81
	frameLength = 144

	wheelRadius = 25
	rimSize     = 18
)

// FrameDimensions returns the body envelope for f. Unrecognized frames get
// the standard envelope.
func FrameDimensions(f Frame) Dimensions {
	d := Dimensions{Width: frameWidth, Length: frameLength}
	switch f {
	case FrameMinimalist:
		d.Height = 50
	case FrameHeavy:
		d.Height = 60
	default:
		d.Height = 55
	}
	return d
}

// WheelSpecFor returns the wheel drawing spec for w. Unrecognized packages
// get the standard spec.
func WheelSpecFor(w Wheels) WheelSpec {
	s := WheelSpec{Radius: wheelRadius, RimSize: rimSize}
	switch w {
	case WheelsOffroad:
		s.TreadDepth = 6
		s.Shade = color.NRGBA{0x22, 0x22, 0x22, 0xff}
	case WheelsExtreme:
		s.TreadDepth = 8
		s.Shade = color.NRGBA{0x11, 0x11, 0x11, 0xff}
	default:
		s.TreadDepth = 4
		s.Shade = color.NRGBA{0x33, 0x33, 0x33, 0xff}
	}
	return s
}

// Known reports whether f is one of the declared frames.
func (f Frame) Known() bool {
	return f == FrameMinimalist || f == FrameStandard || f == FrameHeavy
}

// Known reports whether w is one of the declared wheel packages.
func (w Wheels) Known() bool {
	return w == WheelsStandard || w == WheelsOffroad || w == WheelsExtreme
}
