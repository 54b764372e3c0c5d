package preview

import (
	"image/color"

	"camper-renderer/internal/scene"
)

func rgb(r, g, b uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: 0xff} }

// Shades used across the schematic.
var (
	colBody    = rgb(0x1a, 0x1a, 0x1a)
	colPanel   = rgb(0x2a, 0x2a, 0x2a)
	colAccent  = rgb(0xf9, 0x73, 0x16)
	colShadow  = color.NRGBA{A: 77} // black at 30%
	colSteel   = rgb(0x4a, 0x55, 0x68)
	colDiamond = rgb(0x9c, 0xa3, 0xaf)
	colRim     = rgb(0xe5, 0xe7, 0xeb)
	colPropane = rgb(0xff, 0xff, 0xff)
	colValve   = rgb(0xcc, 0xcc, 0xcc)
	colWindow  = rgb(0x4a, 0x90, 0xe2)
	colRoof    = rgb(0x33, 0x33, 0x33)
	colTent    = rgb(0x2d, 0x4a, 0x2d)
	colPeak    = rgb(0x3d, 0x5a, 0x3d)

	colBlack = rgb(0x00, 0x00, 0x00)
	colDark  = rgb(0x33, 0x33, 0x33)
	colMid   = rgb(0x66, 0x66, 0x66)
	colLight = rgb(0x99, 0x99, 0x99)
)

func fill(c color.NRGBA) scene.Style { return scene.Style{Fill: c} }

func stroke(c color.NRGBA, w float64) scene.Style {
	return scene.Style{Stroke: c, StrokeWidth: w}
}

func filled(f, s color.NRGBA, w float64) scene.Style {
	return scene.Style{Fill: f, Stroke: s, StrokeWidth: w}
}

func faded(st scene.Style, opacity float64) scene.Style {
	st.Opacity = opacity
	return st
}

// panelStyle is the shared look of body panels: dark fill, accent outline.
func panelStyle(opacity float64) scene.Style {
	return faded(filled(colPanel, colAccent, 2), opacity)
}
