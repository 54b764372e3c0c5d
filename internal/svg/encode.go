// Package svg serializes a scene as a standalone SVG document.
package svg

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"strconv"
	"strings"

	"camper-renderer/internal/scene"
)

// Encode writes sc to w as SVG, one element per primitive in paint order.
func Encode(w io.Writer, sc scene.Scene) error {
	_, err := io.WriteString(w, Render(sc))
	return err
}

// Render returns sc as an SVG document string.
func Render(sc scene.Scene) string {
	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		formatFloat(sc.Width), formatFloat(sc.Height), formatFloat(sc.Width), formatFloat(sc.Height)))
	builder.WriteString("\n")

	for _, p := range sc.Primitives {
		builder.WriteString("  ")
		builder.WriteString(element(p))
		builder.WriteString("\n")
	}

	builder.WriteString(`</svg>`)
	builder.WriteString("\n")
	return builder.String()
}

func element(p scene.Primitive) string {
	attrs := style(p.Style)
	class := fmt.Sprintf(`class="%s"`, p.Part)

	switch p.Kind {
	case scene.KindPolygon:
		return fmt.Sprintf(`<polygon %s points="%s"%s/>`, class, points(p.Points), attrs)
	case scene.KindLine:
		a, b := p.Points[0], p.Points[1]
		return fmt.Sprintf(`<line %s x1="%s" y1="%s" x2="%s" y2="%s"%s/>`, class,
			formatFloat(a.X), formatFloat(a.Y), formatFloat(b.X), formatFloat(b.Y), attrs)
	case scene.KindCircle:
		return fmt.Sprintf(`<circle %s cx="%s" cy="%s" r="%s"%s/>`, class,
			formatFloat(p.Center.X), formatFloat(p.Center.Y), formatFloat(p.RX), attrs)
	case scene.KindEllipse:
		return fmt.Sprintf(`<ellipse %s cx="%s" cy="%s" rx="%s" ry="%s"%s/>`, class,
			formatFloat(p.Center.X), formatFloat(p.Center.Y), formatFloat(p.RX), formatFloat(p.RY), attrs)
	case scene.KindRect:
		corner := ""
		if p.RX > 0 {
			corner = fmt.Sprintf(` rx="%s"`, formatFloat(p.RX))
		}
		return fmt.Sprintf(`<rect %s x="%s" y="%s" width="%s" height="%s"%s%s/>`, class,
			formatFloat(p.Origin.X), formatFloat(p.Origin.Y), formatFloat(p.Width), formatFloat(p.Height), corner, attrs)
	case scene.KindText:
		weight := ""
		if p.Bold {
			weight = ` font-weight="bold"`
		}
		return fmt.Sprintf(`<text %s x="%s" y="%s" font-size="%s" text-anchor="middle"%s%s>%s</text>`, class,
			formatFloat(p.Center.X), formatFloat(p.Center.Y), formatFloat(p.FontSize), weight, attrs, html.EscapeString(p.Text))
	}
	return fmt.Sprintf("<!-- unsupported primitive %s -->", p.Kind)
}

func style(st scene.Style) string {
	var b strings.Builder
	if st.HasFill() {
		b.WriteString(paint("fill", st.Fill))
	} else {
		b.WriteString(` fill="none"`)
	}
	if st.HasStroke() {
		b.WriteString(paint("stroke", st.Stroke))
		b.WriteString(fmt.Sprintf(` stroke-width="%s"`, formatFloat(st.StrokeWidth)))
	}
	if a := st.Alpha(); a < 1 {
		b.WriteString(fmt.Sprintf(` opacity="%s"`, formatFloat(a)))
	}
	return b.String()
}

// paint writes a colour attribute plus its "-opacity" companion when the
// colour itself is translucent.
func paint(attr string, c color.NRGBA) string {
	s := fmt.Sprintf(` %s="#%02x%02x%02x"`, attr, c.R, c.G, c.B)
	if c.A < 0xff {
		s += fmt.Sprintf(` %s-opacity="%s"`, attr, formatFloat(float64(c.A)/255))
	}
	return s
}

func points(pts []scene.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = formatFloat(p.X) + "," + formatFloat(p.Y)
	}
	return strings.Join(parts, " ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
