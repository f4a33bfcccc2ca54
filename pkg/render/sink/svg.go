package sink

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/matzehuels/polyline/pkg/geom"
	"github.com/matzehuels/polyline/pkg/render"
)

// SVG is a [render.Surface] that accumulates SVG elements.
type SVG struct {
	w, h float64
	body bytes.Buffer
}

// NewSVG returns an empty w×h SVG surface.
func NewSVG(w, h int) *SVG {
	return &SVG{w: float64(w), h: float64(h)}
}

func (s *SVG) Size() (float64, float64) { return s.w, s.h }

// Fill adds a full-canvas rectangle. Earlier content is kept but covered.
func (s *SVG) Fill(c color.Color) {
	fmt.Fprintf(&s.body, "  <rect x=\"0\" y=\"0\" width=\"%.0f\" height=\"%.0f\" fill=\"%s\"/>\n",
		s.w, s.h, render.Hex(c))
}

func (s *SVG) Stroke(points []geom.Vec2, c color.Color, width float64) {
	s.body.WriteString("  <polyline points=\"")
	for i, p := range points {
		if i > 0 {
			s.body.WriteByte(' ')
		}
		fmt.Fprintf(&s.body, "%.2f,%.2f", p.X, p.Y)
	}
	fmt.Fprintf(&s.body, "\" fill=\"none\" stroke=\"%s\" stroke-width=\"%g\" stroke-linejoin=\"round\" stroke-linecap=\"round\"/>\n",
		render.Hex(c), width)
}

// Bytes returns the complete SVG document.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.w, s.h, s.w, s.h)
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// RenderSVG draws f into a new SVG document.
func RenderSVG(f render.Frame, opts ...Option) []byte {
	r := newRenderer(opts...)
	s := NewSVG(r.width, r.height)
	render.Draw(s, f, r.theme)
	return s.Bytes()
}
