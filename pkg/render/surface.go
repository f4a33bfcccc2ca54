package render

import (
	"image/color"

	"github.com/matzehuels/polyline/pkg/geom"
)

// DefaultPadding is the fraction of the surface left empty on each side.
const DefaultPadding = 0.125

// DefaultStrokeWidth is the line width in pixels.
const DefaultStrokeWidth = 1.0

// Surface is a pixel-addressed drawing target.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h float64)
	// Fill paints the whole surface.
	Fill(c color.Color)
	// Stroke draws an open polyline through points.
	Stroke(points []geom.Vec2, c color.Color, width float64)
}

// Frame is one complete picture: the three stages of a pipeline run.
type Frame struct {
	Raw        geom.Path
	Smoothed   geom.Path
	Simplified geom.Path
}

// Theme holds the colours and geometry used by [Draw].
type Theme struct {
	Background  color.Color
	Raw         color.Color
	Smoothed    color.Color
	Simplified  color.Color
	Padding     float64
	StrokeWidth float64
}

// DefaultTheme returns dark grey background with progressively lighter strokes.
func DefaultTheme() Theme {
	return Theme{
		Background:  mustHex("#222222"),
		Raw:         mustHex("#444444"),
		Smoothed:    mustHex("#888888"),
		Simplified:  mustHex("#ffffff"),
		Padding:     DefaultPadding,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// Map converts a normalized coordinate to a pixel position on a w×h surface.
func Map(p geom.Vec2, w, h, padding float64) geom.Vec2 {
	size := geom.V(w, h)
	return size.Scale(padding).Add(p.Mul(size.Scale(1 - 2*padding)))
}

// Unmap is the inverse of [Map]. It returns the zero vector for an empty surface.
func Unmap(px geom.Vec2, w, h, padding float64) geom.Vec2 {
	if w <= 0 || h <= 0 || padding >= 0.5 {
		return geom.Vec2{}
	}
	size := geom.V(w, h)
	inner := size.Scale(1 - 2*padding)
	d := px.Sub(size.Scale(padding))
	return geom.V(d.X/inner.X, d.Y/inner.Y)
}

// DrawPath maps p onto s and strokes it. Paths with fewer than two points
// draw nothing.
func DrawPath(s Surface, p geom.Path, c color.Color, padding, width float64) {
	if len(p) < 2 {
		return
	}
	w, h := s.Size()
	pts := make([]geom.Vec2, len(p))
	for i, v := range p {
		pts[i] = Map(v, w, h, padding)
	}
	s.Stroke(pts, c, width)
}

// Draw paints f onto s using theme.
func Draw(s Surface, f Frame, theme Theme) {
	s.Fill(theme.Background)
	DrawPath(s, f.Raw, theme.Raw, theme.Padding, theme.StrokeWidth)
	DrawPath(s, f.Smoothed, theme.Smoothed, theme.Padding, theme.StrokeWidth)
	DrawPath(s, f.Simplified, theme.Simplified, theme.Padding, theme.StrokeWidth)
}
