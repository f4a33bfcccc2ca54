package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/matzehuels/polyline/pkg/geom"
)

// screen adapts an ebiten image to render.Surface.
type screen struct {
	img *ebiten.Image
}

func (s screen) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s screen) Fill(c color.Color) { s.img.Fill(c) }

func (s screen) Stroke(points []geom.Vec2, c color.Color, width float64) {
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(s.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), c, true)
	}
}
