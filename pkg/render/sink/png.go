package sink

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/matzehuels/polyline/pkg/geom"
	"github.com/matzehuels/polyline/pkg/render"
)

// PNG is a [render.Surface] backed by a gg raster context.
type PNG struct {
	ctx *gg.Context
	err error
}

// NewPNG returns a w×h raster surface. Call Close when done.
func NewPNG(w, h int) *PNG {
	ctx := gg.NewContext(w, h)
	ctx.SetLineJoin(gg.LineJoinRound)
	ctx.SetLineCap(gg.LineCapRound)
	return &PNG{ctx: ctx}
}

func (p *PNG) Size() (float64, float64) {
	return float64(p.ctx.Width()), float64(p.ctx.Height())
}

func (p *PNG) Fill(c color.Color) {
	p.ctx.ClearWithColor(gg.FromColor(c))
}

// Stroke draws the polyline. The first rasterization error is kept and
// reported by Encode.
func (p *PNG) Stroke(points []geom.Vec2, c color.Color, width float64) {
	if len(points) == 0 {
		return
	}
	p.ctx.SetColor(c)
	p.ctx.SetLineWidth(width)
	p.ctx.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.ctx.LineTo(pt.X, pt.Y)
	}
	if err := p.ctx.Stroke(); err != nil && p.err == nil {
		p.err = fmt.Errorf("stroke: %w", err)
	}
}

// Encode returns the image as PNG bytes.
func (p *PNG) Encode() ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	if err := p.ctx.FlushGPU(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	var buf bytes.Buffer
	if err := p.ctx.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Close releases the raster context.
func (p *PNG) Close() error { return p.ctx.Close() }

// RenderPNG draws f into a new raster image.
func RenderPNG(f render.Frame, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	s := NewPNG(r.width, r.height)
	defer s.Close()
	render.Draw(s, f, r.theme)
	return s.Encode()
}
