package sink

import "github.com/matzehuels/polyline/pkg/render"

// RenderPDF renders f as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(f render.Frame, opts ...Option) ([]byte, error) {
	return render.ToPDF(RenderSVG(f, opts...))
}
