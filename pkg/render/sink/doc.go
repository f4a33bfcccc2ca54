// Package sink provides output format renderers for path frames.
//
// # Overview
//
// A "sink" turns a [render.Frame] into a final output format. Each format
// is backed by a [render.Surface] implementation:
//
//   - SVG: a vector document with one polyline per path
//   - PNG: a raster image drawn with github.com/gogpu/gg
//   - PDF: print-ready output converted from SVG (requires rsvg-convert)
//
// Basic usage:
//
//	svg := sink.RenderSVG(frame, sink.WithSize(1024, 768))
//	png, err := sink.RenderPNG(frame, sink.WithTheme(theme))
//	pdf, err := sink.RenderPDF(frame)
//
// The surfaces can also be used directly, e.g. to draw several frames:
//
//	s := sink.NewSVG(640, 480)
//	render.Draw(s, frame, render.DefaultTheme())
//	out := s.Bytes()
//
// [render.Frame]: github.com/matzehuels/polyline/pkg/render.Frame
// [render.Surface]: github.com/matzehuels/polyline/pkg/render.Surface
package sink
