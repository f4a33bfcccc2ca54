package pipeline

import (
	"fmt"

	"github.com/matzehuels/polyline/pkg/render"
	"github.com/matzehuels/polyline/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(f render.Frame, opts Options) (map[string][]byte, error) {
	theme, err := opts.Theme()
	if err != nil {
		return nil, err
	}
	sinkOpts := []sink.Option{
		sink.WithSize(opts.CanvasWidth, opts.CanvasHeight),
		sink.WithTheme(theme),
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if _, done := artifacts[format]; done {
			continue
		}

		var data []byte
		switch format {
		case FormatSVG:
			data = sink.RenderSVG(f, sinkOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(f, sinkOpts...)
		case FormatPDF:
			data, err = sink.RenderPDF(f, sinkOpts...)
		default:
			return nil, ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
