package sink

import "github.com/matzehuels/polyline/pkg/render"

// Default canvas size in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// Option configures rendering for all sinks.
type Option func(*renderer)

type renderer struct {
	width, height int
	theme         render.Theme
}

// WithSize sets the canvas size in pixels. Non-positive values keep the default.
func WithSize(w, h int) Option {
	return func(r *renderer) {
		if w > 0 {
			r.width = w
		}
		if h > 0 {
			r.height = h
		}
	}
}

// WithTheme sets colours, padding and stroke width.
func WithTheme(t render.Theme) Option { return func(r *renderer) { r.theme = t } }

func newRenderer(opts ...Option) renderer {
	r := renderer{width: DefaultWidth, height: DefaultHeight, theme: render.DefaultTheme()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
