// Package interact turns pointer input into pipeline parameters.
//
// A [Controller] owns the three paths of the current picture. Moving the
// pointer re-runs smoothing and simplification on the existing raw path with
// parameters read off the pointer position: the vertical position picks the
// smoothing radius and the horizontal position the simplification tolerance.
// A click first generates a fresh raw path.
//
// The controller is driven from a single event loop and is not safe for
// concurrent use.
package interact

import (
	"math"

	"github.com/matzehuels/polyline/pkg/geom"
	"github.com/matzehuels/polyline/pkg/render"
	"github.com/matzehuels/polyline/pkg/simplify"
	"github.com/matzehuels/polyline/pkg/smooth"
	"github.com/matzehuels/polyline/pkg/synth"
)

// Bootstrap parameters applied before any pointer event.
const (
	BootstrapRadius    = 1
	BootstrapTolerance = 0.0
)

// ToleranceExponent shapes the pointer-to-tolerance curve so that most of the
// horizontal range maps to small tolerances.
const ToleranceExponent = 4

// Pointer is a position in surface pixels, relative to its top-left corner.
type Pointer struct {
	X, Y float64
}

// Viewport is the size of the surface receiving pointer events.
type Viewport struct {
	Width, Height float64
}

// Params are the smoothing and simplification settings of one recompute.
type Params struct {
	Radius    int     `json:"radius"`
	Tolerance float64 `json:"tolerance"`
}

// BootstrapParams returns radius 1 and tolerance 0.
func BootstrapParams() Params {
	return Params{Radius: BootstrapRadius, Tolerance: BootstrapTolerance}
}

// ParamsAt maps a pointer position to parameters: Radius = round(16·y/h) and
// Tolerance = (x/w)^4. The pointer is clamped to the viewport. A viewport with
// no area yields [BootstrapParams].
func ParamsAt(p Pointer, v Viewport) Params {
	if !(v.Width > 0) || !(v.Height > 0) {
		return BootstrapParams()
	}
	fx := clamp01(p.X / v.Width)
	fy := clamp01(p.Y / v.Height)
	return Params{
		Radius:    int(math.Round(smooth.MaxPointerRadius * fy)),
		Tolerance: math.Pow(fx, ToleranceExponent),
	}
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return min(max(x, 0), 1)
}

// State is the complete output of one recompute. It is replaced as a whole on
// every trigger; the paths in it are never modified afterwards.
type State struct {
	Raw        geom.Path `json:"raw"`
	Smoothed   geom.Path `json:"smoothed"`
	Simplified geom.Path `json:"simplified"`
	Params     Params    `json:"params"`
}

// Frame returns the paths in draw order.
func (s State) Frame() render.Frame {
	return render.Frame{Raw: s.Raw, Smoothed: s.Smoothed, Simplified: s.Simplified}
}

// Config configures a Controller.
type Config struct {
	// Path holds the generation parameters used at bootstrap and on every click.
	Path synth.Params
	// Initial is the smoothing and simplification applied at bootstrap.
	Initial Params
	// OnChange is called after every recompute, if set.
	OnChange func(State)
}

// DefaultConfig returns the bootstrap configuration.
func DefaultConfig() Config {
	return Config{
		Path:    synth.DefaultParams(),
		Initial: BootstrapParams(),
	}
}

// Controller reacts to pointer events.
type Controller struct {
	gen   *synth.Generator
	cfg   Config
	state State
}

// New generates the first raw path and processes it with cfg.Initial.
func New(gen *synth.Generator, cfg Config) *Controller {
	c := &Controller{gen: gen, cfg: cfg}
	c.regenerate()
	c.recompute(cfg.Initial)
	return c
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// PointerMove re-smooths and re-simplifies the current raw path with the
// parameters at p.
func (c *Controller) PointerMove(p Pointer, v Viewport) State {
	return c.recompute(ParamsAt(p, v))
}

// Click generates a new raw path, then behaves like PointerMove.
func (c *Controller) Click(p Pointer, v Viewport) State {
	c.regenerate()
	return c.recompute(ParamsAt(p, v))
}

// Apply reprocesses the current raw path with explicit parameters.
func (c *Controller) Apply(params Params) State {
	return c.recompute(params)
}

// Regenerate generates a new raw path and keeps the current parameters.
func (c *Controller) Regenerate() State {
	c.regenerate()
	return c.recompute(c.state.Params)
}

func (c *Controller) regenerate() {
	c.state.Raw = c.gen.Generate(c.cfg.Path)
}

func (c *Controller) recompute(params Params) State {
	smoothed := smooth.Smooth(c.state.Raw, params.Radius)
	c.state = State{
		Raw:        c.state.Raw,
		Smoothed:   smoothed,
		Simplified: simplify.Simplify(smoothed, params.Tolerance),
		Params:     params,
	}
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(c.state)
	}
	return c.state
}
