// Package view runs the interactive desktop window.
//
// The window is an ebiten game loop wrapped around an [interact.Controller]:
// pointer motion re-smooths and re-simplifies, a left click generates a new
// path, H toggles the status overlay and Escape quits.
package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/matzehuels/polyline/pkg/geom"
	"github.com/matzehuels/polyline/pkg/interact"
	"github.com/matzehuels/polyline/pkg/observability"
	"github.com/matzehuels/polyline/pkg/render"
)

// Config configures the window.
type Config struct {
	Width, Height int
	Title         string
	Theme         render.Theme
	Logger        *log.Logger
	// HideHUD starts with the status overlay hidden.
	HideHUD bool
}

type game struct {
	ctx    context.Context
	ctrl   *interact.Controller
	cfg    Config
	w, h   int
	last   interact.Pointer
	moved  bool
	hud    bool
	logger *log.Logger
}

// Run opens the window and blocks until it is closed, Escape is pressed or
// ctx is cancelled.
func Run(ctx context.Context, ctrl *interact.Controller, cfg Config) error {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	g := &game{
		ctx:    ctx,
		ctrl:   ctrl,
		cfg:    cfg,
		w:      cfg.Width,
		h:      cfg.Height,
		hud:    !cfg.HideHUD,
		logger: cfg.Logger,
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (g *game) viewport() interact.Viewport {
	return interact.Viewport{Width: float64(g.w), Height: float64(g.h)}
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}

	mx, my := ebiten.CursorPosition()
	p := interact.Pointer{X: float64(mx), Y: float64(my)}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		start := time.Now()
		s := g.ctrl.Click(p, g.viewport())
		d := time.Since(start)
		observability.Interaction().OnClick(g.ctx, s.Params.Radius, s.Params.Tolerance, len(s.Simplified), d)
		g.logger.Debug("regenerated path", "radius", s.Params.Radius, "tolerance", s.Params.Tolerance, "kept", len(s.Simplified), "duration", d)
	case g.moved && p != g.last:
		start := time.Now()
		s := g.ctrl.PointerMove(p, g.viewport())
		observability.Interaction().OnPointerMove(g.ctx, s.Params.Radius, s.Params.Tolerance, len(s.Simplified), time.Since(start))
	}
	g.last, g.moved = p, true
	return nil
}

func (g *game) Draw(img *ebiten.Image) {
	s := g.ctrl.State()
	render.Draw(screen{img}, s.Frame(), g.cfg.Theme)
	if g.hud {
		at := render.Unmap(geom.V(g.last.X, g.last.Y), float64(g.w), float64(g.h), g.cfg.Theme.Padding)
		ebitenutil.DebugPrint(img, fmt.Sprintf(
			"radius %d  tolerance %.6f  points %d/%d  at (%.3f, %.3f)\nmove: smooth/simplify  click: new path  H: hide  ESC: quit",
			s.Params.Radius, s.Params.Tolerance, len(s.Simplified), len(s.Raw), at.X, at.Y))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
