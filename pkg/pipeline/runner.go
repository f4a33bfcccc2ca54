package pipeline

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/polyline/pkg/geom"
	"github.com/matzehuels/polyline/pkg/observability"
	"github.com/matzehuels/polyline/pkg/render"
	"github.com/matzehuels/polyline/pkg/simplify"
	"github.com/matzehuels/polyline/pkg/smooth"
	"github.com/matzehuels/polyline/pkg/synth"
)

// Runner executes the pipeline with logging and observability hooks.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete generate → smooth → simplify → render pipeline.
// The context is checked between stages; the stages themselves run to completion.
func (r *Runner) Execute(ctx context.Context, opts Options) (result *Result, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	hooks := observability.Pipeline()
	runID := uuid.NewString()
	start := time.Now()
	hooks.OnRunStart(ctx, runID)
	defer func() { hooks.OnRunComplete(ctx, runID, time.Since(start), err) }()

	logger := opts.Logger.With("run", runID[:8])
	result = &Result{RunID: runID, Seed: ResolveSeed(opts.Seed)}
	opts.Seed = result.Seed

	// Stage 1: Generate
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := time.Now()
	hooks.OnStageStart(ctx, observability.StageGenerate, opts.Count)
	raw := Generate(opts)
	result.Stats.GenerateTime = time.Since(t)
	hooks.OnStageComplete(ctx, observability.StageGenerate, len(raw), result.Stats.GenerateTime, nil)
	logger.Debug("generated path",
		"points", len(raw),
		"seed", result.Seed,
		"source", opts.Source,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Smooth
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t = time.Now()
	hooks.OnStageStart(ctx, observability.StageSmooth, len(raw))
	smoothed := smooth.Smooth(raw, opts.Radius)
	result.Stats.SmoothTime = time.Since(t)
	hooks.OnStageComplete(ctx, observability.StageSmooth, len(smoothed), result.Stats.SmoothTime, nil)
	logger.Debug("smoothed path",
		"radius", opts.Radius,
		"duration", result.Stats.SmoothTime)

	// Stage 3: Simplify
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t = time.Now()
	hooks.OnStageStart(ctx, observability.StageSimplify, len(smoothed))
	simplified := simplify.Simplify(smoothed, opts.Tolerance)
	result.Stats.SimplifyTime = time.Since(t)
	hooks.OnStageComplete(ctx, observability.StageSimplify, len(simplified), result.Stats.SimplifyTime, nil)

	result.Frame = render.Frame{Raw: raw, Smoothed: smoothed, Simplified: simplified}
	result.Stats.RawPoints = len(raw)
	result.Stats.SimplifiedPoints = len(simplified)
	result.Stats.MaxDeviation = simplify.MaxDeviation(smoothed)
	logger.Info("simplified path",
		"tolerance", opts.Tolerance,
		"kept", len(simplified),
		"of", len(smoothed),
		"duration", result.Stats.SimplifyTime)

	// Stage 4: Render
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t = time.Now()
	artifacts, err := r.render(ctx, result.Frame, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(t)
	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Render validates opts and renders f.
func (r *Runner) Render(ctx context.Context, f render.Frame, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return r.render(ctx, f, opts)
}

func (r *Runner) render(ctx context.Context, f render.Frame, opts Options) (map[string][]byte, error) {
	hooks := observability.Pipeline()
	points := len(f.Raw) + len(f.Smoothed) + len(f.Simplified)
	start := time.Now()
	hooks.OnStageStart(ctx, observability.StageRender, points)
	artifacts, err := Render(f, opts)
	hooks.OnStageComplete(ctx, observability.StageRender, points, time.Since(start), err)
	return artifacts, err
}

// Generate produces the raw path described by opts. opts.Seed must already
// be resolved; a zero seed is used as is.
func Generate(opts Options) geom.Path {
	return NewGenerator(opts).Generate(opts.PathParams())
}

// NewGenerator returns a generator for the source and seed in opts.
func NewGenerator(opts Options) *synth.Generator {
	if opts.Source == SourceSimplex {
		freq := opts.Frequency
		if freq == 0 {
			freq = synth.DefaultSimplexFrequency
		}
		return synth.New(synth.NewSimplexSource(int64(opts.Seed), freq))
	}
	return synth.NewGenerator(opts.Seed)
}

// Process smooths and simplifies raw with the parameters in opts.
func Process(opts Options, raw geom.Path) render.Frame {
	smoothed := smooth.Smooth(raw, opts.Radius)
	return render.Frame{
		Raw:        raw,
		Smoothed:   smoothed,
		Simplified: simplify.Simplify(smoothed, opts.Tolerance),
	}
}

// ResolveSeed returns seed, or a random non-zero seed if seed is 0.
func ResolveSeed(seed uint64) uint64 {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
