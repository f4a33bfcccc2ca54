// Package pipeline provides the generate → smooth → simplify → render
// pipeline behind every polyline command.
//
// The CLI, the interactive views and tests all go through this package so
// that defaults and validation live in one place.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Generate: produce a random walk with a seeded uniform source
//  2. Smooth: moving-average the Y coordinates
//  3. Simplify: reduce the smoothed path with Ramer-Douglas-Peucker
//  4. Render: draw the three paths to SVG, PNG or PDF
//
// Every stage returns a new path; none mutates its input.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Tolerance = 0.01
//	opts.Formats = []string{"svg", "png"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	raw := pipeline.Generate(opts)
//	frame := pipeline.Process(opts, raw)
//	artifacts, err := pipeline.Render(frame, opts)
package pipeline

import (
	"fmt"
	"image/color"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/polyline/pkg/errors"
	"github.com/matzehuels/polyline/pkg/render"
	"github.com/matzehuels/polyline/pkg/render/sink"
	"github.com/matzehuels/polyline/pkg/synth"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and interactive views
// =============================================================================

const (
	// DefaultRadius is the bootstrap smoothing radius.
	DefaultRadius = 1

	// DefaultTolerance is the bootstrap simplification tolerance.
	DefaultTolerance = 0.0

	// DefaultSource is the default uniform source.
	DefaultSource = SourcePCG

	// Default theme colours.
	DefaultBackground      = "#222222"
	DefaultRawColor        = "#444444"
	DefaultSmoothedColor   = "#888888"
	DefaultSimplifiedColor = "#ffffff"
)

// Uniform sources for path generation.
const (
	SourcePCG     = "pcg"
	SourceSimplex = "simplex"
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// ValidSources is the set of supported uniform sources.
var ValidSources = map[string]bool{
	SourcePCG:     true,
	SourceSimplex: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// It is decoded from config files, so every field carries json and toml tags.
//
// Strength, Radius, Tolerance and Padding have meaningful zero values and are
// never defaulted; start from [DefaultOptions] to get the bootstrap values.
type Options struct {
	// Generate options
	Width     float64 `json:"width,omitempty" toml:"width"`
	Height    float64 `json:"height,omitempty" toml:"height"`
	Count     int     `json:"count,omitempty" toml:"count"`
	Strength  float64 `json:"strength" toml:"strength"`
	Seed      uint64  `json:"seed,omitempty" toml:"seed"` // 0 picks a random seed
	Source    string  `json:"source,omitempty" toml:"source"`
	Frequency float64 `json:"frequency,omitempty" toml:"frequency"` // simplex source only

	// Process options
	Radius    int     `json:"radius" toml:"radius"`
	Tolerance float64 `json:"tolerance" toml:"tolerance"`

	// Render options
	Formats         []string `json:"formats,omitempty" toml:"formats"`
	CanvasWidth     int      `json:"canvas_width,omitempty" toml:"canvas_width"`
	CanvasHeight    int      `json:"canvas_height,omitempty" toml:"canvas_height"`
	Padding         float64  `json:"padding" toml:"padding"`
	StrokeWidth     float64  `json:"stroke_width,omitempty" toml:"stroke_width"`
	Background      string   `json:"background,omitempty" toml:"background"`
	RawColor        string   `json:"raw_color,omitempty" toml:"raw_color"`
	SmoothedColor   string   `json:"smoothed_color,omitempty" toml:"smoothed_color"`
	SimplifiedColor string   `json:"simplified_color,omitempty" toml:"simplified_color"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has succeeded.
	validated bool
}

// DefaultOptions returns the bootstrap configuration: a 256-point path of
// strength 0.1 in the unit square, smoothed with radius 1 and simplified
// with tolerance 0, rendered as SVG.
func DefaultOptions() Options {
	o := Options{
		Strength:  synth.DefaultStrength,
		Radius:    DefaultRadius,
		Tolerance: DefaultTolerance,
		Padding:   render.DefaultPadding,
	}
	o.setValueDefaults()
	return o
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs and hooks.
	RunID string

	// Seed is the seed actually used, so random runs can be reproduced.
	Seed uint64

	// Frame holds the raw, smoothed and simplified paths.
	Frame render.Frame

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RawPoints        int
	SimplifiedPoints int
	MaxDeviation     float64
	GenerateTime     time.Duration
	SmoothTime       time.Duration
	SimplifyTime     time.Duration
	RenderTime       time.Duration
}

// Reduction returns the fraction of points removed by simplification.
func (s Stats) Reduction() float64 {
	if s.RawPoints == 0 {
		return 0
	}
	return 1 - float64(s.SimplifiedPoints)/float64(s.RawPoints)
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(formatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSource checks that a uniform source name is valid.
func ValidateSource(source string) error {
	if !ValidSources[source] {
		return errors.Invalid("source", "must be one of pcg, simplex, got %q", source)
	}
	return nil
}

func formatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset fields whose zero value is not meaningful.
func (o *Options) SetDefaults() {
	o.setValueDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// setValueDefaults fills zero-valued fields except Logger, which is left
// for a [Runner] to supply.
func (o *Options) setValueDefaults() {
	if o.Width == 0 {
		o.Width = synth.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = synth.DefaultHeight
	}
	if o.Count == 0 {
		o.Count = synth.DefaultCount
	}
	if o.Source == "" {
		o.Source = DefaultSource
	}
	if o.Frequency == 0 {
		o.Frequency = synth.DefaultSimplexFrequency
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.CanvasWidth == 0 {
		o.CanvasWidth = sink.DefaultWidth
	}
	if o.CanvasHeight == 0 {
		o.CanvasHeight = sink.DefaultHeight
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = render.DefaultStrokeWidth
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.RawColor == "" {
		o.RawColor = DefaultRawColor
	}
	if o.SmoothedColor == "" {
		o.SmoothedColor = DefaultSmoothedColor
	}
	if o.SimplifiedColor == "" {
		o.SimplifiedColor = DefaultSimplifiedColor
	}
}

// Validate checks every field. It does not apply defaults.
func (o *Options) Validate() error {
	if err := o.PathParams().Validate(); err != nil {
		return err
	}
	if err := ValidateSource(o.Source); err != nil {
		return err
	}
	if o.Source == SourceSimplex && !(o.Frequency > 0) {
		return errors.Invalid("frequency", "must be positive, got %g", o.Frequency)
	}
	if err := errors.ValidateRadius(o.Radius); err != nil {
		return err
	}
	if err := errors.ValidateTolerance(o.Tolerance); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateCanvas(o.CanvasWidth, o.CanvasHeight); err != nil {
		return err
	}
	if err := errors.ValidatePadding(o.Padding); err != nil {
		return err
	}
	if !(o.StrokeWidth > 0) {
		return errors.Invalid("stroke-width", "must be positive, got %g", o.StrokeWidth)
	}
	_, err := o.Theme()
	return err
}

// ValidateAndSetDefaults applies defaults and validates.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// PathParams returns the generation parameters.
func (o *Options) PathParams() synth.Params {
	return synth.Params{
		Width:    o.Width,
		Height:   o.Height,
		Count:    o.Count,
		Strength: o.Strength,
	}
}

// Theme parses the configured colours.
func (o *Options) Theme() (render.Theme, error) {
	t := render.Theme{Padding: o.Padding, StrokeWidth: o.StrokeWidth}
	colors := []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"background", o.Background, &t.Background},
		{"raw", o.RawColor, &t.Raw},
		{"smoothed", o.SmoothedColor, &t.Smoothed},
		{"simplified", o.SimplifiedColor, &t.Simplified},
	}
	for _, c := range colors {
		parsed, err := render.ParseColor(c.hex)
		if err != nil {
			return render.Theme{}, fmt.Errorf("%s colour: %w", c.name, err)
		}
		*c.dst = parsed
	}
	return t, nil
}
