// Package pkg provides the libraries behind the polyline tool.
//
// # Overview
//
// Polyline generates a random walk, smooths it with a moving average and
// simplifies the result with the Ramer-Douglas-Peucker algorithm. The pkg
// directory is organized into three areas:
//
//  1. Geometry: [geom], [synth], [smooth] and [simplify]
//  2. Output: [render] with its sink and term surfaces
//  3. Orchestration: [pipeline] for batch runs, [interact] for pointer-driven
//     exploration
//
// # Architecture
//
// The data flow through polyline:
//
//	uniform source (PCG or simplex)
//	         ↓
//	    [synth] package (random walk with reflective clamping)
//	         ↓
//	    [smooth] package (moving average of Y)
//	         ↓
//	    [simplify] package (RDP)
//	         ↓
//	    [render] package (SVG/PNG/PDF, window or terminal)
//
// Every stage returns a new path and never modifies its input, so the raw,
// smoothed and simplified paths of one run can be drawn together.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil)
//	opts := pipeline.DefaultOptions()
//	opts.Radius = 4
//	opts.Tolerance = 0.002
//	result, err := runner.Execute(ctx, opts)
//
// Supporting packages: [errors] for coded boundary errors, [observability]
// for stage and pointer hooks, [buildinfo] for version information.
package pkg
