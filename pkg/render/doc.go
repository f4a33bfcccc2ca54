// Package render draws paths onto pixel surfaces.
//
// # Overview
//
// Paths produced by the pipeline live in normalized coordinates, usually the
// unit square. A [Surface] is anything that can be filled and stroked in pixel
// coordinates: an SVG buffer, a raster context, a terminal canvas or a game
// window. This package maps between the two and knows the drawing order of a
// [Frame]:
//
//  1. fill the surface with the theme background
//  2. stroke the raw path
//  3. stroke the smoothed path
//  4. stroke the simplified path
//
// Basic usage:
//
//	f := render.Frame{Raw: raw, Smoothed: smoothed, Simplified: simplified}
//	render.Draw(surface, f, render.DefaultTheme())
//
// # Mapping
//
// [Map] insets the drawable area by a padding fraction of the surface size on
// every side, then scales a normalized coordinate into it. The Y axis is not
// flipped: y grows downwards as it does on screen.
//
// # Format Conversion
//
// A [Converter] turns SVG into PDF or PNG with the external rsvg-convert
// tool from librsvg. [ToPDF] and [ToPNG] use [DefaultConverter].
//
// Concrete surfaces live in the [sink] and [term] subpackages.
//
// [sink]: github.com/matzehuels/polyline/pkg/render/sink
// [term]: github.com/matzehuels/polyline/pkg/render/term
package render
