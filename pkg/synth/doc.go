// Package synth generates random, bounded polylines for the polyline pipeline.
//
// # Generation
//
// A [Generator] produces a random walk along the X axis: points are evenly
// spaced in X, and each Y is the previous Y perturbed by a uniform jitter and
// folded back into [0, Height] with a reflective clamp ([Reflect]). Reflection
// keeps the magnitude of an excursion instead of flattening it onto the
// boundary the way truncation would.
//
//	gen := synth.NewGenerator(42)
//	p := gen.Generate(synth.DefaultParams())
//	// len(p) == 256, X strictly increasing, 0 <= Y <= 1
//
// # Sources
//
// Randomness comes from a [Source]. [NewGenerator] seeds a PCG generator so
// runs are reproducible; [New] accepts any source, which is how tests pin
// exact values. [NewSimplexSource] replaces independent samples with
// coherent simplex noise for smoother-looking walks.
package synth
