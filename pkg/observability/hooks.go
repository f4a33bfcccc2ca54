// Package observability provides hooks for metrics, tracing, and logging.
//
// The core packages (synth, smooth, simplify, render) are pure functions and
// never log. Instead, the pipeline runner and the interactive front ends emit
// events through the hooks registered here, and the application decides what
// to do with them.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so no import cycles arise
// and no backend is forced on library users.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetInteractionHooks(&myInteractionHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnStageStart(ctx, observability.StageSimplify, len(path))
//	// ... simplify ...
//	observability.Pipeline().OnStageComplete(ctx, observability.StageSimplify, len(out), duration, nil)
package observability

import (
	"context"
	"sync"
	"time"
)

// Stage names reported to [PipelineHooks].
const (
	StageGenerate = "generate"
	StageSmooth   = "smooth"
	StageSimplify = "simplify"
	StageRender   = "render"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the path pipeline.
type PipelineHooks interface {
	// Run events
	OnRunStart(ctx context.Context, runID string)
	OnRunComplete(ctx context.Context, runID string, duration time.Duration, err error)

	// Stage events. points is the stage's input size on start and output size
	// on completion; for the render stage it is the total number of points drawn.
	OnStageStart(ctx context.Context, stage string, points int)
	OnStageComplete(ctx context.Context, stage string, points int, duration time.Duration, err error)
}

// =============================================================================
// Interaction Hooks
// =============================================================================

// InteractionHooks receives events from the interactive views.
type InteractionHooks interface {
	// OnPointerMove records a recompute triggered by pointer movement.
	OnPointerMove(ctx context.Context, radius int, tolerance float64, kept int, duration time.Duration)

	// OnClick records a regeneration triggered by a click.
	OnClick(ctx context.Context, radius int, tolerance float64, kept int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRunStart(context.Context, string)                          {}
func (NoopPipelineHooks) OnRunComplete(context.Context, string, time.Duration, error) {}
func (NoopPipelineHooks) OnStageStart(context.Context, string, int)                   {}
func (NoopPipelineHooks) OnStageComplete(context.Context, string, int, time.Duration, error) {
}

// NoopInteractionHooks is a no-op implementation of InteractionHooks.
type NoopInteractionHooks struct{}

func (NoopInteractionHooks) OnPointerMove(context.Context, int, float64, int, time.Duration) {}
func (NoopInteractionHooks) OnClick(context.Context, int, float64, int, time.Duration)       {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks    PipelineHooks    = NoopPipelineHooks{}
	interactionHooks InteractionHooks = NoopInteractionHooks{}
	hooksMu          sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetInteractionHooks registers custom interaction hooks.
func SetInteractionHooks(h InteractionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		interactionHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Interaction returns the registered interaction hooks.
func Interaction() InteractionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return interactionHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	interactionHooks = NoopInteractionHooks{}
}
