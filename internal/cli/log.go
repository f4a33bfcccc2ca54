// Package cli implements the polyline command-line interface.
//
// The CLI is built using cobra and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - render: Run the pipeline and write SVG, PNG or PDF files
//   - view: Explore the pipeline in a desktop window
//   - tui: Explore the pipeline in the terminal
//   - trace: Draw the subdivision tree of one simplification
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. At debug level
// the observability hooks are routed to the logger, so every pipeline stage
// and every pointer event is reported with its duration.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 3 files (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// =============================================================================
// Observability
// =============================================================================

// logHooks reports pipeline stages and pointer events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnRunStart(_ context.Context, runID string) {
	h.logger.Debug("run started", "run", shortID(runID))
}

func (h *logHooks) OnRunComplete(_ context.Context, runID string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("run failed", "run", shortID(runID), "elapsed", d, "err", err)
		return
	}
	h.logger.Debug("run complete", "run", shortID(runID), "elapsed", d)
}

func (h *logHooks) OnStageStart(_ context.Context, stage string, points int) {
	h.logger.Debug("stage", "name", stage, "in", points)
}

func (h *logHooks) OnStageComplete(_ context.Context, stage string, points int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("stage failed", "name", stage, "elapsed", d, "err", err)
		return
	}
	h.logger.Debug("stage done", "name", stage, "out", points, "elapsed", d)
}

func (h *logHooks) OnPointerMove(_ context.Context, radius int, tolerance float64, kept int, d time.Duration) {
	h.logger.Debug("move", "radius", radius, "tolerance", tolerance, "kept", kept, "elapsed", d)
}

func (h *logHooks) OnClick(_ context.Context, radius int, tolerance float64, kept int, d time.Duration) {
	h.logger.Debug("click", "radius", radius, "tolerance", tolerance, "kept", kept, "elapsed", d)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
