package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/polyline/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("generated path") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("stage") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("stage") }, true},
		{"warn at info", log.InfoLevel, func(l *log.Logger) { l.Warn("no converter") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v (%q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("rendered")

	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(buf.String()) {
		t.Errorf("log line %q lacks an HH:MM:SS.cc timestamp", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.start = prog.start.Add(-1500 * time.Millisecond)

	prog.done("Rendered 2 file(s)")

	if out := buf.String(); !strings.Contains(out, "Rendered 2 file(s) (1.5s)") {
		t.Errorf("done() output = %q", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	custom := newLogger(io.Discard, log.DebugLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext() did not return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Errorf("loggerFromContext() without logger = %p, want log.Default()", got)
	}
}

func TestVerboseFlag(t *testing.T) {
	defer observability.Reset()

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"-v", "completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
	if _, ok := observability.Interaction().(*logHooks); !ok {
		t.Errorf("Interaction() = %T, want *logHooks", observability.Interaction())
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := &logHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	h.OnRunStart(ctx, "0123456789abcdef")
	h.OnStageStart(ctx, observability.StageSmooth, 256)
	h.OnStageComplete(ctx, observability.StageSmooth, 256, time.Millisecond, nil)
	h.OnStageComplete(ctx, observability.StageRender, 0, time.Millisecond, errors.New("boom"))
	h.OnRunComplete(ctx, "0123456789abcdef", time.Second, nil)
	h.OnPointerMove(ctx, 4, 0.01, 12, time.Microsecond)
	h.OnClick(ctx, 0, 0, 256, time.Microsecond)

	out := buf.String()
	for _, want := range []string{"run started", "01234567", "stage done", "smooth", "stage failed", "boom", "run complete", "move", "click"} {
		if !strings.Contains(out, want) {
			t.Errorf("hook output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0123456789") {
		t.Error("run IDs should be shortened")
	}
}

func TestSetLogLevelRegistersHooks(t *testing.T) {
	defer observability.Reset()

	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogInfo)
	if _, ok := observability.Pipeline().(*logHooks); ok {
		t.Error("info level should not register logging hooks")
	}

	c.SetLogLevel(LogDebug)
	if _, ok := observability.Pipeline().(*logHooks); !ok {
		t.Errorf("Pipeline() = %T, want *logHooks", observability.Pipeline())
	}
	if _, ok := observability.Interaction().(*logHooks); !ok {
		t.Errorf("Interaction() = %T, want *logHooks", observability.Interaction())
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID(abc) = %q", got)
	}
	if got := shortID("0123456789"); got != "01234567" {
		t.Errorf("shortID(0123456789) = %q", got)
	}
}
