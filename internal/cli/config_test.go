package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polyline/pkg/errors"
	"github.com/matzehuels/polyline/pkg/pipeline"
)

func TestConfigDirXDG(t *testing.T) {
	customConfig := "/tmp/custom-config"
	t.Setenv("XDG_CONFIG_HOME", customConfig)

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}

	expected := filepath.Join(customConfig, appName)
	if dir != expected {
		t.Errorf("configDir() with XDG_CONFIG_HOME = %q, want %q", dir, expected)
	}
}

func TestConfigDirDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".config", appName)
	if dir != expected {
		t.Errorf("configDir() = %q, want %q", dir, expected)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	want := filepath.Join("/tmp/xdg", appName, "config.toml")
	if got := defaultConfigPath(); got != want {
		t.Errorf("defaultConfigPath() = %q, want %q", got, want)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
count = 64
strength = 0.25
seed = 7
source = "simplex"
radius = 4
tolerance = 0.002
formats = ["png", "pdf"]
canvas_width = 640
background = "#000"
`)

	opts := pipeline.DefaultOptions()
	if err := loadConfig(path, true, &opts); err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if opts.Count != 64 || opts.Strength != 0.25 || opts.Seed != 7 {
		t.Errorf("path options = %d/%g/%d, want 64/0.25/7", opts.Count, opts.Strength, opts.Seed)
	}
	if opts.Source != pipeline.SourceSimplex {
		t.Errorf("Source = %q, want simplex", opts.Source)
	}
	if opts.Radius != 4 || opts.Tolerance != 0.002 {
		t.Errorf("Radius/Tolerance = %d/%g, want 4/0.002", opts.Radius, opts.Tolerance)
	}
	if len(opts.Formats) != 2 || opts.Formats[0] != "png" {
		t.Errorf("Formats = %v, want [png pdf]", opts.Formats)
	}
	if opts.CanvasWidth != 640 || opts.Background != "#000" {
		t.Errorf("CanvasWidth/Background = %d/%q", opts.CanvasWidth, opts.Background)
	}
	// Keys absent from the file keep their defaults.
	if opts.Width != 1 || opts.Padding != 0.125 {
		t.Errorf("Width/Padding = %g/%g, want defaults 1/0.125", opts.Width, opts.Padding)
	}
}

func TestLoadConfigZeroValues(t *testing.T) {
	path := writeConfig(t, "radius = 0\npadding = 0\n")

	opts := pipeline.DefaultOptions()
	if err := loadConfig(path, true, &opts); err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if opts.Radius != 0 || opts.Padding != 0 {
		t.Errorf("Radius/Padding = %d/%g, want 0/0", opts.Radius, opts.Padding)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.toml")

	tests := []struct {
		name     string
		path     string
		required bool
		wantCode errors.Code
	}{
		{"missing optional", missing, false, ""},
		{"missing required", missing, true, errors.ErrCodeFileNotFound},
		{"malformed", writeConfig(t, "count = ["), true, errors.ErrCodeInvalidConfig},
		{"wrong type", writeConfig(t, `count = "many"`), true, errors.ErrCodeInvalidConfig},
		{"unknown key", writeConfig(t, "colour = 1"), true, errors.ErrCodeInvalidConfig},
		{"empty path", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := pipeline.DefaultOptions()
			err := loadConfig(tt.path, tt.required, &opts)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("loadConfig() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("loadConfig() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestLoadConfigUnknownKeysListed(t *testing.T) {
	path := writeConfig(t, "zeta = 1\nalpha = 2\n")

	opts := pipeline.DefaultOptions()
	err := loadConfig(path, true, &opts)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "alpha, zeta") {
		t.Errorf("error = %q, want sorted key list", err)
	}
}

// newTestCommand returns a command carrying the shared option flags.
func newTestCommand(flags *pipeline.Options) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addPathFlags(cmd, flags)
	addThemeFlags(cmd, flags)
	return cmd
}

func testCLI(config string) *CLI {
	c := New(io.Discard, log.InfoLevel)
	c.configPath = config
	return c
}

func TestResolveOptionsPrecedence(t *testing.T) {
	path := writeConfig(t, "count = 64\nradius = 4\ntolerance = 0.5\n")

	flags := pipeline.DefaultOptions()
	cmd := newTestCommand(&flags)
	if err := cmd.ParseFlags([]string{"--radius", "9", "--background", "#123456"}); err != nil {
		t.Fatal(err)
	}

	opts, err := testCLI(path).resolveOptions(cmd, &flags)
	if err != nil {
		t.Fatalf("resolveOptions() error: %v", err)
	}

	if opts.Radius != 9 {
		t.Errorf("Radius = %d, want 9 (flag beats config)", opts.Radius)
	}
	if opts.Count != 64 {
		t.Errorf("Count = %d, want 64 (config beats default)", opts.Count)
	}
	if opts.Tolerance != 0.5 {
		t.Errorf("Tolerance = %g, want 0.5 (unset flag keeps config)", opts.Tolerance)
	}
	if opts.Background != "#123456" {
		t.Errorf("Background = %q, want #123456", opts.Background)
	}
	if opts.Logger == nil {
		t.Error("Logger not set")
	}
}

func TestResolveOptionsFlagZero(t *testing.T) {
	path := writeConfig(t, "radius = 4\n")

	flags := pipeline.DefaultOptions()
	cmd := newTestCommand(&flags)
	if err := cmd.ParseFlags([]string{"--radius", "0"}); err != nil {
		t.Fatal(err)
	}

	opts, err := testCLI(path).resolveOptions(cmd, &flags)
	if err != nil {
		t.Fatalf("resolveOptions() error: %v", err)
	}
	if opts.Radius != 0 {
		t.Errorf("Radius = %d, want explicit 0", opts.Radius)
	}
}

func TestResolveOptionsNoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	flags := pipeline.DefaultOptions()
	cmd := newTestCommand(&flags)

	opts, err := testCLI("").resolveOptions(cmd, &flags)
	if err != nil {
		t.Fatalf("resolveOptions() error: %v", err)
	}
	def := pipeline.DefaultOptions()
	if opts.Count != def.Count || opts.Radius != def.Radius || opts.Tolerance != def.Tolerance {
		t.Errorf("options = %d/%d/%g, want defaults", opts.Count, opts.Radius, opts.Tolerance)
	}
}

func TestResolveOptionsXDGConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	dir := filepath.Join(xdg, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("count = 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	flags := pipeline.DefaultOptions()
	cmd := newTestCommand(&flags)

	opts, err := testCLI("").resolveOptions(cmd, &flags)
	if err != nil {
		t.Fatalf("resolveOptions() error: %v", err)
	}
	if opts.Count != 12 {
		t.Errorf("Count = %d, want 12 from XDG config", opts.Count)
	}
}

func TestResolveOptionsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative count", []string{"--count=-1"}},
		{"negative radius", []string{"--radius=-2"}},
		{"negative tolerance", []string{"--tolerance=-0.1"}},
		{"bad source", []string{"--source", "mersenne"}},
		{"bad colour", []string{"--raw-color", "nope"}},
		{"padding too large", []string{"--padding", "0.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())

			flags := pipeline.DefaultOptions()
			cmd := newTestCommand(&flags)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			if _, err := testCLI("").resolveOptions(cmd, &flags); err == nil {
				t.Errorf("resolveOptions(%v) expected error", tt.args)
			}
		})
	}
}
