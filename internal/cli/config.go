package cli

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/polyline/pkg/errors"
	"github.com/matzehuels/polyline/pkg/pipeline"
)

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/polyline/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// defaultConfigPath returns the config file read when --config is not given.
func defaultConfigPath() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// =============================================================================
// Loading
// =============================================================================

// loadConfig decodes the TOML file at path over opts. A missing file is an
// error only when required is set. Unknown keys are rejected.
func loadConfig(path string, required bool, opts *pipeline.Options) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
	}
	md, err := toml.DecodeFile(path, opts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// =============================================================================
// Flags
// =============================================================================

// optionFlags copies one flag-bound field from src to dst, keyed by flag name.
var optionFlags = map[string]func(dst, src *pipeline.Options){
	"width":            func(d, s *pipeline.Options) { d.Width = s.Width },
	"height":           func(d, s *pipeline.Options) { d.Height = s.Height },
	"count":            func(d, s *pipeline.Options) { d.Count = s.Count },
	"strength":         func(d, s *pipeline.Options) { d.Strength = s.Strength },
	"seed":             func(d, s *pipeline.Options) { d.Seed = s.Seed },
	"source":           func(d, s *pipeline.Options) { d.Source = s.Source },
	"frequency":        func(d, s *pipeline.Options) { d.Frequency = s.Frequency },
	"radius":           func(d, s *pipeline.Options) { d.Radius = s.Radius },
	"tolerance":        func(d, s *pipeline.Options) { d.Tolerance = s.Tolerance },
	"canvas-width":     func(d, s *pipeline.Options) { d.CanvasWidth = s.CanvasWidth },
	"canvas-height":    func(d, s *pipeline.Options) { d.CanvasHeight = s.CanvasHeight },
	"padding":          func(d, s *pipeline.Options) { d.Padding = s.Padding },
	"stroke-width":     func(d, s *pipeline.Options) { d.StrokeWidth = s.StrokeWidth },
	"background":       func(d, s *pipeline.Options) { d.Background = s.Background },
	"raw-color":        func(d, s *pipeline.Options) { d.RawColor = s.RawColor },
	"smoothed-color":   func(d, s *pipeline.Options) { d.SmoothedColor = s.SmoothedColor },
	"simplified-color": func(d, s *pipeline.Options) { d.SimplifiedColor = s.SimplifiedColor },
	"format":           func(d, s *pipeline.Options) { d.Formats = s.Formats },
}

// addPathFlags registers the generation and processing flags, bound to o.
func addPathFlags(cmd *cobra.Command, o *pipeline.Options) {
	f := cmd.Flags()
	f.Float64Var(&o.Width, "width", o.Width, "path width in path units")
	f.Float64Var(&o.Height, "height", o.Height, "path height in path units")
	f.IntVarP(&o.Count, "count", "n", o.Count, "number of points")
	f.Float64Var(&o.Strength, "strength", o.Strength, "random walk step strength")
	f.Uint64Var(&o.Seed, "seed", o.Seed, "random seed (0 picks one)")
	f.StringVar(&o.Source, "source", o.Source, "uniform source: pcg (default), simplex")
	completeValues(cmd, "source", pipeline.SourcePCG, pipeline.SourceSimplex)
	f.Float64Var(&o.Frequency, "frequency", o.Frequency, "sampling frequency of the simplex source")
	f.IntVarP(&o.Radius, "radius", "r", o.Radius, "smoothing radius")
	f.Float64VarP(&o.Tolerance, "tolerance", "t", o.Tolerance, "simplification tolerance")
}

// addThemeFlags registers the canvas and colour flags, bound to o.
func addThemeFlags(cmd *cobra.Command, o *pipeline.Options) {
	f := cmd.Flags()
	f.IntVar(&o.CanvasWidth, "canvas-width", o.CanvasWidth, "canvas width in pixels")
	f.IntVar(&o.CanvasHeight, "canvas-height", o.CanvasHeight, "canvas height in pixels")
	f.Float64Var(&o.Padding, "padding", o.Padding, "canvas padding as a fraction of each side")
	f.Float64Var(&o.StrokeWidth, "stroke-width", o.StrokeWidth, "stroke width in pixels")
	f.StringVar(&o.Background, "background", o.Background, "background colour")
	f.StringVar(&o.RawColor, "raw-color", o.RawColor, "raw path colour")
	f.StringVar(&o.SmoothedColor, "smoothed-color", o.SmoothedColor, "smoothed path colour")
	f.StringVar(&o.SimplifiedColor, "simplified-color", o.SimplifiedColor, "simplified path colour")
}

// resolveOptions builds the options for a command: defaults, then the config
// file, then every flag the user set explicitly.
func (c *CLI) resolveOptions(cmd *cobra.Command, flags *pipeline.Options) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()

	path, required := c.configPath, c.configPath != ""
	if !required {
		path = defaultConfigPath()
	}
	if err := loadConfig(path, required, &opts); err != nil {
		return opts, err
	}

	applyFlags(cmd.Flags(), &opts, flags)
	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}

// applyFlags copies every changed flag value from src to dst.
func applyFlags(fs *pflag.FlagSet, dst, src *pipeline.Options) {
	fs.Visit(func(f *pflag.Flag) {
		if apply, ok := optionFlags[f.Name]; ok {
			apply(dst, src)
		}
	})
}
