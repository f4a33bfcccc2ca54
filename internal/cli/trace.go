package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polyline/pkg/errors"
	"github.com/matzehuels/polyline/pkg/geom"
	"github.com/matzehuels/polyline/pkg/pipeline"
	"github.com/matzehuels/polyline/pkg/render"
	"github.com/matzehuels/polyline/pkg/simplify"
	"github.com/matzehuels/polyline/pkg/smooth"
)

// Trace output formats.
const (
	traceDOT = "dot"
	traceSVG = "svg"
	tracePNG = "png"
	tracePDF = "pdf"
)

// tracePNGScale is the rasterisation scale for PNG trace output.
const tracePNGScale = 2.0

// traceFlags holds the trace-only flags.
type traceFlags struct {
	output      string
	format      string
	points      string
	precision   int
	hideDropped bool
}

// traceCommand creates the trace command, a debug tool that draws the
// subdivision tree of one simplification.
func (c *CLI) traceCommand() *cobra.Command {
	var tf traceFlags
	flags := pipeline.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Draw the subdivision tree of a simplification (debug tool)",
		Long: `Draw the ranges examined while simplifying a path.

Each node is one chord: the farthest interior point is kept when its distance
exceeds the tolerance and the range is split there, otherwise the interior is
dropped. The path is generated and smoothed like in render, or given directly
with --points.`,
		Example: `  # Tree of a generated path
  polyline trace --seed 7 -n 32 -t 0.01 -o tree.svg

  # Tree of an explicit path, as DOT on stdout
  polyline trace --points "0,0 1,5 2,0" -t 1 -f dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.resolveOptions(cmd, &flags)
			if err != nil {
				return err
			}
			format, err := traceFormat(tf.format, tf.output)
			if err != nil {
				return err
			}
			return c.runTrace(cmd.Context(), opts, tf, format)
		},
	}

	cmd.Flags().StringVarP(&tf.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&tf.format, "format", "f", "", "output format: svg (default), dot, png, pdf")
	completeValues(cmd, "format", traceDOT, traceSVG, tracePNG, tracePDF)
	cmd.Flags().StringVar(&tf.points, "points", "", `explicit path as "x,y x,y ..." (skips generation and smoothing)`)
	cmd.Flags().IntVar(&tf.precision, "precision", 4, "decimals shown for distances")
	cmd.Flags().BoolVar(&tf.hideDropped, "hide-dropped", false, "omit ranges whose interior was dropped")
	addPathFlags(cmd, &flags)

	return cmd
}

func (c *CLI) runTrace(ctx context.Context, opts pipeline.Options, tf traceFlags, format string) error {
	logger := loggerFromContext(ctx)

	var path geom.Path
	if tf.points != "" {
		p, err := parsePoints(tf.points)
		if err != nil {
			return err
		}
		path = p
	} else {
		opts.Seed = pipeline.ResolveSeed(opts.Seed)
		path = smooth.Smooth(pipeline.Generate(opts), opts.Radius)
		logger.Debug("generated path", "seed", opts.Seed, "points", len(path))
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	simplified, splits := simplify.Trace(path, opts.Tolerance)
	dot := simplify.ToDOT(splits, simplify.DOTOptions{
		Precision:   tf.precision,
		HideDropped: tf.hideDropped,
	})

	spinner := newSpinnerWithContext(ctx, "Rendering trace...")
	if tf.output != "" {
		spinner.Start()
	}
	data, err := renderTrace(ctx, dot, format)
	if err != nil {
		spinner.StopWithError("Trace failed")
		return fmt.Errorf("render trace: %w", err)
	}
	if err := writeFile(data, tf.output); err != nil {
		spinner.Stop()
		return fmt.Errorf("write output: %w", err)
	}

	if tf.output == "" {
		spinner.Stop()
	} else {
		spinner.StopWithSuccess("Trace generated")
		if tf.points == "" {
			printKeyValue("Seed", fmt.Sprintf("%d", opts.Seed))
		}
		printKeyValue("Ranges", fmt.Sprintf("%d", len(splits)))
		printKeyValue("Kept", fmt.Sprintf("%d of %d", len(simplified), len(path)))
		printFile(tf.output)
	}
	return nil
}

// renderTrace converts a DOT graph into the requested format.
func renderTrace(ctx context.Context, dot, format string) ([]byte, error) {
	if format == traceDOT {
		return []byte(dot), nil
	}
	svg, err := simplify.RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	switch format {
	case tracePNG:
		return render.DefaultConverter.PNG(ctx, svg, tracePNGScale)
	case tracePDF:
		return render.DefaultConverter.PDF(ctx, svg)
	}
	return svg, nil
}

// traceFormat returns the explicit format, or the one implied by the
// output file extension, or svg.
func traceFormat(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(output), ".")
	}
	switch format = strings.ToLower(format); format {
	case "":
		return traceSVG, nil
	case traceDOT, traceSVG, tracePNG, tracePDF:
		return format, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "invalid trace format: %q (must be one of: dot, pdf, png, svg)", format)
}

// parsePoints parses a whitespace-separated list of "x,y" pairs.
func parsePoints(s string) (geom.Path, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no points given")
	}
	path := make(geom.Path, len(fields))
	for i, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid point %q: want x,y", f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid x in %q", f)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid y in %q", f)
		}
		path[i] = geom.Vec2{X: x, Y: y}
	}
	return path, nil
}
