package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polyline/pkg/errors"
	"github.com/matzehuels/polyline/pkg/pipeline"
)

// defaultOutputBase is the output base path when -o is not given.
const defaultOutputBase = appName

// stdoutPath selects standard output for the -o flag.
const stdoutPath = "-"

// renderCommand creates the render command that runs the whole pipeline and
// writes the three paths to image files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
	)
	flags := pipeline.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Generate, smooth and simplify a path and write it to files",
		Long: `Generate a random walk, smooth it and simplify it, then draw the raw,
smoothed and simplified paths on top of each other.

Every numeric parameter can also be set in the config file; flags given on
the command line take precedence. A seed of 0 picks a random seed, which is
reported so the picture can be reproduced.`,
		Example: `  polyline render
  polyline render --seed 7 -r 4 -t 0.002 -f svg,png -o walk
  polyline render --source simplex -f pdf -o walk.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				flags.Formats = parseFormats(formatsStr)
			}
			opts, err := c.resolveOptions(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	completeValues(cmd, "format", pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatPDF)
	addPathFlags(cmd, &flags)
	addThemeFlags(cmd, &flags)

	return cmd
}

// runRender executes the pipeline and writes every artifact.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string) error {
	prog := newProgress(c.Logger)

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return err
		}
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, output)
	if err != nil {
		return err
	}
	if output == stdoutPath {
		return nil
	}

	prog.done(fmt.Sprintf("Rendered %d file(s)", len(paths)))
	printSuccess("Path rendered")
	printKeyValue("Seed", fmt.Sprintf("%d", result.Seed))
	if opts.Seed == 0 {
		printDetail("random seed; pass --seed %d to reproduce", result.Seed)
	}
	printKeyValue("Smoothing", fmt.Sprintf("radius %d", opts.Radius))
	printKeyValue("Tolerance", fmt.Sprintf("%g", opts.Tolerance))
	printStats(result.Stats)
	for _, p := range paths {
		printFile(p)
	}
	printNextStep("Explore it", fmt.Sprintf("%s view --seed %d", appName, result.Seed))
	return nil
}

// writeArtifacts writes one file per format and returns the paths written.
func writeArtifacts(artifacts map[string][]byte, formats []string, output string) ([]string, error) {
	formats = dedupe(formats)
	if output == stdoutPath {
		if len(formats) != 1 {
			return nil, errors.New(errors.ErrCodeInvalidPath, "stdout output requires exactly one format, got %d", len(formats))
		}
		return nil, writeFile(artifacts[formats[0]], "")
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := outputPath(output, format, len(formats) > 1)
		if err := errors.ValidateOutputPath(path); err != nil {
			return paths, err
		}
		if err := writeFile(artifacts[format], path); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath returns the file for one format. A single format with an
// explicit output is written exactly there; otherwise the format extension
// is appended to the base path.
func outputPath(output, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	return basePath(output) + "." + format
}

// basePath strips a known format extension from output.
// If output is empty, it returns the default base path.
func basePath(output string) string {
	if output == "" {
		return defaultOutputBase
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// File Output
// =============================================================================

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// writeFile writes data to path, or to stdout if path is empty.
func writeFile(data []byte, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
