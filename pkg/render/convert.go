package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/polyline/pkg/errors"
)

// Converter turns SVG documents into PDF or PNG by running librsvg's
// rsvg-convert.
type Converter struct {
	Bin     string        // executable name or path
	Timeout time.Duration // per conversion; 0 means no limit
}

// DefaultConverter runs rsvg-convert from PATH with a 30s limit.
var DefaultConverter = Converter{Bin: "rsvg-convert", Timeout: 30 * time.Second}

// Available reports whether the converter binary can be found.
func (c Converter) Available() bool {
	_, err := exec.LookPath(c.Bin)
	return err == nil
}

// PDF converts svg to PDF.
func (c Converter) PDF(ctx context.Context, svg []byte) ([]byte, error) {
	return c.run(ctx, svg, "pdf")
}

// PNG converts svg to PNG, scaling it by zoom.
func (c Converter) PNG(ctx context.Context, svg []byte, zoom float64) ([]byte, error) {
	return c.run(ctx, svg, "png", "--zoom", strconv.FormatFloat(zoom, 'f', 2, 64))
}

func (c Converter) run(ctx context.Context, svg []byte, format string, args ...string) ([]byte, error) {
	if !c.Available() {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s output needs %s from librsvg (brew install librsvg, apt install librsvg2-bin)", format, c.Bin)
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Bin, append([]string{"--format", format}, args...)...)
	cmd.Stdin = bytes.NewReader(svg)
	var out, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &out, &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s: %w", c.Bin, ctx.Err())
		}
		return nil, fmt.Errorf("%s: %w: %s", c.Bin, err, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}

// ToPDF converts svg to PDF with [DefaultConverter].
func ToPDF(svg []byte) ([]byte, error) {
	return DefaultConverter.PDF(context.Background(), svg)
}

// ToPNG converts svg to PNG with [DefaultConverter].
func ToPNG(svg []byte, zoom float64) ([]byte, error) {
	return DefaultConverter.PNG(context.Background(), svg, zoom)
}

// HasConverter reports whether [DefaultConverter] is available.
func HasConverter() bool { return DefaultConverter.Available() }
