package simplify

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
)

// DOTOptions configures trace tree rendering.
type DOTOptions struct {
	// Precision is the number of decimals shown for distances (default 4).
	Precision int
	// HideDropped omits ranges whose interior was discarded.
	HideDropped bool
}

// ToDOT converts a simplification trace into a Graphviz DOT digraph.
// Each examined range becomes a node; edges point from a range to the two
// sub-ranges created by its kept point. Kept ranges are filled, degenerate
// chords are dashed.
func ToDOT(splits []Split, opts DOTOptions) string {
	prec := opts.Precision
	if prec <= 0 {
		prec = 4
	}

	var buf bytes.Buffer
	buf.WriteString("digraph RDP {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	visible := make([]bool, len(splits))
	for i, s := range splits {
		if opts.HideDropped && !s.Kept {
			continue
		}
		visible[i] = true
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(i), strings.Join(fmtAttrs(s, prec), ", "))
	}

	buf.WriteString("\n")
	for i, s := range splits {
		if !visible[i] || s.Parent < 0 || !visible[s.Parent] {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(s.Parent), nodeID(i))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string {
	return "r" + strconv.Itoa(i)
}

func fmtLabel(s Split, prec int) string {
	head := fmt.Sprintf("[%d..%d]", s.Begin, s.End)
	switch {
	case s.Degenerate:
		return head + "\ndegenerate chord"
	case s.Index < 0:
		return head + "\nno interior"
	case s.Kept:
		return fmt.Sprintf("%s\nkeep %d\nd=%.*f", head, s.Index, prec, s.Distance)
	default:
		return fmt.Sprintf("%s\ndrop %d..%d\nmax d=%.*f", head, s.Begin+1, s.End-1, prec, s.Distance)
	}
}

func fmtAttrs(s Split, prec int) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(s, prec))}
	switch {
	case s.Degenerate:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	case s.Kept:
		attrs = append(attrs, "fillcolor=\"#c8e6c9\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based <svg> header with one whose
// width and height match the viewBox, so the tree scales like the path renders.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(header))
}
