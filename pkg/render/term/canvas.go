// Package term renders path frames as Unicode braille art.
//
// Each terminal cell holds a 2×4 grid of braille dots, so a canvas of
// cols×rows cells is a (2·cols)×(4·rows) pixel [render.Surface]. A cell takes
// the colour of the last stroke that touched it; [Canvas.String] renders cells
// with lipgloss colours and [Canvas.Plain] without.
//
// [render.Surface]: github.com/matzehuels/polyline/pkg/render.Surface
package term

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/polyline/pkg/geom"
	"github.com/matzehuels/polyline/pkg/render"
)

const brailleBase = 0x2800

// dotBits[y][x] is the braille bit for the dot at column x, row y of a cell.
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille-dot drawing surface.
type Canvas struct {
	cols, rows int
	dots       []rune
	colors     []color.Color
	background color.Color
}

// New returns a canvas of cols×rows terminal cells.
func New(cols, rows int) *Canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	return &Canvas{
		cols:   cols,
		rows:   rows,
		dots:   make([]rune, cols*rows),
		colors: make([]color.Color, cols*rows),
	}
}

// Cells returns the canvas size in terminal cells.
func (c *Canvas) Cells() (cols, rows int) { return c.cols, c.rows }

// Size returns the canvas size in dots.
func (c *Canvas) Size() (float64, float64) {
	return float64(2 * c.cols), float64(4 * c.rows)
}

// Fill clears every dot and sets the background colour.
func (c *Canvas) Fill(bg color.Color) {
	clear(c.dots)
	clear(c.colors)
	c.background = bg
}

// Stroke rasterizes the polyline with Bresenham's algorithm. Width is
// ignored: a braille dot is the smallest unit.
func (c *Canvas) Stroke(points []geom.Vec2, col color.Color, _ float64) {
	if len(points) == 1 && finite(points[0]) {
		x, y := round(points[0])
		c.set(x, y, col)
		return
	}
	for i := 1; i < len(points); i++ {
		if !finite(points[i-1]) || !finite(points[i]) {
			continue
		}
		x0, y0 := round(points[i-1])
		x1, y1 := round(points[i])
		c.line(x0, y0, x1, y1, col)
	}
}

// Set turns on the dot at pixel (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int, col color.Color) { c.set(x, y, col) }

// IsSet reports whether the dot at pixel (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= 2*c.cols || y >= 4*c.rows {
		return false
	}
	return c.dots[(y/4)*c.cols+x/2]&dotBits[y%4][x%2] != 0
}

func (c *Canvas) set(x, y int, col color.Color) {
	if x < 0 || y < 0 || x >= 2*c.cols || y >= 4*c.rows {
		return
	}
	i := (y/4)*c.cols + x/2
	c.dots[i] |= dotBits[y%4][x%2]
	c.colors[i] = col
}

func (c *Canvas) line(x0, y0, x1, y1 int, col color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Plain renders the canvas without colour. Empty cells are spaces.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for r := range c.rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, d := range c.dots[r*c.cols : (r+1)*c.cols] {
			b.WriteRune(cellRune(d))
		}
	}
	return b.String()
}

// String renders the canvas with foreground and background colours.
// Adjacent cells of the same colour share one styled run.
func (c *Canvas) String() string {
	base := lipgloss.NewStyle()
	if c.background != nil {
		base = base.Background(lipgloss.Color(render.Hex(c.background)))
	}

	var b strings.Builder
	for r := range c.rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := base
			if runColor != "" {
				st = st.Foreground(lipgloss.Color(runColor))
			}
			b.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for i := r * c.cols; i < (r+1)*c.cols; i++ {
			hex := ""
			if c.dots[i] != 0 && c.colors[i] != nil {
				hex = render.Hex(c.colors[i])
			}
			if hex != runColor {
				flush()
				runColor = hex
			}
			run.WriteRune(cellRune(c.dots[i]))
		}
		flush()
	}
	return b.String()
}

func cellRune(d rune) rune {
	if d == 0 {
		return ' '
	}
	return brailleBase + d
}

func round(p geom.Vec2) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func finite(p geom.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
