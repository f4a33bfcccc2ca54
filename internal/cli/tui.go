package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polyline/pkg/interact"
	"github.com/matzehuels/polyline/pkg/observability"
	"github.com/matzehuels/polyline/pkg/pipeline"
	"github.com/matzehuels/polyline/pkg/render"
	"github.com/matzehuels/polyline/pkg/render/term"
)

// Layout of the inspector screen, in terminal rows.
const (
	tuiHeaderRows = 2
	tuiFooterRows = 5
)

// tuiCommand creates the tui command, the terminal counterpart of view.
func (c *CLI) tuiCommand() *cobra.Command {
	flags := pipeline.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Explore smoothing and simplification in the terminal",
		Long: `Draw the raw, smoothed and simplified paths with braille characters.

The mouse works as in view: moving down increases the smoothing radius,
moving right increases the tolerance and a click generates a new path.
R generates a new path with the current settings, S toggles the
statistics and Q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.resolveOptions(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runTUI(cmd.Context(), opts)
		},
	}

	addPathFlags(cmd, &flags)
	addThemeFlags(cmd, &flags)

	return cmd
}

func (c *CLI) runTUI(ctx context.Context, opts pipeline.Options) error {
	theme, err := opts.Theme()
	if err != nil {
		return err
	}
	opts.Seed = pipeline.ResolveSeed(opts.Seed)
	m := newInspectModel(ctx, c.newController(opts), theme, opts.Seed)

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// =============================================================================
// inspectModel - Interactive path inspector
// =============================================================================

// inspectModel is the bubbletea model of the tui command.
type inspectModel struct {
	ctx   context.Context
	ctrl  *interact.Controller
	theme render.Theme
	seed  uint64

	width, height int
	last          interact.Pointer
	hideStats     bool
	lastDuration  time.Duration
}

func newInspectModel(ctx context.Context, ctrl *interact.Controller, theme render.Theme, seed uint64) inspectModel {
	return inspectModel{ctx: ctx, ctrl: ctrl, theme: theme, seed: seed}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			start := time.Now()
			s := m.ctrl.Regenerate()
			m.lastDuration = time.Since(start)
			observability.Interaction().OnClick(m.ctx, s.Params.Radius, s.Params.Tolerance, len(s.Simplified), m.lastDuration)
		case "s":
			m.hideStats = !m.hideStats
		}
	case tea.MouseMsg:
		p, ok := m.pointer(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.click(p)
		case msg.Action == tea.MouseActionMotion && p != m.last:
			start := time.Now()
			s := m.ctrl.PointerMove(p, m.viewport())
			m.lastDuration = time.Since(start)
			observability.Interaction().OnPointerMove(m.ctx, s.Params.Radius, s.Params.Tolerance, len(s.Simplified), m.lastDuration)
		}
		m.last = p
	}
	return m, nil
}

func (m *inspectModel) click(p interact.Pointer) {
	start := time.Now()
	s := m.ctrl.Click(p, m.viewport())
	m.lastDuration = time.Since(start)
	observability.Interaction().OnClick(m.ctx, s.Params.Radius, s.Params.Tolerance, len(s.Simplified), m.lastDuration)
}

// canvasCells returns the size of the drawing area in terminal cells.
func (m inspectModel) canvasCells() (cols, rows int) {
	rows = m.height - tuiHeaderRows
	if !m.hideStats {
		rows -= tuiFooterRows
	}
	return max(m.width, 0), max(rows, 0)
}

// viewport measures the drawing area in cells, so the last column and row
// reach the maximum tolerance and radius.
func (m inspectModel) viewport() interact.Viewport {
	cols, rows := m.canvasCells()
	return interact.Viewport{Width: float64(cols - 1), Height: float64(rows - 1)}
}

// pointer converts a terminal cell position into a canvas pointer. It
// reports false for positions outside the drawing area.
func (m inspectModel) pointer(x, y int) (interact.Pointer, bool) {
	cols, rows := m.canvasCells()
	row := y - tuiHeaderRows
	if x < 0 || x >= cols || row < 0 || row >= rows {
		return interact.Pointer{}, false
	}
	return interact.Pointer{X: float64(x), Y: float64(row)}, true
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(ui.title.Render(appName))
	b.WriteString(ui.muted.Render(fmt.Sprintf("  seed %d", m.seed)))
	b.WriteString("\n")
	b.WriteString(ui.muted.Render("move: smooth/simplify  click/r: new path  s: stats  q: quit"))
	b.WriteString("\n")

	cols, rows := m.canvasCells()
	if cols == 0 || rows == 0 {
		return b.String()
	}
	canvas := term.New(cols, rows)
	render.Draw(canvas, m.ctrl.State().Frame(), m.theme)
	b.WriteString(canvas.String())

	if !m.hideStats {
		b.WriteString("\n")
		b.WriteString(m.statsTable())
	}
	return b.String()
}

// statsTable renders the current parameters and point counts.
func (m inspectModel) statsTable() string {
	s := m.ctrl.State()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(ui.border).
		Headers("Radius", "Tolerance", "Raw", "Smoothed", "Simplified", "Recompute").
		Row(
			fmt.Sprintf("%d", s.Params.Radius),
			fmt.Sprintf("%.6f", s.Params.Tolerance),
			fmt.Sprintf("%d", len(s.Raw)),
			fmt.Sprintf("%d", len(s.Smoothed)),
			fmt.Sprintf("%d", len(s.Simplified)),
			m.lastDuration.Round(time.Microsecond).String(),
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return ui.heading
			case col == 2:
				return ui.raw
			case col == 3:
				return ui.smoothed
			case col == 4:
				return ui.simplified
			}
			return ui.accent
		})
	return t.Render()
}
