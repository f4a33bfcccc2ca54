package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/polyline/pkg/pipeline"
)

// stdout receives status output. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// palette holds the lipgloss styles used for console and TUI output.
// The three path colours mirror the default render theme.
type palette struct {
	title   lipgloss.Style
	accent  lipgloss.Style
	ok      lipgloss.Style
	bad     lipgloss.Style
	value   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	border  lipgloss.Style
	heading lipgloss.Style

	raw, smoothed, simplified lipgloss.Style
}

var ui = newPalette()

func newPalette() palette {
	var (
		teal  = lipgloss.Color("36")
		green = lipgloss.Color("35")
		red   = lipgloss.Color("167")
		white = lipgloss.Color("255")
		gray  = lipgloss.Color("245")
		dim   = lipgloss.Color("240")
	)
	return palette{
		title:      lipgloss.NewStyle().Bold(true).Foreground(teal),
		accent:     lipgloss.NewStyle().Foreground(teal),
		ok:         lipgloss.NewStyle().Foreground(green),
		bad:        lipgloss.NewStyle().Foreground(red),
		value:      lipgloss.NewStyle().Foreground(white),
		label:      lipgloss.NewStyle().Foreground(gray).Width(12),
		muted:      lipgloss.NewStyle().Foreground(dim),
		border:     lipgloss.NewStyle().Foreground(dim),
		heading:    lipgloss.NewStyle().Foreground(gray).Bold(true),
		raw:        lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
		smoothed:   lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		simplified: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
	}
}

func emit(s string) { fmt.Fprintln(stdout, s) }

// printSuccess prints a ✓ status line.
func printSuccess(format string, args ...any) {
	emit(ui.ok.Render("✓") + " " + fmt.Sprintf(format, args...))
}

// printError prints a ✗ status line.
func printError(format string, args ...any) {
	emit(ui.bad.Render("✗") + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line.
func printDetail(format string, args ...any) {
	emit("  " + ui.muted.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written file path.
func printFile(path string) {
	emit("  " + ui.muted.Render("→") + " " + ui.value.Render(path))
}

// printKeyValue prints a labelled value in an aligned column.
func printKeyValue(key, value string) {
	emit(ui.label.Render(key) + " " + ui.value.Render(value))
}

// printStats prints the raw and kept point counts in their path colours,
// then the reduction and the largest deviation.
func printStats(st pipeline.Stats) {
	sep := ui.muted.Render(" · ")
	emit("  " + strings.Join([]string{
		ui.raw.Render(fmt.Sprintf("%d raw", st.RawPoints)),
		ui.simplified.Render(fmt.Sprintf("%d kept", st.SimplifiedPoints)),
		ui.muted.Render(fmt.Sprintf("%.1f%% removed", 100*st.Reduction())),
		ui.muted.Render(fmt.Sprintf("max deviation %.4g", st.MaxDeviation)),
	}, sep))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	emit(ui.muted.Render(description+":") + " " + ui.accent.Render(cmd))
}
