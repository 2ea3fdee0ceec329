package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ckibe-opt/compiledgraph/bench"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF99"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	headStyle = lipgloss.NewStyle().Bold(true)
)

// renderReport formats one benchmark run as a bordered latency table plus the
// amortization summary.
func renderReport(r bench.Report) string {
	var b strings.Builder

	row := func(metric, baseline, optimized string) {
		b.WriteString(fmt.Sprintf("%-18s  %14s  %14s\n", metric, baseline, optimized))
	}

	b.WriteString(headStyle.Render(fmt.Sprintf("%-18s  %14s  %14s", "Metric", "Reference", "Compiled")))
	b.WriteString("\n")
	row("Avg latency", fmtDur(r.Baseline.Mean()), fmtDur(r.Optimized.Mean()))
	row("Min latency", fmtDur(r.Baseline.Min), fmtDur(r.Optimized.Min))
	row("Max latency", fmtDur(r.Baseline.Max), fmtDur(r.Optimized.Max))
	row("Speedup", "1.00x", fmt.Sprintf("%.2fx", r.Speedup()))

	breakEven := "n/a (compiled engine not faster)"
	if be := r.BreakEven(); be >= 0 {
		breakEven = fmt.Sprintf("~%d queries", be)
	}

	summary := fmt.Sprintf(
		"graph: %d nodes, %d arcs\ncompilation: %s (one-time)\nbreak-even:  %s",
		r.Nodes, r.Arcs, fmtDur(r.CompileCost), breakEven,
	)

	return titleStyle.Render("BENCHMARK: "+r.Label) + "\n" +
		boxStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n" +
		summary
}

// fmtDur trims durations to a readable precision.
func fmtDur(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
