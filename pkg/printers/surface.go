package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moods/pkg/chart"
	"tableflip.dev/moods/pkg/view"
)

const (
	pointGlyph = "●"
	minColumn  = 4
)

// TerminalSurface is a chart.Surface drawing into a character grid.
type TerminalSurface struct {
	Theme Theme

	yTicks  []string
	xLabels []string
	line    []chart.Point
	points  []chart.Point
}

var _ chart.Surface = (*TerminalSurface)(nil)

func NewTerminalSurface() *TerminalSurface {
	return &TerminalSurface{Theme: DefaultTheme()}
}

func (s *TerminalSurface) Clear() {
	s.yTicks, s.xLabels, s.line, s.points = nil, nil, nil, nil
}

func (s *TerminalSurface) Axis(yTicks []string, xLabels []string) {
	s.yTicks = append([]string(nil), yTicks...)
	s.xLabels = append([]string(nil), xLabels...)
}

func (s *TerminalSurface) Polyline(points []chart.Point) {
	s.line = append(s.line[:0], points...)
}

func (s *TerminalSurface) Point(p chart.Point) {
	s.points = append(s.points, p)
}

// Drawn is the number of points currently on the surface.
func (s *TerminalSurface) Drawn() int {
	return len(s.points)
}

func (s *TerminalSurface) column() int {
	w := minColumn
	for _, l := range s.xLabels {
		if n := lipgloss.Width(l) + 1; n > w {
			w = n
		}
	}
	return w
}

// Render returns the chart as text, "" when nothing is drawn.
func (s *TerminalSurface) Render() string {
	rows := len(s.yTicks)
	if rows == 0 || len(s.xLabels) == 0 {
		return ""
	}
	colW := s.column()
	cols := len(s.xLabels) * colW
	center := func(x int) int { return x*colW + colW/2 }
	row := func(y int) int { return rows - 1 - y }

	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	set := func(r, c int, v string) {
		if r >= 0 && r < rows && c >= 0 && c < cols {
			grid[r][c] = v
		}
	}

	for i := 1; i < len(s.line); i++ {
		a, b := s.line[i-1], s.line[i]
		xa, xb := center(a.X), center(b.X)
		glyph := "·"
		if a.Y == b.Y {
			glyph = "─"
		}
		for c := xa + 1; c < xb; c++ {
			// nearest row on the segment
			num := (b.Y-a.Y)*(c-xa)*2 + (xb - xa)
			y := a.Y + floorDiv(num, 2*(xb-xa))
			set(row(y), c, s.Theme.Line.Render(glyph))
		}
	}
	for _, p := range s.points {
		set(row(p.Y), center(p.X), s.Theme.pointStyle(p.Color).Render(pointGlyph))
	}

	tickW := 0
	for _, t := range s.yTicks {
		if n := lipgloss.Width(t); n > tickW {
			tickW = n
		}
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		tick := s.yTicks[rows-1-r]
		pad := strings.Repeat(" ", tickW-lipgloss.Width(tick))
		b.WriteString(pad + s.Theme.Tick.Render(tick) + " " + s.Theme.Axis.Render("│"))
		b.WriteString(strings.Join(grid[r], ""))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", tickW+1) + s.Theme.Axis.Render("└"+strings.Repeat("─", cols)) + "\n")
	b.WriteString(strings.Repeat(" ", tickW+2))
	for _, l := range s.xLabels {
		left := (colW - lipgloss.Width(l)) / 2
		right := colW - lipgloss.Width(l) - left
		b.WriteString(strings.Repeat(" ", left) + s.Theme.Label.Render(l) + strings.Repeat(" ", right))
	}
	b.WriteString("\n")
	return b.String()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Chart prints a rendered surface under the chart title, or the empty state.
func (pp *PrettyPrint) Chart(spec view.ChartSpec, s *TerminalSurface) {
	out := pp.out()
	if spec.Empty() || s.Drawn() == 0 {
		pp.Title(view.TrendTitle)
		_, _ = fmt.Fprintf(out, " %s\n\n", view.EmptyTitle)
		return
	}
	_, _ = fmt.Fprintln(out, s.Theme.Title.Render(spec.Title))
	_, _ = io.WriteString(out, s.Render())
	pp.NewLine()
}
