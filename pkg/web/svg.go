package web

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/moods/pkg/chart"
	"tableflip.dev/moods/pkg/mood"
)

const (
	svgWidth     = 640
	svgHeight    = 320
	svgPadLeft   = 72
	svgPadRight  = 16
	svgPadTop    = 16
	svgPadBottom = 40
	svgLineColor = "#5a5c69"
)

// SVGSurface is a chart.Surface that renders an SVG document.
type SVGSurface struct {
	mu      sync.Mutex
	yTicks  []string
	xLabels []string
	line    []chart.Point
	points  []chart.Point
	version int
}

var _ chart.Surface = (*SVGSurface)(nil)

func NewSVGSurface() *SVGSurface {
	return &SVGSurface{}
}

func (s *SVGSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.yTicks, s.xLabels, s.line, s.points = nil, nil, nil, nil
	s.version++
}

func (s *SVGSurface) Axis(yTicks []string, xLabels []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.yTicks = append([]string(nil), yTicks...)
	s.xLabels = append([]string(nil), xLabels...)
}

func (s *SVGSurface) Polyline(points []chart.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.line = append(s.line[:0], points...)
}

func (s *SVGSurface) Point(p chart.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append(s.points, p)
}

// Drawn is the number of points on the surface.
func (s *SVGSurface) Drawn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.points)
}

// Version changes every time the surface is cleared.
func (s *SVGSurface) Version() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Bytes renders the document.
func (s *SVGSurface) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	plotW := float64(svgWidth - svgPadLeft - svgPadRight)
	plotH := float64(svgHeight - svgPadTop - svgPadBottom)
	n := len(s.xLabels)
	if n == 0 {
		n = 1
	}
	steps := len(s.yTicks) - 1
	if steps < 1 {
		steps = 1
	}
	x := func(i int) float64 { return svgPadLeft + (float64(i)+0.5)*plotW/float64(n) }
	y := func(v int) float64 { return svgPadTop + plotH - float64(v)*plotH/float64(steps) }

	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" font-family="sans-serif" font-size="12">`, svgWidth, svgHeight, svgWidth, svgHeight)
	b.WriteString("\n")

	for i, t := range s.yTicks {
		fmt.Fprintf(&b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#e3e6f0"/>`+"\n", svgPadLeft, y(i), svgWidth-svgPadRight, y(i))
		fmt.Fprintf(&b, `<text x="%d" y="%.1f" text-anchor="end" dominant-baseline="middle" fill="#858796">%s</text>`+"\n", svgPadLeft-8, y(i), html.EscapeString(t))
	}
	for i, l := range s.xLabels {
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" text-anchor="middle" fill="#858796">%s</text>`+"\n", x(i), svgHeight-svgPadBottom/2, html.EscapeString(l))
	}

	if len(s.line) > 1 {
		coords := make([]string, len(s.line))
		for i, p := range s.line {
			coords[i] = fmt.Sprintf("%.1f,%.1f", x(p.X), y(p.Y))
		}
		fmt.Fprintf(&b, `<polyline points="%s" fill="none" stroke="%s" stroke-width="2"/>`+"\n", strings.Join(coords, " "), svgLineColor)
	}
	for _, p := range s.points {
		color := p.Color
		if color == "" {
			color = svgLineColor
		}
		tip := mood.TitleForOrdinal(p.Y) + " on " + p.Label
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="9" fill="%s"/>`+"\n", x(p.X), y(p.Y), halo(color))
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="5" fill="%s"><title>%s</title></circle>`+"\n", x(p.X), y(p.Y), html.EscapeString(color), html.EscapeString(tip))
	}
	b.WriteString("</svg>\n")
	return b.Bytes()
}

// halo is hex washed out toward white, or transparent when hex does not parse.
func halo(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "none"
	}
	return c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.7).Clamped().Hex()
}
