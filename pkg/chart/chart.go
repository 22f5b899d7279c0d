// Package chart owns the trend chart drawn into a display region. A region
// holds at most one live chart; showing a new one destroys the old first.
package chart

import (
	"errors"
	"sync"

	"tableflip.dev/moods/pkg/view"
)

// ErrDestroyed is returned when drawing with a destroyed instance.
var ErrDestroyed = errors.New("chart: instance destroyed")

// Point is one plotted value in chart coordinates: X is the point index, Y
// the mood ordinal.
type Point struct {
	X     int
	Y     int
	Label string
	Color string
}

// Surface is the draw list a host environment implements.
type Surface interface {
	// Clear wipes everything previously drawn.
	Clear()
	// Axis sets the y tick labels (bottom to top) and the x labels.
	Axis(yTicks []string, xLabels []string)
	// Polyline connects the points in order.
	Polyline(points []Point)
	// Point marks a single value.
	Point(p Point)
}

// Instance is one constructed chart.
type Instance struct {
	spec      view.ChartSpec
	surface   Surface
	destroyed bool
}

// Spec is the chart description the instance was built from.
func (i *Instance) Spec() view.ChartSpec {
	return i.spec
}

// Destroyed reports whether Destroy ran.
func (i *Instance) Destroyed() bool {
	return i.destroyed
}

func (i *Instance) draw() error {
	if i.destroyed {
		return ErrDestroyed
	}
	points := make([]Point, 0, i.spec.Len())
	for x, y := range i.spec.Values {
		if y < i.spec.YMin || y > i.spec.YMax {
			continue
		}
		p := Point{X: x, Y: y}
		if x < len(i.spec.Labels) {
			p.Label = i.spec.Labels[x]
		}
		if x < len(i.spec.Colors) {
			p.Color = i.spec.Colors[x]
		}
		points = append(points, p)
	}
	i.surface.Axis(i.spec.YTicks, i.spec.Labels)
	i.surface.Polyline(points)
	for _, p := range points {
		i.surface.Point(p)
	}
	return nil
}

// Destroy releases the instance and clears what it drew.
func (i *Instance) Destroy() {
	if i.destroyed {
		return
	}
	i.destroyed = true
	i.surface.Clear()
}

// Region is a display area that owns its chart instance.
type Region struct {
	mu      sync.Mutex
	surface Surface
	current *Instance
	live    int
}

// NewRegion binds a region to a surface.
func NewRegion(s Surface) *Region {
	return &Region{surface: s}
}

// Show replaces the chart. The previous instance is destroyed before any
// new one is built, and nothing is built for an empty spec.
func (r *Region) Show(spec view.ChartSpec) (*Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.disposeLocked()
	if spec.Empty() {
		return nil, nil
	}

	inst := &Instance{spec: spec, surface: r.surface}
	r.current = inst
	r.live++
	if err := inst.draw(); err != nil {
		r.disposeLocked()
		return nil, err
	}
	return inst, nil
}

// Current returns the live instance, if any.
func (r *Region) Current() *Instance {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Live is the number of live instances in the region: zero or one.
func (r *Region) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live
}

// Close destroys the live instance.
func (r *Region) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disposeLocked()
}

func (r *Region) disposeLocked() {
	if r.current == nil {
		return
	}
	r.current.Destroy()
	r.current = nil
	r.live--
}
