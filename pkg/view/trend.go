package view

import (
	"tableflip.dev/moods/pkg/entry"
	"tableflip.dev/moods/pkg/mood"
)

// TrendTitle labels the single chart series.
const TrendTitle = "Mood Trend"

// ChartSpec describes an ordinal line chart: Y is the mood ordinal, X the
// short date of each entry.
type ChartSpec struct {
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
	Colors []string `json:"colors"`
	YMin   int      `json:"yMin"`
	YMax   int      `json:"yMax"`
	YTicks []string `json:"yTicks"`
}

// Empty reports whether there is nothing to plot.
func (c ChartSpec) Empty() bool {
	return len(c.Values) == 0
}

// Len is the number of points.
func (c ChartSpec) Len() int {
	return len(c.Values)
}

// Trend maps the window to chart points, keeping the window's order.
func Trend(window []entry.MoodEntry) ChartSpec {
	all := mood.All()
	ticks := make([]string, len(all))
	for i, m := range all {
		ticks[i] = m.Title()
	}
	spec := ChartSpec{
		Title:  TrendTitle,
		Labels: make([]string, 0, len(window)),
		Values: make([]int, 0, len(window)),
		Colors: make([]string, 0, len(window)),
		YMin:   0,
		YMax:   len(all) - 1,
		YTicks: ticks,
	}
	for _, e := range window {
		spec.Labels = append(spec.Labels, e.Label())
		spec.Values = append(spec.Values, e.Mood.Ordinal())
		spec.Colors = append(spec.Colors, e.Mood.Color())
	}
	return spec
}
