package view

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/moods/pkg/entry"
	"tableflip.dev/moods/pkg/mood"
)

func at(month time.Month, d int) entry.Timestamp {
	return entry.Timestamp{Time: time.Date(2024, month, d, 12, 0, 0, 0, time.Local)}
}

func TestHistoryEmptyState(t *testing.T) {
	h := History(nil)
	if !h.Empty {
		t.Fatalf("expected empty state")
	}
	if len(h.Cards) != 0 {
		t.Fatalf("expected no cards")
	}
}

func TestHistoryCards(t *testing.T) {
	entries := []entry.MoodEntry{
		{Date: "2024-03-02", Mood: mood.Stormy, Note: "deadline", Timestamp: at(time.March, 2)},
		{Date: "2024-03-01", Mood: mood.Sunny, Timestamp: at(time.March, 1)},
	}
	want := HistoryView{Cards: []Card{
		{Mood: mood.Stormy, Emoji: "⚡", Title: "Stormy", Label: "Mar 2", Note: "deadline", Color: mood.Stormy.Color()},
		{Mood: mood.Sunny, Emoji: mood.Sunny.Emoji(), Title: "Sunny", Label: "Mar 1", Color: mood.Sunny.Color()},
	}}
	if diff := cmp.Diff(want, History(entries)); diff != "" {
		t.Fatalf("unexpected history (-want +got):\n%s", diff)
	}
}

func TestTrendMapsOrdinals(t *testing.T) {
	window := []entry.MoodEntry{
		{Date: "2024-04-01", Mood: mood.Sunny, Timestamp: at(time.April, 1)},
		{Date: "2024-04-03", Mood: mood.Rainy, Timestamp: at(time.April, 3)},
		{Date: "2024-04-02", Mood: mood.Foggy, Timestamp: at(time.April, 2)},
	}
	spec := Trend(window)
	if diff := cmp.Diff([]int{0, 4, 2}, spec.Values); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Apr 1", "Apr 3", "Apr 2"}, spec.Labels); diff != "" {
		t.Fatalf("unexpected labels (-want +got):\n%s", diff)
	}
	if spec.YMin != 0 || spec.YMax != 5 {
		t.Fatalf("unexpected y range %d..%d", spec.YMin, spec.YMax)
	}
	if spec.YTicks[5] != "Stormy" {
		t.Fatalf("unexpected ticks %v", spec.YTicks)
	}
}

func TestTrendEmpty(t *testing.T) {
	if !Trend(nil).Empty() {
		t.Fatalf("expected empty chart for no entries")
	}
}

func TestRenderMarksSelection(t *testing.T) {
	page := Render(State{
		Now:      time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local),
		Selected: mood.Cloudy,
		Alert:    &Alert{Kind: AlertWarning, Message: "Please select a mood first!"},
	})
	if page.DateHeader != "Monday, January 1, 2024" {
		t.Fatalf("unexpected date header %q", page.DateHeader)
	}
	active := 0
	for _, o := range page.Options {
		if o.Active {
			active++
			if o.Mood != mood.Cloudy {
				t.Fatalf("wrong option active: %s", o.Mood)
			}
		}
	}
	if active != 1 {
		t.Fatalf("expected one active option, got %d", active)
	}
	if !page.History.Empty || !page.Chart.Empty() {
		t.Fatalf("expected empty history and chart")
	}
	if page.Alert == nil || page.Alert.Kind != AlertWarning {
		t.Fatalf("expected warning alert")
	}
}
