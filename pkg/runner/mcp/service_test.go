package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/moods/pkg/journal"
	"tableflip.dev/moods/pkg/mood"
	"tableflip.dev/moods/pkg/session"
	"tableflip.dev/moods/pkg/store"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func newService(t *testing.T) (*Service, *clock) {
	t.Helper()
	kv, err := store.Load(store.StaticConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load kv: %v", err)
	}
	c := &clock{now: time.Date(2024, time.March, 4, 8, 30, 0, 0, time.Local)}
	s := session.Open(context.Background(), session.Deps{Backend: kv, Now: c.Now})
	t.Cleanup(s.Close)
	return NewService(s), c
}

func TestServiceLogMood(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	dto, err := svc.LogMood(ctx, "Breezy", "  walked the dog ")
	if err != nil {
		t.Fatalf("LogMood failed: %v", err)
	}
	if dto.Date != "2024-03-04" {
		t.Fatalf("expected date 2024-03-04, got %s", dto.Date)
	}
	if dto.Mood != string(mood.Breezy) || dto.Ordinal != 1 {
		t.Fatalf("expected breezy/1, got %s/%d", dto.Mood, dto.Ordinal)
	}
	if dto.Note != "walked the dog" {
		t.Fatalf("expected trimmed note, got %q", dto.Note)
	}
	if dto.CreatedMS == 0 {
		t.Fatalf("expected timestamp")
	}
}

func TestServiceLogMoodRejectsUnknown(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if _, err := svc.LogMood(ctx, "hazy", ""); !errors.Is(err, mood.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	if _, err := svc.LogMood(ctx, "", ""); !errors.Is(err, journal.ErrNoMood) {
		t.Fatalf("expected ErrNoMood, got %v", err)
	}
}

func TestServiceSameDayReplaces(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if _, err := svc.LogMood(ctx, "rainy", ""); err != nil {
		t.Fatalf("LogMood failed: %v", err)
	}
	if _, err := svc.LogMood(ctx, "sunny", "better"); err != nil {
		t.Fatalf("LogMood failed: %v", err)
	}

	list, err := svc.ListMoods(ctx, 0)
	if err != nil {
		t.Fatalf("ListMoods failed: %v", err)
	}
	if len(list) != 1 || list[0].Mood != string(mood.Sunny) {
		t.Fatalf("expected single sunny entry, got %+v", list)
	}

	sum, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if sum.MoodsLogged != 1 {
		t.Fatalf("expected moodsLogged 1, got %d", sum.MoodsLogged)
	}
}

func TestServiceListAndTrend(t *testing.T) {
	ctx := context.Background()
	svc, c := newService(t)

	for _, v := range []string{"stormy", "cloudy", "sunny"} {
		if _, err := svc.LogMood(ctx, v, ""); err != nil {
			t.Fatalf("LogMood failed: %v", err)
		}
		c.now = c.now.AddDate(0, 0, 1)
	}

	list, err := svc.ListMoods(ctx, 2)
	if err != nil {
		t.Fatalf("ListMoods failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[0].Date != "2024-03-06" || list[1].Date != "2024-03-05" {
		t.Fatalf("expected newest first, got %s, %s", list[0].Date, list[1].Date)
	}

	spec, err := svc.Trend(ctx, 2)
	if err != nil {
		t.Fatalf("Trend failed: %v", err)
	}
	if spec.Len() != 2 {
		t.Fatalf("expected 2 points, got %d", spec.Len())
	}

	sum, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if sum.Entries != 3 || sum.Latest == nil || sum.Latest.Mood != string(mood.Sunny) {
		t.Fatalf("unexpected summary %+v", sum)
	}
	for _, mc := range sum.Moods {
		want := 0
		switch mood.Mood(mc.Mood) {
		case mood.Stormy, mood.Cloudy, mood.Sunny:
			want = 1
		}
		if mc.Count != want {
			t.Fatalf("expected %d for %s, got %d", want, mc.Mood, mc.Count)
		}
	}
}

func TestServiceEntryByDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if _, err := svc.LogMood(ctx, "foggy", ""); err != nil {
		t.Fatalf("LogMood failed: %v", err)
	}

	dto, err := svc.EntryByDate(ctx, "2024-03-04")
	if err != nil {
		t.Fatalf("EntryByDate failed: %v", err)
	}
	if dto.Mood != string(mood.Foggy) {
		t.Fatalf("expected foggy, got %s", dto.Mood)
	}
	if _, err := svc.EntryByDate(ctx, "2024-03-05"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
	if _, err := svc.EntryByDate(ctx, "yesterday"); err == nil {
		t.Fatalf("expected invalid date error")
	}
}
