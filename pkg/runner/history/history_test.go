package history

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moods/pkg/entry"
	"tableflip.dev/moods/pkg/mood"
	"tableflip.dev/moods/pkg/session"
	"tableflip.dev/moods/pkg/store"
	"tableflip.dev/moods/pkg/view"
)

func init() {
	color.NoColor = true
}

func openSession(t *testing.T, moods ...mood.Mood) *session.Session {
	t.Helper()
	kv, err := store.Load(store.StaticConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load kv: %v", err)
	}
	now := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.Local)
	s := session.Open(context.Background(), session.Deps{
		Backend: kv,
		Now:     func() time.Time { return now },
	})
	t.Cleanup(s.Close)
	for _, m := range moods {
		if _, err := s.Log(m, ""); err != nil {
			t.Fatalf("log: %v", err)
		}
		now = now.AddDate(0, 0, 1)
	}
	return s
}

func TestHistoryEmpty(t *testing.T) {
	s := openSession(t)
	var out bytes.Buffer
	h := History{Session: s, Out: &out}
	if err := h.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(out.String(), view.EmptyTitle) {
		t.Fatalf("expected empty state, got %q", out.String())
	}
}

func TestHistoryJSONNewestFirst(t *testing.T) {
	s := openSession(t, mood.Rainy, mood.Sunny)
	var out bytes.Buffer
	h := History{Session: s, JSON: true, Out: &out}
	if err := h.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got []entry.MoodEntry
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].Mood != mood.Sunny || got[1].Mood != mood.Rainy {
		t.Fatalf("expected sunny then rainy, got %+v", got)
	}
}

func TestHistoryMonth(t *testing.T) {
	s := openSession(t, mood.Cloudy)
	var out bytes.Buffer
	h := History{Session: s, Month: true, On: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local), Out: &out}
	if err := h.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(out.String(), "February") {
		t.Fatalf("expected month header, got %q", out.String())
	}
	if !strings.Contains(out.String(), "29 ") {
		t.Fatalf("expected leap day, got %q", out.String())
	}
}
