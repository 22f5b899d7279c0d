package entry

import (
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/moods/pkg/mood"
)

func TestNewTrimsNoteAndStampsDate(t *testing.T) {
	now := time.Date(2024, time.February, 1, 9, 30, 0, 0, time.Local)
	e := New(mood.Cloudy, "  long day \n", now)
	if e.Date != "2024-02-01" {
		t.Fatalf("expected date 2024-02-01, got %s", e.Date)
	}
	if e.Note != "long day" {
		t.Fatalf("expected trimmed note, got %q", e.Note)
	}
	if !e.Timestamp.Equal(now) {
		t.Fatalf("expected timestamp %v, got %v", now, e.Timestamp)
	}
	if e.Label() != "Feb 1" {
		t.Fatalf("unexpected label %q", e.Label())
	}
}

func TestNewTruncatesToStoredPrecision(t *testing.T) {
	now := time.Date(2024, time.February, 1, 9, 30, 0, 123456789, time.Local)
	e := New(mood.Sunny, "", now)
	if got, want := e.Timestamp.Nanosecond(), 123000000; got != want {
		t.Fatalf("expected %d ns, got %d", want, got)
	}

	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back MoodEntry
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Timestamp.Equal(e.Timestamp.Time) {
		t.Fatalf("expected reloaded %v to equal %v", back.Timestamp, e.Timestamp)
	}
}

func TestTimestampEncodesEpochMillis(t *testing.T) {
	e := MoodEntry{
		Date:      "2024-01-01",
		Mood:      mood.Sunny,
		Timestamp: FromMillis(1704103200123),
	}
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"date":"2024-01-01","mood":"sunny","note":"","timestamp":1704103200123}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}

	var back MoodEntry
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Timestamp.Millis() != 1704103200123 {
		t.Fatalf("unexpected millis %d", back.Timestamp.Millis())
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatalf("expected error for non-numeric timestamp")
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, time.March, 3, 7, 0, 0, 0, time.Local)
	evening := time.Date(2024, time.March, 3, 22, 0, 0, 0, time.Local)
	next := time.Date(2024, time.March, 4, 0, 0, 1, 0, time.Local)
	ts := Timestamp{Time: morning}
	if !ts.SameDay(evening) {
		t.Fatalf("expected same day")
	}
	if ts.SameDay(next) {
		t.Fatalf("expected different day")
	}
}
