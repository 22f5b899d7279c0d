package timeutil

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := map[string]Clock{
		"":       DefaultReminder,
		"19:00":  {Hour: 19},
		"7:30":   {Hour: 7, Minute: 30},
		"7:30pm": {Hour: 19, Minute: 30},
		"8pm":    {Hour: 20},
		"21":     {Hour: 21},
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %v, got %v", in, want, got)
		}
	}
	if _, err := ParseClock("teatime"); err == nil {
		t.Fatalf("expected error for invalid clock")
	}
}

func TestClockNext(t *testing.T) {
	c := Clock{Hour: 19}
	before := time.Date(2024, time.January, 1, 18, 30, 0, 0, time.Local)
	if got, want := c.Next(before), time.Date(2024, time.January, 1, 19, 0, 0, 0, time.Local); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	after := time.Date(2024, time.January, 1, 19, 0, 1, 0, time.Local)
	if got, want := c.Next(after), time.Date(2024, time.January, 2, 19, 0, 0, 0, time.Local); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	exact := time.Date(2024, time.December, 31, 19, 0, 0, 0, time.Local)
	if got, want := c.Next(exact), time.Date(2025, time.January, 1, 19, 0, 0, 0, time.Local); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
