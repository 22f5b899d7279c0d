package timeutil

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	tests := map[string]time.Duration{
		"":      24 * time.Hour,
		"1d":    24 * time.Hour,
		" 2D ":  48 * time.Hour,
		"12h":   12 * time.Hour,
		"1d6h":  30 * time.Hour,
		"90m":   90 * time.Minute,
		"1m":    time.Minute,
		"0d30m": 30 * time.Minute,
	}
	for in, want := range tests {
		got, err := ParsePeriod(in)
		if err != nil {
			t.Fatalf("ParsePeriod(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParsePeriod(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestParsePeriodRejects(t *testing.T) {
	for _, in := range []string{"noon", "30s", "0d", "-1h", "xd", "1w"} {
		if _, err := ParsePeriod(in); err == nil {
			t.Fatalf("ParsePeriod(%q): expected error", in)
		}
	}
}
