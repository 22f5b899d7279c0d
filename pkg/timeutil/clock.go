package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// Clock is a local time of day.
type Clock struct {
	Hour   int
	Minute int
}

// DefaultReminder is 19:00 local time.
var DefaultReminder = Clock{Hour: 19}

// ParseClock parses "19:00", "7:30" or "19". Empty input yields DefaultReminder.
func ParseClock(input string) (Clock, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return DefaultReminder, nil
	}
	layouts := []string{"15:04", "3:04pm", "3pm", "15"}
	for _, layout := range layouts {
		t, err := time.Parse(layout, strings.ToLower(trimmed))
		if err == nil {
			return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return Clock{}, fmt.Errorf("invalid time of day %q", input)
}

// Next returns the first instant at this clock time strictly after now,
// today if it has not passed yet, otherwise tomorrow. now's location is used.
func (c Clock) Next(now time.Time) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), c.Hour, c.Minute, 0, 0, now.Location())
	if !now.Before(target) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
