package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultPeriod is how often the reminder repeats after the first one.
	DefaultPeriod = 24 * time.Hour

	// MinPeriod keeps a misconfigured period from spamming notifications.
	MinPeriod = time.Minute
)

// ParsePeriod parses the reminder repeat period. It accepts Go durations
// ("12h", "90m") with an optional leading day count ("1d", "2d6h").
// Empty input yields DefaultPeriod.
func ParsePeriod(input string) (time.Duration, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return DefaultPeriod, nil
	}

	var total time.Duration
	if i := strings.IndexByte(s, 'd'); i >= 0 {
		days, err := strconv.Atoi(strings.TrimSpace(s[:i]))
		if err != nil || days < 0 {
			return 0, fmt.Errorf("invalid day count in period %q", input)
		}
		total = time.Duration(days) * 24 * time.Hour
		s = strings.TrimSpace(s[i+1:])
	}
	if s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid period %q: %w", input, err)
		}
		total += d
	}

	if total < MinPeriod {
		return 0, fmt.Errorf("period %q is shorter than %s", input, MinPeriod)
	}
	return total, nil
}
