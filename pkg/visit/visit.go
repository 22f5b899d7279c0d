// Package visit counts page loads with small string cookies.
package visit

import (
	"strconv"
	"time"

	"tableflip.dev/moods/pkg/mood"
)

// Cookie names.
const (
	CookieLastVisit             = "lastVisit"
	CookieTotalVisits           = "totalVisits"
	CookieFirstVisit            = "firstVisit"
	CookieLastMood              = "lastMood"
	CookieNotificationDismissed = "notificationDismissed"
)

// Cookie lifetimes.
const (
	Day          = 24 * time.Hour
	VisitTTL     = 365 * Day
	LastMoodTTL  = 7 * Day
	DismissedTTL = 30 * Day
)

// Jar reads and writes plain string cookies.
type Jar interface {
	Get(name string) (string, bool)
	Set(name, value string, ttl time.Duration)
}

// Record is the visit state after counting the current load.
type Record struct {
	FirstVisit   time.Time
	LastVisit    time.Time
	CurrentVisit time.Time
	TotalVisits  int
}

// Track counts the page load at now. lastVisit and totalVisits are rewritten
// for a year; firstVisit is written once and never touched again.
func Track(jar Jar, now time.Time) Record {
	r := Record{
		FirstVisit:   now,
		LastVisit:    now,
		CurrentVisit: now,
	}
	if v, ok := jar.Get(CookieLastVisit); ok {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			r.LastVisit = t
		}
	}
	if v, ok := jar.Get(CookieTotalVisits); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			r.TotalVisits = n
		}
	}
	r.TotalVisits++

	stamp := now.UTC().Format(time.RFC3339Nano)
	jar.Set(CookieLastVisit, stamp, VisitTTL)
	jar.Set(CookieTotalVisits, strconv.Itoa(r.TotalVisits), VisitTTL)

	if v, ok := jar.Get(CookieFirstVisit); ok {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			r.FirstVisit = t
		}
	} else {
		jar.Set(CookieFirstVisit, stamp, VisitTTL)
	}
	return r
}

// RememberMood writes the lastMood cookie for a week.
func RememberMood(jar Jar, m mood.Mood) {
	jar.Set(CookieLastMood, string(m), LastMoodTTL)
}

// LastMood returns the mood remembered by RememberMood, if still valid.
func LastMood(jar Jar) (mood.Mood, bool) {
	v, ok := jar.Get(CookieLastMood)
	if !ok {
		return mood.None, false
	}
	m, err := mood.Parse(v)
	if err != nil {
		return mood.None, false
	}
	return m, true
}

// Dismiss remembers for a month that the reminder prompt was declined.
func Dismiss(jar Jar) {
	jar.Set(CookieNotificationDismissed, "true", DismissedTTL)
}

// Dismissed reports whether the reminder prompt was declined recently.
func Dismissed(jar Jar) bool {
	v, ok := jar.Get(CookieNotificationDismissed)
	return ok && v == "true"
}
