// Package entry holds the journal record for one calendar day.
package entry

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/moods/pkg/mood"
)

const (
	layoutISO   = "2006-01-02"
	layoutShort = "Jan 2"
	layoutLong  = "Monday, January 2, 2006"
)

// MoodEntry is the mood recorded for one date. Date is the identity; saving
// again on the same date replaces the entry.
type MoodEntry struct {
	Date      string    `json:"date"`
	Mood      mood.Mood `json:"mood"`
	Note      string    `json:"note"`
	Timestamp Timestamp `json:"timestamp"`
}

// New stamps an entry for the calendar day of now, truncated to the
// millisecond precision it is stored with.
func New(m mood.Mood, note string, now time.Time) MoodEntry {
	return MoodEntry{
		Date:      DateOf(now),
		Mood:      m,
		Note:      strings.TrimSpace(note),
		Timestamp: FromMillis(now.UnixMilli()),
	}
}

// HasNote reports whether a note was attached.
func (e MoodEntry) HasNote() bool {
	return e.Note != ""
}

// Label is the short month/day label derived from the save instant.
func (e MoodEntry) Label() string {
	return ShortLabel(e.Timestamp.Time)
}

func (e MoodEntry) String() string {
	if e.HasNote() {
		return fmt.Sprintf("%s %s %s: %s", e.Date, e.Mood.Emoji(), e.Mood.Title(), e.Note)
	}
	return fmt.Sprintf("%s %s %s", e.Date, e.Mood.Emoji(), e.Mood.Title())
}

// DateOf is the local calendar date of t, e.g. "2024-01-01".
func DateOf(t time.Time) string {
	return t.Local().Format(layoutISO)
}

// ShortLabel renders t as "Jan 2" in local time.
func ShortLabel(t time.Time) string {
	return t.Local().Format(layoutShort)
}

// LongDate renders t as "Monday, January 2, 2006" in local time.
func LongDate(t time.Time) string {
	return t.Local().Format(layoutLong)
}

// ParseDate parses an ISO calendar date in local time.
func ParseDate(v string) (time.Time, error) {
	return time.ParseInLocation(layoutISO, strings.TrimSpace(v), time.Local)
}
