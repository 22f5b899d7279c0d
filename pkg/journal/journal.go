// Package journal is the in-memory list of daily mood entries, kept in save
// order and flushed to the key-value store on every change.
package journal

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"tableflip.dev/moods/pkg/entry"
	"tableflip.dev/moods/pkg/mood"
	"tableflip.dev/moods/pkg/store"
)

// ErrNoMood is the validation failure for a save without a selected mood.
var ErrNoMood = errors.New("journal: no mood selected")

// Backend persists the entry list. *store.KV satisfies it.
type Backend interface {
	Save(key string, value any) bool
	Load(key string, out any) bool
}

// Key is the storage key holding the entry list.
const Key = store.KeyMoodData

// Journal owns the entries for one session. It is not safe for concurrent
// use; the session serializes access.
type Journal struct {
	entries []entry.MoodEntry
	backend Backend
	now     func() time.Time

	persisted bool
}

// Option configures a Journal.
type Option func(*Journal)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) {
		if now != nil {
			j.now = now
		}
	}
}

// Open loads the stored entries once. A missing or unreadable payload starts
// an empty journal.
func Open(backend Backend, opts ...Option) *Journal {
	j := &Journal{
		backend: backend,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	if backend != nil {
		var stored []entry.MoodEntry
		if backend.Load(Key, &stored) {
			j.entries = dedupe(stored)
		}
	}
	if j.entries == nil {
		j.entries = make([]entry.MoodEntry, 0)
	}
	return j
}

// Upsert records m and note for today. An existing entry for today is
// replaced where it stands; otherwise the entry is appended. appended reports
// which happened. A failed flush does not fail the upsert.
func (j *Journal) Upsert(m mood.Mood, note string) (e entry.MoodEntry, appended bool, err error) {
	if m == mood.None {
		return entry.MoodEntry{}, false, ErrNoMood
	}
	if !m.Valid() {
		return entry.MoodEntry{}, false, fmt.Errorf("journal: %w: %q", mood.ErrUnknown, m)
	}

	e = entry.New(m, note, j.now())
	if i := j.indexOf(e.Date); i >= 0 {
		j.entries[i] = e
	} else {
		j.entries = append(j.entries, e)
		appended = true
	}
	j.Flush()
	return e, appended, nil
}

// List returns the entries newest first by save instant. Entries with the
// same instant keep their save order.
func (j *Journal) List() []entry.MoodEntry {
	out := j.Entries()
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Timestamp.After(out[b].Timestamp.Time)
	})
	return out
}

// Recent returns the last n saved entries in save order, oldest first.
func (j *Journal) Recent(n int) []entry.MoodEntry {
	if n <= 0 {
		return []entry.MoodEntry{}
	}
	start := len(j.entries) - n
	if start < 0 {
		start = 0
	}
	out := make([]entry.MoodEntry, len(j.entries)-start)
	copy(out, j.entries[start:])
	return out
}

// Entries returns a copy of the entries in save order.
func (j *Journal) Entries() []entry.MoodEntry {
	out := make([]entry.MoodEntry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Today returns today's entry, if one was saved.
func (j *Journal) Today() (entry.MoodEntry, bool) {
	if i := j.indexOf(entry.DateOf(j.now())); i >= 0 {
		return j.entries[i], true
	}
	return entry.MoodEntry{}, false
}

func (j *Journal) Len() int {
	return len(j.entries)
}

// Flush writes the entries to the backend and reports success. The in-memory
// list stays authoritative either way.
func (j *Journal) Flush() bool {
	if j.backend == nil {
		return false
	}
	j.persisted = j.backend.Save(Key, j.entries)
	return j.persisted
}

// Persisted reports whether the last flush succeeded.
func (j *Journal) Persisted() bool {
	return j.persisted
}

func (j *Journal) indexOf(date string) int {
	for i := range j.entries {
		if j.entries[i].Date == date {
			return i
		}
	}
	return -1
}

// dedupe keeps one entry per date from a stored list, the later one winning
// at the earlier one's position.
func dedupe(stored []entry.MoodEntry) []entry.MoodEntry {
	out := make([]entry.MoodEntry, 0, len(stored))
	seen := make(map[string]int, len(stored))
	for _, e := range stored {
		if i, ok := seen[e.Date]; ok {
			out[i] = e
			continue
		}
		seen[e.Date] = len(out)
		out = append(out, e)
	}
	return out
}
