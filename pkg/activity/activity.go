// Package activity keeps the append-only interaction log stored under
// userActivity.
package activity

import (
	"time"

	"github.com/google/uuid"

	"tableflip.dev/moods/pkg/store"
	"tableflip.dev/moods/pkg/visit"
)

// Interaction types.
const (
	PageView              = "page_view"
	MoodSelected          = "mood_selected"
	MoodSaved             = "mood_saved"
	PageScroll            = "page_scroll"
	NotificationsEnabled  = "notifications_enabled"
	NotificationShown     = "notification_shown"
	NotificationDismissed = "notification_dismissed"
)

// Interaction is one logged user action.
type Interaction struct {
	ID        string         `json:"id" yaml:"id"`
	Type      string         `json:"type" yaml:"type"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
}

// Activity is the persisted userActivity document.
type Activity struct {
	FirstVisit   time.Time     `json:"firstVisit" yaml:"firstVisit"`
	LastVisit    time.Time     `json:"lastVisit" yaml:"lastVisit"`
	CurrentVisit time.Time     `json:"currentVisit" yaml:"currentVisit"`
	TotalVisits  int           `json:"totalVisits" yaml:"totalVisits"`
	MoodsLogged  int           `json:"moodsLogged" yaml:"moodsLogged"`
	Interactions []Interaction `json:"interactions" yaml:"interactions"`
}

// Backend persists the activity document. *store.KV satisfies it.
type Backend interface {
	Save(key string, value any) bool
	Load(key string, out any) bool
}

// Log owns the activity document for one session. The interaction list
// grows without bound; nothing prunes it.
type Log struct {
	backend Backend
	now     func() time.Time
	doc     Activity
}

// Open loads the stored document, or starts one from the visit record. The
// visit counters always reflect the current load.
func Open(backend Backend, r visit.Record, now func() time.Time) *Log {
	if now == nil {
		now = time.Now
	}
	l := &Log{backend: backend, now: now}
	if backend == nil || !backend.Load(store.KeyUserActivity, &l.doc) {
		l.doc = Activity{FirstVisit: r.FirstVisit}
	}
	if l.doc.FirstVisit.IsZero() {
		l.doc.FirstVisit = r.FirstVisit
	}
	l.doc.LastVisit = r.LastVisit
	l.doc.CurrentVisit = r.CurrentVisit
	l.doc.TotalVisits = r.TotalVisits
	if l.doc.Interactions == nil {
		l.doc.Interactions = make([]Interaction, 0)
	}
	return l
}

// Track appends an interaction and saves the document.
func (l *Log) Track(kind string, details map[string]any) Interaction {
	i := Interaction{
		ID:        uuid.NewString(),
		Type:      kind,
		Timestamp: l.now(),
		Details:   details,
	}
	l.doc.Interactions = append(l.doc.Interactions, i)
	l.Flush()
	return i
}

// MoodLogged counts a newly logged day. Replacing today's mood does not count.
func (l *Log) MoodLogged() {
	l.doc.MoodsLogged++
}

// Snapshot returns a copy of the document.
func (l *Log) Snapshot() Activity {
	doc := l.doc
	doc.Interactions = make([]Interaction, len(l.doc.Interactions))
	copy(doc.Interactions, l.doc.Interactions)
	return doc
}

// Count returns how many interactions of kind were logged.
func (l *Log) Count(kind string) int {
	n := 0
	for _, i := range l.doc.Interactions {
		if i.Type == kind {
			n++
		}
	}
	return n
}

// Flush saves the document and reports success.
func (l *Log) Flush() bool {
	if l.backend == nil {
		return false
	}
	return l.backend.Save(store.KeyUserActivity, l.doc)
}
