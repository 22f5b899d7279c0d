// Package session is the controller for one page session: it owns the
// journal, the activity log, the current selection, the chart region and the
// reminder timer, and serializes every mutation.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/moods/pkg/activity"
	"tableflip.dev/moods/pkg/chart"
	"tableflip.dev/moods/pkg/entry"
	"tableflip.dev/moods/pkg/journal"
	"tableflip.dev/moods/pkg/mood"
	"tableflip.dev/moods/pkg/notify"
	"tableflip.dev/moods/pkg/timeutil"
	"tableflip.dev/moods/pkg/view"
	"tableflip.dev/moods/pkg/visit"
)

// Messages shown to the user.
const (
	MsgSelectFirst = "Please select a mood first!"
	MsgSaved       = "Mood saved successfully!"
	MsgEnabled     = "Notifications enabled! You'll get daily reminders."
)

// DefaultWindow is how many recent entries the trend chart shows.
const DefaultWindow = 7

// Backend is the key-value store shared by the session's parts.
type Backend interface {
	Save(key string, value any) bool
	Load(key string, out any) bool
}

// Deps wires a session to its environment.
type Deps struct {
	Backend  Backend
	Jar      visit.Jar
	Notifier notify.Notifier
	Surface  chart.Surface

	Reminder timeutil.Clock
	Period   time.Duration
	Window   int
	Now      func() time.Time
	Log      *zap.Logger
}

// Session is one page session.
type Session struct {
	mu sync.Mutex
	// ctx bounds background work such as the reminder timer.
	ctx context.Context

	backend  Backend
	jar      visit.Jar
	notifier notify.Notifier
	now      func() time.Time
	log      *zap.Logger
	window   int

	journal   *journal.Journal
	activity  *activity.Log
	visit     visit.Record
	region    *chart.Region
	scheduler *notify.Scheduler

	selected mood.Mood
	alert    *view.Alert
	prompt   bool
	closed   bool
}

// Open performs page-load work: count the visit, log the page view, load
// the journal and decide what to do about reminders.
func Open(ctx context.Context, d Deps) *Session {
	s := &Session{
		ctx:      ctx,
		backend:  d.Backend,
		jar:      d.Jar,
		notifier: d.Notifier,
		now:      d.Now,
		log:      d.Log,
		window:   d.Window,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.window <= 0 {
		s.window = DefaultWindow
	}
	if s.jar == nil {
		s.jar = visit.NewStoreJar(d.Backend, s.now)
	}

	s.visit = visit.Track(s.jar, s.now())
	s.activity = activity.Open(d.Backend, s.visit, s.now)
	s.activity.Track(activity.PageView, nil)
	s.journal = journal.Open(d.Backend, journal.WithClock(s.now))
	if d.Surface != nil {
		s.region = chart.NewRegion(d.Surface)
	}

	if s.notifier != nil {
		s.scheduler = &notify.Scheduler{
			Notifier: s.notifier,
			At:       d.Reminder,
			Period:   d.Period,
			Now:      s.now,
			Log:      s.log,
			OnShown: func(notify.Notification) {
				s.mu.Lock()
				defer s.mu.Unlock()
				s.activity.Track(activity.NotificationShown, nil)
			},
		}
		switch notify.Decide(s.notifier.Permission(), visit.Dismissed(s.jar)) {
		case notify.ActionSchedule:
			if err := s.scheduler.Start(ctx); err != nil {
				s.log.Debug("session: reminders not started", zap.Error(err))
			}
		case notify.ActionPrompt:
			s.prompt = true
		}
	}

	s.mu.Lock()
	s.redrawLocked()
	s.mu.Unlock()
	return s
}

// Select marks m as the mood to save.
func (s *Session) Select(m mood.Mood) error {
	if !m.Valid() {
		return mood.ErrUnknown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = m
	s.activity.Track(activity.MoodSelected, map[string]any{"mood": string(m)})
	return nil
}

// Selected is the current selection, mood.None when nothing is selected.
func (s *Session) Selected() mood.Mood {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Save upserts today's entry from the selection and note. Without a
// selection nothing changes and journal.ErrNoMood is returned along with a
// warning alert.
func (s *Session) Save(note string) (entry.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == mood.None {
		s.alert = &view.Alert{Kind: view.AlertWarning, Message: MsgSelectFirst}
		return entry.MoodEntry{}, journal.ErrNoMood
	}

	e, appended, err := s.journal.Upsert(s.selected, note)
	if err != nil {
		s.alert = &view.Alert{Kind: view.AlertWarning, Message: err.Error()}
		return entry.MoodEntry{}, err
	}
	if appended {
		s.activity.MoodLogged()
	}
	s.activity.Flush()
	visit.RememberMood(s.jar, e.Mood)
	s.activity.Track(activity.MoodSaved, map[string]any{
		"mood":    string(e.Mood),
		"hasNote": e.HasNote(),
	})

	s.selected = mood.None
	s.redrawLocked()
	s.alert = &view.Alert{Kind: view.AlertSuccess, Message: MsgSaved}
	return e, nil
}

// Log selects m and saves it with note in one step.
func (s *Session) Log(m mood.Mood, note string) (entry.MoodEntry, error) {
	if m != mood.None {
		if err := s.Select(m); err != nil {
			return entry.MoodEntry{}, err
		}
	}
	return s.Save(note)
}

// Scroll logs a scroll interaction.
func (s *Session) Scroll(position int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity.Track(activity.PageScroll, map[string]any{"scrollPosition": position})
}

// View renders the page. A pending alert is included once and then cleared.
func (s *Session) View() view.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := view.Render(view.State{
		Now:      s.now(),
		Selected: s.selected,
		History:  s.journal.List(),
		Window:   s.journal.Recent(s.window),
		Alert:    s.alert,
		Prompt:   s.prompt,
	})
	s.alert = nil
	return page
}

// Trend is the current chart description.
func (s *Session) Trend() view.ChartSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.Trend(s.journal.Recent(s.window))
}

// History is the current history description.
func (s *Session) History() view.HistoryView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.History(s.journal.List())
}

// Entries returns the entries in save order.
func (s *Session) Entries() []entry.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.journal.Entries()
}

// List returns the entries newest first.
func (s *Session) List() []entry.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.journal.List()
}

// Recent returns the last n saved entries, oldest first.
func (s *Session) Recent(n int) []entry.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.journal.Recent(n)
}

// Activity returns a snapshot of the activity log.
func (s *Session) Activity() activity.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activity.Snapshot()
}

// Today returns the entry saved for the current date, if any.
func (s *Session) Today() (entry.MoodEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.journal.Today()
}

// LastMood is the mood remembered from a recent save, if any.
func (s *Session) LastMood() (mood.Mood, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return visit.LastMood(s.jar)
}

// Visit is the visit record counted at Open.
func (s *Session) Visit() visit.Record {
	return s.visit
}

// Chart is the region the trend chart is drawn into, nil without a surface.
func (s *Session) Chart() *chart.Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.region
}

// Scheduler is the reminder timer, nil without a notifier.
func (s *Session) Scheduler() *notify.Scheduler {
	return s.scheduler
}

// PromptVisible reports whether the reminder prompt should be shown.
func (s *Session) PromptVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt
}

// DismissPrompt hides the reminder prompt for 30 days.
func (s *Session) DismissPrompt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	visit.Dismiss(s.jar)
	s.prompt = false
	s.activity.Track(activity.NotificationDismissed, nil)
}

// EnableNotifications asks for permission and starts the daily reminder
// when granted. The answer may take arbitrarily long, so the permission is
// read again afterwards instead of trusting the reply. ctx only bounds the
// request; the timer runs for the session.
func (s *Session) EnableNotifications(ctx context.Context) error {
	if s.notifier == nil {
		return notify.ErrUnsupported
	}
	if _, err := s.notifier.RequestPermission(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("session: closed")
	}
	switch s.notifier.Permission() {
	case notify.PermissionGranted:
	case notify.PermissionUnsupported:
		return notify.ErrUnsupported
	default:
		return notify.ErrNotGranted
	}
	s.prompt = false
	if err := s.scheduler.Start(s.ctx); err != nil {
		return err
	}
	s.alert = &view.Alert{Kind: view.AlertSuccess, Message: MsgEnabled}
	s.activity.Track(activity.NotificationsEnabled, nil)
	return nil
}

// ShowChart binds the chart region to surface, releasing any chart drawn
// on the previous one, and draws the current trend.
func (s *Session) ShowChart(surface chart.Surface) *chart.Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.region != nil {
		s.region.Close()
	}
	s.region = chart.NewRegion(surface)
	s.redrawLocked()
	return s.region
}

// SyncPermission applies a permission change reported by the platform
// outside of EnableNotifications: the timer starts when granted, stops when
// revoked, and the prompt follows the current state.
func (s *Session) SyncPermission() {
	if s.notifier == nil {
		return
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	action := notify.Decide(s.notifier.Permission(), visit.Dismissed(s.jar))
	s.prompt = action == notify.ActionPrompt
	if action == notify.ActionSchedule {
		// Start under the lock so a concurrent Close cannot miss the timer.
		if err := s.scheduler.Start(s.ctx); err != nil {
			s.log.Debug("session: reminders not started", zap.Error(err))
		}
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	// the reminder callback takes s.mu, so stop outside the lock
	s.scheduler.Stop()
}

func (s *Session) redrawLocked() {
	if s.region == nil {
		return
	}
	if _, err := s.region.Show(view.Trend(s.journal.Recent(s.window))); err != nil {
		s.log.Warn("session: chart draw failed", zap.Error(err))
	}
}

// Close is page teardown: flush state, cancel the reminder timer, release
// the chart.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.journal.Flush()
	s.activity.Flush()
	sched := s.scheduler
	region := s.region
	s.mu.Unlock()

	// the reminder callback takes s.mu, so stop outside the lock
	if sched != nil {
		sched.Stop()
	}
	if region != nil {
		region.Close()
	}
}
