package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/moods/pkg/timeutil"
)

// Scheduler fires the reminder once at the next At, then every Period, until
// stopped. It lives only as long as the process; nothing survives a restart.
type Scheduler struct {
	Notifier Notifier
	At       timeutil.Clock
	Period   time.Duration
	Now      func() time.Time
	// OnShown runs after each reminder was shown.
	OnShown func(Notification)
	Log     *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	next   time.Time
	shown  int
}

// NextAt is the first reminder instant after now.
func NextAt(now time.Time, at timeutil.Clock) time.Time {
	return at.Next(now)
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Scheduler) period() time.Duration {
	if s.Period <= 0 {
		return 24 * time.Hour
	}
	return s.Period
}

func (s *Scheduler) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// Start begins the timer. It fails without granted permission. Starting a
// running scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.Notifier == nil {
		return ErrUnsupported
	}
	switch s.Notifier.Permission() {
	case PermissionGranted:
	case PermissionUnsupported:
		return ErrUnsupported
	default:
		return ErrNotGranted
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.shown = 0
	s.next = NextAt(s.now(), s.At)
	delay := s.next.Sub(s.now())
	s.log().Debug("notify: reminder scheduled", zap.Time("at", s.next), zap.Duration("in", delay))

	go s.loop(ctx, delay, s.done)
	return nil
}

func (s *Scheduler) loop(ctx context.Context, delay time.Duration, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}
	s.fire()

	ticker := time.NewTicker(s.period())
	defer ticker.Stop()
	for {
		s.mu.Lock()
		s.next = s.now().Add(s.period())
		s.mu.Unlock()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fire()
		}
	}
}

// fire shows the reminder if permission still holds.
func (s *Scheduler) fire() {
	if s.Notifier.Permission() != PermissionGranted {
		s.log().Debug("notify: permission revoked, skipping reminder")
		return
	}
	n := Reminder()
	if err := s.Notifier.Show(n); err != nil {
		s.log().Warn("notify: show failed", zap.Error(err))
		return
	}
	s.mu.Lock()
	s.shown++
	s.mu.Unlock()
	if s.OnShown != nil {
		s.OnShown(n)
	}
}

// Stop cancels the timer and waits for it to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the timer is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Next is the next planned reminder, zero when not running.
func (s *Scheduler) Next() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		return time.Time{}
	}
	return s.next
}

// Shown counts reminders shown since Start.
func (s *Scheduler) Shown() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shown
}
