package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/moods/pkg/chart"
	"tableflip.dev/moods/pkg/notify"
	"tableflip.dev/moods/pkg/prompt"
	"tableflip.dev/moods/pkg/session"
	"tableflip.dev/moods/pkg/store"
	"tableflip.dev/moods/pkg/timeutil"
)

// env is what every command needs: settings, the store and a logger.
type env struct {
	settings store.Settings
	kv       *store.KV
	log      *zap.Logger

	reminder timeutil.Clock
	period   time.Duration
}

func loadEnv() (*env, error) {
	log, err := lo.NewLogger()
	if err != nil {
		return nil, err
	}
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	reminder, err := timeutil.ParseClock(settings.Reminder())
	if err != nil {
		return nil, fmt.Errorf("reminder: %w", err)
	}
	period, err := timeutil.ParsePeriod(settings.Period())
	if err != nil {
		return nil, fmt.Errorf("period: %w", err)
	}
	kv, err := store.Load(settings, store.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Debug("moods: environment loaded",
		zap.String("path", kv.BasePath()),
		zap.Stringer("reminder", reminder),
		zap.Duration("period", period))
	return &env{settings: settings, kv: kv, log: log, reminder: reminder, period: period}, nil
}

// notifier asks on the terminal; reminders are unsupported without a tty.
func (e *env) notifier() notify.Notifier {
	return &notify.Terminal{
		Backend:     e.kv,
		Confirm:     prompt.Reminders(os.Stdin, os.Stdout),
		Unsupported: !notify.IsTerminal(os.Stdin) || !notify.IsTerminal(os.Stdout),
	}
}

// open starts the page session for this invocation.
func (e *env) open(ctx context.Context, surface chart.Surface) *session.Session {
	return session.Open(ctx, session.Deps{
		Backend:  e.kv,
		Notifier: e.notifier(),
		Surface:  surface,
		Reminder: e.reminder,
		Period:   e.period,
		Window:   e.settings.Window(),
		Log:      e.log,
	})
}

func (e *env) close() {
	_ = e.log.Sync()
}
