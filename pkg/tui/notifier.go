package tui

import (
	"context"
	"sync"

	"tableflip.dev/moods/pkg/notify"
	"tableflip.dev/moods/pkg/store"
)

// Backend persists the permission answer. *store.KV satisfies it.
type Backend interface {
	Save(key string, value any) bool
	Load(key string, out any) bool
}

// Notifier delivers reminders into the running program instead of writing
// over the screen. Pressing the enable key is the user's answer, so
// RequestPermission grants.
type Notifier struct {
	Backend Backend

	mu     sync.Mutex
	ch     chan notify.Notification
	closed bool
}

func NewNotifier(backend Backend) *Notifier {
	return &Notifier{Backend: backend, ch: make(chan notify.Notification, 4)}
}

func (n *Notifier) Permission() notify.Permission {
	var p notify.Permission
	if n.Backend == nil || !n.Backend.Load(store.KeyNotificationPermission, &p) {
		return notify.PermissionDefault
	}
	return notify.ParsePermission(string(p))
}

func (n *Notifier) RequestPermission(ctx context.Context) (notify.Permission, error) {
	if err := ctx.Err(); err != nil {
		return n.Permission(), err
	}
	if n.Backend != nil {
		n.Backend.Save(store.KeyNotificationPermission, notify.PermissionGranted)
	}
	return notify.PermissionGranted, nil
}

// Show queues n for the program. A full queue drops n.
func (n *Notifier) Show(note notify.Notification) error {
	if n.Permission() != notify.PermissionGranted {
		return notify.ErrNotGranted
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return nil
	}
	select {
	case n.ch <- note:
	default:
	}
	return nil
}

// Notifications is closed by Close.
func (n *Notifier) Notifications() <-chan notify.Notification {
	return n.ch
}

func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.closed {
		n.closed = true
		close(n.ch)
	}
}
