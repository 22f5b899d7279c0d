package web

import (
	"context"
	"sync"

	"tableflip.dev/moods/pkg/notify"
	"tableflip.dev/moods/pkg/store"
)

const maxPending = 8

// QueueNotifier is the browser's notification capability seen from the
// server. The page reports its permission state and polls for reminders to
// show; the last reported state is kept in the store.
type QueueNotifier struct {
	backend Backend

	mu         sync.Mutex
	permission notify.Permission
	pending    []notify.Notification
}

var _ notify.Notifier = (*QueueNotifier)(nil)

func NewQueueNotifier(backend Backend) *QueueNotifier {
	q := &QueueNotifier{backend: backend, permission: notify.PermissionDefault}
	var p notify.Permission
	if backend != nil && backend.Load(store.KeyNotificationPermission, &p) {
		q.permission = notify.ParsePermission(string(p))
	}
	return q
}

func (q *QueueNotifier) Permission() notify.Permission {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.permission
}

// RequestPermission returns the last reported state. The browser does the
// asking and reports the answer through SetPermission.
func (q *QueueNotifier) RequestPermission(context.Context) (notify.Permission, error) {
	return q.Permission(), nil
}

// SetPermission records the state reported by the page.
func (q *QueueNotifier) SetPermission(p notify.Permission) {
	q.mu.Lock()
	q.permission = p
	q.mu.Unlock()
	if q.backend != nil {
		q.backend.Save(store.KeyNotificationPermission, p)
	}
}

// Show queues n for the page to pick up. Only the newest few are kept.
func (q *QueueNotifier) Show(n notify.Notification) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.permission != notify.PermissionGranted {
		return notify.ErrNotGranted
	}
	q.pending = append(q.pending, n)
	if len(q.pending) > maxPending {
		q.pending = q.pending[len(q.pending)-maxPending:]
	}
	return nil
}

// Drain returns and clears the queued notifications.
func (q *QueueNotifier) Drain() []notify.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	if out == nil {
		out = []notify.Notification{}
	}
	return out
}
