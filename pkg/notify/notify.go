// Package notify schedules the daily "log your mood" reminder.
package notify

import (
	"context"
	"errors"
)

// Permission is the platform's notification permission state.
type Permission string

const (
	PermissionUnsupported Permission = "unsupported"
	PermissionDefault     Permission = "default"
	PermissionDenied      Permission = "denied"
	PermissionGranted     Permission = "granted"
)

// ParsePermission maps a reported state to a Permission. Unknown values are
// treated as not yet decided.
func ParsePermission(s string) Permission {
	switch p := Permission(s); p {
	case PermissionUnsupported, PermissionDenied, PermissionGranted:
		return p
	default:
		return PermissionDefault
	}
}

var (
	// ErrUnsupported means the platform cannot show notifications.
	ErrUnsupported = errors.New("notify: notifications unsupported")
	// ErrNotGranted means permission has not been granted.
	ErrNotGranted = errors.New("notify: permission not granted")
)

// Notification is what gets shown.
type Notification struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	Icon    string `json:"icon"`
	Vibrate []int  `json:"vibrate"`
}

// Reminder is the daily reminder notification.
func Reminder() Notification {
	return Notification{
		Title:   "Nature's Mood Diary Reminder",
		Body:    "How is your emotional weather today? Take a moment to log your mood.",
		Icon:    "https://emojicdn.elk.sh/🌿",
		Vibrate: []int{200, 100, 200},
	}
}

// Notifier is the platform notification capability.
type Notifier interface {
	Permission() Permission
	// RequestPermission asks the user. The returned state may already be
	// stale; callers re-check Permission before acting on it.
	RequestPermission(ctx context.Context) (Permission, error)
	Show(n Notification) error
}

// Action is what a page load should do about reminders.
type Action int

const (
	// ActionNone: unsupported, denied, or the prompt was dismissed.
	ActionNone Action = iota
	// ActionPrompt: ask the user whether they want reminders.
	ActionPrompt
	// ActionSchedule: permission is granted, start the daily timer.
	ActionSchedule
)

func (a Action) String() string {
	switch a {
	case ActionPrompt:
		return "prompt"
	case ActionSchedule:
		return "schedule"
	default:
		return "none"
	}
}

// Decide maps the permission state and the dismissal cookie to an action.
func Decide(p Permission, dismissed bool) Action {
	switch p {
	case PermissionGranted:
		return ActionSchedule
	case PermissionDefault:
		if dismissed {
			return ActionNone
		}
		return ActionPrompt
	default:
		return ActionNone
	}
}
