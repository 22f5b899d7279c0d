package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/moods/pkg/store"
)

// Backend persists the permission answer. *store.KV satisfies it.
type Backend interface {
	Save(key string, value any) bool
	Load(key string, out any) bool
}

// Terminal shows reminders as a banner on a terminal. The permission answer
// is kept in the key-value store so the question is asked once.
type Terminal struct {
	Backend Backend
	Out     io.Writer
	// Confirm asks the user; nil means the terminal cannot ask and
	// permission stays undecided.
	Confirm func(ctx context.Context) (bool, error)
	// Unsupported disables notifications entirely, e.g. when not on a tty.
	Unsupported bool
}

func (t *Terminal) out() io.Writer {
	if t.Out == nil {
		return color.Output
	}
	return t.Out
}

func (t *Terminal) Permission() Permission {
	if t.Unsupported {
		return PermissionUnsupported
	}
	var p Permission
	if t.Backend == nil || !t.Backend.Load(store.KeyNotificationPermission, &p) {
		return PermissionDefault
	}
	return ParsePermission(string(p))
}

func (t *Terminal) RequestPermission(ctx context.Context) (Permission, error) {
	if t.Unsupported {
		return PermissionUnsupported, ErrUnsupported
	}
	if t.Confirm == nil {
		return PermissionDefault, nil
	}
	ok, err := t.Confirm(ctx)
	if err != nil {
		return t.Permission(), err
	}
	p := PermissionDenied
	if ok {
		p = PermissionGranted
	}
	t.SetPermission(p)
	return p, nil
}

// SetPermission records an answer.
func (t *Terminal) SetPermission(p Permission) {
	if t.Backend != nil {
		t.Backend.Save(store.KeyNotificationPermission, p)
	}
}

func (t *Terminal) Show(n Notification) error {
	if t.Unsupported {
		return ErrUnsupported
	}
	title := color.New(color.Bold, color.FgGreen)
	body := color.New(color.Faint)
	w := t.out()
	if _, err := fmt.Fprint(w, "\a"); err != nil {
		return err
	}
	if _, err := title.Fprintf(w, "🌿 %s\n", n.Title); err != nil {
		return err
	}
	_, err := body.Fprintln(w, n.Body)
	return err
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
