package remind

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/moods/pkg/notify"
	"tableflip.dev/moods/pkg/printers"
	"tableflip.dev/moods/pkg/session"
	"tableflip.dev/moods/pkg/view"
)

const layoutNext = "Mon Jan 2 15:04"

// Remind keeps the daily reminder running in the foreground.
type Remind struct {
	Session *session.Session
	// Dismiss hides the reminder prompt instead of enabling reminders.
	Dismiss bool
	Out     io.Writer
}

func (n *Remind) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not remind, no session")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	pp := printers.PrettyPrint{Out: out}

	if n.Dismiss {
		n.Session.DismissPrompt()
		pp.Alert(&view.Alert{Kind: view.AlertInfo, Message: "Reminder prompt hidden for 30 days."})
		return nil
	}

	sched := n.Session.Scheduler()
	if sched == nil {
		return notify.ErrUnsupported
	}
	if !sched.Running() {
		if err := n.Session.EnableNotifications(ctx); err != nil {
			pp.Alert(&view.Alert{Kind: view.AlertWarning, Message: fmt.Sprintf("Reminders are off: %v", err)})
			return err
		}
		pp.Alert(n.Session.View().Alert)
	}

	pp.Hint(fmt.Sprintf("Next reminder %s. Press Ctrl+C to stop.", sched.Next().Format(layoutNext)))
	<-ctx.Done()
	pp.Hint(fmt.Sprintf("Stopped after %d reminder(s).", sched.Shown()))
	return nil
}
