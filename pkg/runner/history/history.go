package history

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"tableflip.dev/moods/pkg/printers"
	"tableflip.dev/moods/pkg/session"
)

// History prints the saved moods, newest first, or a month calendar.
type History struct {
	Session *session.Session
	Month   bool
	On      time.Time
	JSON    bool
	Out     io.Writer
}

func (n *History) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not show history, no session")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	if n.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(n.Session.List())
	}

	page := n.Session.View()
	pp := printers.PrettyPrint{Out: out}
	pp.DateHeader(page.DateHeader)
	pp.NewLine()

	if n.Month {
		on := n.On
		if on.IsZero() {
			on = time.Now()
		}
		pp.Calendar(on, n.Session.Entries()...)
		return nil
	}
	pp.History(page.History)
	return nil
}
