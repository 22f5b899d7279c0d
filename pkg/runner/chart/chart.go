package chart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	"tableflip.dev/moods/pkg/printers"
	"tableflip.dev/moods/pkg/session"
)

// Chart draws the trend of the most recent entries.
type Chart struct {
	Session *session.Session
	Surface *printers.TerminalSurface
	JSON    bool
	Out     io.Writer
}

func (n *Chart) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not chart, no session")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	spec := n.Session.Trend()
	if n.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(spec)
	}

	surface := n.Surface
	if surface == nil {
		surface = printers.NewTerminalSurface()
	}
	n.Session.ShowChart(surface)

	pp := printers.PrettyPrint{Out: out}
	pp.Chart(spec, surface)
	return nil
}
