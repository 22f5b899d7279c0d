package log

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	"tableflip.dev/moods/pkg/mood"
	"tableflip.dev/moods/pkg/printers"
	"tableflip.dev/moods/pkg/prompt"
	"tableflip.dev/moods/pkg/session"
)

// Hint shown while the reminder prompt is pending.
const RemindHint = "Tip: run `moods remind` to get a daily reminder."

// Log records today's mood.
type Log struct {
	Session     *session.Session
	Mood        mood.Mood
	Note        string
	Interactive bool
	JSON        bool

	In  io.Reader
	Out io.Writer
	// Pick and Ask default to the terminal prompts.
	Pick func(in io.Reader, out io.Writer, selected mood.Mood) (mood.Mood, error)
	Ask  func(in io.Reader, out io.Writer) (string, error)
}

func (n *Log) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not log, no session")
	}
	in, out := n.In, n.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	m, note := n.Mood, n.Note
	if n.Interactive {
		pick, ask := n.Pick, n.Ask
		if pick == nil {
			pick = prompt.Mood
		}
		if ask == nil {
			ask = prompt.Note
		}
		if m == mood.None {
			selected, _ := n.Session.LastMood()
			if today, ok := n.Session.Today(); ok {
				selected = today.Mood
			}
			picked, err := pick(in, out, selected)
			if err != nil {
				return err
			}
			m = picked
		}
		if note == "" {
			answer, err := ask(in, out)
			if err != nil {
				return err
			}
			note = answer
		}
	}

	e, err := n.Session.Log(m, note)
	page := n.Session.View()

	if n.JSON {
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(e)
	}

	pp := printers.PrettyPrint{Out: out}
	pp.Alert(page.Alert)
	if err != nil {
		return err
	}
	pp.Entry(e)
	if page.ShowPrompt {
		pp.Hint(RemindHint)
	}
	return nil
}
