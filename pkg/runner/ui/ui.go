package ui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/moods/pkg/session"
	"tableflip.dev/moods/pkg/tui"
)

// UI runs the full-screen widget until the user quits or ctx is done.
type UI struct {
	// Deps opens the page session; its Notifier is replaced with one that
	// delivers into the program.
	Deps session.Deps

	In  io.Reader
	Out io.Writer
}

func (d *UI) Do(ctx context.Context) error {
	if d.Deps.Backend == nil {
		return errors.New("can not start ui, no store")
	}
	notifier := tui.NewNotifier(d.Deps.Backend)
	defer notifier.Close()

	deps := d.Deps
	deps.Notifier = notifier
	s := session.Open(ctx, deps)
	defer s.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if d.In != nil {
		opts = append(opts, tea.WithInput(d.In))
	}
	if d.Out != nil {
		opts = append(opts, tea.WithOutput(d.Out))
	}

	p := tea.NewProgram(tui.New(ctx, s, notifier), opts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
