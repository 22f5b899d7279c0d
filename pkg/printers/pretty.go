package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moods/pkg/entry"
	"tableflip.dev/moods/pkg/mood"
	"tableflip.dev/moods/pkg/view"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// DateHeader prints a long date such as "Monday, January 2, 2006".
func (pp *PrettyPrint) DateHeader(date string) {
	h := color.New(color.FgHiWhite, color.Italic)
	_, _ = h.Fprintln(pp.out(), date)
}

// Alert prints a transient message styled by kind. Nil prints nothing.
func (pp *PrettyPrint) Alert(a *view.Alert) {
	if a == nil {
		return
	}
	var c *color.Color
	switch a.Kind {
	case view.AlertSuccess:
		c = color.New(color.FgGreen, color.Bold)
	case view.AlertWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan)
	}
	_, _ = c.Fprintln(pp.out(), a.Message)
}

// Hint prints a quiet one-line suggestion.
func (pp *PrettyPrint) Hint(msg string) {
	_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), msg)
}

// Options prints the mood picker row, marking the selected one.
func (pp *PrettyPrint) Options(opts []view.Option) {
	parts := make([]string, 0, len(opts))
	for i, o := range opts {
		label := fmt.Sprintf("%d %s %s", i, o.Emoji, o.Title)
		if o.Active {
			label = color.New(color.Bold, color.Underline).Sprint(label)
		}
		parts = append(parts, label)
	}
	_, _ = fmt.Fprintln(pp.out(), strings.Join(parts, "  "))
}

// History prints the cards newest first, or the empty state.
func (pp *PrettyPrint) History(h view.HistoryView) {
	pp.TitleWithCount("Mood History", len(h.Cards))
	if h.Empty {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintf(pp.out(), " %s\n %s\n\n", view.EmptyTitle, view.EmptyHint)
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for _, c := range h.Cards {
		title := moodColor(c.Mood).Sprint(c.Title)
		note := color.New(color.Italic).Sprint(c.Note)
		tbl.AddRow(c.Emoji, title, color.New(color.Faint).Sprint(c.Label), note)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Entry prints a single saved entry.
func (pp *PrettyPrint) Entry(e entry.MoodEntry) {
	_, _ = fmt.Fprintf(pp.out(), "%s %s %s", e.Mood.Emoji(), moodColor(e.Mood).Sprint(e.Mood.Title()), color.New(color.Faint).Sprint(e.Label()))
	if e.HasNote() {
		_, _ = color.New(color.Italic).Fprintf(pp.out(), "  %s", e.Note)
	}
	pp.NewLine()
}

// moodColor maps a mood to the nearest terminal color.
func moodColor(m mood.Mood) *color.Color {
	switch m {
	case mood.Sunny:
		return color.New(color.FgHiYellow, color.Bold)
	case mood.Breezy:
		return color.New(color.FgHiCyan, color.Bold)
	case mood.Foggy:
		return color.New(color.FgWhite, color.Bold)
	case mood.Cloudy:
		return color.New(color.FgHiBlack, color.Bold)
	case mood.Rainy:
		return color.New(color.FgBlue, color.Bold)
	case mood.Stormy:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.Faint)
	}
}
