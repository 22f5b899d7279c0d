package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moods/pkg/entry"
	"tableflip.dev/moods/pkg/mood"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month containing on, each logged day in its mood color.
func (pp *PrettyPrint) Calendar(on time.Time, entries ...entry.MoodEntry) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, on.Location())
	pp.PrintMonth(then, MonthMoods(then, entries...))
}

// MonthMoods indexes the month's entries by day, mood.None where nothing was logged.
func MonthMoods(then time.Time, entries ...entry.MoodEntry) []mood.Mood {
	days := make([]mood.Mood, DaysIn(then))
	prefix := then.Format("2006-01-")
	for _, e := range entries {
		if !strings.HasPrefix(e.Date, prefix) {
			continue
		}
		d, err := entry.ParseDate(e.Date)
		if err != nil {
			continue
		}
		days[d.Day()-1] = e.Mood
	}
	return days
}

func (pp *PrettyPrint) PrintMonth(then time.Time, days []mood.Mood) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(pp.out(), "   ")
	}

	faint := color.New(color.Faint, color.FgWhite)

	for i := range days {
		if days[i] == mood.None {
			_, _ = faint.Fprintf(pp.out(), "%2d ", i+1)
		} else {
			_, _ = moodColor(days[i]).Fprintf(pp.out(), "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.out(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
