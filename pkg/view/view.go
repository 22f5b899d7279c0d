// Package view turns session state into a description of what to draw. It has
// no side effects; drawing is left to the caller.
package view

import (
	"time"

	"tableflip.dev/moods/pkg/entry"
	"tableflip.dev/moods/pkg/mood"
)

// Empty-state copy for the history list.
const (
	EmptyTitle = "No entries yet"
	EmptyHint  = "Select your first mood to begin!"
)

// AlertKind styles a transient message.
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertWarning AlertKind = "warning"
	AlertInfo    AlertKind = "info"
)

// Alert is a dismissible message.
type Alert struct {
	Kind    AlertKind `json:"kind"`
	Message string    `json:"message"`
}

// Option is one selectable mood button.
type Option struct {
	Mood   mood.Mood `json:"mood"`
	Emoji  string    `json:"emoji"`
	Title  string    `json:"title"`
	Active bool      `json:"active"`
}

// Card is one history row.
type Card struct {
	Mood  mood.Mood `json:"mood"`
	Emoji string    `json:"emoji"`
	Title string    `json:"title"`
	Label string    `json:"label"`
	Note  string    `json:"note,omitempty"`
	Color string    `json:"color"`
}

// HistoryView is the reverse-chronological list, or its empty state.
type HistoryView struct {
	Empty bool   `json:"empty"`
	Cards []Card `json:"cards"`
}

// State is everything a page render needs.
type State struct {
	Now      time.Time
	Selected mood.Mood
	// History is already newest first.
	History []entry.MoodEntry
	// Window is the chart window in save order.
	Window []entry.MoodEntry
	Alert  *Alert
	Prompt bool
}

// Page is the full view description.
type Page struct {
	DateHeader string      `json:"date"`
	Options    []Option    `json:"options"`
	History    HistoryView `json:"history"`
	Chart      ChartSpec   `json:"chart"`
	Alert      *Alert      `json:"alert,omitempty"`
	ShowPrompt bool        `json:"showPrompt"`
}

// Render projects state into a Page.
func Render(s State) Page {
	return Page{
		DateHeader: entry.LongDate(s.Now),
		Options:    Options(s.Selected),
		History:    History(s.History),
		Chart:      Trend(s.Window),
		Alert:      s.Alert,
		ShowPrompt: s.Prompt,
	}
}

// Options lists every mood, marking the selected one active.
func Options(selected mood.Mood) []Option {
	all := mood.All()
	out := make([]Option, len(all))
	for i, m := range all {
		out[i] = Option{
			Mood:   m,
			Emoji:  m.Emoji(),
			Title:  m.Title(),
			Active: m == selected,
		}
	}
	return out
}

// History builds one card per entry in the order given.
func History(entries []entry.MoodEntry) HistoryView {
	if len(entries) == 0 {
		return HistoryView{Empty: true, Cards: []Card{}}
	}
	cards := make([]Card, len(entries))
	for i, e := range entries {
		cards[i] = Card{
			Mood:  e.Mood,
			Emoji: e.Mood.Emoji(),
			Title: e.Mood.Title(),
			Label: e.Label(),
			Note:  e.Note,
			Color: e.Mood.Color(),
		}
	}
	return HistoryView{Cards: cards}
}
