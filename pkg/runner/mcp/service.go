// Package mcp provides the Model Context Protocol server integration for moods.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/moods/pkg/activity"
	"tableflip.dev/moods/pkg/entry"
	"tableflip.dev/moods/pkg/mood"
	"tableflip.dev/moods/pkg/session"
	"tableflip.dev/moods/pkg/view"
)

// Service coordinates session-backed operations that are shared by the MCP server.
type Service struct {
	Session *session.Session
}

// ErrEntryNotFound is returned when no entry exists for a date.
var ErrEntryNotFound = errors.New("entry not found")

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	Date      string `json:"date"`
	Mood      string `json:"mood"`
	Emoji     string `json:"emoji"`
	Title     string `json:"title"`
	Note      string `json:"note,omitempty"`
	Ordinal   int    `json:"ordinal"`
	CreatedMS int64  `json:"timestamp"`
	Created   string `json:"created"`
}

// MoodCount is how often a mood was logged.
type MoodCount struct {
	Mood  string `json:"mood"`
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// Summary aggregates the journal.
type Summary struct {
	Entries     int         `json:"entries"`
	MoodsLogged int         `json:"moodsLogged"`
	TotalVisits int         `json:"totalVisits"`
	Moods       []MoodCount `json:"moods"`
	Latest      *EntryDTO   `json:"latest,omitempty"`
}

// NewService builds a service wrapper around an open session.
func NewService(s *session.Session) *Service {
	return &Service{Session: s}
}

// LogMood upserts today's entry.
func (s *Service) LogMood(ctx context.Context, value, note string) (*EntryDTO, error) {
	if s.Session == nil {
		return nil, errors.New("session is not configured")
	}
	m := mood.None
	if strings.TrimSpace(value) != "" {
		parsed, err := mood.Parse(value)
		if err != nil {
			return nil, err
		}
		m = parsed
	}
	e, err := s.Session.Log(m, note)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

// ListMoods returns entries newest first, at most limit when limit > 0.
func (s *Service) ListMoods(ctx context.Context, limit int) ([]EntryDTO, error) {
	if s.Session == nil {
		return nil, errors.New("session is not configured")
	}
	entries := s.Session.List()
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return toDTOs(entries), nil
}

// Trend describes the chart over the last window entries.
func (s *Service) Trend(ctx context.Context, window int) (view.ChartSpec, error) {
	if s.Session == nil {
		return view.ChartSpec{}, errors.New("session is not configured")
	}
	if window <= 0 {
		return s.Session.Trend(), nil
	}
	return view.Trend(s.Session.Recent(window)), nil
}

// EntryByDate finds the entry for a calendar date.
func (s *Service) EntryByDate(ctx context.Context, date string) (*EntryDTO, error) {
	if s.Session == nil {
		return nil, errors.New("session is not configured")
	}
	if date == "" {
		return nil, errors.New("date is required")
	}
	if _, err := entry.ParseDate(date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	for _, e := range s.Session.Entries() {
		if e.Date == date {
			dto := toDTO(e)
			return &dto, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, date)
}

// Summary counts entries per mood.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	if s.Session == nil {
		return nil, errors.New("session is not configured")
	}
	entries := s.Session.List()
	act := s.Session.Activity()

	counts := make(map[mood.Mood]int)
	for _, e := range entries {
		counts[e.Mood]++
	}
	sum := &Summary{
		Entries:     len(entries),
		MoodsLogged: act.MoodsLogged,
		TotalVisits: act.TotalVisits,
		Moods:       make([]MoodCount, 0, len(mood.All())),
	}
	for _, m := range mood.All() {
		sum.Moods = append(sum.Moods, MoodCount{Mood: string(m), Emoji: m.Emoji(), Count: counts[m]})
	}
	if len(entries) > 0 {
		latest := toDTO(entries[0])
		sum.Latest = &latest
	}
	return sum, nil
}

// Activity returns the interaction log.
func (s *Service) Activity(ctx context.Context) (activity.Activity, error) {
	if s.Session == nil {
		return activity.Activity{}, errors.New("session is not configured")
	}
	return s.Session.Activity(), nil
}

func toDTOs(entries []entry.MoodEntry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out
}

func toDTO(e entry.MoodEntry) EntryDTO {
	return EntryDTO{
		Date:      e.Date,
		Mood:      string(e.Mood),
		Emoji:     e.Mood.Emoji(),
		Title:     e.Mood.Title(),
		Note:      e.Note,
		Ordinal:   e.Mood.Ordinal(),
		CreatedMS: e.Timestamp.Millis(),
		Created:   entry.FormatTime(e.Timestamp.Time),
	}
}
