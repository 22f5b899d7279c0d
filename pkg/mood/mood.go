// Package mood defines the closed set of mood categories a journal entry can
// carry, ordered from clear to severe.
package mood

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Mood is one of the weather-like mood categories.
type Mood string

const (
	Sunny  Mood = "sunny"
	Breezy Mood = "breezy"
	Foggy  Mood = "foggy"
	Cloudy Mood = "cloudy"
	Rainy  Mood = "rainy"
	Stormy Mood = "stormy"

	// None is the zero value, meaning nothing was selected.
	None Mood = ""
)

// ErrUnknown is returned by Parse for values outside the mood set.
var ErrUnknown = errors.New("mood: unknown mood")

// Glyph describes how a mood is shown.
type Glyph struct {
	Mood    Mood
	Emoji   string
	Meaning string
	Color   string
}

// DefaultGlyphs returns the glyphs in chart order; the index is the ordinal.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Mood: Sunny, Emoji: "☀️", Meaning: "bright and clear", Color: "#f6c23e"},
		{Mood: Breezy, Emoji: "🌬️", Meaning: "light and easy", Color: "#36b9cc"},
		{Mood: Foggy, Emoji: "🌫️", Meaning: "unclear", Color: "#858796"},
		{Mood: Cloudy, Emoji: "☁️", Meaning: "a bit grey", Color: "#5a5c69"},
		{Mood: Rainy, Emoji: "🌧️", Meaning: "down", Color: "#4e73df"},
		{Mood: Stormy, Emoji: "⚡", Meaning: "rough", Color: "#e74a3b"},
	}
}

// All returns every mood, ordinal ascending.
func All() []Mood {
	glyphs := DefaultGlyphs()
	all := make([]Mood, len(glyphs))
	for i, g := range glyphs {
		all[i] = g.Mood
	}
	return all
}

// Names returns the mood names, ordinal ascending.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, m := range all {
		names[i] = string(m)
	}
	return names
}

// Parse accepts a mood name (any case), its emoji, or its 1-based position
// in the picker (1 is sunny).
func Parse(s string) (Mood, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return None, fmt.Errorf("%w: empty value", ErrUnknown)
	}
	glyphs := DefaultGlyphs()
	if n, err := strconv.Atoi(v); err == nil {
		if n >= 1 && n <= len(glyphs) {
			return glyphs[n-1].Mood, nil
		}
		return None, fmt.Errorf("%w: %q", ErrUnknown, s)
	}
	for _, g := range glyphs {
		if string(g.Mood) == v || g.Emoji == v || strings.TrimSuffix(g.Emoji, "\ufe0f") == v {
			return g.Mood, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknown, s)
}

// Valid reports whether m belongs to the mood set.
func (m Mood) Valid() bool {
	return m.Ordinal() >= 0
}

// Ordinal is the chart position, 0 for sunny through 5 for stormy, or -1.
func (m Mood) Ordinal() int {
	for i, g := range DefaultGlyphs() {
		if g.Mood == m {
			return i
		}
	}
	return -1
}

// Glyph returns the display glyph; unknown moods get a question mark.
func (m Mood) Glyph() Glyph {
	if i := m.Ordinal(); i >= 0 {
		return DefaultGlyphs()[i]
	}
	return Glyph{Mood: m, Emoji: "❓", Meaning: "unknown", Color: "#858796"}
}

func (m Mood) Emoji() string {
	return m.Glyph().Emoji
}

func (m Mood) Color() string {
	return m.Glyph().Color
}

// Title capitalizes the first letter: "sunny" becomes "Sunny".
func (m Mood) Title() string {
	if m == None {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

func (m Mood) String() string {
	return string(m)
}

// TitleForOrdinal maps a chart value back to its mood title, "" when out of range.
func TitleForOrdinal(v int) string {
	glyphs := DefaultGlyphs()
	if v < 0 || v >= len(glyphs) {
		return ""
	}
	return glyphs[v].Mood.Title()
}
