package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/moods/pkg/activity"
	"tableflip.dev/moods/pkg/entry"
	"tableflip.dev/moods/pkg/session"
)

// Entry is the portable form of a saved mood.
type Entry struct {
	Date      string `json:"date" yaml:"date"`
	Mood      string `json:"mood" yaml:"mood"`
	Note      string `json:"note,omitempty" yaml:"note,omitempty"`
	Timestamp int64  `json:"timestamp" yaml:"timestamp"`
	Time      string `json:"time" yaml:"time"`
}

// Document is everything the widget stores about the user.
type Document struct {
	MoodData     []Entry           `json:"moodData" yaml:"moodData"`
	UserActivity activity.Activity `json:"userActivity" yaml:"userActivity"`
}

// Export writes the journal and activity log as JSON or YAML.
type Export struct {
	Session *session.Session
	Format  string
	Out     io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not export, no session")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	doc := Build(n.Session.Entries(), n.Session.Activity())

	switch strings.ToLower(n.Format) {
	case "", "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", n.Format)
	}
}

// Build assembles a Document, keeping entries in save order.
func Build(entries []entry.MoodEntry, act activity.Activity) Document {
	doc := Document{
		MoodData:     make([]Entry, 0, len(entries)),
		UserActivity: act,
	}
	for _, e := range entries {
		doc.MoodData = append(doc.MoodData, Entry{
			Date:      e.Date,
			Mood:      string(e.Mood),
			Note:      e.Note,
			Timestamp: e.Timestamp.Millis(),
			Time:      entry.FormatTime(e.Timestamp.Time),
		})
	}
	return doc
}
