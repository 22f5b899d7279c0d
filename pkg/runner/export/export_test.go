package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"tableflip.dev/moods/pkg/mood"
	"tableflip.dev/moods/pkg/session"
	"tableflip.dev/moods/pkg/store"
)

func openSession(t *testing.T) *session.Session {
	t.Helper()
	kv, err := store.Load(store.StaticConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load kv: %v", err)
	}
	now := time.Date(2024, time.April, 2, 18, 30, 0, 0, time.UTC)
	s := session.Open(context.Background(), session.Deps{
		Backend: kv,
		Now:     func() time.Time { return now },
	})
	t.Cleanup(s.Close)
	if _, err := s.Log(mood.Stormy, "deadline"); err != nil {
		t.Fatalf("log: %v", err)
	}
	return s
}

func TestExportFormats(t *testing.T) {
	s := openSession(t)
	want := Build(s.Entries(), s.Activity()).MoodData

	var jsonOut bytes.Buffer
	if err := (&Export{Session: s, Format: "json", Out: &jsonOut}).Do(context.Background()); err != nil {
		t.Fatalf("json: %v", err)
	}
	var fromJSON Document
	if err := json.Unmarshal(jsonOut.Bytes(), &fromJSON); err != nil {
		t.Fatalf("decode json: %v", err)
	}

	var yamlOut bytes.Buffer
	if err := (&Export{Session: s, Format: "yaml", Out: &yamlOut}).Do(context.Background()); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var fromYAML Document
	if err := yaml.Unmarshal(yamlOut.Bytes(), &fromYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}

	for name, got := range map[string]Document{"json": fromJSON, "yaml": fromYAML} {
		if diff := cmp.Diff(want, got.MoodData); diff != "" {
			t.Fatalf("%s entries mismatch (-want +got):\n%s", name, diff)
		}
		if got.UserActivity.MoodsLogged != 1 || got.UserActivity.TotalVisits != 1 {
			t.Fatalf("%s: unexpected activity %+v", name, got.UserActivity)
		}
	}
	if want[0].Timestamp != time.Date(2024, time.April, 2, 18, 30, 0, 0, time.UTC).UnixMilli() {
		t.Fatalf("unexpected timestamp %d", want[0].Timestamp)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	s := openSession(t)
	if err := (&Export{Session: s, Format: "csv", Out: &bytes.Buffer{}}).Do(context.Background()); err == nil {
		t.Fatalf("expected error for csv")
	}
}
