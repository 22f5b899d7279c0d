package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/goleak"

	"tableflip.dev/moods/pkg/mood"
	"tableflip.dev/moods/pkg/notify"
	"tableflip.dev/moods/pkg/session"
	"tableflip.dev/moods/pkg/store"
	"tableflip.dev/moods/pkg/timeutil"
)

func newModel(t *testing.T) (*Model, *session.Session, *store.KV) {
	t.Helper()
	kv, err := store.Load(store.StaticConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load kv: %v", err)
	}
	now := time.Date(2024, time.May, 6, 10, 0, 0, 0, time.Local)
	n := NewNotifier(kv)
	s := session.Open(context.Background(), session.Deps{
		Backend:  kv,
		Notifier: n,
		Reminder: timeutil.DefaultReminder,
		Now:      func() time.Time { return now },
	})
	t.Cleanup(func() {
		s.Close()
		n.Close()
	})
	return New(context.Background(), s, n), s, kv
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestSaveWithoutPickWarns(t *testing.T) {
	m, s, _ := newModel(t)

	send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if got := m.View(); !strings.Contains(got, session.MsgSelectFirst) {
		t.Fatalf("expected warning in view, got:\n%s", got)
	}
	if len(s.Entries()) != 0 {
		t.Fatalf("expected no entries")
	}
}

func TestReopenStartsOnTodaysEntry(t *testing.T) {
	_, s, _ := newModel(t)
	if _, err := s.Log(mood.Rainy, "drizzle"); err != nil {
		t.Fatalf("log: %v", err)
	}

	m := New(context.Background(), s, nil)
	if m.cursor != mood.Rainy.Ordinal() {
		t.Fatalf("expected cursor on rainy, got %d", m.cursor)
	}
	if m.note.Value() != "drizzle" {
		t.Fatalf("expected today's note loaded, got %q", m.note.Value())
	}
}

func TestPickTypeAndSave(t *testing.T) {
	m, s, _ := newModel(t)

	send(m,
		keys("3"),
		tea.KeyMsg{Type: tea.KeyTab},
		keys("misty"),
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)

	entries := s.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Mood != mood.Foggy || entries[0].Note != "misty" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
	if m.note.Value() != "" {
		t.Fatalf("expected note cleared, got %q", m.note.Value())
	}
	got := m.View()
	if !strings.Contains(got, session.MsgSaved) {
		t.Fatalf("expected success alert, got:\n%s", got)
	}
	if m.surface.Drawn() != 1 {
		t.Fatalf("expected one chart point, got %d", m.surface.Drawn())
	}
}

func TestCursorWrapsAndPicks(t *testing.T) {
	m, s, _ := newModel(t)

	send(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyEnter})

	if got := s.Selected(); got != mood.Stormy {
		t.Fatalf("expected stormy, got %q", got)
	}
}

func TestPromptEnableAndDismiss(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	m, s, kv := newModel(t)
	if !strings.Contains(m.View(), promptText) {
		t.Fatalf("expected reminder prompt")
	}

	send(m, keys("r"))

	if s.PromptVisible() {
		t.Fatalf("expected prompt hidden after enabling")
	}
	if !s.Scheduler().Running() {
		t.Fatalf("expected scheduler running")
	}
	var p notify.Permission
	if !kv.Load(store.KeyNotificationPermission, &p) || p != notify.PermissionGranted {
		t.Fatalf("expected granted permission persisted, got %q", p)
	}
	if !strings.Contains(m.View(), session.MsgEnabled) {
		t.Fatalf("expected enabled alert")
	}
	s.Close()
}

func TestPromptDismiss(t *testing.T) {
	m, s, _ := newModel(t)

	send(m, keys("x"))

	if s.PromptVisible() || strings.Contains(m.View(), promptText) {
		t.Fatalf("expected prompt dismissed")
	}
}

func TestNotificationBanner(t *testing.T) {
	m, _, _ := newModel(t)

	send(m, notificationMsg(notify.Reminder()))

	if !strings.Contains(m.View(), notify.Reminder().Title) {
		t.Fatalf("expected banner")
	}
	send(m, keys("l"))
	if strings.Contains(m.View(), notify.Reminder().Title) {
		t.Fatalf("expected banner cleared on key press")
	}
}

func TestNotifierRequiresGrant(t *testing.T) {
	_, _, kv := newModel(t)
	n := NewNotifier(kv)
	defer n.Close()

	if err := n.Show(notify.Reminder()); err != notify.ErrNotGranted {
		t.Fatalf("expected ErrNotGranted, got %v", err)
	}
	if _, err := n.RequestPermission(context.Background()); err != nil {
		t.Fatalf("request: %v", err)
	}
	if err := n.Show(notify.Reminder()); err != nil {
		t.Fatalf("show: %v", err)
	}
	select {
	case got := <-n.Notifications():
		if got.Title != notify.Reminder().Title {
			t.Fatalf("unexpected notification %+v", got)
		}
	default:
		t.Fatalf("expected queued notification")
	}
}
