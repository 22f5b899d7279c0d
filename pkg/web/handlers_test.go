package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tableflip.dev/moods/pkg/activity"
	"tableflip.dev/moods/pkg/mood"
	"tableflip.dev/moods/pkg/notify"
	"tableflip.dev/moods/pkg/session"
	"tableflip.dev/moods/pkg/store"
	"tableflip.dev/moods/pkg/timeutil"
	"tableflip.dev/moods/pkg/view"
	"tableflip.dev/moods/pkg/visit"
)

type testServer struct {
	srv     *Server
	cookies map[string]string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv, err := store.Load(store.StaticConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load kv: %v", err)
	}
	now := time.Date(2024, time.February, 1, 9, 0, 0, 0, time.Local)
	srv, err := NewServer(context.Background(), Config{
		Backend:  kv,
		Reminder: timeutil.DefaultReminder,
		Now:      func() time.Time { return now },
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	t.Cleanup(srv.Close)
	return &testServer{srv: srv, cookies: map[string]string{}}
}

// do sends a request carrying the cookies collected so far, the way a
// browser would.
func (ts *testServer) do(t *testing.T, method, path, body, contentType, accept string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	for name, value := range ts.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: url.QueryEscape(value)})
	}
	w := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		v, err := url.QueryUnescape(c.Value)
		if err != nil {
			t.Fatalf("cookie %s: %v", c.Name, err)
		}
		ts.cookies[c.Name] = v
	}
	return w
}

func (ts *testServer) form(t *testing.T, path string, values url.Values) *httptest.ResponseRecorder {
	return ts.do(t, http.MethodPost, path, values.Encode(), "application/x-www-form-urlencoded", "")
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestIndexCountsVisits(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/", "", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Thursday, February 1, 2024", view.EmptyTitle, "Sunny"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in page", want)
		}
	}
	if strings.Contains(body, "/chart.svg") {
		t.Fatalf("expected no chart for an empty journal")
	}
	if ts.cookies[visit.CookieTotalVisits] != "1" {
		t.Fatalf("expected first visit, cookies %v", ts.cookies)
	}
	first := ts.cookies[visit.CookieFirstVisit]
	if first == "" || ts.cookies[visit.CookieLastVisit] == "" {
		t.Fatalf("expected visit stamps, cookies %v", ts.cookies)
	}

	ts.do(t, http.MethodGet, "/", "", "", "")
	if ts.cookies[visit.CookieTotalVisits] != "2" {
		t.Fatalf("expected second visit, cookies %v", ts.cookies)
	}
	if ts.cookies[visit.CookieFirstVisit] != first {
		t.Fatalf("firstVisit must not change")
	}
}

func TestSaveWithoutSelectionWarns(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodGet, "/", "", "", "")

	w := ts.do(t, http.MethodPost, "/save", "note=hello", "application/x-www-form-urlencoded", gin.MIMEJSON)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	var pg view.Page
	decode(t, w, &pg)
	if pg.Alert == nil || pg.Alert.Kind != view.AlertWarning || pg.Alert.Message != session.MsgSelectFirst {
		t.Fatalf("unexpected alert %+v", pg.Alert)
	}
	if !pg.History.Empty {
		t.Fatalf("expected nothing saved")
	}
}

func TestSelectThenSave(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodGet, "/", "", "", "")

	if w := ts.form(t, "/select", url.Values{"mood": {"rainy"}}); w.Code != http.StatusOK {
		t.Fatalf("select: expected 200, got %d", w.Code)
	}
	w := ts.form(t, "/save", url.Values{"note": {"  long day  "}})
	if w.Code != http.StatusOK {
		t.Fatalf("save: expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, session.MsgSaved) || !strings.Contains(body, "long day") {
		t.Fatalf("expected saved page, got %s", body)
	}
	if !strings.Contains(body, "/chart.svg") {
		t.Fatalf("expected chart image once an entry exists")
	}
	if ts.cookies[visit.CookieLastMood] != string(mood.Rainy) {
		t.Fatalf("expected lastMood cookie, cookies %v", ts.cookies)
	}

	w = ts.do(t, http.MethodGet, "/api/moods", "", "", "")
	var got struct {
		Entries []struct {
			Date string `json:"date"`
			Mood string `json:"mood"`
			Note string `json:"note"`
		} `json:"entries"`
		Count int `json:"count"`
	}
	decode(t, w, &got)
	if got.Count != 1 || got.Entries[0].Mood != "rainy" || got.Entries[0].Note != "long day" || got.Entries[0].Date != "2024-02-01" {
		t.Fatalf("unexpected entries %+v", got)
	}

	w = ts.do(t, http.MethodGet, "/chart.svg", "", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("chart: expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "image/svg+xml") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if n := strings.Count(w.Body.String(), "<title>"); n != 1 {
		t.Fatalf("expected 1 point, got %d", n)
	}
}

func TestSelectRejectsUnknownMood(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodPost, "/select", `{"mood":"hail"}`, gin.MIMEJSON, gin.MIMEJSON)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestChartEmpty(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodGet, "/", "", "", "")
	if w := ts.do(t, http.MethodGet, "/chart.svg", "", "", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	w := ts.do(t, http.MethodGet, "/api/trend", "", "", "")
	var spec view.ChartSpec
	decode(t, w, &spec)
	if !spec.Empty() {
		t.Fatalf("expected empty trend, got %+v", spec)
	}
}

const promptText = "Would you like a daily reminder"

func TestDismissPrompt(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/", "", "", "")
	if !strings.Contains(w.Body.String(), promptText) {
		t.Fatalf("expected reminder prompt on first load")
	}
	ts.form(t, "/notifications/dismiss", url.Values{})
	if ts.cookies[visit.CookieNotificationDismissed] != "true" {
		t.Fatalf("expected dismissal cookie, cookies %v", ts.cookies)
	}
	w = ts.do(t, http.MethodGet, "/", "", "", "")
	if strings.Contains(w.Body.String(), promptText) {
		t.Fatalf("expected prompt hidden after dismissal")
	}
}

func TestEnableNotifications(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodGet, "/", "", "", "")

	w := ts.do(t, http.MethodPost, "/api/notifications/permission", `{"permission":"granted","request":true}`, gin.MIMEJSON, gin.MIMEJSON)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got struct {
		Permission string     `json:"permission"`
		Scheduled  bool       `json:"scheduled"`
		Next       *time.Time `json:"next"`
		ShowPrompt bool       `json:"showPrompt"`
		Error      string     `json:"error"`
	}
	decode(t, w, &got)
	if got.Error != "" || !got.Scheduled || got.ShowPrompt || got.Permission != string(notify.PermissionGranted) {
		t.Fatalf("unexpected response %+v", got)
	}
	if got.Next == nil || got.Next.Hour() != 19 {
		t.Fatalf("expected reminder at 19:00, got %v", got.Next)
	}

	w = ts.do(t, http.MethodGet, "/api/notifications", "", "", "")
	var polled struct {
		Notifications []notify.Notification `json:"notifications"`
	}
	decode(t, w, &polled)
	if len(polled.Notifications) != 0 {
		t.Fatalf("expected nothing queued yet, got %v", polled.Notifications)
	}

	ts.srv.Close()
	if ts.srv.page != nil {
		t.Fatalf("expected page torn down")
	}
}

type permissionResponse struct {
	Permission string `json:"permission"`
	Scheduled  bool   `json:"scheduled"`
	ShowPrompt bool   `json:"showPrompt"`
	Error      string `json:"error"`
}

func TestPermissionReportedOnLoad(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodGet, "/", "", "", "")

	w := ts.do(t, http.MethodPost, "/api/notifications/permission", `{"permission":"granted","request":false}`, gin.MIMEJSON, gin.MIMEJSON)
	var got permissionResponse
	decode(t, w, &got)
	if !got.Scheduled || got.ShowPrompt || got.Error != "" {
		t.Fatalf("expected reminder scheduled from reported grant, got %+v", got)
	}

	w = ts.do(t, http.MethodPost, "/api/notifications/permission", `{"permission":"denied","request":false}`, gin.MIMEJSON, gin.MIMEJSON)
	got = permissionResponse{}
	decode(t, w, &got)
	if got.Scheduled || got.ShowPrompt || got.Permission != string(notify.PermissionDenied) {
		t.Fatalf("expected reminder stopped after revoke, got %+v", got)
	}
	if ts.srv.page.session.Scheduler().Running() {
		t.Fatalf("expected timer cancelled")
	}
}

func TestPermissionRequiresState(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodPost, "/api/notifications/permission", `{"request":false}`, gin.MIMEJSON, gin.MIMEJSON)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestScrollLogsInteraction(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodGet, "/", "", "", "")

	w := ts.do(t, http.MethodPost, "/scroll", `{"position":240}`, gin.MIMEJSON, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	interactions := ts.srv.page.session.Activity().Interactions
	if len(interactions) == 0 {
		t.Fatalf("expected an interaction")
	}
	last := interactions[len(interactions)-1]
	if last.Type != activity.PageScroll || last.Details["scrollPosition"] != 240 {
		t.Fatalf("unexpected interaction %+v", last)
	}
}

func TestQueueNotifier(t *testing.T) {
	q := NewQueueNotifier(nil)
	if err := q.Show(notify.Reminder()); err == nil {
		t.Fatalf("expected show to fail without permission")
	}
	q.SetPermission(notify.PermissionGranted)
	for i := 0; i < maxPending+3; i++ {
		if err := q.Show(notify.Reminder()); err != nil {
			t.Fatalf("show: %v", err)
		}
	}
	if got := len(q.Drain()); got != maxPending {
		t.Fatalf("expected %d queued, got %d", maxPending, got)
	}
	if got := len(q.Drain()); got != 0 {
		t.Fatalf("expected drained queue, got %d", got)
	}
}
