package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/remindhq/reminderd/internal/domain"
	"github.com/remindhq/reminderd/internal/httpserver/deps"
	"github.com/remindhq/reminderd/internal/httpserver/routes"
	"github.com/remindhq/reminderd/internal/logger"
	"github.com/remindhq/reminderd/internal/store"
	"github.com/remindhq/reminderd/internal/store/memory"
)

// clock is an adjustable test clock.
type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type env struct {
	router    http.Handler
	reminders *memory.ReminderStore
	status    *memory.StatusStore
	clock     *clock
}

func newEnv(t *testing.T) *env {
	t.Helper()

	e := &env{
		reminders: memory.NewReminderStore(),
		status:    memory.NewStatusStore(),
		clock:     &clock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}

	d := deps.Deps{
		Logger:       logger.New("error", false),
		StartTime:    e.clock.now,
		TimeNow:      e.clock.Now,
		Reminders:    e.reminders,
		StatusChecks: e.status,
	}

	r := chi.NewRouter()
	routes.RegisterAll(r, d)
	e.router = r
	return e
}

func (e *env) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rd *bytes.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeReminder(t *testing.T, body []byte) domain.Reminder {
	t.Helper()
	var r domain.Reminder
	if err := json.Unmarshal(body, &r); err != nil {
		t.Fatalf("failed to decode reminder: %v\nbody: %s", err, body)
	}
	return r
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var e struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		t.Fatalf("failed to decode error body: %v\nbody: %s", err, body)
	}
	return e.Error.Code
}

func TestRoot(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/api/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp["message"] != "Smart Reminders API is running!" {
		t.Errorf("message = %q, want banner", resp["message"])
	}
}

func TestHealthShape(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even when degraded", w.Code)
	}

	var resp struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
		Service   string    `json:"service"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	// No Redis client in the test env, so the probe must report degraded.
	if resp.Status != "degraded" {
		t.Errorf("status = %q, want degraded without a store connection", resp.Status)
	}
	if resp.Service != "Smart Reminders API" {
		t.Errorf("service = %q", resp.Service)
	}
	if !resp.Timestamp.Equal(e.clock.now) {
		t.Errorf("timestamp = %v, want %v", resp.Timestamp, e.clock.now)
	}
}

func TestCreateReminder(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/reminders",
		`{"text": "Take a break and stretch!", "interval_minutes": 5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	r := decodeReminder(t, w.Body.Bytes())
	if r.ID == "" {
		t.Error("returned reminder has empty id")
	}
	if r.Text != "Take a break and stretch!" {
		t.Errorf("text = %q, want input echoed", r.Text)
	}
	if r.IntervalMinutes != 5 {
		t.Errorf("interval_minutes = %d, want 5", r.IntervalMinutes)
	}
	if r.IsActive {
		t.Error("is_active should default to false")
	}
	if !r.CreatedAt.Equal(r.UpdatedAt) {
		t.Errorf("created_at %v != updated_at %v at creation", r.CreatedAt, r.UpdatedAt)
	}

	// Stored record matches the response.
	stored, err := e.reminders.Get(context.Background(), r.ID)
	if err != nil {
		t.Fatalf("created reminder not persisted: %v", err)
	}
	if stored.Text != r.Text {
		t.Errorf("stored text = %q, want %q", stored.Text, r.Text)
	}
}

func TestCreateReminderFreshIDs(t *testing.T) {
	e := newEnv(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		w := e.do(t, http.MethodPost, "/api/reminders", `{"text": "x", "interval_minutes": 1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		r := decodeReminder(t, w.Body.Bytes())
		if seen[r.ID] {
			t.Fatalf("id %s issued twice", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestCreateReminderValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing interval_minutes", body: `{"text": "stretch"}`},
		{name: "missing text", body: `{"interval_minutes": 5}`},
		{name: "empty object", body: `{}`},
		{name: "wrong type for interval_minutes", body: `{"text": "x", "interval_minutes": "five"}`},
		{name: "wrong type for text", body: `{"text": 12, "interval_minutes": 5}`},
		{name: "malformed json", body: `{"text": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)

			w := e.do(t, http.MethodPost, "/api/reminders", tt.body)
			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422", w.Code)
			}
			if code := errorCode(t, w.Body.Bytes()); code != "VALIDATION_ERROR" {
				t.Errorf("error code = %q, want VALIDATION_ERROR", code)
			}

			// Nothing may reach storage on a rejected create.
			all, err := e.reminders.All(context.Background())
			if err != nil {
				t.Fatalf("All() error = %v", err)
			}
			if len(all) != 0 {
				t.Errorf("rejected create persisted %d records", len(all))
			}
		})
	}
}

func TestListRemindersAlwaysArray(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/api/reminders", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("empty list body = %q, want []", body)
	}

	e.do(t, http.MethodPost, "/api/reminders", `{"text": "a", "interval_minutes": 1}`)
	e.do(t, http.MethodPost, "/api/reminders", `{"text": "b", "interval_minutes": 2}`)

	w = e.do(t, http.MethodGet, "/api/reminders", "")
	var list []domain.Reminder
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("list is not a JSON array: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("list has %d entries, want 2", len(list))
	}
}

func TestGetReminder(t *testing.T) {
	e := newEnv(t)

	created := decodeReminder(t, e.do(t, http.MethodPost, "/api/reminders",
		`{"text": "stretch", "interval_minutes": 5}`).Body.Bytes())

	w := e.do(t, http.MethodGet, "/api/reminders/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	got := decodeReminder(t, w.Body.Bytes())
	if got.ID != created.ID || got.Text != "stretch" {
		t.Errorf("got %+v, want created record", got)
	}
}

func TestGetReminderNotFound(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/api/reminders/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if code := errorCode(t, w.Body.Bytes()); code != "NOT_FOUND" {
		t.Errorf("error code = %q, want NOT_FOUND", code)
	}
}

func TestUpdateReminderPartial(t *testing.T) {
	e := newEnv(t)

	created := decodeReminder(t, e.do(t, http.MethodPost, "/api/reminders",
		`{"text": "stretch", "interval_minutes": 5}`).Body.Bytes())

	e.clock.Advance(time.Minute)

	w := e.do(t, http.MethodPut, "/api/reminders/"+created.ID, `{"interval_minutes": 10}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	updated := decodeReminder(t, w.Body.Bytes())
	if updated.IntervalMinutes != 10 {
		t.Errorf("interval_minutes = %d, want 10", updated.IntervalMinutes)
	}
	if updated.Text != "stretch" {
		t.Errorf("text = %q, must be untouched by partial update", updated.Text)
	}
	if updated.IsActive {
		t.Error("is_active must be untouched by partial update")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("updated_at = %v, want strictly after %v", updated.UpdatedAt, created.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("created_at must never change")
	}
}

func TestUpdateReminderActivate(t *testing.T) {
	e := newEnv(t)

	created := decodeReminder(t, e.do(t, http.MethodPost, "/api/reminders",
		`{"text": "stretch", "interval_minutes": 5}`).Body.Bytes())

	w := e.do(t, http.MethodPut, "/api/reminders/"+created.ID, `{"is_active": true}`)
	updated := decodeReminder(t, w.Body.Bytes())
	if !updated.IsActive {
		t.Error("is_active = false, want true after activation")
	}
}

func TestUpdateReminderNotFound(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPut, "/api/reminders/nope", `{"text": "x"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestUpdateReminderMalformedBody(t *testing.T) {
	e := newEnv(t)

	created := decodeReminder(t, e.do(t, http.MethodPost, "/api/reminders",
		`{"text": "stretch", "interval_minutes": 5}`).Body.Bytes())

	w := e.do(t, http.MethodPut, "/api/reminders/"+created.ID, `{"is_active": "yes"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestDeleteReminder(t *testing.T) {
	e := newEnv(t)

	created := decodeReminder(t, e.do(t, http.MethodPost, "/api/reminders",
		`{"text": "stretch", "interval_minutes": 5}`).Body.Bytes())

	w := e.do(t, http.MethodDelete, "/api/reminders/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp["message"] != "Reminder deleted successfully" {
		t.Errorf("message = %q", resp["message"])
	}

	// Fetching a deleted id is 404; deleting it again is 404.
	if w := e.do(t, http.MethodGet, "/api/reminders/"+created.ID, ""); w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", w.Code)
	}
	if w := e.do(t, http.MethodDelete, "/api/reminders/"+created.ID, ""); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestCreateStatusCheck(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/status", `{"client_name": "probe-1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var sc domain.StatusCheck
	if err := json.Unmarshal(w.Body.Bytes(), &sc); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if sc.ID == "" || sc.ClientName != "probe-1" {
		t.Errorf("status check = %+v", sc)
	}
	if !sc.Timestamp.Equal(e.clock.now) {
		t.Errorf("timestamp = %v, want %v", sc.Timestamp, e.clock.now)
	}
}

func TestCreateStatusCheckValidation(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/status", `{}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestListStatusChecks(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/api/status", "")
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("empty list body = %q, want []", body)
	}

	e.do(t, http.MethodPost, "/api/status", `{"client_name": "probe-1"}`)

	w = e.do(t, http.MethodGet, "/api/status", "")
	var list []domain.StatusCheck
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("list is not a JSON array: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("list has %d entries, want 1", len(list))
	}
}

// failingReminderStore simulates a store whose writes are rejected.
type failingReminderStore struct {
	memory.ReminderStore
}

func (f *failingReminderStore) Save(context.Context, *domain.Reminder) error {
	return store.ErrWriteFailed
}

func (f *failingReminderStore) All(context.Context) ([]*domain.Reminder, error) {
	return nil, errors.New("connection reset")
}

func TestStorageFailuresAre500(t *testing.T) {
	d := deps.Deps{
		Logger:       logger.New("error", false),
		TimeNow:      func() time.Time { return time.Now().UTC() },
		Reminders:    &failingReminderStore{},
		StatusChecks: memory.NewStatusStore(),
	}
	r := chi.NewRouter()
	routes.RegisterAll(r, d)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "create", method: http.MethodPost, path: "/api/reminders", body: `{"text": "x", "interval_minutes": 1}`},
		{name: "list", method: http.MethodGet, path: "/api/reminders", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", w.Code)
			}
			if code := errorCode(t, w.Body.Bytes()); code != "INTERNAL_ERROR" {
				t.Errorf("error code = %q, want INTERNAL_ERROR", code)
			}
			if strings.Contains(w.Body.String(), "connection reset") {
				t.Error("internal cause leaked to the client")
			}
		})
	}
}
