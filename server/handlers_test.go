package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"kc414/config"
	"kc414/repository"
)

// fakeMailer records sent mail and can be told to fail or report itself
// unconfigured.
type fakeMailer struct {
	mu       sync.Mutex
	disabled bool
	failSend bool
	sent     []sentMail
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.failSend {
		return errors.New("smtp: connection refused")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (m *fakeMailer) Enabled() bool { return !m.disabled }

func (m *fakeMailer) sentMessages() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

type testEnv struct {
	handler     *APIHandler
	router      http.Handler
	bookingRepo repository.BookingRepository
	mailer      *fakeMailer
}

func newTestEnv(mailer *fakeMailer) *testEnv {
	cfg := &config.Config{
		FrontendURL:    "*",
		RecipientEmail: "booking@kc414.example",
	}
	bookingRepo := repository.NewMemoryBookingRepository()
	h := NewAPIHandler(repository.NewMemoryCatalogRepository(), bookingRepo, mailer, cfg)
	return &testEnv{
		handler:     h,
		router:      h.Router(),
		bookingRepo: bookingRepo,
		mailer:      mailer,
	}
}

func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postJSON(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if raw, ok := body.([]byte); ok {
		buf.Write(raw)
	} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func TestPreflightShortCircuits(t *testing.T) {
	env := newTestEnv(&fakeMailer{})

	req := httptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", "https://kc414-frontend.example")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for preflight, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("preflight response must have no body, got %q", w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, PUT, DELETE, PATCH, OPTIONS" {
		t.Errorf("unexpected Access-Control-Allow-Methods %q", got)
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(&fakeMailer{})

	w := env.get(t, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
