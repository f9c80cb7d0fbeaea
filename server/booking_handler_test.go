package server

import (
	"net/http"
	"strings"
	"testing"

	"kc414/model"
)

func validBookingBody() map[string]any {
	return map[string]any{
		"name":    "Event Promoter",
		"email":   "promoter@example.com",
		"date":    "2026-10-31",
		"type":    "club-night",
		"message": "Halloween warehouse party, 4 hour set",
	}
}

func TestCreateBooking(t *testing.T) {
	env := newTestEnv(&fakeMailer{})

	w := env.postJSON(t, "/api/bookings", validBookingBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	booking := decodeBody[model.Booking](t, w)
	if booking.ID != 1 {
		t.Errorf("booking id = %d, want 1", booking.ID)
	}

	sent := env.mailer.sentMessages()
	if len(sent) != 2 {
		t.Fatalf("expected operator + confirmation mail, got %d", len(sent))
	}
	if sent[0].to != "booking@kc414.example" || sent[0].subject != "New Booking Request" {
		t.Errorf("unexpected operator mail: %+v", sent[0])
	}
	if sent[1].to != "promoter@example.com" {
		t.Errorf("confirmation went to %q, want submitter", sent[1].to)
	}
	if !strings.Contains(sent[0].body, "club-night") {
		t.Errorf("operator mail missing service type: %q", sent[0].body)
	}
}

func TestCreateBookingInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"Missing Email", map[string]any{"name": "X", "date": "2026-01-01", "type": "event", "message": "hi"}},
		{"Empty Field", map[string]any{"name": "X", "email": "", "date": "2026-01-01", "type": "event", "message": "hi"}},
		{"Invalid JSON", []byte("not-json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(&fakeMailer{})

			w := env.postJSON(t, "/api/bookings", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			// Validation failures must never create a record.
			if n := env.bookingRepo.BookingCount(); n != 0 {
				t.Errorf("booking count = %d, want 0", n)
			}
			if len(env.mailer.sentMessages()) != 0 {
				t.Error("no mail may be sent for a rejected booking")
			}
		})
	}
}

// A failed notification answers 500 even though the booking was stored. The
// record stays durable in memory; only the response reports failure.
func TestCreateBookingMailFailure(t *testing.T) {
	env := newTestEnv(&fakeMailer{failSend: true})

	w := env.postJSON(t, "/api/bookings", validBookingBody())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	body := decodeBody[map[string]string](t, w)
	if body["message"] != "Booking saved but email notification failed" {
		t.Errorf("unexpected message %q", body["message"])
	}
	if n := env.bookingRepo.BookingCount(); n != 1 {
		t.Errorf("booking count = %d, want 1 (stored despite mail failure)", n)
	}
}

// Missing mail credentials behave like a notification failure for bookings.
func TestCreateBookingMailDisabled(t *testing.T) {
	env := newTestEnv(&fakeMailer{disabled: true})

	w := env.postJSON(t, "/api/bookings", validBookingBody())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if n := env.bookingRepo.BookingCount(); n != 1 {
		t.Errorf("booking count = %d, want 1", n)
	}
}

func TestCreateContactMessage(t *testing.T) {
	env := newTestEnv(&fakeMailer{})

	w := env.postJSON(t, "/api/contact", map[string]any{
		"name":    "Fan",
		"email":   "fan@example.com",
		"message": "Loved the set last weekend!",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	msg := decodeBody[model.ContactMessage](t, w)
	if msg.ID != 1 {
		t.Errorf("message id = %d, want 1", msg.ID)
	}
	// Contact messages trigger no notification.
	if len(env.mailer.sentMessages()) != 0 {
		t.Error("contact submission must not send mail")
	}
}

func TestCreateContactMessageInvalid(t *testing.T) {
	env := newTestEnv(&fakeMailer{})

	w := env.postJSON(t, "/api/contact", map[string]any{"name": "Fan", "email": "fan@example.com"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if n := env.bookingRepo.ContactMessageCount(); n != 0 {
		t.Errorf("message count = %d, want 0", n)
	}
}
