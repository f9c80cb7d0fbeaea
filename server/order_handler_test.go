package server

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"kc414/client"
)

func orderItem(id int64, name, price, size string) map[string]any {
	return map[string]any{
		"id":           id,
		"name":         name,
		"price":        price,
		"selectedSize": size,
	}
}

func validOrderBody() map[string]any {
	return map[string]any{
		"name":    "Buyer",
		"email":   "buyer@example.com",
		"address": "414 Example St",
		"items": []map[string]any{
			orderItem(1, "Summer Nights Tee", "10.00", "M"),
			orderItem(2, "City Lights Hoodie", "15.00", "L"),
		},
	}
}

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(&fakeMailer{})

	w := env.postJSON(t, "/api/orders", validOrderBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	receipt := decodeBody[client.OrderReceipt](t, w)
	if !strings.HasPrefix(receipt.OrderID, "order-") {
		t.Errorf("order id %q missing order- prefix", receipt.OrderID)
	}
	if _, err := time.Parse(time.RFC3339, receipt.Timestamp); err != nil {
		t.Errorf("timestamp %q is not ISO-8601: %v", receipt.Timestamp, err)
	}
}

// The total in the notification is computed from the item prices; a
// client-supplied total is ignored even when it disagrees.
func TestCreateOrderIgnoresClientTotal(t *testing.T) {
	env := newTestEnv(&fakeMailer{})

	body := validOrderBody()
	body["total"] = 1 // falsified

	w := env.postJSON(t, "/api/orders", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	sent := env.mailer.sentMessages()
	if len(sent) != 2 {
		t.Fatalf("expected operator + confirmation mail, got %d", len(sent))
	}
	if !strings.Contains(sent[0].body, "Total Order Value: $25.00") {
		t.Errorf("operator mail total not recomputed server-side:\n%s", sent[0].body)
	}
	if !strings.Contains(sent[0].body, "- Summer Nights Tee (Size: M) - $10.00") {
		t.Errorf("operator mail missing line item:\n%s", sent[0].body)
	}
}

func TestCreateOrderSizeDefaultsToNA(t *testing.T) {
	env := newTestEnv(&fakeMailer{})

	body := validOrderBody()
	body["items"] = []map[string]any{orderItem(4, "Tour Poster", "14.99", "")}

	w := env.postJSON(t, "/api/orders", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	sent := env.mailer.sentMessages()
	if len(sent) == 0 || !strings.Contains(sent[0].body, "(Size: N/A)") {
		t.Error("missing size should render as N/A in the summary")
	}
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	env := newTestEnv(&fakeMailer{})

	body := validOrderBody()
	body["items"] = []map[string]any{}

	w := env.postJSON(t, "/api/orders", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty items, got %d", w.Code)
	}
	resp := decodeBody[map[string]string](t, w)
	if resp["message"] != "Empty order" {
		t.Errorf("unexpected message %q", resp["message"])
	}
	if len(env.mailer.sentMessages()) != 0 {
		t.Error("no mail may be sent for a rejected order")
	}
}

func TestCreateOrderRejectsMissingFields(t *testing.T) {
	for _, field := range []string{"name", "email", "address"} {
		t.Run(field, func(t *testing.T) {
			env := newTestEnv(&fakeMailer{})

			body := validOrderBody()
			delete(body, field)

			w := env.postJSON(t, "/api/orders", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("missing %s: expected 400, got %d", field, w.Code)
			}
		})
	}
}

// Order acceptance is not rolled back on mail failure; the send is logged
// and swallowed. This intentionally differs from bookings.
func TestCreateOrderMailFailureStillAccepted(t *testing.T) {
	env := newTestEnv(&fakeMailer{failSend: true})

	w := env.postJSON(t, "/api/orders", validOrderBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 despite mail failure, got %d", w.Code)
	}
}

func TestCreateOrderMailDisabledStillAccepted(t *testing.T) {
	env := newTestEnv(&fakeMailer{disabled: true})

	w := env.postJSON(t, "/api/orders", validOrderBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 without mail configured, got %d", w.Code)
	}
	if len(env.mailer.sentMessages()) != 0 {
		t.Error("disabled mailer must not be invoked")
	}
}

func TestCreateOrderUnparseablePriceCountsZero(t *testing.T) {
	env := newTestEnv(&fakeMailer{})

	body := validOrderBody()
	body["items"] = []map[string]any{
		orderItem(1, "Summer Nights Tee", "10.00", "M"),
		orderItem(2, "Broken", "not-a-price", "L"),
	}

	w := env.postJSON(t, "/api/orders", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	sent := env.mailer.sentMessages()
	if len(sent) == 0 || !strings.Contains(sent[0].body, "Total Order Value: $10.00") {
		t.Error("unparseable price must contribute nothing to the total")
	}
}
