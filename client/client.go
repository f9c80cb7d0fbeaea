// Package client is the API client used by the site's pages: every call has
// a fixed timeout and is retried with capped exponential backoff before a
// failure is surfaced, and a 401 can optionally resolve to "no data" instead
// of an error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kc414/model"

	"github.com/cenkalti/backoff/v4"
)

// On401 selects how an HTTP 401 response is resolved.
type On401 int

const (
	// On401Error surfaces a 401 as an error after retries are exhausted.
	On401Error On401 = iota
	// On401ReturnNil resolves a 401 to zero-value data without an error.
	On401ReturnNil
)

// StatusError is a non-2xx response, formatted "status: body".
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Client calls the site API.
type Client struct {
	baseURL         string
	httpc           *http.Client
	on401           On401
	attempts        uint64
	initialInterval time.Duration
	maxInterval     time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithOn401 sets the 401 behavior.
func WithOn401(b On401) Option {
	return func(c *Client) { c.on401 = b }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

// WithRetry overrides the attempt count and backoff intervals.
func WithRetry(attempts uint64, initial, max time.Duration) Option {
	return func(c *Client) {
		if attempts < 1 {
			attempts = 1
		}
		c.attempts = attempts
		c.initialInterval = initial
		c.maxInterval = max
	}
}

// New creates a client for the API at baseURL. Defaults: 10s per-request
// timeout, 3 attempts, backoff starting at 1s capped at 30s.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		httpc:           &http.Client{Timeout: 10 * time.Second},
		attempts:        3,
		initialInterval: time.Second,
		maxInterval:     30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doJSON performs one API call with retries. Transport errors and non-2xx
// statuses are retried alike; the original client retries both.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	op := func() error {
		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
		if err != nil {
			return backoff.Permanent(err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Cache-Control", "no-cache")

		resp, err := c.httpc.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusUnauthorized && c.on401 == On401ReturnNil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			text, _ := io.ReadAll(resp.Body)
			msg := strings.TrimSpace(string(text))
			if msg == "" {
				msg = resp.Status
			}
			return &StatusError{Code: resp.StatusCode, Message: msg}
		}
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialInterval
	bo.MaxInterval = c.maxInterval

	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, c.attempts-1), ctx))
}

// Products fetches the full product catalog.
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	err := c.doJSON(ctx, http.MethodGet, "/api/products", nil, &out)
	return out, err
}

// Product fetches a single product. With On401ReturnNil the result may be
// nil without an error.
func (c *Client) Product(ctx context.Context, id int64) (*model.Product, error) {
	var out *model.Product
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &out)
	return out, err
}

// Tracks fetches the full track catalog.
func (c *Client) Tracks(ctx context.Context) ([]model.Track, error) {
	var out []model.Track
	err := c.doJSON(ctx, http.MethodGet, "/api/tracks", nil, &out)
	return out, err
}

// Track fetches a single track.
func (c *Client) Track(ctx context.Context, id int64) (*model.Track, error) {
	var out *model.Track
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/tracks/%d", id), nil, &out)
	return out, err
}

// RelatedProducts fetches the products tied to a track.
func (c *Client) RelatedProducts(ctx context.Context, trackID int64) ([]model.Product, error) {
	var out []model.Product
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/tracks/%d/products", trackID), nil, &out)
	return out, err
}

// BookingInput is the booking form payload.
type BookingInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Date    string `json:"date"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// CreateBooking submits a booking request.
func (c *Client) CreateBooking(ctx context.Context, in BookingInput) (*model.Booking, error) {
	var out model.Booking
	if err := c.doJSON(ctx, http.MethodPost, "/api/bookings", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ContactInput is the contact form payload.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// CreateContact submits a contact message.
func (c *Client) CreateContact(ctx context.Context, in ContactInput) (*model.ContactMessage, error) {
	var out model.ContactMessage
	if err := c.doJSON(ctx, http.MethodPost, "/api/contact", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OrderInput is the checkout payload: customer fields plus the cart snapshot.
type OrderInput struct {
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	Phone   string           `json:"phone,omitempty"`
	Address string           `json:"address"`
	Notes   string           `json:"notes,omitempty"`
	Items   []model.CartItem `json:"items"`
}

// OrderReceipt is the server's acknowledgement of an order submission.
type OrderReceipt struct {
	Message   string `json:"message"`
	OrderID   string `json:"orderId"`
	Timestamp string `json:"timestamp"`
}

// SubmitOrder submits a checkout. On success the caller clears its cart.
func (c *Client) SubmitOrder(ctx context.Context, in OrderInput) (*OrderReceipt, error) {
	var out OrderReceipt
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
