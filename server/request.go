package server

import (
	"encoding/json"
	"net/http"

	"kc414/model"
)

// bookingRequest mirrors the booking form. Every field is required; the
// schema check runs before any store access.
type bookingRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Type    string `json:"type" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// contactRequest mirrors the contact form.
type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// orderRequest is the checkout submission: customer fields plus the cart
// snapshot. Total is accepted but never trusted; the server recomputes it
// from the item prices.
type orderRequest struct {
	Name    string           `json:"name" validate:"required"`
	Email   string           `json:"email" validate:"required"`
	Phone   string           `json:"phone"`
	Address string           `json:"address" validate:"required"`
	Notes   string           `json:"notes"`
	Items   []model.CartItem `json:"items"`
	Total   json.Number      `json:"total"`
}

// decodeAndValidate parses the request body into dst and checks its validate
// tags. On failure it answers 400 with a generic message and returns false;
// no field-level detail is exposed to the caller.
func (h *APIHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any, invalidMsg string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, invalidMsg)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, invalidMsg)
		return false
	}
	return true
}
