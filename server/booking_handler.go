package server

import (
	"errors"
	"fmt"
	"net/http"

	"kc414/logger"
	"kc414/model"
)

// CreateBookingHandler stores a booking and notifies the operator and the
// submitter by email. The booking is durable in memory regardless of
// notification outcome, but a failed (or unconfigured) send still answers
// 500 — the caller may see an error for a booking that was recorded. This
// asymmetry with order submission is observed production behavior and is
// kept on purpose; see DESIGN.md.
func (h *APIHandler) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if !h.decodeAndValidate(w, r, &req, "Invalid booking data") {
		return
	}

	booking := h.bookingRepo.CreateBooking(model.Booking{
		Name:    req.Name,
		Email:   req.Email,
		Date:    req.Date,
		Type:    req.Type,
		Message: req.Message,
	})

	if err := h.notifyBooking(booking); err != nil {
		logger.Error("booking notification failed",
			logger.Int64("bookingId", booking.ID),
			logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Booking saved but email notification failed")
		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

// notifyBooking sends the operator notification and the submitter
// confirmation for a stored booking.
func (h *APIHandler) notifyBooking(b *model.Booking) error {
	if !h.mailer.Enabled() {
		return errors.New("mail credentials not configured")
	}

	operatorBody := fmt.Sprintf(`New booking request received:

Name: %s
Email: %s
Date: %s
Service Type: %s
Message: %s
`, b.Name, b.Email, b.Date, b.Type, b.Message)

	if err := h.mailer.Send(h.cfg.RecipientEmail, "New Booking Request", operatorBody); err != nil {
		return err
	}

	confirmationBody := fmt.Sprintf(`Thank you for booking with KC414!

We have received your booking request for:
Date: %s
Service Type: %s

We will review your request and get back to you soon.

Best regards,
KC414 Team
`, b.Date, b.Type)

	return h.mailer.Send(b.Email, "Booking Confirmation - KC414", confirmationBody)
}

// CreateContactHandler stores a contact message. No notification is sent.
func (h *APIHandler) CreateContactHandler(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !h.decodeAndValidate(w, r, &req, "Invalid contact data") {
		return
	}

	message := h.bookingRepo.CreateContactMessage(model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})

	writeJSON(w, http.StatusCreated, message)
}
