package model

// Booking is a request to engage the artist for a service (DJ set, event,
// production work). Bookings are write-only through the API.
type Booking struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Date    string `json:"date"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
