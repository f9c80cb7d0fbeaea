package repository

import (
	"sync"

	"kc414/model"
)

// BookingRepository defines insert-only access to bookings and contact
// messages. Records are never read back, updated, or deleted through the API;
// the count accessors exist for diagnostics and tests.
type BookingRepository interface {
	CreateBooking(b model.Booking) *model.Booking
	CreateContactMessage(m model.ContactMessage) *model.ContactMessage
	BookingCount() int
	ContactMessageCount() int
}

// memoryBookingRepository implements BookingRepository with process-local maps.
// State does not survive a restart.
type memoryBookingRepository struct {
	mu            sync.Mutex
	bookings      map[int64]*model.Booking
	messages      map[int64]*model.ContactMessage
	nextBookingID int64
	nextMessageID int64
}

// NewMemoryBookingRepository creates an empty booking repository. Ids start
// at 1 per entity type and are never reused.
func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{
		bookings:      make(map[int64]*model.Booking),
		messages:      make(map[int64]*model.ContactMessage),
		nextBookingID: 1,
		nextMessageID: 1,
	}
}

// CreateBooking assigns the next booking id, stores the record, and returns
// it. There is no duplicate detection.
func (r *memoryBookingRepository) CreateBooking(b model.Booking) *model.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.nextBookingID
	r.nextBookingID++
	r.bookings[b.ID] = &b
	return &b
}

// CreateContactMessage assigns the next message id, stores the record, and
// returns it.
func (r *memoryBookingRepository) CreateContactMessage(m model.ContactMessage) *model.ContactMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.nextMessageID
	r.nextMessageID++
	r.messages[m.ID] = &m
	return &m
}

func (r *memoryBookingRepository) BookingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}

func (r *memoryBookingRepository) ContactMessageCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}
