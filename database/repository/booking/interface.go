package bookingRepo

import (
	"errors"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
)

// ErrSlotTaken is returned by Insert when a committed booking already
// holds the same slot key. Detection is atomic with the write.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository is the committed-bookings store. Insert must behave as
// an atomic compare-and-insert on the slot key so that concurrent attempts
// for the same slot resolve to exactly one success; FindByKey alone is
// advisory.
type BookingRepository interface {
	// FindByKey returns the booking holding the key, or nil when free.
	FindByKey(key models.TimeSlotKey) (*models.Booking, error)
	FindByID(id string) (*models.Booking, error)
	Insert(booking *models.Booking) error
	// SetExternalRefs backfills the calendar event id and conferencing
	// link once the side-effect worker has created them.
	SetExternalRefs(id, calendarEventID, meetLink string) error
	All() ([]models.Booking, error)
}
