package calendar

import (
	"context"
	"time"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
)

// Service is the external calendar collaborator: the read side feeds
// availability computation, the write side records committed bookings so
// they block future availability queries.
type Service interface {
	// ListEvents returns every event overlapping [timeMin, timeMax),
	// recurrences expanded, malformed entries dropped.
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]models.CalendarEvent, error)

	// CreateBookingEvent writes a booking into the calendar and returns
	// the created event id and conferencing link.
	CreateBookingEvent(ctx context.Context, booking models.Booking) (eventID, meetLink string, err error)
}
