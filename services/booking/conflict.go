package booking

import (
	"fmt"
	"time"

	bookingRepo "github.com/black-sheep-marketing/blacksheep-calendar/database/repository/booking"
	"github.com/black-sheep-marketing/blacksheep-calendar/models"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/availability"
)

// ConflictChecker decides whether a candidate instant may be booked. It
// reads the store but never writes it; the caller persists the booking
// only on an admit decision.
type ConflictChecker struct {
	Store        bookingRepo.BookingRepository
	MinLeadHours int
	Now          func() time.Time // defaults to time.Now
}

// CheckAndReserve applies the admission rules in order: the lead-time
// gate, then a slot-key collision check against committed bookings. On
// admit it returns the canonical key the booking must be stored under.
//
// The caller still re-verifies the live calendar block set before
// inserting, and the store's atomic insert remains the final arbiter for
// races between concurrent admits.
func (c *ConflictChecker) CheckAndReserve(candidate time.Time, loc *time.Location) (models.TimeSlotKey, error) {
	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}
	if candidate.Before(now.Add(time.Duration(c.MinLeadHours) * time.Hour)) {
		return models.TimeSlotKey{}, NewTooSoonError(c.MinLeadHours)
	}

	key := availability.KeyFor(availability.Project(candidate, loc))

	existing, err := c.Store.FindByKey(key)
	if err != nil {
		return models.TimeSlotKey{}, fmt.Errorf("conflict check failed: %w", err)
	}
	if existing != nil {
		return models.TimeSlotKey{}, NewSlotTakenError(key)
	}

	return key, nil
}
