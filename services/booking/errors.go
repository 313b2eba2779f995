package booking

import (
	"errors"
	"fmt"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
)

const (
	CodeTooSoon   = "tooSoon"
	CodeSlotTaken = "slotTaken"
)

// BookingError is a coded admission rejection. Rejections are user-facing
// outcomes, not systemic failures.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewTooSoonError(minLeadHours int) error {
	return &BookingError{
		Code:    CodeTooSoon,
		Message: fmt.Sprintf("bookings must be made at least %d hours in advance", minLeadHours),
	}
}

func NewSlotTakenError(key models.TimeSlotKey) error {
	return &BookingError{
		Code:    CodeSlotTaken,
		Message: fmt.Sprintf("slot %s is already booked", key),
	}
}

func hasCode(err error, code string) bool {
	var bookingErr *BookingError
	if errors.As(err, &bookingErr) {
		return bookingErr.Code == code
	}
	return false
}

func IsTooSoon(err error) bool {
	return hasCode(err, CodeTooSoon)
}

func IsSlotTaken(err error) bool {
	return hasCode(err, CodeSlotTaken)
}
