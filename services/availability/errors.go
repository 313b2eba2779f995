package availability

import (
	"errors"
	"fmt"
)

const (
	CodeInvalidTimezone     = "invalidTimezone"
	CodeCalendarUnavailable = "calendarUnavailable"
)

// Error is a coded availability failure.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidTimezoneError(name string) error {
	return &Error{
		Code:    CodeInvalidTimezone,
		Message: fmt.Sprintf("unrecognized timezone %q", name),
	}
}

func NewCalendarUnavailableError(cause error) error {
	return &Error{
		Code:    CodeCalendarUnavailable,
		Message: fmt.Sprintf("calendar fetch failed: %v", cause),
	}
}

func hasCode(err error, code string) bool {
	var availErr *Error
	if errors.As(err, &availErr) {
		return availErr.Code == code
	}
	return false
}

func IsInvalidTimezone(err error) bool {
	return hasCode(err, CodeInvalidTimezone)
}

func IsCalendarUnavailable(err error) bool {
	return hasCode(err, CodeCalendarUnavailable)
}
