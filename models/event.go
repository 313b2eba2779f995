package models

import "time"

// CalendarEvent is one entry read from the external calendar, already
// normalized: either a timed event with absolute start/end instants, or an
// all-day event carrying calendar dates only. All-day events have no
// intrinsic timezone; they are interpreted in whichever zone the caller
// requests availability in.
type CalendarEvent struct {
	ID      string
	Summary string

	// Timed events.
	Start time.Time
	End   time.Time

	// All-day events. EndDate is exclusive, mirroring the provider's
	// convention (a one-day event has EndDate = StartDate + 1 day).
	AllDay    bool
	StartDate string // "2006-01-02"
	EndDate   string // "2006-01-02"
}
