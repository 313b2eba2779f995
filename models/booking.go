package models

import "time"

// Booking represents a committed demo-call reservation.
type Booking struct {
	ID      string `bson:"id" json:"id"` // UUID assigned at admission
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone" json:"phone"`
	Company string `bson:"company,omitempty" json:"company,omitempty"`
	Notes   string `bson:"notes,omitempty" json:"notes,omitempty"`

	Start    time.Time   `bson:"start" json:"start"`       // requested instant
	Key      TimeSlotKey `bson:"key" json:"key"`           // canonical slot key derived from Start
	Timezone string      `bson:"timezone" json:"timezone"` // zone the key was derived in

	// Display strings exactly as shown to the visitor in the confirmation.
	DisplayDate string `bson:"display_date" json:"display_date"` // e.g. "Monday, March 10 2025"
	DisplayTime string `bson:"display_time" json:"display_time"` // e.g. "9:00 AM MST"

	// External references populated by the side-effect worker once the
	// calendar insert completes. Opaque pass-through data.
	CalendarEventID string `bson:"calendar_event_id,omitempty" json:"calendar_event_id,omitempty"`
	MeetLink        string `bson:"meet_link,omitempty" json:"meet_link,omitempty"`

	Status    string    `bson:"status" json:"status"` // "confirmed"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// BookingRequest is the payload a visitor submits from the booking widget.
// Start must be an RFC 3339 instant; Timezone is optional and falls back to
// the configured default zone when absent or unrecognized.
type BookingRequest struct {
	Name     string    `json:"name" binding:"required"`
	Email    string    `json:"email" binding:"required,email"`
	Phone    string    `json:"phone" binding:"required"`
	Company  string    `json:"company"`
	Notes    string    `json:"notes"`
	Start    time.Time `json:"start" binding:"required"`
	Timezone string    `json:"timezone"`
}
