package availability

import (
	"context"
	"time"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
)

// EventSource is the external calendar boundary. Implementations return
// every event overlapping [timeMin, timeMax), with recurrences already
// expanded into single events.
type EventSource interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]models.CalendarEvent, error)
}

// Service computes blocked-slot sets for availability queries.
type Service interface {
	// MonthlyBlockedSlots returns the blocked set for a whole month.
	// Month is one-based (January = 1); the query window runs from the
	// first of the month at 00:00 UTC to the first of the next month,
	// exclusive. Keys are expressed in loc's wall-clock frame.
	MonthlyBlockedSlots(ctx context.Context, year int, month time.Month, loc *time.Location) (models.BlockedSlotSet, error)

	// BlockedSlotsBetween returns the blocked set derived from events
	// overlapping an arbitrary UTC window.
	BlockedSlotsBetween(ctx context.Context, timeMin, timeMax time.Time, loc *time.Location) (models.BlockedSlotSet, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Events       EventSource
	Buffers      models.BufferConfig
	Hours        models.WorkingHours
	FetchTimeout time.Duration
}
