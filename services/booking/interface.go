package booking

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	bookingRepo "github.com/black-sheep-marketing/blacksheep-calendar/database/repository/booking"
	"github.com/black-sheep-marketing/blacksheep-calendar/models"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/availability"
)

// Service handles demo-call booking admission and orchestration.
type Service interface {
	BookDemoCall(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
}

// Enqueuer dispatches background tasks; *asynq.Client satisfies it.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Store        bookingRepo.BookingRepository
	Availability availability.Service
	Checker      *ConflictChecker
	Tasks        Enqueuer
	DefaultZone  string
	// ReminderLead is how long before the call the reminder email fires.
	// Zero means one hour.
	ReminderLead time.Duration
}
