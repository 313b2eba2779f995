package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "github.com/black-sheep-marketing/blacksheep-calendar/database/repository/booking"
	"github.com/black-sheep-marketing/blacksheep-calendar/models"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/availability"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/tasks"
	"github.com/black-sheep-marketing/blacksheep-calendar/utils"
)

// calendarRecheckPad bounds the live calendar window consulted right before
// admission. A single event body plus buffers never reaches further than a
// day from the requested start.
const calendarRecheckPad = 24 * time.Hour

// BookDemoCall admits a booking request. It verifies lead time and store
// state through the conflict checker, re-reads the live calendar for the
// slot, persists the booking, and queues the side-effect pipeline. The
// unique slot index makes the insert the final arbiter under concurrency.
func (s *DefaultBookingService) BookDemoCall(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	loc, err := availability.ResolveZone(req.Timezone, s.DefaultZone)
	if err != nil {
		return nil, err
	}

	key, err := s.Checker.CheckAndReserve(req.Start, loc)
	if err != nil {
		return nil, err
	}

	blocked, err := s.Availability.BlockedSlotsBetween(ctx,
		req.Start.UTC().Add(-calendarRecheckPad),
		req.Start.UTC().Add(calendarRecheckPad),
		loc)
	if err != nil {
		return nil, err
	}
	if blocked.Has(key) {
		return nil, NewSlotTakenError(key)
	}

	local := availability.Project(req.Start, loc)
	booking := models.Booking{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Notes:       req.Notes,
		Start:       req.Start.UTC(),
		Key:         key,
		Timezone:    loc.String(),
		DisplayDate: local.Format("Monday, January 2 2006"),
		DisplayTime: local.Format("3:04 PM MST"),
		Status:      "confirmed",
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.Store.Insert(&booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, NewSlotTakenError(key)
		}
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	utils.GetLogger().Info("booking confirmed",
		zap.String("bookingId", booking.ID),
		zap.String("email", booking.Email),
		zap.String("slot", key.String()),
		zap.String("timezone", booking.Timezone),
	)

	s.enqueueSideEffects(booking)
	return &booking, nil
}

// ListBookings returns every stored booking, newest first.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Store.All()
}

func (s *DefaultBookingService) reminderLead() time.Duration {
	if s.ReminderLead > 0 {
		return s.ReminderLead
	}
	return time.Hour
}

// enqueueSideEffects hands the booking to the background worker for the
// calendar insert, confirmation email, and CRM tag. Queue failures are
// logged rather than surfaced; the booking itself is already committed.
func (s *DefaultBookingService) enqueueSideEffects(booking models.Booking) {
	if s.Tasks == nil {
		return
	}
	task, opts, err := tasks.NewBookingCreatedTask(tasks.BookingCreatedPayload{BookingID: booking.ID})
	if err != nil {
		utils.GetLogger().Error("failed to build booking task",
			zap.String("bookingId", booking.ID), zap.Error(err))
		return
	}
	if _, err := s.Tasks.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Error("failed to enqueue booking task",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}

	reminderAt := booking.Start.Add(-s.reminderLead())
	reminder, opts, err := tasks.NewBookingReminderTask(tasks.BookingReminderPayload{BookingID: booking.ID}, reminderAt)
	if err != nil {
		utils.GetLogger().Error("failed to build reminder task",
			zap.String("bookingId", booking.ID), zap.Error(err))
		return
	}
	if _, err := s.Tasks.Enqueue(reminder, opts...); err != nil {
		utils.GetLogger().Error("failed to enqueue reminder task",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}
