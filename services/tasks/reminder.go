package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "booking:reminder"

// BookingReminderPayload identifies the booking whose attendee should be
// reminded shortly before the call.
type BookingReminderPayload struct {
	BookingID string `json:"bookingId"`
}

func NewBookingReminderTask(payload BookingReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt), asynq.MaxRetry(3)}

	return task, opts, nil
}
