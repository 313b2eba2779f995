package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeBookingCreated = "booking:created"

// BookingCreatedPayload identifies the booking whose side effects
// (calendar insert, confirmation email, CRM tag) should run.
type BookingCreatedPayload struct {
	BookingID string `json:"bookingId"`
}

func NewBookingCreatedTask(payload BookingCreatedPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingCreated, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Timeout(2 * time.Minute)}

	return task, opts, nil
}
