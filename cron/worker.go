package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"github.com/black-sheep-marketing/blacksheep-calendar/config"
	bookingRepo "github.com/black-sheep-marketing/blacksheep-calendar/database/repository/booking"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/calendar"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/crm"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/notification"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/tasks"
	"github.com/black-sheep-marketing/blacksheep-calendar/utils"
)

// InitBookingWorker runs the async side-effect worker in background.
func InitBookingWorker(
	store bookingRepo.BookingRepository,
	calSvc calendar.Service,
	notifSvc notification.Service,
	crmSvc crm.Service,
) {
	srv := asynq.NewServer(
		utils.QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingCreated, handleBookingCreated(store, calSvc, notifSvc, crmSvc))
	mux.HandleFunc(tasks.TypeBookingReminder, handleBookingReminder(store, notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[BookingWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BookingWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BookingWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleBookingCreated runs the post-booking pipeline: create the calendar
// event, backfill its refs, email the attendee, then tag the CRM contact.
// The calendar step is guarded on the stored event id so asynq retries
// never duplicate events.
func handleBookingCreated(
	store bookingRepo.BookingRepository,
	calSvc calendar.Service,
	notifSvc notification.Service,
	crmSvc crm.Service,
) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.BookingCreatedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[BookingHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		booking, err := store.FindByID(p.BookingID)
		if err != nil {
			log.Printf("[BookingHandler] ❌ Failed to load booking %s: %v", p.BookingID, err)
			return err
		}
		if booking == nil {
			log.Printf("[BookingHandler] ⚠️ Booking %s no longer exists, dropping task", p.BookingID)
			return nil
		}

		if booking.CalendarEventID == "" {
			eventID, meetLink, err := calSvc.CreateBookingEvent(ctx, *booking)
			if err != nil {
				log.Printf("[BookingHandler] ❌ Calendar insert failed for %s: %v", booking.ID, err)
				return err
			}
			if err := store.SetExternalRefs(booking.ID, eventID, meetLink); err != nil {
				log.Printf("[BookingHandler] ❌ Failed to record calendar refs for %s: %v", booking.ID, err)
				return err
			}
			booking.CalendarEventID = eventID
			booking.MeetLink = meetLink
			log.Printf("[BookingHandler] 📅 Calendar event %s created for booking %s", eventID, booking.ID)
		}

		if err := notifSvc.SendBookingConfirmation(*booking); err != nil {
			log.Printf("[BookingHandler] ❌ Confirmation email failed for %s: %v", booking.ID, err)
			return err
		}

		// CRM tagging is best effort; a missed tag never blocks or re-runs
		// the pipeline.
		if err := crmSvc.TagBookedContact(ctx, *booking); err != nil {
			log.Printf("[BookingHandler] ⚠️ CRM tagging failed for %s: %v", booking.ID, err)
		}
		return nil
	}
}

// handleBookingReminder emails the attendee before the call. Reminders for
// calls that already started are dropped.
func handleBookingReminder(store bookingRepo.BookingRepository, notifSvc notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.BookingReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		booking, err := store.FindByID(p.BookingID)
		if err != nil {
			log.Printf("[ReminderHandler] ❌ Failed to load booking %s: %v", p.BookingID, err)
			return err
		}
		if booking == nil {
			log.Printf("[ReminderHandler] ⚠️ Booking %s no longer exists, dropping reminder", p.BookingID)
			return nil
		}
		if !booking.Start.After(time.Now()) {
			log.Printf("[ReminderHandler] ⚠️ Call for booking %s already started, dropping reminder", booking.ID)
			return nil
		}

		if err := notifSvc.SendBookingReminder(*booking); err != nil {
			log.Printf("[ReminderHandler] ❌ Reminder email failed for %s: %v", booking.ID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[BookingWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
