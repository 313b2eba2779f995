package calendar

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
	"github.com/black-sheep-marketing/blacksheep-calendar/utils"
)

// GoogleCalendarService is the production implementation backed by the
// Google Calendar v3 API.
type GoogleCalendarService struct {
	svc        *gcal.Service
	calendarID string
}

// NewGoogleCalendarService builds a calendar client from a service-account
// credentials file.
func NewGoogleCalendarService(ctx context.Context, credentialsFile, calendarID string) (*GoogleCalendarService, error) {
	svc, err := gcal.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("calendar: failed to build client: %w", err)
	}
	return &GoogleCalendarService{svc: svc, calendarID: calendarID}, nil
}

func (s *GoogleCalendarService) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]models.CalendarEvent, error) {
	logger := utils.GetLogger()

	var events []models.CalendarEvent
	pageToken := ""
	for {
		call := s.svc.Events.List(s.calendarID).
			TimeMin(timeMin.Format(time.RFC3339)).
			TimeMax(timeMax.Format(time.RFC3339)).
			SingleEvents(true).
			MaxResults(2500).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("calendar: listing events for %s: %w", s.calendarID, err)
		}

		for _, item := range resp.Items {
			event, ok := fromGoogleEvent(item)
			if !ok {
				logger.Debug("calendar: skipping malformed event", zap.String("eventID", item.Id))
				continue
			}
			events = append(events, event)
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	return events, nil
}

func (s *GoogleCalendarService) CreateBookingEvent(ctx context.Context, booking models.Booking) (string, string, error) {
	description := fmt.Sprintf("Demo call booked via the website.\n\nName: %s\nEmail: %s\nPhone: %s",
		booking.Name, booking.Email, booking.Phone)
	if booking.Company != "" {
		description += "\nCompany: " + booking.Company
	}
	if booking.Notes != "" {
		description += "\n\nNotes: " + booking.Notes
	}

	event := &gcal.Event{
		Summary:     fmt.Sprintf("Demo call: %s", booking.Name),
		Description: description,
		Start: &gcal.EventDateTime{
			DateTime: booking.Start.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcal.EventDateTime{
			DateTime: booking.Start.Add(slotDuration).UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		Attendees: []*gcal.EventAttendee{
			{Email: booking.Email, DisplayName: booking.Name},
		},
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId:             booking.ID,
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		},
	}

	created, err := s.svc.Events.Insert(s.calendarID, event).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return "", "", fmt.Errorf("calendar: inserting booking event: %w", err)
	}

	return created.Id, created.HangoutLink, nil
}

const slotDuration = 30 * time.Minute
