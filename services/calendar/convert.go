package calendar

import (
	"time"

	gcal "google.golang.org/api/calendar/v3"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
)

// fromGoogleEvent maps a provider event onto the domain model. The second
// return is false for entries with no usable start representation: no
// start at all, a timed start without a parseable end, or an end before
// the start. Cancelled entries are dropped the same way.
func fromGoogleEvent(item *gcal.Event) (models.CalendarEvent, bool) {
	if item == nil || item.Start == nil || item.Status == "cancelled" {
		return models.CalendarEvent{}, false
	}

	// All-day events carry a date and no time component.
	if item.Start.Date != "" {
		endDate := ""
		if item.End != nil {
			endDate = item.End.Date
		}
		return models.CalendarEvent{
			ID:        item.Id,
			Summary:   item.Summary,
			AllDay:    true,
			StartDate: item.Start.Date,
			EndDate:   endDate,
		}, true
	}

	if item.Start.DateTime == "" || item.End == nil || item.End.DateTime == "" {
		return models.CalendarEvent{}, false
	}
	start, err := time.Parse(time.RFC3339, item.Start.DateTime)
	if err != nil {
		return models.CalendarEvent{}, false
	}
	end, err := time.Parse(time.RFC3339, item.End.DateTime)
	if err != nil {
		return models.CalendarEvent{}, false
	}
	if end.Before(start) {
		return models.CalendarEvent{}, false
	}

	return models.CalendarEvent{
		ID:      item.Id,
		Summary: item.Summary,
		Start:   start,
		End:     end,
	}, true
}
