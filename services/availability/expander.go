package availability

import (
	"math"
	"time"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
)

// ExpandEvent computes every slot key one calendar event occupies in loc's
// wall-clock frame. Timed events block their warmup buffer, the meeting
// body, and their cooldown buffer; all-day events block the full working
// day regardless of buffers. Events with no usable start representation
// yield an empty set so one malformed entry never poisons the aggregate.
//
// All counts round up: a 45-minute warmup blocks two slots, a 31-minute
// meeting blocks two slots. Over-blocking is the safe direction; showing a
// busy slot as free is not.
func ExpandEvent(event models.CalendarEvent, loc *time.Location, buffers models.BufferConfig, hours models.WorkingHours) models.BlockedSlotSet {
	set := models.NewBlockedSlotSet()

	if event.AllDay {
		expandAllDay(event, loc, hours, set)
		return set
	}

	if event.Start.IsZero() || event.End.IsZero() {
		return set
	}

	start := Project(event.Start, loc)
	end := Project(event.End, loc)
	if end.Before(start) {
		return set
	}

	warmupSteps := slotCount(buffers.Warmup)
	bodySteps := slotCount(end.Sub(start))
	cooldownSteps := slotCount(buffers.Cooldown)

	// Warmup walks backward from the start; step 1 is start-30m.
	for i := 1; i <= warmupSteps; i++ {
		set.Add(KeyFor(start.Add(-time.Duration(i) * slotLength)))
	}
	// Meeting body walks forward from the start.
	for i := 0; i < bodySteps; i++ {
		set.Add(KeyFor(start.Add(time.Duration(i) * slotLength)))
	}
	// Cooldown walks forward from the end; step 0 is the end instant
	// itself, not end+30m.
	for i := 0; i < cooldownSteps; i++ {
		set.Add(KeyFor(end.Add(time.Duration(i) * slotLength)))
	}

	return set
}

// expandAllDay blocks every working-hours slot on each date the event
// covers. The time component is ignored entirely; an all-day event has no
// intrinsic timezone and its dates are read in the caller's zone.
func expandAllDay(event models.CalendarEvent, loc *time.Location, hours models.WorkingHours, set models.BlockedSlotSet) {
	start, err := time.ParseInLocation("2006-01-02", event.StartDate, loc)
	if err != nil {
		return
	}
	end := start.AddDate(0, 0, 1)
	if event.EndDate != "" {
		if parsed, perr := time.ParseInLocation("2006-01-02", event.EndDate, loc); perr == nil && parsed.After(start) {
			end = parsed
		}
	}

	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")
		for hour := hours.Start; hour < hours.End; hour++ {
			set.Add(models.TimeSlotKey{Date: date, Hour: hour, Minute: 0})
			set.Add(models.TimeSlotKey{Date: date, Hour: hour, Minute: 30})
		}
	}
}

// slotCount returns how many 30-minute slots a duration spans, rounded up.
func slotCount(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Minutes() / 30))
}
