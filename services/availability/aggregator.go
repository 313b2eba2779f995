package availability

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
	"github.com/black-sheep-marketing/blacksheep-calendar/utils"
)

const defaultFetchTimeout = 10 * time.Second

func (s *DefaultAvailabilityService) MonthlyBlockedSlots(ctx context.Context, year int, month time.Month, loc *time.Location) (models.BlockedSlotSet, error) {
	timeMin := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	timeMax := timeMin.AddDate(0, 1, 0)
	return s.BlockedSlotsBetween(ctx, timeMin, timeMax, loc)
}

func (s *DefaultAvailabilityService) BlockedSlotsBetween(ctx context.Context, timeMin, timeMax time.Time, loc *time.Location) (models.BlockedSlotSet, error) {
	logger := utils.GetLogger()

	timeout := s.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// One network round trip. Any failure, including timeout, fails the
	// whole query; a partial or stale blocked set is worse than no answer.
	events, err := s.Events.ListEvents(fetchCtx, timeMin, timeMax)
	if err != nil {
		logger.Error("availability: calendar fetch failed",
			zap.Time("timeMin", timeMin),
			zap.Time("timeMax", timeMax),
			zap.Error(err),
		)
		return nil, NewCalendarUnavailableError(err)
	}

	blocked := models.NewBlockedSlotSet()
	for _, event := range events {
		blocked.Union(ExpandEvent(event, loc, s.Buffers, s.Hours))
	}

	logger.Debug("availability: computed blocked set",
		zap.Int("events", len(events)),
		zap.Int("slots", len(blocked)),
	)
	return blocked, nil
}
