package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
)

type stubEventSource struct {
	events  []models.CalendarEvent
	err     error
	gotMin  time.Time
	gotMax  time.Time
	fetches int
}

func (s *stubEventSource) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]models.CalendarEvent, error) {
	s.fetches++
	s.gotMin = timeMin
	s.gotMax = timeMax
	if s.err != nil {
		return nil, s.err
	}
	return s.events, nil
}

func newTestService(source EventSource) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Events:  source,
		Buffers: models.BufferConfig{Warmup: 30 * time.Minute, Cooldown: 30 * time.Minute},
		Hours:   models.WorkingHours{Start: 9, End: 17},
	}
}

func TestMonthlyBlockedSlots_QueriesUTCMonthWindow(t *testing.T) {
	source := &stubEventSource{}
	svc := newTestService(source)

	if _, err := svc.MonthlyBlockedSlots(context.Background(), 2024, time.March, time.UTC); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantMin := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	wantMax := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	if !source.gotMin.Equal(wantMin) {
		t.Fatalf("expected timeMin %s, got %s", wantMin, source.gotMin)
	}
	if !source.gotMax.Equal(wantMax) {
		t.Fatalf("expected timeMax %s, got %s", wantMax, source.gotMax)
	}
	if source.fetches != 1 {
		t.Fatalf("expected a single fetch, got %d", source.fetches)
	}
}

func TestMonthlyBlockedSlots_UnionsAllEvents(t *testing.T) {
	phoenix := mustZone(t, "America/Phoenix")
	source := &stubEventSource{
		events: []models.CalendarEvent{
			{
				// 09:00-09:30 Phoenix with both buffers: 08:30, 09:00, 09:30.
				Start: time.Date(2024, 3, 10, 16, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 3, 10, 16, 30, 0, 0, time.UTC),
			},
			{
				// 09:30-10:00 Phoenix: 09:00, 09:30, 10:00 - overlaps the first.
				Start: time.Date(2024, 3, 10, 16, 30, 0, 0, time.UTC),
				End:   time.Date(2024, 3, 10, 17, 0, 0, 0, time.UTC),
			},
		},
	}
	svc := newTestService(source)

	set, err := svc.MonthlyBlockedSlots(context.Background(), 2024, time.March, phoenix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.TimeSlotKey{
		{Date: "2024-03-10", Hour: 8, Minute: 30},
		{Date: "2024-03-10", Hour: 9, Minute: 0},
		{Date: "2024-03-10", Hour: 9, Minute: 30},
		{Date: "2024-03-10", Hour: 10, Minute: 0},
	}
	if len(set) != len(want) {
		t.Fatalf("expected %d keys after union, got %d: %v", len(want), len(set), set.Keys())
	}
	for _, key := range want {
		if !set.Has(key) {
			t.Fatalf("missing key %s in union, got %v", key, set.Keys())
		}
	}
}

func TestMonthlyBlockedSlots_MalformedEventDoesNotAffectResult(t *testing.T) {
	valid := models.CalendarEvent{
		Start: time.Date(2024, 3, 10, 16, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 10, 16, 30, 0, 0, time.UTC),
	}

	cleanSource := &stubEventSource{events: []models.CalendarEvent{valid}}
	dirtySource := &stubEventSource{events: []models.CalendarEvent{valid, {} /* malformed */}}

	cleanSet, err := newTestService(cleanSource).MonthlyBlockedSlots(context.Background(), 2024, time.March, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dirtySet, err := newTestService(dirtySource).MonthlyBlockedSlots(context.Background(), 2024, time.March, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cleanSet) != len(dirtySet) {
		t.Fatalf("malformed event changed the result: %v vs %v", cleanSet.Keys(), dirtySet.Keys())
	}
	for key := range cleanSet {
		if !dirtySet.Has(key) {
			t.Fatalf("key %s missing after adding malformed event", key)
		}
	}
}

func TestMonthlyBlockedSlots_FetchFailureIsCalendarUnavailable(t *testing.T) {
	source := &stubEventSource{err: errors.New("connection refused")}
	svc := newTestService(source)

	set, err := svc.MonthlyBlockedSlots(context.Background(), 2024, time.March, time.UTC)
	if err == nil {
		t.Fatalf("expected error, got set %v", set.Keys())
	}
	if !IsCalendarUnavailable(err) {
		t.Fatalf("expected calendarUnavailable, got %v", err)
	}
	if set != nil {
		t.Fatalf("expected no partial result, got %v", set.Keys())
	}
}
