package bookingRepo

import (
	"sync"
	"testing"
	"time"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
)

func TestInMemoryRepo_InsertAndFind(t *testing.T) {
	repo := NewInMemoryBookingRepo()
	key := models.TimeSlotKey{Date: "2024-03-10", Hour: 9, Minute: 0}

	found, err := repo.FindByKey(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != nil {
		t.Fatalf("expected empty store, found %+v", found)
	}

	booking := &models.Booking{ID: "b-1", Email: "lead@example.com", Key: key, CreatedAt: time.Now()}
	if err := repo.Insert(booking); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	found, err = repo.FindByKey(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found == nil || found.ID != "b-1" {
		t.Fatalf("expected booking b-1, got %+v", found)
	}

	if err := repo.Insert(&models.Booking{ID: "b-2", Key: key}); err != ErrSlotTaken {
		t.Fatalf("expected ErrSlotTaken for duplicate key, got %v", err)
	}
}

func TestInMemoryRepo_ConcurrentInsertsAdmitOne(t *testing.T) {
	repo := NewInMemoryBookingRepo()
	key := models.TimeSlotKey{Date: "2024-03-10", Hour: 9, Minute: 30}

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			results <- repo.Insert(&models.Booking{ID: string(rune('a' + n)), Key: key})
		}(i)
	}
	wg.Wait()
	close(results)

	admitted, rejected := 0, 0
	for err := range results {
		switch err {
		case nil:
			admitted++
		case ErrSlotTaken:
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if admitted != 1 {
		t.Fatalf("expected exactly one admitted insert, got %d", admitted)
	}
	if rejected != attempts-1 {
		t.Fatalf("expected %d rejections, got %d", attempts-1, rejected)
	}
}

func TestInMemoryRepo_SetExternalRefs(t *testing.T) {
	repo := NewInMemoryBookingRepo()
	key := models.TimeSlotKey{Date: "2024-03-11", Hour: 10, Minute: 0}
	if err := repo.Insert(&models.Booking{ID: "b-3", Key: key}); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	if err := repo.SetExternalRefs("b-3", "gcal-evt-9", "https://meet.example.com/abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID("b-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.CalendarEventID != "gcal-evt-9" || found.MeetLink != "https://meet.example.com/abc" {
		t.Fatalf("expected refs to be backfilled, got %+v", found)
	}

	if err := repo.SetExternalRefs("missing", "x", "y"); err == nil {
		t.Fatalf("expected error for unknown booking id")
	}
}
