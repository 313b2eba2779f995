package bookingRepo

import (
	"fmt"
	"sort"
	"sync"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
)

// InMemoryBookingRepo keeps bookings in a mutex-guarded map keyed by slot
// key. One lock around the whole check-and-insert satisfies the admission
// contract; it backs local development and tests.
type InMemoryBookingRepo struct {
	mu    sync.Mutex
	byKey map[models.TimeSlotKey]models.Booking
	byID  map[string]models.Booking
}

func NewInMemoryBookingRepo() *InMemoryBookingRepo {
	return &InMemoryBookingRepo{
		byKey: make(map[models.TimeSlotKey]models.Booking),
		byID:  make(map[string]models.Booking),
	}
}

func (repo *InMemoryBookingRepo) FindByKey(key models.TimeSlotKey) (*models.Booking, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if booking, ok := repo.byKey[key]; ok {
		return &booking, nil
	}
	return nil, nil
}

func (repo *InMemoryBookingRepo) FindByID(id string) (*models.Booking, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if booking, ok := repo.byID[id]; ok {
		return &booking, nil
	}
	return nil, nil
}

func (repo *InMemoryBookingRepo) Insert(booking *models.Booking) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, taken := repo.byKey[booking.Key]; taken {
		return ErrSlotTaken
	}
	repo.byKey[booking.Key] = *booking
	repo.byID[booking.ID] = *booking
	return nil
}

func (repo *InMemoryBookingRepo) SetExternalRefs(id, calendarEventID, meetLink string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	booking, ok := repo.byID[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	booking.CalendarEventID = calendarEventID
	booking.MeetLink = meetLink
	repo.byID[id] = booking
	repo.byKey[booking.Key] = booking
	return nil
}

func (repo *InMemoryBookingRepo) All() ([]models.Booking, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	bookings := make([]models.Booking, 0, len(repo.byID))
	for _, booking := range repo.byID {
		bookings = append(bookings, booking)
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}
