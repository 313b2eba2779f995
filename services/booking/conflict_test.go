package booking

import (
	"testing"
	"time"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
)

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load zone %q: %v", name, err)
	}
	return loc
}

func TestCheckAndReserve_RejectsShortLead(t *testing.T) {
	checker := &ConflictChecker{
		Store:        &stubStore{},
		MinLeadHours: 1,
		Now:          func() time.Time { return fixedNow },
	}

	_, err := checker.CheckAndReserve(fixedNow.Add(30*time.Minute), time.UTC)
	if !IsTooSoon(err) {
		t.Fatalf("expected too-soon error, got %v", err)
	}
}

func TestCheckAndReserve_AdmitsAtLeadBoundary(t *testing.T) {
	checker := &ConflictChecker{
		Store:        &stubStore{},
		MinLeadHours: 4,
		Now:          func() time.Time { return fixedNow },
	}

	key, err := checker.CheckAndReserve(fixedNow.Add(4*time.Hour), time.UTC)
	if err != nil {
		t.Fatalf("candidate exactly at the lead boundary must be admitted: %v", err)
	}
	want := models.TimeSlotKey{Date: "2024-03-08", Hour: 16, Minute: 0}
	if key != want {
		t.Errorf("key = %+v, want %+v", key, want)
	}
}

func TestCheckAndReserve_DerivesKeyInRequestZone(t *testing.T) {
	checker := &ConflictChecker{
		Store:        &stubStore{},
		MinLeadHours: 4,
		Now:          func() time.Time { return fixedNow },
	}

	key, err := checker.CheckAndReserve(demoStart, mustZone(t, "America/Phoenix"))
	if err != nil {
		t.Fatalf("CheckAndReserve: %v", err)
	}
	if key != wantKey {
		t.Errorf("key = %+v, want %+v", key, wantKey)
	}
}

func TestCheckAndReserve_ReportsStoredConflict(t *testing.T) {
	held := &models.Booking{ID: "b-1", Key: wantKey}
	checker := &ConflictChecker{
		Store:        &stubStore{existing: held},
		MinLeadHours: 4,
		Now:          func() time.Time { return fixedNow },
	}

	_, err := checker.CheckAndReserve(demoStart, mustZone(t, "America/Phoenix"))
	if !IsSlotTaken(err) {
		t.Fatalf("expected slot-taken error, got %v", err)
	}
}

func TestCheckAndReserve_UnalignedStartFloorsToSlot(t *testing.T) {
	checker := &ConflictChecker{
		Store:        &stubStore{},
		MinLeadHours: 4,
		Now:          func() time.Time { return fixedNow },
	}

	key, err := checker.CheckAndReserve(demoStart.Add(17*time.Minute), mustZone(t, "America/Phoenix"))
	if err != nil {
		t.Fatalf("CheckAndReserve: %v", err)
	}
	if key != wantKey {
		t.Errorf("key = %+v, want %+v", key, wantKey)
	}
}
