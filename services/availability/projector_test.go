package availability

import (
	"testing"
	"time"
)

func TestLoadZone_RejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"", "Mars/Olympus_Mons", "PST8PDT/Nope"} {
		loc, err := LoadZone(name)
		if err == nil {
			t.Fatalf("expected error for zone %q, got location %v", name, loc)
		}
		if !IsInvalidTimezone(err) {
			t.Fatalf("expected invalidTimezone error for %q, got %v", name, err)
		}
	}
}

func TestResolveZone_SubstitutesDefault(t *testing.T) {
	loc, err := ResolveZone("Not/AZone", "America/Phoenix")
	if err != nil {
		t.Fatalf("expected fallback to resolve, got %v", err)
	}
	if loc.String() != "America/Phoenix" {
		t.Fatalf("expected America/Phoenix, got %s", loc)
	}

	loc, err = ResolveZone("", "America/Phoenix")
	if err != nil {
		t.Fatalf("expected fallback for empty name, got %v", err)
	}
	if loc.String() != "America/Phoenix" {
		t.Fatalf("expected America/Phoenix for empty name, got %s", loc)
	}

	loc, err = ResolveZone("Europe/Berlin", "America/Phoenix")
	if err != nil {
		t.Fatalf("expected requested zone to resolve, got %v", err)
	}
	if loc.String() != "Europe/Berlin" {
		t.Fatalf("expected Europe/Berlin, got %s", loc)
	}

	if _, err := ResolveZone("Nope/Nope", "Also/Broken"); err == nil {
		t.Fatalf("expected error when the fallback itself is invalid")
	}
}

func TestProject_AppliesSeasonalOffset(t *testing.T) {
	newYork := mustZone(t, "America/New_York")

	// 2024-03-10 is the US spring-forward date; 02:00-03:00 local does not
	// exist in America/New_York.
	before := time.Date(2024, 3, 10, 6, 59, 0, 0, time.UTC)
	if got := Project(before, newYork); got.Hour() != 1 || got.Minute() != 59 {
		t.Fatalf("expected 01:59 EST, got %02d:%02d", got.Hour(), got.Minute())
	}

	after := time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC)
	if got := Project(after, newYork); got.Hour() != 3 || got.Minute() != 30 {
		t.Fatalf("expected 03:30 EDT, got %02d:%02d", got.Hour(), got.Minute())
	}
}

func TestKeyFor_FloorsMinutes(t *testing.T) {
	utc := time.UTC
	cases := []struct {
		minute, second int
		wantMinute     int
	}{
		{0, 0, 0},
		{29, 59, 0},
		{30, 0, 30},
		{31, 0, 30},
		{59, 59, 30},
	}
	for _, tc := range cases {
		key := KeyFor(time.Date(2024, 5, 6, 17, tc.minute, tc.second, 0, utc))
		if key.Hour != 17 || key.Minute != tc.wantMinute {
			t.Fatalf("17:%02d:%02d: expected minute %d, got %s", tc.minute, tc.second, tc.wantMinute, key)
		}
	}
}

func TestKeyFor_DeterministicPerZone(t *testing.T) {
	phoenix := mustZone(t, "America/Phoenix")
	instant := time.Date(2024, 3, 10, 16, 0, 0, 0, time.UTC)

	first := KeyFor(Project(instant, phoenix))
	second := KeyFor(Project(instant, phoenix))
	if first != second {
		t.Fatalf("key derivation not deterministic: %s vs %s", first, second)
	}

	// The same instant maps to a different slot in a different zone.
	inUTC := KeyFor(Project(instant, time.UTC))
	if inUTC == first {
		t.Fatalf("expected distinct keys across zones, both were %s", first)
	}
	if first.Hour != 9 || inUTC.Hour != 16 {
		t.Fatalf("expected 09:00 Phoenix / 16:00 UTC, got %s / %s", first, inUTC)
	}
}
