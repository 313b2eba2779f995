package availability

import (
	"time"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
)

// slotLength is the fixed scheduling grain.
const slotLength = 30 * time.Minute

// KeyFor rounds a wall-clock timestamp down to its containing 30-minute
// boundary and encodes it as a slot key. Rounding is floor-only: a meeting
// starting at 9:45 occupies the 9:30 slot, never 10:00. The asymmetry
// keeps all block extension (warmup/cooldown walks) forward-stepping in
// fixed increments with no second rounding direction.
func KeyFor(wallClock time.Time) models.TimeSlotKey {
	minute := 0
	if wallClock.Minute() >= 30 {
		minute = 30
	}
	return models.TimeSlotKey{
		Date:   wallClock.Format("2006-01-02"),
		Hour:   wallClock.Hour(),
		Minute: minute,
	}
}
