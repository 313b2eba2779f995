package models

import "time"

// BufferConfig holds the padding blocked around timed meetings. Warmup is
// blocked immediately before an event starts, cooldown immediately after it
// ends. Both are non-negative and apply only to timed events.
type BufferConfig struct {
	Warmup   time.Duration
	Cooldown time.Duration
}

// WorkingHours bounds the bookable part of a day as the half-open hour
// range [Start, End). It is consulted only when an all-day event has to
// block out a whole working day.
type WorkingHours struct {
	Start int // 0-24
	End   int // 0-24, exclusive
}
