package models

import (
	"fmt"
	"sort"
)

// TimeSlotKey identifies one bookable 30-minute slot on a calendar day,
// expressed in the wall-clock frame of the timezone it was derived in.
// The same instant produces different keys in different timezones; slots
// are a human scheduling concept, not an instant.
type TimeSlotKey struct {
	Date   string `bson:"date" json:"date"`     // "2006-01-02"
	Hour   int    `bson:"hour" json:"hour"`     // 0-23
	Minute int    `bson:"minute" json:"minute"` // 0 or 30
}

// String renders the key as "2006-01-02T15:04" for logs and cache payloads.
func (k TimeSlotKey) String() string {
	return fmt.Sprintf("%sT%02d:%02d", k.Date, k.Hour, k.Minute)
}

// BlockedSlotSet is a set of slot keys. Membership is the only meaningful
// operation; insertion order is irrelevant. Built fresh per availability
// query, never persisted.
type BlockedSlotSet map[TimeSlotKey]struct{}

func NewBlockedSlotSet() BlockedSlotSet {
	return make(BlockedSlotSet)
}

func (s BlockedSlotSet) Add(key TimeSlotKey) {
	s[key] = struct{}{}
}

func (s BlockedSlotSet) Has(key TimeSlotKey) bool {
	_, ok := s[key]
	return ok
}

// Union folds other into s and returns s.
func (s BlockedSlotSet) Union(other BlockedSlotSet) BlockedSlotSet {
	for key := range other {
		s[key] = struct{}{}
	}
	return s
}

// Keys returns the members sorted by date, hour, minute so responses and
// cache entries are stable across runs.
func (s BlockedSlotSet) Keys() []TimeSlotKey {
	keys := make([]TimeSlotKey, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Date != keys[j].Date {
			return keys[i].Date < keys[j].Date
		}
		if keys[i].Hour != keys[j].Hour {
			return keys[i].Hour < keys[j].Hour
		}
		return keys[i].Minute < keys[j].Minute
	})
	return keys
}
