package availability

import (
	"time"

	"go.uber.org/zap"

	"github.com/black-sheep-marketing/blacksheep-calendar/utils"
)

// LoadZone resolves an IANA timezone name. Empty and unrecognized names
// fail with an invalidTimezone error; they are never interpreted as UTC
// (time.LoadLocation would happily return UTC for "").
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, NewInvalidTimezoneError(name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, NewInvalidTimezoneError(name)
	}
	return loc, nil
}

// ResolveZone is the boundary step that turns a caller-supplied timezone
// name into a usable location, substituting the configured fallback when
// the name is absent or unrecognized. It fails only when the fallback
// itself does not resolve, which is a deployment error.
func ResolveZone(requested, fallback string) (*time.Location, error) {
	if requested != "" {
		loc, err := LoadZone(requested)
		if err == nil {
			return loc, nil
		}
		utils.GetLogger().Warn("availability: unknown timezone, substituting default",
			zap.String("requested", requested),
			zap.String("default", fallback),
		)
	}
	return LoadZone(fallback)
}

// Project converts an absolute instant into its wall-clock representation
// in loc, applying whatever offset is in effect on that date.
func Project(instant time.Time, loc *time.Location) time.Time {
	return instant.In(loc)
}
