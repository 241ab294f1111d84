package timezone

import (
	"sync/atomic"
	"time"
)

const DefaultTimezone = "America/Bogota"

var current atomic.Pointer[time.Location]

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// SetDefault changes the location used by Now. Unknown names fall back to DefaultTimezone.
func SetDefault(tz string) {
	current.Store(Location(tz))
}

func Default() *time.Location {
	if loc := current.Load(); loc != nil {
		return loc
	}
	return Location(DefaultTimezone)
}

func Now() time.Time {
	return time.Now().In(Default())
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
