// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC; the business timezone is only used to
// compute date boundaries (start/end of day) for bookings and quote expiry.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is the agency's business timezone.
const DefaultTimezone = "Europe/Rome"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to Europe/Rome.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, initializing with the
// default timezone when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DayBoundsUTC returns the UTC instants bounding the business-timezone day
// that contains t. The end bound is exclusive.
func DayBoundsUTC(t time.Time) (start, end time.Time) {
	local := t.In(Location())
	startLocal := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location())
	return startLocal.UTC(), startLocal.AddDate(0, 0, 1).UTC()
}

// BusinessDate returns the business-timezone calendar date of t.
func BusinessDate(t time.Time) time.Time {
	local := t.In(Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// Weekday returns the business-timezone weekday of t.
func Weekday(t time.Time) time.Weekday {
	return t.In(Location()).Weekday()
}

// AtSlotTime combines a calendar date with a "HH:MM" wall-clock time in the
// business timezone and returns the UTC instant.
func AtSlotTime(date time.Time, hhmm string) (time.Time, error) {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot time %q: %w", hhmm, err)
	}
	local := time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, Location())
	return local.UTC(), nil
}
