// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone is only used for
// calculating date boundaries, most importantly the calendar day the daily
// order limit counts against.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Ho_Chi_Minh"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to Asia/Ho_Chi_Minh.
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

// Location returns the business timezone location, auto-initializing with the
// default timezone when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns the start of day (00:00:00) in business timezone,
// converted to UTC. The daily order count uses this as its lower bound.
func StartOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	startOfDay := time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 0, 0, 0, 0, Location())
	return startOfDay.UTC()
}

// EndOfDayUTC returns the end of day (23:59:59.999999999) in business
// timezone, converted to UTC.
func EndOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	endOfDay := time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 23, 59, 59, 999999999, Location())
	return endOfDay.UTC()
}

// ToBizTimezone converts a UTC time to business timezone for display.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}

// FormatInBizTimezone formats a UTC time as a string in business timezone.
func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
