package validation

import (
	"errors"
	"time"
)

var (
	// MinCrimeDate is the earliest accepted crime date.
	MinCrimeDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

	ErrDateMissing    = errors.New("must not be null")
	ErrDateOutOfRange = errors.New("must be between '1900-01-01' and the current date")
)

// CheckCrimeDate reports whether date is a valid crime date relative to now.
// Both bounds are inclusive and compared as calendar days in now's location.
func CheckCrimeDate(date *time.Time, now time.Time) error {
	if date == nil {
		return ErrDateMissing
	}
	day := calendarDay(date.In(now.Location()))
	if day.Before(calendarDay(MinCrimeDate)) || day.After(calendarDay(now)) {
		return ErrDateOutOfRange
	}
	return nil
}

// calendarDay drops the clock and zone so days compare by date only.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
