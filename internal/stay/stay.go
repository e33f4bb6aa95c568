// Package stay derives the length and price of a hotel stay from its
// check-in and check-out dates.
package stay

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of check-in and check-out dates.
const DateLayout = "2006-01-02"

const hoursPerDay = 24

// Quote is the priced result of a prospective stay.
type Quote struct {
	Nights     int
	TotalPrice int64
}

// Bookable reports whether the quote describes a stay of at least one night.
func (q Quote) Bookable() bool {
	return q.Nights > 0
}

// DateOf drops the time-of-day and location of t, keeping its calendar date.
// The result is midnight UTC, which has no DST transitions.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the calendar date of now as observed in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return DateOf(now.In(loc))
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Nights returns the number of nights between two dates, rounded up to a
// whole night. Missing dates and inverted or empty ranges yield 0.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	diff := DateOf(checkOut).Sub(DateOf(checkIn))
	if diff <= 0 {
		return 0
	}
	day := hoursPerDay * time.Hour
	nights := int(diff / day)
	if diff%day != 0 {
		nights++
	}
	return nights
}

// Compute prices a stay at the given nightly rate. A non-bookable stay
// is quoted at zero nights and zero price.
func Compute(checkIn, checkOut time.Time, nightlyPrice int64) Quote {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return Quote{}
	}
	return Quote{
		Nights:     nights,
		TotalPrice: int64(nights) * nightlyPrice,
	}
}
