package analytics

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bisfor/hotel-booking-backend/internal/booking"
	"github.com/bisfor/hotel-booking-backend/internal/stay"
)

// RevenueMode selects how much a booking adds to its bucket's revenue.
type RevenueMode string

const (
	// RevenuePerBooking adds the nightly price once, whatever the stay length.
	// Existing charts are built on these numbers.
	RevenuePerBooking RevenueMode = "per_booking"
	// RevenuePerStay adds nightly price × nights.
	RevenuePerStay RevenueMode = "per_stay"
)

// Valid reports whether m is one of the known revenue modes.
func (m RevenueMode) Valid() bool {
	return m == RevenuePerBooking || m == RevenuePerStay
}

// Bucket is one week or month of bookings, keyed by WeekKey or MonthKey.
type Bucket struct {
	Key     string
	Count   int
	Revenue int64
}

// Rollups holds the weekly and monthly chart series.
type Rollups struct {
	Weeks  []Bucket
	Months []Bucket
}

// WeekKey labels the week containing d as <year>-W<n>, where the week
// starts on Sunday and n = ceil((day of month of that Sunday + 6) / 7).
// n counts weeks within the month, not the year, and is not ISO 8601.
func WeekKey(d time.Time) string {
	d = stay.DateOf(d)
	start := d.AddDate(0, 0, -int(d.Weekday()))
	return fmt.Sprintf("%d-W%d", start.Year(), (start.Day()+6+6)/7)
}

// MonthKey labels the month containing d as YYYY-MM.
func MonthKey(d time.Time) string {
	return stay.DateOf(d).Format("2006-01")
}

// Rollup buckets bookings by the week and month of their check-in.
// Both series are sorted by key ascending.
func Rollup(bookings []*booking.Booking, price PriceFunc, mode RevenueMode) Rollups {
	weeks := make(map[string]*Bucket)
	months := make(map[string]*Bucket)

	for _, b := range bookings {
		revenue := price(b)
		if mode == RevenuePerStay {
			revenue *= int64(stay.Nights(b.CheckIn, b.CheckOut))
		}

		add(weeks, WeekKey(b.CheckIn), revenue)
		add(months, MonthKey(b.CheckIn), revenue)
	}

	return Rollups{
		Weeks:  sorted(weeks),
		Months: sorted(months),
	}
}

func add(buckets map[string]*Bucket, key string, revenue int64) {
	bk, ok := buckets[key]
	if !ok {
		bk = &Bucket{Key: key}
		buckets[key] = bk
	}
	bk.Count++
	bk.Revenue += revenue
}

func sorted(buckets map[string]*Bucket) []Bucket {
	out := make([]Bucket, 0, len(buckets))
	for _, bk := range buckets {
		out = append(out, *bk)
	}
	slices.SortFunc(out, func(a, b Bucket) int {
		return strings.Compare(a.Key, b.Key)
	})
	return out
}
