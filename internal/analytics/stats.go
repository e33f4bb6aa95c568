// Package analytics derives the admin dashboard's statistics and chart
// series from a list of bookings. Everything here is a pure function of
// its inputs and is recomputed in full on every call.
package analytics

import (
	"time"

	"github.com/bisfor/hotel-booking-backend/internal/booking"
	"github.com/bisfor/hotel-booking-backend/internal/stay"
)

// NoRoom is reported as the most booked room when there are no bookings.
const NoRoom = "-"

// PriceLookup returns a room's nightly price, or 0 for an unknown room.
type PriceLookup interface {
	PriceOf(roomID int64) int64
}

// PriceFunc picks the nightly price a booking is valued at.
type PriceFunc func(b *booking.Booking) int64

// CurrentPrice values bookings at their room's price today.
// Totals drift after a room's price is edited.
func CurrentPrice(prices PriceLookup) PriceFunc {
	return func(b *booking.Booking) int64 {
		return prices.PriceOf(b.RoomID)
	}
}

// BookedPrice values bookings at the price recorded when they were made.
func BookedPrice(b *booking.Booking) int64 {
	return b.PricePerNight
}

// Stats holds the dashboard totals computed by Summarize.
type Stats struct {
	TotalBookings    int
	TotalGuests      int
	TotalIncome      int64
	MostBookedRoom   string
	UpcomingBookings int
}

// Summarize computes dashboard totals. Upcoming bookings are those checking
// in today or tomorrow in loc.
func Summarize(bookings []*booking.Booking, price PriceFunc, now time.Time, loc *time.Location) Stats {
	today := stay.Today(now, loc)
	tomorrow := today.AddDate(0, 0, 1)

	st := Stats{
		TotalBookings:  len(bookings),
		MostBookedRoom: NoRoom,
	}

	counts := make(map[string]int)
	var order []string

	for _, b := range bookings {
		st.TotalGuests += b.Guests
		if nights := stay.Nights(b.CheckIn, b.CheckOut); nights > 0 {
			st.TotalIncome += price(b) * int64(nights)
		}

		if _, seen := counts[b.RoomName]; !seen {
			order = append(order, b.RoomName)
		}
		counts[b.RoomName]++

		d := stay.DateOf(b.CheckIn)
		if d.Equal(today) || d.Equal(tomorrow) {
			st.UpcomingBookings++
		}
	}

	// Strictly greater, so ties go to the room seen first.
	best := 0
	for _, name := range order {
		if counts[name] > best {
			best = counts[name]
			st.MostBookedRoom = name
		}
	}

	return st
}
