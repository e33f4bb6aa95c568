package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bisfor/hotel-booking-backend/internal/booking"
	"github.com/bisfor/hotel-booking-backend/internal/room"
	"github.com/bisfor/hotel-booking-backend/internal/stay"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := stay.ParseDate(s)
	require.NoError(t, err)
	return d
}

func stayIn(t *testing.T, roomID int64, roomName, in, out string, guests int) *booking.Booking {
	return &booking.Booking{
		RoomID:   roomID,
		RoomName: roomName,
		CheckIn:  date(t, in),
		CheckOut: date(t, out),
		Guests:   guests,
	}
}

var prices = room.PriceIndex{1: 100, 2: 150, 3: 250}

func TestSummarize_Empty(t *testing.T) {
	st := Summarize(nil, CurrentPrice(prices), time.Now(), time.UTC)

	assert.Equal(t, Stats{MostBookedRoom: "-"}, st)
}

func TestSummarize_Totals(t *testing.T) {
	bookings := []*booking.Booking{
		stayIn(t, 1, "Single Room", "2024-01-01", "2024-01-04", 1), // 3 × 100
		stayIn(t, 2, "Double Room", "2024-01-02", "2024-01-03", 2), // 1 × 150
		stayIn(t, 9, "Gone Room", "2024-01-02", "2024-01-05", 3),   // unknown price
		stayIn(t, 3, "Suite", "2024-01-05", "2024-01-05", 2),       // zero nights
	}

	st := Summarize(bookings, CurrentPrice(prices), time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC), time.UTC)

	assert.Equal(t, 4, st.TotalBookings)
	assert.Equal(t, 8, st.TotalGuests)
	assert.Equal(t, int64(450), st.TotalIncome)
	assert.Equal(t, 0, st.UpcomingBookings)
}

func TestSummarize_MostBookedRoom(t *testing.T) {
	t.Run("highest count wins", func(t *testing.T) {
		bookings := []*booking.Booking{
			{RoomName: "A"}, {RoomName: "B"}, {RoomName: "A"},
		}
		assert.Equal(t, "A", Summarize(bookings, BookedPrice, time.Now(), time.UTC).MostBookedRoom)
	})

	t.Run("tie goes to first seen", func(t *testing.T) {
		bookings := []*booking.Booking{
			{RoomName: "B"}, {RoomName: "A"}, {RoomName: "A"}, {RoomName: "B"},
		}
		assert.Equal(t, "B", Summarize(bookings, BookedPrice, time.Now(), time.UTC).MostBookedRoom)
	})
}

func TestSummarize_Upcoming(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	// 2024-06-30 20:00 UTC is already 2024-07-01 in loc.
	now := time.Date(2024, 6, 30, 20, 0, 0, 0, time.UTC)

	bookings := []*booking.Booking{
		stayIn(t, 1, "Single Room", "2024-06-30", "2024-07-02", 1), // yesterday in loc
		stayIn(t, 1, "Single Room", "2024-07-01", "2024-07-02", 1), // today
		stayIn(t, 1, "Single Room", "2024-07-02", "2024-07-04", 1), // tomorrow
		stayIn(t, 1, "Single Room", "2024-07-03", "2024-07-04", 1),
	}

	assert.Equal(t, 2, Summarize(bookings, CurrentPrice(prices), now, loc).UpcomingBookings)
}

func TestSummarize_BookedPrice(t *testing.T) {
	b := stayIn(t, 2, "Double Room", "2024-01-01", "2024-01-03", 2)
	b.PricePerNight = 120

	assert.Equal(t, int64(300), Summarize([]*booking.Booking{b}, CurrentPrice(prices), time.Now(), time.UTC).TotalIncome)
	assert.Equal(t, int64(240), Summarize([]*booking.Booking{b}, BookedPrice, time.Now(), time.UTC).TotalIncome)
}

func TestWeekKey(t *testing.T) {
	cases := map[string]string{
		"2024-03-10": "2024-W3", // Sunday
		"2024-03-16": "2024-W3", // following Saturday
		"2024-03-01": "2024-W5", // week starts Sunday 2024-02-25
		"2024-12-01": "2024-W1",
		"2025-01-01": "2024-W5", // week starts Sunday 2024-12-29
	}
	for in, want := range cases {
		assert.Equal(t, want, WeekKey(date(t, in)), in)
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-03", MonthKey(date(t, "2024-03-10")))
	assert.Equal(t, "2025-12", MonthKey(date(t, "2025-12-31")))
}

func TestRollup_RevenueIsNightlyPriceOncePerBooking(t *testing.T) {
	b := stayIn(t, 2, "Double Room", "2024-03-10", "2024-03-13", 2)

	r := Rollup([]*booking.Booking{b}, CurrentPrice(prices), RevenuePerBooking)

	require.Len(t, r.Weeks, 1)
	assert.Equal(t, Bucket{Key: "2024-W3", Count: 1, Revenue: 150}, r.Weeks[0])
	require.Len(t, r.Months, 1)
	assert.Equal(t, Bucket{Key: "2024-03", Count: 1, Revenue: 150}, r.Months[0])
}

func TestRollup_PerStay(t *testing.T) {
	b := stayIn(t, 2, "Double Room", "2024-03-10", "2024-03-13", 2)

	r := Rollup([]*booking.Booking{b}, CurrentPrice(prices), RevenuePerStay)

	require.Len(t, r.Weeks, 1)
	assert.Equal(t, int64(450), r.Weeks[0].Revenue)
}

func TestRollup_SortedBuckets(t *testing.T) {
	bookings := []*booking.Booking{
		stayIn(t, 3, "Suite", "2024-05-20", "2024-05-21", 1),
		stayIn(t, 1, "Single Room", "2024-03-10", "2024-03-11", 1),
		stayIn(t, 1, "Single Room", "2024-03-12", "2024-03-13", 1),
		stayIn(t, 9, "Gone Room", "2023-12-31", "2024-01-02", 1),
	}

	r := Rollup(bookings, CurrentPrice(prices), RevenuePerBooking)

	assert.Equal(t, []Bucket{
		{Key: "2023-12", Count: 1, Revenue: 0},
		{Key: "2024-03", Count: 2, Revenue: 200},
		{Key: "2024-05", Count: 1, Revenue: 250},
	}, r.Months)

	assert.Equal(t, []Bucket{
		{Key: "2023-W6", Count: 1, Revenue: 0},
		{Key: "2024-W3", Count: 2, Revenue: 200},
		{Key: "2024-W4", Count: 1, Revenue: 250},
	}, r.Weeks)
}

func TestRollup_Empty(t *testing.T) {
	r := Rollup(nil, BookedPrice, RevenuePerBooking)
	assert.Empty(t, r.Weeks)
	assert.Empty(t, r.Months)
}
