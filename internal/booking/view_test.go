package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bisfor/hotel-booking-backend/internal/booking"
)

func ids(bookings []*booking.Booking) []int64 {
	out := make([]int64, len(bookings))
	for i, b := range bookings {
		out[i] = b.ID
	}
	return out
}

func sampleBookings(t *testing.T) []*booking.Booking {
	created := func(day int) time.Time {
		return time.Date(2024, 3, day, 10, 0, 0, 0, time.UTC)
	}
	return []*booking.Booking{
		{ID: 1, RoomName: "Suite", CheckIn: mustDate(t, "2024-03-12"), CheckOut: mustDate(t, "2024-03-14"), CreatedAt: created(1)},
		{ID: 2, RoomName: "Single Room", CheckIn: mustDate(t, "2024-03-11"), CheckOut: mustDate(t, "2024-03-12"), CreatedAt: created(2)},
		{ID: 3, RoomName: "Suite", CheckIn: mustDate(t, "2024-03-20"), CheckOut: mustDate(t, "2024-03-21"), CreatedAt: created(3)},
		{ID: 4, RoomName: "Suite", CheckIn: mustDate(t, "2024-03-12"), CheckOut: mustDate(t, "2024-03-13"), CreatedAt: created(3)},
		{ID: 5, RoomName: "Double Room", CheckIn: mustDate(t, "2024-03-16"), CheckOut: mustDate(t, "2024-03-18"), CreatedAt: created(5)},
	}
}

// Wednesday 2024-03-13; its week runs Sunday 03-10 to Saturday 03-16.
var viewNow = time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)

func TestApplyView_RoomFilterSortsDescendingAndStable(t *testing.T) {
	in := sampleBookings(t)

	got := booking.ApplyView(in, booking.ViewOptions{RoomName: "Suite", SortKey: booking.SortByCheckIn}, viewNow, time.UTC)
	// 1 and 4 share a check-in date and keep their input order.
	assert.Equal(t, []int64{3, 1, 4}, ids(got))

	got = booking.ApplyView(in, booking.ViewOptions{RoomName: "Suite", SortKey: booking.SortByCreatedAt}, viewNow, time.UTC)
	assert.Equal(t, []int64{3, 4, 1}, ids(got))

	got = booking.ApplyView(in, booking.ViewOptions{RoomName: "Suite", SortKey: booking.SortByCheckOut}, viewNow, time.UTC)
	assert.Equal(t, []int64{3, 1, 4}, ids(got))
}

func TestApplyView_AllRoomsDefaultSort(t *testing.T) {
	got := booking.ApplyView(sampleBookings(t), booking.ViewOptions{RoomName: booking.AllRooms}, viewNow, time.UTC)
	assert.Equal(t, []int64{5, 3, 4, 2, 1}, ids(got))
}

func TestApplyView_WeekOnly(t *testing.T) {
	got := booking.ApplyView(sampleBookings(t), booking.ViewOptions{WeekOnly: true, SortKey: booking.SortByCheckIn}, viewNow, time.UTC)
	// Saturday 03-16 is inside, 03-20 is not.
	assert.Equal(t, []int64{5, 1, 4, 2}, ids(got))
}

func TestApplyView_WeekOnlyUsesLocation(t *testing.T) {
	in := []*booking.Booking{
		{ID: 1, CheckIn: mustDate(t, "2024-03-16")},
		{ID: 2, CheckIn: mustDate(t, "2024-03-17")},
	}
	// Saturday 20:00 UTC is already Sunday 03-17 in UTC+7, a new week.
	now := time.Date(2024, 3, 16, 20, 0, 0, 0, time.UTC)

	got := booking.ApplyView(in, booking.ViewOptions{WeekOnly: true}, now, time.UTC)
	assert.Equal(t, []int64{1}, ids(got))

	got = booking.ApplyView(in, booking.ViewOptions{WeekOnly: true}, now, time.FixedZone("UTC+7", 7*60*60))
	assert.Equal(t, []int64{2}, ids(got))
}

func TestApplyView_DoesNotMutateInputAndIsIdempotent(t *testing.T) {
	in := sampleBookings(t)
	before := ids(in)
	opts := booking.ViewOptions{RoomName: "Suite", SortKey: booking.SortByCheckIn}

	first := booking.ApplyView(in, opts, viewNow, time.UTC)
	second := booking.ApplyView(in, opts, viewNow, time.UTC)

	assert.Equal(t, before, ids(in))
	assert.Equal(t, ids(first), ids(second))
}

func TestWeekWindow(t *testing.T) {
	start, end := booking.WeekWindow(viewNow, time.UTC)
	require.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, mustDate(t, "2024-03-10"), start)
	assert.Equal(t, mustDate(t, "2024-03-16"), end)
}

func TestSortKeyValid(t *testing.T) {
	assert.True(t, booking.SortByCheckOut.Valid())
	assert.False(t, booking.SortKey("name").Valid())
}
