package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bisfor/hotel-booking-backend/internal/analytics"
	"github.com/bisfor/hotel-booking-backend/internal/booking"
	"github.com/bisfor/hotel-booking-backend/internal/room"
	"github.com/bisfor/hotel-booking-backend/internal/stay"
	"github.com/bisfor/hotel-booking-backend/internal/testutil"
)

type fixture struct {
	svc      *service
	rooms    room.Service
	bookings *testutil.BookingRepository
	suite    *room.Room
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	rooms := room.NewService(testutil.NewRoomRepository(), nil)
	suite, err := rooms.Create(ctx, room.CreateRequest{Name: "Suite", Price: 100}, true)
	require.NoError(t, err)

	repo := testutil.NewBookingRepository()
	bookings := booking.NewService(repo, rooms, nil)

	svc := NewService(bookings, rooms, time.UTC).(*service)
	svc.now = func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) }

	return &fixture{svc: svc, rooms: rooms, bookings: repo, suite: suite}
}

func (f *fixture) book(t *testing.T, in, out string) {
	t.Helper()
	checkIn, err := stay.ParseDate(in)
	require.NoError(t, err)
	checkOut, err := stay.ParseDate(out)
	require.NoError(t, err)

	_, err = f.svc.bookings.Create(context.Background(), booking.CreateRequest{
		Name:     "Guest",
		Email:    "guest@example.com",
		RoomID:   f.suite.ID,
		Guests:   2,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	require.NoError(t, err)
}

func TestStats_PriceSource(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.book(t, "2024-03-10", "2024-03-13")
	_, err := f.rooms.UpdatePrice(ctx, f.suite.ID, 150, true)
	require.NoError(t, err)

	current, err := f.svc.Stats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(450), current.TotalIncome)
	assert.Equal(t, 1, current.TotalBookings)
	assert.Equal(t, 2, current.TotalGuests)
	assert.Equal(t, "Suite", current.MostBookedRoom)
	assert.Equal(t, 1, current.UpcomingBookings)

	booked, err := f.svc.Stats(ctx, PriceBooked)
	require.NoError(t, err)
	assert.Equal(t, int64(300), booked.TotalIncome)

	_, err = f.svc.Stats(ctx, "yesterday")
	assert.ErrorIs(t, err, ErrInvalidPriceSource)
}

func TestRollups(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.book(t, "2024-03-10", "2024-03-13")

	r, err := f.svc.Rollups(ctx, PriceCurrent, "")
	require.NoError(t, err)
	require.Len(t, r.Weeks, 1)
	assert.Equal(t, "2024-W3", r.Weeks[0].Key)
	assert.Equal(t, int64(100), r.Weeks[0].Revenue)
	require.Len(t, r.Months, 1)
	assert.Equal(t, "2024-03", r.Months[0].Key)

	r, err = f.svc.Rollups(ctx, PriceCurrent, analytics.RevenuePerStay)
	require.NoError(t, err)
	assert.Equal(t, int64(300), r.Weeks[0].Revenue)

	_, err = f.svc.Rollups(ctx, PriceCurrent, "per_guest")
	assert.ErrorIs(t, err, ErrInvalidRevenueMode)
}

func TestStats_LoadFailure(t *testing.T) {
	f := newFixture(t)
	f.bookings.Err = errors.New("connection refused")

	_, err := f.svc.Stats(context.Background(), PriceCurrent)
	assert.Error(t, err)
}
