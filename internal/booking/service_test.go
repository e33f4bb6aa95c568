package booking_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bisfor/hotel-booking-backend/internal/booking"
	"github.com/bisfor/hotel-booking-backend/internal/room"
	"github.com/bisfor/hotel-booking-backend/internal/stay"
	"github.com/bisfor/hotel-booking-backend/internal/testutil"
)

type recordingNotifier struct {
	mu        sync.Mutex
	confirmed []int64
}

func (n *recordingNotifier) BookingConfirmed(b *booking.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmed = append(n.confirmed, b.ID)
}

type fixture struct {
	svc      booking.Service
	repo     *testutil.BookingRepository
	rooms    room.Service
	notifier *recordingNotifier
	suite    *room.Room
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	roomRepo := testutil.NewRoomRepository()
	rooms := room.NewService(roomRepo, nil)
	suite, err := rooms.Create(ctx, room.CreateRequest{Name: "Suite", Price: 250}, true)
	require.NoError(t, err)

	repo := testutil.NewBookingRepository()
	roomRepo.InUse = repo.References
	notifier := &recordingNotifier{}

	return &fixture{
		svc:      booking.NewService(repo, rooms, notifier),
		repo:     repo,
		rooms:    rooms,
		notifier: notifier,
		suite:    suite,
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := stay.ParseDate(s)
	require.NoError(t, err)
	return d
}

func (f *fixture) request(t *testing.T, in, out string) booking.CreateRequest {
	return booking.CreateRequest{
		Name:     "Ayu",
		Email:    "Ayu@Example.com ",
		RoomID:   f.suite.ID,
		Guests:   2,
		CheckIn:  mustDate(t, in),
		CheckOut: mustDate(t, out),
	}
}

func TestQuote(t *testing.T) {
	f := newFixture(t)

	q, err := f.svc.Quote(context.Background(), f.suite.ID, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-04"))
	require.NoError(t, err)
	assert.Equal(t, "Suite", q.RoomName)
	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, int64(750), q.TotalPrice)
	assert.True(t, q.Bookable())

	q, err = f.svc.Quote(context.Background(), f.suite.ID, mustDate(t, "2024-01-04"), mustDate(t, "2024-01-01"))
	require.NoError(t, err)
	assert.False(t, q.Bookable())
	assert.Equal(t, int64(0), q.TotalPrice)

	_, err = f.svc.Quote(context.Background(), 999, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-04"))
	assert.ErrorIs(t, err, booking.ErrRoomNotFound)
}

func TestCreate_SnapshotsRoomAndPrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, f.request(t, "2024-01-01", "2024-01-04"))
	require.NoError(t, err)

	assert.NotZero(t, b.ID)
	assert.Equal(t, "ayu@example.com", b.Email)
	assert.Equal(t, "Suite", b.RoomName)
	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, int64(250), b.PricePerNight)
	assert.Equal(t, int64(750), b.TotalPrice)
	assert.Equal(t, booking.StatusPending, b.Status)

	// A later price edit does not touch the stored booking.
	_, err = f.rooms.UpdatePrice(ctx, f.suite.ID, 400, true)
	require.NoError(t, err)

	stored, err := f.svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(750), stored.TotalPrice)
}

func TestCreate_RejectsNonPositiveStays(t *testing.T) {
	f := newFixture(t)

	for _, tc := range []struct{ in, out string }{
		{"2024-01-04", "2024-01-04"},
		{"2024-01-04", "2024-01-01"},
	} {
		_, err := f.svc.Create(context.Background(), f.request(t, tc.in, tc.out))
		assert.ErrorIs(t, err, booking.ErrInvalidStay)
	}

	all, err := f.svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := f.request(t, "2024-01-01", "2024-01-02")
	req.Guests = 0
	_, err := f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, booking.ErrInvalidGuests)

	req = f.request(t, "2024-01-01", "2024-01-02")
	req.Name = "  "
	_, err = f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, booking.ErrInvalidInput)

	req = f.request(t, "2024-01-01", "2024-01-02")
	req.RoomID = 999
	_, err = f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, booking.ErrRoomNotFound)
}

func TestCreate_ClientPriceMustMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := f.request(t, "2024-01-01", "2024-01-03")
	wrong := int64(300)
	req.TotalPrice = &wrong
	_, err := f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, booking.ErrPriceMismatch)

	right := int64(500)
	req.TotalPrice = &right
	b, err := f.svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(500), b.TotalPrice)
}

func TestGetForGuest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, f.request(t, "2024-01-01", "2024-01-02"))
	require.NoError(t, err)

	got, err := f.svc.GetForGuest(ctx, b.ID, "AYU@example.com")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = f.svc.GetForGuest(ctx, b.ID, "someone@example.com")
	assert.ErrorIs(t, err, booking.ErrNotFound)

	_, err = f.svc.GetForGuest(ctx, b.ID, "")
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestConfirmPayment_IsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, f.request(t, "2024-01-01", "2024-01-02"))
	require.NoError(t, err)

	got, err := f.svc.ConfirmPayment(ctx, b.ID, "ayu@example.com")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, got.Status)

	got, err = f.svc.ConfirmPayment(ctx, b.ID, "ayu@example.com")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, got.Status)

	assert.Equal(t, []int64{b.ID}, f.notifier.confirmed)

	_, err = f.svc.ConfirmPayment(ctx, b.ID, "other@example.com")
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

// gatedRepository holds the first two reads until both have happened, so
// two confirmations see the booking as pending at the same time.
type gatedRepository struct {
	*testutil.BookingRepository
	mu    sync.Mutex
	reads int
	both  chan struct{}
}

func (r *gatedRepository) GetByID(ctx context.Context, id int64) (*booking.Booking, error) {
	r.mu.Lock()
	r.reads++
	n := r.reads
	if n == 2 {
		close(r.both)
	}
	r.mu.Unlock()

	if n <= 2 {
		<-r.both
	}
	return r.BookingRepository.GetByID(ctx, id)
}

func TestConfirmPayment_ConcurrentNotifiesOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, f.request(t, "2024-01-01", "2024-01-02"))
	require.NoError(t, err)

	repo := &gatedRepository{BookingRepository: f.repo, both: make(chan struct{})}
	svc := booking.NewService(repo, f.rooms, f.notifier)

	var wg sync.WaitGroup
	results := make([]*booking.Booking, 2)
	errs := make([]error, 2)
	for i := range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = svc.ConfirmPayment(ctx, b.ID, "ayu@example.com")
		}()
	}
	wg.Wait()

	for i := range 2 {
		require.NoError(t, errs[i])
		assert.Equal(t, booking.StatusConfirmed, results[i].Status)
	}
	assert.Equal(t, []int64{b.ID}, f.notifier.confirmed)
}

func TestUpdateStatus_OnlyFromExpectedStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, f.request(t, "2024-01-01", "2024-01-02"))
	require.NoError(t, err)

	updated, err := f.repo.UpdateStatus(ctx, b.ID, booking.StatusConfirmed, booking.StatusPending)
	require.NoError(t, err)
	assert.False(t, updated)

	require.NoError(t, f.repo.Delete(ctx, b.ID))
	_, err = f.repo.UpdateStatus(ctx, b.ID, booking.StatusPending, booking.StatusConfirmed)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestListByCheckIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.svc.Create(ctx, f.request(t, "2024-01-02", "2024-01-03"))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.request(t, "2024-01-02", "2024-01-04"))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.request(t, "2024-01-05", "2024-01-06"))
	require.NoError(t, err)
	_, err = f.svc.ConfirmPayment(ctx, a.ID, "ayu@example.com")
	require.NoError(t, err)

	// Time of day and zone are ignored.
	when := time.Date(2024, 1, 2, 17, 30, 0, 0, time.UTC)

	all, err := f.svc.ListByCheckIn(ctx, when, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	confirmed, err := f.svc.ListByCheckIn(ctx, when, booking.StatusConfirmed)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, a.ID, confirmed[0].ID)
}

func TestListAll_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.request(t, "2024-01-01", "2024-01-02"))
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, f.request(t, "2024-01-01", "2024-01-02"))
	require.NoError(t, err)

	all, err := f.svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestDelete_RequiresAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, f.request(t, "2024-01-01", "2024-01-02"))
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(ctx, b.ID, false), booking.ErrPermissionDenied)
	_, err = f.svc.GetByID(ctx, b.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, b.ID, true))
	_, err = f.svc.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, booking.ErrNotFound)

	assert.ErrorIs(t, f.svc.Delete(ctx, b.ID, true), booking.ErrNotFound)
}

func TestRoomWithBookingsCannotBeDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.request(t, "2024-01-01", "2024-01-02"))
	require.NoError(t, err)

	assert.ErrorIs(t, f.rooms.Delete(ctx, f.suite.ID, true), room.ErrInUse)
}
