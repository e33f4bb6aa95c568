package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/bisfor/hotel-booking-backend/internal/booking"
)

// BookingRepository is an in-memory booking.Repository.
type BookingRepository struct {
	mu       sync.Mutex
	bookings map[int64]*booking.Booking
	nextID   int64
	clock    *Clock

	Err error
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{
		bookings: make(map[int64]*booking.Booking),
		clock:    defaultClock(),
	}
}

// References reports whether any booking points at roomID. It can be
// plugged into RoomRepository.InUse to mimic the foreign key.
func (r *BookingRepository) References(roomID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.RoomID == roomID {
			return true
		}
	}
	return false
}

func (r *BookingRepository) Create(_ context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.nextID++
	b.ID = r.nextID
	b.CreatedAt = r.clock.Next()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *BookingRepository) GetByID(_ context.Context, id int64) (*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *BookingRepository) List(_ context.Context, filter booking.Filter) ([]*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*booking.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if filter.CheckIn != nil && !b.CheckIn.Equal(*filter.CheckIn) {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *BookingRepository) UpdateStatus(_ context.Context, id int64, from, to booking.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	b, ok := r.bookings[id]
	if !ok {
		return false, booking.ErrNotFound
	}
	if b.Status != from {
		return false, nil
	}
	b.Status = to
	b.UpdatedAt = r.clock.Next()
	return true, nil
}

func (r *BookingRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.bookings[id]; !ok {
		return booking.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}
