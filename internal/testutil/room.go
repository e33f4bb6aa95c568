package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/bisfor/hotel-booking-backend/internal/room"
)

// RoomRepository is an in-memory room.Repository.
type RoomRepository struct {
	mu     sync.Mutex
	rooms  map[int64]*room.Room
	nextID int64
	clock  *Clock

	// InUse reports whether bookings still reference the room.
	InUse func(roomID int64) bool
	// Err, when set, is returned by every method.
	Err error
}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{
		rooms: make(map[int64]*room.Room),
		clock: defaultClock(),
	}
}

func (r *RoomRepository) Create(_ context.Context, rm *room.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.nextID++
	rm.ID = r.nextID
	rm.CreatedAt = r.clock.Next()
	cp := *rm
	r.rooms[rm.ID] = &cp
	return nil
}

func (r *RoomRepository) GetByID(_ context.Context, id int64) (*room.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	rm, ok := r.rooms[id]
	if !ok {
		return nil, room.ErrNotFound
	}
	cp := *rm
	return &cp, nil
}

func (r *RoomRepository) GetByName(_ context.Context, name string) (*room.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, rm := range r.rooms {
		if rm.Name == name {
			cp := *rm
			return &cp, nil
		}
	}
	return nil, room.ErrNotFound
}

func (r *RoomRepository) List(_ context.Context) ([]*room.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*room.Room, 0, len(r.rooms))
	for _, rm := range r.rooms {
		cp := *rm
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *RoomRepository) UpdatePrice(_ context.Context, id int64, price int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	rm, ok := r.rooms[id]
	if !ok {
		return room.ErrNotFound
	}
	rm.Price = price
	return nil
}

func (r *RoomRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.rooms[id]; !ok {
		return room.ErrNotFound
	}
	if r.InUse != nil && r.InUse(id) {
		return room.ErrInUse
	}
	delete(r.rooms, id)
	return nil
}
