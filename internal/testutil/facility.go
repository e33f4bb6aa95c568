package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/bisfor/hotel-booking-backend/internal/facility"
)

// FacilityRepository is an in-memory facility.Repository.
type FacilityRepository struct {
	mu         sync.Mutex
	facilities map[int64]*facility.Facility
	nextID     int64
	clock      *Clock
}

func NewFacilityRepository() *FacilityRepository {
	return &FacilityRepository{
		facilities: make(map[int64]*facility.Facility),
		clock:      defaultClock(),
	}
}

func (r *FacilityRepository) Create(_ context.Context, f *facility.Facility) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	f.ID = r.nextID
	f.CreatedAt = r.clock.Next()
	f.UpdatedAt = f.CreatedAt
	cp := *f
	r.facilities[f.ID] = &cp
	return nil
}

func (r *FacilityRepository) GetByID(_ context.Context, id int64) (*facility.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.facilities[id]
	if !ok {
		return nil, facility.ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *FacilityRepository) GetByName(_ context.Context, name string) (*facility.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.facilities {
		if f.Name == name {
			cp := *f
			return &cp, nil
		}
	}
	return nil, facility.ErrNotFound
}

func (r *FacilityRepository) List(_ context.Context) ([]*facility.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*facility.Facility, 0, len(r.facilities))
	for _, f := range r.facilities {
		cp := *f
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *FacilityRepository) Update(_ context.Context, f *facility.Facility) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.facilities[f.ID]; !ok {
		return facility.ErrNotFound
	}
	f.UpdatedAt = r.clock.Next()
	cp := *f
	r.facilities[f.ID] = &cp
	return nil
}

func (r *FacilityRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.facilities[id]; !ok {
		return facility.ErrNotFound
	}
	delete(r.facilities, id)
	return nil
}
