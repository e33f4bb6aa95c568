package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bisfor/hotel-booking-backend/internal/admin"
)

// AdminRepository is an in-memory admin.Repository.
type AdminRepository struct {
	mu     sync.Mutex
	admins map[string]*admin.Admin
	clock  *Clock
}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		admins: make(map[string]*admin.Admin),
		clock:  defaultClock(),
	}
}

// SetActive flips an account's active flag.
func (r *AdminRepository) SetActive(id string, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.admins[id]; ok {
		a.IsActive = active
	}
}

func (r *AdminRepository) GetByEmail(_ context.Context, email string) (*admin.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, admin.ErrNotFound
}

func (r *AdminRepository) GetByID(_ context.Context, id string) (*admin.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[id]
	if !ok {
		return nil, admin.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *AdminRepository) Create(_ context.Context, a *admin.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.admins {
		if existing.Email == a.Email {
			return admin.ErrEmailAlreadyUsed
		}
	}
	a.ID = uuid.NewString()
	a.CreatedAt = r.clock.Next()
	cp := *a
	r.admins[a.ID] = &cp
	return nil
}

func (r *AdminRepository) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[id]
	if !ok {
		return admin.ErrNotFound
	}
	a.LastLoginAt = &t
	return nil
}

func (r *AdminRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.admins), nil
}
