package testutil

import (
	"context"
	"sync"

	"github.com/bisfor/hotel-booking-backend/internal/file"
)

// FileRepository is an in-memory file.Repository.
type FileRepository struct {
	mu    sync.Mutex
	files map[string]*file.File
	clock *Clock
}

func NewFileRepository() *FileRepository {
	return &FileRepository{
		files: make(map[string]*file.File),
		clock: defaultClock(),
	}
}

// Len returns the number of stored file records.
func (r *FileRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.files)
}

func (r *FileRepository) Create(_ context.Context, f *file.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f.CreatedAt = r.clock.Next()
	cp := *f
	r.files[f.ID] = &cp
	return nil
}

func (r *FileRepository) GetByID(_ context.Context, id string) (*file.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[id]
	if !ok {
		return nil, file.ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *FileRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.files[id]; !ok {
		return file.ErrNotFound
	}
	delete(r.files, id)
	return nil
}
