package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Get when no object exists at the path.
var ErrNotFound = errors.New("stored object not found")

// Storage defines the interface for image and file storage operations.
type Storage interface {
	// Save writes content to the relative path, creating parent directories.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the object stored at the relative path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the object at the relative path. Missing objects are not an error.
	Delete(ctx context.Context, path string) error
}
