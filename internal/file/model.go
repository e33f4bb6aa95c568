package file

import (
	"net/http"
	"time"

	"github.com/bisfor/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound             = apperror.New(http.StatusNotFound, "file not found")
	ErrThumbnailUnavailable = apperror.New(http.StatusNotFound, "thumbnail not available for this file")
	ErrTooLarge             = apperror.New(http.StatusRequestEntityTooLarge, "file is too large")
	ErrTypeNotAllowed       = apperror.New(http.StatusUnsupportedMediaType, "file type is not allowed")
	ErrNotAnImage           = apperror.New(http.StatusBadRequest, "file is not a valid image")
)

// ImageTypes lists the MIME types accepted for room and facility pictures.
var ImageTypes = []string{"image/jpeg", "image/png"}

// File is an uploaded object tracked in the database.
type File struct {
	ID            string
	AdminID       *string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// FileURL returns the public URL for accessing a file by its ID.
func FileURL(id string) string {
	return "/v1/files/" + id
}

// ThumbnailURL returns the public URL for accessing a file's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/v1/files/" + id + "/thumbnail"
}
