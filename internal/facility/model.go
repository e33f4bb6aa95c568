package facility

import (
	"net/http"
	"time"

	"github.com/bisfor/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "facility not found")
	ErrNameRequired     = apperror.New(http.StatusBadRequest, "name is required")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

// Facility is an amenity shown on the public site (pool, spa, restaurant).
type Facility struct {
	ID          int64
	Name        string
	Description string
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
