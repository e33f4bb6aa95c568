package room

import (
	"net/http"
	"time"

	"github.com/bisfor/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "room not found")
	ErrEmptyName        = apperror.New(http.StatusBadRequest, "room name cannot be empty")
	ErrNegativePrice    = apperror.New(http.StatusBadRequest, "room price cannot be negative")
	ErrInUse            = apperror.New(http.StatusConflict, "room still has bookings")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

// Room is a bookable room type with a nightly price.
type Room struct {
	ID          int64
	Name        string
	Description string
	Price       int64 // nightly, whole currency units
	ImageURL    string
	ImageFileID *string // set when the image was uploaded through the file service
	CreatedAt   time.Time
}

// PriceIndex maps room IDs to their current nightly price.
type PriceIndex map[int64]int64

// NewPriceIndex indexes the given rooms by ID.
func NewPriceIndex(rooms []*Room) PriceIndex {
	idx := make(PriceIndex, len(rooms))
	for _, r := range rooms {
		idx[r.ID] = r.Price
	}
	return idx
}

// PriceOf returns the nightly price of the room, or 0 for an unknown room.
// Callers rely on the zero fallback; an unknown ID is not an error.
func (p PriceIndex) PriceOf(roomID int64) int64 {
	return p[roomID]
}
