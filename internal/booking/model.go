package booking

import (
	"net/http"
	"time"

	"github.com/bisfor/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidStay      = apperror.New(http.StatusBadRequest, "check-out must be at least one night after check-in")
	ErrPriceMismatch    = apperror.New(http.StatusConflict, "total price does not match the current room price")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room not found")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
	ErrInvalidInput     = apperror.New(http.StatusBadRequest, "invalid input parameters")
	ErrInvalidGuests    = apperror.New(http.StatusBadRequest, "guest count must be at least 1")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

// Booking is a guest's reservation of one room for a range of nights.
// RoomName, PricePerNight and TotalPrice are snapshots taken when the
// booking was created and do not follow later room edits.
type Booking struct {
	ID            int64
	Name          string
	Email         string
	RoomID        int64
	RoomName      string
	Guests        int
	CheckIn       time.Time
	CheckOut      time.Time
	Nights        int
	PricePerNight int64
	TotalPrice    int64
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter narrows repository listings. Zero values mean no filtering.
type Filter struct {
	CheckIn *time.Time
	Status  Status
}
