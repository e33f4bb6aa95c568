package http

import (
	"time"

	"github.com/bisfor/hotel-booking-backend/internal/booking"
	"github.com/bisfor/hotel-booking-backend/internal/payment"
	"github.com/bisfor/hotel-booking-backend/internal/stay"
)

// QuoteRequest asks for the price of a prospective stay.
type QuoteRequest struct {
	RoomID   int64  `json:"room_id" binding:"required,min=1"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

// Dates parses the stay dates.
func (r *QuoteRequest) Dates() (time.Time, time.Time, error) {
	return parseStay(r.CheckIn, r.CheckOut)
}

type QuoteResponse struct {
	RoomID        int64  `json:"room_id"`
	RoomName      string `json:"room_name"`
	PricePerNight int64  `json:"price_per_night"`
	Nights        int    `json:"nights"`
	TotalPrice    int64  `json:"total_price"`
	Bookable      bool   `json:"bookable"`
}

func NewQuoteResponse(q *booking.Quote) QuoteResponse {
	return QuoteResponse{
		RoomID:        q.RoomID,
		RoomName:      q.RoomName,
		PricePerNight: q.PricePerNight,
		Nights:        q.Nights,
		TotalPrice:    q.TotalPrice,
		Bookable:      q.Bookable(),
	}
}

type CreateBookingRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	RoomID   int64  `json:"room_id" binding:"required,min=1"`
	Guests   int    `json:"guests" binding:"required,min=1"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	// Optional; when sent it must equal the server-side quote.
	TotalPrice *int64 `json:"total_price" binding:"omitempty,min=0"`
}

// Dates parses the stay dates.
func (r *CreateBookingRequest) Dates() (time.Time, time.Time, error) {
	return parseStay(r.CheckIn, r.CheckOut)
}

// GuestLookupRequest identifies the guest reading back a booking.
type GuestLookupRequest struct {
	Email string `form:"email" binding:"required,email"`
	Size  int    `form:"size" binding:"omitempty,min=1"`
}

type ConfirmPaymentRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ListBookingsRequest defines the admin table's filter and sort options.
type ListBookingsRequest struct {
	ThisWeek bool   `form:"this_week"`
	Room     string `form:"room"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=created_at check_in check_out"`
}

// Options converts the query into pipeline options.
func (r *ListBookingsRequest) Options() booking.ViewOptions {
	opts := booking.ViewOptions{
		WeekOnly: r.ThisWeek,
		RoomName: r.Room,
		SortKey:  booking.SortKey(r.SortBy),
	}
	if opts.RoomName == "" {
		opts.RoomName = booking.AllRooms
	}
	if opts.SortKey == "" {
		opts.SortKey = booking.SortByCreatedAt
	}
	return opts
}

type RoomTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Room             RoomTag   `json:"room"`
	Guests           int       `json:"guests"`
	CheckIn          string    `json:"check_in"`
	CheckOut         string    `json:"check_out"`
	Nights           int       `json:"nights"`
	PricePerNight    int64     `json:"price_per_night"`
	TotalPrice       int64     `json:"total_price"`
	Status           string    `json:"status"`
	PaymentReference string    `json:"payment_reference"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		Name:             b.Name,
		Email:            b.Email,
		Room:             RoomTag{ID: b.RoomID, Name: b.RoomName},
		Guests:           b.Guests,
		CheckIn:          b.CheckIn.Format(stay.DateLayout),
		CheckOut:         b.CheckOut.Format(stay.DateLayout),
		Nights:           b.Nights,
		PricePerNight:    b.PricePerNight,
		TotalPrice:       b.TotalPrice,
		Status:           string(b.Status),
		PaymentReference: payment.Reference(b),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := stay.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := stay.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}
