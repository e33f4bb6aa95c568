package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bisfor/hotel-booking-backend/internal/room"
	"github.com/bisfor/hotel-booking-backend/internal/stay"
)

type CreateRequest struct {
	Name     string
	Email    string
	RoomID   int64
	Guests   int
	CheckIn  time.Time
	CheckOut time.Time
	// TotalPrice is the amount the guest was shown, if the client sent one.
	TotalPrice *int64
}

// Quote is a priced prospective stay in a specific room.
type Quote struct {
	RoomID        int64
	RoomName      string
	PricePerNight int64
	stay.Quote
}

// Notifier is told about bookings whose payment was confirmed.
// Implementations must not block the caller.
type Notifier interface {
	BookingConfirmed(b *Booking)
}

type Service interface {
	Quote(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (*Quote, error)
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id int64) (*Booking, error)
	GetForGuest(ctx context.Context, id int64, email string) (*Booking, error)
	ListAll(ctx context.Context) ([]*Booking, error)
	ListByCheckIn(ctx context.Context, date time.Time, status Status) ([]*Booking, error)
	ConfirmPayment(ctx context.Context, id int64, email string) (*Booking, error)
	Delete(ctx context.Context, id int64, isAdmin bool) error
}

type service struct {
	repo        Repository
	roomService room.Service
	notifier    Notifier
}

// NewService creates the booking service. notifier may be nil.
func NewService(repo Repository, roomService room.Service, notifier Notifier) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
		notifier:    notifier,
	}
}

func (s *service) getRoom(ctx context.Context, roomID int64) (*room.Room, error) {
	rm, err := s.roomService.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return rm, nil
}

// Quote prices a stay at the room's current nightly rate. A stay of zero
// nights is returned as a non-bookable quote rather than an error.
func (s *service) Quote(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (*Quote, error) {
	rm, err := s.getRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return &Quote{
		RoomID:        rm.ID,
		RoomName:      rm.Name,
		PricePerNight: rm.Price,
		Quote:         stay.Compute(checkIn, checkOut, rm.Price),
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" {
		return nil, ErrInvalidInput
	}
	if req.Guests < 1 {
		return nil, ErrInvalidGuests
	}

	// Cheap date check first so an invalid stay never costs a lookup.
	if stay.Nights(req.CheckIn, req.CheckOut) <= 0 {
		return nil, ErrInvalidStay
	}

	q, err := s.Quote(ctx, req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if req.TotalPrice != nil && *req.TotalPrice != q.TotalPrice {
		return nil, ErrPriceMismatch
	}

	b := &Booking{
		Name:          name,
		Email:         email,
		RoomID:        q.RoomID,
		RoomName:      q.RoomName,
		Guests:        req.Guests,
		CheckIn:       stay.DateOf(req.CheckIn),
		CheckOut:      stay.DateOf(req.CheckOut),
		Nights:        q.Nights,
		PricePerNight: q.PricePerNight,
		TotalPrice:    q.TotalPrice,
		Status:        StatusPending,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

// GetForGuest returns the booking only when email matches the guest's.
// A mismatch is reported as not found so IDs cannot be probed.
func (s *service) GetForGuest(ctx context.Context, id int64, email string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if normalizeEmail(email) == "" || normalizeEmail(email) != normalizeEmail(b.Email) {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *service) ListAll(ctx context.Context) ([]*Booking, error) {
	return s.repo.List(ctx, Filter{})
}

func (s *service) ListByCheckIn(ctx context.Context, date time.Time, status Status) ([]*Booking, error) {
	d := stay.DateOf(date)
	return s.repo.List(ctx, Filter{CheckIn: &d, Status: status})
}

// ConfirmPayment marks a pending booking as paid and notifies the guest.
// Confirming an already confirmed booking is a no-op. When confirmations
// race, only the one whose update lands notifies.
func (s *service) ConfirmPayment(ctx context.Context, id int64, email string) (*Booking, error) {
	b, err := s.GetForGuest(ctx, id, email)
	if err != nil {
		return nil, err
	}
	if b.Status == StatusConfirmed {
		return b, nil
	}

	updated, err := s.repo.UpdateStatus(ctx, id, StatusPending, StatusConfirmed)
	if err != nil {
		return nil, err
	}
	if !updated {
		return s.repo.GetByID(ctx, id)
	}
	b.Status = StatusConfirmed
	b.UpdatedAt = time.Now().UTC()

	log.Ctx(ctx).Info().Int64("booking_id", b.ID).Msg("Booking payment confirmed")
	if s.notifier != nil {
		s.notifier.BookingConfirmed(b)
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id int64, isAdmin bool) error {
	if !isAdmin {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
