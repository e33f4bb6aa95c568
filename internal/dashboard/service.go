// Package dashboard loads bookings and room prices for the admin
// dashboard and runs the analytics over them.
package dashboard

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bisfor/hotel-booking-backend/internal/analytics"
	"github.com/bisfor/hotel-booking-backend/internal/booking"
	"github.com/bisfor/hotel-booking-backend/internal/pkg/apperror"
	"github.com/bisfor/hotel-booking-backend/internal/room"
)

var (
	ErrInvalidPriceSource = apperror.New(http.StatusBadRequest, "price_source must be current or booked")
	ErrInvalidRevenueMode = apperror.New(http.StatusBadRequest, "revenue must be per_booking or per_stay")
)

// PriceSource selects which nightly price income is computed from.
type PriceSource string

const (
	// PriceCurrent uses each room's price today.
	PriceCurrent PriceSource = "current"
	// PriceBooked uses the price recorded on each booking.
	PriceBooked PriceSource = "booked"
)

type Service interface {
	Stats(ctx context.Context, source PriceSource) (analytics.Stats, error)
	Rollups(ctx context.Context, source PriceSource, mode analytics.RevenueMode) (analytics.Rollups, error)
}

type service struct {
	bookings booking.Service
	rooms    room.Service
	location *time.Location
	now      func() time.Time
}

// NewService creates the dashboard service. loc is the hotel's timezone.
func NewService(bookings booking.Service, rooms room.Service, loc *time.Location) Service {
	if loc == nil {
		loc = time.Local
	}
	return &service{
		bookings: bookings,
		rooms:    rooms,
		location: loc,
		now:      time.Now,
	}
}

// load fetches bookings and, when needed, room prices concurrently.
// Either failure fails the whole read.
func (s *service) load(ctx context.Context, source PriceSource) ([]*booking.Booking, analytics.PriceFunc, error) {
	if source == "" {
		source = PriceCurrent
	}
	if source != PriceCurrent && source != PriceBooked {
		return nil, nil, ErrInvalidPriceSource
	}

	var (
		list   []*booking.Booking
		prices room.PriceIndex
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = s.bookings.ListAll(gctx)
		return err
	})
	if source == PriceCurrent {
		g.Go(func() error {
			var err error
			prices, err = s.rooms.Prices(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if source == PriceBooked {
		return list, analytics.BookedPrice, nil
	}
	return list, analytics.CurrentPrice(prices), nil
}

func (s *service) Stats(ctx context.Context, source PriceSource) (analytics.Stats, error) {
	list, price, err := s.load(ctx, source)
	if err != nil {
		return analytics.Stats{}, err
	}
	return analytics.Summarize(list, price, s.now(), s.location), nil
}

func (s *service) Rollups(ctx context.Context, source PriceSource, mode analytics.RevenueMode) (analytics.Rollups, error) {
	if mode == "" {
		mode = analytics.RevenuePerBooking
	}
	if !mode.Valid() {
		return analytics.Rollups{}, ErrInvalidRevenueMode
	}

	list, price, err := s.load(ctx, source)
	if err != nil {
		return analytics.Rollups{}, err
	}
	return analytics.Rollup(list, price, mode), nil
}
