package room

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

type CreateRequest struct {
	Name        string
	Description string
	Price       int64
	ImageURL    string
	ImageFileID *string
}

// ImageRemover deletes an uploaded image by file ID.
type ImageRemover interface {
	Delete(ctx context.Context, id string) error
}

type Service interface {
	Create(ctx context.Context, req CreateRequest, isAdmin bool) (*Room, error)
	GetByID(ctx context.Context, id int64) (*Room, error)
	List(ctx context.Context) ([]*Room, error)
	Prices(ctx context.Context) (PriceIndex, error)
	UpdatePrice(ctx context.Context, id int64, price int64, isAdmin bool) (*Room, error)
	Delete(ctx context.Context, id int64, isAdmin bool) error
}

type service struct {
	repo   Repository
	images ImageRemover
}

// NewService creates the room service. images may be nil when uploads are disabled.
func NewService(repo Repository, images ImageRemover) Service {
	return &service{
		repo:   repo,
		images: images,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest, isAdmin bool) (*Room, error) {
	if !isAdmin {
		return nil, ErrPermissionDenied
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if req.Price < 0 {
		return nil, ErrNegativePrice
	}

	rm := &Room{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		ImageFileID: req.ImageFileID,
	}
	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Room, error) {
	return s.repo.List(ctx)
}

func (s *service) Prices(ctx context.Context) (PriceIndex, error) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewPriceIndex(rooms), nil
}

// UpdatePrice changes the nightly price in place. Past bookings keep the
// price they were quoted at; only the room row changes.
func (s *service) UpdatePrice(ctx context.Context, id int64, price int64, isAdmin bool) (*Room, error) {
	if !isAdmin {
		return nil, ErrPermissionDenied
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if err := s.repo.UpdatePrice(ctx, id, price); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64, isAdmin bool) error {
	if !isAdmin {
		return ErrPermissionDenied
	}
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// The row is gone; a leftover image file is only wasted disk.
	if rm.ImageFileID != nil && s.images != nil {
		if err := s.images.Delete(ctx, *rm.ImageFileID); err != nil {
			log.Ctx(ctx).Warn().Err(err).Int64("room_id", id).Str("file_id", *rm.ImageFileID).Msg("Failed to delete room image")
		}
	}
	return nil
}
