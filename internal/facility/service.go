package facility

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name        string
	Description string
	Image       string
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Image       *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest, isAdmin bool) (*Facility, error)
	GetByID(ctx context.Context, id int64) (*Facility, error)
	List(ctx context.Context) ([]*Facility, error)
	Update(ctx context.Context, id int64, req UpdateRequest, isAdmin bool) (*Facility, error)
	Delete(ctx context.Context, id int64, isAdmin bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest, isAdmin bool) (*Facility, error) {
	if !isAdmin {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	f := &Facility{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Image:       req.Image,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Facility, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Facility, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest, isAdmin bool) (*Facility, error) {
	if !isAdmin {
		return nil, ErrPermissionDenied
	}
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		f.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		f.Description = *req.Description
	}
	if req.Image != nil {
		f.Image = *req.Image
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) Delete(ctx context.Context, id int64, isAdmin bool) error {
	if !isAdmin {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}
