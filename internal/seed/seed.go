// Package seed loads reference rooms and facilities from a YAML file.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/bisfor/hotel-booking-backend/internal/facility"
	"github.com/bisfor/hotel-booking-backend/internal/room"
)

type Room struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       int64  `yaml:"price"`
	ImageURL    string `yaml:"image_url"`
}

type Facility struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

// File is the layout of a seed document.
type File struct {
	Rooms      []Room     `yaml:"rooms"`
	Facilities []Facility `yaml:"facilities"`
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	for i, rm := range f.Rooms {
		if strings.TrimSpace(rm.Name) == "" {
			return nil, fmt.Errorf("rooms[%d]: name is required", i)
		}
		if rm.Price < 0 {
			return nil, fmt.Errorf("rooms[%d]: price cannot be negative", i)
		}
	}
	for i, fc := range f.Facilities {
		if strings.TrimSpace(fc.Name) == "" {
			return nil, fmt.Errorf("facilities[%d]: name is required", i)
		}
	}
	return &f, nil
}

// RoomFinder looks rooms up by name.
type RoomFinder interface {
	GetByName(ctx context.Context, name string) (*room.Room, error)
}

// FacilityFinder looks facilities up by name.
type FacilityFinder interface {
	GetByName(ctx context.Context, name string) (*facility.Facility, error)
}

// Result counts what Apply inserted.
type Result struct {
	Rooms      int
	Facilities int
}

// Applier inserts seed entries that do not exist yet, matched by name.
type Applier struct {
	RoomFinder      RoomFinder
	RoomService     room.Service
	FacilityFinder  FacilityFinder
	FacilityService facility.Service
}

// Apply is safe to run repeatedly; existing names are skipped.
func (a *Applier) Apply(ctx context.Context, f *File) (Result, error) {
	var res Result

	for _, rm := range f.Rooms {
		_, err := a.RoomFinder.GetByName(ctx, strings.TrimSpace(rm.Name))
		if err == nil {
			continue
		}
		if !errors.Is(err, room.ErrNotFound) {
			return res, fmt.Errorf("failed to look up room %q: %w", rm.Name, err)
		}
		if _, err := a.RoomService.Create(ctx, room.CreateRequest{
			Name:        rm.Name,
			Description: rm.Description,
			Price:       rm.Price,
			ImageURL:    rm.ImageURL,
		}, true); err != nil {
			return res, fmt.Errorf("failed to create room %q: %w", rm.Name, err)
		}
		log.Ctx(ctx).Info().Str("room", rm.Name).Int64("price", rm.Price).Msg("Seeded room")
		res.Rooms++
	}

	for _, fc := range f.Facilities {
		_, err := a.FacilityFinder.GetByName(ctx, strings.TrimSpace(fc.Name))
		if err == nil {
			continue
		}
		if !errors.Is(err, facility.ErrNotFound) {
			return res, fmt.Errorf("failed to look up facility %q: %w", fc.Name, err)
		}
		if _, err := a.FacilityService.Create(ctx, facility.CreateRequest{
			Name:        fc.Name,
			Description: fc.Description,
			Image:       fc.Image,
		}, true); err != nil {
			return res, fmt.Errorf("failed to create facility %q: %w", fc.Name, err)
		}
		log.Ctx(ctx).Info().Str("facility", fc.Name).Msg("Seeded facility")
		res.Facilities++
	}

	return res, nil
}
