package seed_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bisfor/hotel-booking-backend/internal/facility"
	"github.com/bisfor/hotel-booking-backend/internal/room"
	"github.com/bisfor/hotel-booking-backend/internal/seed"
	"github.com/bisfor/hotel-booking-backend/internal/testutil"
)

const doc = `
rooms:
  - name: Single Room
    description: One bed
    price: 80
  - name: Suite
    price: 250
    image_url: /images/suite.jpg
facilities:
  - name: Pool
    description: Outdoor pool
`

func TestParse(t *testing.T) {
	f, err := seed.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, f.Rooms, 2)
	assert.Equal(t, int64(250), f.Rooms[1].Price)
	assert.Equal(t, "/images/suite.jpg", f.Rooms[1].ImageURL)
	require.Len(t, f.Facilities, 1)

	empty, err := seed.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Rooms)
}

func TestParse_Invalid(t *testing.T) {
	for name, in := range map[string]string{
		"unknown key":    "rooms:\n  - name: A\n    cost: 10\n",
		"negative price": "rooms:\n  - name: A\n    price: -1\n",
		"missing name":   "facilities:\n  - description: x\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := seed.Parse(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestApply_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	roomRepo := testutil.NewRoomRepository()
	facilityRepo := testutil.NewFacilityRepository()
	a := &seed.Applier{
		RoomFinder:      roomRepo,
		RoomService:     room.NewService(roomRepo, nil),
		FacilityFinder:  facilityRepo,
		FacilityService: facility.NewService(facilityRepo),
	}

	f, err := seed.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	res, err := a.Apply(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Rooms: 2, Facilities: 1}, res)

	res, err = a.Apply(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{}, res)

	rooms, err := roomRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}
