package room_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bisfor/hotel-booking-backend/internal/room"
	"github.com/bisfor/hotel-booking-backend/internal/testutil"
)

type imageRemover struct {
	deleted []string
	err     error
}

func (r *imageRemover) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return r.err
}

func TestCreate(t *testing.T) {
	svc := room.NewService(testutil.NewRoomRepository(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, room.CreateRequest{Name: "Suite", Price: 100}, false)
	assert.ErrorIs(t, err, room.ErrPermissionDenied)

	_, err = svc.Create(ctx, room.CreateRequest{Name: "  ", Price: 100}, true)
	assert.ErrorIs(t, err, room.ErrEmptyName)

	_, err = svc.Create(ctx, room.CreateRequest{Name: "Suite", Price: -1}, true)
	assert.ErrorIs(t, err, room.ErrNegativePrice)

	rm, err := svc.Create(ctx, room.CreateRequest{Name: " Suite ", Description: "Sea view", Price: 0}, true)
	require.NoError(t, err)
	assert.NotZero(t, rm.ID)
	assert.Equal(t, "Suite", rm.Name)
	assert.Equal(t, int64(0), rm.Price)
}

func TestUpdatePrice(t *testing.T) {
	svc := room.NewService(testutil.NewRoomRepository(), nil)
	ctx := context.Background()

	rm, err := svc.Create(ctx, room.CreateRequest{Name: "Suite", Price: 100}, true)
	require.NoError(t, err)

	_, err = svc.UpdatePrice(ctx, rm.ID, 200, false)
	assert.ErrorIs(t, err, room.ErrPermissionDenied)

	_, err = svc.UpdatePrice(ctx, rm.ID, -5, true)
	assert.ErrorIs(t, err, room.ErrNegativePrice)

	_, err = svc.UpdatePrice(ctx, 999, 200, true)
	assert.ErrorIs(t, err, room.ErrNotFound)

	updated, err := svc.UpdatePrice(ctx, rm.ID, 200, true)
	require.NoError(t, err)
	assert.Equal(t, int64(200), updated.Price)
	assert.Equal(t, "Suite", updated.Name)
}

func TestPrices_UnknownRoomIsZero(t *testing.T) {
	svc := room.NewService(testutil.NewRoomRepository(), nil)
	ctx := context.Background()

	a, err := svc.Create(ctx, room.CreateRequest{Name: "A", Price: 120}, true)
	require.NoError(t, err)

	prices, err := svc.Prices(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), prices.PriceOf(a.ID))
	assert.Equal(t, int64(0), prices.PriceOf(a.ID+100))
}

func TestDelete_RemovesUploadedImage(t *testing.T) {
	images := &imageRemover{}
	svc := room.NewService(testutil.NewRoomRepository(), images)
	ctx := context.Background()

	fileID := "0b9c2c4e-5d3f-4a59-9d7e-0f3a7c1f2b11"
	rm, err := svc.Create(ctx, room.CreateRequest{Name: "Suite", Price: 100, ImageFileID: &fileID}, true)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, rm.ID, false), room.ErrPermissionDenied)
	assert.Empty(t, images.deleted)

	require.NoError(t, svc.Delete(ctx, rm.ID, true))
	assert.Equal(t, []string{fileID}, images.deleted)

	_, err = svc.GetByID(ctx, rm.ID)
	assert.ErrorIs(t, err, room.ErrNotFound)
}

func TestDelete_ImageFailureDoesNotFail(t *testing.T) {
	images := &imageRemover{err: errors.New("disk gone")}
	svc := room.NewService(testutil.NewRoomRepository(), images)
	ctx := context.Background()

	fileID := "file-1"
	rm, err := svc.Create(ctx, room.CreateRequest{Name: "Suite", Price: 100, ImageFileID: &fileID}, true)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rm.ID, true))
}

func TestDelete_InUse(t *testing.T) {
	repo := testutil.NewRoomRepository()
	repo.InUse = func(int64) bool { return true }
	images := &imageRemover{}
	svc := room.NewService(repo, images)
	ctx := context.Background()

	fileID := "file-1"
	rm, err := svc.Create(ctx, room.CreateRequest{Name: "Suite", Price: 100, ImageFileID: &fileID}, true)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, rm.ID, true), room.ErrInUse)
	assert.Empty(t, images.deleted)
}
