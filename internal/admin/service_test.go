package admin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bisfor/hotel-booking-backend/internal/admin"
	"github.com/bisfor/hotel-booking-backend/internal/auth"
	"github.com/bisfor/hotel-booking-backend/internal/testutil"
)

func newService() (admin.Service, *testutil.AdminRepository) {
	repo := testutil.NewAdminRepository()
	return admin.NewService(repo, auth.NewBcryptPasswordHasherWithCost(bcrypt.MinCost)), repo
}

func TestCreate(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, " ", "password123", "")
	assert.ErrorIs(t, err, admin.ErrEmailRequired)

	_, err = svc.Create(ctx, "owner@example.com", "short", "")
	assert.ErrorIs(t, err, admin.ErrPasswordTooShort)

	a, err := svc.Create(ctx, " Owner@Example.com", "password123", " Owner ")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", a.Email)
	require.NotNil(t, a.DisplayName)
	assert.Equal(t, "Owner", *a.DisplayName)
	assert.NotEqual(t, "password123", a.PasswordHash)
	assert.True(t, a.IsActive)

	_, err = svc.Create(ctx, "owner@example.com", "password456", "")
	assert.ErrorIs(t, err, admin.ErrEmailAlreadyUsed)
}

func TestLogin(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner@example.com", "password123", "")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "owner@example.com", "wrong-password")
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)

	a, err := svc.Login(ctx, "OWNER@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, a.ID)
	assert.NotNil(t, a.LastLoginAt)

	repo.SetActive(created.ID, false)
	_, err = svc.Login(ctx, "owner@example.com", "password123")
	assert.ErrorIs(t, err, admin.ErrInactive)
}

func TestEnsureBootstrap(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	a, err := svc.EnsureBootstrap(ctx, "root@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, a)

	again, err := svc.EnsureBootstrap(ctx, "other@example.com", "password123")
	require.NoError(t, err)
	assert.Nil(t, again)

	got, err := svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", got.Email)
}
