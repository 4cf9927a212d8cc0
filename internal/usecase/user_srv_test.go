package usecase_test

import (
	"context"
	"testing"

	"marketplace-auth/internal/data/entity"
	"marketplace-auth/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUserService(t *testing.T) (usecase.UserService, usecase.AuthService, *fakeRepos) {
	t.Helper()
	repos := newFakeRepos()
	cfg := testConfig()
	auth := usecase.NewAuthService(fakeDB{}, repos.group, cfg, zap.NewNop())
	users := usecase.NewUserService(repos.group, zap.NewNop())
	return users, auth, repos
}

func TestGetProfileVendor(t *testing.T) {
	users, auth, repos := newTestUserService(t)
	ctx := context.Background()

	_, err := auth.RegisterVendor(ctx, vendorRequest("vendor@example.com"))
	require.NoError(t, err)

	user, err := repos.users.FindByEmail(ctx, "vendor@example.com")
	require.NoError(t, err)

	profile, err := users.GetProfile(ctx, user.ID, entity.RoleVendor)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), profile.ID)
	assert.Equal(t, "vendor@example.com", profile.Email)
	assert.Equal(t, entity.RoleVendor, profile.Role)
	assert.Equal(t, "PT Maju Jaya", profile.CompanyName)
	assert.Equal(t, "01.234.567.8-901.000", profile.NPWP)
	assert.Equal(t, entity.VendorStatusPending, profile.Status)
	assert.Equal(t, entity.RegistrationTypeSelf, profile.RegistrationType)

	// Field milik client kosong
	assert.Empty(t, profile.ContactPerson)
}

func TestGetProfileClient(t *testing.T) {
	users, auth, repos := newTestUserService(t)
	ctx := context.Background()

	_, err := auth.RegisterClient(ctx, clientRequest("client@example.com"))
	require.NoError(t, err)

	user, err := repos.users.FindByEmail(ctx, "client@example.com")
	require.NoError(t, err)

	profile, err := users.GetProfile(ctx, user.ID, entity.RoleClient)
	require.NoError(t, err)

	assert.Equal(t, entity.RoleClient, profile.Role)
	assert.Equal(t, "PT Sentosa Abadi", profile.CompanyName)
	assert.Equal(t, "Budi Santoso", profile.ContactPerson)

	// Field milik vendor kosong
	assert.Empty(t, profile.NPWP)
	assert.Empty(t, profile.Status)
}

func TestGetProfileAdmin(t *testing.T) {
	users, _, repos := newTestUserService(t)
	ctx := context.Background()

	admin := newStoredUser(t, repos, "admin@example.com", entity.RoleAdmin)

	profile, err := users.GetProfile(ctx, admin.ID, entity.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, "admin@example.com", profile.Email)
	assert.Equal(t, entity.RoleAdmin, profile.Role)
	assert.Empty(t, profile.CompanyName)
}

func TestGetProfileUnknownUser(t *testing.T) {
	users, _, _ := newTestUserService(t)

	_, err := users.GetProfile(context.Background(), uuid.New(), entity.RoleClient)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestGetProfileMissingProfileRow(t *testing.T) {
	users, _, repos := newTestUserService(t)
	ctx := context.Background()

	// User ada tapi baris profile-nya tidak: anomali integritas
	orphan := newStoredUser(t, repos, "orphan@example.com", entity.RoleVendor)

	_, err := users.GetProfile(ctx, orphan.ID, entity.RoleVendor)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func newStoredUser(t *testing.T, repos *fakeRepos, email string, role entity.UserRole) *entity.User {
	t.Helper()
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Email:    email,
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, repos.users.Create(context.Background(), fakeDB{}, user))
	return user
}
