package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/service"
)

func TestAuthService_Register(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	svc := service.NewAuthService(r.users)

	user := r.seedUser(t, "asha", "asha@example.com")
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret123", user.Password)

	_, err := svc.Register(ctx, domain.User{UserName: "other", Email: "asha@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, service.ErrUserEmailExists)

	_, err = svc.Register(ctx, domain.User{UserName: "asha", Email: "other@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, service.ErrUserNameExists)
}

func TestAuthService_Login(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	svc := service.NewAuthService(r.users)
	user := r.seedUser(t, "asha", "asha@example.com")

	byEmail, err := svc.Login(ctx, "asha@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byName, err := svc.Login(ctx, "asha", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = svc.Login(ctx, "asha", "wrong-pass1")
	assert.ErrorIs(t, err, service.ErrWrongPassword)

	_, err = svc.Login(ctx, "nobody", "secret123")
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	// Accounts created through Google have no password.
	_, err = service.NewOAuthService(r.users).UpsertUser(ctx, service.OAuthProfile{Email: "g@example.com", Name: "Gita Rao"})
	require.NoError(t, err)
	_, err = svc.Login(ctx, "g@example.com", "")
	assert.ErrorIs(t, err, service.ErrWrongPassword)
}

func TestUserService_GetUser(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	svc := service.NewUserService(r.users, r.slots, nil)
	user := r.seedUser(t, "asha", "asha@example.com")

	got, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", got.Email)

	_, err = svc.GetUser(ctx, 999)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestAdminService(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	svc := service.NewAdminService(r.admins)

	admin, err := svc.Register(ctx, domain.Admin{Name: "root", Email: "admin@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotZero(t, admin.ID)

	_, err = svc.Register(ctx, domain.Admin{Name: "again", Email: "admin@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, service.ErrAdminEmailExists)

	loggedIn, err := svc.Login(ctx, "admin@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, loggedIn.ID)

	_, err = svc.Login(ctx, "admin@example.com", "nope12345")
	assert.ErrorIs(t, err, service.ErrWrongPassword)

	_, err = svc.Login(ctx, "missing@example.com", "secret123")
	assert.ErrorIs(t, err, service.ErrAdminNotFound)

	got, err := svc.GetAdmin(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "root", got.Name)

	_, err = svc.GetAdmin(ctx, 999)
	assert.ErrorIs(t, err, service.ErrAdminNotFound)
}

func TestOAuthService_UpsertUser(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	svc := service.NewOAuthService(r.users)

	_, err := svc.UpsertUser(ctx, service.OAuthProfile{Name: "No Email"})
	assert.ErrorIs(t, err, service.ErrOAuthEmailMissing)

	created, err := svc.UpsertUser(ctx, service.OAuthProfile{Email: "gita@example.com", Name: "Gita Rao", Picture: "https://img/1"})
	require.NoError(t, err)
	assert.Equal(t, "gita@example.com", created.UserName)
	assert.Equal(t, "Gita", created.FirstName)
	assert.Equal(t, "Rao", created.LastName)
	assert.Equal(t, "https://img/1", created.ProfilePhoto)
	assert.False(t, created.HasPassword())

	updated, err := svc.UpsertUser(ctx, service.OAuthProfile{Email: "gita@example.com", Name: "Gita Devi Rao", Picture: "https://img/2"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Gita", updated.FirstName)
	assert.Equal(t, "Devi Rao", updated.LastName)
	assert.Equal(t, "https://img/2", updated.ProfilePhoto)

	// Existing local accounts keep their password.
	local := r.seedUser(t, "asha", "asha@example.com")
	linked, err := svc.UpsertUser(ctx, service.OAuthProfile{Email: local.Email, Name: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, local.ID, linked.ID)
	_, err = service.NewAuthService(r.users).Login(ctx, "asha", "secret123")
	assert.NoError(t, err)
}
