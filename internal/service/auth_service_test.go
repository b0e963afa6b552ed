package service

import (
	"testing"

	"go-sari-pos/internal/model"
	"go-sari-pos/internal/repository"

	"github.com/stretchr/testify/require"
)

func seedAdmin(t *testing.T, repo repository.UserRepository) *model.User {
	t.Helper()
	admin := &model.User{Email: "admin@tindahan.local", FullName: "Store Administrator", IsActive: true}
	require.NoError(t, admin.SetPassword("admin123"))
	require.NoError(t, repo.Create(admin))
	return admin
}

func TestLoginIssuesSingleSessionToken(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepo(db)
	auth := NewAuthService(userRepo)
	seedAdmin(t, userRepo)

	first, err := auth.Login("admin@tindahan.local", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, first.Token)

	// A first-session token still validates.
	_, err = auth.ValidateToken(first.Token)
	require.NoError(t, err)

	// A second login rotates the token version; the old token dies.
	second, err := auth.Login("admin@tindahan.local", "admin123")
	require.NoError(t, err)

	_, err = auth.ValidateToken(first.Token)
	require.Error(t, err)
	_, err = auth.ValidateToken(second.Token)
	require.NoError(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepo(db)
	auth := NewAuthService(userRepo)
	seedAdmin(t, userRepo)

	_, err := auth.Login("admin@tindahan.local", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login("nobody@tindahan.local", "admin123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResetPasswordInvalidatesSession(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepo(db)
	auth := NewAuthService(userRepo)
	seedAdmin(t, userRepo)

	login, err := auth.Login("admin@tindahan.local", "admin123")
	require.NoError(t, err)

	require.ErrorIs(t, auth.ResetPassword("admin@tindahan.local", "wrong", "newpass123"), ErrWrongPassword)
	require.NoError(t, auth.ResetPassword("admin@tindahan.local", "admin123", "newpass123"))

	_, err = auth.ValidateToken(login.Token)
	require.Error(t, err)

	_, err = auth.Login("admin@tindahan.local", "newpass123")
	require.NoError(t, err)
}
