package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArowuTest/engage-crm/internal/apperrors"
	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/repositories/memory"
	"github.com/ArowuTest/engage-crm/pkg/jwt"
)

func newTestAuthService() *authService {
	svc := NewAuthService(memory.NewAdminUserRepository(), memory.NewTokenBlacklist(), jwt.NewTokenService("test-secret", time.Hour)).(*authService)
	svc.bcryptCost = bcrypt.MinCost
	return svc
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &models.RegisterRequest{Name: "Ops", Email: "Ops@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ops@example.com", resp.User.Email)
	assert.NotEqual(t, "secret1", resp.User.Password)

	_, err = svc.Register(ctx, &models.RegisterRequest{Name: "Dup", Email: "ops@example.com", Password: "secret2"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = svc.Register(ctx, &models.RegisterRequest{Name: "Short", Email: "short@example.com", Password: "123"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	login, err := svc.Login(ctx, &models.LoginRequest{Email: "ops@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "ops@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	_, err = svc.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthenticateAndLogout(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &models.RegisterRequest{Name: "Ops", Email: "ops@example.com", Password: "secret1"})
	require.NoError(t, err)

	claims, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.Hex(), claims.Subject)
	assert.Equal(t, "admin", claims.Role)

	me, err := svc.Me(ctx, claims.Subject)
	require.NoError(t, err)
	assert.Equal(t, "Ops", me.Name)

	require.NoError(t, svc.Logout(ctx, claims.ID, claims.ExpiresAt.Time))
	_, err = svc.Authenticate(ctx, resp.Token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	// a second token for the same user is unaffected
	other, err := svc.Login(ctx, &models.LoginRequest{Email: "ops@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, other.Token)
	assert.NoError(t, err)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	foreign, err := jwt.NewTokenService("other-secret", time.Hour).Generate("x", "x@example.com", "admin")
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, foreign)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Me(ctx, "zzz")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogoutOfExpiredTokenIsNoop(t *testing.T) {
	svc := newTestAuthService()
	assert.NoError(t, svc.Logout(context.Background(), "jti", time.Now().Add(-time.Minute)))
	assert.ErrorIs(t, svc.Logout(context.Background(), "", time.Now().Add(time.Minute)), apperrors.ErrValidation)
}

type downBlacklist struct{}

func (downBlacklist) Revoke(context.Context, string, time.Duration) error {
	return errors.New("connection refused")
}

func (downBlacklist) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func TestDenylistOutageIsRetryable(t *testing.T) {
	tokens := jwt.NewTokenService("test-secret", time.Hour)
	svc := NewAuthService(memory.NewAdminUserRepository(), downBlacklist{}, tokens)
	token, err := tokens.Generate(primitive.NewObjectID().Hex(), "ops@example.com", "admin")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.NotErrorIs(t, err, apperrors.ErrUnauthorized)

	err = svc.Logout(context.Background(), "jti", time.Now().Add(time.Minute))
	assert.True(t, apperrors.IsRetryable(err))
}
