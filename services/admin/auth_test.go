package admin

import (
	"context"
	"testing"

	"medibook/config"
	"medibook/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) *DefaultAdminService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	config.AppConfig.AdminEmail = "admin@clinic.test"
	config.AppConfig.AdminPasswordHash = string(hash)

	return &DefaultAdminService{Policies: &fakePolicyAPI{}, Cache: client}
}

func TestSignInAndValidate(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	token, session, err := svc.SignIn(ctx, "admin@clinic.test", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.AdminSessionActive, session.Status)

	resolved, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, resolved.SessionID)
	assert.Equal(t, "admin@clinic.test", resolved.Email)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, _, err := svc.SignIn(ctx, "admin@clinic.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.SignIn(ctx, "intruder@clinic.test", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.SignIn(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignOutRevokesSession(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	token, session, err := svc.SignIn(ctx, "admin@clinic.test", "s3cret")
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, session.SessionID))

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.ValidateToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrSessionExpired)
}
