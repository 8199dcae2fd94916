package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ricemill/internal/core/apperror"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("mill-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	jwtCfg := DefaultJWTConfig("test-signing-key")
	jwtCfg.AccessTokenTTL = time.Minute

	store := NewMemorySessionStore()
	t.Cleanup(store.Close)

	return NewService(
		Credentials{Username: "operator", PasswordHash: string(hash)},
		NewJWTService(jwtCfg),
		store,
	)
}

func TestService_LoginAndValidate(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	pair, err := svc.Login(ctx, "operator", "mill-secret")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))

	user, err := svc.Validate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "operator", user.Username)
	assert.NotEmpty(t, user.TokenID)
}

func TestService_Login_BadCredentials(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	tests := []struct {
		name     string
		username string
		password string
		code     string
	}{
		{"wrong password", "operator", "nope", apperror.CodeUnauthorized},
		{"unknown username", "intruder", "mill-secret", apperror.CodeUnauthorized},
		{"empty credentials", "", "", apperror.CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.username, tt.password)
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestService_LogoutRevokesSession(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	pair, err := svc.Login(ctx, "operator", "mill-secret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, pair.AccessToken))

	_, err = svc.Validate(ctx, pair.AccessToken)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)

	// Logging out twice is harmless.
	assert.NoError(t, svc.Logout(ctx, pair.AccessToken))
}

func TestService_Validate_TamperedToken(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	pair, err := svc.Login(ctx, "operator", "mill-secret")
	require.NoError(t, err)

	tampered := pair.AccessToken[:len(pair.AccessToken)-2] + "xx"
	_, err = svc.Validate(ctx, tampered)
	assert.Error(t, err)

	_, err = svc.Validate(ctx, "not-a-token")
	assert.Error(t, err)
}

func TestService_Validate_ForeignSignature(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	other := NewJWTService(DefaultJWTConfig("different-key"))
	token, _, err := other.GenerateAccessToken("operator", "tok-1")
	require.NoError(t, err)

	_, err = svc.Validate(ctx, token)
	assert.Error(t, err)
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore()
	defer store.Close()

	store.Put("live", time.Now().Add(time.Minute))
	store.Put("stale", time.Now().Add(-time.Minute))

	assert.True(t, store.Active("live"))
	assert.False(t, store.Active("stale"))
	assert.False(t, store.Active("missing"))

	store.Revoke("live")
	assert.False(t, store.Active("live"))
}
