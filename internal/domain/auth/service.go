package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ricemill/internal/core/apperror"
	appctx "ricemill/internal/core/context"
	"ricemill/internal/core/id"
	"ricemill/pkg/logger"
)

// Credentials identifies the single mill operator. The password is
// stored only as a bcrypt hash; it is never persisted or logged in
// plain form.
type Credentials struct {
	Username     string
	PasswordHash string
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Service authenticates the operator against configured credentials
// and tracks issued sessions for revocation.
type Service struct {
	creds      Credentials
	jwtService *JWTService
	sessions   SessionStore
}

// NewService creates a new auth service.
func NewService(creds Credentials, jwtService *JWTService, sessions SessionStore) *Service {
	return &Service{
		creds:      creds,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// Login verifies the supplied credentials and issues an access token.
// Username mismatch and password mismatch return the same error so the
// response does not reveal which part failed.
func (s *Service) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return nil, apperror.NewValidation("username and password are required")
	}

	if username != s.creds.Username {
		log.Warnw("login rejected", "username", username)
		return nil, apperror.NewUnauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password)); err != nil {
		log.Warnw("login rejected", "username", username)
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	tokenID := id.New().String()
	token, expiresAt, err := s.jwtService.GenerateAccessToken(username, tokenID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	s.sessions.Put(tokenID, expiresAt)

	log.Infow("operator logged in", "username", username)
	return &TokenPair{AccessToken: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the session behind the token. Revoking an already
// revoked or expired token is a no-op.
func (s *Service) Logout(ctx context.Context, tokenString string) error {
	user, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		// The token is unusable either way.
		return nil
	}
	s.sessions.Revoke(user.TokenID)
	logger.FromContext(ctx).Infow("operator logged out", "username", user.Username)
	return nil
}

// Validate checks the token signature, expiry and that the session has
// not been revoked.
func (s *Service) Validate(ctx context.Context, tokenString string) (*appctx.UserContext, error) {
	user, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid or expired token")
	}
	if !s.sessions.Active(user.TokenID) {
		return nil, apperror.NewUnauthorized("session revoked")
	}
	return user, nil
}

// Close releases the session store.
func (s *Service) Close() {
	s.sessions.Close()
}

// HashPassword produces a bcrypt hash for bootstrapping credentials.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
