package store

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dkovach/ttm/internal/api"
	"github.com/dkovach/ttm/internal/models"
)

// Session holds the current user and keeps the bearer token in sync between
// the API client and local storage.
type Session struct {
	api   *api.Client
	store *Store
	user  *models.User
}

// NewSession wires a session over the API client and settings store.
func NewSession(client *api.Client, store *Store) *Session {
	return &Session{api: client, store: store}
}

// CurrentUser returns the authenticated user, nil when logged out.
func (s *Session) CurrentUser() *models.User {
	return s.user
}

// IsAdmin reports whether the current user holds the ADMIN role.
func (s *Session) IsAdmin() bool {
	return s.user != nil && s.user.Role == models.RoleAdmin
}

// Login authenticates and persists the returned token.
func (s *Session) Login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.install(resp)
}

// Register creates an account and persists the returned token.
func (s *Session) Register(ctx context.Context, name, email, password string) error {
	resp, err := s.api.Register(ctx, name, email, password)
	if err != nil {
		return err
	}
	return s.install(resp)
}

func (s *Session) install(resp *api.AuthResponse) error {
	user := resp.User
	s.user = &user
	s.api.SetToken(resp.Token)
	return s.store.Set(KeyToken, resp.Token)
}

// Logout clears the session and the stored token.
func (s *Session) Logout() error {
	s.user = nil
	s.api.SetToken("")
	return s.store.Delete(KeyToken)
}

// Restore revalidates a stored token against /auth/me. It returns false
// without error when no usable session exists: no stored token, a token that
// is already expired by its own claims, or one the server rejects.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	token, err := s.store.Get(KeyToken)
	if err != nil || token == "" {
		return false, err
	}

	if tokenExpired(token, time.Now()) {
		return false, s.store.Delete(KeyToken)
	}

	s.api.SetToken(token)
	user, err := s.api.Me(ctx)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 401 {
			s.api.SetToken("")
			return false, s.store.Delete(KeyToken)
		}
		s.api.SetToken("")
		return false, err
	}

	s.user = user
	return true, nil
}

// tokenExpired checks the token's own exp claim without verifying the
// signature; verification is the server's job. Unparseable tokens are passed
// through so the server gets the final say.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(now)
}
