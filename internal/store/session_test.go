package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovach/ttm/internal/api"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newSessionEnv(t *testing.T, handler http.HandlerFunc) (*Session, *Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s := openTestStore(t)
	client := api.New(server.URL, 2*time.Second)
	return NewSession(client, s), s
}

func TestSession_LoginPersistsToken(t *testing.T) {
	session, s := newSessionEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"user":{"id":1,"email":"ana@example.com","name":"Ana","role":"ADMIN"},"token":"tok-1"}`))
	})

	require.NoError(t, session.Login(context.Background(), "ana@example.com", "pw"))
	require.NotNil(t, session.CurrentUser())
	assert.Equal(t, "Ana", session.CurrentUser().Name)
	assert.True(t, session.IsAdmin())

	stored, err := s.Get(KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", stored)
}

func TestSession_LogoutClearsToken(t *testing.T) {
	session, s := newSessionEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":2,"email":"b@example.com","name":"B","role":"MEMBER"},"token":"tok-2"}`))
	})

	require.NoError(t, session.Register(context.Background(), "B", "b@example.com", "pw"))
	assert.False(t, session.IsAdmin())

	require.NoError(t, session.Logout())
	assert.Nil(t, session.CurrentUser())

	stored, err := s.Get(KeyToken)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSession_RestoreWithoutToken(t *testing.T) {
	session, _ := newSessionEnv(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without a stored token")
	})

	ok, err := session.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_RestoreValidToken(t *testing.T) {
	session, s := newSessionEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me", r.URL.Path)
		assert.True(t, len(r.Header.Get("Authorization")) > 7)
		assert.Equal(t, "Bearer ", r.Header.Get("Authorization")[:7])
		w.Write([]byte(`{"id":1,"email":"ana@example.com","name":"Ana","role":"ADMIN"}`))
	})

	require.NoError(t, s.Set(KeyToken, signedToken(t, time.Now().Add(time.Hour))))

	ok, err := session.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	require.NotNil(t, session.CurrentUser())
	assert.Equal(t, int64(1), session.CurrentUser().ID)
}

func TestSession_RestoreSkipsExpiredToken(t *testing.T) {
	called := false
	session, s := newSessionEnv(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	require.NoError(t, s.Set(KeyToken, signedToken(t, time.Now().Add(-time.Hour))))

	ok, err := session.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, called, "expired token never hits the server")

	stored, err := s.Get(KeyToken)
	require.NoError(t, err)
	assert.Empty(t, stored, "expired token is discarded")
}

func TestSession_RestoreRejectedToken(t *testing.T) {
	session, s := newSessionEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token revoked"}`))
	})

	require.NoError(t, s.Set(KeyToken, signedToken(t, time.Now().Add(time.Hour))))

	ok, err := session.Restore(context.Background())
	require.NoError(t, err, "a rejected token is not an error, just a missing session")
	assert.False(t, ok)

	stored, err := s.Get(KeyToken)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSession_RestoreOpaqueTokenReachesServer(t *testing.T) {
	// Tokens that are not JWTs pass through; the server decides.
	session, s := newSessionEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":3,"email":"c@example.com","name":"C","role":"MEMBER"}`))
	})

	require.NoError(t, s.Set(KeyToken, "opaque-session-token"))

	ok, err := session.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}
