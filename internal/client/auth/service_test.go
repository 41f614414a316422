package auth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrstudio/internal/client/api"
	"qrstudio/internal/client/models"
	"qrstudio/internal/client/session"
	"qrstudio/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newService(t *testing.T, handler http.Handler) (Service, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	client := api.NewHTTPClient(srv.URL, testLogger())
	return NewService(client, store), store
}

func authBackend(t *testing.T, failProfileFetch bool) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "s3cret!" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(models.TokenResponse{AccessToken: "tok-123", TokenType: "bearer"})
	})
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if failProfileFetch {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"detail": "profile backend down"})
			return
		}
		require.Equal(t, "tok-123", r.URL.Query().Get("token"))
		json.NewEncoder(w).Encode(models.User{ID: "u-1", Email: "alice@example.com"})
	})
	mux.HandleFunc("/api/v1/auth/register", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.User{ID: "u-9", Email: "new@example.com"})
	})
	return mux
}

func TestLogin_EstablishesSession(t *testing.T) {
	svc, store := newService(t, authBackend(t, false))

	sess, err := svc.Login(context.Background(), "alice@example.com", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", sess.Token)
	assert.Equal(t, "u-1", sess.User.ID)

	persisted, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, sess, persisted)
}

func TestLogin_ProfileFetchFails_NoSessionPersisted(t *testing.T) {
	svc, store := newService(t, authBackend(t, true))

	_, err := svc.Login(context.Background(), "alice@example.com", "s3cret!")

	var loginErr *api.LoginError
	require.ErrorAs(t, err, &loginErr)

	// the issued token must not have leaked into storage
	_, err = store.Current()
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc, store := newService(t, authBackend(t, false))

	_, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	var loginErr *api.LoginError
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, "invalid credentials", loginErr.Message)

	_, err = store.Current()
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestRegister_DoesNotEstablishSession(t *testing.T) {
	svc, store := newService(t, authBackend(t, false))

	user, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "new@example.com", FirstName: "New", LastName: "User", Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-9", user.ID)

	_, err = store.Current()
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestLogout_ClearsSession(t *testing.T) {
	svc, store := newService(t, authBackend(t, false))

	_, err := svc.Login(context.Background(), "alice@example.com", "s3cret!")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))

	_, err = store.Current()
	assert.ErrorIs(t, err, session.ErrNoSession)
}
