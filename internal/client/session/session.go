// Package session persists the authenticated session (bearer token plus user
// profile) across CLI runs. The token and profile live in a single file and
// are written and cleared together, so callers can never observe one without
// the other.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"qrstudio/internal/client/models"
)

// ErrNoSession is returned when no valid session is persisted: the file is
// absent, unreadable, corrupt, or its token has already expired.
var ErrNoSession = errors.New("no session")

// Session couples a bearer token with the profile it was issued for.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore returns a store at path; with an empty path the default location
// under the user config directory is used.
func NewStore(path string) (*Store, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config dir: %w", err)
		}
		path = filepath.Join(dir, "qrstudio", "session.json")
	}
	return &Store{path: path}, nil
}

// Establish persists the session atomically (temp file + rename), replacing
// any previous one. Both halves are required: a token without a profile, or
// the reverse, is rejected.
func (s *Store) Establish(sess Session) error {
	if sess.Token == "" || sess.User.ID == "" {
		return fmt.Errorf("session requires both a token and a user profile")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "session-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

// Current returns the persisted session. A session whose token is a JWT with
// an expiry in the past is treated as absent without contacting the server;
// opaque (non-JWT) tokens are accepted as-is.
func (s *Store) Current() (Session, error) {
	var sess Session

	b, err := os.ReadFile(s.path)
	if err != nil {
		return sess, ErrNoSession
	}
	if err := json.Unmarshal(b, &sess); err != nil {
		return Session{}, ErrNoSession
	}
	if sess.Token == "" || sess.User.ID == "" {
		return Session{}, ErrNoSession
	}
	if tokenExpired(sess.Token) {
		return Session{}, ErrNoSession
	}
	return sess, nil
}

// Clear removes the persisted session. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
