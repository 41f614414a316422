// Package auth composes the API client with the session store and implements
// the account flows of the CLI: register, the two-step login, logout, and the
// password reset pair.
package auth

import (
	"context"
	"fmt"

	"qrstudio/internal/client/api"
	"qrstudio/internal/client/models"
	"qrstudio/internal/client/session"
)

// Service defines the account operations of the CLI.
//
// Contract:
//   - Register: create an account; never establishes a session.
//   - Login: exchange credentials for a token, fetch the profile, persist
//     both together. If the profile fetch fails, the whole login fails and
//     nothing is persisted.
//   - Logout: clear the persisted session.
//   - CurrentUser: the locally cached session, if any.
//   - ForgotPassword / ResetPassword: request wrappers.
//
// All methods must honor context cancellation/timeouts.
type Service interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, email, password string) (session.Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (session.Session, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type service struct {
	client api.Client
	store  *session.Store
}

// NewService constructs a Service bound to the given API client and store.
func NewService(client api.Client, store *session.Store) Service {
	return &service{client: client, store: store}
}

func (s *service) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return s.client.Register(ctx, req)
}

// Login runs the two-step protocol: credentials to token, then token to
// profile. A token is never surfaced or persisted without its profile.
func (s *service) Login(ctx context.Context, email, password string) (session.Session, error) {
	tok, err := s.client.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return session.Session{}, err
	}

	user, err := s.client.CurrentUser(ctx, tok.AccessToken)
	if err != nil {
		// The token step succeeded, but without a profile there is no session.
		return session.Session{}, err
	}

	sess := session.Session{Token: tok.AccessToken, User: user}
	if err := s.store.Establish(sess); err != nil {
		return session.Session{}, fmt.Errorf("persisting session: %w", err)
	}
	return sess, nil
}

func (s *service) Logout(ctx context.Context) error {
	return s.store.Clear()
}

func (s *service) CurrentUser(ctx context.Context) (session.Session, error) {
	return s.store.Current()
}

func (s *service) ForgotPassword(ctx context.Context, email string) error {
	return s.client.ForgotPassword(ctx, email)
}

func (s *service) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.client.ResetPassword(ctx, token, newPassword)
}
