package api

import (
	"context"
	"encoding/json"
	"net/url"

	"qrstudio/internal/client/models"
)

// Register creates a new account and returns the created profile.
// It never establishes a session; the caller must log in separately.
func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var user models.User

	resp, err := c.postJSON(ctx, "/api/v1/auth/register", req)
	if err != nil {
		return user, &RegistrationError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := responseDetail(resp.Body, "failed to register")
		return user, &RegistrationError{Message: msg, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return user, &RegistrationError{Message: err.Error()}
	}
	return user, nil
}

// Login performs the credential exchange only; fetching the profile for the
// issued token is the auth service's responsibility.
func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	var tok models.TokenResponse

	resp, err := c.postJSON(ctx, "/api/v1/auth/login", req)
	if err != nil {
		return tok, &LoginError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := responseDetail(resp.Body, "failed to log in")
		return tok, &LoginError{Message: msg, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return tok, &LoginError{Message: err.Error()}
	}
	return tok, nil
}

// CurrentUser fetches the profile associated with a bearer token.
func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (models.User, error) {
	var user models.User

	resp, err := c.get(ctx, "/api/v1/auth/me?token="+url.QueryEscape(token))
	if err != nil {
		return user, &LoginError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := responseDetail(resp.Body, "failed to fetch current user")
		return user, &LoginError{Message: msg, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return user, &LoginError{Message: err.Error()}
	}
	return user, nil
}

// ForgotPassword asks the backend to send a reset email.
func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	resp, err := c.postJSON(ctx, "/api/v1/auth/forgot-password", map[string]string{"email": email})
	if err != nil {
		return &PasswordResetError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := responseDetail(resp.Body, "failed to request a password reset")
		return &PasswordResetError{Message: msg, StatusCode: resp.StatusCode}
	}
	return nil
}

// ResetPassword redeems a reset token for a new password.
func (c *HTTPClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	payload := map[string]string{"token": token, "new_password": newPassword}

	resp, err := c.postJSON(ctx, "/api/v1/auth/reset-password", payload)
	if err != nil {
		return &PasswordResetError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := responseDetail(resp.Body, "failed to reset the password")
		return &PasswordResetError{Message: msg, StatusCode: resp.StatusCode}
	}
	return nil
}
