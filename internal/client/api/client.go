// Package api implements the HTTP client of the QR Studio backend: QR
// generation and download, file upload, and the auth endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"qrstudio/internal/client/models"
	"qrstudio/internal/logging"
)

// MinPayloadSize is the smallest downloaded body considered plausible.
// Anything below it is treated as a corrupted or empty file.
const MinPayloadSize = 100

// Client is the remote surface the rest of the application depends on.
type Client interface {
	// Generate produces the bytes of a QR image for the given parameters.
	Generate(ctx context.Context, req models.GenerateRequest) ([]byte, error)

	// Download re-requests the QR in the exact target format under the
	// given retry policy and validates the payload size.
	Download(ctx context.Context, req models.GenerateRequest, policy RetryPolicy) ([]byte, error)

	// Upload stores a file remotely and returns its reference URL.
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)

	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)
	CurrentUser(ctx context.Context, token string) (models.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// HTTPClient talks to the backend over plain REST.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client bound to baseURL. Generation requests carry
// no overall timeout (large sizes can be slow); the download path applies
// its own per-attempt timeout through RetryPolicy.
func NewHTTPClient(baseURL string, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
	}
}

// Generate issues one generation request. A non-2xx response yields a
// *GenerationError whose message comes from the backend's detail field.
func (c *HTTPClient) Generate(ctx context.Context, req models.GenerateRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation request: %w", err)
	}

	reqID := uuid.NewString()
	c.log.Debug(ctx, "generate request", "req_id", reqID, "format", req.Format, "size", req.Size)

	resp, err := c.postJSON(ctx, "/api/v1/qrcode/generate", req)
	if err != nil {
		return nil, &GenerationError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := responseDetail(resp.Body, "failed to generate QR code")
		c.log.Warn(ctx, "generate rejected", "req_id", reqID, "status", resp.StatusCode, "detail", msg)
		return nil, &GenerationError{Message: msg, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GenerationError{Message: err.Error()}
	}

	c.log.Debug(ctx, "generate ok", "req_id", reqID, "bytes", len(body))
	return body, nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.http.Do(req)
}

func (c *HTTPClient) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.http.Do(req)
}
