package devserver

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrstudio/internal/client/api"
	"qrstudio/internal/client/models"
	"qrstudio/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newBackend spins up the stub backend and a real API client against it.
func newBackend(t *testing.T) (*httptest.Server, *api.HTTPClient) {
	t.Helper()
	return newBackendFrom(t, New(t.TempDir(), []byte("test-secret"), testLogger()))
}

func newBackendFrom(t *testing.T, s *Server) (*httptest.Server, *api.HTTPClient) {
	t.Helper()

	server := httptest.NewServer(s.Router())
	t.Cleanup(server.Close)

	return server, api.NewHTTPClient(server.URL, testLogger())
}

func validRequest() models.GenerateRequest {
	return models.GenerateRequest{
		Content:         "https://example.com",
		Color:           "#000000",
		Background:      "#ffffff",
		Size:            300,
		Margin:          1,
		Format:          models.FormatPNG,
		ErrorCorrection: models.ECMedium,
		BodyStyle:       models.BodySquare,
		EyeStyle:        models.EyeSquare,
	}
}

func TestGenerate_Formats(t *testing.T) {
	_, client := newBackend(t)
	ctx := context.Background()

	tests := []struct {
		format models.Format
		magic  []byte
	}{
		{models.FormatPNG, []byte("\x89PNG")},
		{models.FormatJPEG, []byte("\xff\xd8")},
		{models.FormatSVG, []byte("<svg")},
		{models.FormatPDF, []byte("%PDF-")},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			req := validRequest()
			req.Format = tt.format

			body, err := client.Generate(ctx, req)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(body), api.MinPayloadSize)
			assert.True(t, bytes.HasPrefix(body, tt.magic), "unexpected payload prefix")
		})
	}
}

func TestGenerate_DeterministicPerContent(t *testing.T) {
	_, client := newBackend(t)
	ctx := context.Background()

	req := validRequest()
	a1, err := client.Generate(ctx, req)
	require.NoError(t, err)
	a2, err := client.Generate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)

	req.Content = "https://example.org/other"
	b, err := client.Generate(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, a1, b)
}

func TestGenerate_RejectsInvalidParameters(t *testing.T) {
	server, _ := newBackend(t)

	resp, err := http.Post(server.URL+"/api/v1/qrcode/generate", "application/json",
		strings.NewReader(`{"content":"x","size":5000,"margin":1,"format":"png","error_correction":"M","body_style":"square","eye_style":"square"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "detail")
}

func TestGenerate_RejectsMalformedJSON(t *testing.T) {
	server, _ := newBackend(t)

	resp, err := http.Post(server.URL+"/api/v1/qrcode/generate", "application/json",
		strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpload_RoundTrip(t *testing.T) {
	server, client := newBackend(t)
	ctx := context.Background()

	content := strings.Repeat("menu ", 50)
	url, err := client.Upload(ctx, "menu.pdf", strings.NewReader(content))
	require.NoError(t, err)
	require.Contains(t, url, server.URL+"/uploads/")
	assert.True(t, strings.HasSuffix(url, ".pdf"))

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, content, string(stored))
}

func TestUpload_MissingFileField(t *testing.T) {
	server, _ := newBackend(t)

	resp, err := http.Post(server.URL+"/api/v1/upload/", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	server, _ := newBackend(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
