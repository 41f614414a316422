package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/upload/", r.URL.Path)

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, "logo.png", hdr.Filename)
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "logo-bytes", string(data))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"url": "http://files.example.com/abc123.png"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testLogger())
	url, err := c.Upload(context.Background(), "/tmp/somewhere/logo.png", strings.NewReader("logo-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://files.example.com/abc123.png", url)
}

func TestUpload_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		json.NewEncoder(w).Encode(map[string]string{"detail": "file too large"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testLogger())
	_, err := c.Upload(context.Background(), "big.pdf", strings.NewReader("data"))

	var upErr *UploadError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, "file too large", upErr.Message)
	assert.Equal(t, http.StatusRequestEntityTooLarge, upErr.StatusCode)
}

func TestUpload_ServerUnreachable(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", testLogger())
	_, err := c.Upload(context.Background(), "x.png", strings.NewReader("data"))

	var upErr *UploadError
	require.ErrorAs(t, err, &upErr)
}
