package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"qrstudio/internal/client/models"
)

// Upload sends exactly one file as a multipart form and returns the stored
// file's reference URL. No client-side type or size checks are performed;
// enforcement belongs to the backend, which also owns cleanup (uploads are
// retained for 24 hours).
func (c *HTTPClient) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return "", &UploadError{Message: err.Error()}
	}
	if _, err := io.Copy(fw, r); err != nil {
		return "", &UploadError{Message: err.Error()}
	}
	if err := mw.Close(); err != nil {
		return "", &UploadError{Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/upload/", &buf)
	if err != nil {
		return "", &UploadError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &UploadError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := responseDetail(resp.Body, "failed to upload file")
		return "", &UploadError{Message: msg, StatusCode: resp.StatusCode}
	}

	var ur models.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return "", &UploadError{Message: err.Error()}
	}
	return ur.URL, nil
}
