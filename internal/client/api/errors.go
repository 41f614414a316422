package api

import (
	"encoding/json"
	"fmt"
	"io"
)

// Operation-specific errors carry a human-readable message sourced from the
// backend's structured `detail` field when present, otherwise a generic
// per-operation message. Match with errors.As.

// GenerationError means the backend rejected or failed to produce an image.
type GenerationError struct {
	Message    string
	StatusCode int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %s", e.Message)
}

// DownloadError means the download path exhausted its retries or timed out.
type DownloadError struct {
	Message string
	Err     error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download failed: %s", e.Message)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// CorruptPayloadError means a downloaded body was implausibly small,
// signalling a corrupted or empty file.
type CorruptPayloadError struct {
	Size int
}

func (e *CorruptPayloadError) Error() string {
	return fmt.Sprintf("payload of %d bytes is below the %d byte minimum, file is likely corrupt", e.Size, MinPayloadSize)
}

// UploadError means the file upload was rejected.
type UploadError struct {
	Message    string
	StatusCode int
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed: %s", e.Message)
}

// RegistrationError means the registration request was rejected.
type RegistrationError struct {
	Message    string
	StatusCode int
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("registration failed: %s", e.Message)
}

// LoginError means either the credential exchange or the subsequent profile
// fetch failed; in both cases no session may be established.
type LoginError struct {
	Message    string
	StatusCode int
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("login failed: %s", e.Message)
}

// PasswordResetError means a forgot-password or reset-password request
// was rejected.
type PasswordResetError struct {
	Message    string
	StatusCode int
}

func (e *PasswordResetError) Error() string {
	return fmt.Sprintf("password reset failed: %s", e.Message)
}

// errorBody is the backend's structured error payload.
type errorBody struct {
	Detail string `json:"detail"`
}

// responseDetail extracts the backend's `detail` message from an error
// response body, falling back to the provided generic message.
func responseDetail(r io.Reader, fallback string) string {
	var eb errorBody
	if err := json.NewDecoder(r).Decode(&eb); err == nil && eb.Detail != "" {
		return eb.Detail
	}
	return fallback
}
