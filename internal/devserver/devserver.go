// Package devserver is a self-contained stub of the QR Studio backend for
// local development and integration tests. It speaks the same REST contract
// as the hosted service: QR generation, file upload, and the account
// endpoints, with users held in memory and files in a scratch directory.
package devserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"qrstudio/internal/logging"
)

// tokenTTL is the lifetime of issued access tokens.
const tokenTTL = time.Hour

type account struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Hash      []byte
	CreatedAt time.Time
}

// Server holds the in-memory state of the stub backend. The zero value is
// not usable; construct with New.
type Server struct {
	mu          sync.Mutex
	users       map[string]*account // keyed by email
	resetTokens map[string]string   // reset token -> email
	uploadDir   string
	jwtSecret   []byte
	log         logging.Logger
}

// New returns a stub backend that stores uploads under uploadDir and signs
// access tokens with secret.
func New(uploadDir string, secret []byte, log logging.Logger) *Server {
	return &Server{
		users:       make(map[string]*account),
		resetTokens: make(map[string]string),
		uploadDir:   uploadDir,
		jwtSecret:   secret,
		log:         log,
	}
}

// Router builds the HTTP routing table for the stub backend.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")

	r.HandleFunc("/api/v1/qrcode/generate", s.handleGenerate).Methods("POST")
	r.HandleFunc("/api/v1/upload/", s.handleUpload).Methods("POST")
	r.HandleFunc("/uploads/{name}", s.handleServeUpload).Methods("GET")

	r.HandleFunc("/api/v1/auth/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/api/v1/auth/login", s.handleLogin).Methods("POST")
	r.HandleFunc("/api/v1/auth/me", s.handleMe).Methods("GET")
	r.HandleFunc("/api/v1/auth/forgot-password", s.handleForgotPassword).Methods("POST")
	r.HandleFunc("/api/v1/auth/reset-password", s.handleResetPassword).Methods("POST")

	return r
}

// writeDetail sends the backend's structured error body.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
