package devserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"qrstudio/internal/client/models"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		writeDetail(w, http.StatusUnprocessableEntity, "a valid email is required")
		return
	}
	if len(req.Password) < 8 {
		writeDetail(w, http.StatusUnprocessableEntity, "password must be at least 8 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "could not hash password")
		return
	}

	s.mu.Lock()
	if _, exists := s.users[email]; exists {
		s.mu.Unlock()
		writeDetail(w, http.StatusConflict, "an account with this email already exists")
		return
	}
	acct := &account{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Hash:      hash,
		CreatedAt: time.Now().UTC(),
	}
	s.users[email] = acct
	s.mu.Unlock()

	s.log.Info(r.Context(), "account registered", "email", email)
	writeJSON(w, http.StatusCreated, acct.profile())
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	acct, ok := s.users[email]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(acct.Hash, []byte(req.Password)) != nil {
		writeDetail(w, http.StatusUnauthorized, "incorrect email or password")
		return
	}

	token, err := s.issueToken(acct)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	writeJSON(w, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.authenticate(r.URL.Query().Get("token"))
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}
	writeJSON(w, http.StatusOK, acct.profile())
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Whether the account exists is never revealed. The reset token is
	// logged instead of emailed; this is a development stub.
	s.mu.Lock()
	if _, ok := s.users[email]; ok {
		token := uuid.NewString()
		s.resetTokens[token] = email
		s.log.Info(r.Context(), "password reset requested", "email", email, "reset_token", token)
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"message": "reset email sent"})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if len(req.NewPassword) < 8 {
		writeDetail(w, http.StatusUnprocessableEntity, "password must be at least 8 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "could not hash password")
		return
	}

	s.mu.Lock()
	email, ok := s.resetTokens[req.Token]
	if ok {
		delete(s.resetTokens, req.Token)
		if acct, found := s.users[email]; found {
			acct.Hash = hash
		}
	}
	s.mu.Unlock()

	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid or expired reset token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

// issueToken signs a short-lived HS256 access token for the account.
func (s *Server) issueToken(acct *account) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   acct.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// authenticate verifies a token and resolves it to an account.
func (s *Server) authenticate(token string) (*account, bool) {
	if token == "" {
		return nil, false
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, false
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acct := range s.users {
		if acct.ID == claims.Subject {
			return acct, true
		}
	}
	return nil, false
}

func (a *account) profile() models.User {
	return models.User{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
