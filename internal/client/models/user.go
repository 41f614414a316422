package models

// User is the backend's user profile DTO.
type User struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	EmailVerified bool    `json:"email_verified"`
	OAuthProvider *string `json:"oauth_provider"`
	CreatedAt     string  `json:"created_at"`
}

// RegisterRequest is the JSON body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the login endpoint's success payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UploadResponse is the upload endpoint's success payload.
type UploadResponse struct {
	URL string `json:"url"`
}
