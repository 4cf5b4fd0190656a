// Package api holds the request and response types shared between the server
// handlers and the CLI client.
package api

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse confirms account creation.
type RegisterResponse struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// LoginRequest authenticates an account.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries a fresh session token pair.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}
