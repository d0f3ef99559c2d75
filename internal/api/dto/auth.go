package dto

// RegisterRequest represents the registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=5"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=5"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse wraps an issued bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// MessageResponse carries an informational message with a 200 status.
// Failed logins deliberately use this shape instead of an error status.
type MessageResponse struct {
	Message string `json:"message"`
}
