package httpdto

// TokenCookie is the cookie that carries the bearer token for browser
// clients. Login sets it, logout clears it.
const TokenCookie = "token"

// RegisterRequest is used for POST /api/v1/register
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is used for POST /api/v1/login. Email is deliberately not
// format-checked here; an address that never could have registered still
// takes the normal invalid-credentials path.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after successful registration or login
type AuthResponse struct {
	User  AccountDTO `json:"user"`
	Token string     `json:"token"`
}

// ProfileResponse is returned from GET /api/v1/profile
type ProfileResponse struct {
	User AccountDTO `json:"user"`
}
