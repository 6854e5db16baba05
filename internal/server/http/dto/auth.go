package dto

// RegisterRequest describes the registration payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token and the account identifier.
type AuthResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}
