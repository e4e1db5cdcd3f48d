package dto

// SignupRequest represents a registration request
type SignupRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	// bcrypt rejects passwords longer than 72 bytes
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse wraps the account returned by signup, login and me
type AuthResponse struct {
	User *AccountDTO `json:"user"`
}
