package dto

// RegisterRequest creates an owner account together with its business.
type RegisterRequest struct {
	Username     string `json:"username"      validate:"required,max=20"`
	Email        string `json:"email"         validate:"required,email"`
	Password     string `json:"password"      validate:"required,min=8"`
	BusinessName string `json:"business_name" validate:"required,max=100"`
}

// LoginRequest authenticates an owner by email.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// StaffLoginRequest authenticates a staff member. Staff usernames are only
// unique within a business, so the business name is part of the credential.
type StaffLoginRequest struct {
	BusinessName string `json:"business_name" validate:"required"`
	Username     string `json:"username"      validate:"required"`
	Password     string `json:"password"      validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileRequest changes the mutable principal fields. Empty fields are
// left untouched.
type UpdateProfileRequest struct {
	Username string  `json:"username" validate:"omitempty,max=20"`
	Email    *string `json:"email"    validate:"omitempty"`
	Password string  `json:"password" validate:"omitempty,min=8"`
}

type CreateStaffRequest struct {
	Username string  `json:"username" validate:"required,max=20"`
	Email    *string `json:"email"    validate:"omitempty"`
	Password string  `json:"password" validate:"required,min=8"`
}

type UserResponse struct {
	ID           uint    `json:"id"`
	Username     string  `json:"username"`
	Email        *string `json:"email,omitempty"`
	Role         string  `json:"role"`
	BusinessID   uint    `json:"business_id"`
	BusinessName string  `json:"business_name"`
	BusinessCode string  `json:"business_code,omitempty"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserResponse `json:"user"`
}

type StaffResponse struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Email     *string `json:"email,omitempty"`
	CreatedAt string  `json:"created_at"`
}
