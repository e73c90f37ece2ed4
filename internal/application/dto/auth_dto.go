package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid4"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty" validate:"omitempty,oneof=admin sales_manager representative"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token + usuario + datos de navegación para el cliente.
type LoginResponse struct {
	Token        string       `json:"token"`
	User         UserResponse `json:"user"`
	DefaultRoute string       `json:"default_route"` // ruta de inicio según el rol
	Permissions  []string     `json:"permissions"`
}

// ChangePasswordRequest body para POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// NavigationResponse decisión del guard de rutas para el cliente.
type NavigationResponse struct {
	Route      string `json:"route"`
	Allowed    bool   `json:"allowed"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

// UserResponse usuario en respuestas (sin hash de password).
type UserResponse struct {
	ID                  string     `json:"id"`
	CompanyID           string     `json:"company_id"`
	Email               string     `json:"email"`
	Name                string     `json:"name"`
	Role                string     `json:"role"`
	Status              string     `json:"status"`
	Phone               string     `json:"phone,omitempty"`
	Address             string     `json:"address,omitempty"`
	FailedLoginAttempts int        `json:"failed_login_attempts"`
	LockedUntil         *time.Time `json:"locked_until,omitempty"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
