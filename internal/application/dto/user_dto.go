package dto

// CreateUserRequest body para POST /api/users (solo admin).
// Si Password va vacío se genera una aleatoria y se devuelve una sola vez.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin sales_manager representative"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8"`
}

// CreateUserResponse usuario creado + password generada (una sola vez).
type CreateUserResponse struct {
	User              UserResponse `json:"user"`
	GeneratedPassword string       `json:"generated_password,omitempty"`
}

// UpdateUserRequest body para PUT /api/users/:id. Punteros: nil = sin cambio.
type UpdateUserRequest struct {
	Name    *string `json:"name,omitempty"`
	Role    *string `json:"role,omitempty" validate:"omitempty,oneof=admin sales_manager representative"`
	Status  *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// ResetPasswordResponse password regenerada por un admin (una sola vez).
type ResetPasswordResponse struct {
	Password string `json:"password"`
}

// ToggleStatusRequest body para POST /api/users/:id/status.
// Si Status va vacío se alterna active <-> inactive.
type ToggleStatusRequest struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
