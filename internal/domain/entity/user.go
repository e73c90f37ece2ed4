package entity

import (
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain/authz"
)

// Estados válidos para User.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// Umbral de bloqueo por intentos de login fallidos.
const (
	MaxFailedLoginAttempts = 5
	LockoutDuration        = 15 * time.Minute
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID                  string
	CompanyID           string
	Email               string
	PasswordHash        string // bcrypt hash, nunca plano en dominio después de persistir
	Name                string
	Role                authz.Role // admin, sales_manager, representative
	Status              string     // active, inactive, suspended
	Phone               string
	Address             string
	FailedLoginAttempts int
	LockedUntil         *time.Time // nil = no bloqueado
	LastLogin           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsLocked reporta si la cuenta está bloqueada en el instante dado.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// IsActive reporta si el usuario puede iniciar sesión según su estado.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
