package entity

import "time"

// Category categoría de producto (árbol plano opcional vía ParentID).
type Category struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	ParentID    string // vacía = raíz
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
