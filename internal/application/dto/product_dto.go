package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description,omitempty"`
	SKU           string          `json:"sku,omitempty"`
	CategoryID    string          `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	UnitOfMeasure string          `json:"unit_of_measure,omitempty"`
	IsActive      *bool           `json:"is_active,omitempty"` // nil = true
	ImageURL      string          `json:"image_url,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Punteros: nil = sin cambio.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	SKU           *string          `json:"sku,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
	CostPrice     *decimal.Decimal `json:"cost_price,omitempty"`
	MinStockLevel *decimal.Decimal `json:"min_stock_level,omitempty"`
	UnitOfMeasure *string          `json:"unit_of_measure,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// UpdateStockRequest body para POST /api/products/:id/stock.
type UpdateStockRequest struct {
	StockQuantity decimal.Decimal `json:"stock_quantity"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	SKU           string          `json:"sku,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	UnitOfMeasure string          `json:"unit_of_measure,omitempty"`
	IsActive      bool            `json:"is_active"`
	IsLowStock    bool            `json:"is_low_stock"`
	ImageURL      string          `json:"image_url,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parent_id,omitempty" validate:"omitempty,uuid4"`
}

// CategoryResponse categoría en respuestas.
type CategoryResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ParentID    string    `json:"parent_id,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
