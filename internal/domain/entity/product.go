package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. Los precios se guardan como NUMERIC y se
// manejan con decimal; al armar líneas de pedido se convierten a float64
// para el motor de totales.
type Product struct {
	ID            string
	CompanyID     string
	Name          string
	Description   string
	SKU           string
	CategoryID    string // vacío = sin categoría
	UnitPrice     decimal.Decimal
	CostPrice     decimal.Decimal
	StockQuantity decimal.Decimal
	MinStockLevel decimal.Decimal
	UnitOfMeasure string
	IsActive      bool
	ImageURL      string
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock reporta si el stock está en o bajo el mínimo configurado.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity.LessThanOrEqual(p.MinStockLevel)
}

// IsOutOfStock reporta si no queda stock.
func (p *Product) IsOutOfStock() bool {
	return p.StockQuantity.LessThanOrEqual(decimal.Zero)
}
