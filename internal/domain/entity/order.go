package entity

import "time"

// Estados de un pedido.
const (
	OrderStatusNew        = "new"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reporta si s es un estado de pedido conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusCompleted,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order cabecera de un pedido. Los campos monetarios (Subtotal, TaxAmount,
// Total) SIEMPRE salen del motor de totales (internal/domain/money), nunca
// del cliente; se persisten tal cual con 2 decimales para que el round-trip
// con la DB sea estable.
type Order struct {
	ID              string
	CompanyID       string
	Number          string // consecutivo legible, ej. ORD-000123
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Subtotal        float64
	TaxRate         float64 // porcentaje (21.0 = 21%)
	TaxAmount       float64
	Total           float64
	Notes           string
	Status          string
	SalesRepID      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []*OrderItem
}

// IsCancelled reporta si el pedido está cancelado (excluido de ingresos).
func (o *Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}

// OrderItem línea de pedido: producto del catálogo o entrada libre
// (IsCustom). Subtotal siempre se recalcula, nunca se confía del input.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string // vacío en líneas libres
	Name        string
	Description string
	Notes       string
	Quantity    float64
	UnitPrice   float64
	Subtotal    float64
	IsCustom    bool
}
