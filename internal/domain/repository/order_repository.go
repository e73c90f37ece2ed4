package repository

import (
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// OrderFilter filtros de listado de pedidos. Campos en cero se ignoran.
type OrderFilter struct {
	Status     string
	SalesRepID string
	DateFrom   *time.Time
	DateTo     *time.Time
	// Search busca por número de pedido o nombre de cliente (ILIKE).
	Search string
	Limit  int
	Offset int
}

// OrderStats agregados de pedidos para el dashboard. Los ingresos excluyen
// pedidos cancelados.
type OrderStats struct {
	TotalOrders      int
	ThisMonthOrders  int
	TotalRevenue     float64
	ThisMonthRevenue float64
}

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error)
	Update(order *entity.Order) error
	// ReplaceItems elimina las líneas actuales e inserta las nuevas.
	// Debe ejecutarse dentro de la misma transacción que Update.
	ReplaceItems(orderID string, items []*entity.OrderItem) error
	ListByCompany(companyID string, f OrderFilter) ([]*entity.Order, error)
	// NextNumber consecutivo legible por empresa (ORD-000123).
	NextNumber(companyID string) (string, error)
	Stats(companyID string, salesRepID string, monthStart time.Time) (*OrderStats, error)
	Delete(id string) error
}
