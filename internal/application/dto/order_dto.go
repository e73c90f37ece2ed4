package dto

import "time"

// OrderItemRequest línea de pedido en requests. Para productos del catálogo
// va ProductID; para entradas libres va IsCustom=true con Name obligatorio.
// Subtotal NO se acepta del cliente: siempre se recalcula.
type OrderItemRequest struct {
	ProductID   string  `json:"product_id,omitempty" validate:"omitempty,uuid4"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"min=0"`
	IsCustom    bool    `json:"is_custom,omitempty"`
}

// ClaimedTotals totales que el cliente dice haber calculado. Opcionales;
// si vienen, se verifican contra el recálculo del servidor y cualquier
// descuadre mayor a 0.01 rechaza el pedido.
type ClaimedTotals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
}

// CreateOrderRequest body para POST /api/orders.
// TaxRate nil usa la tasa por defecto de la empresa.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" validate:"required"`
	CustomerPhone   string             `json:"customer_phone,omitempty"`
	CustomerAddress string             `json:"customer_address,omitempty"`
	TaxRate         *float64           `json:"tax_rate,omitempty" validate:"omitempty,min=0"`
	Notes           string             `json:"notes,omitempty"`
	Status          string             `json:"status,omitempty" validate:"omitempty,oneof=new processing completed delivered cancelled"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Claimed         *ClaimedTotals     `json:"claimed_totals,omitempty"`
}

// UpdateOrderRequest body para PUT /api/orders/:id. Punteros: nil = sin
// cambio. Items nil conserva las líneas actuales; no-nil las reemplaza
// completas (y recalcula totales).
type UpdateOrderRequest struct {
	CustomerName    *string            `json:"customer_name,omitempty"`
	CustomerPhone   *string            `json:"customer_phone,omitempty"`
	CustomerAddress *string            `json:"customer_address,omitempty"`
	TaxRate         *float64           `json:"tax_rate,omitempty" validate:"omitempty,min=0"`
	Notes           *string            `json:"notes,omitempty"`
	Status          *string            `json:"status,omitempty" validate:"omitempty,oneof=new processing completed delivered cancelled"`
	Items           []OrderItemRequest `json:"items,omitempty" validate:"omitempty,min=1,dive"`
	Claimed         *ClaimedTotals     `json:"claimed_totals,omitempty"`
}

// OrderItemResponse línea de pedido en respuestas.
type OrderItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
	IsCustom    bool    `json:"is_custom"`
}

// OrderResponse pedido completo para respuestas.
type OrderResponse struct {
	ID              string              `json:"id"`
	CompanyID       string              `json:"company_id"`
	Number          string              `json:"number"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone,omitempty"`
	CustomerAddress string              `json:"customer_address,omitempty"`
	Subtotal        float64             `json:"subtotal"`
	TaxRate         float64             `json:"tax_rate"`
	TaxAmount       float64             `json:"tax_amount"`
	Total           float64             `json:"total"`
	Notes           string              `json:"notes,omitempty"`
	Status          string              `json:"status"`
	SalesRepID      string              `json:"sales_rep_id"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// OrderListRequest query params para GET /api/orders.
type OrderListRequest struct {
	PageRequest
	Status     string `query:"status" validate:"omitempty,oneof=new processing completed delivered cancelled"`
	SalesRepID string `query:"sales_rep_id" validate:"omitempty,uuid4"`
	DateFrom   string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo     string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Search     string `query:"search"`
}

// OrderListResponse listado paginado de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// OrderStatsResponse agregados para el dashboard.
type OrderStatsResponse struct {
	TotalOrders       int     `json:"total_orders"`
	ThisMonthOrders   int     `json:"this_month_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	ThisMonthRevenue  float64 `json:"this_month_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
}
