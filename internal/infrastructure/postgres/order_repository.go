package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, company_id, number, customer_name, customer_phone, customer_address,
	subtotal, tax_rate, tax_amount, total, notes, status, sales_rep_id, created_at, updated_at`

const orderItemColumns = `id, order_id, product_id, name, description, notes, quantity,
	unit_price, subtotal, is_custom`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de un pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, company_id, number, customer_name, customer_phone, customer_address,
			subtotal, tax_rate, tax_amount, total, notes, status, sales_rep_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CompanyID, order.Number, order.CustomerName, order.CustomerPhone,
		order.CustomerAddress, order.Subtotal, order.TaxRate, order.TaxAmount, order.Total,
		order.Notes, order.Status, order.SalesRepID, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de pedido.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, name, description, notes, quantity,
			unit_price, subtotal, is_custom)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Name, item.Description, item.Notes,
		item.Quantity, item.UnitPrice, item.Subtotal, item.IsCustom,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido. Las líneas se cargan aparte
// con GetItemsByOrderID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	if err := scanOrder(r.q.QueryRow(context.Background(), query, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetItemsByOrderID líneas de un pedido en orden de inserción.
func (r *OrderRepo) GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		var productID *string
		if err := rows.Scan(&it.ID, &it.OrderID, &productID, &it.Name, &it.Description,
			&it.Notes, &it.Quantity, &it.UnitPrice, &it.Subtotal, &it.IsCustom); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if productID != nil {
			it.ProductID = *productID
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// Update actualiza la cabecera de un pedido.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET customer_name = $2, customer_phone = $3, customer_address = $4,
			subtotal = $5, tax_rate = $6, tax_amount = $7, total = $8, notes = $9,
			status = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerName, order.CustomerPhone, order.CustomerAddress,
		order.Subtotal, order.TaxRate, order.TaxAmount, order.Total, order.Notes,
		order.Status, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// ReplaceItems elimina las líneas actuales e inserta las nuevas. Debe
// ejecutarse dentro de la misma transacción que Update.
func (r *OrderRepo) ReplaceItems(orderID string, items []*entity.OrderItem) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	for _, item := range items {
		if err := r.CreateItem(item); err != nil {
			return err
		}
	}
	return nil
}

// ListByCompany lista pedidos de la empresa aplicando los filtros activos.
func (r *OrderRepo) ListByCompany(companyID string, f repository.OrderFilter) ([]*entity.Order, error) {
	conditions := []string{"company_id = $1"}
	args := []any{companyID}

	add := func(cond string, val any) {
		args = append(args, val)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.SalesRepID != "" {
		add("sales_rep_id = $%d", f.SalesRepID)
	}
	if f.DateFrom != nil {
		add("created_at >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		add("created_at <= $%d", *f.DateTo)
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(number ILIKE $%d OR customer_name ILIKE $%d)", n, n))
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` + strings.Join(conditions, " AND ") +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// NextNumber consecutivo legible por empresa (ORD-000123). El contador vive
// en order_counters y el UPSERT lo hace atómico dentro de la transacción.
func (r *OrderRepo) NextNumber(companyID string) (string, error) {
	query := `
		INSERT INTO order_counters (company_id, last_number) VALUES ($1, 1)
		ON CONFLICT (company_id) DO UPDATE SET last_number = order_counters.last_number + 1
		RETURNING last_number`
	var n int
	if err := r.q.QueryRow(context.Background(), query, companyID).Scan(&n); err != nil {
		return "", fmt.Errorf("next order number: %w", err)
	}
	return fmt.Sprintf("ORD-%06d", n), nil
}

// Stats agregados de pedidos. salesRepID vacío cuenta toda la empresa;
// los ingresos excluyen pedidos cancelados.
func (r *OrderRepo) Stats(companyID, salesRepID string, monthStart time.Time) (*repository.OrderStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE created_at >= $2),
			COALESCE(SUM(total) FILTER (WHERE status <> 'cancelled'), 0),
			COALESCE(SUM(total) FILTER (WHERE status <> 'cancelled' AND created_at >= $2), 0)
		FROM orders
		WHERE company_id = $1 AND ($3 = '' OR sales_rep_id = $3)`
	var s repository.OrderStats
	err := r.q.QueryRow(context.Background(), query, companyID, monthStart, salesRepID).Scan(
		&s.TotalOrders, &s.ThisMonthOrders, &s.TotalRevenue, &s.ThisMonthRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	return &s, nil
}

// Delete elimina un pedido; las líneas caen por ON DELETE CASCADE.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func scanOrder(row pgx.Row, o *entity.Order) error {
	return row.Scan(
		&o.ID, &o.CompanyID, &o.Number, &o.CustomerName, &o.CustomerPhone, &o.CustomerAddress,
		&o.Subtotal, &o.TaxRate, &o.TaxAmount, &o.Total, &o.Notes, &o.Status, &o.SalesRepID,
		&o.CreatedAt, &o.UpdatedAt,
	)
}
