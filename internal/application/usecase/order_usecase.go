package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/authz"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/money"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// OrderTxRunner ejecuta fn dentro de una transacción; el repositorio que
// recibe fn opera sobre esa transacción. Cabecera y líneas de un pedido
// se persisten juntas o no se persisten.
type OrderTxRunner interface {
	RunOrder(fn func(repo repository.OrderRepository) error) error
}

// TotalsMismatchError los totales enviados por el cliente no coinciden con
// el recálculo del servidor. Mismatches lista cada campo descuadrado.
type TotalsMismatchError struct {
	Mismatches []string
}

func (e *TotalsMismatchError) Error() string {
	return fmt.Sprintf("%v: %s", domain.ErrTotalsMismatch, strings.Join(e.Mismatches, "; "))
}

func (e *TotalsMismatchError) Unwrap() error { return domain.ErrTotalsMismatch }

// OrderUseCase casos de uso de pedidos. Los totales NUNCA se toman del
// cliente: siempre se recalculan con el motor de totales a partir de las
// líneas; los totales enviados (si vienen) solo se verifican.
type OrderUseCase struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	companies repository.CompanyRepository
	tx        OrderTxRunner
	now       func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	companies repository.CompanyRepository,
	tx OrderTxRunner,
) *OrderUseCase {
	return &OrderUseCase{
		orders:    orders,
		products:  products,
		companies: companies,
		tx:        tx,
		now:       time.Now,
	}
}

// Create crea un pedido: resuelve líneas contra el catálogo, recalcula
// totales en el servidor, verifica los totales enviados (si vienen) y
// persiste cabecera + líneas en una sola transacción.
func (uc *OrderUseCase) Create(companyID, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items, lines, err := uc.resolveItems(companyID, in.Items)
	if err != nil {
		return nil, err
	}

	taxRate, err := uc.resolveTaxRate(companyID, in.TaxRate)
	if err != nil {
		return nil, err
	}

	totals := money.OrderTotals(lines, taxRate)
	if in.Claimed != nil {
		v := money.ValidateOrderTotals(lines, in.Claimed.Subtotal, taxRate, in.Claimed.TaxAmount, in.Claimed.Total)
		if !v.IsValid {
			return nil, &TotalsMismatchError{Mismatches: v.Errors}
		}
	}

	status := in.Status
	if status == "" {
		status = entity.OrderStatusNew
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	order := &entity.Order{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		Subtotal:        totals.Subtotal,
		TaxRate:         taxRate,
		TaxAmount:       totals.TaxAmount,
		Total:           totals.Total,
		Notes:           in.Notes,
		Status:          status,
		SalesRepID:      userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = uc.tx.RunOrder(func(repo repository.OrderRepository) error {
		number, err := repo.NextNumber(companyID)
		if err != nil {
			return err
		}
		order.Number = number
		if err := repo.Create(order); err != nil {
			return err
		}
		for _, item := range items {
			item.OrderID = order.ID
			if err := repo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	order.Items = items
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido con sus líneas. Los representantes solo ven
// sus propios pedidos.
func (uc *OrderUseCase) GetByID(companyID, userID string, role authz.Role, id string) (*dto.OrderResponse, error) {
	order, err := uc.loadScoped(companyID, userID, role, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista pedidos de la empresa con filtros. Para representantes el
// filtro por vendedor se fuerza a su propio ID, ignorando el query param.
func (uc *OrderUseCase) List(companyID, userID string, role authz.Role, in dto.OrderListRequest) (*dto.OrderListResponse, error) {
	in.DefaultPage()
	filter := repository.OrderFilter{
		Status:     in.Status,
		SalesRepID: in.SalesRepID,
		Search:     in.Search,
		Limit:      in.Limit,
		Offset:     in.Offset,
	}
	if role == authz.RoleRepresentative {
		filter.SalesRepID = userID
	}
	if in.DateFrom != "" {
		t, err := time.Parse("2006-01-02", in.DateFrom)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.DateFrom = &t
	}
	if in.DateTo != "" {
		t, err := time.Parse("2006-01-02", in.DateTo)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// inclusivo hasta fin del día
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &end
	}

	orders, err := uc.orders.ListByCompany(companyID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// Stats agregados para el dashboard. Los representantes ven solo sus
// propios números; los ingresos excluyen pedidos cancelados.
func (uc *OrderUseCase) Stats(companyID, userID string, role authz.Role) (*dto.OrderStatsResponse, error) {
	salesRepID := ""
	if role == authz.RoleRepresentative {
		salesRepID = userID
	}
	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats, err := uc.orders.Stats(companyID, salesRepID, monthStart)
	if err != nil {
		return nil, err
	}
	avg := 0.0
	if stats.TotalOrders > 0 {
		avg = money.Round(stats.TotalRevenue / float64(stats.TotalOrders))
	}
	return &dto.OrderStatsResponse{
		TotalOrders:       stats.TotalOrders,
		ThisMonthOrders:   stats.ThisMonthOrders,
		TotalRevenue:      stats.TotalRevenue,
		ThisMonthRevenue:  stats.ThisMonthRevenue,
		AverageOrderValue: avg,
	}, nil
}

// Update actualización parcial de un pedido. Items no-nil reemplaza las
// líneas completas; cualquier cambio de líneas o de tasa recalcula totales.
func (uc *OrderUseCase) Update(companyID, userID string, role authz.Role, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.loadScoped(companyID, userID, role, id)
	if err != nil {
		return nil, err
	}

	if in.CustomerName != nil {
		order.CustomerName = *in.CustomerName
	}
	if in.CustomerPhone != nil {
		order.CustomerPhone = *in.CustomerPhone
	}
	if in.CustomerAddress != nil {
		order.CustomerAddress = *in.CustomerAddress
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	if in.TaxRate != nil {
		if *in.TaxRate < 0 {
			return nil, domain.ErrInvalidInput
		}
		order.TaxRate = *in.TaxRate
	}

	replaceItems := in.Items != nil
	if replaceItems {
		items, lines, err := uc.resolveItems(companyID, in.Items)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			item.OrderID = order.ID
		}
		order.Items = items
		if err := uc.applyTotals(order, lines, in.Claimed); err != nil {
			return nil, err
		}
	} else {
		// recálculo sobre las líneas existentes (la tasa pudo cambiar)
		lines := linesFromItems(order.Items)
		if err := uc.applyTotals(order, lines, in.Claimed); err != nil {
			return nil, err
		}
	}
	order.UpdatedAt = uc.now()

	err = uc.tx.RunOrder(func(repo repository.OrderRepository) error {
		if err := repo.Update(order); err != nil {
			return err
		}
		if replaceItems {
			return repo.ReplaceItems(order.ID, order.Items)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina un pedido de la empresa (cabecera y líneas en cascada).
func (uc *OrderUseCase) Delete(companyID, userID string, role authz.Role, id string) error {
	if _, err := uc.loadScoped(companyID, userID, role, id); err != nil {
		return err
	}
	return uc.orders.Delete(id)
}

// loadScoped carga un pedido validando empresa y, para representantes,
// que el pedido sea propio. Completa las líneas si faltan.
func (uc *OrderUseCase) loadScoped(companyID, userID string, role authz.Role, id string) (*entity.Order, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if role == authz.RoleRepresentative && order.SalesRepID != userID {
		return nil, domain.ErrForbidden
	}
	if order.Items == nil {
		items, err := uc.orders.GetItemsByOrderID(order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}
	return order, nil
}

// resolveItems convierte las líneas del request en entidades: las de
// catálogo se resuelven contra productos (nombre y precio por defecto del
// producto), las libres exigen nombre. Cada subtotal de línea sale del
// motor de totales.
func (uc *OrderUseCase) resolveItems(companyID string, reqs []dto.OrderItemRequest) ([]*entity.OrderItem, []money.LineItem, error) {
	items := make([]*entity.OrderItem, 0, len(reqs))
	lines := make([]money.LineItem, 0, len(reqs))
	for _, r := range reqs {
		if r.Quantity <= 0 {
			return nil, nil, domain.ErrInvalidInput
		}
		item := &entity.OrderItem{
			ID:          uuid.New().String(),
			Name:        r.Name,
			Description: r.Description,
			Notes:       r.Notes,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			IsCustom:    r.IsCustom,
		}
		if r.IsCustom || r.ProductID == "" {
			if r.Name == "" {
				return nil, nil, domain.ErrInvalidInput
			}
			item.IsCustom = true
		} else {
			product, err := uc.products.GetByID(r.ProductID)
			if err != nil {
				return nil, nil, err
			}
			if product == nil || product.CompanyID != companyID {
				return nil, nil, domain.ErrNotFound
			}
			if !product.IsActive {
				return nil, nil, domain.ErrConflict
			}
			item.ProductID = product.ID
			if item.Name == "" {
				item.Name = product.Name
			}
			if r.UnitPrice == 0 {
				item.UnitPrice = product.UnitPrice.InexactFloat64()
			}
		}
		if !money.IsValidAmount(item.UnitPrice) {
			return nil, nil, domain.ErrInvalidInput
		}
		item.Subtotal = money.ItemSubtotal(item.Quantity, item.UnitPrice)
		items = append(items, item)
		lines = append(lines, money.LineItem{Quantity: item.Quantity, UnitPrice: item.UnitPrice})
	}
	return items, lines, nil
}

// applyTotals recalcula los totales del pedido y verifica los enviados.
func (uc *OrderUseCase) applyTotals(order *entity.Order, lines []money.LineItem, claimed *dto.ClaimedTotals) error {
	totals := money.OrderTotals(lines, order.TaxRate)
	if claimed != nil {
		v := money.ValidateOrderTotals(lines, claimed.Subtotal, order.TaxRate, claimed.TaxAmount, claimed.Total)
		if !v.IsValid {
			return &TotalsMismatchError{Mismatches: v.Errors}
		}
	}
	order.Subtotal = totals.Subtotal
	order.TaxAmount = totals.TaxAmount
	order.Total = totals.Total
	return nil
}

// resolveTaxRate tasa del request o, en su defecto, la de la empresa.
func (uc *OrderUseCase) resolveTaxRate(companyID string, reqRate *float64) (float64, error) {
	if reqRate != nil {
		if *reqRate < 0 {
			return 0, domain.ErrInvalidInput
		}
		return *reqRate, nil
	}
	company, err := uc.companies.GetByID(companyID)
	if err != nil {
		return 0, err
	}
	if company == nil {
		return 0, domain.ErrNotFound
	}
	return company.TaxRate, nil
}

func linesFromItems(items []*entity.OrderItem) []money.LineItem {
	lines := make([]money.LineItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, money.LineItem{Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return lines
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Name:        it.Name,
			Description: it.Description,
			Notes:       it.Notes,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
			IsCustom:    it.IsCustom,
		})
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		CompanyID:       o.CompanyID,
		Number:          o.Number,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		Subtotal:        o.Subtotal,
		TaxRate:         o.TaxRate,
		TaxAmount:       o.TaxAmount,
		Total:           o.Total,
		Notes:           o.Notes,
		Status:          o.Status,
		SalesRepID:      o.SalesRepID,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
