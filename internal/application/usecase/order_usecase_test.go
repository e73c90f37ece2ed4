package usecase_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/authz"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	items  map[string][]*entity.OrderItem
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}, items: map[string][]*entity.OrderItem{}}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	cp.Items = nil
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) CreateItem(it *entity.OrderItem) error {
	cp := *it
	r.items[it.OrderID] = append(r.items[it.OrderID], &cp)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	if o, ok := r.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeOrderRepo) GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error) {
	return r.items[orderID], nil
}

func (r *fakeOrderRepo) Update(o *entity.Order) error {
	cp := *o
	cp.Items = nil
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) ReplaceItems(orderID string, items []*entity.OrderItem) error {
	cps := make([]*entity.OrderItem, 0, len(items))
	for _, it := range items {
		cp := *it
		cps = append(cps, &cp)
	}
	r.items[orderID] = cps
	return nil
}

func (r *fakeOrderRepo) ListByCompany(companyID string, f repository.OrderFilter) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.CompanyID != companyID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.SalesRepID != "" && o.SalesRepID != f.SalesRepID {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeOrderRepo) NextNumber(string) (string, error) {
	r.seq++
	return fmt.Sprintf("ORD-%06d", r.seq), nil
}

func (r *fakeOrderRepo) Stats(companyID, salesRepID string, monthStart time.Time) (*repository.OrderStats, error) {
	stats := &repository.OrderStats{}
	for _, o := range r.orders {
		if o.CompanyID != companyID {
			continue
		}
		if salesRepID != "" && o.SalesRepID != salesRepID {
			continue
		}
		stats.TotalOrders++
		if !o.IsCancelled() {
			stats.TotalRevenue += o.Total
		}
		if !o.CreatedAt.Before(monthStart) {
			stats.ThisMonthOrders++
			if !o.IsCancelled() {
				stats.ThisMonthRevenue += o.Total
			}
		}
	}
	return stats, nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	delete(r.orders, id)
	delete(r.items, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetByCompanyAndSKU(string, string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error            { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStock(string, decimal.Decimal) error { return nil }
func (r *fakeProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) ListLowStock(string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error { r.companies[c.ID] = c; return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}
func (r *fakeCompanyRepo) Update(c *entity.Company) error { r.companies[c.ID] = c; return nil }

// fakeTxRunner sin transacción real: pasa el mismo repo.
type fakeTxRunner struct {
	repo repository.OrderRepository
}

func (t *fakeTxRunner) RunOrder(fn func(repo repository.OrderRepository) error) error {
	return fn(t.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID = "11111111-1111-4111-8111-111111111111"
	testRepID     = "22222222-2222-4222-8222-222222222222"
	testManagerID = "33333333-3333-4333-8333-333333333333"
	testProductID = "44444444-4444-4444-8444-444444444444"
)

func buildOrderUseCase(t *testing.T) (*usecase.OrderUseCase, *fakeOrderRepo, *fakeProductRepo) {
	t.Helper()
	orders := newFakeOrderRepo()
	products := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID: {
			ID:        testProductID,
			CompanyID: testCompanyID,
			Name:      "Croissant de mantequilla",
			UnitPrice: decimal.RequireFromString("10.005"),
			IsActive:  true,
		},
	}}
	companies := &fakeCompanyRepo{companies: map[string]*entity.Company{
		testCompanyID: {ID: testCompanyID, Name: "Empresa Test", TaxRate: 21.0},
	}}
	uc := usecase.NewOrderUseCase(orders, products, companies, &fakeTxRunner{repo: orders})
	return uc, orders, products
}

func customItem(name string, qty, price float64) dto.OrderItemRequest {
	return dto.OrderItemRequest{Name: name, Quantity: qty, UnitPrice: price, IsCustom: true}
}

func taxRate(v float64) *float64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Create: recálculo de totales en el servidor
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_RecalculaTotalesEnElServidor(t *testing.T) {
	uc, _, _ := buildOrderUseCase(t)

	// 2 × 10.005 al 15%: línea 20.01, impuesto 3.00, total 23.01
	out, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Cliente Uno",
		TaxRate:      taxRate(15),
		Items:        []dto.OrderItemRequest{customItem("Producto especial", 2, 10.005)},
	})
	require.NoError(t, err)

	assert.Equal(t, 20.01, out.Subtotal)
	assert.Equal(t, 3.00, out.TaxAmount)
	assert.Equal(t, 23.01, out.Total)
	assert.Equal(t, "ORD-000001", out.Number)
	assert.Equal(t, testRepID, out.SalesRepID)
	assert.Equal(t, entity.OrderStatusNew, out.Status)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 20.01, out.Items[0].Subtotal)
}

func TestCreate_RedondeaCadaLineaAntesDeSumar(t *testing.T) {
	uc, _, _ := buildOrderUseCase(t)

	// 3 líneas de 1 × 3.333: cada una redondea a 3.33 antes de sumar
	out, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Cliente Dos",
		TaxRate:      taxRate(0),
		Items: []dto.OrderItemRequest{
			customItem("A", 1, 3.333),
			customItem("B", 1, 3.333),
			customItem("C", 1, 3.333),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 9.99, out.Subtotal)
	assert.Equal(t, 0.0, out.TaxAmount)
	assert.Equal(t, 9.99, out.Total)
}

func TestCreate_TotalesEnviadosCoincidentes(t *testing.T) {
	uc, _, _ := buildOrderUseCase(t)

	out, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Cliente Tres",
		TaxRate:      taxRate(15),
		Items:        []dto.OrderItemRequest{customItem("Producto especial", 2, 10.005)},
		Claimed:      &dto.ClaimedTotals{Subtotal: 20.01, TaxAmount: 3.00, Total: 23.01},
	})
	require.NoError(t, err)
	assert.Equal(t, 23.01, out.Total)
}

func TestCreate_TotalesEnviadosManipuladosRechazaElPedido(t *testing.T) {
	uc, orders, _ := buildOrderUseCase(t)

	_, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Cliente Cuatro",
		TaxRate:      taxRate(15),
		Items:        []dto.OrderItemRequest{customItem("Producto especial", 2, 10.005)},
		Claimed:      &dto.ClaimedTotals{Subtotal: 20.00, TaxAmount: 3.00, Total: 23.01},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTotalsMismatch)

	var mismatch *usecase.TotalsMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Len(t, mismatch.Mismatches, 1)
	assert.Contains(t, mismatch.Mismatches[0], "Subtotal mismatch")

	// nada persistido
	assert.Empty(t, orders.orders)
}

func TestCreate_TasaPorDefectoDeLaEmpresa(t *testing.T) {
	uc, _, _ := buildOrderUseCase(t)

	// sin tax_rate en el request aplica la de la empresa (21%)
	out, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Cliente Cinco",
		Items:        []dto.OrderItemRequest{customItem("A", 1, 100)},
	})
	require.NoError(t, err)

	assert.Equal(t, 21.0, out.TaxRate)
	assert.Equal(t, 100.0, out.Subtotal)
	assert.Equal(t, 21.0, out.TaxAmount)
	assert.Equal(t, 121.0, out.Total)
}

func TestCreate_LineaDeCatalogoUsaNombreYPrecioDelProducto(t *testing.T) {
	uc, _, _ := buildOrderUseCase(t)

	out, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Cliente Seis",
		TaxRate:      taxRate(0),
		Items:        []dto.OrderItemRequest{{ProductID: testProductID, Quantity: 2}},
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "Croissant de mantequilla", out.Items[0].Name)
	assert.Equal(t, 20.01, out.Items[0].Subtotal)
	assert.False(t, out.Items[0].IsCustom)
}

func TestCreate_ProductoInactivoRechazado(t *testing.T) {
	uc, _, products := buildOrderUseCase(t)
	products.products[testProductID].IsActive = false

	_, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Cliente Siete",
		Items:        []dto.OrderItemRequest{{ProductID: testProductID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreate_ProductoDeOtraEmpresaNoExiste(t *testing.T) {
	uc, _, products := buildOrderUseCase(t)
	products.products[testProductID].CompanyID = "otra-empresa"

	_, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Cliente Ocho",
		Items:        []dto.OrderItemRequest{{ProductID: testProductID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_SinLineasRechazado(t *testing.T) {
	uc, _, _ := buildOrderUseCase(t)

	_, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Cliente Nueve",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_LineaLibreSinNombreRechazada(t *testing.T) {
	uc, _, _ := buildOrderUseCase(t)

	_, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Cliente Diez",
		Items:        []dto.OrderItemRequest{{Quantity: 1, UnitPrice: 5, IsCustom: true}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance por rol: representantes solo ven lo suyo
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_RepresentanteNoVePedidosAjenos(t *testing.T) {
	uc, _, _ := buildOrderUseCase(t)

	created, err := uc.Create(testCompanyID, testManagerID, dto.CreateOrderRequest{
		CustomerName: "Cliente Ajeno",
		TaxRate:      taxRate(0),
		Items:        []dto.OrderItemRequest{customItem("A", 1, 10)},
	})
	require.NoError(t, err)

	_, err = uc.GetByID(testCompanyID, testRepID, authz.RoleRepresentative, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// el gerente sí lo ve
	out, err := uc.GetByID(testCompanyID, testManagerID, authz.RoleSalesManager, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)
}

func TestList_RepresentanteIgnoraElFiltroDeVendedor(t *testing.T) {
	uc, _, _ := buildOrderUseCase(t)

	_, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Propio",
		TaxRate:      taxRate(0),
		Items:        []dto.OrderItemRequest{customItem("A", 1, 10)},
	})
	require.NoError(t, err)
	_, err = uc.Create(testCompanyID, testManagerID, dto.CreateOrderRequest{
		CustomerName: "Ajeno",
		TaxRate:      taxRate(0),
		Items:        []dto.OrderItemRequest{customItem("B", 1, 20)},
	})
	require.NoError(t, err)

	// aunque pida explícitamente los pedidos del gerente, solo recibe los suyos
	out, err := uc.List(testCompanyID, testRepID, authz.RoleRepresentative, dto.OrderListRequest{
		SalesRepID: testManagerID,
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Propio", out.Items[0].CustomerName)

	// el gerente ve todo
	all, err := uc.List(testCompanyID, testManagerID, authz.RoleSalesManager, dto.OrderListRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}

func TestStats_ExcluyeCanceladosYPromedia(t *testing.T) {
	uc, _, _ := buildOrderUseCase(t)

	first, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Uno",
		TaxRate:      taxRate(0),
		Items:        []dto.OrderItemRequest{customItem("A", 1, 100)},
	})
	require.NoError(t, err)
	_, err = uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Dos",
		TaxRate:      taxRate(0),
		Items:        []dto.OrderItemRequest{customItem("B", 1, 50)},
	})
	require.NoError(t, err)

	// cancelar el primero lo saca de los ingresos pero no del conteo
	cancelled := entity.OrderStatusCancelled
	_, err = uc.Update(testCompanyID, testRepID, authz.RoleRepresentative, first.ID, dto.UpdateOrderRequest{
		Status: &cancelled,
	})
	require.NoError(t, err)

	stats, err := uc.Stats(testCompanyID, testRepID, authz.RoleRepresentative)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 50.0, stats.TotalRevenue)
	assert.Equal(t, 25.0, stats.AverageOrderValue)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: reemplazo de líneas y recálculo
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ReemplazarLineasRecalculaTotales(t *testing.T) {
	uc, orders, _ := buildOrderUseCase(t)

	created, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Cliente",
		TaxRate:      taxRate(21),
		Items:        []dto.OrderItemRequest{customItem("A", 1, 100)},
	})
	require.NoError(t, err)
	assert.Equal(t, 121.0, created.Total)

	out, err := uc.Update(testCompanyID, testRepID, authz.RoleRepresentative, created.ID, dto.UpdateOrderRequest{
		Items: []dto.OrderItemRequest{customItem("B", 2, 50)},
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, out.Subtotal)
	assert.Equal(t, 121.0, out.Total)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "B", out.Items[0].Name)

	persisted, err := orders.GetItemsByOrderID(created.ID)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, "B", persisted[0].Name)
}

func TestUpdate_CambioDeTasaRecalculaSobreLineasExistentes(t *testing.T) {
	uc, _, _ := buildOrderUseCase(t)

	created, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Cliente",
		TaxRate:      taxRate(21),
		Items:        []dto.OrderItemRequest{customItem("A", 1, 100)},
	})
	require.NoError(t, err)

	out, err := uc.Update(testCompanyID, testRepID, authz.RoleRepresentative, created.ID, dto.UpdateOrderRequest{
		TaxRate: taxRate(0),
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, out.Subtotal)
	assert.Equal(t, 0.0, out.TaxAmount)
	assert.Equal(t, 100.0, out.Total)
}

func TestUpdate_TotalesEnviadosManipuladosRechazaLaActualizacion(t *testing.T) {
	uc, _, _ := buildOrderUseCase(t)

	created, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Cliente",
		TaxRate:      taxRate(0),
		Items:        []dto.OrderItemRequest{customItem("A", 1, 100)},
	})
	require.NoError(t, err)

	_, err = uc.Update(testCompanyID, testRepID, authz.RoleRepresentative, created.ID, dto.UpdateOrderRequest{
		Items:   []dto.OrderItemRequest{customItem("B", 1, 200)},
		Claimed: &dto.ClaimedTotals{Subtotal: 100, TaxAmount: 0, Total: 100},
	})
	require.Error(t, err)

	var mismatch *usecase.TotalsMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Len(t, mismatch.Mismatches, 2) // subtotal y total descuadrados
}

func TestDelete_ValidaEmpresa(t *testing.T) {
	uc, orders, _ := buildOrderUseCase(t)

	created, err := uc.Create(testCompanyID, testRepID, dto.CreateOrderRequest{
		CustomerName: "Cliente",
		TaxRate:      taxRate(0),
		Items:        []dto.OrderItemRequest{customItem("A", 1, 10)},
	})
	require.NoError(t, err)

	err = uc.Delete("otra-empresa", testManagerID, authz.RoleAdmin, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(testCompanyID, testManagerID, authz.RoleAdmin, created.ID)
	require.NoError(t, err)
	assert.Empty(t, orders.orders)
}
