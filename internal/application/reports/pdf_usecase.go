package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/authz"
	"github.com/jhoicas/Pedidos-api/internal/domain/money"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// PDFUseCase genera los documentos imprimibles: el pedido individual y el
// reporte de ventas de un período.
type PDFUseCase struct {
	orderRepo      repository.OrderRepository
	companyRepo    repository.CompanyRepository
	orderGenerator OrderPDFGenerator
	salesGenerator SalesReportGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	orderRepo repository.OrderRepository,
	companyRepo repository.CompanyRepository,
	orderGenerator OrderPDFGenerator,
	salesGenerator SalesReportGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		orderRepo:      orderRepo,
		companyRepo:    companyRepo,
		orderGenerator: orderGenerator,
		salesGenerator: salesGenerator,
	}
}

// DownloadOrderPDF recupera el pedido completo y genera su PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el pedido no existe.
//   - domain.ErrForbidden        si el pedido no pertenece a la empresa del
//     token, o si un representante pide un pedido ajeno.
func (uc *PDFUseCase) DownloadOrderPDF(
	ctx context.Context,
	companyID, userID string,
	role authz.Role,
	orderID string,
) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if order.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}
	if role == authz.RoleRepresentative && order.SalesRepID != userID {
		return nil, "", domain.ErrForbidden
	}

	if order.Items == nil {
		items, err := uc.orderRepo.GetItemsByOrderID(orderID)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
		}
		order.Items = items
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}

	pdfBytes, err = uc.orderGenerator.GenerateOrderPDF(ctx, order, company)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("pedido_%s.pdf", order.Number), nil
}

// DownloadSalesReport arma el reporte de ventas del período [from, to] y
// genera su PDF. Para representantes solo entran sus propios pedidos.
// Los ingresos y el promedio excluyen pedidos cancelados.
func (uc *PDFUseCase) DownloadSalesReport(
	ctx context.Context,
	companyID, userID string,
	role authz.Role,
	from, to time.Time,
) (pdfBytes []byte, filename string, err error) {
	if to.Before(from) {
		return nil, "", domain.ErrInvalidInput
	}

	filter := repository.OrderFilter{
		DateFrom: &from,
		DateTo:   &to,
		Limit:    10000, // corte de seguridad; un período normal queda muy por debajo
	}
	if role == authz.RoleRepresentative {
		filter.SalesRepID = userID
	}
	orders, err := uc.orderRepo.ListByCompany(companyID, filter)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar pedidos: %w", err)
	}

	report := &SalesReport{From: from, To: to}
	for _, o := range orders {
		report.Rows = append(report.Rows, SalesReportRow{
			Number:       o.Number,
			CustomerName: o.CustomerName,
			Status:       o.Status,
			Date:         o.CreatedAt,
			Total:        o.Total,
		})
		report.OrderCount++
		if o.IsCancelled() {
			report.CancelledCount++
			continue
		}
		report.TotalRevenue += o.Total
	}
	report.TotalRevenue = money.Round(report.TotalRevenue)
	if billed := report.OrderCount - report.CancelledCount; billed > 0 {
		report.AverageRevenue = money.Round(report.TotalRevenue / float64(billed))
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, "", fmt.Errorf("reporte: obtener empresa: %w", err)
	}

	pdfBytes, err = uc.salesGenerator.GenerateSalesReportPDF(ctx, report, company)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("ventas_%s_%s.pdf", from.Format("20060102"), to.Format("20060102"))
	return pdfBytes, filename, nil
}
