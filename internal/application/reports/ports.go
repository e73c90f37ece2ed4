package reports

import (
	"context"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// OrderPDFGenerator genera la representación imprimible de un pedido.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.Order, company *entity.Company) ([]byte, error)
}

// SalesReportGenerator genera el reporte de ventas de un período.
type SalesReportGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, report *SalesReport, company *entity.Company) ([]byte, error)
}

// SalesReportRow una fila del reporte: un pedido del período.
type SalesReportRow struct {
	Number       string
	CustomerName string
	Status       string
	Date         time.Time
	Total        float64
}

// SalesReport datos agregados del período. Los ingresos excluyen pedidos
// cancelados; las filas los incluyen marcados por estado.
type SalesReport struct {
	From           time.Time
	To             time.Time
	Rows           []SalesReportRow
	OrderCount     int
	CancelledCount int
	TotalRevenue   float64
	AverageRevenue float64
}
