package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/reports"
)

// ReportHandler expone los reportes descargables en PDF.
type ReportHandler struct {
	pdfUC *reports.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(pdfUC *reports.PDFUseCase) *ReportHandler {
	return &ReportHandler{pdfUC: pdfUC}
}

// DownloadSalesReport godoc
// @Summary      Descargar reporte de ventas del período en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        from  query  string  true  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  true  "Hasta (YYYY-MM-DD)"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/sales.pdf [get]
func (h *ReportHandler) DownloadSalesReport(c *fiber.Ctx) error {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, formato esperado YYYY-MM-DD"})
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, formato esperado YYYY-MM-DD"})
	}
	// El límite superior es inclusivo: cubre todo el día "to".
	to = to.Add(24*time.Hour - time.Nanosecond)

	role, _ := GetRole(c)
	pdfBytes, filename, err := h.pdfUC.DownloadSalesReport(
		c.Context(), GetCompanyID(c), GetUserID(c), role, from, to)
	if err != nil {
		return mapDomainError(c, err, "reporte no disponible")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
