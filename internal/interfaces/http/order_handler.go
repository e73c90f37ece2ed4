package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/reports"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/pkg/validation"
)

// OrderHandler maneja los pedidos (protegido). El alcance por rol lo aplica
// el caso de uso: los representantes solo ven sus propios pedidos.
type OrderHandler struct {
	uc    *usecase.OrderUseCase
	pdfUC *reports.PDFUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, pdfUC *reports.PDFUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Crear pedido (totales recalculados en el servidor)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(companyID, userID, in)
	if err != nil {
		return h.mapOrderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido con sus líneas
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	role, _ := GetRole(c)
	out, err := h.uc.GetByID(GetCompanyID(c), GetUserID(c), role, c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "pedido no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pedidos con filtros
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status        query  string  false  "Estado"
// @Param        sales_rep_id  query  string  false  "Vendedor (ignorado para representantes)"
// @Param        date_from     query  string  false  "Desde (YYYY-MM-DD)"
// @Param        date_to       query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        search        query  string  false  "Número de pedido o cliente"
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var in dto.OrderListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	role, _ := GetRole(c)
	out, err := h.uc.List(GetCompanyID(c), GetUserID(c), role, in)
	if err != nil {
		return mapDomainError(c, err, "pedido no encontrado")
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Agregados de pedidos para el dashboard
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderStatsResponse
// @Router       /api/orders/stats [get]
func (h *OrderHandler) Stats(c *fiber.Ctx) error {
	role, _ := GetRole(c)
	out, err := h.uc.Stats(GetCompanyID(c), GetUserID(c), role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pedido (recalcula totales si cambian líneas o tasa)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	role, _ := GetRole(c)
	out, err := h.uc.Update(GetCompanyID(c), GetUserID(c), role, c.Params("id"), in)
	if err != nil {
		return h.mapOrderError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido
// @Tags         orders
// @Security     Bearer
// @Param        id  path  string  true  "ID del pedido"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	role, _ := GetRole(c)
	if err := h.uc.Delete(GetCompanyID(c), GetUserID(c), role, c.Params("id")); err != nil {
		return mapDomainError(c, err, "pedido no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF godoc
// @Summary      Descargar la hoja del pedido en PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/invoice.pdf [get]
func (h *OrderHandler) DownloadPDF(c *fiber.Ctx) error {
	role, _ := GetRole(c)
	pdfBytes, filename, err := h.pdfUC.DownloadOrderPDF(
		c.Context(), GetCompanyID(c), GetUserID(c), role, c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "pedido no encontrado")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// mapOrderError mapea errores de pedidos, incluido el descuadre de totales
// (422 con la lista de campos descuadrados en details).
func (h *OrderHandler) mapOrderError(c *fiber.Ctx, err error) error {
	var mismatch *usecase.TotalsMismatchError
	if errors.As(err, &mismatch) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "TOTALS_MISMATCH",
			Message: "los totales enviados no coinciden con el recálculo del servidor",
			Details: mismatch.Mismatches,
		})
	}
	return mapDomainError(c, err, "pedido o producto no encontrado")
}
