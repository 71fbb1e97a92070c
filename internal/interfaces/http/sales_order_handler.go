package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/pedidos-api/internal/application/dto"
	"github.com/jcastro/pedidos-api/internal/application/orders"
)

// SalesOrderHandler maneja las peticiones HTTP de pedidos de venta (protegido).
type SalesOrderHandler struct {
	create    *orders.CreateUseCase
	lifecycle *orders.LifecycleUseCase
	queries   *orders.QueryUseCase
	documents *orders.DocumentUseCase
}

// NewSalesOrderHandler construye el handler.
func NewSalesOrderHandler(
	create *orders.CreateUseCase,
	lifecycle *orders.LifecycleUseCase,
	queries *orders.QueryUseCase,
	documents *orders.DocumentUseCase,
) *SalesOrderHandler {
	return &SalesOrderHandler{create: create, lifecycle: lifecycle, queries: queries, documents: documents}
}

// Create godoc
// @Summary      Crear pedido de venta
// @Description  Un buyer crea siempre sobre su propio cliente y a precio de catálogo; el admin fija cliente y precios libremente. Seller no puede crear ventas.
// @Tags         sales-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalesOrderRequest  true  "customer_id y líneas"
// @Success      201   {object}  dto.SalesOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/sales-orders [post]
func (h *SalesOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	o, err := h.create.CreateSales(c.Context(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(orders.ToSalesResponse(o))
}

// GetByID godoc
// @Summary      Obtener pedido de venta
// @Tags         sales-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.SalesOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-orders/{id} [get]
func (h *SalesOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queries.GetSales(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pedidos de venta
// @Description  Un buyer solo ve los pedidos de su propio cliente.
// @Tags         sales-orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.SalesOrderResponse
// @Router       /api/sales-orders [get]
func (h *SalesOrderHandler) List(c *fiber.Ctx) error {
	out, err := h.queries.ListSales(GetActor(c), c.Query("status"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Transition godoc
// @Summary      Transicionar pedido de venta
// @Description  status destino: approved (admin), received (admin o buyer dueño, con received_date; debita el ledger).
// @Tags         sales-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.SalesTransitionRequest  true  "status destino y fechas"
// @Success      200   {object}  dto.SalesOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales-orders/{id}/status [patch]
func (h *SalesOrderHandler) Transition(c *fiber.Ctx) error {
	var in dto.SalesTransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	o, err := h.lifecycle.TransitionSalesFromRequest(c.Context(), c.Params("id"), in, GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(orders.ToSalesResponse(o))
}

// Delete godoc
// @Summary      Eliminar pedido de venta
// @Description  Solo admin. El borrado no revierte movimientos de ledger ya aplicados.
// @Tags         sales-orders
// @Security     Bearer
// @Param        id  path  string  true  "ID del pedido"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/sales-orders/{id} [delete]
func (h *SalesOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.lifecycle.DeleteSales(GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      PDF del pedido de venta
// @Tags         sales-orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-orders/{id}/pdf [get]
func (h *SalesOrderHandler) PDF(c *fiber.Ctx) error {
	buf, err := h.documents.SalesPDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedido-venta.pdf"`)
	return c.Send(buf)
}
