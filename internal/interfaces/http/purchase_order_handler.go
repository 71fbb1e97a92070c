package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/pedidos-api/internal/application/dto"
	"github.com/jcastro/pedidos-api/internal/application/orders"
)

// PurchaseOrderHandler maneja las peticiones HTTP de pedidos de compra
// (protegido). Los permisos por transición los decide el dominio; aquí solo
// se arma el actor desde el token.
type PurchaseOrderHandler struct {
	create    *orders.CreateUseCase
	lifecycle *orders.LifecycleUseCase
	queries   *orders.QueryUseCase
	documents *orders.DocumentUseCase
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(
	create *orders.CreateUseCase,
	lifecycle *orders.LifecycleUseCase,
	queries *orders.QueryUseCase,
	documents *orders.DocumentUseCase,
) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{create: create, lifecycle: lifecycle, queries: queries, documents: documents}
}

// Create godoc
// @Summary      Crear pedido de compra
// @Description  Solo admin y seller. Nace en estado requested.
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "supplier_id y líneas"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	o, err := h.create.CreatePurchase(c.Context(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(orders.ToPurchaseResponse(o))
}

// GetByID godoc
// @Summary      Obtener pedido de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queries.GetPurchase(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pedidos de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.PurchaseOrderResponse
// @Router       /api/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	out, err := h.queries.ListPurchases(c.Query("status"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Transition godoc
// @Summary      Transicionar pedido de compra
// @Description  status destino: supplier_submitted (seller, con costos), approved (admin), received (admin, con received_date; acredita el ledger).
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.PurchaseTransitionRequest  true  "status destino y datos de la transición"
// @Success      200   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/status [patch]
func (h *PurchaseOrderHandler) Transition(c *fiber.Ctx) error {
	var in dto.PurchaseTransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	o, err := h.lifecycle.TransitionPurchaseFromRequest(c.Context(), c.Params("id"), in, GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(orders.ToPurchaseResponse(o))
}

// Delete godoc
// @Summary      Eliminar pedido de compra
// @Description  Solo admin. El borrado no revierte movimientos de ledger ya aplicados.
// @Tags         purchase-orders
// @Security     Bearer
// @Param        id  path  string  true  "ID del pedido"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [delete]
func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.lifecycle.DeletePurchase(GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      PDF del pedido de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/pdf [get]
func (h *PurchaseOrderHandler) PDF(c *fiber.Ctx) error {
	buf, err := h.documents.PurchasePDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedido-compra.pdf"`)
	return c.Send(buf)
}
