package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/pedidos-api/internal/application/dto"
	"github.com/jcastro/pedidos-api/internal/application/orders"
)

// ReturnHandler maneja las peticiones HTTP de devoluciones (protegido).
// Las devoluciones no tocan el ledger.
type ReturnHandler struct {
	create    *orders.CreateUseCase
	lifecycle *orders.LifecycleUseCase
	queries   *orders.QueryUseCase
}

// NewReturnHandler construye el handler.
func NewReturnHandler(
	create *orders.CreateUseCase,
	lifecycle *orders.LifecycleUseCase,
	queries *orders.QueryUseCase,
) *ReturnHandler {
	return &ReturnHandler{create: create, lifecycle: lifecycle, queries: queries}
}

// Create godoc
// @Summary      Crear devolución
// @Description  type customer (buyer sobre su propio cliente, o admin) o supplier (seller o admin).
// @Tags         returns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReturnRequest  true  "type, partner_id y líneas con motivo"
// @Success      201   {object}  dto.ReturnResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/returns [post]
func (h *ReturnHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ret, err := h.create.CreateReturn(c.Context(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(orders.ToReturnResponse(ret))
}

// GetByID godoc
// @Summary      Obtener devolución
// @Tags         returns
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la devolución"
// @Success      200  {object}  dto.ReturnResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/returns/{id} [get]
func (h *ReturnHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queries.GetReturn(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar devoluciones
// @Tags         returns
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "customer o supplier"
// @Param        status  query  string  false  "Filtrar por estado"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.ReturnResponse
// @Router       /api/returns [get]
func (h *ReturnHandler) List(c *fiber.Ctx) error {
	out, err := h.queries.ListReturns(c.Query("type"), c.Query("status"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Transition godoc
// @Summary      Transicionar devolución
// @Description  status destino: received (admin) o closed (admin).
// @Tags         returns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la devolución"
// @Param        body  body  dto.ReturnTransitionRequest  true  "status destino"
// @Success      200   {object}  dto.ReturnResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/returns/{id}/status [patch]
func (h *ReturnHandler) Transition(c *fiber.Ctx) error {
	var in dto.ReturnTransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ret, err := h.lifecycle.TransitionReturnFromRequest(c.Context(), c.Params("id"), in, GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(orders.ToReturnResponse(ret))
}

// Delete godoc
// @Summary      Eliminar devolución
// @Tags         returns
// @Security     Bearer
// @Param        id  path  string  true  "ID de la devolución"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/returns/{id} [delete]
func (h *ReturnHandler) Delete(c *fiber.Ctx) error {
	if err := h.lifecycle.DeleteReturn(GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
