package http

import (
	"github.com/gofiber/fiber/v2"

	appledger "github.com/jcastro/pedidos-api/internal/application/ledger"
	"github.com/jcastro/pedidos-api/internal/application/dto"
)

// LedgerHandler maneja los movimientos de stock y la auditoría del ledger
// (protegido). El registro manual de movimientos es solo para admin.
type LedgerHandler struct {
	record *appledger.RecordMovementUseCase
	audit  *appledger.AuditUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(record *appledger.RecordMovementUseCase, audit *appledger.AuditUseCase) *LedgerHandler {
	return &LedgerHandler{record: record, audit: audit}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  receive suma, issue resta, adjust aplica el delta firmado. Nunca deja stock negativo.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "item_id, kind (receive|issue|adjust), quantity, location_id opcional"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/movements [post]
func (h *LedgerHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	txn, err := h.record.RecordMovement(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransactionResponse{
		ID:         txn.ID,
		ItemID:     txn.ItemID,
		LocationID: txn.LocationID,
		Kind:       txn.Kind,
		Delta:      txn.Delta,
		Reason:     txn.Reason,
		CreatedAt:  txn.CreatedAt,
		CreatedBy:  txn.CreatedBy,
	})
}

// ListMovements godoc
// @Summary      Listar movimientos de un artículo
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        item_id  path   string  true   "ID del artículo"
// @Param        limit    query  int     false  "Límite"  default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/ledger/items/{item_id}/movements [get]
func (h *LedgerHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.record.ListMovements(c.Params("item_id"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CurrentQuantity godoc
// @Summary      Cantidad autoritativa de un artículo
// @Description  Suma de deltas del ledger, no la caché del artículo.
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        item_id      path   string  true   "ID del artículo"
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Success      200  {object}  dto.CurrentQuantityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/items/{item_id}/quantity [get]
func (h *LedgerHandler) CurrentQuantity(c *fiber.Ctx) error {
	out, err := h.record.CurrentQuantity(c.Params("item_id"), c.Query("location_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Verificar consistencia del ledger
// @Description  Reconstruye cantidades por replay y las compara con la caché de cada artículo.
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LedgerCheckResponse
// @Router       /api/ledger/verify [get]
func (h *LedgerHandler) Verify(c *fiber.Ctx) error {
	out, err := h.audit.Verify(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
