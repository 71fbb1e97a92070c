package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jcastro/pedidos-api/internal/application/analytics"
)

// DashboardHandler maneja el dashboard analítico (protegido).
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Dashboard analítico
// @Description  Funnels de pedidos, ventas y compras por mes, top de artículos, resumen por categoría, utilidad y margen, estadísticas de precios, histograma y dispersión precio/cantidad. Todo calculado sobre una foto consistente.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
