package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/panaderia-api/internal/application/reporting"
)

// DashboardHandler maneja el resumen del panel de administración (protegido).
type DashboardHandler struct {
	uc *reporting.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reporting.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Resumen del día: ventas, ingresos, stock bajo y últimas ventas
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
