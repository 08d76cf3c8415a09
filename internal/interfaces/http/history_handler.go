package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/panaderia-api/internal/application/reporting"
)

// HistoryHandler maneja el historial de ventas y sus exports (protegido).
type HistoryHandler struct {
	uc *reporting.HistoryUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *reporting.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// Get godoc
// @Summary      Historial de ventas del rango con totales
// @Tags         history
// @Produce      json
// @Param        range  query  string  false  "day | week | month"  default(day)
// @Success      200    {object}  dto.HistoryResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/history [get]
func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Context(), c.Query("range", reporting.RangeDay))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetCSV godoc
// @Summary      Export CSV del historial de ventas
// @Tags         history
// @Produce      text/csv
// @Param        range  query  string  false  "day | week | month"  default(day)
// @Success      200    {string}  string
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/history/csv [get]
func (h *HistoryHandler) GetCSV(c *fiber.Ctx) error {
	rangeName := c.Query("range", reporting.RangeDay)
	csv, err := h.uc.HistoryCSV(c.Context(), rangeName)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="history_%s.csv"`, rangeName))
	return c.SendString(csv)
}

// GetPDF godoc
// @Summary      Export PDF del historial de ventas
// @Tags         history
// @Produce      application/pdf
// @Param        range  query  string  false  "day | week | month"  default(day)
// @Success      200    {file}  byte
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/history/pdf [get]
func (h *HistoryHandler) GetPDF(c *fiber.Ctx) error {
	rangeName := c.Query("range", reporting.RangeDay)
	pdfBytes, err := h.uc.HistoryPDF(c.Context(), rangeName)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="history_%s.pdf"`, rangeName))
	return c.Send(pdfBytes)
}
