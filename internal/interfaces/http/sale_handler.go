package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/application/reporting"
	"github.com/tu-usuario/panaderia-api/internal/application/sales"
)

// SaleHandler maneja el registro de ventas y su listado (protegido).
type SaleHandler struct {
	recordSale *sales.RecordSaleUseCase
	history    *reporting.HistoryUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(recordSale *sales.RecordSaleUseCase, history *reporting.HistoryUseCase) *SaleHandler {
	return &SaleHandler{recordSale: recordSale, history: history}
}

// Create registra una venta: valida stock, decrementa, crea la venta con
// snapshots y anota el movimiento OUT, todo en una sola transacción.
//
// @Summary      Registrar venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "productId, quantity, note opcional"
// @Success      201   {object}  dto.SaleResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.recordSale.RecordSale(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "ok",
		"sale":    out.Sale,
		"product": out.Product,
	})
}

// List godoc
// @Summary      Listar ventas por rango de fechas
// @Tags         sales
// @Produce      json
// @Param        from   query  string  false  "Fecha ISO inicial"
// @Param        to     query  string  false  "Fecha ISO final"
// @Param        limit  query  int     false  "Límite"  default(10)
// @Success      200    {object}  map[string]any
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var q dto.ListSalesQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "query inválida"))
	}
	out, err := h.history.ListSales(c.Context(), q)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok", "sales": out})
}
