package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
	Note      string `json:"note" validate:"max=200"`
}

// SaleResponse salida de una venta (registro inmutable con snapshots).
type SaleResponse struct {
	ID                  string          `json:"id"`
	ProductID           string          `json:"productId"`
	ProductNameSnapshot string          `json:"productNameSnapshot"`
	UnitPriceSnapshot   decimal.Decimal `json:"unitPriceSnapshot"`
	Quantity            int64           `json:"quantity"`
	Total               decimal.Decimal `json:"total"`
	Note                string          `json:"note"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// SaleResult resultado de registrar una venta: la venta creada y el
// producto ya decrementado.
type SaleResult struct {
	Sale    SaleResponse    `json:"sale"`
	Product ProductResponse `json:"product"`
}
