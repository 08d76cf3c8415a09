package dto

import "time"

// AdjustStockRequest body para POST /api/products/:id/stock.
// Type: IN suma |quantity|, OUT resta |quantity|, ADJUST aplica el delta crudo.
type AdjustStockRequest struct {
	Type     string `json:"type" validate:"required,oneof=IN OUT ADJUST"`
	Quantity int64  `json:"quantity" validate:"required"`
	Note     string `json:"note" validate:"max=200"`
}

// StockMovementResponse salida de una entrada del ledger.
type StockMovementResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	Type       string    `json:"type"`
	Quantity   int64     `json:"quantity"`
	Note       string    `json:"note"`
	StockAfter int64     `json:"stockAfter"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AdjustStockResult resultado de un ajuste manual: producto actualizado y
// movimiento del ledger creado.
type AdjustStockResult struct {
	Product  ProductResponse       `json:"product"`
	Movement StockMovementResponse `json:"movement"`
}
