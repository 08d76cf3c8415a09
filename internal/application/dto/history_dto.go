package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListSalesQuery query params para GET /api/sales.
type ListSalesQuery struct {
	From  string `query:"from"` // fecha ISO, opcional
	To    string `query:"to"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// HistoryTotals agregados sobre las ventas del rango.
type HistoryTotals struct {
	TotalSalesCount int64           `json:"totalSalesCount"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
}

// HistoryResponse salida de GET /api/history.
type HistoryResponse struct {
	Status string         `json:"status"`
	Range  string         `json:"range"`
	From   time.Time      `json:"from"`
	To     time.Time      `json:"to"`
	Totals HistoryTotals  `json:"totals"`
	Sales  []SaleResponse `json:"sales"`
}
