package dto

import "github.com/shopspring/decimal"

// DashboardStats resumen del día para el panel de administración.
type DashboardStats struct {
	TodaysQuantity int64           `json:"todaysQuantity"`
	TodaysRevenue  decimal.Decimal `json:"todaysRevenue"`
	TotalProducts  int64           `json:"totalProducts"`
	LowStockCount  int64           `json:"lowStockCount"`
}

// DashboardResponse salida de GET /api/dashboard/stats.
type DashboardResponse struct {
	Status      string         `json:"status"`
	Stats       DashboardStats `json:"stats"`
	RecentSales []SaleResponse `json:"recentSales"`
}
