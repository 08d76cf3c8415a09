package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
)

// ReportRepository define consultas read-only sobre ventas y catálogo para
// reportes (historial, CSV, dashboard). Nunca muta Product, Sale ni
// StockMovement; lee únicamente estado ya confirmado.
type ReportRepository interface {
	// SalesInRange devuelve las ventas con created_at en [from, to], más
	// recientes primero. from/to en nil omiten ese extremo; limit <= 0
	// significa sin límite.
	SalesInRange(ctx context.Context, from, to *time.Time, limit int) ([]*entity.Sale, error)
	RecentSales(ctx context.Context, limit int) ([]*entity.Sale, error)
	CountProducts(ctx context.Context) (int64, error)
	// CountLowStock cuenta productos con current_stock < low_stock_threshold.
	CountLowStock(ctx context.Context) (int64, error)
}
