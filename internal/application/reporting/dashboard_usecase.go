package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

const dashboardRecentSales = 10 // ventas recientes en el widget del panel

// DashboardUseCase arma el resumen del día para el panel de administración.
//
// Fuente de datos: ReportRepository (consultas read-only). No participa en
// ninguna transacción del núcleo; lee solo estado confirmado.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetStats construye el DashboardResponse.
//
// Tres consultas en paralelo:
//  1. SalesInRange(hoy)  → TodaysQuantity + TodaysRevenue
//  2. CountProducts/CountLowStock → métricas de catálogo
//  3. RecentSales(10)    → ventas recientes
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()
	from, to, _ := GetRange(RangeDay, now)

	type todayResult struct {
		quantity int64
		revenue  decimal.Decimal
		err      error
	}
	type countsResult struct {
		products int64
		lowStock int64
		err      error
	}
	type recentResult struct {
		sales []dto.SaleResponse
		err   error
	}

	todayCh := make(chan todayResult, 1)
	countsCh := make(chan countsResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		sales, err := uc.reportRepo.SalesInRange(ctx, &from, &to, 0)
		if err != nil {
			todayCh <- todayResult{err: err}
			return
		}
		var qty int64
		revenue := decimal.Zero
		for _, s := range sales {
			qty += s.Quantity
			revenue = revenue.Add(s.Total)
		}
		todayCh <- todayResult{quantity: qty, revenue: revenue}
	}()
	go func() {
		products, err := uc.reportRepo.CountProducts(ctx)
		if err != nil {
			countsCh <- countsResult{err: err}
			return
		}
		lowStock, err := uc.reportRepo.CountLowStock(ctx)
		countsCh <- countsResult{products: products, lowStock: lowStock, err: err}
	}()
	go func() {
		sales, err := uc.reportRepo.RecentSales(ctx, dashboardRecentSales)
		if err != nil {
			recentCh <- recentResult{err: err}
			return
		}
		recentCh <- recentResult{sales: dto.FromSales(sales)}
	}()

	today := <-todayCh
	counts := <-countsCh
	recent := <-recentCh

	if today.err != nil {
		return nil, fmt.Errorf("ventas de hoy: %w", today.err)
	}
	if counts.err != nil {
		return nil, fmt.Errorf("métricas de catálogo: %w", counts.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("ventas recientes: %w", recent.err)
	}

	return &dto.DashboardResponse{
		Status: "ok",
		Stats: dto.DashboardStats{
			TodaysQuantity: today.quantity,
			TodaysRevenue:  today.revenue,
			TotalProducts:  counts.products,
			LowStockCount:  counts.lowStock,
		},
		RecentSales: recent.sales,
	}, nil
}
