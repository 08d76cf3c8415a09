package apptest

import (
	"context"
	"time"

	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

// ReportRepo doble en memoria de las consultas de reportes sobre el store.
type ReportRepo struct{ Store *Store }

var _ repository.ReportRepository = (*ReportRepo)(nil)

// NewReportRepo construye el doble de reportes.
func NewReportRepo(store *Store) *ReportRepo {
	return &ReportRepo{Store: store}
}

// SalesInRange filtra las ventas del store por created_at, más recientes primero.
func (r *ReportRepo) SalesInRange(_ context.Context, from, to *time.Time, limit int) ([]*entity.Sale, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()
	var out []*entity.Sale
	for i := len(r.Store.Sales) - 1; i >= 0; i-- {
		s := r.Store.Sales[i]
		if from != nil && s.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && s.CreatedAt.After(*to) {
			continue
		}
		cp := *s
		out = append(out, &cp)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// RecentSales devuelve las últimas ventas registradas.
func (r *ReportRepo) RecentSales(ctx context.Context, limit int) ([]*entity.Sale, error) {
	return r.SalesInRange(ctx, nil, nil, limit)
}

// CountProducts cuenta los productos del store.
func (r *ReportRepo) CountProducts(context.Context) (int64, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()
	return int64(len(r.Store.Products)), nil
}

// CountLowStock cuenta productos con stock por debajo de su umbral.
func (r *ReportRepo) CountLowStock(context.Context) (int64, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()
	var count int64
	for _, p := range r.Store.Products {
		if p.CurrentStock < p.LowStockThreshold {
			count++
		}
	}
	return count, nil
}
