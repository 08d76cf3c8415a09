package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

const saleColumns = `id, product_id, product_name_snapshot, unit_price_snapshot, quantity, total, note, created_at`

// ReportRepo consultas read-only sobre ventas y catálogo para reportes.
// Corre siempre sobre el pool, nunca dentro de transacciones de escritura.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesInRange devuelve las ventas con created_at en [from, to], más
// recientes primero. from/to en nil omiten ese extremo.
func (r *ReportRepo) SalesInRange(ctx context.Context, from, to *time.Time, limit int) ([]*entity.Sale, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + saleColumns + ` FROM sales`)
	args := make([]any, 0, 3)
	var conds []string
	if from != nil {
		args = append(args, *from)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC")
	if limit > 0 {
		args = append(args, limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("sales in range: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// RecentSales devuelve las últimas ventas registradas.
func (r *ReportRepo) RecentSales(ctx context.Context, limit int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// CountProducts cuenta los productos del catálogo.
func (r *ReportRepo) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// CountLowStock cuenta productos con stock por debajo de su umbral.
func (r *ReportRepo) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM products WHERE current_stock < low_stock_threshold`
	if err := r.q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return count, nil
}

func collectSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		err := rows.Scan(
			&s.ID, &s.ProductID, &s.ProductNameSnapshot, &s.UnitPriceSnapshot,
			&s.Quantity, &s.Total, &s.Note, &s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
