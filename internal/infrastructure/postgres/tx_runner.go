package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/panaderia-api/internal/application/inventory"
	"github.com/tu-usuario/panaderia-api/internal/application/sales"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

var (
	_ sales.TxRunner     = (*TxRunner)(nil)
	_ inventory.TxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// La unidad queda acotada por timeout (statement_timeout y lock_timeout
// SET LOCAL): si no confirma a tiempo falla con domain.ErrTxTimeout en vez
// de quedar abierta indefinidamente.
type TxRunner struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewTxRunner construye el runner con el pool. timeout <= 0 desactiva la cota.
func NewTxRunner(pool *pgxpool.Pool, timeout time.Duration) *TxRunner {
	return &TxRunner{pool: pool, timeout: timeout}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El Rollback diferido cubre todas las salidas, incluido
// panic dentro de fn.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", mapTimeoutErr(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if r.timeout > 0 {
		ms := r.timeout.Milliseconds()
		if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = %d", ms)); err != nil {
			return fmt.Errorf("set statement_timeout: %w", err)
		}
		if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = %d", ms)); err != nil {
			return fmt.Errorf("set lock_timeout: %w", err)
		}
	}

	productRepo := NewProductRepository(tx)
	saleRepo := NewSaleRepository(tx)
	movementRepo := NewStockMovementRepository(tx)

	if err := fn(productRepo, saleRepo, movementRepo); err != nil {
		return mapTimeoutErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", mapTimeoutErr(err))
	}
	return nil
}
