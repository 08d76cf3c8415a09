package inventory

import (
	"context"

	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Misma forma que sales.TxRunner: el ajuste
// manual comparte el contrato del ledger (update de producto + entrada
// append confirman o fallan juntos) aunque corre en su propia transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
