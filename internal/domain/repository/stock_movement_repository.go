package repository

import "github.com/tu-usuario/panaderia-api/internal/domain/entity"

// StockMovementRepository define el puerto del ledger de stock (DIP).
// El ledger es append-only: las entradas nunca se editan ni se borran.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
}
