package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	domaininv "github.com/tu-usuario/panaderia-api/internal/domain/inventory"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

// AdjustStockUseCase registra ajustes manuales de stock (recepción de
// mercancía, correcciones de conteo) a través del mismo contrato de ledger
// que las ventas: producto y movimiento se confirman en una sola transacción
// con bloqueo de fila.
type AdjustStockUseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
}

// NewAdjustStockUseCase construye el caso de uso. movementRepo (fuera de tx)
// sirve solo para lecturas del ledger.
func NewAdjustStockUseCase(txRunner TxRunner, movementRepo repository.StockMovementRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// AdjustStock aplica un ajuste IN/OUT/ADJUST sobre el producto.
// La regla de cantidades vive en el dominio (inventory.Apply); aquí solo se
// orquesta la transacción. ErrInvalidResult si el stock quedaría negativo.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, productID string, in dto.AdjustStockRequest) (*dto.AdjustStockResult, error) {
	movType, ok := entity.ParseMovementType(in.Type)
	if !ok || productID == "" || in.Quantity == 0 {
		return nil, domain.ErrInvalidInput
	}

	var result dto.AdjustStockResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newStock, normalized, err := domaininv.Apply(movType, in.Quantity, product.CurrentStock)
		if err != nil {
			return err
		}

		now := time.Now()
		if err := productRepo.UpdateStock(product.ID, newStock, now); err != nil {
			return err
		}
		product.CurrentStock = newStock
		product.UpdatedAt = now

		movement := &entity.StockMovement{
			ID:         uuid.New().String(),
			ProductID:  product.ID,
			Type:       movType,
			Quantity:   normalized,
			Note:       in.Note,
			StockAfter: newStock,
			CreatedAt:  now,
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}

		result.Product = dto.FromProduct(product)
		result.Movement = dto.FromMovement(movement)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListMovements devuelve el ledger de un producto, más recientes primero
// (vista de auditoría, read-only).
func (uc *AdjustStockUseCase) ListMovements(ctx context.Context, productID string, limit, offset int) ([]dto.StockMovementResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	list, err := uc.movementRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.FromMovement(m))
	}
	return out, nil
}
