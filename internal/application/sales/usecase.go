package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

// defaultSaleNote nota del movimiento OUT cuando la venta no trae una.
const defaultSaleNote = "Venta"

// RecordSaleUseCase registra ventas de forma transaccional: valida stock,
// decrementa el producto, crea la venta con snapshot de nombre y precio y
// agrega la entrada OUT al ledger, todo con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback.
type RecordSaleUseCase struct {
	txRunner TxRunner
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(txRunner TxRunner) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner}
}

// RecordSale ejecuta la venta como unidad atómica:
//
//  1. Carga el producto dentro de la tx bloqueando su fila.
//  2. ErrNotFound si no existe.
//  3. InsufficientStockError (con el disponible) si quantity > stock.
//  4. Decrementa el stock del producto.
//  5. Crea la venta con total = precio * cantidad y snapshots de nombre
//     y precio, inmunes a ediciones posteriores del producto.
//  6. Agrega al ledger un movimiento OUT con cantidad -quantity y
//     stockAfter = stock resultante.
//  7. Commit. Cualquier fallo en 1-6 hace Rollback: ni el stock ni las
//     colecciones de ventas/movimientos quedan tocados.
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResult, error) {
	if in.ProductID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	var result dto.SaleResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila del producto: dos ventas concurrentes sobre el
		// mismo producto se serializan aquí y la segunda ve el stock ya
		// decrementado (sin lost update).
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.CurrentStock < in.Quantity {
			return &domain.InsufficientStockError{Available: product.CurrentStock}
		}

		now := time.Now()
		newStock := product.CurrentStock - in.Quantity
		if err := productRepo.UpdateStock(product.ID, newStock, now); err != nil {
			return err
		}
		product.CurrentStock = newStock
		product.UpdatedAt = now

		// Snapshot de precio y nombre al momento de la venta.
		sale := &entity.Sale{
			ID:                  uuid.New().String(),
			ProductID:           product.ID,
			ProductNameSnapshot: product.Name,
			UnitPriceSnapshot:   product.Price,
			Quantity:            in.Quantity,
			Total:               product.Price.Mul(decimal.NewFromInt(in.Quantity)),
			Note:                in.Note,
			CreatedAt:           now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		note := in.Note
		if note == "" {
			note = defaultSaleNote
		}
		movement := &entity.StockMovement{
			ID:         uuid.New().String(),
			ProductID:  product.ID,
			Type:       entity.MovementTypeOUT,
			Quantity:   -in.Quantity,
			Note:       note,
			StockAfter: newStock,
			CreatedAt:  now,
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}

		result.Sale = dto.FromSale(sale)
		result.Product = dto.FromProduct(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
