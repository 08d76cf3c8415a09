package sales_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panaderia-api/internal/application/apptest"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/application/sales"
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
)

const testProductID = "00000000-0000-0000-0000-0000000000aa"

func newCroissant(stock int64) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:                testProductID,
		Name:              "Croissant",
		Price:             decimal.RequireFromString("2.50"),
		Unit:              "pcs",
		CurrentStock:      stock,
		LowStockThreshold: 5,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func newSaleUC(store *apptest.Store) *sales.RecordSaleUseCase {
	return sales.NewRecordSaleUseCase(apptest.NewTxRunner(store))
}

// Venta feliz: stock decrementado, venta con snapshots y movimiento OUT.
func TestRecordSale_DecrementaYRegistraLedger(t *testing.T) {
	store := apptest.NewStore()
	store.PutProduct(newCroissant(10))
	uc := newSaleUC(store)

	out, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ProductID: testProductID,
		Quantity:  3,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 7, out.Product.CurrentStock, "el stock debe quedar en 10-3")
	assert.Equal(t, "Croissant", out.Sale.ProductNameSnapshot)
	assert.True(t, out.Sale.UnitPriceSnapshot.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, out.Sale.Total.Equal(decimal.RequireFromString("7.50")),
		"total = precio * cantidad")

	require.Len(t, store.Sales, 1)
	require.Len(t, store.Movements, 1)
	m := store.Movements[0]
	assert.Equal(t, entity.MovementTypeOUT, m.Type)
	assert.EqualValues(t, -3, m.Quantity, "el ledger guarda la cantidad firmada")
	assert.EqualValues(t, 7, m.StockAfter)
	assert.Equal(t, "Venta", m.Note, "sin nota, el movimiento usa la nota por defecto")
}

// El snapshot de la venta es inmune a ediciones posteriores del producto.
func TestRecordSale_SnapshotInmuneAEdiciones(t *testing.T) {
	store := apptest.NewStore()
	store.PutProduct(newCroissant(10))
	uc := newSaleUC(store)

	out, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ProductID: testProductID,
		Quantity:  1,
	})
	require.NoError(t, err)

	// Edición posterior del producto
	p := store.Product(testProductID)
	p.Name = "Croissant XL"
	p.Price = decimal.RequireFromString("9.99")
	store.PutProduct(p)

	assert.Equal(t, "Croissant", out.Sale.ProductNameSnapshot)
	assert.True(t, store.Sales[0].UnitPriceSnapshot.Equal(decimal.RequireFromString("2.50")))
}

// Stock insuficiente: error con el disponible y cero efectos.
func TestRecordSale_StockInsuficiente(t *testing.T) {
	store := apptest.NewStore()
	store.PutProduct(newCroissant(2))
	uc := newSaleUC(store)

	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ProductID: testProductID,
		Quantity:  5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficientErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.EqualValues(t, 2, insufficientErr.Available, "el error reporta el stock disponible")
	assert.Contains(t, err.Error(), "disponible: 2")

	assert.EqualValues(t, 2, store.Product(testProductID).CurrentStock, "el stock no debe cambiar")
	assert.Empty(t, store.Sales)
	assert.Empty(t, store.Movements)
}

func TestRecordSale_ProductoInexistente(t *testing.T) {
	store := apptest.NewStore()
	uc := newSaleUC(store)

	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ProductID: "no-existe",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordSale_CantidadInvalida(t *testing.T) {
	store := apptest.NewStore()
	store.PutProduct(newCroissant(10))
	uc := newSaleUC(store)

	for _, qty := range []int64{0, -3} {
		_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
			ProductID: testProductID,
			Quantity:  qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
}

// Atomicidad: si el insert del movimiento falla a mitad de la unidad, el
// stock y la colección de ventas vuelven al estado previo.
func TestRecordSale_RollbackAnteFalloParcial(t *testing.T) {
	store := apptest.NewStore()
	store.PutProduct(newCroissant(10))
	store.FailMovementCreate = errors.New("insert stock movement: conexión perdida")
	uc := newSaleUC(store)

	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ProductID: testProductID,
		Quantity:  4,
	})
	require.Error(t, err)

	assert.EqualValues(t, 10, store.Product(testProductID).CurrentStock,
		"rollback: el decremento no debe persistir")
	assert.Empty(t, store.Sales, "rollback: la venta no debe persistir")
	assert.Empty(t, store.Movements)
}

// Dos ventas concurrentes sobre stock 5 con cantidad 3: exactamente una gana
// y la otra recibe stock insuficiente; el stock nunca queda negativo.
func TestRecordSale_ConcurrenciaSinSobreventa(t *testing.T) {
	store := apptest.NewStore()
	store.PutProduct(newCroissant(5))
	uc := newSaleUC(store)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.RecordSale(context.Background(), dto.CreateSaleRequest{
				ProductID: testProductID,
				Quantity:  3,
			})
		}(i)
	}
	wg.Wait()

	var okCount, insufficientCount int
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case errors.Is(err, domain.ErrInsufficientStock):
			insufficientCount++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, okCount, "exactamente una venta debe confirmarse")
	assert.Equal(t, 1, insufficientCount, "la otra debe ver el stock ya decrementado")

	final := store.Product(testProductID).CurrentStock
	assert.EqualValues(t, 2, final)
	assert.GreaterOrEqual(t, final, int64(0), "el stock nunca puede quedar negativo")
	assert.Len(t, store.Sales, 1)
	assert.Len(t, store.Movements, 1)
}
