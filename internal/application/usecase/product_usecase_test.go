package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panaderia-api/internal/application/apptest"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/application/usecase"
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
)

func TestProductCreate_Defaults(t *testing.T) {
	store := apptest.NewStore()
	uc := usecase.NewProductUseCase(store.ProductRepo())

	out, err := uc.Create(dto.CreateProductRequest{
		Name:         "Baguette",
		Price:        decimal.RequireFromString("3.00"),
		CurrentStock: 8,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "pcs", out.Unit, "unidad por defecto")
	assert.EqualValues(t, 5, out.LowStockThreshold, "umbral por defecto")
	assert.True(t, out.IsActive, "activo por defecto")
	assert.EqualValues(t, 8, out.CurrentStock)
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(apptest.NewStore().ProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{
		Name:  "Baguette",
		Price: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update edita precio y nombre pero nunca el stock: las ventas posteriores
// parten del stock intacto.
func TestProductUpdate_NoTocaStock(t *testing.T) {
	store := apptest.NewStore()
	now := time.Now()
	store.PutProduct(&entity.Product{
		ID:           "p-1",
		Name:         "Croissant",
		Price:        decimal.RequireFromString("2.50"),
		CurrentStock: 12,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	uc := usecase.NewProductUseCase(store.ProductRepo())

	name := "Croissant de mantequilla"
	price := decimal.RequireFromString("3.10")
	out, err := uc.Update("p-1", dto.UpdateProductRequest{Name: &name, Price: &price})
	require.NoError(t, err)

	assert.Equal(t, name, out.Name)
	assert.True(t, out.Price.Equal(price))
	assert.EqualValues(t, 12, out.CurrentStock, "el stock no es editable por este camino")
	assert.EqualValues(t, 12, store.Product("p-1").CurrentStock)
}

func TestProductGetByID_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(apptest.NewStore().ProductRepo())

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
