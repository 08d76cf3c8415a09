package repository

import (
	"time"

	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate solo tiene sentido dentro de una transacción: bloquea la fila
// del producto para serializar escrituras concurrentes sobre su stock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, newStock int64, updatedAt time.Time) error
	List() ([]*entity.Product, error)
	Delete(id string) error
}
