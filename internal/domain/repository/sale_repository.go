package repository

import "github.com/tu-usuario/panaderia-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas son insert-only desde el núcleo: no hay Update ni Delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
}
