package repository

import "github.com/tu-usuario/panaderia-api/internal/domain/entity"

// RecipeRepository define el puerto de persistencia para Recipe (DIP).
// Hay a lo sumo una receta por producto (índice único sobre product_id).
type RecipeRepository interface {
	Create(recipe *entity.Recipe) error
	GetByID(id string) (*entity.Recipe, error)
	GetByProductID(productID string) (*entity.Recipe, error)
	Update(recipe *entity.Recipe) error
	List() ([]*entity.Recipe, error)
	Delete(id string) error
}
