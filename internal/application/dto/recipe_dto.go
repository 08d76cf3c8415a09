package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeIngredientDTO ingrediente de una receta.
type RecipeIngredientDTO struct {
	MaterialID string          `json:"materialId" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit" validate:"required,oneof=kg g l ml pcs"`
}

// CreateRecipeRequest entrada para crear una receta. Un producto admite una
// sola receta; un duplicado se rechaza.
type CreateRecipeRequest struct {
	ProductID   string                `json:"productId" validate:"required"`
	Ingredients []RecipeIngredientDTO `json:"ingredients" validate:"required,min=1,dive"`
}

// UpdateRecipeRequest entrada para reemplazar los ingredientes de una receta.
type UpdateRecipeRequest struct {
	Ingredients []RecipeIngredientDTO `json:"ingredients" validate:"required,min=1,dive"`
}

// RecipeResponse salida de una receta.
type RecipeResponse struct {
	ID          string                `json:"id"`
	ProductID   string                `json:"productId"`
	Ingredients []RecipeIngredientDTO `json:"ingredients"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}
