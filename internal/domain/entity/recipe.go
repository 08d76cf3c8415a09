package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeIngredient vincula una materia prima con la cantidad usada por la receta.
type RecipeIngredient struct {
	MaterialID string
	Quantity   decimal.Decimal // > 0
	Unit       string          // kg, g, l, ml, pcs
}

// Recipe es la lista de materiales de un producto (un producto tiene a lo
// sumo una receta). La receta no consume materias primas al vender: hoy no
// hay descuento automático de ingredientes.
type Recipe struct {
	ID          string
	ProductID   string
	Ingredients []RecipeIngredient
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
