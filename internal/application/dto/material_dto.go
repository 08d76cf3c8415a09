package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest entrada para crear una materia prima.
type CreateMaterialRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=80"`
	Category string          `json:"category" validate:"required"`
	Stock    decimal.Decimal `json:"stock"`
	Unit     string          `json:"unit" validate:"required,oneof=kg g l ml pcs"`
	MinLevel decimal.Decimal `json:"minLevel"`
}

// UpdateMaterialRequest entrada para actualizar una materia prima.
type UpdateMaterialRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=80"`
	Category *string          `json:"category"`
	Stock    *decimal.Decimal `json:"stock"`
	Unit     *string          `json:"unit" validate:"omitempty,oneof=kg g l ml pcs"`
	MinLevel *decimal.Decimal `json:"minLevel"`
}

// MaterialResponse salida de una materia prima (status derivado del stock).
type MaterialResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Stock          decimal.Decimal `json:"stock"`
	Unit           string          `json:"unit"`
	MinLevel       decimal.Decimal `json:"minLevel"`
	Status         string          `json:"status"`
	ActionRequired bool            `json:"actionRequired"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
