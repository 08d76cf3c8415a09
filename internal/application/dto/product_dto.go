package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=80"`
	Description       string          `json:"description" validate:"max=500"`
	Price             decimal.Decimal `json:"price"`
	Unit              string          `json:"unit" validate:"max=20"`
	CurrentStock      int64           `json:"currentStock" validate:"min=0"`
	LowStockThreshold int64           `json:"lowStockThreshold" validate:"min=0"`
	ImageURL          string          `json:"imageUrl" validate:"omitempty,url"`
	IsActive          *bool           `json:"isActive"`
}

// UpdateProductRequest entrada para actualizar un producto.
// CurrentStock no es editable aquí: el stock solo cambia vía ventas y ajustes.
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=80"`
	Description       *string          `json:"description" validate:"omitempty,max=500"`
	Price             *decimal.Decimal `json:"price"`
	Unit              *string          `json:"unit" validate:"omitempty,max=20"`
	LowStockThreshold *int64           `json:"lowStockThreshold" validate:"omitempty,min=0"`
	ImageURL          *string          `json:"imageUrl" validate:"omitempty,url"`
	IsActive          *bool            `json:"isActive"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	Unit              string          `json:"unit"`
	CurrentStock      int64           `json:"currentStock"`
	LowStockThreshold int64           `json:"lowStockThreshold"`
	ImageURL          string          `json:"imageUrl"`
	IsActive          bool            `json:"isActive"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
