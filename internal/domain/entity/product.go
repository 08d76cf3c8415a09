package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la panadería.
// CurrentStock nunca es negativo y solo se muta vía el registrador de ventas
// o el ajustador de stock; nunca directamente desde la capa de presentación.
type Product struct {
	ID                string
	Name              string
	Description       string
	Price             decimal.Decimal // precio de venta, >= 0
	Unit              string          // pcs, kg, etc.
	CurrentStock      int64
	LowStockThreshold int64 // nivel bajo el cual se marca para reposición
	ImageURL          string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
