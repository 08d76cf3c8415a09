package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es un registro inmutable de venta. Nombre y precio unitario son
// snapshots tomados al momento de la venta: ediciones posteriores del
// producto no los alteran. Se crea exactamente una vez por venta exitosa.
type Sale struct {
	ID                  string
	ProductID           string
	ProductNameSnapshot string
	UnitPriceSnapshot   decimal.Decimal
	Quantity            int64           // >= 1
	Total               decimal.Decimal // UnitPriceSnapshot * Quantity
	Note                string
	CreatedAt           time.Time
}
