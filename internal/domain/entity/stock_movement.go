package entity

import "time"

// MovementType es el tipo cerrado de movimiento de stock.
type MovementType string

// Tipos de movimiento de stock.
const (
	MovementTypeIN     MovementType = "IN"     // entrada de mercancía
	MovementTypeOUT    MovementType = "OUT"    // salida (venta o retiro manual)
	MovementTypeADJUST MovementType = "ADJUST" // corrección de conteo (delta con signo)
)

// ParseMovementType valida un tipo recibido por la API.
func ParseMovementType(s string) (MovementType, bool) {
	switch MovementType(s) {
	case MovementTypeIN, MovementTypeOUT, MovementTypeADJUST:
		return MovementType(s), true
	}
	return "", false
}

// StockMovement es una entrada del ledger de stock (append-only).
// Quantity va con signo: positivo en IN, negativo en OUT, delta crudo en
// ADJUST. StockAfter es el stock resultante al momento del movimiento,
// un snapshot que no se recalcula después. Invariante de auditoría:
// reproducir los movimientos en orden de creación sobre el stock inicial
// debe reconstruir cada StockAfter y el CurrentStock final del producto.
type StockMovement struct {
	ID         string
	ProductID  string
	Type       MovementType
	Quantity   int64
	Note       string
	StockAfter int64
	CreatedAt  time.Time
}
