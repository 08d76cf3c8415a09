package inventory

import (
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
)

// Apply implementa la regla de ajuste de stock (servicio de dominio, función pura).
// Semántica por tipo:
//
//	IN:     nuevoStock = stockActual + |cantidad|
//	OUT:    nuevoStock = stockActual - |cantidad|
//	ADJUST: nuevoStock = stockActual + cantidad (delta con signo, no valor absoluto)
//
// Devuelve además la cantidad normalizada para el ledger: +|q| en IN, -|q| en
// OUT y el delta crudo en ADJUST. Si el resultado queda negativo retorna
// domain.ErrInvalidResult sin tocar nada.
func Apply(movType entity.MovementType, quantity, currentStock int64) (newStock, normalized int64, err error) {
	switch movType {
	case entity.MovementTypeIN:
		normalized = abs(quantity)
	case entity.MovementTypeOUT:
		normalized = -abs(quantity)
	case entity.MovementTypeADJUST:
		normalized = quantity
	default:
		return 0, 0, domain.ErrInvalidInput
	}
	newStock = currentStock + normalized
	if newStock < 0 {
		return 0, 0, domain.ErrInvalidResult
	}
	return newStock, normalized, nil
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
