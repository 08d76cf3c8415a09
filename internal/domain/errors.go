package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidResult      = errors.New("el stock no puede quedar negativo")
	// ErrTxTimeout indica que la unidad atómica no pudo confirmar dentro del
	// tiempo acotado (contención de locks o BD no disponible). Reintentable
	// por el caller repitiendo la petición completa.
	ErrTxTimeout = errors.New("transacción abortada por timeout")
)

// InsufficientStockError indica que una venta pidió más unidades de las
// disponibles. Available lleva el stock actual para informarlo al caller.
type InsufficientStockError struct {
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente, disponible: %d", e.Available)
}

// Is permite errors.Is(err, ErrInsufficientStock) sobre el error tipado.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
