package reporting

import (
	"time"

	"github.com/tu-usuario/panaderia-api/internal/domain"
)

// Rangos válidos para el historial de ventas.
const (
	RangeDay   = "day"
	RangeWeek  = "week"
	RangeMonth = "month"
)

// GetRange resuelve un rango nombrado a [from, to] en la zona horaria local:
//
//	day:   hoy 00:00:00.000 - 23:59:59.999
//	week:  lunes de la semana en curso - domingo 23:59:59.999
//	month: día 1 del mes - último día del mes 23:59:59.999
func GetRange(name string, now time.Time) (from, to time.Time, err error) {
	switch name {
	case RangeDay:
		from = startOfDay(now)
		to = endOfDay(now)
	case RangeWeek:
		// Semana con inicio en lunes: Monday=0 ... Sunday=6.
		offset := (int(now.Weekday()) + 6) % 7
		monday := now.AddDate(0, 0, -offset)
		from = startOfDay(monday)
		to = endOfDay(monday.AddDate(0, 0, 6))
	case RangeMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		from = first
		to = endOfDay(first.AddDate(0, 1, -1))
	default:
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return from, to, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
