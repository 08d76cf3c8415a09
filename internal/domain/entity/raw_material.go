package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades válidas para materias primas e ingredientes.
const (
	UnitKg  = "kg"
	UnitG   = "g"
	UnitL   = "l"
	UnitML  = "ml"
	UnitPcs = "pcs"
)

// ValidUnit reporta si la unidad es una de las permitidas.
func ValidUnit(u string) bool {
	switch u {
	case UnitKg, UnitG, UnitL, UnitML, UnitPcs:
		return true
	}
	return false
}

// Estados derivados de una materia prima según su stock.
const (
	MaterialStatusOK  = "ok"
	MaterialStatusLow = "low"
	MaterialStatusOut = "out"
)

// RawMaterial representa una materia prima del almacén.
// Status y ActionRequired se derivan del stock antes de persistir.
type RawMaterial struct {
	ID             string
	Name           string
	Category       string
	Stock          decimal.Decimal // >= 0
	Unit           string          // kg, g, l, ml, pcs
	MinLevel       decimal.Decimal
	Status         string // ok, low, out
	ActionRequired bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RefreshStatus recalcula Status y ActionRequired a partir del stock actual.
// stock == 0 -> out; stock <= MinLevel -> low; si no -> ok.
func (m *RawMaterial) RefreshStatus() {
	switch {
	case m.Stock.IsZero():
		m.Status = MaterialStatusOut
		m.ActionRequired = true
	case m.Stock.LessThanOrEqual(m.MinLevel):
		m.Status = MaterialStatusLow
		m.ActionRequired = true
	default:
		m.Status = MaterialStatusOK
		m.ActionRequired = false
	}
}
