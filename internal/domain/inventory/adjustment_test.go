package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/inventory"
)

// Tabla de casos para la regla de ajuste: tipo + cantidad + stock actual.
func TestApply(t *testing.T) {
	cases := []struct {
		name      string
		movType   entity.MovementType
		quantity  int64
		stock     int64
		wantStock int64
		wantNorm  int64
		wantErr   error
	}{
		{"IN suma el valor absoluto", entity.MovementTypeIN, 20, 5, 25, 20, nil},
		{"IN con cantidad negativa también suma", entity.MovementTypeIN, -20, 5, 25, 20, nil},
		{"OUT resta el valor absoluto", entity.MovementTypeOUT, 4, 10, 6, -4, nil},
		{"OUT con cantidad negativa también resta", entity.MovementTypeOUT, -4, 10, 6, -4, nil},
		{"ADJUST aplica delta positivo", entity.MovementTypeADJUST, 3, 2, 5, 3, nil},
		{"ADJUST aplica delta negativo", entity.MovementTypeADJUST, -2, 2, 0, -2, nil},
		{"OUT que deja stock negativo falla", entity.MovementTypeOUT, 5, 2, 0, 0, domain.ErrInvalidResult},
		{"ADJUST que deja stock negativo falla", entity.MovementTypeADJUST, -3, 2, 0, 0, domain.ErrInvalidResult},
		{"tipo desconocido falla", entity.MovementType("TRANSFER"), 1, 10, 0, 0, domain.ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			newStock, norm, err := inventory.Apply(tc.movType, tc.quantity, tc.stock)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStock, newStock, "stock resultante")
			assert.Equal(t, tc.wantNorm, norm, "cantidad normalizada para el ledger")
		})
	}
}

// El escenario D de negocio: ADJUST -3 sobre stock 2 debe rechazarse
// porque el resultado sería -1.
func TestApply_AjusteNegativoNoPermitido(t *testing.T) {
	_, _, err := inventory.Apply(entity.MovementTypeADJUST, -3, 2)
	require.ErrorIs(t, err, domain.ErrInvalidResult)
}
