package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panaderia-api/internal/domain"
)

func TestGetRange(t *testing.T) {
	// Miércoles 15 de abril de 2026, 14:30 local.
	now := time.Date(2026, time.April, 15, 14, 30, 0, 0, time.Local)

	cases := []struct {
		name     string
		from, to time.Time
	}{
		{
			name: RangeDay,
			from: time.Date(2026, time.April, 15, 0, 0, 0, 0, time.Local),
			to:   time.Date(2026, time.April, 15, 23, 59, 59, int(999*time.Millisecond), time.Local),
		},
		{
			// La semana arranca en lunes (13/04) y cierra el domingo (19/04).
			name: RangeWeek,
			from: time.Date(2026, time.April, 13, 0, 0, 0, 0, time.Local),
			to:   time.Date(2026, time.April, 19, 23, 59, 59, int(999*time.Millisecond), time.Local),
		},
		{
			name: RangeMonth,
			from: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local),
			to:   time.Date(2026, time.April, 30, 23, 59, 59, int(999*time.Millisecond), time.Local),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, to, err := GetRange(tc.name, now)
			require.NoError(t, err)
			assert.True(t, from.Equal(tc.from), "from: esperado %v, fue %v", tc.from, from)
			assert.True(t, to.Equal(tc.to), "to: esperado %v, fue %v", tc.to, to)
		})
	}
}

// Un domingo sigue perteneciendo a la semana que empezó el lunes anterior.
func TestGetRange_SemanaDesdeDomingo(t *testing.T) {
	sunday := time.Date(2026, time.April, 19, 9, 0, 0, 0, time.Local)

	from, to, err := GetRange(RangeWeek, sunday)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, from.Weekday())
	assert.Equal(t, 13, from.Day())
	assert.Equal(t, 19, to.Day())
}

func TestGetRange_NombreInvalido(t *testing.T) {
	for _, name := range []string{"", "year", "DAY"} {
		_, _, err := GetRange(name, time.Now())
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "rango %q debe rechazarse", name)
	}
}
