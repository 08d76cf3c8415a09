package reporting_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panaderia-api/internal/application/apptest"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/application/reporting"
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
)

func saleAt(created time.Time, name string, qty int64, price string) *entity.Sale {
	p := decimal.RequireFromString(price)
	return &entity.Sale{
		ID:                  name + created.Format("150405"),
		ProductID:           "p-1",
		ProductNameSnapshot: name,
		UnitPriceSnapshot:   p,
		Quantity:            qty,
		Total:               p.Mul(decimal.NewFromInt(qty)),
		CreatedAt:           created,
	}
}

func newHistoryUC(store *apptest.Store) *reporting.HistoryUseCase {
	return reporting.NewHistoryUseCase(apptest.NewReportRepo(store), nil)
}

func TestHistory_TotalesDelDia(t *testing.T) {
	store := apptest.NewStore()
	now := time.Now()
	store.Sales = append(store.Sales,
		saleAt(now.Add(-2*time.Hour), "Croissant", 3, "2.50"),
		saleAt(now.Add(-1*time.Hour), "Baguette", 2, "3.00"),
		// Venta de ayer: fuera del rango "day".
		saleAt(now.AddDate(0, 0, -1), "Croissant", 10, "2.50"),
	)
	uc := newHistoryUC(store)

	out, err := uc.History(context.Background(), reporting.RangeDay)
	require.NoError(t, err)

	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, reporting.RangeDay, out.Range)
	assert.Len(t, out.Sales, 2, "solo las ventas de hoy")
	assert.EqualValues(t, 5, out.Totals.TotalSalesCount)
	assert.True(t, out.Totals.TotalRevenue.Equal(decimal.RequireFromString("13.50")),
		"3*2.50 + 2*3.00 = 13.50")
}

func TestHistory_RangoInvalido(t *testing.T) {
	uc := newHistoryUC(apptest.NewStore())
	_, err := uc.History(context.Background(), "decade")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryCSV_FormatoYEscapado(t *testing.T) {
	store := apptest.NewStore()
	created := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.Local)
	store.Sales = append(store.Sales,
		saleAt(created, `Tarta "La Especial", grande`, 1, "12.00"),
	)
	uc := newHistoryUC(store)

	csv, err := uc.HistoryCSV(context.Background(), reporting.RangeMonth)
	require.NoError(t, err)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Date","Product","Quantity","Unit price","Total"`, lines[0],
		"la cabecera va siempre entre comillas")
	assert.Contains(t, lines[1], `"Tarta ""La Especial"", grande"`,
		"comillas internas duplicadas, coma preservada dentro del campo")
	assert.Contains(t, lines[1], `"12.00"`)
	assert.Contains(t, lines[1], created.UTC().Format(time.RFC3339))
}

func TestHistoryCSV_SinVentasSoloCabecera(t *testing.T) {
	uc := newHistoryUC(apptest.NewStore())

	csv, err := uc.HistoryCSV(context.Background(), reporting.RangeDay)
	require.NoError(t, err)
	assert.Equal(t, `"Date","Product","Quantity","Unit price","Total"`, csv)
}

func TestListSales_LimiteYFechas(t *testing.T) {
	store := apptest.NewStore()
	base := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	for i := 0; i < 15; i++ {
		store.Sales = append(store.Sales, saleAt(base.Add(time.Duration(i)*time.Minute), "Pan", 1, "1.00"))
	}
	uc := newHistoryUC(store)

	// Límite por defecto: 10.
	out, err := uc.ListSales(context.Background(), dto.ListSalesQuery{})
	require.NoError(t, err)
	assert.Len(t, out, 10)

	// Límite por encima del máximo: rechazado.
	_, err = uc.ListSales(context.Background(), dto.ListSalesQuery{Limit: 500})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Fecha inválida: rechazada.
	_, err = uc.ListSales(context.Background(), dto.ListSalesQuery{From: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Rango que solo cubre los primeros 5 minutos.
	out, err = uc.ListSales(context.Background(), dto.ListSalesQuery{
		From:  "2026-03-10",
		To:    base.Add(4 * time.Minute).Format(time.RFC3339),
		Limit: 100,
	})
	require.NoError(t, err)
	assert.Len(t, out, 5)
}

// Las consultas de historial no tocan el estado: mismo resultado dos veces.
func TestHistory_NoMutaEstado(t *testing.T) {
	store := apptest.NewStore()
	now := time.Now()
	store.PutProduct(&entity.Product{ID: "p-1", Name: "Croissant", CurrentStock: 9})
	store.Sales = append(store.Sales, saleAt(now, "Croissant", 1, "2.50"))
	uc := newHistoryUC(store)

	first, err := uc.History(context.Background(), reporting.RangeDay)
	require.NoError(t, err)
	second, err := uc.History(context.Background(), reporting.RangeDay)
	require.NoError(t, err)

	assert.Equal(t, first.Totals, second.Totals)
	assert.EqualValues(t, 9, store.Product("p-1").CurrentStock)
	assert.Len(t, store.Sales, 1)
}

func TestDashboard_GetStats(t *testing.T) {
	store := apptest.NewStore()
	now := time.Now()
	store.PutProduct(&entity.Product{ID: "p-1", Name: "Croissant", CurrentStock: 2, LowStockThreshold: 5})
	store.PutProduct(&entity.Product{ID: "p-2", Name: "Baguette", CurrentStock: 20, LowStockThreshold: 5})
	store.Sales = append(store.Sales,
		saleAt(now.AddDate(0, 0, -2), "Croissant", 4, "2.50"),
		saleAt(now.Add(-30*time.Minute), "Baguette", 2, "3.00"),
	)
	uc := reporting.NewDashboardUseCase(apptest.NewReportRepo(store))

	out, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ok", out.Status)
	assert.EqualValues(t, 2, out.Stats.TodaysQuantity, "solo cuenta las ventas de hoy")
	assert.True(t, out.Stats.TodaysRevenue.Equal(decimal.RequireFromString("6.00")))
	assert.EqualValues(t, 2, out.Stats.TotalProducts)
	assert.EqualValues(t, 1, out.Stats.LowStockCount, "p-1 está bajo el umbral")
	assert.Len(t, out.RecentSales, 2, "las recientes no filtran por fecha")
}
