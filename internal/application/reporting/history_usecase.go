package reporting

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// HistoryUseCase consultas read-only sobre ventas confirmadas: listado por
// rango, historial con totales y export CSV. Nunca muta Product, Sale ni
// StockMovement.
type HistoryUseCase struct {
	reportRepo   repository.ReportRepository
	pdfGenerator HistoryPDFGenerator
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(reportRepo repository.ReportRepository, pdfGenerator HistoryPDFGenerator) *HistoryUseCase {
	return &HistoryUseCase{reportRepo: reportRepo, pdfGenerator: pdfGenerator}
}

// ListSales devuelve las ventas en [from, to] (extremos opcionales, fechas
// ISO), más recientes primero. limit por defecto 10, máximo 100.
func (uc *HistoryUseCase) ListSales(ctx context.Context, in dto.ListSalesQuery) ([]dto.SaleResponse, error) {
	var from, to *time.Time
	if in.From != "" {
		t, err := parseISODate(in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		from = &t
	}
	if in.To != "" {
		t, err := parseISODate(in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		to = &t
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		return nil, domain.ErrInvalidInput
	}

	sales, err := uc.reportRepo.SalesInRange(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}
	return dto.FromSales(sales), nil
}

// History devuelve las ventas del rango nombrado (day/week/month) con los
// totales agregados: suma de cantidades y suma de totales.
func (uc *HistoryUseCase) History(ctx context.Context, rangeName string) (*dto.HistoryResponse, error) {
	from, to, err := GetRange(rangeName, time.Now())
	if err != nil {
		return nil, err
	}
	sales, err := uc.reportRepo.SalesInRange(ctx, &from, &to, 0)
	if err != nil {
		return nil, err
	}

	totals := dto.HistoryTotals{TotalRevenue: decimal.Zero}
	for _, s := range sales {
		totals.TotalSalesCount += s.Quantity
		totals.TotalRevenue = totals.TotalRevenue.Add(s.Total)
	}

	return &dto.HistoryResponse{
		Status: "ok",
		Range:  rangeName,
		From:   from,
		To:     to,
		Totals: totals,
		Sales:  dto.FromSales(sales),
	}, nil
}

// HistoryCSV produce el export CSV del rango: fila de cabecera
// Date,Product,Quantity,Unit price,Total y una fila por venta.
func (uc *HistoryUseCase) HistoryCSV(ctx context.Context, rangeName string) (string, error) {
	history, err := uc.History(ctx, rangeName)
	if err != nil {
		return "", err
	}

	rows := make([]string, 0, len(history.Sales)+1)
	rows = append(rows, csvRow("Date", "Product", "Quantity", "Unit price", "Total"))
	for _, s := range history.Sales {
		rows = append(rows, csvRow(
			s.CreatedAt.UTC().Format(time.RFC3339),
			s.ProductNameSnapshot,
			decimal.NewFromInt(s.Quantity).String(),
			s.UnitPriceSnapshot.StringFixed(2),
			s.Total.StringFixed(2),
		))
	}
	return strings.Join(rows, "\n"), nil
}

// HistoryPDF produce el export PDF del rango con los mismos datos del
// historial JSON.
func (uc *HistoryUseCase) HistoryPDF(ctx context.Context, rangeName string) ([]byte, error) {
	history, err := uc.History(ctx, rangeName)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateHistoryPDF(ctx, history)
}

// csvRow arma una fila CSV con todos los valores entre comillas y las
// comillas internas duplicadas. encoding/csv no sirve aquí: el formato
// exige comillar siempre, no solo cuando hay caracteres especiales.
func csvRow(values ...string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, `"`+strings.ReplaceAll(v, `"`, `""`)+`"`)
	}
	return strings.Join(quoted, ",")
}

// parseISODate acepta fecha RFC3339 o solo fecha (YYYY-MM-DD).
func parseISODate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
