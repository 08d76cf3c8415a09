package reporting

import (
	"context"

	"github.com/tu-usuario/panaderia-api/internal/application/dto"
)

// HistoryPDFGenerator renderiza el historial de ventas como documento PDF.
// La implementación vive en infraestructura (maroto).
type HistoryPDFGenerator interface {
	GenerateHistoryPDF(ctx context.Context, history *dto.HistoryResponse) ([]byte, error)
}
