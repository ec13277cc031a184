package interfaces

import (
	"context"

	"gestao_servicos/internal/domain/entities"
)

// IDocumentExporter abstracts artifact generation (PDF today). Inputs are
// already formatted display values; the exporter only lays them out. Failures
// surface as ErrExportFailed at the usecase layer and are retried by the
// caller, never by the core.
type IDocumentExporter interface {
	ExportMonthlyReport(ctx context.Context, doc entities.MonthlyReportDocument) ([]byte, error)
	ExportReceipt(ctx context.Context, display entities.ReceiptDisplay) ([]byte, error)
}
