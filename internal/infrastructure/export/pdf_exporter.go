package export

import (
	"bytes"
	"context"
	"fmt"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders the monthly report and the service receipt as A4 PDFs.
// Layout mirrors the documents the app shows on screen: a colored header
// band, a summary block and a row-per-record table.

type PDFExporter struct{}

var _ interfaces.IDocumentExporter = (*PDFExporter)(nil)

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

func (e *PDFExporter) ExportMonthlyReport(ctx context.Context, doc entities.MonthlyReportDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	drawHeader(pdf, tr, "Relatório Mensal - "+doc.MonthLabel)

	pdf.SetY(40)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr("Receita bruta: "+doc.GrossRevenue), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Custo de peças: "+doc.PartsCost), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, tr("Lucro líquido: "+doc.NetProfit), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{60, 28, 32, 30, 40}
	headers := []string{"Cliente", "Data", "Valor", "Status", "Garantia"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(229, 231, 235)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range doc.Rows {
		cols := []string{row.ClientName, row.Date, row.Value, row.Status, row.Warranty}
		for i, col := range cols {
			pdf.CellFormat(widths[i], 8, tr(col), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(doc.Rows) == 0 {
		pdf.CellFormat(190, 8, tr("Nenhum serviço registrado no mês."), "1", 1, "C", false, 0, "")
	}

	return output(pdf)
}

func (e *PDFExporter) ExportReceipt(ctx context.Context, d entities.ReceiptDisplay) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	drawHeader(pdf, tr, "Comprovante de Serviço")

	pdf.SetY(40)
	pdf.SetTextColor(0, 0, 0)

	receiptLine(pdf, tr, "Cliente", d.ClientName)
	receiptLine(pdf, tr, "Data do serviço", d.ServiceDate)
	receiptLine(pdf, tr, "Valor total", d.Total)
	receiptLine(pdf, tr, "Pagamento", d.StatusBadge)
	receiptLine(pdf, tr, "Garantia", d.Warranty)
	receiptLine(pdf, tr, "Válida até", d.ExpiryDate)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, tr("Peças utilizadas"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	if len(d.Parts) == 0 {
		pdf.CellFormat(0, 7, tr("Nenhuma peça registrada"), "", 1, "L", false, 0, "")
	}
	for _, p := range d.Parts {
		pdf.CellFormat(0, 7, tr(fmt.Sprintf("- %s: %s", p.Name, p.Cost)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, tr("Observações"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 7, tr(d.Observations), "", "L", false)

	return output(pdf)
}

func drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, subtitle string) {
	pdf.SetFillColor(37, 99, 235)
	pdf.Rect(0, 0, 210, 30, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(10, 8)
	pdf.CellFormat(0, 8, tr("Gestão de Serviços"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetX(10)
	pdf.CellFormat(0, 7, tr(subtitle), "", 1, "L", false, 0, "")
}

func receiptLine(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(45, 7, tr(label+":"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(value), "", 1, "L", false, 0, "")
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
