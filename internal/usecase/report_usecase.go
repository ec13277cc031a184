package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/usecase/interfaces"
	"gestao_servicos/pkg/format"
)

const topClientsLimit = 5

var (
	ErrInvalidReportMonth = errors.New("invalid report month")
	ErrExportFailed       = errors.New("export failed")
)

// IReportUseCase exposes the monthly financial aggregation and its PDF export.

type IReportUseCase interface {
	MonthlyReport(ctx context.Context, ownerID string, year int, month time.Month) (entities.MonthlySummary, error)
	ExportMonthlyReport(ctx context.Context, ownerID string, year int, month time.Month) ([]byte, error)
}

type ReportUseCase struct {
	repo      interfaces.IServiceRecordRepository
	exporter  interfaces.IDocumentExporter
	formatter *format.Formatter
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IServiceRecordRepository, exporter interfaces.IDocumentExporter, f *format.Formatter) *ReportUseCase {
	return &ReportUseCase{repo: repo, exporter: exporter, formatter: f}
}

func (u *ReportUseCase) MonthlyReport(ctx context.Context, ownerID string, year int, month time.Month) (entities.MonthlySummary, error) {
	if err := validateMonth(year, month); err != nil {
		return entities.MonthlySummary{}, err
	}

	records, err := u.repo.ListByOwner(ctx, strings.TrimSpace(ownerID))
	if err != nil {
		return entities.MonthlySummary{}, err
	}
	return Aggregate(records, year, month), nil
}

func (u *ReportUseCase) ExportMonthlyReport(ctx context.Context, ownerID string, year int, month time.Month) ([]byte, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	records, err := u.repo.ListByOwner(ctx, strings.TrimSpace(ownerID))
	if err != nil {
		return nil, err
	}

	summary := Aggregate(records, year, month)
	doc := u.buildReportDocument(summary, records)

	artifact, err := u.exporter.ExportMonthlyReport(ctx, doc)
	if err != nil {
		log.Printf("[report][usecase] export failed owner_id=%s month=%04d-%02d err=%v", ownerID, year, month, err)
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return artifact, nil
}

// Aggregate reduces one calendar month of records to its financial summary.
// The computation is pure: callers re-aggregate on every month change instead
// of caching.
//
// Parts from unpaid records count toward cost; the expense exists whether or
// not the client paid. Margin is defined as exactly zero when the month has
// no paid revenue, so a month of pure cost never divides by zero.
func Aggregate(records []entities.ServiceRecord, year int, month time.Month) entities.MonthlySummary {
	var monthRecords []entities.ServiceRecord
	for _, rec := range records {
		if rec.BelongsToMonth(year, month) {
			monthRecords = append(monthRecords, rec)
		}
	}

	var paid, unpaid []entities.ServiceRecord
	for _, rec := range monthRecords {
		if rec.PaymentStatus == entities.PaymentStatusPago {
			paid = append(paid, rec)
		} else {
			unpaid = append(unpaid, rec)
		}
	}

	grossRevenue := 0.0
	for _, rec := range paid {
		grossRevenue += rec.ServiceValue
	}
	unpaidValue := 0.0
	for _, rec := range unpaid {
		unpaidValue += rec.ServiceValue
	}

	partCount := 0
	partsCost := 0.0
	for _, rec := range monthRecords {
		partCount += len(rec.Parts)
		partsCost += rec.PartsTotal()
	}

	netProfit := grossRevenue - partsCost
	margin := 0.0
	if grossRevenue > 0 {
		margin = netProfit / grossRevenue * 100
	}

	return entities.MonthlySummary{
		Year:         year,
		Month:        month,
		RecordCount:  len(monthRecords),
		PaidCount:    len(paid),
		UnpaidCount:  len(unpaid),
		PartCount:    partCount,
		GrossRevenue: grossRevenue,
		UnpaidValue:  unpaidValue,
		PartsCost:    partsCost,
		NetProfit:    netProfit,
		Margin:       margin,
		TopClients:   topClients(paid, topClientsLimit),
	}
}

// topClients ranks paid records by service value, highest first. The sort is
// stable: ties keep their original relative order.
func topClients(paid []entities.ServiceRecord, n int) []entities.TopClient {
	ranked := make([]entities.ServiceRecord, len(paid))
	copy(ranked, paid)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ServiceValue > ranked[j].ServiceValue
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]entities.TopClient, 0, len(ranked))
	for _, rec := range ranked {
		out = append(out, entities.TopClient{ClientName: rec.ClientName, ServiceValue: rec.ServiceValue})
	}
	return out
}

func (u *ReportUseCase) buildReportDocument(summary entities.MonthlySummary, records []entities.ServiceRecord) entities.MonthlyReportDocument {
	doc := entities.MonthlyReportDocument{
		MonthLabel:   u.formatter.MonthLabel(summary.Year, summary.Month),
		GrossRevenue: u.formatter.Currency(summary.GrossRevenue),
		PartsCost:    u.formatter.Currency(summary.PartsCost),
		NetProfit:    u.formatter.Currency(summary.NetProfit),
	}
	for _, rec := range records {
		if !rec.BelongsToMonth(summary.Year, summary.Month) {
			continue
		}
		doc.Rows = append(doc.Rows, entities.ReportTableRow{
			ClientName: rec.ClientName,
			Date:       u.formatter.Date(rec.ServiceDate),
			Value:      u.formatter.Currency(rec.ServiceValue),
			Status:     rec.PaymentStatus.Label(),
			Warranty:   warrantyLabel(rec.WarrantyMonths),
		})
	}
	return doc
}

func validateMonth(year int, month time.Month) error {
	if year < 2000 || year > 2200 || month < time.January || month > time.December {
		return ErrInvalidReportMonth
	}
	return nil
}

func warrantyLabel(months int) string {
	if months == 1 {
		return "1 mês"
	}
	return fmt.Sprintf("%d meses", months)
}
