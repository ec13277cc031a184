package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"gestao_servicos/internal/domain/entities"
	mock_interfaces "gestao_servicos/internal/usecase/interfaces/mocks"
	"gestao_servicos/pkg/format"

	"go.uber.org/mock/gomock"
)

func paidRecord(client string, value float64, parts ...entities.Part) entities.ServiceRecord {
	return entities.ServiceRecord{
		ClientName:    client,
		ServiceDate:   date(2026, time.August, 10),
		ServiceValue:  value,
		PaymentStatus: entities.PaymentStatusPago,
		Parts:         parts,
	}
}

func unpaidRecord(client string, value float64, parts ...entities.Part) entities.ServiceRecord {
	rec := paidRecord(client, value, parts...)
	rec.PaymentStatus = entities.PaymentStatusPendente
	return rec
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregate(t *testing.T) {
	t.Run("empty month", func(t *testing.T) {
		s := Aggregate(nil, 2026, time.August)
		if s.RecordCount != 0 || s.GrossRevenue != 0 || s.NetProfit != 0 || s.Margin != 0 {
			t.Fatalf("unexpected summary: %+v", s)
		}
		if len(s.TopClients) != 0 {
			t.Fatalf("expected no top clients")
		}
	})

	t.Run("unpaid parts count toward cost", func(t *testing.T) {
		records := []entities.ServiceRecord{
			paidRecord("Ana", 100),
			unpaidRecord("Bruno", 50, entities.Part{Name: "Filtro", Cost: 20}),
		}
		s := Aggregate(records, 2026, time.August)

		if !almostEqual(s.GrossRevenue, 100) {
			t.Fatalf("gross revenue = %v", s.GrossRevenue)
		}
		if !almostEqual(s.PartsCost, 20) {
			t.Fatalf("parts cost = %v", s.PartsCost)
		}
		if !almostEqual(s.NetProfit, 80) {
			t.Fatalf("net profit = %v", s.NetProfit)
		}
		if !almostEqual(s.Margin, 80.0) {
			t.Fatalf("margin = %v", s.Margin)
		}
		if !almostEqual(s.UnpaidValue, 50) {
			t.Fatalf("unpaid value = %v", s.UnpaidValue)
		}
		if s.PaidCount != 1 || s.UnpaidCount != 1 || s.PartCount != 1 {
			t.Fatalf("unexpected counts: %+v", s)
		}
	})

	t.Run("zero revenue keeps margin at zero", func(t *testing.T) {
		records := []entities.ServiceRecord{
			unpaidRecord("Carla", 200, entities.Part{Name: "Correia", Cost: 75}),
		}
		s := Aggregate(records, 2026, time.August)

		if s.GrossRevenue != 0 {
			t.Fatalf("gross revenue = %v", s.GrossRevenue)
		}
		if !almostEqual(s.NetProfit, -75) {
			t.Fatalf("net profit = %v", s.NetProfit)
		}
		if s.Margin != 0 {
			t.Fatalf("margin must be exactly zero, got %v", s.Margin)
		}
	})

	t.Run("records outside the month are ignored", func(t *testing.T) {
		inMonth := paidRecord("Ana", 100)
		other := paidRecord("Ana", 999)
		other.ServiceDate = date(2026, time.July, 31)
		s := Aggregate([]entities.ServiceRecord{inMonth, other}, 2026, time.August)

		if s.RecordCount != 1 || !almostEqual(s.GrossRevenue, 100) {
			t.Fatalf("unexpected summary: %+v", s)
		}
	})

	t.Run("top clients stable on ties", func(t *testing.T) {
		records := []entities.ServiceRecord{
			paidRecord("Primeiro", 300),
			paidRecord("Meio", 100),
			paidRecord("Segundo", 300),
			paidRecord("Último", 50),
		}
		s := Aggregate(records, 2026, time.August)

		top := topClients(records, 2)
		if len(top) != 2 {
			t.Fatalf("expected 2 top clients, got %d", len(top))
		}
		if top[0].ClientName != "Primeiro" || top[1].ClientName != "Segundo" {
			t.Fatalf("ties must keep original order: %+v", top)
		}
		if len(s.TopClients) != 4 {
			t.Fatalf("expected all 4 in default ranking, got %d", len(s.TopClients))
		}
		if s.TopClients[2].ClientName != "Meio" || s.TopClients[3].ClientName != "Último" {
			t.Fatalf("unexpected ranking: %+v", s.TopClients)
		}
	})

	t.Run("top clients truncates to five", func(t *testing.T) {
		var records []entities.ServiceRecord
		for i := 0; i < 8; i++ {
			records = append(records, paidRecord("C", float64(100+i)))
		}
		s := Aggregate(records, 2026, time.August)
		if len(s.TopClients) != 5 {
			t.Fatalf("expected 5 top clients, got %d", len(s.TopClients))
		}
		if !almostEqual(s.TopClients[0].ServiceValue, 107) {
			t.Fatalf("unexpected leader: %+v", s.TopClients[0])
		}
	})

	t.Run("unpaid records never rank", func(t *testing.T) {
		records := []entities.ServiceRecord{
			unpaidRecord("Devedor", 1000),
			paidRecord("Ana", 10),
		}
		s := Aggregate(records, 2026, time.August)
		if len(s.TopClients) != 1 || s.TopClients[0].ClientName != "Ana" {
			t.Fatalf("unexpected ranking: %+v", s.TopClients)
		}
	})
}

func TestReportUseCase_MonthlyReport(t *testing.T) {
	t.Run("invalid month", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil, format.Default())
		if _, err := uc.MonthlyReport(context.Background(), "owner-1", 2026, 0); !errors.Is(err, ErrInvalidReportMonth) {
			t.Fatalf("expected ErrInvalidReportMonth, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRecordRepository(ctrl)
		uc := NewReportUseCase(repo, nil, format.Default())

		repo.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return(nil, errors.New("db"))

		if _, err := uc.MonthlyReport(context.Background(), "owner-1", 2026, time.August); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRecordRepository(ctrl)
		uc := NewReportUseCase(repo, nil, format.Default())

		repo.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return([]entities.ServiceRecord{
			paidRecord("Ana", 150, entities.Part{Name: "Vela", Cost: 30}),
		}, nil)

		s, err := uc.MonthlyReport(context.Background(), "owner-1", 2026, time.August)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(s.GrossRevenue, 150) || !almostEqual(s.PartsCost, 30) || !almostEqual(s.NetProfit, 120) {
			t.Fatalf("unexpected summary: %+v", s)
		}
	})
}

func TestReportUseCase_ExportMonthlyReport(t *testing.T) {
	t.Run("wraps exporter failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRecordRepository(ctrl)
		exporter := mock_interfaces.NewMockIDocumentExporter(ctrl)
		uc := NewReportUseCase(repo, exporter, format.Default())

		repo.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return(nil, nil)
		exporter.EXPECT().ExportMonthlyReport(gomock.Any(), gomock.Any()).Return(nil, errors.New("pdf"))

		if _, err := uc.ExportMonthlyReport(context.Background(), "owner-1", 2026, time.August); !errors.Is(err, ErrExportFailed) {
			t.Fatalf("expected ErrExportFailed, got %v", err)
		}
	})

	t.Run("document carries formatted rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRecordRepository(ctrl)
		exporter := mock_interfaces.NewMockIDocumentExporter(ctrl)
		uc := NewReportUseCase(repo, exporter, format.Default())

		rec := paidRecord("Ana", 1234.5)
		rec.WarrantyMonths = 1
		repo.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return([]entities.ServiceRecord{rec}, nil)
		exporter.EXPECT().ExportMonthlyReport(gomock.Any(), gomock.AssignableToTypeOf(entities.MonthlyReportDocument{})).DoAndReturn(
			func(_ context.Context, doc entities.MonthlyReportDocument) ([]byte, error) {
				if doc.MonthLabel != "agosto de 2026" {
					t.Fatalf("unexpected month label %q", doc.MonthLabel)
				}
				if len(doc.Rows) != 1 {
					t.Fatalf("expected one row, got %d", len(doc.Rows))
				}
				row := doc.Rows[0]
				if row.Value != "R$ 1.234,50" || row.Status != "Pago" || row.Warranty != "1 mês" || row.Date != "10/08/2026" {
					t.Fatalf("unexpected row: %+v", row)
				}
				return []byte("%PDF"), nil
			},
		)

		artifact, err := uc.ExportMonthlyReport(context.Background(), "owner-1", 2026, time.August)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(artifact) == 0 {
			t.Fatalf("expected artifact bytes")
		}
	})
}
