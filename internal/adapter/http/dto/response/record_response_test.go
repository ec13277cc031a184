package response

import (
	"testing"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/usecase"
	"gestao_servicos/pkg/format"
)

func annotated() usecase.RecordWithWarranty {
	return usecase.RecordWithWarranty{
		Record: entities.ServiceRecord{
			ID:             "rec-1",
			ClientName:     "Maria",
			ServiceDate:    time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
			WarrantyMonths: 3,
			ServiceValue:   250,
			PaymentStatus:  entities.PaymentStatusPago,
			Parts:          []entities.Part{{Name: "Filtro", Cost: 40}},
		},
		ExpiryDate:    time.Date(2026, time.November, 10, 0, 0, 0, 0, time.UTC),
		DaysRemaining: 71,
		Risk:          entities.RiskOk,
	}
}

func TestFromRecord(t *testing.T) {
	res := FromRecord(annotated())

	if res.ID != "rec-1" || res.ClientName != "Maria" {
		t.Fatalf("unexpected mapping: %+v", res)
	}
	if res.ServiceDate != "2026-08-10" || res.ExpiryDate != "2026-11-10" {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.DaysRemaining != 71 || res.RiskClass != "ok" {
		t.Fatalf("unexpected warranty fields: %+v", res)
	}
	if len(res.Parts) != 1 || res.Parts[0].Name != "Filtro" {
		t.Fatalf("unexpected parts: %+v", res.Parts)
	}
}

func TestFromExpiring(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		res := FromExpiring(nil)
		if res.Count != 0 || res.Message != "" || len(res.Records) != 0 {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("singular", func(t *testing.T) {
		res := FromExpiring([]usecase.RecordWithWarranty{annotated()})
		if res.Count != 1 || res.Message != "1 garantia vencendo em até 30 dias" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("plural", func(t *testing.T) {
		res := FromExpiring([]usecase.RecordWithWarranty{annotated(), annotated()})
		if res.Count != 2 || res.Message != "2 garantias vencendo em até 30 dias" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}

func TestFromMonthlySummary(t *testing.T) {
	s := entities.MonthlySummary{
		Year:         2026,
		Month:        time.August,
		RecordCount:  2,
		PaidCount:    1,
		UnpaidCount:  1,
		GrossRevenue: 1234.5,
		PartsCost:    34.5,
		NetProfit:    1200,
		Margin:       97.2,
		TopClients:   []entities.TopClient{{ClientName: "Maria", ServiceValue: 1234.5}},
	}

	res := FromMonthlySummary(s, format.Default())
	if res.Month != "2026-08" || res.MonthLabel != "agosto de 2026" {
		t.Fatalf("unexpected month fields: %+v", res)
	}
	if res.GrossRevenueFormatted != "R$ 1.234,50" {
		t.Fatalf("unexpected currency: %q", res.GrossRevenueFormatted)
	}
	if res.MarginFormatted != "97.2% de margem" {
		t.Fatalf("unexpected margin: %q", res.MarginFormatted)
	}
	if len(res.TopClients) != 1 || res.TopClients[0].Formatted != "R$ 1.234,50" {
		t.Fatalf("unexpected top clients: %+v", res.TopClients)
	}
}
