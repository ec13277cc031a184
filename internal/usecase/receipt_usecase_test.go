package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gestao_servicos/internal/domain/entities"
	mock_interfaces "gestao_servicos/internal/usecase/interfaces/mocks"
	"gestao_servicos/pkg/format"

	"go.uber.org/mock/gomock"
)

func sampleReceipt() entities.Receipt {
	return entities.Receipt{
		ClientName:     "Maria Silva",
		ServiceDate:    date(2026, time.March, 10),
		WarrantyMonths: 3,
		ExpiryDate:     date(2026, time.June, 10),
		ServiceValue:   350,
		PaymentStatus:  entities.PaymentStatusPago,
		Parts: []entities.Part{
			{Name: "Filtro de óleo", Cost: 45.9},
			{Name: "Vela", Cost: 30},
		},
	}
}

func TestReceiptUseCase_Compose(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewReceiptUseCase(nil, nil, nil, format.Default())
		if _, err := uc.Compose(context.Background(), "owner-1", "  "); !errors.Is(err, ErrReceiptRecordNotFound) {
			t.Fatalf("expected ErrReceiptRecordNotFound, got %v", err)
		}
	})

	t.Run("record missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRecordRepository(ctrl)
		uc := NewReceiptUseCase(repo, nil, nil, format.Default())

		repo.EXPECT().GetByID(gomock.Any(), "owner-1", "rec-1").Return(entities.ServiceRecord{}, nil)

		if _, err := uc.Compose(context.Background(), "owner-1", "rec-1"); !errors.Is(err, ErrReceiptRecordNotFound) {
			t.Fatalf("expected ErrReceiptRecordNotFound, got %v", err)
		}
	})

	t.Run("expiry computed and observations trimmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRecordRepository(ctrl)
		uc := NewReceiptUseCase(repo, nil, nil, format.Default())

		repo.EXPECT().GetByID(gomock.Any(), "owner-1", "rec-1").Return(entities.ServiceRecord{
			ID:             "rec-1",
			ClientName:     "Maria",
			ServiceDate:    date(2026, time.January, 31),
			WarrantyMonths: 1,
			Observations:   "  barulho no motor  ",
			PaymentStatus:  entities.PaymentStatusPendente,
		}, nil)

		r, err := uc.Compose(context.Background(), "owner-1", "rec-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.ExpiryDate.Equal(date(2026, time.February, 28)) {
			t.Fatalf("unexpected expiry: %s", r.ExpiryDate)
		}
		if r.Observations != "barulho no motor" {
			t.Fatalf("unexpected observations: %q", r.Observations)
		}
	})
}

func TestReceiptUseCase_ShareText(t *testing.T) {
	uc := NewReceiptUseCase(nil, nil, nil, format.Default())

	t.Run("full receipt", func(t *testing.T) {
		r := sampleReceipt()
		r.Observations = "trocar correia em 6 meses"
		text := uc.ShareText(r)

		for _, want := range []string{
			"🔧 *COMPROVANTE DE SERVIÇO*",
			"👤 *Cliente:* Maria Silva",
			"📅 *Data:* 10/03/2026",
			"💰 *Valor:* R$ 350,00",
			"✅ *Pagamento:* Pago",
			"  • Filtro de óleo: R$ 45,90",
			"  • Vela: R$ 30,00",
			"🛡️ *Garantia:* 3 meses",
			"📆 *Válida até:* 10/06/2026",
			"📝 *Obs:* trocar correia em 6 meses",
			"_Guarde este comprovante para referência._",
		} {
			if !strings.Contains(text, want) {
				t.Fatalf("share text missing %q:\n%s", want, text)
			}
		}
	})

	t.Run("no parts placeholder", func(t *testing.T) {
		r := sampleReceipt()
		r.Parts = nil
		text := uc.ShareText(r)
		if !strings.Contains(text, "  Nenhuma peça registrada") {
			t.Fatalf("expected no-parts placeholder:\n%s", text)
		}
	})

	t.Run("observations line omitted when empty", func(t *testing.T) {
		r := sampleReceipt()
		r.Observations = ""
		text := uc.ShareText(r)
		if strings.Contains(text, "*Obs:*") {
			t.Fatalf("obs line must be omitted:\n%s", text)
		}
	})

	t.Run("pending payment label", func(t *testing.T) {
		r := sampleReceipt()
		r.PaymentStatus = entities.PaymentStatusPendente
		if text := uc.ShareText(r); !strings.Contains(text, "✅ *Pagamento:* ⏳ Pendente") {
			t.Fatalf("unexpected payment line:\n%s", text)
		}
	})

	t.Run("singular month", func(t *testing.T) {
		r := sampleReceipt()
		r.WarrantyMonths = 1
		if text := uc.ShareText(r); !strings.Contains(text, "*Garantia:* 1 mês") {
			t.Fatalf("expected singular month label:\n%s", text)
		}
	})
}

func TestReceiptUseCase_DisplayModel(t *testing.T) {
	uc := NewReceiptUseCase(nil, nil, nil, format.Default())

	t.Run("with photo", func(t *testing.T) {
		r := sampleReceipt()
		r.PhotoRef = "data:image/jpeg;base64,xyz"
		d := uc.DisplayModel(r)

		if !d.HasPhoto || d.PhotoRef == "" {
			t.Fatalf("expected photo block: %+v", d)
		}
		if d.StatusBadge != "PAGO" || d.Pending {
			t.Fatalf("unexpected badge: %+v", d)
		}
		if len(d.Parts) != 2 || d.Parts[0].Cost != "R$ 45,90" {
			t.Fatalf("unexpected parts: %+v", d.Parts)
		}
		if d.Observations != "Nenhuma observação." {
			t.Fatalf("expected observations placeholder, got %q", d.Observations)
		}
	})

	t.Run("pending without photo", func(t *testing.T) {
		r := sampleReceipt()
		r.PaymentStatus = entities.PaymentStatusPendente
		d := uc.DisplayModel(r)

		if d.HasPhoto {
			t.Fatalf("expected no photo block")
		}
		if d.StatusBadge != "PENDENTE" || !d.Pending {
			t.Fatalf("unexpected badge: %+v", d)
		}
	})
}

func TestReceiptUseCase_ShareLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	share := mock_interfaces.NewMockIShareChannel(ctrl)
	uc := NewReceiptUseCase(nil, share, nil, format.Default())

	share.EXPECT().Link(gomock.Any()).DoAndReturn(func(text string) string {
		if !strings.Contains(text, "COMPROVANTE") {
			t.Fatalf("share channel must receive the share text")
		}
		return "https://wa.me/?text=x"
	})

	if link := uc.ShareLink(sampleReceipt()); link == "" {
		t.Fatalf("expected link")
	}
}

func TestReceiptUseCase_ExportReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServiceRecordRepository(ctrl)
	exporter := mock_interfaces.NewMockIDocumentExporter(ctrl)
	uc := NewReceiptUseCase(repo, nil, exporter, format.Default())

	rec := entities.ServiceRecord{
		ID:            "rec-1",
		ClientName:    "Maria",
		ServiceDate:   date(2026, time.March, 10),
		ServiceValue:  100,
		PaymentStatus: entities.PaymentStatusPago,
	}

	t.Run("export failure is wrapped", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "owner-1", "rec-1").Return(rec, nil)
		exporter.EXPECT().ExportReceipt(gomock.Any(), gomock.Any()).Return(nil, errors.New("draw"))

		if _, err := uc.ExportReceipt(context.Background(), "owner-1", "rec-1"); !errors.Is(err, ErrExportFailed) {
			t.Fatalf("expected ErrExportFailed, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "owner-1", "rec-1").Return(rec, nil)
		exporter.EXPECT().ExportReceipt(gomock.Any(), gomock.AssignableToTypeOf(entities.ReceiptDisplay{})).Return([]byte("%PDF"), nil)

		artifact, err := uc.ExportReceipt(context.Background(), "owner-1", "rec-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(artifact) == 0 {
			t.Fatalf("expected artifact bytes")
		}
	})
}
