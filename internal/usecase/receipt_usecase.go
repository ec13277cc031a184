package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/usecase/interfaces"
	"gestao_servicos/pkg/format"
)

var ErrReceiptRecordNotFound = errors.New("receipt record not found")

// IReceiptUseCase builds the canonical receipt for one record and derives the
// two renderings from it: the share text (link-based sharing) and the display
// model (visual document / export). Both come from the same Receipt value so
// they can never disagree on a field.

type IReceiptUseCase interface {
	Compose(ctx context.Context, ownerID, recordID string) (entities.Receipt, error)
	ShareText(r entities.Receipt) string
	ShareLink(r entities.Receipt) string
	DisplayModel(r entities.Receipt) entities.ReceiptDisplay
	ExportReceipt(ctx context.Context, ownerID, recordID string) ([]byte, error)
}

type ReceiptUseCase struct {
	repo      interfaces.IServiceRecordRepository
	share     interfaces.IShareChannel
	exporter  interfaces.IDocumentExporter
	formatter *format.Formatter
}

var _ IReceiptUseCase = (*ReceiptUseCase)(nil)

func NewReceiptUseCase(
	repo interfaces.IServiceRecordRepository,
	share interfaces.IShareChannel,
	exporter interfaces.IDocumentExporter,
	f *format.Formatter,
) *ReceiptUseCase {
	return &ReceiptUseCase{repo: repo, share: share, exporter: exporter, formatter: f}
}

func (u *ReceiptUseCase) Compose(ctx context.Context, ownerID, recordID string) (entities.Receipt, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return entities.Receipt{}, ErrReceiptRecordNotFound
	}

	rec, err := u.repo.GetByID(ctx, strings.TrimSpace(ownerID), recordID)
	if err != nil {
		return entities.Receipt{}, err
	}
	if rec.ID == "" {
		return entities.Receipt{}, ErrReceiptRecordNotFound
	}

	return entities.Receipt{
		ClientName:     rec.ClientName,
		ServiceDate:    rec.ServiceDate,
		WarrantyMonths: rec.WarrantyMonths,
		ExpiryDate:     WarrantyExpiry(rec),
		ServiceValue:   rec.ServiceValue,
		PaymentStatus:  rec.PaymentStatus,
		Observations:   strings.TrimSpace(rec.Observations),
		Parts:          rec.Parts,
		PhotoRef:       rec.PhotoRef,
	}, nil
}

// ShareText renders the fixed receipt message. The parts section is always
// present, with a placeholder line when the record has no parts; the Obs line
// is emitted only when the record carries observations.
func (u *ReceiptUseCase) ShareText(r entities.Receipt) string {
	var parts string
	if len(r.Parts) > 0 {
		lines := make([]string, 0, len(r.Parts))
		for _, p := range r.Parts {
			lines = append(lines, fmt.Sprintf("  • %s: %s", p.Name, u.formatter.Currency(p.Cost)))
		}
		parts = strings.Join(lines, "\n")
	} else {
		parts = "  Nenhuma peça registrada"
	}

	payment := "⏳ Pendente"
	if r.PaymentStatus == entities.PaymentStatusPago {
		payment = "Pago"
	}

	obsLine := ""
	if r.Observations != "" {
		obsLine = fmt.Sprintf("\n📝 *Obs:* %s", r.Observations)
	}

	return fmt.Sprintf(`🔧 *COMPROVANTE DE SERVIÇO*
━━━━━━━━━━━━━━━━━━━━
👤 *Cliente:* %s
📅 *Data:* %s
💰 *Valor:* %s
✅ *Pagamento:* %s

🔩 *Peças utilizadas:*
%s

🛡️ *Garantia:* %s
📆 *Válida até:* %s%s
━━━━━━━━━━━━━━━━━━━━
_Guarde este comprovante para referência._`,
		r.ClientName,
		u.formatter.Date(r.ServiceDate),
		u.formatter.Currency(r.ServiceValue),
		payment,
		parts,
		warrantyLabel(r.WarrantyMonths),
		u.formatter.Date(r.ExpiryDate),
		obsLine,
	)
}

func (u *ReceiptUseCase) ShareLink(r entities.Receipt) string {
	return u.share.Link(u.ShareText(r))
}

// DisplayModel converts the receipt into pre-formatted fields for the visual
// document. The photo block appears only when the record has a photo; empty
// observations collapse to an explicit placeholder instead of a blank block.
func (u *ReceiptUseCase) DisplayModel(r entities.Receipt) entities.ReceiptDisplay {
	obs := r.Observations
	if obs == "" {
		obs = "Nenhuma observação."
	}

	parts := make([]entities.ReceiptDisplayPart, 0, len(r.Parts))
	for _, p := range r.Parts {
		parts = append(parts, entities.ReceiptDisplayPart{Name: p.Name, Cost: u.formatter.Currency(p.Cost)})
	}

	return entities.ReceiptDisplay{
		ClientName:   r.ClientName,
		ServiceDate:  u.formatter.Date(r.ServiceDate),
		Warranty:     warrantyLabel(r.WarrantyMonths),
		ExpiryDate:   u.formatter.Date(r.ExpiryDate),
		Total:        u.formatter.Currency(r.ServiceValue),
		StatusBadge:  strings.ToUpper(r.PaymentStatus.Label()),
		Pending:      r.PaymentStatus != entities.PaymentStatusPago,
		Observations: obs,
		Parts:        parts,
		HasPhoto:     r.PhotoRef != "",
		PhotoRef:     r.PhotoRef,
	}
}

func (u *ReceiptUseCase) ExportReceipt(ctx context.Context, ownerID, recordID string) ([]byte, error) {
	receipt, err := u.Compose(ctx, ownerID, recordID)
	if err != nil {
		return nil, err
	}

	artifact, err := u.exporter.ExportReceipt(ctx, u.DisplayModel(receipt))
	if err != nil {
		log.Printf("[receipt][usecase] export failed owner_id=%s record_id=%s err=%v", ownerID, recordID, err)
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return artifact, nil
}
