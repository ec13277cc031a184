package response

import (
	"fmt"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/usecase"
)

const dateLayout = "2006-01-02"

type PartResponse struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// RecordResponse is one record as the list endpoint returns it, annotated
// with the computed warranty fields so the client never re-derives them.
type RecordResponse struct {
	ID             string         `json:"id"`
	ClientName     string         `json:"client_name"`
	ServiceDate    string         `json:"service_date"`
	WarrantyMonths int            `json:"warranty_months"`
	ServiceValue   float64        `json:"service_value"`
	PaymentStatus  string         `json:"payment_status"`
	Observations   string         `json:"observations,omitempty"`
	Parts          []PartResponse `json:"parts"`
	PhotoRef       string         `json:"photo_ref,omitempty"`
	ExpiryDate     string         `json:"expiry_date"`
	DaysRemaining  int            `json:"days_remaining"`
	RiskClass      string         `json:"risk_class"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func FromRecord(rw usecase.RecordWithWarranty) RecordResponse {
	rec := rw.Record
	parts := make([]PartResponse, 0, len(rec.Parts))
	for _, p := range rec.Parts {
		parts = append(parts, PartResponse{Name: p.Name, Cost: p.Cost})
	}
	return RecordResponse{
		ID:             rec.ID,
		ClientName:     rec.ClientName,
		ServiceDate:    rec.ServiceDate.Format(dateLayout),
		WarrantyMonths: rec.WarrantyMonths,
		ServiceValue:   rec.ServiceValue,
		PaymentStatus:  string(rec.PaymentStatus),
		Observations:   rec.Observations,
		Parts:          parts,
		PhotoRef:       rec.PhotoRef,
		ExpiryDate:     rw.ExpiryDate.Format(dateLayout),
		DaysRemaining:  rw.DaysRemaining,
		RiskClass:      string(rw.Risk),
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

func FromRecords(rws []usecase.RecordWithWarranty) []RecordResponse {
	out := make([]RecordResponse, 0, len(rws))
	for _, rw := range rws {
		out = append(out, FromRecord(rw))
	}
	return out
}

// CreatedRecordResponse is returned by create/update, before any warranty
// annotation is relevant to the caller.
type CreatedRecordResponse struct {
	ID            string    `json:"id"`
	ClientName    string    `json:"client_name"`
	ServiceDate   string    `json:"service_date"`
	PaymentStatus string    `json:"payment_status"`
	PhotoRef      string    `json:"photo_ref,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromCreatedRecord(rec entities.ServiceRecord) CreatedRecordResponse {
	return CreatedRecordResponse{
		ID:            rec.ID,
		ClientName:    rec.ClientName,
		ServiceDate:   rec.ServiceDate.Format(dateLayout),
		PaymentStatus: string(rec.PaymentStatus),
		PhotoRef:      rec.PhotoRef,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

// ExpiringResponse drives the "N garantias vencendo" alert banner.
type ExpiringResponse struct {
	Count   int              `json:"count"`
	Message string           `json:"message"`
	Records []RecordResponse `json:"records"`
}

func FromExpiring(rws []usecase.RecordWithWarranty) ExpiringResponse {
	plural := "s"
	if len(rws) == 1 {
		plural = ""
	}
	msg := ""
	if len(rws) > 0 {
		msg = fmt.Sprintf("%d garantia%s vencendo em até 30 dias", len(rws), plural)
	}
	return ExpiringResponse{
		Count:   len(rws),
		Message: msg,
		Records: FromRecords(rws),
	}
}
