package request

import (
	"errors"
	"strings"
	"time"

	"gestao_servicos/internal/domain/entities"
)

var ErrInvalidServiceDate = errors.New("invalid service date")

const serviceDateLayout = "2006-01-02"

type PartRequest struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// RecordRequest is the payload of the record form, for both creation and
// full-value update. The photo travels as a base64 data URL in photo_data;
// an empty field means "no photo" on create and "keep the current photo" on
// update.
type RecordRequest struct {
	ClientName     string        `json:"client_name" binding:"required"`
	ServiceDate    string        `json:"service_date" binding:"required"`
	WarrantyMonths int           `json:"warranty_months"`
	ServiceValue   float64       `json:"service_value"`
	PaymentStatus  string        `json:"payment_status" binding:"required"`
	Observations   string        `json:"observations"`
	Parts          []PartRequest `json:"parts"`
	PhotoData      string        `json:"photo_data"`
}

// ResolveServiceDate parses the calendar date field (YYYY-MM-DD).
func (r RecordRequest) ResolveServiceDate() (time.Time, error) {
	d, err := time.ParseInLocation(serviceDateLayout, strings.TrimSpace(r.ServiceDate), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidServiceDate
	}
	return d, nil
}

func (r RecordRequest) ResolveStatus() entities.PaymentStatus {
	return entities.PaymentStatus(strings.ToLower(strings.TrimSpace(r.PaymentStatus)))
}

func (r RecordRequest) ResolveParts() []entities.Part {
	parts := make([]entities.Part, 0, len(r.Parts))
	for _, p := range r.Parts {
		parts = append(parts, entities.Part{Name: p.Name, Cost: p.Cost})
	}
	return parts
}
