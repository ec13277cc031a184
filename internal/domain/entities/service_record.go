package entities

import (
	"strings"
	"time"
)

// PaymentStatus tracks whether the client settled the service.
//
// Records stay editable while pending; marking a record as paid is a regular
// update driven by the presenting layer.

type PaymentStatus string

const (
	PaymentStatusPago     PaymentStatus = "pago"
	PaymentStatusPendente PaymentStatus = "pendente"
)

// ValidPaymentStatus reports whether s is one of the known statuses.
func ValidPaymentStatus(s PaymentStatus) bool {
	return s == PaymentStatusPago || s == PaymentStatusPendente
}

// Label returns the human-readable status used on receipts and reports.
func (s PaymentStatus) Label() string {
	if s == PaymentStatusPago {
		return "Pago"
	}
	return "Pendente"
}

// Part is a replaced part embedded in a ServiceRecord. Parts have no identity
// of their own; entry order is kept for display only.
type Part struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// ServiceRecord is the aggregate root persisted by the record repository.
//
// Storage model (DynamoDB):
//   - PK: owner_id
//   - SK: id
//
// ServiceDate is a calendar date (UTC midnight, no time component) and is the
// anchor for warranty computation. ServiceValue is the total charged amount;
// parts carry their own cost figure and are summed separately by the monthly
// report.

type ServiceRecord struct {
	ID             string        `json:"id"`
	OwnerID        string        `json:"owner_id"`
	ClientName     string        `json:"client_name"`
	ServiceDate    time.Time     `json:"service_date"`
	WarrantyMonths int           `json:"warranty_months"`
	ServiceValue   float64       `json:"service_value"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	Observations   string        `json:"observations,omitempty"`
	Parts          []Part        `json:"parts,omitempty"`
	PhotoRef       string        `json:"photo_ref,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// PartsTotal sums the cost of every part on the record. A missing parts list
// counts as zero.
func (r ServiceRecord) PartsTotal() float64 {
	total := 0.0
	for _, p := range r.Parts {
		total += p.Cost
	}
	return total
}

// HasObservations reports whether the free-text block carries anything beyond
// whitespace.
func (r ServiceRecord) HasObservations() bool {
	return strings.TrimSpace(r.Observations) != ""
}

// BelongsToMonth reports whether the service date falls inside the given
// calendar month.
func (r ServiceRecord) BelongsToMonth(year int, month time.Month) bool {
	return r.ServiceDate.Year() == year && r.ServiceDate.Month() == month
}

// RiskClass buckets the days remaining until warranty expiry.
//
//   - Expired: already past expiry
//   - Critical: expires within 7 days (day 7 included)
//   - Warning: expires within 30 days (day 30 included)
//   - Ok: more than 30 days left

type RiskClass string

const (
	RiskExpired  RiskClass = "expired"
	RiskCritical RiskClass = "critical"
	RiskWarning  RiskClass = "warning"
	RiskOk       RiskClass = "ok"
)
