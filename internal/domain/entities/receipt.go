package entities

import "time"

// Receipt is the canonical document summarizing one service record. It is a
// pure value built by the receipt composer; the share text and the display
// model are both derived from it so the two outputs never disagree on a field.

type Receipt struct {
	ClientName     string        `json:"client_name"`
	ServiceDate    time.Time     `json:"service_date"`
	WarrantyMonths int           `json:"warranty_months"`
	ExpiryDate     time.Time     `json:"expiry_date"`
	ServiceValue   float64       `json:"service_value"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	Observations   string        `json:"observations,omitempty"`
	Parts          []Part        `json:"parts,omitempty"`
	PhotoRef       string        `json:"photo_ref,omitempty"`
}

// ReceiptDisplay is the field-keyed rendering of a Receipt consumed by the
// visual document path (modal, PNG/PDF export). Every value is already
// formatted; exporters only draw.

type ReceiptDisplay struct {
	ClientName   string               `json:"client_name"`
	ServiceDate  string               `json:"service_date"`
	Warranty     string               `json:"warranty"`
	ExpiryDate   string               `json:"expiry_date"`
	Total        string               `json:"total"`
	StatusBadge  string               `json:"status_badge"`
	Pending      bool                 `json:"pending"`
	Observations string               `json:"observations"`
	Parts        []ReceiptDisplayPart `json:"parts"`
	HasPhoto     bool                 `json:"has_photo"`
	PhotoRef     string               `json:"photo_ref,omitempty"`
}

type ReceiptDisplayPart struct {
	Name string `json:"name"`
	Cost string `json:"cost"`
}
