package entities

import "time"

// MonthlySummary is the immutable result of aggregating one calendar month of
// records. Costs include parts from unpaid records: the part was bought
// whether or not the client has settled.

type MonthlySummary struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`

	RecordCount int `json:"record_count"`
	PaidCount   int `json:"paid_count"`
	UnpaidCount int `json:"unpaid_count"`
	PartCount   int `json:"part_count"`

	GrossRevenue float64 `json:"gross_revenue"`
	UnpaidValue  float64 `json:"unpaid_value"`
	PartsCost    float64 `json:"parts_cost"`
	NetProfit    float64 `json:"net_profit"`
	// Margin is net profit as a percentage of gross revenue, exactly zero when
	// the month had no paid revenue.
	Margin float64 `json:"margin"`

	TopClients []TopClient `json:"top_clients"`
}

// TopClient is one paid record in the month's ranking, highest service value
// first, ties kept in original record order.
type TopClient struct {
	ClientName   string  `json:"client_name"`
	ServiceValue float64 `json:"service_value"`
}

// MonthlyReportDocument is the pre-formatted table handed to the document
// exporter. Values are strings so the exporter shares the exact presentation
// of the HTTP responses.

type MonthlyReportDocument struct {
	MonthLabel   string           `json:"month_label"`
	GrossRevenue string           `json:"gross_revenue"`
	PartsCost    string           `json:"parts_cost"`
	NetProfit    string           `json:"net_profit"`
	Rows         []ReportTableRow `json:"rows"`
}

type ReportTableRow struct {
	ClientName string `json:"client_name"`
	Date       string `json:"date"`
	Value      string `json:"value"`
	Status     string `json:"status"`
	Warranty   string `json:"warranty"`
}
