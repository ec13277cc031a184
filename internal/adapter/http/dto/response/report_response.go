package response

import (
	"fmt"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/pkg/format"
)

type TopClientResponse struct {
	ClientName   string  `json:"client_name"`
	ServiceValue float64 `json:"service_value"`
	Formatted    string  `json:"formatted"`
}

// MonthlyReportResponse carries the raw figures plus their canonical
// presentation so every client surface shows the same strings.
type MonthlyReportResponse struct {
	Month      string `json:"month"`
	MonthLabel string `json:"month_label"`

	RecordCount int `json:"record_count"`
	PaidCount   int `json:"paid_count"`
	UnpaidCount int `json:"unpaid_count"`
	PartCount   int `json:"part_count"`

	GrossRevenue float64 `json:"gross_revenue"`
	UnpaidValue  float64 `json:"unpaid_value"`
	PartsCost    float64 `json:"parts_cost"`
	NetProfit    float64 `json:"net_profit"`
	Margin       float64 `json:"margin"`

	GrossRevenueFormatted string `json:"gross_revenue_formatted"`
	UnpaidValueFormatted  string `json:"unpaid_value_formatted"`
	PartsCostFormatted    string `json:"parts_cost_formatted"`
	NetProfitFormatted    string `json:"net_profit_formatted"`
	MarginFormatted       string `json:"margin_formatted"`

	TopClients []TopClientResponse `json:"top_clients"`
}

func FromMonthlySummary(s entities.MonthlySummary, f *format.Formatter) MonthlyReportResponse {
	top := make([]TopClientResponse, 0, len(s.TopClients))
	for _, tc := range s.TopClients {
		top = append(top, TopClientResponse{
			ClientName:   tc.ClientName,
			ServiceValue: tc.ServiceValue,
			Formatted:    f.Currency(tc.ServiceValue),
		})
	}

	return MonthlyReportResponse{
		Month:                 fmt.Sprintf("%04d-%02d", s.Year, s.Month),
		MonthLabel:            f.MonthLabel(s.Year, s.Month),
		RecordCount:           s.RecordCount,
		PaidCount:             s.PaidCount,
		UnpaidCount:           s.UnpaidCount,
		PartCount:             s.PartCount,
		GrossRevenue:          s.GrossRevenue,
		UnpaidValue:           s.UnpaidValue,
		PartsCost:             s.PartsCost,
		NetProfit:             s.NetProfit,
		Margin:                s.Margin,
		GrossRevenueFormatted: f.Currency(s.GrossRevenue),
		UnpaidValueFormatted:  f.Currency(s.UnpaidValue),
		PartsCostFormatted:    f.Currency(s.PartsCost),
		NetProfitFormatted:    f.Currency(s.NetProfit),
		MarginFormatted:       fmt.Sprintf("%.1f%% de margem", s.Margin),
		TopClients:            top,
	}
}
